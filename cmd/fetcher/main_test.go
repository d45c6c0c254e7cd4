package main

import (
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/jsonchan000/fin-news-ai/internal/model"
	"github.com/jsonchan000/fin-news-ai/pkg/llm"
)

// recordingStore tracks whether Save was called.
type recordingStore struct {
	saved   bool
	saveErr error
}

func (s *recordingStore) Load() (model.SeenSet, error) {
	return model.NewSeenSet(), nil
}

func (s *recordingStore) Save(model.SeenSet) error {
	s.saved = true
	return s.saveErr
}

func TestProcessBatchEmptyDoesNotSave(t *testing.T) {
	store := &recordingStore{}
	seen := model.NewSeenSet("u1", "u2")

	err := processBatch([]string{"AAPL", "MSFT"}, model.Batch{}, seen, store, llm.NewNoopAnalyzer(), nil)

	assert.Equal(t, nil, err)
	assert.Equal(t, false, store.saved)
}

func TestProcessBatchSavesSeenSet(t *testing.T) {
	store := &recordingStore{}
	seen := model.NewSeenSet("u1")
	batch := model.Batch{
		"AAPL": {{Headline: "Apple rises", Summary: "Up 3% premarket.", URL: "u1"}},
	}

	err := processBatch([]string{"AAPL"}, batch, seen, store, llm.NewNoopAnalyzer(), nil)

	assert.Equal(t, nil, err)
	assert.Equal(t, true, store.saved)
}

func TestProcessBatchPropagatesSaveFailure(t *testing.T) {
	store := &recordingStore{saveErr: errors.New("disk full")}
	batch := model.Batch{
		"AAPL": {{Headline: "Apple rises", URL: "u1"}},
	}

	err := processBatch([]string{"AAPL"}, batch, model.NewSeenSet(), store, llm.NewNoopAnalyzer(), nil)

	assert.NotEqual(t, nil, err)
}
