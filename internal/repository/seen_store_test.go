package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/jsonchan000/fin-news-ai/internal/model"
)

func TestFileSeenStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen_news.json")
	store := NewFileSeenStore(path)

	seen := model.NewSeenSet(
		"https://example.com/a",
		"https://example.com/b?utm_source=x&id=42",
		"data not available",
	)

	err := store.Save(seen)
	assert.Equal(t, nil, err)

	loaded, err := store.Load()
	assert.Equal(t, nil, err)
	assert.Equal(t, seen.Slice(), loaded.Slice())
}

func TestFileSeenStoreMissingFile(t *testing.T) {
	store := NewFileSeenStore(filepath.Join(t.TempDir(), "does-not-exist.json"))

	seen, err := store.Load()

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, seen.Len())
}

func TestFileSeenStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen_news.json")
	err := os.WriteFile(path, []byte("{not json"), 0o644)
	assert.Equal(t, nil, err)

	seen, err := NewFileSeenStore(path).Load()

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, seen.Len())
}

func TestFileSeenStoreEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen_news.json")
	err := os.WriteFile(path, nil, 0o644)
	assert.Equal(t, nil, err)

	seen, err := NewFileSeenStore(path).Load()

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, seen.Len())
}

func TestFileSeenStoreDeterministicSave(t *testing.T) {
	dir := t.TempDir()
	seen := model.NewSeenSet("c", "a", "b")

	first := NewFileSeenStore(filepath.Join(dir, "first.json"))
	err := first.Save(seen)
	assert.Equal(t, nil, err)

	loaded, err := first.Load()
	assert.Equal(t, nil, err)

	second := NewFileSeenStore(filepath.Join(dir, "second.json"))
	err = second.Save(loaded)
	assert.Equal(t, nil, err)

	b1, err := os.ReadFile(filepath.Join(dir, "first.json"))
	assert.Equal(t, nil, err)
	b2, err := os.ReadFile(filepath.Join(dir, "second.json"))
	assert.Equal(t, nil, err)

	assert.Equal(t, string(b1), string(b2))
}

func TestFileSeenStoreCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "nested", "seen_news.json")
	store := NewFileSeenStore(path)

	err := store.Save(model.NewSeenSet("u1"))
	assert.Equal(t, nil, err)

	loaded, err := store.Load()
	assert.Equal(t, nil, err)
	assert.Equal(t, true, loaded.Contains("u1"))
}

func TestFileSeenStoreSaveFailure(t *testing.T) {
	dir := t.TempDir()
	// The parent path is a file, so the write cannot succeed.
	blocker := filepath.Join(dir, "blocker")
	err := os.WriteFile(blocker, []byte("x"), 0o644)
	assert.Equal(t, nil, err)

	store := NewFileSeenStore(filepath.Join(blocker, "seen_news.json"))

	err = store.Save(model.NewSeenSet("u1"))
	assert.NotEqual(t, nil, err)
}
