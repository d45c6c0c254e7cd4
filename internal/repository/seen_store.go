package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jsonchan000/fin-news-ai/internal/model"
)

// SeenStore persists the set of article URLs already processed in prior runs.
// Load failures are recoverable (an empty set just means everything looks new
// again); Save failures are not, since losing the updated set would resurface
// old articles on the next run.
type SeenStore interface {
	Load() (model.SeenSet, error)
	Save(model.SeenSet) error
}

// FileSeenStore keeps the seen set as a pretty-printed JSON array of URLs.
type FileSeenStore struct {
	path string
}

func NewFileSeenStore(path string) *FileSeenStore {
	return &FileSeenStore{path: path}
}

// Load reads the persisted URL set. A missing, empty, or corrupt file yields
// an empty set and a nil error.
func (s *FileSeenStore) Load() (model.SeenSet, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return model.NewSeenSet(), nil
	}

	var urls []string
	if err := json.Unmarshal(b, &urls); err != nil {
		return model.NewSeenSet(), nil
	}

	return model.NewSeenSet(urls...), nil
}

// Save rewrites the whole file. URLs are serialized in sorted order so saving
// the same set twice produces identical bytes.
func (s *FileSeenStore) Save(seen model.SeenSet) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("seen store mkdir: %w", err)
		}
	}

	b, err := json.MarshalIndent(seen.Slice(), "", "    ")
	if err != nil {
		return fmt.Errorf("seen store marshal: %w", err)
	}

	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("seen store write: %w", err)
	}
	return nil
}
