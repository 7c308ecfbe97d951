package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/neharmenon05/buildathon/internal/models"
)

// FileStore keeps the snapshot as one JSON array in one file, the
// server-side equivalent of a single localStorage key. Timestamps
// round-trip as RFC 3339 strings via encoding/json's time.Time
// handling.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Load() ([]models.Product, error) {
	raw, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.path, err)
	}
	return products, nil
}

func (f *FileStore) Save(products []models.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, raw, 0o644)
}
