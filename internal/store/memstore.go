package store

import "github.com/neharmenon05/buildathon/internal/models"

// MemoryStore is a volatile SnapshotStore for ephemeral runs and tests.
type MemoryStore struct {
	products []models.Product
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load() ([]models.Product, error) {
	return m.products, nil
}

func (m *MemoryStore) Save(products []models.Product) error {
	m.products = products
	return nil
}
