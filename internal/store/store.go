// Package store owns the product catalog: an ordered, append-only list
// kept in memory and written wholesale to a SnapshotStore after every
// change, like a browser mirroring its state into localStorage.
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/neharmenon05/buildathon/internal/models"
)

// ErrPersistFailed marks an Add whose in-memory append succeeded but
// whose snapshot write did not. The catalog state is still valid.
var ErrPersistFailed = errors.New("catalog persist failed")

// SnapshotStore is the durable backing for the catalog: one record
// holding the whole product array, overwritten on every save.
type SnapshotStore interface {
	Load() ([]models.Product, error)
	Save(products []models.Product) error
}

// CatalogStore holds the in-memory catalog. HTTP handlers run
// concurrently, so access is mutex-guarded.
type CatalogStore struct {
	mu        sync.RWMutex
	products  []models.Product
	snapshots SnapshotStore
	logger    *zap.Logger
}

func NewCatalogStore(snapshots SnapshotStore, logger *zap.Logger) *CatalogStore {
	return &CatalogStore{
		products:  make([]models.Product, 0),
		snapshots: snapshots,
		logger:    logger,
	}
}

// Load reads the persisted snapshot once at startup. Missing or
// malformed data means an empty catalog; a load problem is logged but
// never propagated.
func (s *CatalogStore) Load() {
	products, err := s.snapshots.Load()
	if err != nil {
		s.logger.Warn("could not load saved products, starting with empty catalog", zap.Error(err))
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if products != nil {
		s.products = products
	}
	s.logger.Info("catalog loaded", zap.Int("products", len(s.products)))
}

// Add appends one product and persists the whole snapshot. A missing ID
// or CreatedAt is filled in here. When the snapshot write fails the
// product stays in memory and the error wraps ErrPersistFailed so the
// caller can report a non-fatal warning.
func (s *CatalogStore) Add(p models.Product) (models.Product, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	s.mu.Lock()
	s.products = append(s.products, p)
	snapshot := make([]models.Product, len(s.products))
	copy(snapshot, s.products)
	s.mu.Unlock()

	if err := s.snapshots.Save(snapshot); err != nil {
		s.logger.Error("failed to persist catalog", zap.Error(err), zap.Int("products", len(snapshot)))
		return p, fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}
	return p, nil
}

// Snapshot returns a copy of the catalog in insertion order.
func (s *CatalogStore) Snapshot() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]models.Product, len(s.products))
	copy(snapshot, s.products)
	return snapshot
}

// FindByID looks a product up by its identifier. IDs are not
// deduplicated on Add, so the scan runs tail-first: the last write wins.
func (s *CatalogStore) FindByID(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := len(s.products) - 1; i >= 0; i-- {
		if s.products[i].ID == id {
			return s.products[i], true
		}
	}
	return models.Product{}, false
}
