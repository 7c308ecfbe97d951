// Package services holds the content generators: marketing captions,
// business advice and voice transcription. All of them are canned
// template engines behind an artificial delay that stands in for a real
// AI call; a future integration would keep the same input/output shape.
package services

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"sync"
	"time"
)

// ErrGenerationInFlight rejects a request while a previous generation
// for the same service is still pending, mirroring the disabled button
// in the UI. There is no queueing and no cancellation of the first run.
var ErrGenerationInFlight = errors.New("generation already in progress")

// simulateLatency waits for the configured artificial delay, or returns
// early if the request context ends first. A zero delay returns
// immediately, which is what the tests use.
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// randSource wraps math/rand for concurrent use by the generator
// services. Seed 0 means time-seeded; tests pass a fixed seed so
// template selection is deterministic.
type randSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func newRandSource(seed int64) *randSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

func (s *randSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// formatPrice renders a price the way the UI did: no trailing zeros,
// so 42 prints as "42" and 42.5 as "42.5".
func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
