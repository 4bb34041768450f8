// Package cache implementa una cache de snapshot con TTL e invalidación
// explícita. Reemplaza el estado ambiente de cache del tablero: cada vista de
// solo lectura declara su ventana de frescura y el ledger invalida tras cada
// mutación.
package cache

import (
	"context"
	"sync"
	"time"
)

// Snapshot guarda el último valor cargado durante una ventana TTL.
// Get recarga vía loader cuando el valor expiró o fue invalidado.
type Snapshot[T any] struct {
	mu       sync.Mutex
	ttl      time.Duration
	value    T
	loadedAt time.Time
	valid    bool
}

// NewSnapshot construye la cache. Con ttl <= 0 cada Get recarga siempre.
func NewSnapshot[T any](ttl time.Duration) *Snapshot[T] {
	return &Snapshot[T]{ttl: ttl}
}

// Get devuelve el valor cacheado si sigue fresco; si no, ejecuta load y
// guarda el resultado. Un load fallido no pisa el valor anterior, pero el
// error se propaga al caller.
func (s *Snapshot[T]) Get(ctx context.Context, load func(ctx context.Context) (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.valid && s.ttl > 0 && time.Since(s.loadedAt) < s.ttl {
		return s.value, nil
	}

	value, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	s.value = value
	s.loadedAt = time.Now()
	s.valid = true
	return value, nil
}

// Invalidate descarta el valor cacheado; el próximo Get recarga.
func (s *Snapshot[T]) Invalidate() {
	s.mu.Lock()
	s.valid = false
	s.mu.Unlock()
}
