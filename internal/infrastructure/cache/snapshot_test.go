package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotCachesWithinTTL(t *testing.T) {
	ctx := context.Background()
	s := NewSnapshot[int](time.Hour)

	calls := 0
	load := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	v, err := s.Get(ctx, load)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = s.Get(ctx, load)
	require.NoError(t, err)
	assert.Equal(t, 1, v, "dentro del TTL no debe recargar")
	assert.Equal(t, 1, calls)
}

func TestSnapshotZeroTTLAlwaysLoads(t *testing.T) {
	ctx := context.Background()
	s := NewSnapshot[int](0)

	calls := 0
	load := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	_, _ = s.Get(ctx, load)
	v, err := s.Get(ctx, load)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestSnapshotInvalidateForcesReload(t *testing.T) {
	ctx := context.Background()
	s := NewSnapshot[string](time.Hour)

	value := "a"
	load := func(context.Context) (string, error) { return value, nil }

	v, err := s.Get(ctx, load)
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	value = "b"
	s.Invalidate()

	v, err = s.Get(ctx, load)
	require.NoError(t, err)
	assert.Equal(t, "b", v)
}

func TestSnapshotLoadErrorPropagates(t *testing.T) {
	ctx := context.Background()
	s := NewSnapshot[int](time.Hour)

	wantErr := errors.New("bd caída")
	_, err := s.Get(ctx, func(context.Context) (int, error) { return 0, wantErr })
	assert.ErrorIs(t, err, wantErr)

	// el siguiente Get reintenta la carga
	v, err := s.Get(ctx, func(context.Context) (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}
