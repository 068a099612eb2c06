package idalloc

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func existsIn(taken ...int64) ExistsFunc {
	set := make(map[int64]bool, len(taken))
	for _, id := range taken {
		set[id] = true
	}
	return func(_ context.Context, id int64) (bool, error) {
		return set[id], nil
	}
}

func TestAllocate_EmptyStore(t *testing.T) {
	id, err := Allocate(context.Background(), 0, existsIn())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestAllocate_NeverZero(t *testing.T) {
	// count 0 must still start probing from 1
	id, err := Allocate(context.Background(), 0, existsIn(1, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestAllocate_DensePrefix(t *testing.T) {
	// {1,2,3} with count 3: probe starts at 3, walks to 4
	id, err := Allocate(context.Background(), 3, existsIn(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
}

func TestAllocate_GapBelowCount(t *testing.T) {
	// {1,2,4} with count 3: 3 is free and gets reused
	id, err := Allocate(context.Background(), 3, existsIn(1, 2, 4))
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestAllocate_SkipsTakenRun(t *testing.T) {
	id, err := Allocate(context.Background(), 2, existsIn(2, 3, 4, 5))
	require.NoError(t, err)
	assert.Equal(t, int64(6), id)
}

func TestAllocate_LastRepresentableID(t *testing.T) {
	// Последний положительный идентификатор тоже выделяется
	id, err := Allocate(context.Background(), math.MaxInt64, existsIn())
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), id)
}

func TestAllocate_Exhausted(t *testing.T) {
	exists := func(_ context.Context, _ int64) (bool, error) {
		return true, nil
	}

	_, err := Allocate(context.Background(), math.MaxInt64, exists)
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestAllocate_PropagatesStoreError(t *testing.T) {
	storeErr := errors.New("connection lost")
	exists := func(_ context.Context, _ int64) (bool, error) {
		return false, storeErr
	}

	_, err := Allocate(context.Background(), 1, exists)
	assert.ErrorIs(t, err, storeErr)
}
