package runtime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockOnReturnsResult(t *testing.T) {
	got := BlockOn(func(y *Yielder) int { return 42 })
	assert.Equal(t, 42, got)
}

func TestBlockOnPanicsWhenNested(t *testing.T) {
	assert.Panics(t, func() {
		BlockOn(func(y *Yielder) struct{} {
			BlockOn(func(y *Yielder) struct{} { return struct{}{} })
			return struct{}{}
		})
	})
}

func TestSpawnRunsConcurrentlyAndJoins(t *testing.T) {
	got := BlockOn(func(y *Yielder) []int {
		var order []int
		h1 := Spawn(y, func(y *Yielder) int {
			order = append(order, 1)
			return 10
		})
		h2 := Spawn(y, func(y *Yielder) int {
			order = append(order, 2)
			return 20
		})
		r1 := h1.Join(y)
		r2 := h2.Join(y)
		return []int{r1, r2, order[0], order[1]}
	})
	require.Len(t, got, 4)
	assert.Equal(t, 10, got[0])
	assert.Equal(t, 20, got[1])
	// both spawned tasks ran, in spawn order, before either was joined
	assert.Equal(t, 1, got[2])
	assert.Equal(t, 2, got[3])
}

func TestTryZip2ReturnsBothResults(t *testing.T) {
	type zipResult struct {
		a, b int
	}
	got := BlockOn(func(y *Yielder) zipResult {
		a, b, err := TryZip2(y,
			func(y *Yielder) (int, error) { return 1, nil },
			func(y *Yielder) (int, error) { return 2, nil },
		)
		require.NoError(t, err)
		return zipResult{a, b}
	})
	assert.Equal(t, 1, got.a)
	assert.Equal(t, 2, got.b)
}

func TestTryZip2ReturnsFirstError(t *testing.T) {
	errA := errors.New("a failed")
	gotErr := BlockOn(func(y *Yielder) error {
		_, _, err := TryZip2(y,
			func(y *Yielder) (int, error) { return 0, errA },
			func(y *Yielder) (int, error) { return 2, nil },
		)
		return err
	})
	assert.ErrorIs(t, gotErr, errA)
}

func TestJoinHandleOfAlreadyFinishedTaskReturnsImmediately(t *testing.T) {
	got := BlockOn(func(y *Yielder) int {
		h := Spawn(y, func(y *Yielder) int { return 7 })
		// give the spawned task a chance to run to completion by joining once
		h.Join(y)
		// the task has finished, so this Join returns without suspending
		return h.Join(y)
	})
	assert.Equal(t, 7, got)
}
