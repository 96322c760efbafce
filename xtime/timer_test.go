package xtime

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/badu/wstd/runtime"
)

// Never's Timer suspends its caller permanently; with nothing else left to
// run, BlockOn's deadlock guard is the observable result (spec.md §4.10).
func TestNeverTimerSuspendsForever(t *testing.T) {
	assert.PanicsWithValue(t, "wstd/runtime: BlockOn root task never completed", func() {
		runtime.BlockOn(func(y *runtime.Yielder) struct{} {
			Never().Wait(y)
			return struct{}{}
		})
	})
}
