package runtime

// BlockOn drives fn to completion on a fresh Reactor and returns its result.
// fn receives a *Yielder it uses to suspend on host pollables or other
// tasks. BlockOn is the only way to enter the async world (spec.md §4.1);
// nesting one BlockOn inside another is a programmer error and panics,
// since there is exactly one reactor singleton at a time.
//
// The driver loop mirrors the crate's block_on: run whatever is
// immediately ready, and only ask the host to block when nothing is.
// After running each task, if other tasks are still ready, it gives
// pending pollables a non-blocking look, so tasks waiting on I/O are woken
// between CPU-bound tasks instead of only once the ready list drains.
func BlockOn[T any](fn func(y *Yielder) T) T {
	if current != nil {
		panic("wstd/runtime: BlockOn called while another BlockOn is already running")
	}
	r := newReactor()
	current = r
	defer func() { current = nil }()

	root := spawnUnchecked(r, fn)
	for {
		if rn, ok := r.popReadyList(); ok {
			rn.run()
		} else if r.pendingPollablesIsEmpty() {
			break
		} else {
			r.blockOnPollables()
			continue
		}
		if !r.readyListIsEmpty() {
			r.nonblockCheckPollables()
		}
	}

	if !root.done {
		panic("wstd/runtime: BlockOn root task never completed")
	}
	return root.result
}
