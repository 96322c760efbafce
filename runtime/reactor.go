package runtime

import (
	"go.bytecodealliance.org/cm"
	"go.uber.org/zap"

	"github.com/badu/wstd/internal/wasip2/io/poll"
)

// subscription is the reactor-side bookkeeping for one registered pollable:
// its stable key, the underlying host handle, and the wakers waiting on it
// (spec.md §3.1).
type subscription struct {
	key      uint64
	pollable poll.Pollable
	wakers   []Waker
	refs     int
}

// Reactor owns the set of pending pollable subscriptions for one BlockOn
// dynamic extent, and the FIFO of tasks ready to run.
type Reactor struct {
	subs    map[uint64]*subscription
	order   []uint64 // host enumeration order for block_on_pollables
	nextKey uint64

	ready []runnable
}

func newReactor() *Reactor {
	return &Reactor{subs: make(map[uint64]*subscription)}
}

// current is the process-wide reactor singleton, valid only for the dynamic
// extent of the active BlockOn call (spec.md §4.1, §9).
var current *Reactor

// Current returns the reactor associated with the active BlockOn call.
// It panics if called outside of one — there is no reactor to return.
func Current() *Reactor {
	if current == nil {
		panic("wstd/runtime: Current() called outside of BlockOn")
	}
	return current
}

// AsyncPollable is an owning handle to one reactor subscription, returned by
// Schedule. Copies of it are not counted: calling Close on any copy
// deregisters the subscription from the reactor (spec.md §3.1, §5).
type AsyncPollable struct {
	reactor *Reactor
	key     uint64
}

// Schedule registers p with the reactor and returns an owning handle.
func (r *Reactor) Schedule(p poll.Pollable) AsyncPollable {
	key := r.nextKey
	r.nextKey++
	r.subs[key] = &subscription{key: key, pollable: p, refs: 1}
	r.order = append(r.order, key)
	logger.Debug("wstd/runtime: subscription registered", zap.Uint64("key", key))
	return AsyncPollable{reactor: r, key: key}
}

// WaitFor produces a future that completes when this subscription's
// pollable is ready.
func (a AsyncPollable) WaitFor() *WaitFor {
	return &WaitFor{reactor: a.reactor, key: a.key}
}

// Ready performs a non-blocking readiness check without registering a waker.
func (a AsyncPollable) Ready() bool {
	sub, ok := a.reactor.subs[a.key]
	if !ok {
		return true
	}
	return sub.pollable.Ready()
}

// Close deregisters this subscription. Per spec.md §3.1 the subscription
// must outlive its logical parent resource; callers are responsible for
// calling Close only once the stream/body/socket it backs is itself being
// torn down.
func (a AsyncPollable) Close() {
	sub, ok := a.reactor.subs[a.key]
	if !ok {
		return
	}
	sub.refs--
	if sub.refs > 0 {
		return
	}
	delete(a.reactor.subs, a.key)
	sub.pollable.ResourceDrop()
	logger.Debug("wstd/runtime: subscription deregistered", zap.Uint64("key", a.key))
}

func (r *Reactor) enqueue(rn runnable) {
	r.ready = append(r.ready, rn)
}

// popReadyList pops the head of the ready FIFO, if any.
func (r *Reactor) popReadyList() (runnable, bool) {
	if len(r.ready) == 0 {
		return runnable{}, false
	}
	rn := r.ready[0]
	r.ready = r.ready[1:]
	return rn, true
}

// readyListIsEmpty reports whether any task is immediately runnable.
func (r *Reactor) readyListIsEmpty() bool { return len(r.ready) == 0 }

// pendingPollablesIsEmpty reports whether any subscription is still
// registered (and therefore could still produce a wake-up).
func (r *Reactor) pendingPollablesIsEmpty() bool { return len(r.subs) == 0 }

func (r *Reactor) pollableList() (cm.List[poll.Pollable], []uint64) {
	keys := make([]uint64, 0, len(r.order))
	pollables := make([]poll.Pollable, 0, len(r.order))
	live := r.order[:0:0]
	for _, k := range r.order {
		sub, ok := r.subs[k]
		if !ok {
			continue // deregistered since last compaction
		}
		keys = append(keys, k)
		pollables = append(pollables, sub.pollable)
		live = append(live, k)
	}
	r.order = live
	return cm.ToList(pollables), keys
}

// blockOnPollables blocks the instance until at least one registered
// subscription is ready, then drains and wakes every waker registered
// against each ready subscription.
func (r *Reactor) blockOnPollables() {
	r.pollOnce(true)
}

// nonblockCheckPollables performs the same readiness sweep, but never
// blocks: used to interleave I/O readiness between CPU-bound task batches
// (spec.md §4.1 step 3).
func (r *Reactor) nonblockCheckPollables() {
	r.pollOnce(false)
}

func (r *Reactor) pollOnce(block bool) {
	pollables, keys := r.pollableList()
	if len(pollables.Slice()) == 0 {
		return
	}
	var readyIdx cm.List[uint32]
	if block {
		readyIdx = poll.Poll(pollables)
	} else {
		readyIdx = r.nonblockPoll(pollables)
	}
	for _, idx := range readyIdx.Slice() {
		if int(idx) >= len(keys) {
			continue
		}
		sub, ok := r.subs[keys[idx]]
		if !ok {
			continue
		}
		wakers := sub.wakers
		sub.wakers = nil
		for _, w := range wakers {
			w()
		}
	}
}

// nonblockPoll emulates a zero-wait poll.Poll by checking each pollable's
// Ready() individually; wasi:io/poll has no batched non-blocking variant.
func (r *Reactor) nonblockPoll(pollables cm.List[poll.Pollable]) cm.List[uint32] {
	var ready []uint32
	for i, p := range pollables.Slice() {
		if p.Ready() {
			ready = append(ready, uint32(i))
		}
	}
	return cm.ToList(ready)
}
