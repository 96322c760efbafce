package runtime

// runnable is a non-generic handle the reactor's ready FIFO can hold
// regardless of a Task's result type: resuming it means letting the
// parked goroutine behind it run until it either parks again or finishes.
type runnable struct {
	resume chan struct{}
	parked chan struct{}
}

// run hands control to the parked goroutine and blocks until it parks
// again (on its next Await) or finishes. Exactly one goroutine is ever
// unblocked between a resume send and the matching parked receive, which
// is the invariant that lets the reactor touch its maps and slices
// without a mutex (spec.md §5).
func (rn runnable) run() {
	rn.resume <- struct{}{}
	<-rn.parked
	if p := taskPanic; p != nil {
		taskPanic = nil
		panic(p)
	}
}

// taskPanic carries a panic raised on a task's goroutine over to the driver
// loop, where run re-raises it so it reaches BlockOn's caller.
var taskPanic any

// Yielder is a task's only means of suspending itself. It is passed to
// every task and join-handle function; it carries no result type of its
// own; suspension is routed through a single Awaitable method.
type Yielder struct {
	reactor *Reactor
	resume  chan struct{}
	parked  chan struct{}
}

// Await suspends the current task until a becomes ready, then returns.
// If a is already ready, Await returns immediately without yielding to
// the scheduler.
func (y *Yielder) Await(a Awaitable) {
	self := runnable{resume: y.resume, parked: y.parked}
	ready := a.poll(func() {
		y.reactor.enqueue(self)
	})
	if ready {
		return
	}
	y.parked <- struct{}{}
	<-y.resume
}

// Task is a unit of scheduling: a goroutine running fn, rendezvousing with
// the driver loop through resume/parked so it only ever executes while
// "holding the baton" (spec.md §4.2).
type Task[T any] struct {
	reactor *Reactor
	resume  chan struct{}
	parked  chan struct{}

	done       bool
	result     T
	doneWakers []Waker
}

// spawnUnchecked starts fn on its own goroutine and immediately enqueues it
// to run for the first time. It does not check that fn's captured state
// outlives the reactor — callers (BlockOn, Spawn) are responsible for that,
// same as the crate's unsafe spawn_unchecked it is named after.
func spawnUnchecked[T any](r *Reactor, fn func(y *Yielder) T) *Task[T] {
	t := &Task[T]{
		reactor: r,
		resume:  make(chan struct{}),
		parked:  make(chan struct{}),
	}
	y := &Yielder{reactor: r, resume: t.resume, parked: t.parked}
	go func() {
		defer func() {
			if p := recover(); p != nil {
				taskPanic = p
				t.parked <- struct{}{}
			}
		}()
		<-t.resume
		result := fn(y)
		t.result = result
		t.done = true
		wakers := t.doneWakers
		t.doneWakers = nil
		logger.Debug("wstd/runtime: task finished")
		for _, w := range wakers {
			w()
		}
		t.parked <- struct{}{}
	}()
	r.ready = append(r.ready, runnable{resume: t.resume, parked: t.parked})
	return t
}
