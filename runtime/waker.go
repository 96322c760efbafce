package runtime

// Waker is invoked by the reactor when whatever an Awaitable is waiting for
// becomes ready. Invoking a Waker appends its task to the ready list; the
// reactor and task completion call each registered Waker once, and every
// further call would append the task again.
type Waker func()

// Awaitable is anything a Yielder can suspend a task on: a host pollable
// subscription (WaitFor) or another task's completion (see Spawn/JoinHandle).
//
// poll registers wake to be called once, the next time this Awaitable
// becomes ready, and reports whether it is ready already. Per spec.md §3.1,
// an Awaitable completes at most once; polling it again after it has
// reported ready is undefined behavior. This implementation treats a second
// poll as immediately ready, matching the "implementers may treat as
// immediate-ready" allowance.
type Awaitable interface {
	poll(wake Waker) (ready bool)
}

// pendingForever never becomes ready and never calls its waker.
type pendingForever struct{}

func (pendingForever) poll(Waker) bool { return false }

// PendingForever is an Awaitable that never resolves, for constructs like
// xtime.Never() that must suspend their caller permanently (spec.md §4.10).
var PendingForever Awaitable = pendingForever{}
