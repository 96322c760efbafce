package runtime

// JoinHandle is the Awaitable produced by Spawn: it completes when the
// spawned task returns, and then yields its result (spec.md §4.2).
type JoinHandle[T any] struct {
	task *Task[T]
}

func (j *JoinHandle[T]) poll(wake Waker) bool {
	if j.task.done {
		return true
	}
	j.task.doneWakers = append(j.task.doneWakers, wake)
	return false
}

// Join awaits the spawned task and returns its result. Calling Join more
// than once on the same handle is safe only after the first call has
// returned, matching Awaitable's at-most-once-while-pending contract.
func (j *JoinHandle[T]) Join(y *Yielder) T {
	y.Await(j)
	return j.task.result
}

// Spawn starts fn concurrently with the calling task on the current
// reactor, returning a handle that can be Joined later. Spawn must be
// called from within a running BlockOn.
func Spawn[T any](y *Yielder, fn func(y *Yielder) T) *JoinHandle[T] {
	t := spawnUnchecked(y.reactor, fn)
	return &JoinHandle[T]{task: t}
}

// result2 pairs outcomes for TryZip2, mirroring futures_lite::future::try_zip
// in the crate's Client.send (original_source/src/http/client.rs), which
// drives the request-body upload concurrently with the response head
// arriving.
type result2[A, B any] struct {
	a    A
	b    B
	errA error
	errB error
}

// TryZip2 runs fa and fb concurrently to completion and returns both
// results, or the first error encountered. Both functions always run to
// completion even if one fails, since there is no cancellation in this
// model (spec.md §4.7).
func TryZip2[A, B any](y *Yielder, fa func(y *Yielder) (A, error), fb func(y *Yielder) (B, error)) (A, B, error) {
	var firstErr error
	ha := Spawn(y, func(y *Yielder) result2[A, B] {
		a, err := fa(y)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return result2[A, B]{a: a, errA: err}
	})
	hb := Spawn(y, func(y *Yielder) result2[A, B] {
		b, err := fb(y)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return result2[A, B]{b: b, errB: err}
	})

	ra := ha.Join(y)
	rb := hb.Join(y)

	var zeroA A
	var zeroB B
	if firstErr != nil {
		return zeroA, zeroB, firstErr
	}
	return ra.a, rb.b, nil
}
