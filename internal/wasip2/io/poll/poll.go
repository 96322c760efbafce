// Package poll mirrors the generated bindings for `wasi:io/poll`.
//
// This is hand-written in the shape wit-bindgen-go emits: the `Pollable`
// resource is a bare `uint32` handle (an index into the host's resource
// table) and every host call is declared with `go:wasmimport` against the
// component's canonical import name. None of this package is meant to be
// read as "real" business logic — it is the capability surface the rest of
// this module treats as an external collaborator (spec.md §6.1).
package poll

import "go.bytecodealliance.org/cm"

// Pollable is an owned handle to a host pollable resource.
type Pollable uint32

// Ready performs a non-blocking readiness check.
//
//go:wasmimport wasi:io/poll@0.2.0 [method]pollable.ready
//go:noescape
func (p Pollable) Ready() bool

// Block blocks the calling instance until this pollable resolves.
//
//go:wasmimport wasi:io/poll@0.2.0 [method]pollable.block
//go:noescape
func (p Pollable) Block()

// ResourceDrop releases the host-side resource backing this handle.
//
//go:wasmimport wasi:io/poll@0.2.0 [resource-drop]pollable
//go:noescape
func (p Pollable) ResourceDrop()

// Poll blocks until at least one of the given pollables is ready, returning
// the indices (into in) of the ones that are.
//
//go:wasmimport wasi:io/poll@0.2.0 poll
//go:noescape
func Poll(in cm.List[Pollable]) cm.List[uint32]
