// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fence

// Debug-mode misuse instrumentation. The pairing contract (fence next to
// the atomic access it guards) is not detectable at runtime in general;
// builds with the fencetrace tag report every fence and atomic access so
// a test harness can check the shape of the stream. None of this is part
// of the production contract, and without the tag it compiles to nothing.

// EventKind discriminates traced operations.
type EventKind int

const (
	// EventFence is a fence call.
	EventFence EventKind = iota
	// EventLoad is an atomic load.
	EventLoad
	// EventStore is an atomic store.
	EventStore
	// EventRMW is an atomic read-modify-write.
	EventRMW
)

// String implements fmt.Stringer.
func (k EventKind) String() string {
	switch k {
	case EventFence:
		return "fence"
	case EventLoad:
		return "load"
	case EventStore:
		return "store"
	case EventRMW:
		return "rmw"
	default:
		return "invalid"
	}
}

// Event is one traced operation. Addr identifies the location for
// atomic accesses and is zero for fences; Order is meaningless for
// fences and Fence for accesses.
type Event struct {
	Kind  EventKind
	Fence FenceKind
	Order Ordering
	Addr  uintptr
}

// Tracer receives every traced event. It runs on the calling goroutine,
// inside the hot path; keep it trivial.
type Tracer func(Event)
