// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fence

// Ordering annotates an atomic load or store with its memory ordering.
//
// Orderings attach to the access itself, not to a nearby fence. Loads
// accept Relaxed, Acquire, and SeqCst; stores accept Relaxed, Release,
// and SeqCst; read-modify-write operations accept all five.
//
// Consume (data-dependency) ordering is deliberately absent: mainstream
// toolchains promote it to Acquire, and so does this package.
type Ordering int

const (
	// Relaxed guarantees atomicity only: no tearing, no invented or
	// merged accesses, but no cross-thread ordering.
	Relaxed Ordering = iota
	// Acquire orders the annotated load before all later loads and
	// stores in program order.
	Acquire
	// Release orders all prior loads and stores before the annotated
	// store in program order.
	Release
	// AcqRel combines Acquire and Release; valid on read-modify-write
	// operations only.
	AcqRel
	// SeqCst additionally places the access in the single total order
	// shared by all SeqCst operations.
	SeqCst
)

// String implements fmt.Stringer.
func (o Ordering) String() string {
	switch o {
	case Relaxed:
		return "relaxed"
	case Acquire:
		return "acquire"
	case Release:
		return "release"
	case AcqRel:
		return "acq_rel"
	case SeqCst:
		return "seq_cst"
	default:
		return "invalid"
	}
}

// loadOrdering reports whether o is valid for a load.
func loadOrdering(o Ordering) bool {
	return o == Relaxed || o == Acquire || o == SeqCst
}

// storeOrdering reports whether o is valid for a store.
func storeOrdering(o Ordering) bool {
	return o == Relaxed || o == Release || o == SeqCst
}

// rmwOrdering reports whether o is valid for a read-modify-write.
func rmwOrdering(o Ordering) bool {
	return o >= Relaxed && o <= SeqCst
}

// FenceKind identifies one of the fence operations. It carries no state;
// its only runtime use is tagging fencetrace events and counters.
type FenceKind int

const (
	// FenceFull tags [FullFence].
	FenceFull FenceKind = iota
	// FenceRead tags [ReadFence].
	FenceRead
	// FenceWrite tags [WriteFence].
	FenceWrite
	// FenceAcquire tags [AcquireFence].
	FenceAcquire
	// FenceRelease tags [ReleaseFence].
	FenceRelease
	// FenceAcqRel tags [AcquireReleaseFence].
	FenceAcqRel
	// FenceCompiler tags [CompilerBarrier].
	FenceCompiler

	fenceKinds = iota
)

// String implements fmt.Stringer.
func (k FenceKind) String() string {
	switch k {
	case FenceFull:
		return "full"
	case FenceRead:
		return "read"
	case FenceWrite:
		return "write"
	case FenceAcquire:
		return "acquire"
	case FenceRelease:
		return "release"
	case FenceAcqRel:
		return "acq_rel"
	case FenceCompiler:
		return "compiler"
	default:
		return "invalid"
	}
}
