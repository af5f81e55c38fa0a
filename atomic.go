// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fence

import (
	"math/bits"
	"sync/atomic"
	"unsafe"
)

// The types below are the only supported way to touch a location used
// for cross-thread synchronization. Once a location is accessed through
// one of them, plain access to the same memory is undefined: the
// platform may legally split, merge, hoist, or invent untyped accesses.
//
// Loads accept Relaxed, Acquire, and SeqCst. Stores accept Relaxed,
// Release, and SeqCst. Read-modify-write operations accept all five
// orderings. An invalid ordering panics.
//
// Relaxed accesses take a plain machine access on TSO architectures
// when the value fits in one word (see plainRelaxed); everything else
// goes through the runtime's atomic entry points, which are at least as
// strong as any ordering requested here.

// Uint32 is a word-sized atomic location holding a uint32.
type Uint32 struct{ v uint32 }

// Load returns the current value with the requested ordering attached
// to the load itself.
func (x *Uint32) Load(o Ordering) uint32 {
	if !loadOrdering(o) {
		panic("fence: invalid load ordering " + o.String())
	}
	traceLoad(uintptr(unsafe.Pointer(&x.v)), o)
	if plainRelaxed && o == Relaxed {
		return x.v
	}
	return atomic.LoadUint32(&x.v)
}

// Store writes v with the requested ordering attached to the store itself.
func (x *Uint32) Store(v uint32, o Ordering) {
	if !storeOrdering(o) {
		panic("fence: invalid store ordering " + o.String())
	}
	traceStore(uintptr(unsafe.Pointer(&x.v)), o)
	if plainRelaxed && o == Relaxed {
		x.v = v
		return
	}
	atomic.StoreUint32(&x.v, v)
}

// Add atomically adds delta and returns the new value.
func (x *Uint32) Add(delta uint32, o Ordering) uint32 {
	checkRMW(o)
	traceRMW(uintptr(unsafe.Pointer(&x.v)), o)
	return atomic.AddUint32(&x.v, delta)
}

// Swap atomically replaces the value and returns the old one.
func (x *Uint32) Swap(v uint32, o Ordering) uint32 {
	checkRMW(o)
	traceRMW(uintptr(unsafe.Pointer(&x.v)), o)
	return atomic.SwapUint32(&x.v, v)
}

// CompareAndSwap executes the compare-and-swap for x.
func (x *Uint32) CompareAndSwap(old, new uint32, o Ordering) bool {
	checkRMW(o)
	traceRMW(uintptr(unsafe.Pointer(&x.v)), o)
	return atomic.CompareAndSwapUint32(&x.v, old, new)
}

// IsLockFree reports whether this location is implemented without an
// internal lock on the compiled backend.
func (x *Uint32) IsLockFree() bool { return hostCaps.AtomicWord }

// Uint64 is an atomic location holding a uint64.
//
// On 32-bit architectures the location must be 64-bit aligned; the
// first word of an allocated struct, array, or slice is.
type Uint64 struct{ v uint64 }

// Load returns the current value with the requested ordering attached
// to the load itself.
func (x *Uint64) Load(o Ordering) uint64 {
	if !loadOrdering(o) {
		panic("fence: invalid load ordering " + o.String())
	}
	traceLoad(uintptr(unsafe.Pointer(&x.v)), o)
	if plainRelaxed && o == Relaxed && bits.UintSize == 64 {
		return x.v
	}
	return atomic.LoadUint64(&x.v)
}

// Store writes v with the requested ordering attached to the store itself.
func (x *Uint64) Store(v uint64, o Ordering) {
	if !storeOrdering(o) {
		panic("fence: invalid store ordering " + o.String())
	}
	traceStore(uintptr(unsafe.Pointer(&x.v)), o)
	if plainRelaxed && o == Relaxed && bits.UintSize == 64 {
		x.v = v
		return
	}
	atomic.StoreUint64(&x.v, v)
}

// Add atomically adds delta and returns the new value.
func (x *Uint64) Add(delta uint64, o Ordering) uint64 {
	checkRMW(o)
	traceRMW(uintptr(unsafe.Pointer(&x.v)), o)
	return atomic.AddUint64(&x.v, delta)
}

// Swap atomically replaces the value and returns the old one.
func (x *Uint64) Swap(v uint64, o Ordering) uint64 {
	checkRMW(o)
	traceRMW(uintptr(unsafe.Pointer(&x.v)), o)
	return atomic.SwapUint64(&x.v, v)
}

// CompareAndSwap executes the compare-and-swap for x.
func (x *Uint64) CompareAndSwap(old, new uint64, o Ordering) bool {
	checkRMW(o)
	traceRMW(uintptr(unsafe.Pointer(&x.v)), o)
	return atomic.CompareAndSwapUint64(&x.v, old, new)
}

// IsLockFree reports whether this location is implemented without an
// internal lock on the compiled backend.
func (x *Uint64) IsLockFree() bool { return hostCaps.AtomicDoubleword }

// Uintptr is a word-sized atomic location holding a uintptr.
type Uintptr struct{ v uintptr }

// Load returns the current value with the requested ordering attached
// to the load itself.
func (x *Uintptr) Load(o Ordering) uintptr {
	if !loadOrdering(o) {
		panic("fence: invalid load ordering " + o.String())
	}
	traceLoad(uintptr(unsafe.Pointer(&x.v)), o)
	if plainRelaxed && o == Relaxed {
		return x.v
	}
	return atomic.LoadUintptr(&x.v)
}

// Store writes v with the requested ordering attached to the store itself.
func (x *Uintptr) Store(v uintptr, o Ordering) {
	if !storeOrdering(o) {
		panic("fence: invalid store ordering " + o.String())
	}
	traceStore(uintptr(unsafe.Pointer(&x.v)), o)
	if plainRelaxed && o == Relaxed {
		x.v = v
		return
	}
	atomic.StoreUintptr(&x.v, v)
}

// Add atomically adds delta and returns the new value.
func (x *Uintptr) Add(delta uintptr, o Ordering) uintptr {
	checkRMW(o)
	traceRMW(uintptr(unsafe.Pointer(&x.v)), o)
	return atomic.AddUintptr(&x.v, delta)
}

// Swap atomically replaces the value and returns the old one.
func (x *Uintptr) Swap(v uintptr, o Ordering) uintptr {
	checkRMW(o)
	traceRMW(uintptr(unsafe.Pointer(&x.v)), o)
	return atomic.SwapUintptr(&x.v, v)
}

// CompareAndSwap executes the compare-and-swap for x.
func (x *Uintptr) CompareAndSwap(old, new uintptr, o Ordering) bool {
	checkRMW(o)
	traceRMW(uintptr(unsafe.Pointer(&x.v)), o)
	return atomic.CompareAndSwapUintptr(&x.v, old, new)
}

// IsLockFree reports whether this location is implemented without an
// internal lock on the compiled backend.
func (x *Uintptr) IsLockFree() bool { return hostCaps.AtomicWord }

// Bool is a word-backed atomic flag, the publish/observe pattern's
// usual shared location.
type Bool struct{ v uint32 }

// Load returns the current value with the requested ordering attached
// to the load itself.
func (x *Bool) Load(o Ordering) bool {
	if !loadOrdering(o) {
		panic("fence: invalid load ordering " + o.String())
	}
	traceLoad(uintptr(unsafe.Pointer(&x.v)), o)
	if plainRelaxed && o == Relaxed {
		return x.v != 0
	}
	return atomic.LoadUint32(&x.v) != 0
}

// Store writes v with the requested ordering attached to the store itself.
func (x *Bool) Store(v bool, o Ordering) {
	if !storeOrdering(o) {
		panic("fence: invalid store ordering " + o.String())
	}
	traceStore(uintptr(unsafe.Pointer(&x.v)), o)
	if plainRelaxed && o == Relaxed {
		x.v = b32(v)
		return
	}
	atomic.StoreUint32(&x.v, b32(v))
}

// Swap atomically replaces the value and returns the old one.
func (x *Bool) Swap(v bool, o Ordering) bool {
	checkRMW(o)
	traceRMW(uintptr(unsafe.Pointer(&x.v)), o)
	return atomic.SwapUint32(&x.v, b32(v)) != 0
}

// CompareAndSwap executes the compare-and-swap for x.
func (x *Bool) CompareAndSwap(old, new bool, o Ordering) bool {
	checkRMW(o)
	traceRMW(uintptr(unsafe.Pointer(&x.v)), o)
	return atomic.CompareAndSwapUint32(&x.v, b32(old), b32(new))
}

// IsLockFree reports whether this location is implemented without an
// internal lock on the compiled backend.
func (x *Bool) IsLockFree() bool { return hostCaps.AtomicWord }

func b32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// Pointer is a word-sized atomic location holding a *T.
type Pointer[T any] struct{ p unsafe.Pointer }

// Load returns the current pointer with the requested ordering attached
// to the load itself.
func (x *Pointer[T]) Load(o Ordering) *T {
	if !loadOrdering(o) {
		panic("fence: invalid load ordering " + o.String())
	}
	traceLoad(uintptr(unsafe.Pointer(&x.p)), o)
	if plainRelaxed && o == Relaxed {
		return (*T)(x.p)
	}
	return (*T)(atomic.LoadPointer(&x.p))
}

// Store writes v with the requested ordering attached to the store itself.
func (x *Pointer[T]) Store(v *T, o Ordering) {
	if !storeOrdering(o) {
		panic("fence: invalid store ordering " + o.String())
	}
	traceStore(uintptr(unsafe.Pointer(&x.p)), o)
	if plainRelaxed && o == Relaxed {
		x.p = unsafe.Pointer(v)
		return
	}
	atomic.StorePointer(&x.p, unsafe.Pointer(v))
}

// Swap atomically replaces the pointer and returns the old one.
func (x *Pointer[T]) Swap(v *T, o Ordering) *T {
	checkRMW(o)
	traceRMW(uintptr(unsafe.Pointer(&x.p)), o)
	return (*T)(atomic.SwapPointer(&x.p, unsafe.Pointer(v)))
}

// CompareAndSwap executes the compare-and-swap for x.
func (x *Pointer[T]) CompareAndSwap(old, new *T, o Ordering) bool {
	checkRMW(o)
	traceRMW(uintptr(unsafe.Pointer(&x.p)), o)
	return atomic.CompareAndSwapPointer(&x.p, unsafe.Pointer(old), unsafe.Pointer(new))
}

// IsLockFree reports whether this location is implemented without an
// internal lock on the compiled backend.
func (x *Pointer[T]) IsLockFree() bool { return hostCaps.AtomicWord }

func checkRMW(o Ordering) {
	if !rmwOrdering(o) {
		panic("fence: invalid rmw ordering " + o.String())
	}
}
