// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fence

// FullFence orders all loads and stores issued before the call against
// all loads and stores issued after it, in both directions, as observed
// by every other thread. This is the only fence that defeats store-buffer
// forwarding (StoreLoad ordering).
func FullFence() {
	traceFence(FenceFull)
	fullFence()
}

// ReadFence orders prior loads against later loads. It provides no store
// ordering; the observing side of a publish/observe pair must use it (or
// [AcquireFence]) together with an atomic load of the shared flag.
func ReadFence() {
	traceFence(FenceRead)
	readFence()
}

// WriteFence orders prior stores against later stores. It provides no
// load ordering.
func WriteFence() {
	traceFence(FenceWrite)
	writeFence()
}

// AcquireFence must immediately follow an atomic load whose result gates
// it. It orders that load against all later loads and stores: nothing
// after the fence can be observed as happening before the load completed.
func AcquireFence() {
	traceFence(FenceAcquire)
	acquireFence()
}

// ReleaseFence must immediately precede the atomic store it guards. It
// orders all prior loads and stores against that store: nothing before
// the fence can be observed as happening after the store.
func ReleaseFence() {
	traceFence(FenceRelease)
	releaseFence()
}

// AcquireReleaseFence combines [AcquireFence] and [ReleaseFence]: prior
// loads order against later loads and stores, prior stores order against
// later stores. It does NOT order prior stores against later loads; an
// algorithm that needs StoreLoad ordering (flag-based mutual exclusion,
// store-buffering litmus) requires [FullFence].
func AcquireReleaseFence() {
	traceFence(FenceAcqRel)
	acquireReleaseFence()
}

// CompilerBarrier pins compile-time instruction scheduling and code
// motion at the call site. It emits no barrier instruction and gives
// zero hardware ordering; it is not a substitute for any fence above.
func CompilerBarrier() {
	traceFence(FenceCompiler)
	compilerBarrier()
}

// Pause hints to the processor that the caller is in a spin-wait loop
// (PAUSE on amd64, YIELD on arm64). No ordering semantics.
func Pause() {
	pause()
}

// compilerBarrier is an opaque call: the compiler cannot prove it does
// not access memory, so no load or store migrates across it.
//
//go:noinline
func compilerBarrier() {}
