// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fence

// amd64 is total store order: the hardware already performs every load
// as an acquire load and every store as a release store, and only
// StoreLoad reordering is architecturally visible. The classic barrier
// instructions cover the rest: LFENCE for load ordering, SFENCE for
// store ordering, MFENCE to drain the store buffer.

// backendStrategy: classic asymmetric barrier instructions.
const backendStrategy = StrategyBarrier

var hostCaps = Capability{
	AtomicWord:        true,
	AtomicDoubleword:  true,
	FenceInstructions: true,
}

//go:noescape
func fullFence() // MFENCE

//go:noescape
func readFence() // LFENCE

//go:noescape
func writeFence() // SFENCE

//go:noescape
func pause() // PAUSE

// TSO keeps acquire and release ordering for free; only compile-time
// code motion must be pinned, which the opaque call itself does.

//go:noinline
func acquireFence() {}

//go:noinline
func releaseFence() {}

// acquireReleaseFence is exact on TSO: the hardware orders everything
// except StoreLoad, which this fence does not promise.
//
//go:noinline
func acquireReleaseFence() {}
