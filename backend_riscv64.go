// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fence

// riscv64 defines fences over predecessor/successor access sets
// (FENCE R,RW for load-acquire, FENCE RW,W for store-release). The Go
// assembler only emits the full-set form, so every fence maps to
// FENCE RW,RW; stronger than each fence's contract, never weaker.

// backendStrategy: standardized fence primitives.
const backendStrategy = StrategyStandard

var hostCaps = Capability{
	AtomicWord:       true,
	AtomicDoubleword: true,
	OrderedLoadStore: true,
}

//go:noescape
func fullFence() // FENCE

func readFence() { fullFence() }

func writeFence() { fullFence() }

func acquireFence() { fullFence() }

func releaseFence() { fullFence() }

func acquireReleaseFence() { fullFence() }

// pause: Zihintpause is not assumed; the opaque call is the hint.
//
//go:noinline
func pause() {}
