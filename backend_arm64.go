// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fence

// arm64 exposes standardized barrier primitives directly: DMB ISHLD
// waits for prior loads and orders them against later loads and stores
// (acquire), DMB ISHST orders stores against stores, DMB ISH is the
// full barrier. Release and acquire-release need prior loads ordered
// against later stores as well, which only DMB ISH provides; mapping
// them to the full barrier is stronger than promised, never weaker.

// backendStrategy: standardized acquire/release primitives.
const backendStrategy = StrategyStandard

var hostCaps = Capability{
	AtomicWord:       true,
	AtomicDoubleword: true,
	OrderedLoadStore: true,
}

//go:noescape
func fullFence() // DMB ISH

//go:noescape
func readFence() // DMB ISHLD

//go:noescape
func writeFence() // DMB ISHST

//go:noescape
func acquireFence() // DMB ISHLD

//go:noescape
func releaseFence() // DMB ISH

//go:noescape
func acquireReleaseFence() // DMB ISH

//go:noescape
func pause() // YIELD
