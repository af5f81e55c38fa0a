// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build fence_native && !amd64 && !arm64 && !riscv64

package fence

// This build requested a native barrier backend (fence_native) on an
// architecture that has none. The declarations below have no bodies and
// no assembly on purpose: the build fails here, naming this file, rather
// than degrading to a compiler-only or generic mapping that would
// silently race.

const backendStrategy = StrategyInvalid

var hostCaps = Capability{
	AtomicWord:       true,
	AtomicDoubleword: true,
}

func fullFence() // unsupported platform: no native barrier backend

func readFence() // unsupported platform: no native barrier backend

func writeFence() // unsupported platform: no native barrier backend

func acquireFence() // unsupported platform: no native barrier backend

func releaseFence() // unsupported platform: no native barrier backend

func acquireReleaseFence() // unsupported platform: no native barrier backend

func pause() // unsupported platform: no native barrier backend
