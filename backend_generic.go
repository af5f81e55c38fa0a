// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !amd64 && !arm64 && !riscv64 && !fence_native

package fence

import (
	"code.hybscloud.com/atomix"
	"golang.org/x/sys/cpu"
)

// Generic backend: architectures without a hand-written barrier file.
// A sequentially consistent read-modify-write on a private word is a
// full fence under the Go memory model, and a full fence satisfies the
// contract of every weaker fence. Builds that refuse this mapping use
// the fence_native tag and fail instead (backend_unsupported.go).

// backendStrategy: the runtime's standardized seq-cst primitives.
const backendStrategy = StrategyStandard

var hostCaps = Capability{
	AtomicWord:       true,
	AtomicDoubleword: true,
	OrderedLoadStore: true,
}

// fenceWord is the private location every generic fence hits. Padded to
// its own cache line so unrelated traffic does not contend on it.
var fenceWord struct {
	_ cpu.CacheLinePad
	w atomix.Uint32
	_ cpu.CacheLinePad
}

func fullFence() { fenceWord.w.Add(0) }

func readFence() { fullFence() }

func writeFence() { fullFence() }

func acquireFence() { fullFence() }

func releaseFence() { fullFence() }

func acquireReleaseFence() { fullFence() }

//go:noinline
func pause() {}
