// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fence_test

import (
	"testing"

	"code.hybscloud.com/fence"
)

// BenchmarkFullFence measures the full barrier, the only fence that
// drains the store buffer.
func BenchmarkFullFence(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		fence.FullFence()
	}
}

// BenchmarkAcquireFence is compiler-only on TSO targets.
func BenchmarkAcquireFence(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		fence.AcquireFence()
	}
}

// BenchmarkCompilerBarrier bounds the cost of the opaque call itself.
func BenchmarkCompilerBarrier(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		fence.CompilerBarrier()
	}
}

// BenchmarkLoadRelaxed exercises the plain-access fast path on TSO.
func BenchmarkLoadRelaxed(b *testing.B) {
	var x fence.Uint64
	b.ReportAllocs()
	for b.Loop() {
		_ = x.Load(fence.Relaxed)
	}
}

// BenchmarkLoadAcquire goes through the runtime's atomic entry point.
func BenchmarkLoadAcquire(b *testing.B) {
	var x fence.Uint64
	b.ReportAllocs()
	for b.Loop() {
		_ = x.Load(fence.Acquire)
	}
}

// BenchmarkStoreRelease measures the publish-side store.
func BenchmarkStoreRelease(b *testing.B) {
	var x fence.Uint64
	i := uint64(0)
	b.ReportAllocs()
	for b.Loop() {
		i++
		x.Store(i, fence.Release)
	}
}

// BenchmarkPublishObserve measures a full single-goroutine round trip
// of the flag pattern: release store, acquire load, fences included.
func BenchmarkPublishObserve(b *testing.B) {
	var payload uint64
	var flag fence.Uint64
	i := uint64(0)
	b.ReportAllocs()
	for b.Loop() {
		i++
		payload = i
		fence.ReleaseFence()
		flag.Store(i, fence.Relaxed)
		for flag.Load(fence.Relaxed) != i {
			fence.Pause()
		}
		fence.AcquireFence()
		if payload != i {
			b.Fatal("stale payload on a single goroutine")
		}
	}
}

// BenchmarkPause measures the spin-wait hint.
func BenchmarkPause(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		fence.Pause()
	}
}
