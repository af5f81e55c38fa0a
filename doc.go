// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fence provides memory fences and ordering-annotated atomic
// load/store primitives for building lock-free algorithms.
//
// Fences are selected at build time per architecture; there is no runtime
// dispatch. Atomic locations are distinct wrapper types so that plain,
// untyped access to a synchronizing variable is a type error rather than a
// convention.
//
// # Architecture
//
//   - Fences: [FullFence], [ReadFence], [WriteFence], [AcquireFence],
//     [ReleaseFence], [AcquireReleaseFence]. All map to native barrier
//     instructions (MFENCE/LFENCE/SFENCE on amd64, DMB on arm64, FENCE on
//     riscv64) or to a sequentially consistent read-modify-write on
//     [code.hybscloud.com/atomix] for other targets.
//   - Locations: [Uint32], [Uint64], [Uintptr], [Bool], [Pointer]. Load and
//     Store take an explicit [Ordering]; relaxed accesses take a plain-access
//     fast path on total-store-order architectures.
//   - Dispatch: [Backend] reports the compiled strategy; [SelectStrategy] is
//     the same decision as a pure function over a [Capability] descriptor.
//     Builds with the fence_native tag fail on architectures without a
//     native barrier backend instead of degrading to a weaker mapping.
//   - Instrumentation: with the fencetrace tag, every fence and atomic access
//     reports to an optional [Tracer] and per-kind counters. Without the tag
//     the hooks compile to nothing.
//
// # Pairing
//
// A fence alone synchronizes nothing. Every fence must be paired, across
// threads, with an atomic access on a location both threads communicate
// through: [ReleaseFence] immediately before the store that publishes,
// [AcquireFence] immediately after the load that observes. The library
// cannot detect a violation of this contract at runtime; the fencetrace
// build exists so a test harness can.
//
// [CompilerBarrier] is not a memory fence: it only pins compile-time code
// motion and provides zero hardware ordering.
//
// # Example
//
//	var flag fence.Uint32
//	var payload uint64
//
//	// publisher
//	payload = 42
//	fence.ReleaseFence()
//	flag.Store(1, fence.Relaxed)
//
//	// observer
//	for flag.Load(fence.Acquire) == 0 {
//		fence.Pause()
//	}
//	_ = payload // observes 42 in every interleaving
package fence
