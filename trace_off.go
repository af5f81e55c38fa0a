// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !fencetrace

package fence

// TraceEnabled reports whether this build carries the fencetrace
// instrumentation.
const TraceEnabled = false

// SetTracer is a no-op without the fencetrace tag.
func SetTracer(Tracer) {}

// FenceCalls always returns zero without the fencetrace tag.
func FenceCalls(FenceKind) uint64 { return 0 }

// The empty hooks inline to nothing.

func traceFence(FenceKind) {}

func traceLoad(uintptr, Ordering) {}

func traceStore(uintptr, Ordering) {}

func traceRMW(uintptr, Ordering) {}
