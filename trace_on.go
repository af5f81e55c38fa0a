// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build fencetrace

package fence

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
)

// TraceEnabled reports whether this build carries the fencetrace
// instrumentation.
const TraceEnabled = true

// tracer holds the registered Tracer. Stored behind the stdlib atomic
// pointer, not a fence type: tracing a tracer load would recurse.
var tracer atomic.Pointer[Tracer]

// fenceCalls counts fence invocations per kind since process start.
var fenceCalls [fenceKinds]atomix.Uint64

// SetTracer registers fn to receive all traced events, replacing any
// previous tracer. A nil fn disables dispatch; counters keep counting.
func SetTracer(fn Tracer) {
	if fn == nil {
		tracer.Store(nil)
		return
	}
	tracer.Store(&fn)
}

// FenceCalls returns how many times the fence tagged k has been called.
func FenceCalls(k FenceKind) uint64 {
	return fenceCalls[k].Load()
}

func traceFence(k FenceKind) {
	fenceCalls[k].Add(1)
	if t := tracer.Load(); t != nil {
		(*t)(Event{Kind: EventFence, Fence: k})
	}
}

func traceLoad(addr uintptr, o Ordering) {
	if t := tracer.Load(); t != nil {
		(*t)(Event{Kind: EventLoad, Order: o, Addr: addr})
	}
}

func traceStore(addr uintptr, o Ordering) {
	if t := tracer.Load(); t != nil {
		(*t)(Event{Kind: EventStore, Order: o, Addr: addr})
	}
}

func traceRMW(addr uintptr, o Ordering) {
	if t := tracer.Load(); t != nil {
		(*t)(Event{Kind: EventRMW, Order: o, Addr: addr})
	}
}
