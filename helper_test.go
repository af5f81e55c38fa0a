// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fence_test

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// stressIters is the per-pair iteration count for visibility stress runs.
const stressIters = 100000

// rendezvous is a reusable two-party barrier for lockstep litmus rounds.
// Each party calls await with its own monotonically increasing phase
// number; await returns once both parties reached that phase. The
// underlying seq-cst counter also gives the rounds a happens-before
// edge, so per-round bookkeeping written before await(p) is visible to
// the peer after its own await(p).
type rendezvous struct {
	arrived atomix.Uint64
}

// await blocks until both parties arrived at phase p (0-based).
// Waits with adaptive backoff, like every hot wait in this module.
func (z *rendezvous) await(p uint64) {
	z.arrived.Add(1)
	var bo iox.Backoff
	for z.arrived.Load() < (p+1)*2 {
		bo.Wait()
	}
}

// vlog is a lock-free violation log. The observer goroutine records in
// its hot loop without taking a lock or allocating; the test drains
// after the join. Overflowing records are counted, not lost silently.
type vlog struct {
	q       lfq.SPSC[uint64]
	count   atomix.Uint64
	dropped atomix.Uint64
}

const vlogCapacity = 1024

func newVlog() *vlog {
	v := &vlog{}
	v.q.Init(vlogCapacity)
	return v
}

// record notes a violation at iteration iter. Non-blocking: on a full
// queue the detail is dropped but the count still advances.
func (v *vlog) record(iter uint64) {
	v.count.Add(1)
	slot := iter
	if err := v.q.Enqueue(&slot); err != nil {
		v.dropped.Add(1)
	}
}

// drain consumes all recorded iterations. Call after the workers joined.
func (v *vlog) drain(f func(iter uint64)) {
	for {
		iter, err := v.q.Dequeue()
		if err != nil {
			return
		}
		f(iter)
	}
}
