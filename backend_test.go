// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fence_test

import (
	"errors"
	"testing"
	"testing/quick"

	"code.hybscloud.com/fence"
)

func TestSelectStrategy(t *testing.T) {
	cases := []struct {
		name string
		caps fence.Capability
		want fence.Strategy
		err  error
	}{
		{
			name: "standard primitives",
			caps: fence.Capability{AtomicWord: true, OrderedLoadStore: true},
			want: fence.StrategyStandard,
		},
		{
			name: "classic barriers",
			caps: fence.Capability{AtomicWord: true, FenceInstructions: true},
			want: fence.StrategyBarrier,
		},
		{
			name: "both available prefers standard",
			caps: fence.Capability{AtomicWord: true, OrderedLoadStore: true, FenceInstructions: true},
			want: fence.StrategyStandard,
		},
		{
			name: "nothing",
			caps: fence.Capability{},
			want: fence.StrategyInvalid,
			err:  fence.ErrUnsupportedPlatform,
		},
		{
			name: "barriers without lock-free word atomics",
			caps: fence.Capability{FenceInstructions: true, OrderedLoadStore: true},
			want: fence.StrategyInvalid,
			err:  fence.ErrUnsupportedPlatform,
		},
	}

	for _, tc := range cases {
		got, err := fence.SelectStrategy(tc.caps)
		if got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
		if !errors.Is(err, tc.err) {
			t.Errorf("%s: got err %v, want %v", tc.name, err, tc.err)
		}
	}
}

// TestSelectStrategyMatchesBuild: the runtime mirror of the dispatch
// must agree with what the build-tag selection actually compiled in.
func TestSelectStrategyMatchesBuild(t *testing.T) {
	got, err := fence.SelectStrategy(fence.HostCapability())
	if err != nil {
		t.Fatalf("host descriptor rejected: %v", err)
	}
	if got != fence.Backend() {
		t.Fatalf("selection resolves to %v, build compiled %v", got, fence.Backend())
	}
	if fence.Backend() == fence.StrategyInvalid {
		t.Fatal("a running test binary cannot have an invalid backend")
	}
}

// TestSelectStrategyDeterministic: selection is a pure function of the
// descriptor; repeated resolution never diverges.
func TestSelectStrategyDeterministic(t *testing.T) {
	property := func(word, dword, ordered, fences bool) bool {
		c := fence.Capability{
			AtomicWord:        word,
			AtomicDoubleword:  dword,
			OrderedLoadStore:  ordered,
			FenceInstructions: fences,
		}
		s1, e1 := fence.SelectStrategy(c)
		s2, e2 := fence.SelectStrategy(c)
		return s1 == s2 && (e1 == nil) == (e2 == nil) &&
			errors.Is(e1, fence.ErrUnsupportedPlatform) == errors.Is(e2, fence.ErrUnsupportedPlatform)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// TestIsLockFree: lock-freedom is a platform constant, consistent with
// the host capability descriptor and stable across locations and calls.
func TestIsLockFree(t *testing.T) {
	caps := fence.HostCapability()

	var u32a, u32b fence.Uint32
	if u32a.IsLockFree() != caps.AtomicWord || u32b.IsLockFree() != u32a.IsLockFree() {
		t.Fatal("Uint32 lock-freedom inconsistent with host capability")
	}
	var u64 fence.Uint64
	if u64.IsLockFree() != caps.AtomicDoubleword {
		t.Fatal("Uint64 lock-freedom inconsistent with host capability")
	}
	var up fence.Uintptr
	var b fence.Bool
	var p fence.Pointer[uint64]
	for i := 0; i < 3; i++ {
		if up.IsLockFree() != caps.AtomicWord ||
			b.IsLockFree() != caps.AtomicWord ||
			p.IsLockFree() != caps.AtomicWord {
			t.Fatal("word-sized lock-freedom not stable")
		}
	}
}

func TestStrategyString(t *testing.T) {
	if fence.StrategyStandard.String() != "standard" ||
		fence.StrategyBarrier.String() != "barrier" ||
		fence.StrategyInvalid.String() != "invalid" {
		t.Fatal("Strategy.String mismatch")
	}
}
