// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fence

// Strategy identifies a fence backend. The strategy is fixed at build
// time by the per-architecture files; [SelectStrategy] expresses the same
// decision as a pure function so it can be tested against arbitrary
// capability descriptors.
type Strategy int

const (
	// StrategyInvalid means no backend applies.
	StrategyInvalid Strategy = iota
	// StrategyStandard maps fences onto standardized acquire/release/
	// seq-cst primitives: read→acquire fence, write→release fence,
	// full→seq-cst fence.
	StrategyStandard
	// StrategyBarrier maps fences onto classic asymmetric barrier
	// instructions: acquire→load barrier, release→store barrier, and a
	// full barrier wherever sequential consistency is required.
	StrategyBarrier
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyStandard:
		return "standard"
	case StrategyBarrier:
		return "barrier"
	default:
		return "invalid"
	}
}

// Capability describes what a platform's toolchain and ISA provide.
// The host descriptor is fixed per build; synthetic descriptors drive
// the selection tests.
type Capability struct {
	// AtomicWord: word-sized atomic load/store without an internal lock.
	AtomicWord bool
	// AtomicDoubleword: 64-bit atomic load/store without an internal lock.
	AtomicDoubleword bool
	// OrderedLoadStore: standardized acquire/release/seq-cst primitives.
	OrderedLoadStore bool
	// FenceInstructions: classic load/store/full barrier instructions.
	FenceInstructions bool
}

// SelectStrategy resolves a capability descriptor to a backend strategy.
//
// Resolution is deterministic and prioritized: standardized ordered
// primitives win over classic barriers; a descriptor satisfying neither
// returns [ErrUnsupportedPlatform]. Lock-free word atomics are required
// in every case, since a fence cannot repair a torn flag access.
func SelectStrategy(c Capability) (Strategy, error) {
	switch {
	case c.AtomicWord && c.OrderedLoadStore:
		return StrategyStandard, nil
	case c.AtomicWord && c.FenceInstructions:
		return StrategyBarrier, nil
	default:
		return StrategyInvalid, ErrUnsupportedPlatform
	}
}

// Backend returns the strategy compiled into this build.
func Backend() Strategy {
	return backendStrategy
}

// HostCapability returns the capability descriptor of the platform this
// build targets. SelectStrategy(HostCapability()) always equals Backend().
func HostCapability() Capability {
	return hostCaps
}
