/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package pmutex

import "github.com/adaptivelock/parl/perrors"

// the packed state word's bit layout
//   - locked(1) + nspin(7) + nsleep(11) + nspinFail(7) = 26 bits,
//     fitting a single [sync/atomic.Uint32]
const (
	lockedBits    = 1
	nspinBits     = 7
	nsleepBits    = 11
	nspinFailBits = 7

	lockedShift    = 0
	nspinShift     = lockedShift + lockedBits
	nsleepShift    = nspinShift + nspinBits
	nspinFailShift = nsleepShift + nsleepBits

	lockedMask    = uint32(1)<<lockedBits - 1
	nspinMask     = uint32(1)<<nspinBits - 1
	nsleepMask    = uint32(1)<<nsleepBits - 1
	nspinFailMask = uint32(1)<<nspinFailBits - 1

	// nspinMax is the saturation value of the nspin field
	nspinMax = nspinMask
	// nsleepMax bounds nsleep: in practice never reached, see [state.withNsleepInc]
	nsleepMax = nsleepMask
	// nspinFailMax is the saturation value of the nspinFail field
	nspinFailMax = nspinFailMask

	// spinFailThreshold: once nspinFail reaches this, new contenders skip
	// spinning entirely and register a sleep slot directly
	spinFailThreshold = nspinMax

	// maxSpinIterations is the pause-iteration budget a lone spinner
	// (nspinFail == 0) would perform; a mutex that has recently been hard
	// to acquire yields proportionally shorter spins
	maxSpinIterations = 4000
)

// state is the packed lock-bit-plus-three-counters word
//   - value semantics: decoded from / encoded to the mutex's single
//     atomic word by [Mutex] methods, never itself mutated in place
//     by anything but a CAS on that word
type state uint32

// locked reports whether the mutex is held
func (s state) locked() bool { return uint32(s)&lockedMask != 0 }

// nspin is the count of threads currently spinning for this mutex
func (s state) nspin() uint32 { return (uint32(s) >> nspinShift) & nspinMask }

// nsleep is the count of threads parked (or about to park) on this mutex
func (s state) nsleep() uint32 { return (uint32(s) >> nsleepShift) & nsleepMask }

// nspinFail is the adaptive spin-failure counter
func (s state) nspinFail() uint32 { return (uint32(s) >> nspinFailShift) & nspinFailMask }

// withLocked returns s with its locked bit set to locked
func (s state) withLocked(locked bool) (s2 state) {
	if locked {
		return state(uint32(s) | lockedMask<<lockedShift)
	}
	return state(uint32(s) &^ (lockedMask << lockedShift))
}

// withNspinInc returns s with nspin incremented by one
//   - panics if nspin is already at [nspinMax]: the caller must have
//     checked nspin < nspinMax before choosing this transition
func (s state) withNspinInc() (s2 state) { return s.setNspin(mustInc(s.nspin(), nspinMax, "nspin")) }

// withNspinDec returns s with nspin decremented by one
//   - panics if nspin is already zero
func (s state) withNspinDec() (s2 state) { return s.setNspin(mustDec(s.nspin(), "nspin")) }

func (s state) setNspin(v uint32) (s2 state) {
	return state(uint32(s)&^(nspinMask<<nspinShift) | (v&nspinMask)<<nspinShift)
}

// withNsleepInc returns s with nsleep incremented by one
//   - panics if nsleep is already at [nsleepMax]: in practice nsleep is
//     bounded by the live goroutine count and never wraps; this module
//     makes that guard explicit rather than wrapping silently
func (s state) withNsleepInc() (s2 state) {
	return s.setNsleep(mustInc(s.nsleep(), nsleepMax, "nsleep"))
}

// withNsleepDec returns s with nsleep decremented by one
//   - panics if nsleep is already zero
func (s state) withNsleepDec() (s2 state) { return s.setNsleep(mustDec(s.nsleep(), "nsleep")) }

func (s state) setNsleep(v uint32) (s2 state) {
	return state(uint32(s)&^(nsleepMask<<nsleepShift) | (v&nsleepMask)<<nsleepShift)
}

// withNspinFailInc returns s with nspinFail incremented, saturating at
// [nspinFailMax] rather than panicking: this field tracks recent
// contention pressure, not a hard resource bound
func (s state) withNspinFailInc() (s2 state) {
	if v := s.nspinFail(); v < nspinFailMax {
		return s.setNspinFail(v + 1)
	}
	return s
}

// withNspinFailDec returns s with nspinFail decremented if non-zero,
// a no-op at zero: every successful acquire relaxes the failure counter
// by one step
func (s state) withNspinFailDec() (s2 state) {
	if v := s.nspinFail(); v > 0 {
		return s.setNspinFail(v - 1)
	}
	return s
}

func (s state) setNspinFail(v uint32) (s2 state) {
	return state(uint32(s)&^(nspinFailMask<<nspinFailShift) | (v&nspinFailMask)<<nspinFailShift)
}

// mustInc increments value by one, panicking if it is already at maxValue
func mustInc(value, maxValue uint32, field string) (incremented uint32) {
	if value >= maxValue {
		panic(perrors.ErrorfPF("%s already at max %d", field, maxValue))
	}
	return value + 1
}

// mustDec decrements value by one, panicking if it is already zero
func mustDec(value uint32, field string) (decremented uint32) {
	if value == 0 {
		panic(perrors.ErrorfPF("%s already zero", field))
	}
	return value - 1
}
