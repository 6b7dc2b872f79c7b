/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package pmutex

import (
	"sync/atomic"
	"time"

	_ "unsafe"

	"github.com/adaptivelock/parl/parking"
	"github.com/adaptivelock/parl/perrors"
)

// Mutex is an adaptive spin-then-park mutual-exclusion lock
//   - zero-value is the valid, unlocked, uncontended state: no
//     constructor required
//   - not re-entrant: a goroutine already holding Mutex that calls Lock
//     again deadlocks, by design
//   - copying a Mutex after first use is invalid, enforced by a
//     [sync.noCopy]-style vet check via embedding
//
// Usage:
//
//	var mutex pmutex.Mutex
//	mutex.Lock()
//	defer mutex.Unlock()
type Mutex struct {
	_ noCopy
	// word is the packed state: locked bit + nspin + nsleep + nspinFail,
	// the sole source of truth, mutated only by CAS
	word atomic.Uint32
}

// noCopy helps `go vet` flag accidental copies of a Mutex after first use
//   - see https://golang.org/issues/8005#issuecomment-190753527
type noCopy struct{}

func (*noCopy) Lock() {}

// TryLock attempts to acquire the mutex without spinning or parking
//   - the fast path: a single CAS attempting locked: 0→1 with no other
//     field changed
//   - a single attempt: a concurrent mutation of nspin/nsleep/nspinFail
//     racing the CAS is reported as a failed TryLock, not retried —
//     callers that need to keep trying use [Mutex.Lock] or a timed variant
func (m *Mutex) TryLock() (acquired bool) {
	var old = state(m.word.Load())
	if old.locked() {
		return false
	}
	return m.word.CompareAndSwap(uint32(old), uint32(old.withLocked(true)))
}

// Lock acquires the mutex, waiting indefinitely if contended
func (m *Mutex) Lock() {
	if m.TryLock() {
		return
	}
	m.lockSlow(waitSpec{infinite: true})
}

// LockTimeout attempts to acquire the mutex, giving up after timeout has
// elapsed since the call began
//   - timeout ≤ 0 behaves as [Mutex.TryLock]
func (m *Mutex) LockTimeout(timeout time.Duration) (acquired bool) {
	if m.TryLock() {
		return true
	}
	if timeout <= 0 {
		return false
	}
	return m.lockSlow(waitSpec{relative: true, remaining: timeout}) == acquiredResult
}

// LockDeadline attempts to acquire the mutex, giving up once the
// absolute instant deadline has passed
func (m *Mutex) LockDeadline(deadline time.Time) (acquired bool) {
	if m.TryLock() {
		return true
	}
	if !deadline.After(time.Now()) {
		return false
	}
	return m.lockSlow(waitSpec{deadline: deadline}) == acquiredResult
}

// waitSpec carries the three deadline flavors Lock/LockTimeout/LockDeadline
// translate into for the shared acquire engine
type waitSpec struct {
	infinite bool
	// relative is true for a relative timeout, tracked via remaining +
	// periodic re-measurement against a fixed start instant
	relative  bool
	remaining time.Duration
	// deadline is the absolute instant, valid when neither infinite nor relative
	deadline time.Time
}

type lockResult uint8

const (
	acquiredResult lockResult = iota
	timedOutResult
)

// lockSlow is the adaptive acquire engine: the slow-path outer loop
// alternating a registration CAS, a bounded spin and a park
func (m *Mutex) lockSlow(spec waitSpec) (result lockResult) {
	var waitingSince time.Time
	if spec.relative {
		waitingSince = time.Now()
	}

	for {
		var old = state(m.word.Load())

		// step 1: registration CAS, branching on the observed prior state
		switch {
		case !old.locked():
			var new = old.withLocked(true).withNspinFailDec()
			if m.word.CompareAndSwap(uint32(old), uint32(new)) {
				return acquiredResult
			}
			continue

		case old.nspin() == nspinMax || old.nspinFail() >= spinFailThreshold:
			// skip spinning: register a sleep slot directly
			var new = old.withNsleepInc()
			if old.nspinFail() < nspinFailMax {
				new = new.withNspinFailInc()
			}
			if !m.word.CompareAndSwap(uint32(old), uint32(new)) {
				continue
			}
			if r, done := m.parkAndReconcile(&spec, &waitingSince); done {
				return r
			}
			continue

		default:
			var new = old.withNspinInc()
			if !m.word.CompareAndSwap(uint32(old), uint32(new)) {
				continue
			}
			if r, done := m.spinThenTransition(old.nspinFail()); done {
				return r
			}
			if r, done := m.parkAndReconcile(&spec, &waitingSince); done {
				return r
			}
			continue
		}
	}
}

// spinThenTransition runs the bounded spin step for a goroutine that just
// incremented nspin, with a budget fixed from the nspinFail value
// observed at spin entry
//   - returns done==true with the final result if the spin itself
//     acquired the mutex; otherwise the caller must proceed to park
func (m *Mutex) spinThenTransition(nspinFailAtEntry uint32) (result lockResult, done bool) {
	var budget = int(spinFailThreshold-nspinFailAtEntry) * (maxSpinIterations / int(nspinMax))
	if budget < 1 {
		budget = 1
	}

	for i := 0; i < budget; i++ {
		pause()

		var old = state(m.word.Load())
		if old.locked() {
			continue
		}
		if r, acquired := m.tryAcquireFromSpin(old); acquired {
			return r, true
		}
		// CAS failed: another thread mutated the word, re-read next iteration
	}

	// budget exhausted: convert the spin slot into a sleep slot, unless the
	// mutex happens to be free right now
	for {
		var old = state(m.word.Load())
		if !old.locked() {
			if r, acquired := m.tryAcquireFromSpin(old); acquired {
				return r, true
			}
			continue
		}
		var new = old.withNspinDec().withNsleepInc().withNspinFailInc()
		if m.word.CompareAndSwap(uint32(old), uint32(new)) {
			return 0, false
		}
	}
}

// tryAcquireFromSpin attempts the CAS that acquires the mutex from a spin
// slot: sets locked, decrements nspin, decrements nspinFail if non-zero
//   - shared by the bounded spin loop and its budget-exhausted transition:
//     both need the identical acquire-from-spin CAS shape
func (m *Mutex) tryAcquireFromSpin(old state) (result lockResult, acquired bool) {
	var new = old.withLocked(true).withNspinDec().withNspinFailDec()
	return acquiredResult, m.word.CompareAndSwap(uint32(old), uint32(new))
}

// parkAndReconcile parks on m's address and, on timeout, runs the
// lost-wakeup-safe reconciliation loop
//   - every genuine wake — from the park itself or from draining a
//     pending wake during reconciliation — runs the relative-deadline
//     elapsed-time accounting via [Mutex.afterWake], since a wake can
//     still arrive after the deadline elapsed; a genuine timeout from
//     [Mutex.reconcileTimeout] returns immediately with no further
//     accounting
//   - done==true means the outer loop must return result immediately;
//     done==false means the outer loop should retry registration
func (m *Mutex) parkAndReconcile(spec *waitSpec, waitingSince *time.Time) (result lockResult, done bool) {
	var d parking.Deadline
	switch {
	case spec.infinite:
		d = parking.Forever()
	case spec.relative:
		d = parking.After(spec.remaining)
	default:
		d = parking.At(spec.deadline)
	}

	if parking.Park(parkAddr(m), d) == parking.Woke {
		return m.afterWake(spec, waitingSince)
	}

	if !m.reconcileTimeout() {
		return m.afterWake(spec, waitingSince) // a pending wake was consumed
	}

	if spec.infinite {
		// infinite waits park with Forever, which never reports a
		// timeout, so this branch is unreachable
		panic(perrors.ErrorfPF("infinite wait reported timeout"))
	}
	// reconcileTimeout genuinely reclaimed our own sleep slot: this is a
	// real timeout, not a wake, so no further elapsed-time accounting
	// applies (mutex.c returns STATUS_TIMEOUT here with no recheck)
	return timedOutResult, true
}

// afterWake runs the relative-deadline elapsed-time accounting every time
// this goroutine was actually woken — by the initial park or by draining
// a pending wake during reconciliation. Even a genuine wake can still
// report a timeout if the relative deadline had already elapsed by the
// time the wake was delivered (spec.md §4.1 step 5; mutex.c's "We have
// got notified. Recheck now." block runs this same check unconditionally
// on every wake, not only on a fresh registration)
func (m *Mutex) afterWake(spec *waitSpec, waitingSince *time.Time) (result lockResult, done bool) {
	if !spec.relative {
		return 0, false // infinite/absolute: retry registration, no bookkeeping needed
	}
	var now = time.Now()
	spec.remaining -= now.Sub(*waitingSince)
	*waitingSince = now
	if spec.remaining <= 0 {
		return timedOutResult, true
	}
	return 0, false
}

// reconcileTimeout runs the CAS-decrement-nsleep loop that resolves a
// park timeout against a concurrent unpark
//   - returns true once this goroutine has genuinely reclaimed its own
//     sleep slot (a real timeout); false if it instead drained a wakeup
//     that was already in flight for it and must retry the outer loop
func (m *Mutex) reconcileTimeout() (genuineTimeout bool) {
	for {
		var old = state(m.word.Load())
		if old.nsleep() == 0 {
			// another goroutine already decremented our slot: a wakeup is
			// in flight or already consumed. Drain it with a zero-timeout
			// park rather than reporting a timeout
			if parking.Park(parkAddr(m), parking.At(time.Time{})) == parking.Woke {
				return false // the drained wake counts as this wait's wake
			}
			continue // the zero-timeout park also timed out: a third
			// contender may have re-incremented nsleep; loop and recheck
		}
		var new = old.withNsleepDec()
		if m.word.CompareAndSwap(uint32(old), uint32(new)) {
			return true
		}
	}
}

// parkAddr is the address park/unpark match on for m: m's own word field,
// stable for m's lifetime since Mutex must not be copied after first use
func parkAddr(m *Mutex) (addr parking.Addr) { return parking.Addr(&m.word) }

// pause issues a CPU pause hint before each reload of the state word
// inside the spin loop
//   - reuses the same go:linkname access to the Go scheduler's spin
//     primitive [parl.SpinLock] is built on
//   - the full fence the spin loop needs is the subsequent atomic.Load:
//     the Go memory model makes atomic operations sequentially
//     consistent with respect to one another, so no separate fence
//     primitive is needed
func pause() {
	runtime_doSpin()
}

//go:linkname runtime_doSpin sync.runtime_doSpin
func runtime_doSpin()
