/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package pmutex

import "github.com/adaptivelock/parl/parking"

// Unlock releases m
//   - the caller must hold m; Unlock does not verify this
//   - wakes at most one parked waiter
func (m *Mutex) Unlock() {
	var wakeOne bool
	for {
		var old = state(m.word.Load())
		var new = old.withLocked(false)
		if old.nsleep() > 0 {
			new = new.withNsleepDec()
			wakeOne = true
		} else {
			wakeOne = false
		}
		if m.word.CompareAndSwap(uint32(old), uint32(new)) {
			break
		}
	}
	if wakeOne {
		parking.UnparkOne(parkAddr(m))
	}
}
