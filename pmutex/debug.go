/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package pmutex

// debugState decodes m's packed word for white-box tests, the same way
// [SpinLock.IsHeld] exposes internal state for tests
func (m *Mutex) debugState() (locked bool, nspin, nsleep, nspinFail uint32) {
	var s = state(m.word.Load())
	return s.locked(), s.nspin(), s.nsleep(), s.nspinFail()
}
