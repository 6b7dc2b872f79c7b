/*
© 2020–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

/*
Package parl provides the synchronization primitives, error handling
and logging that the pmutex adaptive mutex and its supporting packages
are built on.

parl has sub-packages augmenting the Go standard library:

	perrors plog plogger pruntime ptime

and sibling packages building the module's adaptive locking core:

	parking — an address-keyed park/unpark facility
	pmutex — the adaptive spin-then-park mutex built on it

parl.SpinLock is a user-space spin lock backed by the Go scheduler.
The Awaitable family (Awaitable, CyclicAwaitable, CountingAwaitable)
provides lazily-allocated, idempotent close-based signaling channels.
pmutex.Mutex packs a lock bit and three contention counters into one
atomic word, spins briefly under light contention using the same
go:linkname access to the Go scheduler SpinLock uses, and parks the
calling goroutine via parking once spinning stops paying off.

plog.D(string, ...interface{}) prints to stderr immediately, intended
for temporary printouts during development.

Threads can provide their errors via the perrors.ParlError thread-safe
error store, or a plain error channel combined with the Awaitable
family for signaling completion.

parl package features:

	SpinLock — adaptive user-space spin lock backed by the Go scheduler
	Awaitable, CyclicAwaitable, CountingAwaitable — close-based signaling channels
	Once, OnceCh, OnceChan — run-once helpers
	AtomicBool, AtomicCounter, AtomicReference[T] — atomic wrappers
	Sprintf — locale-aware number formatting

© 2018–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
*/
package parl
