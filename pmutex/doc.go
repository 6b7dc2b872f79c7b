/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package pmutex is an adaptive spin-then-park mutex.
//
// [Mutex] packs its entire state — a lock bit plus three saturating
// contention counters — into a single [sync/atomic.Uint32], mutated only
// by compare-and-swap. A contended [Mutex.Lock] first spins briefly in
// user space, then parks the goroutine via [github.com/adaptivelock/parl/parking]
// once spinning has repeatedly failed to pay off. [Mutex.Unlock] wakes at
// most one parked waiter.
//
// Mutex has no fairness guarantee, no recursion, no ownership tracking and
// no reader/writer distinction: it is the low-level building block a
// higher-level named mutex would be built on top of, not a replacement for
// [sync.Mutex] in application code.
package pmutex
