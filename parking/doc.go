/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package parking is an address-keyed thread-parking facility.
//
// A caller parks on an address with [Park] and is released by exactly one
// matching [UnparkOne] call, or by its own deadline elapsing. Addresses
// match by pointer identity alone: two distinct mutexes never interfere
// with each other's waiters even if their buckets collide.
//
// parking exists because Go does not expose the keyed-event or futex
// facility pmutex is specified against. It is the per-process
// hash-table-of-wait-queues fallback the host primitive's own design notes
// describe, built on [parl.SpinLock] for bucket protection.
package parking
