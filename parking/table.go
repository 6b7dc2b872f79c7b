/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package parking

import (
	"unsafe"

	"golang.org/x/sys/cpu"

	"github.com/adaptivelock/parl"
)

// numBuckets is the size of the process-wide wait-queue table
//   - a prime, so pointer-derived hashes that are multiples of small
//     powers of two do not collapse onto few buckets
const numBuckets = 251

// bucket is one slot of the process-wide address-keyed wait-queue table
//   - guarded by a [parl.SpinLock]: bucket operations are brief
//     (list insert, list unlink), so spinning beats suspending
//   - cache-line padded so contending buckets do not false-share,
//     the same rationale [parl.SpinLock] itself documents
type bucket struct {
	_    cpu.CacheLinePad
	lock parl.SpinLock
	// head is the first waiter parked on this bucket, newest first
	head *waiter
	_    cpu.CacheLinePad
}

// table is the process-wide park/unpark bucket array
var table [numBuckets]bucket

// waiterState values
const (
	// waiting is a waiter's initial state: still queued, not yet claimed
	waiting uint32 = iota
	// claimed is set by the [UnparkOne] that will send on wake
	claimed
)

// waiter is one thread's registration on a bucket's wait queue
type waiter struct {
	// addr is the park address this waiter is waiting on
	//	- a bucket may hold waiters for several colliding addresses
	addr unsafe.Pointer
	// state is [waiting] until a claimer transitions it to [claimed]
	state parl.Atomic32[uint32]
	// wake is sent to exactly once, by whichever thread claims this waiter
	wake chan struct{}
	// next links to the next-older waiter in the same bucket
	next *waiter
}

// bucketFor returns the bucket addr hashes to
func bucketFor(addr unsafe.Pointer) (b *bucket) {
	return &table[fnv1a(addr)%numBuckets]
}

// fnv1a hashes a pointer value to spread addresses across buckets
func fnv1a(addr unsafe.Pointer) (hash uint64) {
	const (
		offsetBasis = uint64(14695981039346656037)
		prime       = uint64(1099511628211)
	)
	var v = uint64(uintptr(addr))
	hash = offsetBasis
	for i := 0; i < 8; i++ {
		hash ^= v & 0xff
		hash *= prime
		v >>= 8
	}
	return
}

// enqueue adds w to the head of b's waiter list
//   - caller holds b.lock
func (b *bucket) enqueue(w *waiter) {
	w.next = b.head
	b.head = w
}

// unlinkMatching removes and returns the first still-[waiting] waiter
// registered for addr, CAS-claiming it in the process
//   - caller holds b.lock
func (b *bucket) unlinkMatching(addr unsafe.Pointer) (w *waiter) {
	var prev *waiter
	for cur := b.head; cur != nil; cur = cur.next {
		if cur.addr == addr && cur.state.CompareAndSwap(waiting, claimed) {
			if prev == nil {
				b.head = cur.next
			} else {
				prev.next = cur.next
			}
			return cur
		}
		prev = cur
	}
	return
}

// unlinkSelf removes w from b's list if it is still present
//   - caller holds b.lock
//   - returns false if w was already unlinked by a claimer
func (b *bucket) unlinkSelf(w *waiter) (removed bool) {
	var prev *waiter
	for cur := b.head; cur != nil; cur = cur.next {
		if cur == w {
			if prev == nil {
				b.head = cur.next
			} else {
				prev.next = cur.next
			}
			return true
		}
		prev = cur
	}
	return false
}
