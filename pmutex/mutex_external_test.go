/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package pmutex_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/adaptivelock/parl/pmutex"
)

// Test64ThreadCounter checks that 64 goroutines each locking,
// read-modify-writing a shared integer under the lock, and unlocking
// leave the final value equal to the goroutine count.
func Test64ThreadCounter(t *testing.T) {
	const n = 64
	var m pmutex.Mutex
	var x int
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Lock()
			defer m.Unlock()
			v := x
			time.Sleep(10 * time.Microsecond)
			x = v + 1
		}()
	}
	wg.Wait()

	if x != n {
		t.Fatalf("FAIL counter: %d exp %d", x, n)
	}
}

// TestTimeoutWhenHeld checks that a timed lock attempt on an
// already-held mutex, made by the goroutine holding it, reports timed
// out within the expected window once its relative deadline elapses.
func TestTimeoutWhenHeld(t *testing.T) {
	var m pmutex.Mutex
	m.Lock()
	defer m.Unlock()

	const timeout = 150 * time.Millisecond
	var t0 = time.Now()
	var acquired = m.LockTimeout(timeout)
	var elapsed = time.Since(t0)

	if acquired {
		t.Fatal("FAIL LockTimeout acquired an already-held mutex")
	}
	// allow a wide window around the timeout for scheduler jitter under
	// test load
	if elapsed < timeout*9/10 {
		t.Fatalf("FAIL timed out too early: %s (timeout %s)", elapsed, timeout)
	}
	if elapsed > timeout*3 {
		t.Fatalf("FAIL timed out too late: %s (timeout %s)", elapsed, timeout)
	}
}

// TestQuickAcquireNoContention checks that locking with a generous
// deadline on an unheld mutex succeeds immediately.
func TestQuickAcquireNoContention(t *testing.T) {
	var m pmutex.Mutex

	var t0 = time.Now()
	var acquired = m.LockTimeout(100 * time.Millisecond)
	var elapsed = time.Since(t0)
	defer m.Unlock()

	if !acquired {
		t.Fatal("FAIL LockTimeout failed to acquire an unheld mutex")
	}
	if elapsed > 100*time.Millisecond {
		t.Fatalf("FAIL acquire took too long: %s", elapsed)
	}
}

// TestTimeoutBoundedUnderContention checks that a relative LockTimeout
// call's overall wait is bounded even when the waiter is repeatedly woken
// but loses the registration-CAS race to other contenders before it can
// acquire. Before the elapsed-time accounting was wired to the correct
// branch (every genuine wake, not only a genuine timeout), waitingSince
// never advanced across such wake-but-lose cycles and each retried park
// was handed the original full timeout again, so a call could block far
// longer than its stated timeout.
func TestTimeoutBoundedUnderContention(t *testing.T) {
	var m pmutex.Mutex
	var stopCh = make(chan struct{})
	var wg sync.WaitGroup

	// busy contenders: continuously lock/unlock to keep nsleep/wakeups
	// churning for the whole test
	const busyContenders = 16
	for i := 0; i < busyContenders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stopCh:
					return
				default:
				}
				m.Lock()
				m.Unlock()
			}
		}()
	}

	const timeout = 30 * time.Millisecond
	const bound = 10 * timeout // generous: scheduler jitter, never "multiply by retries unboundedly"
	for i := 0; i < 20; i++ {
		var t0 = time.Now()
		var acquired = m.LockTimeout(timeout)
		var elapsed = time.Since(t0)
		if acquired {
			m.Unlock()
		}
		if elapsed > bound {
			close(stopCh)
			wg.Wait()
			t.Fatalf("FAIL LockTimeout(%s) took %s on iteration %d, exceeding bound %s", timeout, elapsed, i, bound)
		}
	}

	close(stopCh)
	wg.Wait()
}

// TestReleaseWakesExactlyOne checks that with several goroutines parked
// on a held mutex, each Unlock call by the current holder wakes exactly
// one waiter, and every waiter is eventually woken exactly once.
func TestReleaseWakesExactlyOne(t *testing.T) {
	const n = 10
	var m pmutex.Mutex
	m.Lock()

	var wokenCount int32
	var readyCh = make(chan struct{}, n)
	var doneCh = make(chan struct{}, n)
	for i := 0; i < n; i++ {
		go func() {
			readyCh <- struct{}{}
			m.Lock()
			atomic.AddInt32(&wokenCount, 1)
			m.Unlock()
			doneCh <- struct{}{}
		}()
	}
	for i := 0; i < n; i++ {
		<-readyCh
	}
	// best-effort: give goroutines time to reach the slow path and park
	time.Sleep(20 * time.Millisecond)

	m.Unlock() // releases the first waiter; each waiter's own Unlock cascades to the next
	for i := 0; i < n; i++ {
		select {
		case <-doneCh:
		case <-time.After(2 * time.Second):
			t.Fatalf("FAIL only %d of %d waiters completed", i, n)
		}
	}

	if wokenCount != n {
		t.Fatalf("FAIL woken count: %d exp %d", wokenCount, n)
	}
}
