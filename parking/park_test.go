/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package parking_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/adaptivelock/parl/parking"
)

func TestParkUnpark(t *testing.T) {
	var addr int
	var resultCh = make(chan parking.Result, 1)

	go func() {
		resultCh <- parking.Park(&addr, parking.Forever())
	}()

	// give the parker time to register: UnparkOne is a no-op on an
	// empty bucket, so an unpark before registration would be lost
	time.Sleep(time.Millisecond)
	parking.UnparkOne(&addr)

	select {
	case result := <-resultCh:
		if result != parking.Woke {
			t.Fatalf("FAIL Park result: %s exp %s", result, parking.Woke)
		}
	case <-time.After(time.Second):
		t.Fatal("FAIL Park never returned")
	}
}

func TestParkTimeout(t *testing.T) {
	var addr int
	var t0 = time.Now()
	var result = parking.Park(&addr, parking.After(20*time.Millisecond))
	var elapsed = time.Since(t0)

	if result != parking.TimedOut {
		t.Fatalf("FAIL Park result: %s exp %s", result, parking.TimedOut)
	}
	if elapsed < 15*time.Millisecond {
		t.Fatalf("FAIL Park returned too early: %s", elapsed)
	}
}

func TestParkZeroDeadline(t *testing.T) {
	var addr int
	var t0 = time.Now()
	var result = parking.Park(&addr, parking.At(time.Time{}))
	var elapsed = time.Since(t0)

	if result != parking.TimedOut {
		t.Fatalf("FAIL Park result: %s exp %s", result, parking.TimedOut)
	}
	if elapsed > 50*time.Millisecond {
		t.Fatalf("FAIL zero-deadline Park blocked: %s", elapsed)
	}
}

func TestUnparkOneWakesExactlyOne(t *testing.T) {
	const n = 10
	var addr int
	var wokeCount int32
	var wg sync.WaitGroup
	var readyCh = make(chan struct{}, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			readyCh <- struct{}{}
			if parking.Park(&addr, parking.Forever()) == parking.Woke {
				atomic.AddInt32(&wokeCount, 1)
			}
		}()
	}
	for i := 0; i < n; i++ {
		<-readyCh
	}
	// best-effort: let goroutines reach Park's enqueue before unparking
	time.Sleep(10 * time.Millisecond)

	for i := 0; i < n; i++ {
		parking.UnparkOne(&addr)
	}
	wg.Wait()

	if wokeCount != n {
		t.Fatalf("FAIL woke count: %d exp %d", wokeCount, n)
	}
}

func TestUnparkDistinctAddressesDoNotInterfere(t *testing.T) {
	var addrA, addrB int
	var chA = make(chan parking.Result, 1)
	var chB = make(chan parking.Result, 1)

	go func() { chA <- parking.Park(&addrA, parking.Forever()) }()
	go func() { chB <- parking.Park(&addrB, parking.Forever()) }()
	time.Sleep(10 * time.Millisecond)

	parking.UnparkOne(&addrA)

	select {
	case r := <-chA:
		if r != parking.Woke {
			t.Fatalf("FAIL addrA result: %s", r)
		}
	case <-time.After(time.Second):
		t.Fatal("FAIL addrA never woke")
	}

	select {
	case <-chB:
		t.Fatal("FAIL addrB woke from an unpark addressed to addrA")
	case <-time.After(20 * time.Millisecond):
		// expected: addrB still parked
	}
	parking.UnparkOne(&addrB)
	<-chB
}
