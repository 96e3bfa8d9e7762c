package testutil

import (
	"sync"
	"testing"
	"time"
)

func TestDeterministicClock_AdvancesByStep(t *testing.T) {
	start := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	c := NewDeterministicClock(start, time.Second)

	if got := c.Now(); !got.Equal(start) {
		t.Errorf("first Now() = %v, want %v", got, start)
	}
	if got := c.Now(); !got.Equal(start.Add(time.Second)) {
		t.Errorf("second Now() = %v, want %v", got, start.Add(time.Second))
	}
}

func TestDeterministicClock_ZeroStep(t *testing.T) {
	start := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	c := NewDeterministicClock(start, 0)

	if !c.Now().Equal(c.Now()) {
		t.Error("zero-step clock must return a constant time")
	}
}

func TestDeterministicClock_Set(t *testing.T) {
	c := NewDeterministicClock(time.Unix(0, 0), time.Second)
	later := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	c.Set(later)

	if got := c.Now(); !got.Equal(later) {
		t.Errorf("Now() after Set = %v, want %v", got, later)
	}
}

func TestDeterministicClock_ConcurrentUse(t *testing.T) {
	c := NewDeterministicClock(time.Unix(0, 0), time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Now()
			}
		}()
	}
	wg.Wait()

	want := time.Unix(0, 0).Add(1000 * time.Millisecond)
	if got := c.Now(); !got.Equal(want) {
		t.Errorf("final Now() = %v, want %v", got, want)
	}
}
