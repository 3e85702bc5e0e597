package frame

import (
	"testing"
	"time"
)

func TestClockTicksInOrder(t *testing.T) {
	c := NewClock(5 * time.Millisecond)
	defer c.Stop()
	var last uint64
	for i := 0; i < 3; i++ {
		select {
		case tick := <-c.Ticks():
			if tick.Seq <= last {
				t.Fatalf("expected increasing sequence, got %d after %d", tick.Seq, last)
			}
			last = tick.Seq
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for tick %d", i)
		}
	}
}

func TestClockStopClosesChannel(t *testing.T) {
	for _, interval := range []time.Duration{0, time.Hour} {
		c := NewClock(interval)
		c.Stop()
		c.Wait()
		for range c.Ticks() {
		}
		if _, ok := <-c.Ticks(); ok {
			t.Fatalf("expected closed channel for interval %s", interval)
		}
	}
}
