package frame

import (
	"context"
	"sync"
	"time"
)

// Tick marks the start of a frame.
type Tick struct {
	Seq uint64
	At  time.Time
}

// Clock emits ticks at a fixed interval so the workspace is driven even when
// no input arrives.
type Clock struct {
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	ticks chan Tick
	wg    sync.WaitGroup
}

// NewClock starts a clock. A non-positive interval yields a clock that never
// ticks and whose channel closes on Stop.
func NewClock(interval time.Duration) *Clock {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Clock{
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		ticks:    make(chan Tick, 1),
	}
	c.wg.Add(1)
	go c.run()
	go func() {
		c.wg.Wait()
		close(c.ticks)
	}()
	return c
}

// Ticks returns the tick channel. It is closed once the clock stops.
func (c *Clock) Ticks() <-chan Tick {
	return c.ticks
}

// Stop cancels the clock.
func (c *Clock) Stop() {
	c.cancel()
}

// Wait blocks until the clock goroutine has exited and Ticks is closed.
func (c *Clock) Wait() {
	c.wg.Wait()
}

func (c *Clock) run() {
	defer c.wg.Done()
	if c.interval <= 0 {
		<-c.ctx.Done()
		return
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	var seq uint64
	for {
		select {
		case <-c.ctx.Done():
			return
		case now := <-ticker.C:
			seq++
			select {
			case c.ticks <- Tick{Seq: seq, At: now}:
			default:
				// previous tick not consumed yet; frames coalesce
			}
		}
	}
}
