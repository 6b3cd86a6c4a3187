package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// TickFunc produces one frame. It is always invoked from the scheduler's
// single goroutine, so invocations can never overlap
type TickFunc func(now time.Time)

// Scheduler is an explicit cancellable repeating task standing in for a
// display refresh callback. Start begins ticking at the configured interval;
// Stop deregisters the loop deterministically and waits for any in-flight
// tick to finish. No partial state needs cleanup after Stop returns
type Scheduler struct {
	interval time.Duration
	tick     TickFunc

	// Next tick deadline for drift correction
	deadline time.Time

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewScheduler creates a scheduler firing tick once per interval
func NewScheduler(interval time.Duration, tick TickFunc) *Scheduler {
	return &Scheduler{
		interval: interval,
		tick:     tick,
		stopChan: make(chan struct{}),
	}
}

// Start begins the tick loop. Calling Start on a running or already stopped
// scheduler is a no-op
func (s *Scheduler) Start() {
	select {
	case <-s.stopChan:
		// Stop already retired this scheduler
		return
	default:
	}
	if s.running.CompareAndSwap(false, true) {
		s.wg.Add(1)
		go s.loop()
	}
}

// Stop halts the loop and blocks until it has exited. Safe to call more
// than once; calling it before Start retires the scheduler so a later
// Start stays inert
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
		s.running.Store(false)
	})
}

// Running reports whether the loop is active
func (s *Scheduler) Running() bool {
	return s.running.Load()
}

func (s *Scheduler) loop() {
	defer s.wg.Done()

	s.deadline = time.Now().Add(s.interval)

	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case now := <-timer.C:
			s.tick(now)

			s.deadline = s.deadline.Add(s.interval)
			// If a tick ran long, rebase instead of bursting to catch up
			if now.Sub(s.deadline) > s.interval*2 {
				s.deadline = now.Add(s.interval)
			}

			sleep := time.Until(s.deadline)
			if sleep < 0 {
				sleep = 0
			}
			timer.Reset(sleep)
		}
	}
}
