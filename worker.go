package texpool

import "time"

// stopPollInterval bounds how long the worker sleeps between checks of
// the stop channel, so StopBackgroundEviction completes within one
// eviction pass plus roughly this granularity.
const stopPollInterval = 100 * time.Millisecond

// StartBackgroundEviction starts the background eviction worker.
// Calling it while the worker is already running is a no-op: the pool
// never runs more than one worker goroutine.
func (p *Pool) StartBackgroundEviction() {
	if !p.running.CompareAndSwap(false, true) {
		return
	}

	stop := make(chan struct{})
	p.stop = stop
	p.wg.Add(1)
	go p.evictionLoop(stop)

	Logger().Info("texpool: background eviction started",
		"interval", p.GetConfig().EvictionInterval)
}

// StopBackgroundEviction signals the worker to stop and waits for it to
// exit before returning, guaranteeing no eviction work races with pool
// teardown. Calling it while stopped is a no-op; calling it twice is safe.
func (p *Pool) StopBackgroundEviction() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}

	close(p.stop)
	p.wg.Wait()

	Logger().Info("texpool: background eviction stopped")
}

// IsEvicting reports whether the background worker is running.
func (p *Pool) IsEvicting() bool {
	return p.running.Load()
}

// evictionLoop is the worker body: sleep one interval (in small slices so
// the stop signal is observed promptly), then run one eviction pass.
// The interval is re-read each cycle so SetConfig takes effect without a
// restart.
func (p *Pool) evictionLoop(stop <-chan struct{}) {
	defer p.wg.Done()

	for {
		if p.sleepInterruptible(p.GetConfig().EvictionInterval, stop) {
			return
		}
		p.runTick()
	}
}

// sleepInterruptible sleeps for d in stopPollInterval slices.
// Returns true if the stop channel closed during the sleep.
func (p *Pool) sleepInterruptible(d time.Duration, stop <-chan struct{}) bool {
	deadline := time.Now().Add(d)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return false
		}
		if remaining > stopPollInterval {
			remaining = stopPollInterval
		}
		select {
		case <-stop:
			return true
		case <-time.After(remaining):
		}
	}
}

// runTick executes one eviction pass, absorbing panics: one bad tick must
// not disable eviction for the remainder of the process.
func (p *Pool) runTick() {
	defer func() {
		if r := recover(); r != nil {
			Logger().Error("texpool: eviction tick panicked", "panic", r)
		}
	}()
	p.EvictTick()
}
