package texpool

import (
	"errors"
	"sync"
	"time"
)

// mockDevice is a test double for Device. It assigns increasing handles
// and tracks create/destroy calls for verification.
type mockDevice struct {
	mu sync.Mutex

	nextID    uint64
	live      map[Handle]bool
	created   int
	destroyed int
	samplings int

	// createErr, when set, makes CreateTexture2D fail.
	createErr error

	// destroyFunc, when set, runs on every DestroyTextures call.
	destroyFunc func([]Handle)

	lastErr error
}

func newMockDevice() *mockDevice {
	return &mockDevice{live: make(map[Handle]bool)}
}

func (d *mockDevice) CreateTexture2D(TextureDesc) (Handle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.createErr != nil {
		d.lastErr = d.createErr
		return InvalidHandle, d.createErr
	}
	d.nextID++
	h := Handle(d.nextID)
	d.live[h] = true
	d.created++
	return h, nil
}

func (d *mockDevice) Bind(Handle) {}

func (d *mockDevice) SetSampling(Handle, Sampling) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.samplings++
	return nil
}

func (d *mockDevice) DestroyTextures(handles []Handle) {
	d.mu.Lock()
	fn := d.destroyFunc
	d.mu.Unlock()
	if fn != nil {
		fn(handles)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for _, h := range handles {
		if d.live[h] {
			delete(d.live, h)
			d.destroyed++
		}
	}
}

func (d *mockDevice) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastErr
}

func (d *mockDevice) destroyedCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.destroyed
}

func (d *mockDevice) liveCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.live)
}

// fakeClock is a manually advanced clock for simulated-time tests.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1_700_000_000, 0)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

var errCreateRefused = errors.New("driver refused allocation")

// newTestPool builds a pool over a mock device with a fake clock.
func newTestPool(cfg Config, opts ...Option) (*Pool, *mockDevice, *fakeClock) {
	dev := newMockDevice()
	pool, err := New(dev, cfg, opts...)
	if err != nil {
		panic(err)
	}
	clk := newFakeClock()
	pool.now = clk.Now
	return pool, dev, clk
}
