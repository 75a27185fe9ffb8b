package client

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/NssGourav/shuttle-tracker/internal/domain/models"
)

// DefaultPollInterval matches what the web dashboard uses.
const DefaultPollInterval = 3 * time.Second

type State int32

const (
	Idle State = iota
	Fetching
)

func (s State) String() string {
	if s == Fetching {
		return "fetching"
	}
	return "idle"
}

// Poller periodically fetches the driver list and hands each snapshot to
// the update callback. Fetch failures go to the error callback and the
// poller keeps ticking; a single slow or dead server never kills the loop.
type Poller struct {
	client   *Client
	interval time.Duration
	onUpdate func([]models.DriverWithLocation)
	onError  func(error)

	state  atomic.Int32
	cancel context.CancelFunc
	done   chan struct{}
}

func NewPoller(c *Client, interval time.Duration, onUpdate func([]models.DriverWithLocation), onError func(error)) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if onError == nil {
		onError = func(error) {}
	}
	return &Poller{
		client:   c,
		interval: interval,
		onUpdate: onUpdate,
		onError:  onError,
	}
}

// Start begins polling immediately and then on every tick. It returns at
// once; use Stop to end the loop.
func (p *Poller) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})

	go p.run(ctx)
}

// Stop cancels the loop and waits for it to exit. A fetch in flight when
// Stop is called is abandoned and its result never reaches the callback.
func (p *Poller) Stop() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
}

func (p *Poller) State() State {
	return State(p.state.Load())
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	p.state.Store(int32(Fetching))
	defer p.state.Store(int32(Idle))

	drivers, err := p.client.Drivers(ctx)

	// Anything that completed after cancellation is stale.
	if ctx.Err() != nil {
		return
	}

	if err != nil {
		p.onError(err)
		return
	}

	p.onUpdate(drivers)
}
