package queue

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tradeready/portal/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// DepthGauge observes the number of queued events.
type DepthGauge interface {
	Inc()
	Dec()
}

type noopGauge struct{}

func (noopGauge) Inc() {}
func (noopGauge) Dec() {}

// Dispatcher routes activity events to a fixed set of workers using consistent
// hashing on the user email, keeping each user's events in order.
type Dispatcher struct {
	workers []chan ports.ActivityInput
	service ports.ActivityService
	depth   DepthGauge
	log     zerolog.Logger
	wg      sync.WaitGroup
	abort   context.CancelFunc

	mu     sync.RWMutex
	closed bool
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ActivityService, depth DepthGauge, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if depth == nil {
		depth = noopGauge{}
	}
	d := &Dispatcher{
		workers: make([]chan ports.ActivityInput, numWorkers),
		service: service,
		depth:   depth,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ActivityInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Cancelling ctx stops the workers at
// once, abandoning whatever is still buffered; use Shutdown to drain.
func (d *Dispatcher) Start(ctx context.Context) {
	ctx, d.abort = context.WithCancel(ctx)
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Shutdown stops accepting events and waits for the workers to record what
// is already buffered. If ctx ends first the workers are aborted and the
// context error is returned.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		for _, ch := range d.workers {
			close(ch)
		}
	}
	d.mu.Unlock()

	drained := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(drained)
	}()
	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		if d.abort != nil {
			d.abort()
		}
		<-drained
		return ctx.Err()
	}
}

// Enqueue hands an event to the worker responsible for its user. Events are
// dropped with a warning when that worker's buffer is full so request
// handlers never block on the activity log.
func (d *Dispatcher) Enqueue(event ports.ActivityInput) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.log.Warn().Str("kind", string(event.Kind)).Msg("activity queue closed, event dropped")
		return
	}
	select {
	case d.workers[d.shardIndex(event.UserEmail)] <- event:
		d.depth.Inc()
	default:
		d.log.Warn().Str("kind", string(event.Kind)).Msg("activity queue full, event dropped")
	}
}

// shardIndex maps an email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ActivityInput) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			d.depth.Dec()
			if err := d.service.Record(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("kind", string(event.Kind)).
					Int("worker_id", id).
					Msg("activity recording failed")
			}
		}
	}
}
