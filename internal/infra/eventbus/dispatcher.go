package eventbus

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"rating/internal/errors"
	"rating/internal/infra/metrics"
)

// Task is a unit of deferred work run by a Dispatcher worker.
type Task func(ctx context.Context)

// DispatcherConfig sizes a Dispatcher.
type DispatcherConfig struct {
	QueueSize   int
	Workers     int
	TaskTimeout time.Duration // zero means no per-task deadline
}

// Dispatcher runs tasks on a fixed pool of workers fed by a bounded queue.
// Delivery is at-most-once: a full queue rejects, and queued tasks that have
// not started when Stop gives up are discarded.
type Dispatcher struct {
	cfg     DispatcherConfig
	logger  *slog.Logger
	metrics *metrics.Collector

	mu      sync.RWMutex
	queue   chan Task
	started bool
	stopped bool

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

// NewDispatcher creates a dispatcher. Call Start before submitting.
func NewDispatcher(cfg DispatcherConfig, logger *slog.Logger, collector *metrics.Collector) *Dispatcher {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Dispatcher{
		cfg:     cfg,
		logger:  logger,
		metrics: collector,
		queue:   make(chan Task, cfg.QueueSize),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start launches the workers. Calling it twice is a no-op.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started || d.stopped {
		return
	}
	d.started = true

	for i := 0; i < d.cfg.Workers; i++ {
		d.wg.Add(1)
		go d.work(i)
	}

	d.logger.Info("Event dispatcher started",
		slog.Int("workers", d.cfg.Workers),
		slog.Int("queue_size", d.cfg.QueueSize),
	)
}

// Submit enqueues task without blocking. It returns false when the queue is
// full or the dispatcher has been stopped.
func (d *Dispatcher) Submit(task Task) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		d.drop("stopped")

		return false
	}

	select {
	case d.queue <- task:
		d.observeQueue()

		return true
	default:
		d.drop("queue full")

		return false
	}
}

// Stop rejects new tasks and waits for queued ones until ctx expires. Work
// still pending after that is cancelled and lost.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()

		return nil
	}
	d.stopped = true
	close(d.queue)
	started := d.started
	d.mu.Unlock()

	if !started {
		d.cancel()

		return nil
	}

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.cancel()
		d.logger.Info("Event dispatcher drained")

		return nil
	case <-ctx.Done():
		d.cancel()
		d.logger.Warn("Event dispatcher stopped before draining",
			slog.Int("pending", len(d.queue)),
		)

		return errors.Wrap(ctx.Err(), "event dispatcher shutdown")
	}
}

func (d *Dispatcher) work(id int) {
	defer d.wg.Done()

	for {
		select {
		case <-d.ctx.Done():
			return
		case task, ok := <-d.queue:
			if !ok {
				return
			}
			d.observeQueue()
			d.run(id, task)
		}
	}
}

func (d *Dispatcher) run(id int, task Task) {
	ctx := d.ctx
	if d.cfg.TaskTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.cfg.TaskTimeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Dispatcher task panicked",
				slog.Int("worker", id),
				slog.Any("panic", r),
			)
		}
	}()

	task(ctx)

	if d.metrics != nil {
		d.metrics.TasksCompleted.Inc()
	}
}

func (d *Dispatcher) drop(reason string) {
	if d.metrics != nil {
		d.metrics.TasksDropped.Inc()
	}
	d.logger.Warn("Dispatcher rejected task", slog.String("reason", reason))
}

func (d *Dispatcher) observeQueue() {
	if d.metrics != nil {
		d.metrics.DispatcherQueue.Set(float64(len(d.queue)))
	}
}
