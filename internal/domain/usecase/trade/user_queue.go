package trade

import (
	"context"
	"fmt"
	"sync"
	"time"

	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
)

const drainPollInterval = 5 * time.Millisecond

// UserQueue runs jobs one at a time per user within the process.
// Each user gets a worker goroutine that exits after sitting idle.
type UserQueue struct {
	logger      coreport.Logger
	queueSize   int
	idleTimeout time.Duration

	mu      sync.Mutex
	queues  map[string]*userJobs
	closed  bool
	stop    chan struct{}
	workers sync.WaitGroup
}

// userJobs is the queue of a single user. pending counts jobs that were handed to the
// queue and not yet finished, and is guarded by UserQueue.mu.
type userJobs struct {
	jobs    chan *queuedJob
	pending int
}

// queuedJob represents a queued unit of work
type queuedJob struct {
	ctx    context.Context
	fn     func(ctx context.Context) error
	result chan error
}

// NewUserQueue creates a new per-user queue
func NewUserQueue(logger coreport.Logger, queueSize int, idleTimeout time.Duration) *UserQueue {
	if queueSize <= 0 {
		queueSize = 100
	}
	if idleTimeout <= 0 {
		idleTimeout = time.Minute
	}

	return &UserQueue{
		logger:      logger,
		queueSize:   queueSize,
		idleTimeout: idleTimeout,
		queues:      make(map[string]*userJobs),
		stop:        make(chan struct{}),
	}
}

// Do runs fn after every job queued earlier for the same user has finished
func (q *UserQueue) Do(ctx context.Context, userID string, fn func(ctx context.Context) error) error {
	queue, err := q.acquire(userID)
	if err != nil {
		return err
	}

	job := &queuedJob{
		ctx:    ctx,
		fn:     fn,
		result: make(chan error, 1),
	}

	select {
	case queue.jobs <- job:
		q.logger.Debug("Job enqueued", map[string]any{
			"user_id": userID,
		})
	case <-ctx.Done():
		q.done(queue)
		q.logger.Warn("Context canceled while enqueueing job", map[string]any{
			"user_id": userID,
			"error":   ctx.Err().Error(),
		})
		return ctx.Err()
	case <-q.stop:
		q.done(queue)
		return fmt.Errorf("%w: user queue is shut down", errs.ErrInternalServer)
	}

	select {
	case err := <-job.result:
		return err
	case <-ctx.Done():
		q.logger.Warn("Context canceled while waiting for job result", map[string]any{
			"user_id": userID,
			"error":   ctx.Err().Error(),
		})
		return ctx.Err()
	}
}

// acquire returns the user's queue, starting a worker for a new one
func (q *UserQueue) acquire(userID string) (*userJobs, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil, fmt.Errorf("%w: user queue is shut down", errs.ErrInternalServer)
	}

	queue, ok := q.queues[userID]
	if !ok {
		queue = &userJobs{jobs: make(chan *queuedJob, q.queueSize)}
		q.queues[userID] = queue
		q.workers.Add(1)
		go q.work(userID, queue)

		q.logger.Debug("Started user queue worker", map[string]any{
			"user_id": userID,
		})
	}
	queue.pending++
	return queue, nil
}

func (q *UserQueue) done(queue *userJobs) {
	q.mu.Lock()
	queue.pending--
	q.mu.Unlock()
}

// work processes a user's jobs sequentially
func (q *UserQueue) work(userID string, queue *userJobs) {
	defer q.workers.Done()

	idle := time.NewTimer(q.idleTimeout)
	defer idle.Stop()

	for {
		select {
		case job := <-queue.jobs:
			q.run(job)
			q.done(queue)
			resetTimer(idle, q.idleTimeout)

		case <-idle.C:
			q.mu.Lock()
			if queue.pending == 0 {
				delete(q.queues, userID)
				q.mu.Unlock()
				q.logger.Debug("User queue worker stopped after idling", map[string]any{
					"user_id": userID,
				})
				return
			}
			q.mu.Unlock()
			idle.Reset(q.idleTimeout)

		case <-q.stop:
			q.drain(queue)
			return
		}
	}
}

// drain finishes every job already handed to the queue. Senders racing the shutdown
// either deliver their job or give up and decrement pending.
func (q *UserQueue) drain(queue *userJobs) {
	for {
		select {
		case job := <-queue.jobs:
			q.run(job)
			q.done(queue)
		default:
			q.mu.Lock()
			pending := queue.pending
			q.mu.Unlock()
			if pending == 0 {
				return
			}
			time.Sleep(drainPollInterval)
		}
	}
}

func (q *UserQueue) run(job *queuedJob) {
	if err := job.ctx.Err(); err != nil {
		job.result <- err
		return
	}
	job.result <- job.fn(job.ctx)
}

func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}

// Shutdown stops accepting jobs and waits for all workers to finish
func (q *UserQueue) Shutdown() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.stop)
	q.mu.Unlock()

	q.logger.Info("Shutting down user queue", nil)
	q.workers.Wait()
	q.logger.Info("User queue shut down successfully", nil)
}
