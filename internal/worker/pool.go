package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/TaskQuest_Go/internal/logger"
	"github.com/osse101/TaskQuest_Go/internal/metrics"
)

// Job represents a task to be executed by a worker
type Job interface {
	Name() string
	Process(ctx context.Context) error
}

// Pool runs jobs on a fixed number of goroutines
type Pool struct {
	workers    int
	jobQueue   chan Job
	jobTimeout time.Duration
	wg         sync.WaitGroup
	quit       chan struct{}
	stopOnce   sync.Once
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers:    workers,
		jobQueue:   make(chan Job, queueSize),
		jobTimeout: DefaultJobTimeout,
		quit:       make(chan struct{}),
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.quit:
			return
		}
	}
}

func (p *Pool) run(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), p.jobTimeout)
	defer cancel()

	log := logger.FromContext(ctx)
	start := time.Now()
	err := job.Process(ctx)
	duration := time.Since(start)

	metrics.JobDuration.WithLabelValues(job.Name()).Observe(duration.Seconds())
	if err != nil {
		metrics.JobRuns.WithLabelValues(job.Name(), metrics.OutcomeFailure).Inc()
		log.Error(LogMsgWorkerJobFailed, "job", job.Name(), "error", err, "duration", duration)
		return
	}
	metrics.JobRuns.WithLabelValues(job.Name(), metrics.OutcomeSuccess).Inc()
	log.Debug(LogMsgWorkerJobCompleted, "job", job.Name(), "duration", duration)
}

// Enqueue adds a job without blocking. It reports false when the queue is full
// or the pool is stopped.
func (p *Pool) Enqueue(job Job) bool {
	select {
	case <-p.quit:
		return false
	default:
	}

	select {
	case p.jobQueue <- job:
		return true
	default:
		logger.FromContext(context.Background()).Warn(LogMsgWorkerQueueFull, "job", job.Name())
		return false
	}
}

// Stop stops the workers and waits for in-flight jobs. Queued jobs are discarded.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
		p.wg.Wait()
	})
}
