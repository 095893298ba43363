package scheduler

import (
	"log/slog"
	"sync"
	"time"

	"github.com/osse101/TaskQuest_Go/internal/worker"
)

const (
	LogMsgJobScheduled = "Background job scheduled"
	LogMsgJobDisabled  = "Background job disabled, interval not positive"
)

// Scheduler enqueues jobs on the worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule runs job every interval, starting one interval from now.
// A non-positive interval disables the job. A tick that finds the queue
// full is skipped rather than stacking up.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	if interval <= 0 {
		slog.Info(LogMsgJobDisabled, "job", job.Name())
		return
	}

	slog.Info(LogMsgJobScheduled, "job", job.Name(), "interval", interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.workerPool.Enqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs. Safe to call twice.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
		s.wg.Wait()
	})
}
