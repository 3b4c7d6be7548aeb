package engine

import (
	"context"
	"log"
	"time"
)

// Scheduler fires the engine once per day at a fixed UTC hour. Runs are
// sequential: the next wait is armed only after RunOnce returns, so runs
// never overlap. Stop aborts the wait promptly but lets a run already in
// progress finish.
type Scheduler struct {
	engine     *Engine
	runHourUTC int
	stopChan   chan struct{}
}

// NewScheduler creates a new scheduler
func NewScheduler(engine *Engine, runHourUTC int) *Scheduler {
	return &Scheduler{
		engine:     engine,
		runHourUTC: runHourUTC,
		stopChan:   make(chan struct{}),
	}
}

// Start launches the scheduler loop
func (s *Scheduler) Start() {
	log.Printf("[Scheduler] Starting daily aggregation scheduler (%02d:00 UTC)", s.runHourUTC)

	go func() {
		for {
			wait := timeUntilNextRun(time.Now().UTC(), s.runHourUTC)
			timer := time.NewTimer(wait)

			select {
			case <-timer.C:
				s.engine.RunOnce(context.Background())
			case <-s.stopChan:
				timer.Stop()
				log.Println("[Scheduler] Scheduler stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	close(s.stopChan)
}

// timeUntilNextRun computes how long to sleep until the next occurrence
// of hour:00 UTC, strictly in the future.
func timeUntilNextRun(now time.Time, hour int) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
