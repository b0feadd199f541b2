package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler re-runs an evaluation job on a cron schedule (watch mode).
type Scheduler struct {
	Cron *cron.Cron
	job  func()
}

// New creates a Scheduler around the given job.
func New(job func()) *Scheduler {
	return &Scheduler{
		Cron: cron.New(cron.WithSeconds()),
		job:  job,
	}
}

// Register adds the job under the given cron spec (with a seconds field,
// e.g. "0 */5 * * * *" for every five minutes).
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.job); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] watch scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] watch scheduler stopped")
}

// RunNow executes the job immediately, outside the schedule.
func (s *Scheduler) RunNow() {
	s.job()
}
