package cronjob

import (
	"log"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	c     *cron.Cron
	sweep func() (int, error)
}

func NewScheduler(sweep func() (int, error)) *Scheduler {
	return &Scheduler{c: cron.New(cron.WithSeconds()), sweep: sweep}
}

// Start schedules the nightly jobs (12:00 AM).
func (s *Scheduler) Start() {
	_, err := s.c.AddFunc("0 0 0 * * *", func() {
		runNightlyJobs(s.sweep)
	})
	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Cron scheduler started (photo sweep nightly at 12:00AM)")
	s.c.Start()
}

func (s *Scheduler) Stop() {
	s.c.Stop()
}

func runNightlyJobs(sweep func() (int, error)) {
	log.Println("Nightly job started (orphaned photo sweep)...")

	removed, err := sweep()
	if err != nil {
		log.Printf("Photo sweep failed: %v", err)
		return
	}

	log.Printf("Photo sweep completed, removed %d orphaned file(s)", removed)
}
