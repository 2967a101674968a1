// Package scheduler runs periodic SQLite maintenance: VACUUM to reclaim
// space freed by cascade deletes, and an integrity check.
package scheduler

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/bookclubhq/bookclub/internal/database"
)

// MaintenanceScheduler manages the periodic maintenance job.
type MaintenanceScheduler struct {
	db       *database.Database
	schedule string

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.RWMutex
	isRunning bool
}

// NewMaintenanceScheduler creates a new scheduler instance. schedule is a
// standard 5-field cron expression.
func NewMaintenanceScheduler(db *database.Database, schedule string) *MaintenanceScheduler {
	return &MaintenanceScheduler{
		db:       db,
		schedule: schedule,
		cron:     cron.New(),
	}
}

// Start begins the scheduler. Calling Start on a running scheduler is a no-op.
func (s *MaintenanceScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runMaintenance()
	})
	if err != nil {
		return fmt.Errorf("invalid maintenance schedule '%s': %w", s.schedule, err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true

	log.Printf("Maintenance scheduler: started with schedule '%s'", s.schedule)
	return nil
}

// Stop gracefully stops the scheduler, waiting for a running job to finish.
func (s *MaintenanceScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	log.Printf("Maintenance scheduler: stopped")
}

// IsRunning returns whether the scheduler is active.
func (s *MaintenanceScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRunTime returns when the next maintenance run will occur.
func (s *MaintenanceScheduler) NextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

// RunNow triggers an immediate maintenance run, outside the schedule.
func (s *MaintenanceScheduler) RunNow() {
	s.runMaintenance()
}

func (s *MaintenanceScheduler) runMaintenance() {
	start := time.Now()

	if err := s.db.DB.Exec("VACUUM").Error; err != nil {
		log.Printf("Maintenance: VACUUM failed: %v", err)
		return
	}

	var result string
	if err := s.db.DB.Raw("PRAGMA integrity_check").Scan(&result).Error; err != nil {
		log.Printf("Maintenance: integrity check failed: %v", err)
		return
	}
	if result != "ok" {
		log.Printf("Maintenance: integrity check reported: %s", result)
		return
	}

	log.Printf("Maintenance: completed in %v", time.Since(start).Round(time.Millisecond))
}
