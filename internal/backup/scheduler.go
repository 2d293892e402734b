// Package backup copies the two data files into timestamped snapshots on a
// cron schedule. Snapshots are plain file copies; restoring one is a manual
// copy back over the live file.
package backup

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler manages periodic snapshots of the data files.
type Scheduler struct {
	paths    []string
	dir      string
	schedule string

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.RWMutex
	isRunning bool
}

// NewScheduler creates a scheduler that snapshots the given files into dir.
func NewScheduler(dir, schedule string, paths ...string) *Scheduler {
	return &Scheduler{
		paths:    paths,
		dir:      dir,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the schedule. Calling Start on a running scheduler is a no-op.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runBackup()
	})
	if err != nil {
		return fmt.Errorf("invalid backup schedule %q: %w", s.schedule, err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true

	log.Printf("backup: scheduler started with schedule %q", s.schedule)
	return nil
}

// Stop gracefully stops the scheduler, waiting for a running snapshot.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.isRunning = false

	log.Printf("backup: scheduler stopped")
}

// RunNow triggers an immediate snapshot synchronously and returns the first
// error encountered.
func (s *Scheduler) RunNow() error {
	return s.runBackup()
}

// IsRunning returns whether the scheduler is active
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next snapshot will occur, or nil when the
// scheduler is stopped.
func (s *Scheduler) GetNextRunTime() *time.Time {
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

func (s *Scheduler) runBackup() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		log.Printf("backup: creating %s: %v", s.dir, err)
		return err
	}

	stamp := time.Now().UTC().Format("20060102T150405")
	var firstErr error
	for _, path := range s.paths {
		dest := filepath.Join(s.dir, fmt.Sprintf("%s.%s.bak", filepath.Base(path), stamp))
		if err := copyFile(path, dest); err != nil {
			if os.IsNotExist(err) {
				// Nothing written yet for this file; nothing to snapshot.
				continue
			}
			log.Printf("backup: copying %s: %v", path, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		log.Printf("backup: wrote %s", dest)
	}
	return firstErr
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
