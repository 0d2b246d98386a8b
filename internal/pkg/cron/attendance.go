package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/attendance"
)

// Sessions still open after this many days are considered forgotten
// check-outs rather than ongoing shifts.
const staleSessionAgeDays = 2

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceJobs(attendanceRepo attendance.AttendanceRepository) *AttendanceJobs {
	return &AttendanceJobs{attendanceRepo: attendanceRepo}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("flag_stale_open_sessions", 1*time.Hour, j.FlagStaleOpenSessions)
}

// FlagStaleOpenSessions annotates open sessions whose check-out never came.
// The session stays open and contributes zero classified hours; the note
// keeps the gap visible to payroll reviewers instead of fabricating an end
// time.
func (j *AttendanceJobs) FlagStaleOpenSessions(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting stale open session flagging job")

	staleSessions, err := j.attendanceRepo.GetStaleOpenSessions(ctx, staleSessionAgeDays)
	if err != nil {
		return fmt.Errorf("failed to get stale sessions: %w", err)
	}

	if len(staleSessions) == 0 {
		slog.Info("Cron: No stale open sessions found")
		return nil
	}

	flaggedCount := 0
	for _, session := range staleSessions {
		if session.Note != nil {
			// Already annotated on a previous run.
			continue
		}

		note := fmt.Sprintf("no check-out recorded for %s; contact your manager to correct this record", session.Date.Format("2006-01-02"))
		session.Note = &note

		if err := j.attendanceRepo.Update(ctx, session); err != nil {
			slog.Error("Cron: Failed to flag stale session",
				"attendance_id", session.ID,
				"employee_id", session.EmployeeID,
				"error", err)
			continue
		}

		flaggedCount++
	}

	slog.Info("Cron: Flagged stale open sessions", "count", flaggedCount)
	return nil
}
