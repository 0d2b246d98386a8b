package timesheet

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/leave"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/policy"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/shift"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/timesheet"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TimesheetServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	shiftRepo      shift.ShiftRepository
	attendanceRepo attendance.AttendanceRepository
	policyRepo     policy.PolicyRepository
	holidayRepo    policy.HolidayRepository
	leaveRepo      leave.LeaveRepository
	snapshotRepo   timesheet.SnapshotRepository
}

func NewTimesheetService(
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	attendanceRepo attendance.AttendanceRepository,
	policyRepo policy.PolicyRepository,
	holidayRepo policy.HolidayRepository,
	leaveRepo leave.LeaveRepository,
	snapshotRepo timesheet.SnapshotRepository,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		employeeRepo:   employeeRepo,
		shiftRepo:      shiftRepo,
		attendanceRepo: attendanceRepo,
		policyRepo:     policyRepo,
		holidayRepo:    holidayRepo,
		leaveRepo:      leaveRepo,
		snapshotRepo:   snapshotRepo,
	}
}

// Helper to get company_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return companyID, userID, nil
}

// inputSnapshot is everything a computation reads, fetched up front so the
// pure pipeline runs against immutable data.
type inputSnapshot struct {
	pol        policy.WorkPolicy
	holidays   policy.HolidayCalendar
	leaves     leave.Calendar
	employees  []employee.Employee
	byEmployee map[string][]timesheet.WorkInterval
}

// ComputeMonth implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ComputeMonth(ctx context.Context, req timesheet.ComputeTimesheetRequest) ([]timesheet.EmployeePayroll, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return s.computeMonth(ctx, companyID, req)
}

func (s *TimesheetServiceImpl) computeMonth(ctx context.Context, companyID string, req timesheet.ComputeTimesheetRequest) ([]timesheet.EmployeePayroll, error) {
	monthStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	nextMonthStart := monthStart.AddDate(0, 1, 0)
	monthEnd := nextMonthStart.AddDate(0, 0, -1)
	prevLastDay := monthStart.AddDate(0, 0, -1)

	snap, err := s.fetchSnapshot(ctx, companyID, timesheet.RecordSource(req.Source), prevLastDay, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	workdays := workdaysInMonth(monthStart, monthEnd, snap.pol, snap.holidays)
	monthlyTarget := snap.pol.MonthlyTarget(workdays)

	rows := make([]timesheet.EmployeePayroll, 0, len(snap.employees))
	for _, emp := range snap.employees {
		dailyTarget := snap.pol.DailyWorkHours
		if emp.DailyWorkHoursOverride != nil {
			dailyTarget = *emp.DailyWorkHoursOverride
		}

		intervals := prepareIntervals(snap.byEmployee[emp.ID], monthStart, nextMonthStart)
		days := buildDailyEntries(intervals, monthStart, monthEnd, snap.pol, snap.holidays, snap.leaves, emp.ID, dailyTarget)

		row := computeTotals(days, snap.pol, dailyTarget, monthlyTarget)
		row.EmployeeID = emp.ID
		row.EmployeeName = emp.FullName
		row.DailyEntries = make([]timesheet.DailyEntry, 0, len(days))
		for _, d := range days {
			row.DailyEntries = append(row.DailyEntries, d.Entry)
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].EmployeeName != rows[j].EmployeeName {
			return rows[i].EmployeeName < rows[j].EmployeeName
		}
		return rows[i].EmployeeID < rows[j].EmployeeID
	})

	return rows, nil
}

func (s *TimesheetServiceImpl) fetchSnapshot(ctx context.Context, companyID string, source timesheet.RecordSource, prevLastDay, monthStart, monthEnd time.Time) (inputSnapshot, error) {
	pol, err := s.policyRepo.GetByCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, policy.ErrPolicyNotFound) {
			return inputSnapshot{}, policy.ErrPolicyNotFound
		}
		return inputSnapshot{}, fmt.Errorf("failed to get work policy: %w", err)
	}

	holidays, err := s.holidayRepo.ListByPeriod(ctx, companyID, prevLastDay, monthEnd)
	if err != nil {
		return inputSnapshot{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	employees, err := s.employeeRepo.ListActiveByCompany(ctx, companyID)
	if err != nil {
		return inputSnapshot{}, fmt.Errorf("failed to list employees: %w", err)
	}

	leaves, err := s.leaveRepo.ListApprovedByPeriod(ctx, companyID, monthStart, monthEnd)
	if err != nil {
		return inputSnapshot{}, fmt.Errorf("failed to list approved leave: %w", err)
	}

	byEmployee := make(map[string][]timesheet.WorkInterval)
	switch source {
	case timesheet.SourceShift:
		shifts, err := s.shiftRepo.ListByPeriod(ctx, companyID, prevLastDay, monthEnd)
		if err != nil {
			return inputSnapshot{}, fmt.Errorf("failed to list shifts: %w", err)
		}
		for _, sh := range shifts {
			byEmployee[sh.EmployeeID] = append(byEmployee[sh.EmployeeID], sh.Interval())
		}
	case timesheet.SourceAttendance:
		records, err := s.attendanceRepo.ListByPeriod(ctx, companyID, prevLastDay, monthEnd)
		if err != nil {
			return inputSnapshot{}, fmt.Errorf("failed to list attendance records: %w", err)
		}
		for _, rec := range records {
			byEmployee[rec.EmployeeID] = append(byEmployee[rec.EmployeeID], rec.Interval())
		}
	default:
		return inputSnapshot{}, timesheet.ErrUnknownDataSource
	}

	return inputSnapshot{
		pol:        pol,
		holidays:   policy.NewHolidayCalendar(holidays),
		leaves:     leave.NewCalendar(leaves),
		employees:  employees,
		byEmployee: byEmployee,
	}, nil
}

// prepareIntervals applies period-boundary spillover handling:
//   - a record dated on the last day of the previous month keeps only the
//     portion falling after the month start, re-anchored to day 1;
//   - a record on the last day of the month is clipped at the boundary, the
//     remainder belonging to the next month's computation.
//
// Mid-month midnight-crossing records stay whole on their anchor day.
func prepareIntervals(records []timesheet.WorkInterval, monthStart, nextMonthStart time.Time) []timesheet.WorkInterval {
	lastDay := nextMonthStart.AddDate(0, 0, -1)
	midnight := timesheet.NewClockTime(0, 0)

	out := make([]timesheet.WorkInterval, 0, len(records))
	for _, r := range records {
		switch {
		case r.Date.Before(monthStart):
			if !r.Complete() || r.IsDayOff {
				continue
			}
			absStart, absEnd, err := Normalize(r.Date, *r.Start, *r.End, r.StartsPreviousDay, r.EndsNextDay)
			if err != nil || !absEnd.After(monthStart) {
				continue
			}
			start := midnight
			if absStart.After(monthStart) {
				start = timesheet.NewClockTime(absStart.Hour(), absStart.Minute())
			}
			end := timesheet.NewClockTime(absEnd.Hour(), absEnd.Minute())
			out = append(out, timesheet.WorkInterval{
				EmployeeID: r.EmployeeID,
				Date:       monthStart,
				Start:      &start,
				End:        &end,
				Source:     r.Source,
				CarryOver:  true,
			})

		case r.Date.Equal(lastDay) && r.Complete() && !r.IsDayOff:
			absStart, absEnd, err := Normalize(r.Date, *r.Start, *r.End, r.StartsPreviousDay, r.EndsNextDay)
			if err == nil && absEnd.After(nextMonthStart) && absStart.Before(nextMonthStart) {
				end := midnight
				clipped := r
				clipped.End = &end
				clipped.EndsNextDay = true
				clipped.Clipped = true
				out = append(out, clipped)
				continue
			}
			out = append(out, r)

		default:
			out = append(out, r)
		}
	}
	return out
}

// workdaysInMonth counts days carrying a default required target, used to
// derive the monthly target when none is configured explicitly.
func workdaysInMonth(monthStart, monthEnd time.Time, pol policy.WorkPolicy, holidays policy.HolidayCalendar) int {
	count := 0
	for day := monthStart; !day.After(monthEnd); day = day.AddDate(0, 0, 1) {
		if pol.IsWeekend(day) {
			continue
		}
		if h, ok := holidays.Lookup(day); ok && !h.IsHalfDay {
			continue
		}
		count++
	}
	return count
}

// SaveSnapshot implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) SaveSnapshot(ctx context.Context, req timesheet.SaveSnapshotRequest) (timesheet.PayrollSnapshot, error) {
	if err := req.Validate(); err != nil {
		return timesheet.PayrollSnapshot{}, err
	}

	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return timesheet.PayrollSnapshot{}, err
	}

	rows, err := s.computeMonth(ctx, companyID, timesheet.ComputeTimesheetRequest{
		Year:   req.Year,
		Month:  req.Month,
		Source: req.Source,
	})
	if err != nil {
		return timesheet.PayrollSnapshot{}, err
	}
	if len(rows) == 0 {
		return timesheet.PayrollSnapshot{}, timesheet.ErrEmptyComputation
	}

	snapshot := timesheet.PayrollSnapshot{
		ID:        uuid.NewString(),
		CompanyID: companyID,
		Year:      req.Year,
		Month:     time.Month(req.Month),
		Source:    timesheet.RecordSource(req.Source),
		Rows:      rows,
		CreatedBy: userID,
	}

	created, err := s.snapshotRepo.Create(ctx, snapshot)
	if err != nil {
		return timesheet.PayrollSnapshot{}, fmt.Errorf("failed to save payroll snapshot: %w", err)
	}

	return created, nil
}

// GetSnapshot implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetSnapshot(ctx context.Context, id string) (timesheet.PayrollSnapshot, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return timesheet.PayrollSnapshot{}, err
	}

	snapshot, err := s.snapshotRepo.GetByID(ctx, id, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, timesheet.ErrSnapshotNotFound) {
			return timesheet.PayrollSnapshot{}, timesheet.ErrSnapshotNotFound
		}
		return timesheet.PayrollSnapshot{}, fmt.Errorf("failed to get payroll snapshot: %w", err)
	}

	return snapshot, nil
}

// ListSnapshots implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListSnapshots(ctx context.Context) ([]timesheet.PayrollSnapshot, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	snapshots, err := s.snapshotRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll snapshots: %w", err)
	}

	return snapshots, nil
}
