package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/policy"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/pkg/database"
)

type policyRepository struct {
	db *database.DB
}

func NewPolicyRepository(db *database.DB) policy.PolicyRepository {
	return &policyRepository{db: db}
}

// GetByCompany implements policy.PolicyRepository.
func (p *policyRepository) GetByCompany(ctx context.Context, companyID string) (policy.WorkPolicy, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, company_id, daily_work_hours, weekly_work_hours, monthly_work_hours_target,
			   break_minutes, night_start_minutes, night_end_minutes, weekend_days,
			   overtime_mode, created_at, updated_at
		FROM work_policies
		WHERE company_id = $1
	`

	var pol policy.WorkPolicy
	var weekendDays []int32
	err := q.QueryRow(ctx, query, companyID).Scan(
		&pol.ID, &pol.CompanyID,
		&pol.DailyWorkHours, &pol.WeeklyWorkHours, &pol.MonthlyWorkHoursTarget,
		&pol.BreakMinutes, &pol.NightStart, &pol.NightEnd, &weekendDays,
		&pol.OvertimeMode, &pol.CreatedAt, &pol.UpdatedAt,
	)

	if err != nil {
		return policy.WorkPolicy{}, fmt.Errorf("failed to get work policy: %w", err)
	}

	pol.WeekendDays = toWeekdays(weekendDays)
	return pol, nil
}

// Upsert implements policy.PolicyRepository. One policy row per company.
func (p *policyRepository) Upsert(ctx context.Context, pol policy.WorkPolicy) (policy.WorkPolicy, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO work_policies (
			company_id, daily_work_hours, weekly_work_hours, monthly_work_hours_target,
			break_minutes, night_start_minutes, night_end_minutes, weekend_days, overtime_mode
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
		ON CONFLICT (company_id) DO UPDATE SET
			daily_work_hours = EXCLUDED.daily_work_hours,
			weekly_work_hours = EXCLUDED.weekly_work_hours,
			monthly_work_hours_target = EXCLUDED.monthly_work_hours_target,
			break_minutes = EXCLUDED.break_minutes,
			night_start_minutes = EXCLUDED.night_start_minutes,
			night_end_minutes = EXCLUDED.night_end_minutes,
			weekend_days = EXCLUDED.weekend_days,
			overtime_mode = EXCLUDED.overtime_mode,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		pol.CompanyID,
		pol.DailyWorkHours,
		pol.WeeklyWorkHours,
		pol.MonthlyWorkHoursTarget,
		pol.BreakMinutes,
		int(pol.NightStart),
		int(pol.NightEnd),
		toInts(pol.WeekendDays),
		string(pol.OvertimeMode),
	).Scan(&pol.ID, &pol.CreatedAt, &pol.UpdatedAt)

	if err != nil {
		return policy.WorkPolicy{}, fmt.Errorf("failed to upsert work policy: %w", err)
	}

	return pol, nil
}

func toWeekdays(days []int32) []time.Weekday {
	out := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		out = append(out, time.Weekday(d))
	}
	return out
}

func toInts(days []time.Weekday) []int32 {
	out := make([]int32, 0, len(days))
	for _, d := range days {
		out = append(out, int32(d))
	}
	return out
}
