package policy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/policy"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/timesheet"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type PolicyServiceImpl struct {
	policyRepo  policy.PolicyRepository
	holidayRepo policy.HolidayRepository
}

func NewPolicyService(policyRepo policy.PolicyRepository, holidayRepo policy.HolidayRepository) policy.PolicyService {
	return &PolicyServiceImpl{
		policyRepo:  policyRepo,
		holidayRepo: holidayRepo,
	}
}

func companyFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// defaultPolicy is the starting configuration for a company that has never
// saved one: 8h days, hour lunch break, 20:00-06:00 night window,
// Saturday/Sunday weekends, daily overtime.
func defaultPolicy(companyID string) policy.WorkPolicy {
	return policy.WorkPolicy{
		CompanyID:       companyID,
		DailyWorkHours:  decimal.NewFromInt(8),
		WeeklyWorkHours: decimal.NewFromInt(40),
		BreakMinutes:    60,
		NightStart:      timesheet.NewClockTime(20, 0),
		NightEnd:        timesheet.NewClockTime(6, 0),
		WeekendDays:     []time.Weekday{time.Saturday, time.Sunday},
		OvertimeMode:    policy.OvertimeDaily,
	}
}

// GetPolicy implements policy.PolicyService.
func (s *PolicyServiceImpl) GetPolicy(ctx context.Context) (policy.PolicyResponse, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return policy.PolicyResponse{}, err
	}

	pol, err := s.policyRepo.GetByCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, policy.ErrPolicyNotFound) {
			return policy.PolicyResponse{}, policy.ErrPolicyNotFound
		}
		return policy.PolicyResponse{}, fmt.Errorf("failed to get work policy: %w", err)
	}

	return policy.MapPolicyToResponse(pol), nil
}

// UpdatePolicy implements policy.PolicyService. Omitted fields keep their
// current value; a company with no stored policy starts from the defaults.
func (s *PolicyServiceImpl) UpdatePolicy(ctx context.Context, req policy.UpdatePolicyRequest) (policy.PolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return policy.PolicyResponse{}, err
	}

	companyID, err := companyFromContext(ctx)
	if err != nil {
		return policy.PolicyResponse{}, err
	}

	pol, err := s.policyRepo.GetByCompany(ctx, companyID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) && !errors.Is(err, policy.ErrPolicyNotFound) {
			return policy.PolicyResponse{}, fmt.Errorf("failed to get work policy: %w", err)
		}
		pol = defaultPolicy(companyID)
	}

	if req.DailyWorkHours != nil {
		pol.DailyWorkHours = *req.DailyWorkHours
	}
	if req.WeeklyWorkHours != nil {
		pol.WeeklyWorkHours = *req.WeeklyWorkHours
	}
	if req.MonthlyWorkHoursTarget != nil {
		pol.MonthlyWorkHoursTarget = *req.MonthlyWorkHoursTarget
	}
	if req.BreakMinutes != nil {
		pol.BreakMinutes = *req.BreakMinutes
	}
	if pol.NightStart, err = policy.ParseNightWindow(pol.NightStart, req.NightStart); err != nil {
		return policy.PolicyResponse{}, err
	}
	if pol.NightEnd, err = policy.ParseNightWindow(pol.NightEnd, req.NightEnd); err != nil {
		return policy.PolicyResponse{}, err
	}
	if req.WeekendDays != nil {
		days := make([]time.Weekday, 0, len(req.WeekendDays))
		for _, d := range req.WeekendDays {
			days = append(days, time.Weekday(d))
		}
		pol.WeekendDays = days
	}
	if req.OvertimeMode != nil {
		pol.OvertimeMode = policy.OvertimeMode(*req.OvertimeMode)
	}

	saved, err := s.policyRepo.Upsert(ctx, pol)
	if err != nil {
		return policy.PolicyResponse{}, fmt.Errorf("failed to save work policy: %w", err)
	}

	return policy.MapPolicyToResponse(saved), nil
}

// ListHolidays implements policy.PolicyService.
func (s *PolicyServiceImpl) ListHolidays(ctx context.Context, year int) ([]policy.HolidayResponse, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	holidays, err := s.holidayRepo.ListByPeriod(ctx, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]policy.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, policy.MapHolidayToResponse(h))
	}

	return responses, nil
}

// CreateHoliday implements policy.PolicyService.
func (s *PolicyServiceImpl) CreateHoliday(ctx context.Context, req policy.CreateHolidayRequest) (policy.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return policy.HolidayResponse{}, err
	}

	companyID, err := companyFromContext(ctx)
	if err != nil {
		return policy.HolidayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	holiday := policy.Holiday{
		CompanyID: companyID,
		Date:      date,
		Name:      req.Name,
		IsHalfDay: req.IsHalfDay,
	}
	if req.IsHalfDay {
		holiday.HalfDayWorkHours = req.HalfDayWorkHours
	}

	created, err := s.holidayRepo.Create(ctx, holiday)
	if err != nil {
		if errors.Is(err, policy.ErrHolidayExists) {
			return policy.HolidayResponse{}, policy.ErrHolidayExists
		}
		return policy.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return policy.MapHolidayToResponse(created), nil
}

// DeleteHoliday implements policy.PolicyService.
func (s *PolicyServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.holidayRepo.Delete(ctx, id, companyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, policy.ErrHolidayNotFound) {
			return policy.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to delete holiday: %w", err)
	}

	return nil
}
