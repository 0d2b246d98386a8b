package timesheet

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/leave"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/policy"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
)

var minutesPerHour = decimal.NewFromInt(60)

// dayResult keeps the exact minute counts next to the presentation entry so
// the overtime calculator can work on unrounded values.
type dayResult struct {
	Entry         timesheet.DailyEntry
	State         timesheet.DayState
	WorkedMinutes int
	NightMinutes  int
	// Target is the required-hours contribution of this day: the daily
	// target for a plain day, the half-day hours on a half-day holiday,
	// zero for rest/day-off/leave days.
	Target decimal.Decimal
	// HalfDay marks a half-day holiday, whose reduced target also lowers
	// the monthly-mode period target.
	HalfDay bool
}

// buildDailyEntries runs the per-day state machine for one employee over
// [from, to] inclusive. Records must already be grouped into the period;
// spillover portions arrive as CarryOver intervals on day 1.
//
// Per-record failures (invalid intervals, incomplete pairs) are isolated to
// their day and surfaced as entry notes, never as errors: one bad record
// must not abort a whole month.
func buildDailyEntries(
	intervals []timesheet.WorkInterval,
	from, to time.Time,
	pol policy.WorkPolicy,
	holidays policy.HolidayCalendar,
	leaves leave.Calendar,
	employeeID string,
	dailyTarget decimal.Decimal,
) []dayResult {
	byDay := make(map[string][]timesheet.WorkInterval)
	for _, iv := range intervals {
		key := iv.Date.Format("2006-01-02")
		byDay[key] = append(byDay[key], iv)
	}

	var results []dayResult
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		records := byDay[day.Format("2006-01-02")]
		results = append(results, buildDay(day, records, pol, holidays, leaves, employeeID, dailyTarget))
	}
	return results
}

func buildDay(
	day time.Time,
	records []timesheet.WorkInterval,
	pol policy.WorkPolicy,
	holidays policy.HolidayCalendar,
	leaves leave.Calendar,
	employeeID string,
	dailyTarget decimal.Decimal,
) dayResult {
	isWeekend := pol.IsWeekend(day)
	holiday, isHoliday := holidays.Lookup(day)

	entry := timesheet.DailyEntry{
		Date:       day,
		Hours:      decimal.Zero,
		NightHours: decimal.Zero,
		IsWeekend:  isWeekend,
		IsHoliday:  isHoliday,
	}

	halfDay := false
	target := dailyTarget
	if isHoliday {
		if holiday.IsHalfDay && holiday.HalfDayWorkHours != nil {
			target = *holiday.HalfDayWorkHours
			halfDay = true
		} else {
			target = decimal.Zero
		}
	}

	var notes []string
	var complete []timesheet.WorkInterval
	dayOffFlagged := false
	for _, r := range records {
		switch {
		case r.IsDayOff:
			dayOffFlagged = true
		case r.Complete():
			complete = append(complete, r)
		default:
			notes = append(notes, "incomplete record: missing check-in or check-out")
		}
	}

	if dayOffFlagged && len(complete) == 0 {
		entry.IsDayOff = true
		entry.Note = joinNotes(notes)
		entry.State = timesheet.DayOff
		return dayResult{Entry: entry, State: timesheet.DayOff, HalfDay: halfDay}
	}
	if dayOffFlagged {
		notes = append(notes, "day-off flag ignored: worked hours recorded")
	}

	if len(complete) == 0 {
		if l, ok := leaves.Lookup(employeeID, day); ok {
			entry.State = timesheet.DayLeave
			entry.Note = joinNotes(append(notes, "approved leave: "+l.LeaveType))
			return dayResult{Entry: entry, State: timesheet.DayLeave, HalfDay: halfDay}
		}
		if len(records) > 0 {
			// Incomplete records stay visible with zero hours.
			entry.State = timesheet.DayWorked
			entry.Note = joinNotes(notes)
			return dayResult{Entry: entry, State: timesheet.DayWorked, HalfDay: halfDay}
		}
		if isWeekend || (isHoliday && !holiday.IsHalfDay) {
			entry.State = timesheet.DayRest
			return dayResult{Entry: entry, State: timesheet.DayRest}
		}
		entry.State = timesheet.DayAbsent
		entry.Note = "absent: no record on a required day"
		return dayResult{Entry: entry, State: timesheet.DayAbsent, Target: target, HalfDay: halfDay}
	}

	if len(complete) > 1 {
		notes = append(notes, "multiple records for this day; durations summed")
	}

	totalMinutes := 0
	nightMinutes := 0
	breakApplies := false
	var firstStart, lastEnd *timesheet.ClockTime
	for _, r := range complete {
		absStart, absEnd, err := Normalize(r.Date, *r.Start, *r.End, r.StartsPreviousDay, r.EndsNextDay)
		if err != nil {
			notes = append(notes, "invalid interval "+r.Start.String()+"-"+r.End.String()+": excluded from totals")
			continue
		}

		c := Classify(absStart, absEnd, r.Date, pol, holidays)
		minutes := int(absEnd.Sub(absStart).Minutes())
		totalMinutes += minutes
		nightMinutes += c.NightMinutes
		if !r.CarryOver {
			breakApplies = true
		} else {
			notes = append(notes, "includes hours carried over from the previous period")
		}
		if r.Clipped {
			notes = append(notes, "clipped at period end; remainder carries into the next period")
		}

		if mismatch := cachedHoursMismatch(r, minutes); mismatch != "" {
			notes = append(notes, mismatch)
		}

		if firstStart == nil || *r.Start < *firstStart {
			firstStart = r.Start
		}
		if lastEnd == nil || r.EndsNextDay || *r.End > *lastEnd {
			lastEnd = r.End
		}
	}

	if totalMinutes == 0 {
		// Every record on the day was invalid.
		entry.State = timesheet.DayWorked
		entry.Note = joinNotes(notes)
		return dayResult{Entry: entry, State: timesheet.DayWorked, Target: target, HalfDay: halfDay}
	}

	workedMinutes := totalMinutes
	if breakApplies && pol.BreakMinutes > 0 {
		workedMinutes -= pol.BreakMinutes
		if workedMinutes < 0 {
			workedMinutes = 0
		}
	}
	// The break deduction may push worked time below the night overlap;
	// night hours never exceed the day's hours.
	if nightMinutes > workedMinutes {
		nightMinutes = workedMinutes
	}

	entry.State = timesheet.DayWorked
	entry.Hours = minutesToHours(workedMinutes)
	entry.NightHours = minutesToHours(nightMinutes)
	entry.StartTime = firstStart
	entry.EndTime = lastEnd
	entry.Note = joinNotes(notes)

	return dayResult{
		Entry:         entry,
		State:         timesheet.DayWorked,
		WorkedMinutes: workedMinutes,
		NightMinutes:  nightMinutes,
		Target:        target,
		HalfDay:       halfDay,
	}
}

// cachedHoursMismatch compares shift-side stored totals against the
// recomputed duration. Stored hours are a write-time cache; when policy
// settings changed since, the recomputed value wins and the drift is noted.
func cachedHoursMismatch(r timesheet.WorkInterval, recomputedMinutes int) string {
	if r.CachedTotalHours == nil || r.CarryOver || r.Clipped {
		return ""
	}
	recomputed := minutesToHours(recomputedMinutes)
	if r.CachedTotalHours.Sub(recomputed).Abs().GreaterThan(decimal.NewFromFloat(0.01)) {
		return "stored hours (" + r.CachedTotalHours.StringFixed(2) + ") differ from recomputed (" + recomputed.StringFixed(2) + "); recomputed value used"
	}
	return ""
}

func minutesToHours(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(minutesPerHour).Round(2)
}

func joinNotes(notes []string) string {
	return strings.Join(notes, "; ")
}
