package timesheet

import (
	"time"

	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/policy"
)

// Classification is the policy-dependent breakdown of one normalized
// interval. Weekend and holiday are anchor-date properties: a night shift
// starting Friday belongs to Friday even when it ends Saturday morning.
type Classification struct {
	NightMinutes int
	IsWeekend    bool
	IsHoliday    bool
	IsHalfDay    bool
}

// Classify computes the night-window overlap of [absStart, absEnd) and the
// weekend/holiday flags of the anchor date under the given policy.
func Classify(absStart, absEnd, anchorDate time.Time, pol policy.WorkPolicy, holidays policy.HolidayCalendar) Classification {
	c := Classification{
		NightMinutes: NightOverlapMinutes(absStart, absEnd, pol),
		IsWeekend:    pol.IsWeekend(anchorDate),
	}
	if h, ok := holidays.Lookup(anchorDate); ok {
		c.IsHoliday = true
		c.IsHalfDay = h.IsHalfDay
	}
	return c
}

// NightOverlapMinutes sums, in whole minutes, the overlap of [absStart,
// absEnd) with the recurring daily night window. A wrapping window such as
// 20:00-06:00 is evaluated as its evening and morning halves on every day
// the interval touches. A zero-width window yields zero.
func NightOverlapMinutes(absStart, absEnd time.Time, pol policy.WorkPolicy) int {
	if pol.NightStart == pol.NightEnd {
		return 0
	}

	total := 0
	day := time.Date(absStart.Year(), absStart.Month(), absStart.Day(), 0, 0, 0, 0, absStart.Location())
	for !day.After(absEnd) {
		if pol.NightWindowWraps() {
			// Evening half: [nightStart, midnight)
			total += overlapMinutes(absStart, absEnd, pol.NightStart.On(day), day.AddDate(0, 0, 1))
			// Morning half: [midnight, nightEnd)
			total += overlapMinutes(absStart, absEnd, day, pol.NightEnd.On(day))
		} else {
			total += overlapMinutes(absStart, absEnd, pol.NightStart.On(day), pol.NightEnd.On(day))
		}
		day = day.AddDate(0, 0, 1)
	}
	return total
}

func overlapMinutes(aStart, aEnd, bStart, bEnd time.Time) int {
	start := aStart
	if bStart.After(start) {
		start = bStart
	}
	end := aEnd
	if bEnd.Before(end) {
		end = bEnd
	}
	if !end.After(start) {
		return 0
	}
	return int(end.Sub(start).Minutes())
}
