package types

import (
	"time"

	ierr "github.com/memberware/renewals/internal/errors"
)

// NextRenewalDate computes the next renewal instant for a subscription: the
// reference instant is advanced by count billing periods in the given civil
// zone, the advanced date is then forced to the last calendar day of its month
// at hour:00:00 civil time, and the result is returned in UTC.
//
// Month and year advancement uses calendar semantics: Jan 31 plus one month
// belongs to February, never an overflowed March date, so the target month
// comes from month arithmetic rather than day-based addition. The last-day
// step accounts for leap years (Feb 29) and the civil timestamp is converted
// through the zone's real UTC offset, so results stay correct across DST
// transitions.
func NextRenewalDate(reference time.Time, count int, period BillingPeriod, loc *time.Location, hour int) (time.Time, error) {
	if count < 1 {
		return time.Time{}, ierr.NewErrorf("billing period count must be positive, got %d", count).
			WithHint("Billing interval must be at least 1").
			Mark(ierr.ErrValidation)
	}
	if err := period.Validate(); err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		return time.Time{}, ierr.NewError("civil zone is required").
			WithHint("Provide a loaded *time.Location for the billing zone").
			Mark(ierr.ErrValidation)
	}
	if hour < 0 || hour > 23 {
		return time.Time{}, ierr.NewErrorf("renewal hour out of range: %d", hour).
			WithHint("Renewal hour must be between 0 and 23").
			Mark(ierr.ErrValidation)
	}

	civil := reference.In(loc)
	y, m, _ := civil.Date()

	switch period {
	case BILLING_PERIOD_DAILY:
		y, m, _ = civil.AddDate(0, 0, count).Date()
	case BILLING_PERIOD_WEEKLY:
		y, m, _ = civil.AddDate(0, 0, 7*count).Date()
	case BILLING_PERIOD_MONTHLY:
		months := int(m) - 1 + count
		y, m = y+months/12, time.Month(months%12+1)
	case BILLING_PERIOD_ANNUAL:
		y += count
	}

	last := daysInMonth(y, m)
	return time.Date(y, m, last, hour, 0, 0, 0, loc).UTC(), nil
}

// daysInMonth returns the number of calendar days in the given month. Day 0 of
// the following month normalizes to this month's last day.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
