package types

import (
	"strings"

	ierr "github.com/memberware/renewals/internal/errors"
)

// BillingPeriod is the unit a subscription schedule advances by.
type BillingPeriod string

const (
	BILLING_PERIOD_DAILY   BillingPeriod = "DAILY"
	BILLING_PERIOD_WEEKLY  BillingPeriod = "WEEKLY"
	BILLING_PERIOD_MONTHLY BillingPeriod = "MONTHLY"
	BILLING_PERIOD_ANNUAL  BillingPeriod = "ANNUAL"
)

func (p BillingPeriod) String() string {
	return string(p)
}

func (p BillingPeriod) Validate() error {
	switch p {
	case BILLING_PERIOD_DAILY, BILLING_PERIOD_WEEKLY, BILLING_PERIOD_MONTHLY, BILLING_PERIOD_ANNUAL:
		return nil
	default:
		return ierr.NewErrorf("invalid billing period: %s", p).
			WithHint("Billing period must be one of DAILY, WEEKLY, MONTHLY, ANNUAL").
			Mark(ierr.ErrValidation)
	}
}

// ParseBillingPeriod maps the host platform's period strings (day, week, month,
// year) onto the canonical enum. Matching is case-insensitive and accepts both
// the host spelling and the canonical one.
func ParseBillingPeriod(raw string) (BillingPeriod, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "day", "daily":
		return BILLING_PERIOD_DAILY, nil
	case "week", "weekly":
		return BILLING_PERIOD_WEEKLY, nil
	case "month", "monthly":
		return BILLING_PERIOD_MONTHLY, nil
	case "year", "yearly", "annual":
		return BILLING_PERIOD_ANNUAL, nil
	default:
		return "", ierr.NewErrorf("unknown billing period: %q", raw).
			WithHint("Expected one of day, week, month, year").
			Mark(ierr.ErrValidation)
	}
}
