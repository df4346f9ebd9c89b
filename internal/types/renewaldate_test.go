package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestNextRenewalDate_MonthEndSemantics(t *testing.T) {
	newYork := mustLoad(t, "America/New_York")

	tests := []struct {
		name      string
		reference time.Time
		count     int
		period    BillingPeriod
		expected  time.Time
	}{
		{
			name: "jan 31 plus one month lands on leap feb 29, EST offset",
			// 2024-01-31T00:00 civil in New York
			reference: time.Date(2024, 1, 31, 0, 0, 0, 0, newYork),
			count:     1,
			period:    BILLING_PERIOD_MONTHLY,
			// 2024-02-29T09:00-05:00 == 14:00 UTC
			expected: time.Date(2024, 2, 29, 14, 0, 0, 0, time.UTC),
		},
		{
			name:      "one year from feb 28 2023 settles on feb 29 2024",
			reference: time.Date(2023, 2, 28, 12, 0, 0, 0, newYork),
			count:     1,
			period:    BILLING_PERIOD_ANNUAL,
			expected:  time.Date(2024, 2, 29, 14, 0, 0, 0, time.UTC),
		},
		{
			name:      "non leap february",
			reference: time.Date(2025, 1, 15, 0, 0, 0, 0, newYork),
			count:     1,
			period:    BILLING_PERIOD_MONTHLY,
			expected:  time.Date(2025, 2, 28, 14, 0, 0, 0, time.UTC),
		},
		{
			name:      "summer target uses EDT offset, 9am civil is 13:00 UTC",
			reference: time.Date(2024, 5, 10, 0, 0, 0, 0, newYork),
			count:     1,
			period:    BILLING_PERIOD_MONTHLY,
			expected:  time.Date(2024, 6, 30, 13, 0, 0, 0, time.UTC),
		},
		{
			name:      "quarterly interval crosses a year boundary",
			reference: time.Date(2024, 11, 30, 0, 0, 0, 0, newYork),
			count:     3,
			period:    BILLING_PERIOD_MONTHLY,
			expected:  time.Date(2025, 2, 28, 14, 0, 0, 0, time.UTC),
		},
		{
			name:      "weekly advances by whole weeks then snaps to month end",
			reference: time.Date(2024, 3, 1, 0, 0, 0, 0, newYork),
			count:     2,
			period:    BILLING_PERIOD_WEEKLY,
			// +14 days = Mar 15; last day of March at 9am EDT = 13:00 UTC
			expected: time.Date(2024, 3, 31, 13, 0, 0, 0, time.UTC),
		},
		{
			name:      "daily advance that crosses into the next month",
			reference: time.Date(2024, 4, 29, 0, 0, 0, 0, newYork),
			count:     3,
			period:    BILLING_PERIOD_DAILY,
			// Apr 29 + 3d = May 2; last day of May at 9am EDT
			expected: time.Date(2024, 5, 31, 13, 0, 0, 0, time.UTC),
		},
		{
			name: "UTC reference is converted into the civil zone first",
			// 2024-03-01T02:00 UTC is still 2024-02-29 in New York
			reference: time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC),
			count:     1,
			period:    BILLING_PERIOD_MONTHLY,
			// civil Feb 29 + 1 month = Mar 29, snapped to Mar 31
			expected: time.Date(2024, 3, 31, 13, 0, 0, 0, time.UTC),
		},
		{
			name:      "biennial style two year advance",
			reference: time.Date(2022, 2, 28, 0, 0, 0, 0, newYork),
			count:     2,
			period:    BILLING_PERIOD_ANNUAL,
			expected:  time.Date(2024, 2, 29, 14, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextRenewalDate(tt.reference, tt.count, tt.period, newYork, 9)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.expected), "got %s, want %s", got, tt.expected)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestNextRenewalDate_Validation(t *testing.T) {
	newYork := mustLoad(t, "America/New_York")
	ref := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := NextRenewalDate(ref, 0, BILLING_PERIOD_MONTHLY, newYork, 9)
	assert.Error(t, err)

	_, err = NextRenewalDate(ref, 1, BillingPeriod("FORTNIGHTLY"), newYork, 9)
	assert.Error(t, err)

	_, err = NextRenewalDate(ref, 1, BILLING_PERIOD_MONTHLY, nil, 9)
	assert.Error(t, err)

	_, err = NextRenewalDate(ref, 1, BILLING_PERIOD_MONTHLY, newYork, 24)
	assert.Error(t, err)
}

func TestNextRenewalDate_DeterministicForSameInput(t *testing.T) {
	newYork := mustLoad(t, "America/New_York")
	ref := time.Date(2024, 7, 4, 10, 30, 0, 0, time.UTC)

	first, err := NextRenewalDate(ref, 1, BILLING_PERIOD_MONTHLY, newYork, 9)
	require.NoError(t, err)
	second, err := NextRenewalDate(ref, 1, BILLING_PERIOD_MONTHLY, newYork, 9)
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
}

func TestParseBillingPeriod(t *testing.T) {
	tests := []struct {
		raw      string
		expected BillingPeriod
		wantErr  bool
	}{
		{raw: "day", expected: BILLING_PERIOD_DAILY},
		{raw: "week", expected: BILLING_PERIOD_WEEKLY},
		{raw: "month", expected: BILLING_PERIOD_MONTHLY},
		{raw: "year", expected: BILLING_PERIOD_ANNUAL},
		{raw: "Month", expected: BILLING_PERIOD_MONTHLY},
		{raw: "ANNUAL", expected: BILLING_PERIOD_ANNUAL},
		{raw: "fortnight", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseBillingPeriod(tt.raw)
		if tt.wantErr {
			assert.Error(t, err, "raw=%q", tt.raw)
			continue
		}
		assert.NoError(t, err, "raw=%q", tt.raw)
		assert.Equal(t, tt.expected, got)
	}
}
