package types

import (
	"strings"

	ierr "github.com/memberware/renewals/internal/errors"
)

// DuesTier identifies which member dues figure a mapped product bills at.
type DuesTier string

const (
	DUES_TIER_ANNUAL    DuesTier = "annual"
	DUES_TIER_QUARTERLY DuesTier = "quarterly"
	DUES_TIER_BIENNIAL  DuesTier = "biennial"
)

func (t DuesTier) String() string {
	return string(t)
}

func (t DuesTier) Validate() error {
	switch t {
	case DUES_TIER_ANNUAL, DUES_TIER_QUARTERLY, DUES_TIER_BIENNIAL:
		return nil
	default:
		return ierr.NewErrorf("invalid dues tier: %s", t).
			WithHint("Dues tier must be one of annual, quarterly, biennial").
			Mark(ierr.ErrValidation)
	}
}

func ParseDuesTier(raw string) (DuesTier, error) {
	tier := DuesTier(strings.ToLower(strings.TrimSpace(raw)))
	if err := tier.Validate(); err != nil {
		return "", err
	}
	return tier, nil
}
