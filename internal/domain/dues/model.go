package dues

import (
	"context"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/memberware/renewals/internal/types"
)

// DuesProfile is the per-member pricing record the host platform stores as
// member attributes. Quarterly and biennial are always derived from Annual and
// persisted together; a nil field means no override for that tier.
type DuesProfile struct {
	MemberID  string           `json:"member_id"`
	Annual    *decimal.Decimal `json:"annual,omitempty"`
	Quarterly *decimal.Decimal `json:"quarterly,omitempty"`
	Biennial  *decimal.Decimal `json:"biennial,omitempty"`
}

// TierAmount returns the override price for the given tier. The second return
// is false when the tier is absent or not a usable price (negative); custom
// pricing is opt-in and never defaults to zero.
func (p *DuesProfile) TierAmount(tier types.DuesTier) (decimal.Decimal, bool) {
	if p == nil {
		return decimal.Zero, false
	}

	var amount *decimal.Decimal
	switch tier {
	case types.DUES_TIER_ANNUAL:
		amount = p.Annual
	case types.DUES_TIER_QUARTERLY:
		amount = p.Quarterly
	case types.DUES_TIER_BIENNIAL:
		amount = p.Biennial
	}

	if amount == nil || amount.IsNegative() {
		return decimal.Zero, false
	}
	return *amount, true
}

// HasOverride reports whether any tier carries a usable price.
func (p *DuesProfile) HasOverride() bool {
	if p == nil {
		return false
	}
	tiers := []types.DuesTier{types.DUES_TIER_ANNUAL, types.DUES_TIER_QUARTERLY, types.DUES_TIER_BIENNIAL}
	return lo.SomeBy(tiers, func(tier types.DuesTier) bool {
		_, ok := p.TierAmount(tier)
		return ok
	})
}

// Repository loads and stores dues profiles keyed by member id. Reads are
// lenient: absent or unparseable attributes come back as nil fields, never as
// errors. Save persists all three tiers together, clearing nil fields, so the
// stored record can never hold stale derived values.
type Repository interface {
	Get(ctx context.Context, memberID string) (*DuesProfile, error)
	Save(ctx context.Context, profile *DuesProfile) error
}
