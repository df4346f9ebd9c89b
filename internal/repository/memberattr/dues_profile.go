package memberattr

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/memberware/renewals/internal/config"
	"github.com/memberware/renewals/internal/domain/dues"
	"github.com/memberware/renewals/internal/domain/member"
	ierr "github.com/memberware/renewals/internal/errors"
	"github.com/memberware/renewals/internal/logger"
)

// duesProfileRepository persists dues profiles as host member attributes,
// one stringly-typed attribute per tier.
type duesProfileRepository struct {
	store member.AttributeStore
	keys  config.DuesConfig
	log   *logger.Logger
}

func NewDuesProfileRepository(store member.AttributeStore, keys config.DuesConfig, log *logger.Logger) dues.Repository {
	return &duesProfileRepository{
		store: store,
		keys:  keys,
		log:   log,
	}
}

// Get reads the profile leniently: attributes that are absent, unparseable or
// negative come back as nil fields so the caller sees "no override" rather
// than an error. Store failures still surface.
func (r *duesProfileRepository) Get(ctx context.Context, memberID string) (*dues.DuesProfile, error) {
	if memberID == "" {
		return nil, ierr.NewError("member ID is required").
			WithHint("Please provide a valid member ID").
			Mark(ierr.ErrValidation)
	}

	profile := &dues.DuesProfile{MemberID: memberID}

	fields := []struct {
		key  string
		dest **decimal.Decimal
	}{
		{r.keys.AnnualKey, &profile.Annual},
		{r.keys.QuarterlyKey, &profile.Quarterly},
		{r.keys.BiennialKey, &profile.Biennial},
	}

	for _, f := range fields {
		raw, found, err := r.store.GetAttribute(ctx, memberID, f.key)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		amount, err := decimal.NewFromString(raw)
		if err != nil || amount.IsNegative() {
			r.log.Debugw("ignoring unusable dues attribute",
				"member_id", memberID, "key", f.key, "value", raw)
			continue
		}
		*f.dest = &amount
	}

	return profile, nil
}

// Save writes all three tiers in one pass. Nil fields are cleared, never left
// at their previous value, so derived tiers can never go stale.
func (r *duesProfileRepository) Save(ctx context.Context, profile *dues.DuesProfile) error {
	if profile == nil || profile.MemberID == "" {
		return ierr.NewError("dues profile with member ID is required").
			WithHint("Please provide a valid dues profile").
			Mark(ierr.ErrValidation)
	}

	fields := []struct {
		key    string
		amount *decimal.Decimal
	}{
		{r.keys.AnnualKey, profile.Annual},
		{r.keys.QuarterlyKey, profile.Quarterly},
		{r.keys.BiennialKey, profile.Biennial},
	}

	for _, f := range fields {
		if f.amount == nil {
			if err := r.store.ClearAttribute(ctx, profile.MemberID, f.key); err != nil {
				return err
			}
			continue
		}
		if err := r.store.SetAttribute(ctx, profile.MemberID, f.key, f.amount.String()); err != nil {
			return err
		}
	}

	return nil
}
