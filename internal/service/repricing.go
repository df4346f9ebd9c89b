package service

import (
	"context"

	"github.com/memberware/renewals/internal/domain/order"
	ierr "github.com/memberware/renewals/internal/errors"
)

// RepricingService applies a member's dues overrides to the line items of an
// order or subscription. The same procedure runs from every qualifying
// lifecycle event; because overlapping events can target the same underlying
// renewal, the write is idempotent: a second application with an unchanged
// profile changes nothing and triggers no recalculation.
type RepricingService interface {
	// ApplyToOrder resolves each line item through the tier mapping and the
	// member's profile, overwrites subtotal and total where an override
	// resolves, and asks the host to recompute aggregate totals when anything
	// changed. It reports whether a change was made; the caller persists.
	ApplyToOrder(ctx context.Context, memberID string, target order.Order) (bool, error)
}

type repricingService struct {
	ServiceParams
}

func NewRepricingService(params ServiceParams) RepricingService {
	return &repricingService{
		ServiceParams: params,
	}
}

func (s *repricingService) ApplyToOrder(ctx context.Context, memberID string, target order.Order) (bool, error) {
	if target == nil {
		return false, ierr.NewError("order is required").
			WithHint("Repricing needs a resolvable order or subscription").
			Mark(ierr.ErrValidation)
	}
	if memberID == "" {
		// Guest checkout: no member, no override.
		return false, nil
	}

	profile, err := s.DuesRepo.Get(ctx, memberID)
	if err != nil {
		return false, err
	}
	if !profile.HasOverride() {
		return false, nil
	}

	mapping, err := s.MappingRepo.GetMapping(ctx)
	if err != nil {
		return false, err
	}

	changed := false
	for _, item := range target.Items() {
		tier, ok := mapping.Resolve(item.VariationID(), item.ProductID())
		if !ok {
			// Unmapped products stay at platform-default pricing.
			continue
		}
		amount, ok := profile.TierAmount(tier)
		if !ok {
			// Tier not set for this member; overrides are opt-in.
			continue
		}
		if item.Subtotal().Equal(amount) && item.Total().Equal(amount) {
			continue
		}

		item.SetSubtotal(amount)
		item.SetTotal(amount)
		changed = true

		s.Logger.Debugw("applied dues override to line item",
			"order_id", target.ID(),
			"member_id", memberID,
			"product_id", item.ProductID(),
			"variation_id", item.VariationID(),
			"tier", tier.String(),
			"amount", amount.String(),
		)
	}

	if changed {
		target.RecalculateTotals()
	}

	return changed, nil
}
