package service

import (
	"context"
	"time"

	"github.com/memberware/renewals/internal/domain/order"
	"github.com/memberware/renewals/internal/types"
)

// RenewalService is the entry point the host-integration adapter calls at each
// subscription lifecycle event. Reference instants are explicit parameters;
// the service never reads ambient state like "now" or "current user".
//
// Every repricing pass delegates to RepricingService and is idempotent, so the
// overlapping events the host can fire for one renewal converge instead of
// double-applying.
type RenewalService interface {
	// OnSubscriptionCreated runs at checkout when the host creates the
	// subscription: line items are repriced and the next renewal is scheduled
	// from the creation instant.
	OnSubscriptionCreated(ctx context.Context, sub order.Subscription, now time.Time) error

	// OnScheduledPayment runs when the host processes a scheduled renewal
	// payment. The subscription is looked up by id; if it cannot be resolved
	// the invocation aborts with no mutation. The next renewal is scheduled
	// from the last-paid-order timestamp, falling back to now.
	OnScheduledPayment(ctx context.Context, subscriptionID string, now time.Time) error

	// OnRenewalOrderCreated reprices a freshly created renewal order.
	OnRenewalOrderCreated(ctx context.Context, renewal order.Order, sub order.Subscription) error

	// OnRenewalOrderPending is the defensive earlier pass covering hosts that
	// expose the renewal order before the created event; it applies the same
	// idempotent repricing.
	OnRenewalOrderPending(ctx context.Context, renewal order.Order, sub order.Subscription) error
}

type renewalService struct {
	ServiceParams
	repricing RepricingService

	civilZone   *time.Location
	renewalHour int
}

// NewRenewalService resolves the civil billing zone once so the date
// arithmetic downstream stays pure.
func NewRenewalService(params ServiceParams) (RenewalService, error) {
	loc, err := types.LoadCivilZone(params.Config.Billing.CivilZone)
	if err != nil {
		return nil, err
	}
	return &renewalService{
		ServiceParams: params,
		repricing:     NewRepricingService(params),
		civilZone:     loc,
		renewalHour:   params.Config.Billing.RenewalHour,
	}, nil
}

func (s *renewalService) OnSubscriptionCreated(ctx context.Context, sub order.Subscription, now time.Time) error {
	changed, err := s.repricing.ApplyToOrder(ctx, sub.MemberID(), sub)
	if err != nil {
		return err
	}

	next, err := s.nextRenewal(sub, now)
	if err != nil {
		return err
	}
	sub.SetNextRenewalAt(next)

	if changed {
		s.Logger.Infow("applied dues pricing to new subscription",
			"subscription_id", sub.ID(), "member_id", sub.MemberID())
	}
	s.Logger.Infow("scheduled next renewal",
		"subscription_id", sub.ID(), "next_renewal_at", next)

	return sub.Persist(ctx)
}

func (s *renewalService) OnScheduledPayment(ctx context.Context, subscriptionID string, now time.Time) error {
	sub, err := s.SubRepo.Get(ctx, subscriptionID)
	if err != nil {
		// Nothing is retried here; the next lifecycle event re-attempts.
		return err
	}

	changed, err := s.repricing.ApplyToOrder(ctx, sub.MemberID(), sub)
	if err != nil {
		return err
	}
	if changed {
		sub.AddNote("Custom dues pricing applied to renewal")
		s.Logger.Infow("applied dues pricing on scheduled payment",
			"subscription_id", sub.ID(), "member_id", sub.MemberID())
	}

	reference := now
	if paidAt, ok := sub.LastPaymentAt(); ok {
		reference = paidAt
	}

	next, err := s.nextRenewal(sub, reference)
	if err != nil {
		return err
	}
	sub.SetNextRenewalAt(next)

	s.Logger.Infow("scheduled next renewal",
		"subscription_id", sub.ID(), "next_renewal_at", next)

	return sub.Persist(ctx)
}

func (s *renewalService) OnRenewalOrderCreated(ctx context.Context, renewal order.Order, sub order.Subscription) error {
	return s.repriceRenewalOrder(ctx, renewal, sub)
}

func (s *renewalService) OnRenewalOrderPending(ctx context.Context, renewal order.Order, sub order.Subscription) error {
	return s.repriceRenewalOrder(ctx, renewal, sub)
}

func (s *renewalService) repriceRenewalOrder(ctx context.Context, renewal order.Order, sub order.Subscription) error {
	changed, err := s.repricing.ApplyToOrder(ctx, sub.MemberID(), renewal)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	s.Logger.Infow("applied dues pricing to renewal order",
		"order_id", renewal.ID(),
		"subscription_id", sub.ID(),
		"member_id", sub.MemberID(),
	)
	return renewal.Persist(ctx)
}

// nextRenewal projects the subscription's schedule onto the last day of the
// target billing month in the configured civil zone.
func (s *renewalService) nextRenewal(sub order.Subscription, reference time.Time) (time.Time, error) {
	period, err := types.ParseBillingPeriod(sub.BillingPeriod())
	if err != nil {
		return time.Time{}, err
	}
	return types.NextRenewalDate(reference, sub.BillingInterval(), period, s.civilZone, s.renewalHour)
}
