package testutil

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/memberware/renewals/internal/domain/order"
)

// FakeLineItem implements order.LineItem
type FakeLineItem struct {
	Product   string
	Variation string
	Sub       decimal.Decimal
	Tot       decimal.Decimal
}

func (i *FakeLineItem) ProductID() string                  { return i.Product }
func (i *FakeLineItem) VariationID() string                { return i.Variation }
func (i *FakeLineItem) Subtotal() decimal.Decimal          { return i.Sub }
func (i *FakeLineItem) Total() decimal.Decimal             { return i.Tot }
func (i *FakeLineItem) SetSubtotal(amount decimal.Decimal) { i.Sub = amount }
func (i *FakeLineItem) SetTotal(amount decimal.Decimal)    { i.Tot = amount }

// FakeOrder implements order.Order and records every host-side effect so
// tests can assert on recalculation, persistence and note counts.
type FakeOrder struct {
	OrderID   string
	Member    string
	LineItems []*FakeLineItem

	GrandTotal     decimal.Decimal
	Recalculations int
	Persists       int
	Notes          []string
	PersistErr     error
}

func (o *FakeOrder) ID() string       { return o.OrderID }
func (o *FakeOrder) MemberID() string { return o.Member }

func (o *FakeOrder) Items() []order.LineItem {
	items := make([]order.LineItem, len(o.LineItems))
	for i, item := range o.LineItems {
		items[i] = item
	}
	return items
}

func (o *FakeOrder) RecalculateTotals() {
	o.Recalculations++
	total := decimal.Zero
	for _, item := range o.LineItems {
		total = total.Add(item.Tot)
	}
	o.GrandTotal = total
}

func (o *FakeOrder) AddNote(note string) {
	o.Notes = append(o.Notes, note)
}

func (o *FakeOrder) Persist(ctx context.Context) error {
	if o.PersistErr != nil {
		return o.PersistErr
	}
	o.Persists++
	return nil
}

// FakeSubscription implements order.Subscription
type FakeSubscription struct {
	FakeOrder

	Interval    int
	Period      string
	LastPaidAt  *time.Time
	NextRenewal *time.Time
}

func (s *FakeSubscription) BillingInterval() int  { return s.Interval }
func (s *FakeSubscription) BillingPeriod() string { return s.Period }

func (s *FakeSubscription) LastPaymentAt() (time.Time, bool) {
	if s.LastPaidAt == nil {
		return time.Time{}, false
	}
	return *s.LastPaidAt, true
}

func (s *FakeSubscription) SetNextRenewalAt(utc time.Time) {
	s.NextRenewal = &utc
}
