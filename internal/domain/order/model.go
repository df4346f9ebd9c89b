package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one product/quantity/price entry within an order or
// subscription. Subtotal and total are always written together and always to
// the same derived price; tax and shipping stay with the host platform.
type LineItem interface {
	ProductID() string
	// VariationID returns "" for simple products.
	VariationID() string

	Subtotal() decimal.Decimal
	Total() decimal.Decimal
	SetSubtotal(amount decimal.Decimal)
	SetTotal(amount decimal.Decimal)
}

// Order is the capability group both order and subscription records expose to
// this module. Implementations are owned by the host platform; mutations only
// take effect on the host once Persist is called.
type Order interface {
	ID() string
	MemberID() string
	Items() []LineItem

	// RecalculateTotals asks the host to recompute aggregate totals from the
	// line items. Call it after item-level writes, before Persist.
	RecalculateTotals()

	// AddNote records a human-readable note on the record. Hosts without
	// order notes implement it as a no-op.
	AddNote(note string)

	Persist(ctx context.Context) error
}

// Subscription extends Order with the billing schedule.
type Subscription interface {
	Order

	BillingInterval() int
	// BillingPeriod returns the host period string (day, week, month, year).
	BillingPeriod() string

	// LastPaymentAt returns the timestamp of the last paid order, when any.
	LastPaymentAt() (time.Time, bool)

	SetNextRenewalAt(utc time.Time)
}

// SubscriptionRepository resolves subscriptions by id for lifecycle events
// that only carry an identifier (scheduled payments).
type SubscriptionRepository interface {
	Get(ctx context.Context, id string) (Subscription, error)
}
