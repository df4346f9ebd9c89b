package pricing

import (
	"context"

	"github.com/memberware/renewals/internal/types"
)

// TierMapping is the static product/variation id -> dues tier table. It is
// read-only at runtime; the host operator configures it.
type TierMapping struct {
	Items map[string]types.DuesTier `json:"items"`
}

// Resolve looks the line item up by variation id first, then by product id.
// This is the one canonical lookup order used at every call site. The second
// return is false when neither id is mapped, which means the item stays at
// platform-default pricing.
func (m *TierMapping) Resolve(variationID, productID string) (types.DuesTier, bool) {
	if m == nil || len(m.Items) == 0 {
		return "", false
	}
	if variationID != "" {
		if tier, ok := m.Items[variationID]; ok {
			return tier, true
		}
	}
	if productID != "" {
		if tier, ok := m.Items[productID]; ok {
			return tier, true
		}
	}
	return "", false
}

// Repository serves the tier mapping table.
type Repository interface {
	GetMapping(ctx context.Context) (*TierMapping, error)
}
