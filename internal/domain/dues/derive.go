package dues

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	four           = decimal.NewFromInt(4)
	ten            = decimal.NewFromInt(10)
	biennialFactor = decimal.RequireFromString("1.85")
)

// Tiers holds one derivation result. Nil fields are absent: an annual figure of
// zero or less clears every tier rather than deriving from it.
type Tiers struct {
	Annual    *decimal.Decimal
	Quarterly *decimal.Decimal
	Biennial  *decimal.Decimal
}

// NormalizeAnnual turns administrator input into the stored annual figure:
// grouping separators are stripped, the value is coerced to an integer, and the
// result is rounded down to the nearest multiple of 10. Unparseable or negative
// input normalizes to 0, which clears all tiers downstream.
func NormalizeAnnual(raw string) int64 {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ',', '_', ' ', '\'':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	parsed, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}

	annual := parsed.IntPart()
	if annual <= 0 {
		return 0
	}
	return annual - annual%10
}

// DeriveTiers computes the quarterly and biennial dues from an annual figure:
//
//	quarterly = floor(floor(annual/4) / 10) * 10
//	biennial  = floor(annual * 1.85 / 10) * 10
//
// The quarterly rule floors twice on purpose; truncating annual/4 before the
// round-to-ten step differs from a single combined floor when annual/4 is not
// already a multiple of 10. The annual figure itself is floored to the nearest
// 10 first, making the derivation idempotent on its own output.
func DeriveTiers(annual int64) Tiers {
	if annual <= 0 {
		return Tiers{}
	}
	annual = annual - annual%10

	annualDec := decimal.NewFromInt(annual)
	quarterly := floorTen(annualDec.Div(four).Floor())
	biennial := floorTen(annualDec.Mul(biennialFactor))

	return Tiers{
		Annual:    &annualDec,
		Quarterly: &quarterly,
		Biennial:  &biennial,
	}
}

// floorTen rounds down to the nearest multiple of 10.
func floorTen(d decimal.Decimal) decimal.Decimal {
	return d.Div(ten).Floor().Mul(ten)
}
