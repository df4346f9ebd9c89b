package dues

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveTiers(t *testing.T) {
	tests := []struct {
		name      string
		annual    int64
		expAnnual string
		expQuart  string
		expBienn  string
	}{
		{
			name:      "spec example 1200",
			annual:    1200,
			expAnnual: "1200",
			expQuart:  "300", // floor(300/10)*10
			expBienn:  "2220", // floor(2220/10)*10
		},
		{
			name:      "spec example 515 floors to 510 first",
			annual:    515,
			expAnnual: "510",
			expQuart:  "120", // floor(floor(510/4)=127 /10)*10
			expBienn:  "940", // floor(943.5/10)*10
		},
		{
			name:      "quarterly truncates before rounding to ten",
			annual:    450,
			expAnnual: "450",
			expQuart:  "110", // floor(450/4)=112, floor(112/10)*10
			expBienn:  "830", // 450*1.85 = 832.5
		},
		{
			name:      "small annual",
			annual:    30,
			expAnnual: "30",
			expQuart:  "0", // floor(7/10)*10
			expBienn:  "50", // 55.5 -> 50
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiers := DeriveTiers(tt.annual)
			require.NotNil(t, tiers.Annual)
			require.NotNil(t, tiers.Quarterly)
			require.NotNil(t, tiers.Biennial)
			assert.Equal(t, tt.expAnnual, tiers.Annual.String())
			assert.Equal(t, tt.expQuart, tiers.Quarterly.String())
			assert.Equal(t, tt.expBienn, tiers.Biennial.String())
		})
	}
}

func TestDeriveTiers_NonPositiveClearsEverything(t *testing.T) {
	for _, annual := range []int64{0, -1, -500} {
		tiers := DeriveTiers(annual)
		assert.Nil(t, tiers.Annual, "annual=%d", annual)
		assert.Nil(t, tiers.Quarterly, "annual=%d", annual)
		assert.Nil(t, tiers.Biennial, "annual=%d", annual)
	}
}

func TestDeriveTiers_Invariants(t *testing.T) {
	for annual := int64(1); annual < 5000; annual += 7 {
		tiers := DeriveTiers(annual)
		require.NotNil(t, tiers.Annual, "annual=%d", annual)

		// every figure is a multiple of 10
		assert.True(t, tiers.Annual.Mod(ten).IsZero(), "annual=%d", annual)
		assert.True(t, tiers.Quarterly.Mod(ten).IsZero(), "annual=%d", annual)
		assert.True(t, tiers.Biennial.Mod(ten).IsZero(), "annual=%d", annual)

		// idempotent: deriving from the stored annual changes nothing
		again := DeriveTiers(tiers.Annual.IntPart())
		assert.True(t, tiers.Annual.Equal(*again.Annual), "annual=%d", annual)
		assert.True(t, tiers.Quarterly.Equal(*again.Quarterly), "annual=%d", annual)
		assert.True(t, tiers.Biennial.Equal(*again.Biennial), "annual=%d", annual)
	}
}

func TestNormalizeAnnual(t *testing.T) {
	tests := []struct {
		raw      string
		expected int64
	}{
		{raw: "1200", expected: 1200},
		{raw: "1,200", expected: 1200},
		{raw: "1 200", expected: 1200},
		{raw: "515", expected: 510},
		{raw: "515.75", expected: 510},
		{raw: "9", expected: 0},
		{raw: "0", expected: 0},
		{raw: "-500", expected: 0},
		{raw: "abc", expected: 0},
		{raw: "", expected: 0},
		{raw: "  1,234  ", expected: 1230},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeAnnual(tt.raw), "raw=%q", tt.raw)
	}
}
