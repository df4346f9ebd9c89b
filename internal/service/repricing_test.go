package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/memberware/renewals/internal/config"
	"github.com/memberware/renewals/internal/domain/dues"
	"github.com/memberware/renewals/internal/logger"
	"github.com/memberware/renewals/internal/repository/memberattr"
	"github.com/memberware/renewals/internal/testutil"
	"github.com/memberware/renewals/internal/types"
)

type RepricingServiceSuite struct {
	suite.Suite
	ctx         context.Context
	memberStore *testutil.InMemoryMemberStore
	duesRepo    dues.Repository
	repricing   RepricingService
}

func TestRepricingService(t *testing.T) {
	suite.Run(t, new(RepricingServiceSuite))
}

func (s *RepricingServiceSuite) SetupTest() {
	s.ctx = testutil.SetupContext()
	cfg := config.GetDefaultConfig()
	s.memberStore = testutil.NewInMemoryMemberStore()

	log := logger.GetLogger()
	s.duesRepo = memberattr.NewDuesProfileRepository(s.memberStore, cfg.Dues, log)

	mapping := testutil.NewInMemoryMappingStore(map[string]types.DuesTier{
		"prod-annual":    types.DUES_TIER_ANNUAL,
		"prod-quarterly": types.DUES_TIER_QUARTERLY,
		"var-biennial":   types.DUES_TIER_BIENNIAL,
	})

	params := ServiceParams{
		Logger:      log,
		Config:      cfg,
		DuesRepo:    s.duesRepo,
		MappingRepo: mapping,
		SubRepo:     testutil.NewInMemorySubscriptionStore(),
	}
	s.repricing = NewRepricingService(params)
}

// saveProfile stores a fully derived profile for member-1 (annual 1200).
func (s *RepricingServiceSuite) saveProfile() {
	tiers := dues.DeriveTiers(1200)
	err := s.duesRepo.Save(s.ctx, &dues.DuesProfile{
		MemberID:  "member-1",
		Annual:    tiers.Annual,
		Quarterly: tiers.Quarterly,
		Biennial:  tiers.Biennial,
	})
	s.Require().NoError(err)
}

func newOrder(items ...*testutil.FakeLineItem) *testutil.FakeOrder {
	return &testutil.FakeOrder{
		OrderID:   "order-1",
		Member:    "member-1",
		LineItems: items,
	}
}

func (s *RepricingServiceSuite) TestApplyOverridesMappedItems() {
	s.saveProfile()
	ord := newOrder(
		&testutil.FakeLineItem{Product: "prod-annual", Sub: decimal.NewFromInt(999), Tot: decimal.NewFromInt(999)},
		&testutil.FakeLineItem{Product: "prod-quarterly", Sub: decimal.NewFromInt(400), Tot: decimal.NewFromInt(400)},
	)

	changed, err := s.repricing.ApplyToOrder(s.ctx, "member-1", ord)
	s.NoError(err)
	s.True(changed)

	s.Equal("1200", ord.LineItems[0].Sub.String())
	s.Equal("1200", ord.LineItems[0].Tot.String())
	s.Equal("300", ord.LineItems[1].Sub.String())
	s.Equal("300", ord.LineItems[1].Tot.String())
	s.Equal(1, ord.Recalculations)
	s.Equal("1500", ord.GrandTotal.String())
}

func (s *RepricingServiceSuite) TestApplyIsIdempotent() {
	s.saveProfile()
	ord := newOrder(
		&testutil.FakeLineItem{Product: "prod-annual", Sub: decimal.NewFromInt(999), Tot: decimal.NewFromInt(999)},
	)

	changed, err := s.repricing.ApplyToOrder(s.ctx, "member-1", ord)
	s.NoError(err)
	s.True(changed)
	firstTotal := ord.GrandTotal

	changed, err = s.repricing.ApplyToOrder(s.ctx, "member-1", ord)
	s.NoError(err)
	s.False(changed)
	s.Equal(1, ord.Recalculations)
	s.True(ord.GrandTotal.Equal(firstTotal))
}

func (s *RepricingServiceSuite) TestVariationFallsBackToProduct() {
	s.saveProfile()
	// variation id is unmapped; its parent product carries the mapping
	ord := newOrder(
		&testutil.FakeLineItem{Product: "prod-annual", Variation: "var-unmapped", Sub: decimal.NewFromInt(10), Tot: decimal.NewFromInt(10)},
	)

	changed, err := s.repricing.ApplyToOrder(s.ctx, "member-1", ord)
	s.NoError(err)
	s.True(changed)
	s.Equal("1200", ord.LineItems[0].Tot.String())
}

func (s *RepricingServiceSuite) TestVariationMappingWinsOverProduct() {
	s.saveProfile()
	ord := newOrder(
		&testutil.FakeLineItem{Product: "prod-annual", Variation: "var-biennial", Sub: decimal.NewFromInt(10), Tot: decimal.NewFromInt(10)},
	)

	changed, err := s.repricing.ApplyToOrder(s.ctx, "member-1", ord)
	s.NoError(err)
	s.True(changed)
	s.Equal("2220", ord.LineItems[0].Tot.String())
}

func (s *RepricingServiceSuite) TestUnmappedItemUntouched() {
	s.saveProfile()
	ord := newOrder(
		&testutil.FakeLineItem{Product: "prod-other", Sub: decimal.NewFromInt(75), Tot: decimal.NewFromInt(75)},
	)

	changed, err := s.repricing.ApplyToOrder(s.ctx, "member-1", ord)
	s.NoError(err)
	s.False(changed)
	s.Equal("75", ord.LineItems[0].Tot.String())
	s.Equal(0, ord.Recalculations)
}

func (s *RepricingServiceSuite) TestAbsentTierLeavesItemAlone() {
	// only the annual attribute is set; quarterly tier is absent
	_ = s.memberStore.SetAttribute(s.ctx, "member-1", "annual_dues", "1200")

	ord := newOrder(
		&testutil.FakeLineItem{Product: "prod-quarterly", Sub: decimal.NewFromInt(400), Tot: decimal.NewFromInt(400)},
	)

	changed, err := s.repricing.ApplyToOrder(s.ctx, "member-1", ord)
	s.NoError(err)
	s.False(changed)
	s.Equal("400", ord.LineItems[0].Tot.String())
}

func (s *RepricingServiceSuite) TestNoProfileMeansNoOp() {
	ord := newOrder(
		&testutil.FakeLineItem{Product: "prod-annual", Sub: decimal.NewFromInt(999), Tot: decimal.NewFromInt(999)},
	)

	changed, err := s.repricing.ApplyToOrder(s.ctx, "member-1", ord)
	s.NoError(err)
	s.False(changed)
	s.Equal("999", ord.LineItems[0].Tot.String())
}

func (s *RepricingServiceSuite) TestGuestOrderIsNoOp() {
	s.saveProfile()
	ord := newOrder(
		&testutil.FakeLineItem{Product: "prod-annual", Sub: decimal.NewFromInt(999), Tot: decimal.NewFromInt(999)},
	)

	changed, err := s.repricing.ApplyToOrder(s.ctx, "", ord)
	s.NoError(err)
	s.False(changed)
}

func (s *RepricingServiceSuite) TestNilOrderRejected() {
	_, err := s.repricing.ApplyToOrder(s.ctx, "member-1", nil)
	s.Error(err)
}
