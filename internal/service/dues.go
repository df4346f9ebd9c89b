package service

import (
	"context"

	"github.com/memberware/renewals/internal/domain/dues"
	ierr "github.com/memberware/renewals/internal/errors"
)

// DuesService owns the administrator-facing dues profile lifecycle: the annual
// figure is normalized, the quarterly and biennial tiers are derived from it,
// and all three are persisted together.
type DuesService interface {
	// UpdateAnnualDues normalizes the administrator-entered annual figure,
	// derives the dependent tiers and persists the profile. A non-positive or
	// unparseable figure clears every tier.
	UpdateAnnualDues(ctx context.Context, memberID string, rawAnnual string) (*dues.DuesProfile, error)

	// GetProfile reads the member's profile. Absent or unusable attributes
	// come back as nil fields, never as errors.
	GetProfile(ctx context.Context, memberID string) (*dues.DuesProfile, error)
}

type duesService struct {
	ServiceParams
}

func NewDuesService(params ServiceParams) DuesService {
	return &duesService{
		ServiceParams: params,
	}
}

func (s *duesService) UpdateAnnualDues(ctx context.Context, memberID string, rawAnnual string) (*dues.DuesProfile, error) {
	if memberID == "" {
		return nil, ierr.NewError("member ID is required").
			WithHint("Please provide a valid member ID").
			Mark(ierr.ErrValidation)
	}

	annual := dues.NormalizeAnnual(rawAnnual)
	tiers := dues.DeriveTiers(annual)

	profile := &dues.DuesProfile{
		MemberID:  memberID,
		Annual:    tiers.Annual,
		Quarterly: tiers.Quarterly,
		Biennial:  tiers.Biennial,
	}

	if err := s.DuesRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	if tiers.Annual == nil {
		s.Logger.Infow("cleared dues profile", "member_id", memberID)
	} else {
		s.Logger.Infow("updated dues profile",
			"member_id", memberID,
			"annual", tiers.Annual.String(),
			"quarterly", tiers.Quarterly.String(),
			"biennial", tiers.Biennial.String(),
		)
	}

	return profile, nil
}

func (s *duesService) GetProfile(ctx context.Context, memberID string) (*dues.DuesProfile, error) {
	if memberID == "" {
		return nil, ierr.NewError("member ID is required").
			WithHint("Please provide a valid member ID").
			Mark(ierr.ErrValidation)
	}
	return s.DuesRepo.Get(ctx, memberID)
}
