package service

import (
	"github.com/memberware/renewals/internal/config"
	"github.com/memberware/renewals/internal/domain/dues"
	"github.com/memberware/renewals/internal/domain/order"
	"github.com/memberware/renewals/internal/domain/pricing"
	"github.com/memberware/renewals/internal/logger"
)

// ServiceParams bundles every dependency a service can need. The host
// integration adapter builds it once at startup and hands it to each
// constructor; there is no implicit registration or global lookup.
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	DuesRepo    dues.Repository
	MappingRepo pricing.Repository
	SubRepo     order.SubscriptionRepository
}
