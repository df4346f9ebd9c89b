package testutil

import (
	"context"

	"github.com/memberware/renewals/internal/types"
)

// SetupContext returns a context carrying the ids a host invocation would.
func SetupContext() context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, types.CtxRequestID, "test-request")
	ctx = context.WithValue(ctx, types.CtxMemberID, "member-1")
	return ctx
}
