package types

import "context"

type ContextKey string

const (
	CtxRequestID ContextKey = "ctx_request_id"
	CtxMemberID  ContextKey = "ctx_member_id"
)

// GetRequestID returns the request id threaded by the host-integration adapter,
// or "" when the invocation carries none (scheduled tasks).
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(CtxRequestID).(string); ok {
		return id
	}
	return ""
}

// GetMemberID returns the member id the current invocation acts on behalf of.
func GetMemberID(ctx context.Context) string {
	if id, ok := ctx.Value(CtxMemberID).(string); ok {
		return id
	}
	return ""
}
