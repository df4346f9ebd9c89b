package member

import "context"

// AttributeStore is the host platform's member-metadata capability. Values are
// stringly typed on the host side; callers own parsing and leniency.
type AttributeStore interface {
	// GetAttribute returns the stored value and whether the attribute exists.
	GetAttribute(ctx context.Context, memberID, key string) (string, bool, error)

	// SetAttribute stores value under key for the member.
	SetAttribute(ctx context.Context, memberID, key, value string) error

	// ClearAttribute removes the attribute entirely. Clearing an absent
	// attribute is a no-op, not an error.
	ClearAttribute(ctx context.Context, memberID, key string) error
}
