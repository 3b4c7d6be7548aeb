package gmail

import "context"

// Client is the narrow Gmail surface consumed by the usecases and the
// reconciliation engine. Every call may fail; callers never retry here.
type Client interface {
	ListLabels(ctx context.Context, creds Credentials) ([]Label, error)
	CreateLabel(ctx context.Context, creds Credentials, name, textColor, backgroundColor string) (*Label, error)
	DeleteLabel(ctx context.Context, creds Credentials, labelID string) error

	ListFilters(ctx context.Context, creds Credentials) ([]Filter, error)
	CreateFilter(ctx context.Context, creds Credentials, filter Filter) (*Filter, error)
	DeleteFilter(ctx context.Context, creds Credentials, filterID string) error

	GetProfile(ctx context.Context, creds Credentials) (*Profile, error)
	// ListHistory fetches all history pages since the given cursor and returns
	// the new cursor (max history id observed, never below the input) plus the
	// label-change events of the requested kinds.
	ListHistory(ctx context.Context, creds Credentials, sinceCursor string, kinds []HistoryEventKind) (string, []HistoryEvent, error)
	MessageCounts(ctx context.Context, creds Credentials) (*MessageCounts, error)
}
