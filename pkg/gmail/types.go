package gmail

// Credentials carries one tenant's OAuth tokens for a single API call.
type Credentials struct {
	AccessToken  string
	RefreshToken string
}

// Label is a Gmail label as the rest of the app sees it.
type Label struct {
	ID              string
	Name            string
	TextColor       string
	BackgroundColor string
}

// Filter is a Gmail filter (criteria + actions).
type Filter struct {
	ID             string
	Criteria       string // Gmail search query, e.g. "from:billing@example.com"
	AddLabelIDs    []string
	RemoveLabelIDs []string
	Forward        string
}

// Profile is the subset of the Gmail profile the engine needs.
type Profile struct {
	EmailAddress string
	HistoryID    uint64
}

// HistoryEventKind selects which history record types are materialized.
type HistoryEventKind string

const (
	LabelAdded   HistoryEventKind = "labelAdded"
	LabelRemoved HistoryEventKind = "labelRemoved"
)

// HistoryEvent is one label change observed in the history feed.
type HistoryEvent struct {
	MessageID string
	LabelIDs  []string
	Kind      HistoryEventKind
}

// MessageCounts holds mailbox-wide message counters.
type MessageCounts struct {
	Total  int64
	Unread int64
}
