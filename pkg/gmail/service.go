package gmail

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// Service implements Client against the real Gmail API. One instance is
// shared by all tenants; per-tenant tokens are supplied on each call.
type Service struct {
	oauthConfig *oauth2.Config
}

func NewService(clientID, clientSecret, redirectURI string) *Service {
	return &Service{
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Endpoint:     google.Endpoint,
			Scopes: []string{
				gmailapi.GmailModifyScope,
				gmailapi.GmailSettingsBasicScope,
			},
		},
	}
}

// AuthCodeURL returns the Google consent page URL for onboarding a tenant.
func (s *Service) AuthCodeURL(state string) string {
	return s.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// Exchange trades an authorization code for tokens.
func (s *Service) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("unable to exchange authorization code: %w", err)
	}
	return token, nil
}

// gmailService creates a Gmail API client with the tenant's tokens.
func (s *Service) gmailService(ctx context.Context, creds Credentials) (*gmailapi.Service, error) {
	token := &oauth2.Token{
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
		TokenType:    "Bearer",
	}
	client := oauth2.NewClient(ctx, s.oauthConfig.TokenSource(ctx, token))

	srv, err := gmailapi.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create Gmail service: %v", err)
	}
	return srv, nil
}

const user = "me"

func (s *Service) ListLabels(ctx context.Context, creds Credentials) ([]Label, error) {
	srv, err := s.gmailService(ctx, creds)
	if err != nil {
		return nil, err
	}

	resp, err := srv.Users.Labels.List(user).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve labels: %v", err)
	}

	labels := make([]Label, 0, len(resp.Labels))
	for _, l := range resp.Labels {
		labels = append(labels, fromAPILabel(l))
	}
	return labels, nil
}

func (s *Service) CreateLabel(ctx context.Context, creds Credentials, name, textColor, backgroundColor string) (*Label, error) {
	srv, err := s.gmailService(ctx, creds)
	if err != nil {
		return nil, err
	}

	body := &gmailapi.Label{
		Name:                  name,
		LabelListVisibility:   "labelShow",
		MessageListVisibility: "show",
	}
	if textColor != "" || backgroundColor != "" {
		body.Color = &gmailapi.LabelColor{
			TextColor:       textColor,
			BackgroundColor: backgroundColor,
		}
	}

	created, err := srv.Users.Labels.Create(user, body).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to create label: %v", err)
	}
	label := fromAPILabel(created)
	return &label, nil
}

func (s *Service) DeleteLabel(ctx context.Context, creds Credentials, labelID string) error {
	srv, err := s.gmailService(ctx, creds)
	if err != nil {
		return err
	}

	if err := srv.Users.Labels.Delete(user, labelID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to delete label %s: %v", labelID, err)
	}
	return nil
}

func (s *Service) ListFilters(ctx context.Context, creds Credentials) ([]Filter, error) {
	srv, err := s.gmailService(ctx, creds)
	if err != nil {
		return nil, err
	}

	resp, err := srv.Users.Settings.Filters.List(user).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve filters: %v", err)
	}

	filters := make([]Filter, 0, len(resp.Filter))
	for _, f := range resp.Filter {
		filters = append(filters, fromAPIFilter(f))
	}
	return filters, nil
}

func (s *Service) CreateFilter(ctx context.Context, creds Credentials, filter Filter) (*Filter, error) {
	srv, err := s.gmailService(ctx, creds)
	if err != nil {
		return nil, err
	}

	body := &gmailapi.Filter{
		Criteria: &gmailapi.FilterCriteria{Query: filter.Criteria},
		Action: &gmailapi.FilterAction{
			AddLabelIds:    filter.AddLabelIDs,
			RemoveLabelIds: filter.RemoveLabelIDs,
			Forward:        filter.Forward,
		},
	}

	created, err := srv.Users.Settings.Filters.Create(user, body).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to create filter: %v", err)
	}
	result := fromAPIFilter(created)
	return &result, nil
}

func (s *Service) DeleteFilter(ctx context.Context, creds Credentials, filterID string) error {
	srv, err := s.gmailService(ctx, creds)
	if err != nil {
		return err
	}

	if err := srv.Users.Settings.Filters.Delete(user, filterID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to delete filter %s: %v", filterID, err)
	}
	return nil
}

func (s *Service) GetProfile(ctx context.Context, creds Credentials) (*Profile, error) {
	srv, err := s.gmailService(ctx, creds)
	if err != nil {
		return nil, err
	}

	profile, err := srv.Users.GetProfile(user).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve profile: %v", err)
	}
	return &Profile{
		EmailAddress: profile.EmailAddress,
		HistoryID:    profile.HistoryId,
	}, nil
}

// ListHistory pulls every history page since sinceCursor. The returned cursor
// is the maximum history id seen across the response envelope and individual
// records, so it never moves backwards.
func (s *Service) ListHistory(ctx context.Context, creds Credentials, sinceCursor string, kinds []HistoryEventKind) (string, []HistoryEvent, error) {
	srv, err := s.gmailService(ctx, creds)
	if err != nil {
		return "", nil, err
	}

	startHistoryID, err := strconv.ParseUint(sinceCursor, 10, 64)
	if err != nil {
		return "", nil, fmt.Errorf("invalid history cursor %q: %v", sinceCursor, err)
	}

	wantAdded, wantRemoved := false, false
	historyTypes := make([]string, 0, len(kinds))
	for _, k := range kinds {
		historyTypes = append(historyTypes, string(k))
		switch k {
		case LabelAdded:
			wantAdded = true
		case LabelRemoved:
			wantRemoved = true
		}
	}

	latest := startHistoryID
	var events []HistoryEvent

	call := srv.Users.History.List(user).
		StartHistoryId(startHistoryID).
		HistoryTypes(historyTypes...).
		MaxResults(100)

	err = call.Pages(ctx, func(page *gmailapi.ListHistoryResponse) error {
		if page.HistoryId > latest {
			latest = page.HistoryId
		}
		for _, h := range page.History {
			if h.Id > latest {
				latest = h.Id
			}
			if wantAdded {
				for _, added := range h.LabelsAdded {
					if added.Message == nil || added.Message.Id == "" {
						continue
					}
					events = append(events, HistoryEvent{
						MessageID: added.Message.Id,
						LabelIDs:  added.LabelIds,
						Kind:      LabelAdded,
					})
				}
			}
			if wantRemoved {
				for _, removed := range h.LabelsRemoved {
					if removed.Message == nil || removed.Message.Id == "" {
						continue
					}
					events = append(events, HistoryEvent{
						MessageID: removed.Message.Id,
						LabelIDs:  removed.LabelIds,
						Kind:      LabelRemoved,
					})
				}
			}
		}
		return nil
	})
	if err != nil {
		return "", nil, fmt.Errorf("unable to retrieve history: %v", err)
	}

	return strconv.FormatUint(latest, 10), events, nil
}

func (s *Service) MessageCounts(ctx context.Context, creds Credentials) (*MessageCounts, error) {
	srv, err := s.gmailService(ctx, creds)
	if err != nil {
		return nil, err
	}

	profile, err := srv.Users.GetProfile(user).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve profile: %v", err)
	}

	unreadLabel, err := srv.Users.Labels.Get(user, "UNREAD").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve unread counter: %v", err)
	}

	return &MessageCounts{
		Total:  profile.MessagesTotal,
		Unread: unreadLabel.MessagesUnread,
	}, nil
}

func fromAPILabel(l *gmailapi.Label) Label {
	label := Label{ID: l.Id, Name: l.Name}
	if l.Color != nil {
		label.TextColor = l.Color.TextColor
		label.BackgroundColor = l.Color.BackgroundColor
	}
	return label
}

func fromAPIFilter(f *gmailapi.Filter) Filter {
	filter := Filter{ID: f.Id}
	if f.Criteria != nil {
		filter.Criteria = f.Criteria.Query
	}
	if f.Action != nil {
		filter.AddLabelIDs = f.Action.AddLabelIds
		filter.RemoveLabelIDs = f.Action.RemoveLabelIds
		filter.Forward = f.Action.Forward
	}
	return filter
}
