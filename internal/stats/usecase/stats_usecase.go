package usecase

import (
	"context"
	"fmt"
	"time"

	statsdto "mailpilot-backend/internal/stats/dto"
	"mailpilot-backend/internal/stats/repository"
	tenantdomain "mailpilot-backend/internal/tenant/domain"
	"mailpilot-backend/pkg/gmail"
)

// StatsUsecase provides read-side rollups over persisted statistics plus
// live mailbox counters from Gmail.
type StatsUsecase interface {
	TotalProcessed(tenantEmail, ruleRemoteID string) (int64, error)
	// DailyProcessed sums the rolling 24h window ending now
	DailyProcessed(tenantEmail, ruleRemoteID string) (int64, error)
	// WeeklyProcessed sums since Monday 00:00 UTC of the current week
	WeeklyProcessed(tenantEmail, ruleRemoteID string) (int64, error)
	// MonthlyProcessed sums since the first of the current month, 00:00 UTC
	MonthlyProcessed(tenantEmail, ruleRemoteID string) (int64, error)
	MessageCounts(ctx context.Context, tenant *tenantdomain.Tenant) (*statsdto.MessageCountsResponse, error)
}

// statsUsecase implements StatsUsecase interface
type statsUsecase struct {
	statRepo    repository.StatisticRepository
	gmailClient gmail.Client
	now         func() time.Time
}

// NewStatsUsecase creates a new instance of statsUsecase
func NewStatsUsecase(statRepo repository.StatisticRepository, gmailClient gmail.Client) StatsUsecase {
	return &statsUsecase{
		statRepo:    statRepo,
		gmailClient: gmailClient,
		now:         time.Now,
	}
}

func (u *statsUsecase) TotalProcessed(tenantEmail, ruleRemoteID string) (int64, error) {
	return u.statRepo.SumProcessed(tenantEmail, ruleRemoteID, nil, nil)
}

func (u *statsUsecase) DailyProcessed(tenantEmail, ruleRemoteID string) (int64, error) {
	now := u.now().UTC()
	start := now.Add(-24 * time.Hour).Unix()
	end := now.Unix()
	return u.statRepo.SumProcessed(tenantEmail, ruleRemoteID, &start, &end)
}

func (u *statsUsecase) WeeklyProcessed(tenantEmail, ruleRemoteID string) (int64, error) {
	start := startOfWeekUTC(u.now()).Unix()
	return u.statRepo.SumProcessed(tenantEmail, ruleRemoteID, &start, nil)
}

func (u *statsUsecase) MonthlyProcessed(tenantEmail, ruleRemoteID string) (int64, error) {
	start := startOfMonthUTC(u.now()).Unix()
	return u.statRepo.SumProcessed(tenantEmail, ruleRemoteID, &start, nil)
}

func (u *statsUsecase) MessageCounts(ctx context.Context, tenant *tenantdomain.Tenant) (*statsdto.MessageCountsResponse, error) {
	counts, err := u.gmailClient.MessageCounts(ctx, tenant.Credentials())
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve message counts: %w", err)
	}

	read := counts.Total - counts.Unread
	if read < 0 {
		read = 0
	}
	return &statsdto.MessageCountsResponse{
		Total:  counts.Total,
		Read:   read,
		Unread: counts.Unread,
	}, nil
}

// startOfWeekUTC returns Monday 00:00 UTC of now's ISO week.
func startOfWeekUTC(now time.Time) time.Time {
	now = now.UTC()
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	day := now.AddDate(0, 0, -(weekday - 1))
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}

// startOfMonthUTC returns the 1st of now's month, 00:00 UTC.
func startOfMonthUTC(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}
