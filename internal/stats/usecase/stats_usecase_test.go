package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	statsdomain "mailpilot-backend/internal/stats/domain"
	"mailpilot-backend/internal/stats/repository"
	tenantdomain "mailpilot-backend/internal/tenant/domain"
	"mailpilot-backend/pkg/gmail"
)

type fakeCountsClient struct {
	counts *gmail.MessageCounts
	err    error
}

func (f *fakeCountsClient) ListLabels(ctx context.Context, creds gmail.Credentials) ([]gmail.Label, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCountsClient) CreateLabel(ctx context.Context, creds gmail.Credentials, name, textColor, backgroundColor string) (*gmail.Label, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCountsClient) DeleteLabel(ctx context.Context, creds gmail.Credentials, labelID string) error {
	return errors.New("not implemented")
}

func (f *fakeCountsClient) ListFilters(ctx context.Context, creds gmail.Credentials) ([]gmail.Filter, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCountsClient) CreateFilter(ctx context.Context, creds gmail.Credentials, filter gmail.Filter) (*gmail.Filter, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCountsClient) DeleteFilter(ctx context.Context, creds gmail.Credentials, filterID string) error {
	return errors.New("not implemented")
}

func (f *fakeCountsClient) GetProfile(ctx context.Context, creds gmail.Credentials) (*gmail.Profile, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCountsClient) ListHistory(ctx context.Context, creds gmail.Credentials, sinceCursor string, kinds []gmail.HistoryEventKind) (string, []gmail.HistoryEvent, error) {
	return "", nil, errors.New("not implemented")
}

func (f *fakeCountsClient) MessageCounts(ctx context.Context, creds gmail.Credentials) (*gmail.MessageCounts, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.counts, nil
}

func newStatsFixture(t *testing.T, now time.Time) (*statsUsecase, repository.StatisticRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&tenantdomain.Tenant{}, &statsdomain.StatisticRecord{}))
	require.NoError(t, db.Create(&tenantdomain.Tenant{ID: "id-1", Email: "t1@example.com"}).Error)

	repo := repository.NewStatisticRepository(db)
	uc := &statsUsecase{
		statRepo:    repo,
		gmailClient: &fakeCountsClient{},
		now:         func() time.Time { return now },
	}
	return uc, repo, db
}

func record(t *testing.T, repo repository.StatisticRepository, ts time.Time, processed int) {
	t.Helper()
	require.NoError(t, repo.RecordRun("t1@example.com", []statsdomain.StatisticRecord{
		{RuleRemoteID: "R1", RuleName: "Billing", Timestamp: ts.Unix(), Processed: processed},
	}, "1"))
}

func TestProcessedWindows(t *testing.T) {
	// Saturday 2026-08-29 12:00 UTC; the week started Monday 2026-08-24
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	uc, repo, _ := newStatsFixture(t, now)

	record(t, repo, now.Add(-time.Hour), 1)                          // today
	record(t, repo, now.Add(-30*time.Hour), 2)                       // this week, outside 24h
	record(t, repo, time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC), 4) // this month, before Monday
	record(t, repo, time.Date(2026, 7, 31, 8, 0, 0, 0, time.UTC), 8) // last month
	record(t, repo, time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC), 16) // this year only

	total, err := uc.TotalProcessed("t1@example.com", "R1")
	require.NoError(t, err)
	assert.EqualValues(t, 31, total)

	daily, err := uc.DailyProcessed("t1@example.com", "R1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, daily)

	weekly, err := uc.WeeklyProcessed("t1@example.com", "R1")
	require.NoError(t, err)
	assert.EqualValues(t, 3, weekly)

	// Month-to-date: the July and January rows stay out
	monthly, err := uc.MonthlyProcessed("t1@example.com", "R1")
	require.NoError(t, err)
	assert.EqualValues(t, 7, monthly)
}

func TestProcessedWindowsDefaultToZero(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	uc, _, _ := newStatsFixture(t, now)

	for _, fn := range []func(string, string) (int64, error){
		uc.TotalProcessed, uc.DailyProcessed, uc.WeeklyProcessed, uc.MonthlyProcessed,
	} {
		got, err := fn("t1@example.com", "R1")
		require.NoError(t, err)
		assert.Zero(t, got)
	}
}

func TestStartOfWeekUTC(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "saturday",
			now:  time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
			want: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "monday maps to itself",
			now:  time.Date(2026, 8, 24, 0, 30, 0, 0, time.UTC),
			want: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday belongs to the preceding monday",
			now:  time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC),
			want: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, startOfWeekUTC(tt.now))
		})
	}
}

func TestStartOfMonthUTC(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), startOfMonthUTC(now))
}

func TestMessageCounts(t *testing.T) {
	uc := &statsUsecase{
		gmailClient: &fakeCountsClient{counts: &gmail.MessageCounts{Total: 120, Unread: 20}},
		now:         time.Now,
	}

	counts, err := uc.MessageCounts(context.Background(), &tenantdomain.Tenant{Email: "t1@example.com"})
	require.NoError(t, err)
	assert.EqualValues(t, 120, counts.Total)
	assert.EqualValues(t, 100, counts.Read)
	assert.EqualValues(t, 20, counts.Unread)
}

func TestMessageCountsReadFlooredAtZero(t *testing.T) {
	uc := &statsUsecase{
		gmailClient: &fakeCountsClient{counts: &gmail.MessageCounts{Total: 5, Unread: 9}},
		now:         time.Now,
	}

	counts, err := uc.MessageCounts(context.Background(), &tenantdomain.Tenant{Email: "t1@example.com"})
	require.NoError(t, err)
	assert.Zero(t, counts.Read)
}
