package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeUntilNextRun(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		hour int
		want time.Duration
	}{
		{
			name: "before the trigger hour",
			now:  time.Date(2026, 8, 29, 1, 30, 0, 0, time.UTC),
			hour: 4,
			want: 2*time.Hour + 30*time.Minute,
		},
		{
			name: "exactly at the trigger hour waits a full day",
			now:  time.Date(2026, 8, 29, 4, 0, 0, 0, time.UTC),
			hour: 4,
			want: 24 * time.Hour,
		},
		{
			name: "after the trigger hour rolls to tomorrow",
			now:  time.Date(2026, 8, 29, 23, 0, 0, 0, time.UTC),
			hour: 4,
			want: 5 * time.Hour,
		},
		{
			name: "midnight trigger",
			now:  time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
			hour: 0,
			want: 12 * time.Hour,
		},
		{
			name: "month boundary",
			now:  time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC),
			hour: 0,
			want: time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timeUntilNextRun(tt.now, tt.hour))
		})
	}
}

func TestSchedulerStopUnblocksWait(t *testing.T) {
	s := NewScheduler(NewEngine(nil, nil, nil, nil), 4)
	s.Start()

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return promptly")
	}
}
