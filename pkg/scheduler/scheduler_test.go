package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radarpautas/radar/pkg/config"
)

func TestIsDueInterval(t *testing.T) {
	now := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	cadence := config.Cadence{IntervalSeconds: 300}

	tests := []struct {
		name   string
		lastAt *time.Time
		want   bool
	}{
		{"never fetched", nil, true},
		{"interval elapsed", timePtr(now.Add(-6 * time.Minute)), true},
		{"exactly at interval", timePtr(now.Add(-5 * time.Minute)), true},
		{"inside interval", timePtr(now.Add(-4 * time.Minute)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due, err := isDue(cadence, tt.lastAt, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, due)
		})
	}
}

func TestIsDueCron(t *testing.T) {
	// Daily at 06:00.
	cadence := config.Cadence{Cron: "0 6 * * *"}

	tests := []struct {
		name   string
		now    time.Time
		lastAt *time.Time
		want   bool
	}{
		{
			name: "never fetched, occurrence inside lookback",
			now:  time.Date(2025, 3, 5, 7, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name:   "fetched before today's occurrence",
			now:    time.Date(2025, 3, 5, 7, 0, 0, 0, time.UTC),
			lastAt: timePtr(time.Date(2025, 3, 5, 5, 0, 0, 0, time.UTC)),
			want:   true,
		},
		{
			name:   "fetched after today's occurrence",
			now:    time.Date(2025, 3, 5, 7, 0, 0, 0, time.UTC),
			lastAt: timePtr(time.Date(2025, 3, 5, 6, 30, 0, 0, time.UTC)),
			want:   false,
		},
		{
			name:   "next occurrence still in the future",
			now:    time.Date(2025, 3, 5, 5, 0, 0, 0, time.UTC),
			lastAt: timePtr(time.Date(2025, 3, 4, 6, 30, 0, 0, time.UTC)),
			want:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due, err := isDue(cadence, tt.lastAt, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, due)
		})
	}
}

func TestIsDueInvalidCron(t *testing.T) {
	_, err := isDue(config.Cadence{Cron: "not a cron"}, nil, time.Now())
	assert.Error(t, err)
}

func timePtr(t time.Time) *time.Time { return &t }
