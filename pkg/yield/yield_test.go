package yield

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radarpautas/radar/pkg/cache"
	"github.com/radarpautas/radar/pkg/config"
)

// Tuesday 14:00 UTC, inside business hours.
var testNow = time.Date(2025, 3, 4, 14, 0, 0, 0, time.UTC)

func newTestMonitor(t *testing.T) *Monitor {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := cache.New("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	m := NewMonitor(c)
	m.now = func() time.Time { return testNow }
	return m
}

func testProfile(calendarProfile string) *config.SourceProfile {
	return &config.SourceProfile{
		SourceID:      101,
		Domain:        "exemplo.gov.br",
		Observability: config.Observability{CalendarProfile: calendarProfile},
	}
}

// record seeds one outcome at an offset before testNow.
func record(m *Monitor, sourceID int, ago time.Duration, anchors, status int) {
	saved := m.now
	m.now = func() time.Time { return testNow.Add(-ago) }
	m.Record(context.Background(), sourceID, anchors, status)
	m.now = saved
}

func TestCheckStarvationRollingCollapse(t *testing.T) {
	m := newTestMonitor(t)
	p := testProfile("")

	// Healthy baseline: older fetches yielding anchors.
	for i := 0; i < 12; i++ {
		record(m, p.SourceID, 2*time.Hour+time.Duration(i)*time.Minute, 4, 200)
	}
	// Recent window collapses to zero while HTTP keeps returning 200.
	for i := 0; i < 6; i++ {
		record(m, p.SourceID, time.Duration(i+1)*5*time.Minute, 0, 200)
	}

	starved, reason := m.CheckStarvation(context.Background(), p)
	assert.True(t, starved)
	assert.Contains(t, reason, "rolling collapse")
}

func TestCheckStarvationHealthySource(t *testing.T) {
	m := newTestMonitor(t)
	p := testProfile("")

	for i := 0; i < 12; i++ {
		record(m, p.SourceID, 2*time.Hour+time.Duration(i)*time.Minute, 4, 200)
	}
	for i := 0; i < 6; i++ {
		record(m, p.SourceID, time.Duration(i+1)*5*time.Minute, 3, 200)
	}

	starved, _ := m.CheckStarvation(context.Background(), p)
	assert.False(t, starved)
}

func TestCheckStarvationRequiresAll200Window(t *testing.T) {
	t.Run("only failures recorded recently", func(t *testing.T) {
		m := newTestMonitor(t)
		p := testProfile("")

		for i := 0; i < 12; i++ {
			record(m, p.SourceID, 2*time.Hour+time.Duration(i)*time.Minute, 4, 200)
		}
		for i := 0; i < 6; i++ {
			record(m, p.SourceID, time.Duration(i+1)*5*time.Minute, 0, 503)
		}

		starved, _ := m.CheckStarvation(context.Background(), p)
		assert.False(t, starved)
	})

	t.Run("one failure disqualifies a collapsed window", func(t *testing.T) {
		m := newTestMonitor(t)
		p := testProfile("")

		for i := 0; i < 12; i++ {
			record(m, p.SourceID, 2*time.Hour+time.Duration(i)*time.Minute, 4, 200)
		}
		// Six zero-anchor 200s would fire on their own; the lone 503 in the
		// window explains the low yield instead.
		for i := 0; i < 6; i++ {
			record(m, p.SourceID, time.Duration(i+1)*5*time.Minute, 0, 200)
		}
		record(m, p.SourceID, 2*time.Minute, 0, 503)

		starved, _ := m.CheckStarvation(context.Background(), p)
		assert.False(t, starved)
	})
}

func TestCheckStarvationTooFewRecent(t *testing.T) {
	m := newTestMonitor(t)
	p := testProfile("")

	for i := 0; i < 3; i++ {
		record(m, p.SourceID, time.Duration(i+1)*5*time.Minute, 0, 200)
	}

	starved, _ := m.CheckStarvation(context.Background(), p)
	assert.False(t, starved)
}

func TestCheckStarvationColdSourceAllZero(t *testing.T) {
	m := newTestMonitor(t)
	p := testProfile("")

	// No historical baseline yet, but every recent fetch yields nothing.
	for i := 0; i < 6; i++ {
		record(m, p.SourceID, time.Duration(i+1)*5*time.Minute, 0, 200)
	}

	starved, reason := m.CheckStarvation(context.Background(), p)
	assert.True(t, starved)
	assert.Contains(t, reason, "zero anchors")
}

func TestCheckStarvationCalendarCollapse(t *testing.T) {
	m := newTestMonitor(t)
	p := testProfile("business_hours")

	// Same weekday/hour bucket one and two weeks back: strong yield.
	for i := 0; i < 6; i++ {
		record(m, p.SourceID, 7*24*time.Hour-time.Duration(i)*time.Minute, 5, 200)
		record(m, p.SourceID, 14*24*time.Hour-time.Duration(i)*time.Minute, 5, 200)
	}
	// Recent yield is above the rolling-collapse cutoff but far below the
	// calendar bucket's baseline of 5.
	for i := 0; i < 6; i++ {
		anchors := 0
		if i < 2 {
			anchors = 1
		}
		record(m, p.SourceID, time.Duration(i+1)*5*time.Minute, anchors, 200)
	}

	starved, reason := m.CheckStarvation(context.Background(), p)
	assert.True(t, starved)
	assert.Contains(t, reason, "calendar collapse")
}

func TestCheckStarvationSuppressedOutsideBusinessHours(t *testing.T) {
	m := newTestMonitor(t)
	p := testProfile("business_hours")

	for i := 0; i < 12; i++ {
		record(m, p.SourceID, 2*time.Hour+time.Duration(i)*time.Minute, 4, 200)
	}
	for i := 0; i < 6; i++ {
		record(m, p.SourceID, time.Duration(i+1)*5*time.Minute, 0, 200)
	}

	// Saturday: the business-hours profile mutes the signal entirely.
	m.now = func() time.Time { return time.Date(2025, 3, 8, 14, 0, 0, 0, time.UTC) }
	starved, _ := m.CheckStarvation(context.Background(), p)
	assert.False(t, starved)
}

func TestSuppressed(t *testing.T) {
	tests := []struct {
		name    string
		profile string
		at      time.Time
		want    bool
	}{
		{"no profile never suppresses", "", time.Date(2025, 3, 8, 3, 0, 0, 0, time.UTC), false},
		{"regional variant saturday", "business_hours_br", time.Date(2025, 3, 8, 10, 0, 0, 0, time.UTC), true},
		{"weekday working hours", "business_hours", time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC), false},
		{"weekday early morning", "business_hours", time.Date(2025, 3, 4, 6, 0, 0, 0, time.UTC), true},
		{"weekday evening", "business_hours", time.Date(2025, 3, 4, 19, 0, 0, 0, time.UTC), true},
		{"saturday", "business_hours", time.Date(2025, 3, 8, 10, 0, 0, 0, time.UTC), true},
		{"sunday", "business_hours", time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, suppressed(tt.profile, tt.at))
		})
	}
}

func TestCalendarAvg(t *testing.T) {
	now := testNow
	historical := []entry{
		{TS: now.Add(-7 * 24 * time.Hour), Anchors: 6},
		{TS: now.Add(-14 * 24 * time.Hour), Anchors: 4},
		{TS: now.Add(-3 * time.Hour), Anchors: 100}, // different hour, out of bucket
	}
	assert.InDelta(t, 5.0, calendarAvg(historical, now), 0.001)
	assert.Zero(t, calendarAvg(nil, now))
}
