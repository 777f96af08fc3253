// Package yield watches per-source anchor yield: a source that keeps
// returning HTTP 200 while its anchor output collapses against its rolling or
// calendar baseline has silently broken layout or API, and raises a
// DATA_STARVATION incident.
package yield

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/radarpautas/radar/pkg/cache"
	"github.com/radarpautas/radar/pkg/config"
	"github.com/radarpautas/radar/pkg/metrics"
)

const (
	ringMaxLen = 500
	ringTTL    = 72 * time.Hour

	// recentWindow is the "last fetches" window compared against baseline.
	recentWindow = 60 * time.Minute

	minRecentEntries     = 5
	minHistoricalEntries = 10
)

// entry is one fetch outcome in the per-source ring.
type entry struct {
	TS      time.Time `json:"ts"`
	Anchors int       `json:"anchors"`
	Status  int       `json:"status"`
}

// Monitor keeps the yield rings and evaluates starvation.
type Monitor struct {
	cache *cache.Cache
	now   func() time.Time
}

// NewMonitor creates a yield monitor over the shared cache.
func NewMonitor(c *cache.Cache) *Monitor {
	return &Monitor{cache: c, now: time.Now}
}

func ringKey(sourceID int) string {
	return fmt.Sprintf("radar:yield:source:%d", sourceID)
}

// Record appends one fetch outcome to the source's ring.
func (m *Monitor) Record(ctx context.Context, sourceID, anchorsCount, statusCode int) {
	raw, err := json.Marshal(entry{TS: m.now().UTC(), Anchors: anchorsCount, Status: statusCode})
	if err != nil {
		return
	}
	m.cache.PushRing(ctx, ringKey(sourceID), string(raw), ringMaxLen, ringTTL)
}

// CheckStarvation evaluates the source's ring against its baselines and, on a
// positive detection, opens a DATA_STARVATION incident. reason is empty when
// the source looks healthy.
func (m *Monitor) CheckStarvation(ctx context.Context, p *config.SourceProfile) (starved bool, reason string) {
	entries := m.load(ctx, p.SourceID)
	now := m.now().UTC()

	if suppressed(p.Observability.CalendarProfile, now) {
		return false, ""
	}

	var recent, historical []entry
	for _, e := range entries {
		if now.Sub(e.TS) <= recentWindow {
			recent = append(recent, e)
		} else if e.Status == 200 {
			historical = append(historical, e)
		}
	}

	if len(recent) < minRecentEntries {
		return false, ""
	}
	// A failed fetch in the window already explains a low yield; starvation
	// is only meaningful over an all-200 window.
	for _, e := range recent {
		if e.Status != 200 {
			return false, ""
		}
	}

	recentAvg := avgAnchors(recent)

	if len(historical) < minHistoricalEntries {
		if recentAvg == 0 {
			return m.incident(p, "all recent fetches returned zero anchors")
		}
		return false, ""
	}

	histAvg := avgAnchors(historical)
	if recentAvg <= 0.1 && histAvg >= 1.0 {
		return m.incident(p, fmt.Sprintf("rolling collapse: recent %.2f vs baseline %.2f", recentAvg, histAvg))
	}

	if p.Observability.CalendarProfile != "" {
		calAvg := calendarAvg(historical, now)
		if calAvg >= 1.0 && recentAvg <= max(0.1, calAvg*0.1) {
			return m.incident(p, fmt.Sprintf("calendar collapse: recent %.2f vs bucket %.2f", recentAvg, calAvg))
		}
	}

	return false, ""
}

func (m *Monitor) incident(p *config.SourceProfile, why string) (bool, string) {
	metrics.StarvationIncidents.WithLabelValues(p.Domain).Inc()
	slog.Error("DATA_STARVATION: possible layout or API breakage",
		"incident_code", "DATA_STARVATION",
		"source_id", p.SourceID,
		"source_domain", p.Domain,
		"reason", why)
	return true, why
}

func (m *Monitor) load(ctx context.Context, sourceID int) []entry {
	raw := m.cache.Ring(ctx, ringKey(sourceID))
	out := make([]entry, 0, len(raw))
	for _, item := range raw {
		var e entry
		if err := json.Unmarshal([]byte(item), &e); err == nil {
			out = append(out, e)
		}
	}
	return out
}

func avgAnchors(entries []entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	total := 0
	for _, e := range entries {
		total += e.Anchors
	}
	return float64(total) / float64(len(entries))
}

// calendarAvg averages historical yield in the same hour/weekday bucket.
func calendarAvg(historical []entry, now time.Time) float64 {
	var bucket []entry
	for _, e := range historical {
		if e.TS.Weekday() == now.Weekday() && e.TS.Hour() == now.Hour() {
			bucket = append(bucket, e)
		}
	}
	return avgAnchors(bucket)
}

// suppressed hides starvation signals outside working hours for
// business-hours profiles ("business_hours", "business_hours_br", ...).
func suppressed(profile string, now time.Time) bool {
	if !strings.HasPrefix(profile, "business_hours") {
		return false
	}
	if now.Weekday() == time.Saturday || now.Weekday() == time.Sunday {
		return true
	}
	return now.Hour() < 8 || now.Hour() >= 19
}
