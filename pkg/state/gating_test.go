package state

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radarpautas/radar/ent"
	entevent "github.com/radarpautas/radar/ent/event"
)

func TestCheckActionAllowed(t *testing.T) {
	now := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	sloFast := 30 * time.Minute
	canonical := 7

	tests := []struct {
		name      string
		event     *ent.Event
		wantCode  string // empty means allowed
	}{
		{
			name:     "tombstone blocks regardless of status",
			event:    &ent.Event{ID: 1, Status: entevent.StatusHot, CanonicalEventID: &canonical},
			wantCode: BlockMergedTombstone,
		},
		{
			name:     "merged status blocks even without tombstone pointer",
			event:    &ent.Event{ID: 2, Status: entevent.StatusMerged},
			wantCode: BlockMergedTombstone,
		},
		{
			name:     "ignored blocks",
			event:    &ent.Event{ID: 3, Status: entevent.StatusIgnored},
			wantCode: BlockIgnored,
		},
		{
			name:     "expired blocks",
			event:    &ent.Event{ID: 4, Status: entevent.StatusExpired},
			wantCode: BlockExpired,
		},
		{
			name:     "hydrating inside fast-path SLO blocks",
			event:    &ent.Event{ID: 5, Status: entevent.StatusHydrating, FirstSeenAt: now.Add(-10 * time.Minute)},
			wantCode: BlockHydrating,
		},
		{
			name:  "hydrating past fast-path SLO is allowed",
			event: &ent.Event{ID: 6, Status: entevent.StatusHydrating, FirstSeenAt: now.Add(-31 * time.Minute)},
		},
		{
			name:  "hydrating exactly at SLO boundary is allowed",
			event: &ent.Event{ID: 7, Status: entevent.StatusHydrating, FirstSeenAt: now.Add(-sloFast)},
		},
		{
			name:  "hot is allowed",
			event: &ent.Event{ID: 8, Status: entevent.StatusHot},
		},
		{
			name:  "partial enrich is allowed",
			event: &ent.Event{ID: 9, Status: entevent.StatusPartialEnrich},
		},
		{
			name:  "quarantine is allowed",
			event: &ent.Event{ID: 10, Status: entevent.StatusQuarantine},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckActionAllowed(tt.event, sloFast, now)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			var blocked *BlockedError
			require.ErrorAs(t, err, &blocked)
			assert.Equal(t, tt.wantCode, blocked.Code)
			assert.Equal(t, tt.event.ID, blocked.EventID)
		})
	}
}

func TestBlockedErrorMessage(t *testing.T) {
	err := &BlockedError{Code: BlockIgnored, EventID: 42}
	assert.Equal(t, "action blocked on event 42: ACTION_BLOCKED_IGNORED", err.Error())

	var blocked *BlockedError
	assert.True(t, errors.As(error(err), &blocked))
}

func TestIsTerminal(t *testing.T) {
	terminal := []entevent.Status{entevent.StatusMerged, entevent.StatusIgnored, entevent.StatusExpired}
	for _, s := range terminal {
		assert.True(t, IsTerminal(s), "%s should be terminal", s)
	}

	open := []entevent.Status{
		entevent.StatusNew,
		entevent.StatusHydrating,
		entevent.StatusPartialEnrich,
		entevent.StatusFailedEnrich,
		entevent.StatusHot,
		entevent.StatusQuarantine,
	}
	for _, s := range open {
		assert.False(t, IsTerminal(s), "%s should not be terminal", s)
	}
}
