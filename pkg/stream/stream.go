// Package stream is the push channel: a single poller tails the event,
// state-history and merge-audit tables on composite cursors and fans the rows
// out to connected SSE clients. Clients get at-least-once delivery from
// connect time; a reconnect re-reads nothing older than its own connect
// cursor.
package stream

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/radarpautas/radar/ent"
	entevent "github.com/radarpautas/radar/ent/event"
	"github.com/radarpautas/radar/ent/eventstate"
	"github.com/radarpautas/radar/ent/mergeaudit"
	"github.com/radarpautas/radar/pkg/database"
	"github.com/radarpautas/radar/pkg/metrics"
)

// Named SSE event types.
const (
	TypeEventUpsert       = "EVENT_UPSERT"
	TypeEventStateChanged = "EVENT_STATE_CHANGED"
	TypeEventMerged       = "EVENT_MERGED"
	TypePing              = "ping"
)

const (
	pollInterval = time.Second
	batchSize    = 100
	clientBuffer = 64
)

// Frame is one named SSE message.
type Frame struct {
	Type string
	Data interface{}
}

// cursor is a (timestamp, id) position in an append-ordered table.
type cursor struct {
	ts time.Time
	id int
}

func (c cursor) before(ts time.Time, id int) bool {
	if c.ts.Equal(ts) {
		return c.id < id
	}
	return c.ts.Before(ts)
}

// Broadcaster tails the database and fans frames out to subscribers.
type Broadcaster struct {
	db *database.Client

	mu   sync.Mutex
	subs map[chan Frame]struct{}

	events cursor
	states cursor
	merges cursor

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool
}

// NewBroadcaster creates the push-channel poller.
func NewBroadcaster(db *database.Client) *Broadcaster {
	return &Broadcaster{
		db:     db,
		subs:   make(map[chan Frame]struct{}),
		stopCh: make(chan struct{}),
	}
}

// Start initializes the cursors at now and launches the poll loop. Clients
// only ever see changes that happen after start.
func (b *Broadcaster) Start(ctx context.Context) {
	if b.started {
		return
	}
	b.started = true

	now := time.Now().UTC()
	b.events = cursor{ts: now}
	b.states = cursor{ts: now}
	b.merges = cursor{ts: now}

	b.wg.Add(1)
	go b.run(ctx)
	slog.Info("Push stream started", "poll_interval", pollInterval)
}

// Stop halts the poll loop and closes every subscriber channel.
func (b *Broadcaster) Stop() {
	b.stopOnce.Do(func() { close(b.stopCh) })
	b.wg.Wait()

	b.mu.Lock()
	for ch := range b.subs {
		close(ch)
		delete(b.subs, ch)
	}
	b.mu.Unlock()
	slog.Info("Push stream stopped")
}

// Subscribe registers a client channel. The returned cancel func must be
// called when the client disconnects.
func (b *Broadcaster) Subscribe() (<-chan Frame, func()) {
	ch := make(chan Frame, clientBuffer)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	metrics.StreamClients.Inc()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			if _, ok := b.subs[ch]; ok {
				delete(b.subs, ch)
				close(ch)
			}
			b.mu.Unlock()
			metrics.StreamClients.Dec()
		})
	}
	return ch, cancel
}

func (b *Broadcaster) run(ctx context.Context) {
	defer b.wg.Done()
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-b.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			sent, err := b.poll(ctx)
			if err != nil {
				slog.Error("Push stream poll failed", "error", err)
				continue
			}
			if sent == 0 {
				b.broadcast(Frame{Type: TypePing, Data: map[string]interface{}{
					"ts": time.Now().UTC().Format(time.RFC3339),
				}})
			}
		}
	}
}

// poll reads every table past its cursor and broadcasts the rows in order.
func (b *Broadcaster) poll(ctx context.Context) (int, error) {
	sent := 0

	n, err := b.pollEvents(ctx)
	if err != nil {
		return sent, err
	}
	sent += n

	n, err = b.pollStates(ctx)
	if err != nil {
		return sent, err
	}
	sent += n

	n, err = b.pollMerges(ctx)
	if err != nil {
		return sent, err
	}
	return sent + n, nil
}

func (b *Broadcaster) pollEvents(ctx context.Context) (int, error) {
	rows, err := b.db.Event.Query().
		Where(
			entevent.UpdatedAtGTE(b.events.ts),
			entevent.CanonicalEventIDIsNil(),
		).
		Order(ent.Asc(entevent.FieldUpdatedAt), ent.Asc(entevent.FieldID)).
		Limit(batchSize).
		All(ctx)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, ev := range rows {
		if !b.events.before(ev.UpdatedAt, ev.ID) {
			continue
		}
		b.broadcast(Frame{Type: TypeEventUpsert, Data: eventPayload(ev)})
		b.events = cursor{ts: ev.UpdatedAt, id: ev.ID}
		sent++
	}
	return sent, nil
}

func (b *Broadcaster) pollStates(ctx context.Context) (int, error) {
	rows, err := b.db.EventState.Query().
		Where(eventstate.UpdatedAtGTE(b.states.ts)).
		Order(ent.Asc(eventstate.FieldUpdatedAt), ent.Asc(eventstate.FieldID)).
		Limit(batchSize).
		All(ctx)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, st := range rows {
		if !b.states.before(st.UpdatedAt, st.ID) {
			continue
		}
		b.broadcast(Frame{Type: TypeEventStateChanged, Data: map[string]interface{}{
			"event_id":      st.EventID,
			"status":        st.Status,
			"status_reason": st.StatusReason,
			"updated_at":    st.UpdatedAt.UTC().Format(time.RFC3339),
		}})
		b.states = cursor{ts: st.UpdatedAt, id: st.ID}
		sent++
	}
	return sent, nil
}

func (b *Broadcaster) pollMerges(ctx context.Context) (int, error) {
	rows, err := b.db.MergeAudit.Query().
		Where(mergeaudit.CreatedAtGTE(b.merges.ts)).
		Order(ent.Asc(mergeaudit.FieldCreatedAt), ent.Asc(mergeaudit.FieldID)).
		Limit(batchSize).
		All(ctx)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, ma := range rows {
		if !b.merges.before(ma.CreatedAt, ma.ID) {
			continue
		}
		b.broadcast(Frame{Type: TypeEventMerged, Data: map[string]interface{}{
			"from_event_id": ma.FromEventID,
			"to_event_id":   ma.ToEventID,
			"reason_code":   ma.ReasonCode,
			"created_at":    ma.CreatedAt.UTC().Format(time.RFC3339),
		}})
		b.merges = cursor{ts: ma.CreatedAt, id: ma.ID}
		sent++
	}
	return sent, nil
}

// broadcast fans one frame out; a slow client drops frames rather than
// stalling the poller.
func (b *Broadcaster) broadcast(frame Frame) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- frame:
		default:
		}
	}
}

func eventPayload(ev *ent.Event) map[string]interface{} {
	return map[string]interface{}{
		"id":            ev.ID,
		"status":        ev.Status,
		"lane":          ev.Lane,
		"summary":       ev.Summary,
		"flags":         ev.FlagsJSON,
		"score_plantao": ev.ScorePlantao,
		"first_seen_at": ev.FirstSeenAt.UTC().Format(time.RFC3339),
		"last_seen_at":  ev.LastSeenAt.UTC().Format(time.RFC3339),
		"updated_at":    ev.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
