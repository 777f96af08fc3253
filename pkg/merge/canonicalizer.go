package merge

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/radarpautas/radar/ent/docanchor"
	entevent "github.com/radarpautas/radar/ent/event"
	"github.com/radarpautas/radar/ent/eventdoc"
	"github.com/radarpautas/radar/pkg/anchors"
	"github.com/radarpautas/radar/pkg/config"
	"github.com/radarpautas/radar/pkg/database"
	"github.com/radarpautas/radar/pkg/queue"
	"github.com/radarpautas/radar/pkg/state"
)

// canonicalWindow bounds how far back the canonicalizer looks for colliding
// anchors.
const canonicalWindow = 24 * time.Hour

// Canonicalizer is the periodic job folding distinct events that share a
// strong anchor value into one canonical event.
type Canonicalizer struct {
	db     *database.Client
	queues *queue.Queues

	tick     time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool
}

// NewCanonicalizer creates the canonicalization job.
func NewCanonicalizer(db *database.Client, queues *queue.Queues, cfg *config.AppConfig) *Canonicalizer {
	return &Canonicalizer{
		db:     db,
		queues: queues,
		tick:   cfg.Queue.CanonicalizeTick,
		stopCh: make(chan struct{}),
	}
}

// Start launches the canonicalization loop.
func (c *Canonicalizer) Start(ctx context.Context) {
	if c.started {
		return
	}
	c.started = true
	c.wg.Add(1)
	go c.run(ctx)
	slog.Info("Canonicalizer started", "tick", c.tick)
}

// Stop halts the loop and waits for an in-flight tick.
func (c *Canonicalizer) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
	c.wg.Wait()
	slog.Info("Canonicalizer stopped")
}

func (c *Canonicalizer) run(ctx context.Context) {
	defer c.wg.Done()
	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.Tick(ctx); err != nil {
				slog.Error("Canonicalize tick failed", "error", err)
			}
		}
	}
}

// anchorKey identifies one strong anchor occurrence.
type anchorKey struct {
	Type  string
	Value string
}

// Tick groups recent events by strong anchor value and merges each collision
// group into its canonical member.
func (c *Canonicalizer) Tick(ctx context.Context) error {
	groups, err := c.collisionGroups(ctx)
	if err != nil {
		return err
	}

	for key, eventIDs := range groups {
		if len(eventIDs) < 2 {
			continue
		}
		if err := c.foldGroup(ctx, key, eventIDs); err != nil {
			slog.Error("Anchor group fold failed",
				"anchor_type", key.Type,
				"anchor_value", key.Value,
				"error", err)
		}
	}
	return nil
}

// collisionGroups maps each strong (type, value) seen in the window to the
// set of live events carrying it.
func (c *Canonicalizer) collisionGroups(ctx context.Context) (map[anchorKey][]int, error) {
	cutoff := time.Now().UTC().Add(-canonicalWindow)

	types := make([]docanchor.Type, 0, len(anchors.StrongCanonicalTypes))
	for _, t := range anchors.StrongCanonicalTypes {
		types = append(types, docanchor.Type(t))
	}
	rows, err := c.db.DocAnchor.Query().
		Where(
			docanchor.TypeIn(types...),
			docanchor.CreatedAtGTE(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	keyByDoc := make(map[int][]anchorKey)
	docIDs := make([]int, 0, len(rows))
	for _, row := range rows {
		if _, seen := keyByDoc[row.DocID]; !seen {
			docIDs = append(docIDs, row.DocID)
		}
		keyByDoc[row.DocID] = append(keyByDoc[row.DocID], anchorKey{
			Type:  string(row.Type),
			Value: row.Value,
		})
	}

	links, err := c.db.EventDoc.Query().
		Where(eventdoc.DocIDIn(docIDs...)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	groups := make(map[anchorKey]map[int]struct{})
	for _, link := range links {
		for _, key := range keyByDoc[link.DocID] {
			if groups[key] == nil {
				groups[key] = make(map[int]struct{})
			}
			groups[key][link.EventID] = struct{}{}
		}
	}

	out := make(map[anchorKey][]int, len(groups))
	for key, set := range groups {
		ids := make([]int, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		out[key] = ids
	}
	return out, nil
}

// foldGroup merges every live event in the group into the canonical one: the
// earliest first_seen_at, ties broken by smallest id.
func (c *Canonicalizer) foldGroup(ctx context.Context, key anchorKey, eventIDs []int) error {
	events, err := c.db.Event.Query().
		Where(
			entevent.IDIn(eventIDs...),
			entevent.CanonicalEventIDIsNil(),
		).
		All(ctx)
	if err != nil {
		return err
	}
	if len(events) < 2 {
		return nil
	}

	canonical := events[0]
	for _, ev := range events[1:] {
		if ev.FirstSeenAt.Before(canonical.FirstSeenAt) ||
			(ev.FirstSeenAt.Equal(canonical.FirstSeenAt) && ev.ID < canonical.ID) {
			canonical = ev
		}
	}

	evidence := map[string]interface{}{
		"anchor_type":  key.Type,
		"anchor_value": key.Value,
	}
	merged := false
	for _, ev := range events {
		if ev.ID == canonical.ID {
			continue
		}
		if err := c.mergeOne(ctx, ev.ID, canonical.ID, evidence); err != nil {
			if errors.Is(err, ErrIdempotent) {
				continue
			}
			return err
		}
		merged = true
		slog.Info("Events merged on strong anchor",
			"from_event_id", ev.ID,
			"to_event_id", canonical.ID,
			"anchor_type", key.Type)
	}

	if merged {
		if err := c.queues.Score.TryEnqueue(queue.ScoreTask{EventID: canonical.ID}); err != nil {
			slog.Warn("Score task dropped, queue full", "event_id", canonical.ID)
		}
	}
	return nil
}

func (c *Canonicalizer) mergeOne(ctx context.Context, fromID, toID int, evidence map[string]interface{}) error {
	tx, err := c.db.Tx(ctx)
	if err != nil {
		return err
	}
	if _, err := Merge(ctx, tx, fromID, toID, state.ReasonHardAnchorMatch, evidence); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
