package merge

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radarpautas/radar/ent"
	"github.com/radarpautas/radar/ent/docanchor"
	entevent "github.com/radarpautas/radar/ent/event"
	"github.com/radarpautas/radar/ent/eventdoc"
	"github.com/radarpautas/radar/pkg/config"
	"github.com/radarpautas/radar/pkg/queue"
)

func (f *fixture) addAnchor(doc *ent.Document, typ docanchor.Type, value string) {
	f.t.Helper()
	_, err := f.client.DocAnchor.Create().
		SetDocID(doc.ID).
		SetType(typ).
		SetValue(value).
		Save(context.Background())
	require.NoError(f.t, err)
}

func newCanonicalizer(f *fixture) (*Canonicalizer, *queue.Queues) {
	queues := queue.NewQueues(16)
	cfg := &config.AppConfig{Queue: config.DefaultQueueConfig()}
	return NewCanonicalizer(f.client, queues, cfg), queues
}

func TestTickFoldsAnchorCollisions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c, queues := newCanonicalizer(f)

	docA := f.createDoc("a")
	docB := f.createDoc("b")
	f.addAnchor(docA, docanchor.TypeCNPJ, "12345678000199")
	f.addAnchor(docB, docanchor.TypeCNPJ, "12345678000199")

	evA := f.createEvent(entevent.StatusPartialEnrich, []*ent.Document{docA}, 0)
	evB := f.createEvent(entevent.StatusPartialEnrich, []*ent.Document{docB}, 0)

	// evA is older, so it wins the canonical election.
	_, err := f.client.Event.UpdateOneID(evA.ID).
		SetFirstSeenAt(time.Now().UTC().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, c.Tick(ctx))

	absorbed, err := f.client.Event.Get(ctx, evB.ID)
	require.NoError(t, err)
	require.NotNil(t, absorbed.CanonicalEventID)
	assert.Equal(t, evA.ID, *absorbed.CanonicalEventID)

	links, err := f.client.EventDoc.Query().
		Where(eventdoc.EventID(evA.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, links)

	// The surviving event is queued for rescoring.
	assert.Equal(t, 1, queues.Score.Depth())

	t.Run("second tick is a no-op", func(t *testing.T) {
		require.NoError(t, c.Tick(ctx))
		assert.Equal(t, 1, queues.Score.Depth())
	})
}

func TestTickIgnoresWeakAnchorsAndSingletons(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c, queues := newCanonicalizer(f)

	// DATA is not a canonicalization anchor even when shared.
	docA := f.createDoc("a")
	docB := f.createDoc("b")
	f.addAnchor(docA, docanchor.TypeDATA, "2025-03-05")
	f.addAnchor(docB, docanchor.TypeDATA, "2025-03-05")
	evA := f.createEvent(entevent.StatusPartialEnrich, []*ent.Document{docA}, 0)
	evB := f.createEvent(entevent.StatusPartialEnrich, []*ent.Document{docB}, 0)

	// A strong anchor carried by a single event folds nothing.
	docC := f.createDoc("c")
	f.addAnchor(docC, docanchor.TypeCNJ, "0001234-56.2025.8.26.0100")
	f.createEvent(entevent.StatusPartialEnrich, []*ent.Document{docC}, 0)

	require.NoError(t, c.Tick(ctx))

	for _, id := range []int{evA.ID, evB.ID} {
		ev, err := f.client.Event.Get(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, ev.CanonicalEventID)
	}
	assert.Zero(t, queues.Score.Depth())
}

func TestTickSkipsTombstones(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c, queues := newCanonicalizer(f)

	docA := f.createDoc("a")
	docB := f.createDoc("b")
	f.addAnchor(docA, docanchor.TypeSEI, "12345.678901/2025-11")
	f.addAnchor(docB, docanchor.TypeSEI, "12345.678901/2025-11")

	evA := f.createEvent(entevent.StatusPartialEnrich, []*ent.Document{docA}, 0)
	evB := f.createEvent(entevent.StatusMerged, []*ent.Document{docB}, 0)
	_, err := f.client.Event.UpdateOneID(evB.ID).
		SetCanonicalEventID(evA.ID).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, c.Tick(ctx))
	assert.Zero(t, queues.Score.Depth())
}
