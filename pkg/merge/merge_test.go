package merge

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radarpautas/radar/ent"
	entevent "github.com/radarpautas/radar/ent/event"
	"github.com/radarpautas/radar/ent/eventdoc"
	"github.com/radarpautas/radar/ent/eventscore"
	"github.com/radarpautas/radar/ent/mergeaudit"
	"github.com/radarpautas/radar/pkg/database"
	"github.com/radarpautas/radar/pkg/state"
	testdb "github.com/radarpautas/radar/test/database"
)

type fixture struct {
	t      *testing.T
	client *database.Client
	source *ent.Source
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	src, err := client.Source.Create().
		SetDomain("exemplo.gov.br").
		SetName("Diário Exemplo").
		SetProfile(map[string]interface{}{}).
		Save(context.Background())
	require.NoError(t, err)
	return &fixture{t: t, client: client, source: src}
}

func (f *fixture) createDoc(title string) *ent.Document {
	f.t.Helper()
	doc, err := f.client.Document.Create().
		SetSourceID(f.source.ID).
		SetURL(fmt.Sprintf("https://exemplo.gov.br/%s", title)).
		SetTitle(title).
		SetCleanText("corpo de " + title).
		SetContentHash("hash-" + title).
		Save(context.Background())
	require.NoError(f.t, err)
	return doc
}

func (f *fixture) createEvent(status entevent.Status, docs []*ent.Document, primaryIdx int) *ent.Event {
	f.t.Helper()
	ctx := context.Background()
	ev, err := f.client.Event.Create().
		SetStatus(status).
		Save(ctx)
	require.NoError(f.t, err)

	base := time.Now().UTC().Add(-time.Hour)
	for i, doc := range docs {
		_, err := f.client.EventDoc.Create().
			SetEventID(ev.ID).
			SetDocID(doc.ID).
			SetSourceID(f.source.ID).
			SetSeenAt(base.Add(time.Duration(i) * time.Minute)).
			SetIsPrimary(i == primaryIdx).
			Save(ctx)
		require.NoError(f.t, err)
	}
	return ev
}

func (f *fixture) inTx(fn func(tx *ent.Tx) error) error {
	f.t.Helper()
	tx, err := f.client.Tx(context.Background())
	require.NoError(f.t, err)
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	require.NoError(f.t, tx.Commit())
	return nil
}

func TestMerge(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	docA := f.createDoc("a")
	docB := f.createDoc("b")
	docShared := f.createDoc("shared")

	from := f.createEvent(entevent.StatusPartialEnrich, []*ent.Document{docA, docShared}, 0)
	to := f.createEvent(entevent.StatusHot, []*ent.Document{docB, docShared}, 0)

	var res *Result
	err := f.inTx(func(tx *ent.Tx) error {
		var err error
		res, err = Merge(ctx, tx, from.ID, to.ID, state.ReasonEditorialMerge, map[string]interface{}{"actor": "editor@exemplo"})
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.MovedDocs)
	assert.Equal(t, 1, res.DedupedDocs)

	t.Run("absorbed event becomes a tombstone", func(t *testing.T) {
		absorbed, err := f.client.Event.Get(ctx, from.ID)
		require.NoError(t, err)
		require.NotNil(t, absorbed.CanonicalEventID)
		assert.Equal(t, to.ID, *absorbed.CanonicalEventID)
		assert.Equal(t, entevent.StatusMerged, absorbed.Status)
	})

	t.Run("docs repoint with a single primary", func(t *testing.T) {
		links, err := f.client.EventDoc.Query().
			Where(eventdoc.EventID(to.ID)).
			All(ctx)
		require.NoError(t, err)
		assert.Len(t, links, 3)

		primaries := 0
		for _, link := range links {
			if link.IsPrimary {
				primaries++
			}
		}
		assert.Equal(t, 1, primaries)

		orphans, err := f.client.EventDoc.Query().
			Where(eventdoc.EventID(from.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, orphans)
	})

	t.Run("audit row records the fold", func(t *testing.T) {
		row, err := f.client.MergeAudit.Query().
			Where(mergeaudit.FromEventID(from.ID), mergeaudit.ToEventID(to.ID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, state.ReasonEditorialMerge, row.ReasonCode)
		assert.Equal(t, "editor@exemplo", row.EvidenceJSON["actor"])
		assert.EqualValues(t, 1, row.EvidenceJSON["moved_docs"])
	})

	t.Run("repeat merge is idempotent", func(t *testing.T) {
		err := f.inTx(func(tx *ent.Tx) error {
			_, err := Merge(ctx, tx, from.ID, to.ID, state.ReasonEditorialMerge, nil)
			return err
		})
		assert.ErrorIs(t, err, ErrIdempotent)
	})

	t.Run("merging into a tombstone fails", func(t *testing.T) {
		third := f.createEvent(entevent.StatusHot, nil, -1)
		err := f.inTx(func(tx *ent.Tx) error {
			_, err := Merge(ctx, tx, third.ID, from.ID, state.ReasonEditorialMerge, nil)
			return err
		})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrIdempotent)
	})

	t.Run("self merge is idempotent", func(t *testing.T) {
		err := f.inTx(func(tx *ent.Tx) error {
			_, err := Merge(ctx, tx, to.ID, to.ID, state.ReasonEditorialMerge, nil)
			return err
		})
		assert.ErrorIs(t, err, ErrIdempotent)
	})
}

func TestMergeFoldsAttributesAndScores(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	early := time.Now().UTC().Add(-6 * time.Hour).Truncate(time.Microsecond)
	late := time.Now().UTC().Truncate(time.Microsecond)

	from, err := f.client.Event.Create().
		SetStatus(entevent.StatusPartialEnrich).
		SetSummary("Resumo absorvido").
		SetLane("justica").
		SetFlagsJSON([]string{"OFFICIAL", "PDF"}).
		SetScorePlantao(80).
		SetFirstSeenAt(early).
		SetLastSeenAt(late).
		Save(ctx)
	require.NoError(t, err)
	to, err := f.client.Event.Create().
		SetStatus(entevent.StatusHot).
		SetFlagsJSON([]string{"OFFICIAL"}).
		SetScorePlantao(55).
		Save(ctx)
	require.NoError(t, err)

	_, err = f.client.EventScore.Create().
		SetEventID(from.ID).
		SetScorePlantao(80).
		SetScoreOceanoAzul(33).
		SetReasonsJSON(map[string][]string{"plantao": {"TIER1_SOURCE"}}).
		Save(ctx)
	require.NoError(t, err)

	err = f.inTx(func(tx *ent.Tx) error {
		_, err := Merge(ctx, tx, from.ID, to.ID, state.ReasonHardAnchorMatch, nil)
		return err
	})
	require.NoError(t, err)

	canonical, err := f.client.Event.Get(ctx, to.ID)
	require.NoError(t, err)
	assert.Equal(t, "Resumo absorvido", canonical.Summary)
	assert.Equal(t, "justica", canonical.Lane)
	assert.ElementsMatch(t, []string{"OFFICIAL", "PDF"}, canonical.FlagsJSON)
	assert.Equal(t, 80.0, canonical.ScorePlantao)
	assert.WithinDuration(t, early, canonical.FirstSeenAt, time.Second)

	score, err := f.client.EventScore.Query().
		Where(eventscore.EventID(to.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 80.0, score.ScorePlantao)
	assert.Equal(t, 33.0, score.ScoreOceanoAzul)
	assert.Equal(t, []string{"TIER1_SOURCE"}, score.ReasonsJSON["plantao"])
}

func TestSplit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	docs := []*ent.Document{f.createDoc("um"), f.createDoc("dois"), f.createDoc("tres")}
	src := f.createEvent(entevent.StatusHot, docs, 0)

	var newID int
	err := f.inTx(func(tx *ent.Tx) error {
		var err error
		newID, err = Split(ctx, tx, src.ID, []int{docs[2].ID})
		return err
	})
	require.NoError(t, err)
	require.NotZero(t, newID)

	t.Run("fresh event starts partial enrich with the moved docs", func(t *testing.T) {
		fresh, err := f.client.Event.Get(ctx, newID)
		require.NoError(t, err)
		assert.Equal(t, entevent.StatusPartialEnrich, fresh.Status)

		links, err := f.client.EventDoc.Query().
			Where(eventdoc.EventID(newID)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, docs[2].ID, links[0].DocID)
		assert.True(t, links[0].IsPrimary)
	})

	t.Run("source keeps the rest with a primary", func(t *testing.T) {
		links, err := f.client.EventDoc.Query().
			Where(eventdoc.EventID(src.ID)).
			All(ctx)
		require.NoError(t, err)
		assert.Len(t, links, 2)

		primaries := 0
		for _, link := range links {
			if link.IsPrimary {
				primaries++
			}
		}
		assert.Equal(t, 1, primaries)
	})

	t.Run("merge back rejoins the docs", func(t *testing.T) {
		err := f.inTx(func(tx *ent.Tx) error {
			_, err := Merge(ctx, tx, newID, src.ID, state.ReasonEditorialMerge, nil)
			return err
		})
		require.NoError(t, err)

		count, err := f.client.EventDoc.Query().
			Where(eventdoc.EventID(src.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})
}

func TestSplitValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	docs := []*ent.Document{f.createDoc("um"), f.createDoc("dois")}
	src := f.createEvent(entevent.StatusHot, docs, 0)
	single := f.createEvent(entevent.StatusHot, []*ent.Document{f.createDoc("solo")}, 0)

	tests := []struct {
		name    string
		eventID int
		docIDs  []int
	}{
		{"empty selection", src.ID, nil},
		{"unknown doc", src.ID, []int{999999}},
		{"selection would empty the event", src.ID, []int{docs[0].ID, docs[1].ID}},
		{"fewer than two docs", single.ID, []int{docs[0].ID}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.inTx(func(tx *ent.Tx) error {
				_, err := Split(ctx, tx, tt.eventID, tt.docIDs)
				return err
			})
			assert.ErrorIs(t, err, ErrInvalidSplit)
		})
	}
}
