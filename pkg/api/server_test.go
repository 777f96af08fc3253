package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radarpautas/radar/ent"
	entevent "github.com/radarpautas/radar/ent/event"
	"github.com/radarpautas/radar/ent/eventstate"
	"github.com/radarpautas/radar/pkg/actions"
	"github.com/radarpautas/radar/pkg/cms"
	"github.com/radarpautas/radar/pkg/config"
	"github.com/radarpautas/radar/pkg/database"
	"github.com/radarpautas/radar/pkg/queue"
	"github.com/radarpautas/radar/pkg/stream"
	testdb "github.com/radarpautas/radar/test/database"
)

type apiFixture struct {
	t      *testing.T
	client *database.Client
	router *gin.Engine
	source *ent.Source
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := testdb.NewTestClient(t)
	cfg := &config.AppConfig{
		Env:         "test",
		HTTPPort:    "0",
		SLOFastPath: 30 * time.Minute,
	}
	queues := queue.NewQueues(16)
	server := NewServer(
		client,
		cfg,
		actions.NewService(client, queues, cfg),
		cms.NewBuilder(client),
		cms.NewConnector(""),
		stream.NewBroadcaster(client),
		queues,
	)

	src, err := client.Source.Create().
		SetDomain("exemplo.gov.br").
		SetName("Fonte").
		SetProfile(map[string]interface{}{}).
		Save(context.Background())
	require.NoError(t, err)

	return &apiFixture{t: t, client: client, router: server.Router(), source: src}
}

func (f *apiFixture) createEvent(status entevent.Status, summary string, score float64) *ent.Event {
	f.t.Helper()
	ev, err := f.client.Event.Create().
		SetStatus(status).
		SetSummary(summary).
		SetScorePlantao(score).
		Save(context.Background())
	require.NoError(f.t, err)
	return ev
}

func (f *apiFixture) attachDoc(eventID int, n int) int {
	f.t.Helper()
	ctx := context.Background()
	doc, err := f.client.Document.Create().
		SetSourceID(f.source.ID).
		SetURL(fmt.Sprintf("https://exemplo.gov.br/%d", n)).
		SetTitle(fmt.Sprintf("Doc %d", n)).
		SetCleanText("texto da matéria").
		SetContentHash(fmt.Sprintf("hash%d", n)).
		Save(ctx)
	require.NoError(f.t, err)
	_, err = f.client.EventDoc.Create().
		SetEventID(eventID).
		SetDocID(doc.ID).
		SetSourceID(f.source.ID).
		SetIsPrimary(n == 1).
		Save(ctx)
	require.NoError(f.t, err)
	return doc.ID
}

func (f *apiFixture) do(method, target, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	f.t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &decoded)
	return rec, decoded
}

func TestListEvents(t *testing.T) {
	f := newAPIFixture(t)

	hot := f.createEvent(entevent.StatusHot, "Mais quente", 90)
	f.createEvent(entevent.StatusPartialEnrich, "Morno", 40)
	f.createEvent(entevent.StatusIgnored, "Ignorado", 80)
	tomb := f.createEvent(entevent.StatusMerged, "Absorvido", 85)
	_, err := f.client.Event.UpdateOneID(tomb.ID).SetCanonicalEventID(hot.ID).Save(context.Background())
	require.NoError(t, err)

	rec, _ := f.do(http.MethodGet, "/api/events", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Mais quente", items[0]["summary"])
	assert.Equal(t, "Morno", items[1]["summary"])

	t.Run("status filter", func(t *testing.T) {
		rec, _ := f.do(http.MethodGet, "/api/events?status=HOT", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var filtered []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &filtered))
		require.Len(t, filtered, 1)
		assert.Equal(t, "Mais quente", filtered[0]["summary"])
	})
}

func TestEventDetail(t *testing.T) {
	f := newAPIFixture(t)

	ev := f.createEvent(entevent.StatusHot, "Investigação", 80)
	f.attachDoc(ev.ID, 1)
	f.attachDoc(ev.ID, 2)

	rec, body := f.do(http.MethodGet, fmt.Sprintf("/api/events/%d", ev.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	event := body["event"].(map[string]interface{})
	assert.Equal(t, "Investigação", event["summary"])
	assert.Len(t, body["docs"], 2)

	t.Run("unknown id is 404", func(t *testing.T) {
		rec, _ := f.do(http.MethodGet, "/api/events/999999", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad id is 400", func(t *testing.T) {
		rec, _ := f.do(http.MethodGet, "/api/events/abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestEventDetailTombstone(t *testing.T) {
	f := newAPIFixture(t)

	canonical := f.createEvent(entevent.StatusHot, "Canônico", 80)
	tomb := f.createEvent(entevent.StatusMerged, "Absorvido", 50)
	_, err := f.client.Event.UpdateOneID(tomb.ID).SetCanonicalEventID(canonical.ID).Save(context.Background())
	require.NoError(t, err)

	rec, body := f.do(http.MethodGet, fmt.Sprintf("/api/events/%d", tomb.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["tombstone"])
	assert.EqualValues(t, canonical.ID, body["canonical_event_id"])
	assert.Equal(t, fmt.Sprintf("/api/events/%d", canonical.ID), body["redirect_hint"])
}

func TestApplyActionEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	t.Run("ignore applies", func(t *testing.T) {
		ev := f.createEvent(entevent.StatusPartialEnrich, "Evento", 30)
		rec, body := f.do(http.MethodPost, fmt.Sprintf("/feedback/%d/action?action=ignore", ev.ID), `{"user_id":"editor@exemplo"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "applied", body["status"])
		assert.Equal(t, true, body["state_changed"])

		reloaded, err := f.client.Event.Get(context.Background(), ev.ID)
		require.NoError(t, err)
		assert.Equal(t, entevent.StatusIgnored, reloaded.Status)
	})

	t.Run("repeated action reports no state change", func(t *testing.T) {
		ev := f.createEvent(entevent.StatusHot, "Já quente", 70)
		rec, body := f.do(http.MethodPost, fmt.Sprintf("/feedback/%d/action?action=pautar", ev.ID), "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "applied", body["status"])
		assert.Equal(t, false, body["state_changed"])
	})

	t.Run("merge to nonexistent target is 404", func(t *testing.T) {
		ev := f.createEvent(entevent.StatusHot, "Sem alvo", 60)
		rec, _ := f.do(http.MethodPost,
			fmt.Sprintf("/feedback/%d/action?action=merge", ev.ID),
			`{"target_event_id": 999999}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("blocked action is 409 with code", func(t *testing.T) {
		ev := f.createEvent(entevent.StatusHydrating, "Hidratando", 40)
		rec, body := f.do(http.MethodPost, fmt.Sprintf("/feedback/%d/action?action=pautar", ev.ID), "")
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "ACTION_BLOCKED_HYDRATING", body["code"])
	})

	t.Run("unknown action is 400", func(t *testing.T) {
		ev := f.createEvent(entevent.StatusHot, "Evento", 70)
		rec, _ := f.do(http.MethodPost, fmt.Sprintf("/feedback/%d/action?action=publicar", ev.ID), "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown event is 404", func(t *testing.T) {
		rec, _ := f.do(http.MethodPost, "/feedback/999999/action?action=ignore", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCreateDraftEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	t.Run("with docs", func(t *testing.T) {
		ev := f.createEvent(entevent.StatusHot, "Com documentos", 80)
		f.attachDoc(ev.ID, 1)

		rec, body := f.do(http.MethodPost, fmt.Sprintf("/cms/draft/%d", ev.ID), "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "draft_created", body["status"])
		preview := body["payload_preview"].(map[string]interface{})
		assert.Equal(t, "Com documentos", preview["title"])
	})

	t.Run("no docs is 400", func(t *testing.T) {
		ev := f.createEvent(entevent.StatusHot, "Vazio", 80)
		rec, _ := f.do(http.MethodPost, fmt.Sprintf("/cms/draft/%d", ev.ID), "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("tombstone is 409", func(t *testing.T) {
		canonical := f.createEvent(entevent.StatusHot, "Canônico", 80)
		tomb := f.createEvent(entevent.StatusMerged, "Absorvido", 50)
		_, err := f.client.Event.UpdateOneID(tomb.ID).SetCanonicalEventID(canonical.ID).Save(context.Background())
		require.NoError(t, err)

		rec, body := f.do(http.MethodPost, fmt.Sprintf("/cms/draft/%d", tomb.ID), "")
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.EqualValues(t, canonical.ID, body["canonical_event_id"])
	})
}

func TestStateHistoryEndpoint(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	ev := f.createEvent(entevent.StatusHot, "Evento", 80)
	for _, step := range []struct {
		status eventstate.Status
		reason string
	}{
		{eventstate.StatusHydrating, "EVENT_CREATED"},
		{eventstate.StatusHot, "SCORE_THRESHOLD_HOT"},
	} {
		_, err := f.client.EventState.Create().
			SetEventID(ev.ID).
			SetStatus(step.status).
			SetStatusReason(step.reason).
			Save(ctx)
		require.NoError(t, err)
	}

	rec, body := f.do(http.MethodGet, fmt.Sprintf("/api/events/%d/state-history", ev.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	items := body["items"].([]interface{})
	require.Len(t, items, 2)

	t.Run("unknown event is 404", func(t *testing.T) {
		rec, _ := f.do(http.MethodGet, "/api/events/999999/state-history", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDashboardStats(t *testing.T) {
	f := newAPIFixture(t)

	f.createEvent(entevent.StatusHot, "Um", 80)
	f.createEvent(entevent.StatusHydrating, "Dois", 40)

	rec, body := f.do(http.MethodGet, "/api/dashboard/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)

	byStatus := body["events_by_status"].(map[string]interface{})
	assert.EqualValues(t, 1, byStatus["HOT"])
	assert.EqualValues(t, 1, byStatus["HYDRATING"])

	sources := body["sources"].(map[string]interface{})
	assert.EqualValues(t, 1, sources["total"])
	assert.Contains(t, body, "queue_depths")
}

func TestHealthEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	rec, body := f.do(http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
}
