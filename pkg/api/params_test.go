package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radarpautas/radar/ent"
	"github.com/radarpautas/radar/ent/docanchor"
)

func testContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, rec
}

func TestLimitParam(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"absent uses default", "/", 20},
		{"explicit value", "/?limit=50", 50},
		{"zero falls back to default", "/?limit=0", 20},
		{"negative falls back to default", "/?limit=-3", 20},
		{"garbage falls back to default", "/?limit=abc", 20},
		{"above max is clamped", "/?limit=5000", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := testContext(t, tt.query)
			assert.Equal(t, tt.want, limitParam(c, defaultFeedLimit, maxFeedLimit))
		})
	}
}

func TestEventIDParam(t *testing.T) {
	c, _ := testContext(t, "/")
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, ok := eventIDParam(c)
	require.True(t, ok)
	assert.Equal(t, 42, id)

	for _, bad := range []string{"0", "-1", "abc", ""} {
		c, rec := testContext(t, "/")
		c.Params = gin.Params{{Key: "id", Value: bad}}
		_, ok := eventIDParam(c)
		assert.False(t, ok, "id %q", bad)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestDocPairDeltas(t *testing.T) {
	// links ordered seen_at desc: doc 2 is latest, doc 1 previous.
	links := []*ent.EventDoc{{DocID: 2}, {DocID: 1}}
	anchors := []*ent.DocAnchor{
		{DocID: 1, Type: docanchor.TypeCNPJ, Value: "12345678000199"},
		{DocID: 1, Type: docanchor.TypeDATA, Value: "2025-03-04"},
		{DocID: 2, Type: docanchor.TypeCNPJ, Value: "12345678000199"},
		{DocID: 2, Type: docanchor.TypeVALOR, Value: "BRL:2500000.00"},
	}
	mentions := []*ent.EntityMention{
		{DocID: 1, EntityKey: "org:cgu"},
		{DocID: 2, EntityKey: "org:cgu"},
		{DocID: 2, EntityKey: "per:fulano"},
	}

	deltas := docPairDeltas(links, anchors, mentions)
	require.NotNil(t, deltas)

	anchorDelta := deltas["anchors"].(gin.H)
	assert.ElementsMatch(t, []string{"VALOR:BRL:2500000.00"}, anchorDelta["added"])
	assert.ElementsMatch(t, []string{"DATA:2025-03-04"}, anchorDelta["removed"])

	entityDelta := deltas["entities"].(gin.H)
	assert.ElementsMatch(t, []string{"per:fulano"}, entityDelta["added"])
	assert.Empty(t, entityDelta["removed"])
}

func TestDocPairDeltasSingleDoc(t *testing.T) {
	assert.Nil(t, docPairDeltas([]*ent.EventDoc{{DocID: 1}}, nil, nil))
	assert.Nil(t, docPairDeltas(nil, nil, nil))
}
