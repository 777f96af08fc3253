package cms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/radarpautas/radar/ent"
	"github.com/radarpautas/radar/ent/docanchor"
	"github.com/radarpautas/radar/ent/entitymention"
)

func TestFieldConfidenceDefaults(t *testing.T) {
	fc := fieldConfidence(nil, nil)
	assert.Equal(t, map[string]float64{
		"person": 1.0,
		"date":   1.0,
		"value":  1.0,
		"org":    1.0,
	}, fc)
}

func TestFieldConfidenceRegexBackedFields(t *testing.T) {
	anchors := []*ent.DocAnchor{
		{Type: docanchor.TypeDATA, Value: "2025-03-05"},
		{Type: docanchor.TypeVALOR, Value: "BRL:2500000.00"},
		{Type: docanchor.TypeCNPJ, Value: "12345678000199"},
	}
	mentions := []*ent.EntityMention{
		{Label: entitymention.LabelPER, Span: "Fulano de Tal"},
		{Label: entitymention.LabelORG, Span: "Controladoria-Geral da União"},
	}

	fc := fieldConfidence(anchors, mentions)
	assert.Equal(t, 0.75, fc["person"])
	assert.Equal(t, 0.85, fc["date"])
	assert.Equal(t, 0.85, fc["value"])
	assert.Equal(t, 0.8, fc["org"])
}

func TestTruncateKeepsRuneBoundary(t *testing.T) {
	assert.Equal(t, "curto", truncate("curto", 100))
	// "ação" is a|ç|ã|o = 1+2+2+1 bytes; cutting at 4 must not leave a
	// dangling continuation byte.
	assert.Equal(t, "aç", truncate("ação", 4))
	assert.Equal(t, "açã", truncate("ação", 5))
}

func TestTombstoneError(t *testing.T) {
	err := &TombstoneError{EventID: 5, CanonicalEventID: 2}
	assert.Equal(t, "event 5 merged into 2", err.Error())
}
