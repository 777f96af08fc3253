package alerts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/radarpautas/radar/pkg/queue"
)

func TestHashStableWithinBand(t *testing.T) {
	plantao := queue.ScorePayload{Score: 72.0, Reasons: []string{"FRESH_30M", "TIER1_SOURCE"}}
	oceano := queue.ScorePayload{Score: 41.0, Reasons: []string{"OFFICIAL_SOURCE"}}

	base := Hash(10, plantao, oceano)

	// Recomputations that stay inside the same 5-point band hash identically.
	plantao.Score = 74.9
	oceano.Score = 44.9
	assert.Equal(t, base, Hash(10, plantao, oceano))

	// Crossing a band boundary produces a new hash.
	plantao.Score = 75.0
	assert.NotEqual(t, base, Hash(10, plantao, oceano))
}

func TestHashSensitivity(t *testing.T) {
	plantao := queue.ScorePayload{Score: 72.0, Reasons: []string{"FRESH_30M"}}
	oceano := queue.ScorePayload{Score: 41.0, Reasons: []string{"OFFICIAL_SOURCE"}}
	base := Hash(10, plantao, oceano)

	// Different event id.
	assert.NotEqual(t, base, Hash(11, plantao, oceano))

	// Different reason set at the same scores.
	changed := queue.ScorePayload{Score: 72.0, Reasons: []string{"FRESH_30M", "EVIDENCE_STRONG"}}
	assert.NotEqual(t, base, Hash(10, changed, oceano))
}

func TestHashNilReasonsEqualsEmpty(t *testing.T) {
	withNil := queue.ScorePayload{Score: 10}
	withEmpty := queue.ScorePayload{Score: 10, Reasons: []string{}}
	assert.Equal(t, Hash(3, withNil, withEmpty), Hash(3, withEmpty, withNil))
}
