package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveHeuristics(t *testing.T) {
	tests := []struct {
		name           string
		agg            Aggregates
		ageMinutes     float64
		wantImpact     float64
		wantPenalty    float64
		wantLagPresent bool
		wantLag        float64
	}{
		{
			name:           "official with strong evidence and velocity",
			agg:            Aggregates{HasOfficial: true, MaxEvidence: 3.0, Velocity: 3, SourceCount: 4},
			ageMinutes:     30,
			wantImpact:     2.0 + 2.5 + 1.5 + 2.0,
			wantPenalty:    0,
			wantLagPresent: true,
			wantLag:        30,
		},
		{
			name:           "single unofficial source pays trust penalty",
			agg:            Aggregates{SourceCount: 1},
			ageMinutes:     10,
			wantImpact:     0.5,
			wantPenalty:    4.0 + 3.0,
			wantLagPresent: true,
			wantLag:        10,
		},
		{
			name:        "tier1 coverage clears the lag",
			agg:         Aggregates{HasTier1: true, SourceCount: 2, MaxEvidence: 2.0},
			ageMinutes:  120,
			wantImpact:  1.0,
			wantPenalty: 0,
		},
		{
			name:           "source count boost capped at 4",
			agg:            Aggregates{SourceCount: 12, HasOfficial: true},
			ageMinutes:     0,
			wantImpact:     2.0 + 4.0,
			wantPenalty:    3.0,
			wantLagPresent: true,
			wantLag:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := tt.agg
			agg.DeriveHeuristics(tt.ageMinutes)
			assert.InDelta(t, tt.wantImpact, agg.ImpactSignal, 1e-9)
			assert.InDelta(t, tt.wantPenalty, agg.TrustPenalty, 1e-9)
			if tt.wantLagPresent {
				require.NotNil(t, agg.CoverageLagMin)
				assert.InDelta(t, tt.wantLag, *agg.CoverageLagMin, 1e-9)
			} else {
				assert.Nil(t, agg.CoverageLagMin)
			}
		})
	}
}

func TestPlantaoFreshTier1(t *testing.T) {
	agg := Aggregates{HighestTier: 1, SourceCount: 1}
	score, reasons := Plantao(agg)

	// 10 + (4-1)*2 + ln(1)*5 + sqrt(1)*3, no decay.
	assert.InDelta(t, 19.0, score, 1e-9)
	assert.Equal(t, []string{ReasonPlantaoTierWeight}, reasons)
}

func TestPlantaoVelocityAndDiversity(t *testing.T) {
	agg := Aggregates{HighestTier: 2, SourceCount: 4, Velocity: 8, ImpactSignal: 6, TrustPenalty: 2}
	score, reasons := Plantao(agg)

	expected := 10.0 + 4.0 + math.Log1p(8)*5.0 + math.Sqrt(4)*3.0 + 6.0*0.8 - 2.0
	assert.InDelta(t, expected, score, 0.01)
	assert.Contains(t, reasons, ReasonPlantaoVelocitySpike)
	assert.Contains(t, reasons, ReasonPlantaoDiversity)
	assert.Contains(t, reasons, ReasonPlantaoImpact)
	assert.Contains(t, reasons, ReasonPlantaoTrustPenalty)
	assert.NotContains(t, reasons, ReasonPlantaoTierWeight)
	assert.NotContains(t, reasons, ReasonPlantaoDecay)
}

func TestPlantaoDecay(t *testing.T) {
	fresh := Aggregates{HighestTier: 1, SourceCount: 2, Velocity: 4}
	aged := fresh
	aged.AgeHours = 6

	freshScore, _ := Plantao(fresh)
	agedScore, agedReasons := Plantao(aged)

	assert.Less(t, agedScore, freshScore)
	assert.Contains(t, agedReasons, ReasonPlantaoDecay)
	// exp(-3) decay leaves roughly 5% of the raw score.
	assert.InDelta(t, freshScore*math.Exp(-3), agedScore, 0.05)
}

func TestPlantaoImpactClamped(t *testing.T) {
	low := Aggregates{HighestTier: 3, SourceCount: 1, ImpactSignal: 10}
	high := low
	high.ImpactSignal = 50

	lowScore, _ := Plantao(low)
	highScore, _ := Plantao(high)
	assert.Equal(t, lowScore, highScore)
}

func TestOceanoOfficialEvidence(t *testing.T) {
	agg := Aggregates{HasOfficial: true, HasTier1: true, MaxEvidence: 5, HasPDFEvidence: true}
	score, reasons := Oceano(agg)

	// (5 + official 5 + lag 0 + pdf 4) * (1 + 5/5), no penalty.
	assert.InDelta(t, 28.0, score, 1e-9)
	assert.Contains(t, reasons, ReasonOceanoEvidenceStrong)
	assert.Contains(t, reasons, ReasonOceanoEvidencePDF)
	assert.Contains(t, reasons, ReasonOceanoOfficial)
	assert.NotContains(t, reasons, ReasonOceanoCoverageLag)
}

func TestOceanoCoverageLag(t *testing.T) {
	lag := 60.0
	agg := Aggregates{SourceCount: 1, CoverageLagMin: &lag, TrustPenalty: 3}
	score, reasons := Oceano(agg)

	// (5 + lag 60/6) * 1 - 3*0.6
	assert.InDelta(t, 13.2, score, 1e-9)
	assert.Contains(t, reasons, ReasonOceanoCoverageLag)
	assert.NotContains(t, reasons, ReasonOceanoTrustReduced)
}

func TestOceanoLagBoostCapped(t *testing.T) {
	longLag := 600.0
	agg := Aggregates{CoverageLagMin: &longLag}
	score, _ := Oceano(agg)

	// Lag boost caps at 20 regardless of how stale coverage is.
	assert.InDelta(t, 25.0, score, 1e-9)
}

func TestOceanoTrustPenaltyReduced(t *testing.T) {
	agg := Aggregates{HasTier1: true, MaxEvidence: 4, TrustPenalty: 8}
	score, reasons := Oceano(agg)

	// (5) * (1 + 4/5) - 8*0.25
	assert.InDelta(t, 5.0*1.8-2.0, score, 1e-9)
	assert.Contains(t, reasons, ReasonOceanoTrustReduced)
}

func TestOceanoCappedAt100(t *testing.T) {
	lag := 600.0
	agg := Aggregates{HasOfficial: true, MaxEvidence: 15, HasPDFEvidence: true, CoverageLagMin: &lag}
	score, _ := Oceano(agg)
	assert.Equal(t, 100.0, score)
}

func TestUnverifiedViral(t *testing.T) {
	assert.False(t, UnverifiedViral(50, 3))
	assert.False(t, UnverifiedViral(51, 2))
	assert.True(t, UnverifiedViral(51, 3))
}

func TestQuarantine(t *testing.T) {
	assert.True(t, Quarantine(19.99, 2))
	assert.False(t, Quarantine(20.0, 2))
	assert.False(t, Quarantine(10.0, 1))
}
