// Package scoring computes the dual event scores: SCORE_PLANTAO for breaking
// news pressure and SCORE_OCEANO_AZUL for under-covered, evidence-backed
// scoops. Both emit stable reason codes.
package scoring

import "math"

// Stable reason codes attached to score payloads.
const (
	ReasonPlantaoVelocitySpike = "PLANTAO_VELOCITY_SPIKE"
	ReasonPlantaoTierWeight    = "PLANTAO_TIER_WEIGHT"
	ReasonPlantaoDiversity     = "PLANTAO_DIVERSITY"
	ReasonPlantaoDecay         = "PLANTAO_DECAY"
	ReasonPlantaoImpact        = "PLANTAO_IMPACT_HEURISTIC"
	ReasonPlantaoTrustPenalty  = "PLANTAO_TRUST_PENALTY"

	ReasonOceanoEvidenceStrong = "OCEANO_EVIDENCE_STRONG"
	ReasonOceanoCoverageLag    = "OCEANO_COVERAGE_LAG"
	ReasonOceanoEvidencePDF    = "OCEANO_EVIDENCE_PDF"
	ReasonOceanoTrustReduced   = "OCEANO_TRUST_PENALTY_REDUCED"
	ReasonOceanoOfficial       = "OCEANO_OFFICIAL_SOURCE"
)

// FlagUnverifiedViral marks fast-spreading events with no verified backing.
const FlagUnverifiedViral = "UNVERIFIED_VIRAL"

// Aggregates is the per-event input to both formulas.
type Aggregates struct {
	// HighestTier is the lowest tier number among contributing sources
	// (1 is the highest-trust tier); 3 when the event has no sources.
	HighestTier    int
	SourceCount    int
	HasOfficial    bool
	HasTier1       bool
	Velocity       int
	MaxEvidence    float64
	HasPDFEvidence bool
	CoverageLagMin *float64
	ImpactSignal   float64
	TrustPenalty   float64
	AgeHours       float64
}

// DeriveHeuristics fills ImpactSignal, TrustPenalty and CoverageLagMin from
// the raw aggregates. ageMinutes is the event age used as the lag proxy when
// no tier-1 source has covered it yet.
func (a *Aggregates) DeriveHeuristics(ageMinutes float64) {
	a.ImpactSignal = 0
	if a.HasOfficial {
		a.ImpactSignal += 2.0
	}
	if a.MaxEvidence >= 3.0 {
		a.ImpactSignal += 2.5
	}
	if a.Velocity >= 3 {
		a.ImpactSignal += 1.5
	}
	a.ImpactSignal += math.Min(4.0, float64(a.SourceCount)*0.5)

	a.TrustPenalty = 0
	if !a.HasOfficial && a.SourceCount < 2 {
		a.TrustPenalty += 4.0
	}
	if !a.HasTier1 && a.MaxEvidence < 1.0 {
		a.TrustPenalty += 3.0
	}

	if a.HasTier1 {
		a.CoverageLagMin = nil
	} else {
		lag := math.Max(0, ageMinutes)
		a.CoverageLagMin = &lag
	}
}

// Plantao computes SCORE_PLANTAO: tier weight, log velocity, sqrt diversity
// and the impact/trust heuristics under a 2-hour half-life decay.
func Plantao(a Aggregates) (float64, []string) {
	tierWeight := float64(4-a.HighestTier) * 2.0
	velocityBoost := math.Log1p(float64(a.Velocity)) * 5.0
	diversityBoost := math.Sqrt(float64(a.SourceCount)) * 3.0
	impact := clamp(a.ImpactSignal, 0, 10) * 0.8
	trust := clamp(a.TrustPenalty, 0, 20)

	raw := 10.0 + tierWeight + velocityBoost + diversityBoost + impact - trust
	decay := math.Exp(-a.AgeHours / 2.0)
	score := round2(raw * decay)

	var reasons []string
	if a.Velocity > 5 {
		reasons = append(reasons, ReasonPlantaoVelocitySpike)
	}
	if a.HighestTier == 1 {
		reasons = append(reasons, ReasonPlantaoTierWeight)
	}
	if a.SourceCount > 2 {
		reasons = append(reasons, ReasonPlantaoDiversity)
	}
	if a.ImpactSignal >= 2.0 {
		reasons = append(reasons, ReasonPlantaoImpact)
	}
	if a.TrustPenalty > 0 {
		reasons = append(reasons, ReasonPlantaoTrustPenalty)
	}
	if decay < 0.8 {
		reasons = append(reasons, ReasonPlantaoDecay)
	}
	return score, reasons
}

// Oceano computes SCORE_OCEANO_AZUL: evidence multiplier over official, lag
// and PDF boosts, with the trust penalty softened by strong evidence.
func Oceano(a Aggregates) (float64, []string) {
	evidenceMultiplier := 1.0 + a.MaxEvidence/5.0

	var lagBoost float64
	if !a.HasTier1 {
		if a.CoverageLagMin == nil {
			lagBoost = 10.0
		} else {
			lagBoost = math.Min(20.0, math.Max(0, *a.CoverageLagMin)/6.0)
		}
	}

	officialBoost := 0.0
	if a.HasOfficial {
		officialBoost = 5.0
	}
	pdfBoost := 0.0
	if a.HasPDFEvidence {
		pdfBoost = 4.0
	}

	penaltyFactor := 0.6
	if a.MaxEvidence >= 3.0 {
		penaltyFactor = 0.25
	}
	effectivePenalty := math.Max(0, a.TrustPenalty) * penaltyFactor

	score := (5.0+officialBoost+lagBoost+pdfBoost)*evidenceMultiplier - effectivePenalty
	score = round2(math.Min(score, 100.0))

	var reasons []string
	if a.MaxEvidence > 3.0 {
		reasons = append(reasons, ReasonOceanoEvidenceStrong)
	}
	if !a.HasTier1 {
		reasons = append(reasons, ReasonOceanoCoverageLag)
	}
	if a.HasPDFEvidence {
		reasons = append(reasons, ReasonOceanoEvidencePDF)
	}
	if effectivePenalty > 0 && a.MaxEvidence >= 3.0 {
		reasons = append(reasons, ReasonOceanoTrustReduced)
	}
	if a.HasOfficial {
		reasons = append(reasons, ReasonOceanoOfficial)
	}
	return score, reasons
}

// UnverifiedViral reports the velocity/diversity combination that flags an
// event as viral without verified backing.
func UnverifiedViral(velocity, sourceCount int) bool {
	return velocity > 50 && sourceCount >= 3
}

// Quarantine reports the low-score multi-source heuristic.
func Quarantine(scorePlantao float64, sourceCount int) bool {
	return scorePlantao < 20.0 && sourceCount >= 2
}

// HotThreshold is the score at which an event goes HOT.
const HotThreshold = 70.0

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
