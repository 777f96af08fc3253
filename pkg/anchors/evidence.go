package anchors

import "strings"

// evidenceWeights drive the per-document evidence score. Unknown types count
// a residual 0.1 so new anchor kinds never zero out.
var evidenceWeights = map[Type]float64{
	TypeCNPJ:    1.5,
	TypeCNJ:     2.0,
	TypeSEI:     1.2,
	TypeTCU:     2.0,
	TypePL:      1.5,
	TypeATO:     1.0,
	TypeVALOR:   0.5,
	TypeDATA:    0.2,
	TypeHORA:    0.2,
	TypeLinkGov: 0.8,
	TypePDF:     1.2,
	TypeCPF:     1.2,
}

// EvidenceScoreCap bounds the per-document evidence score.
const EvidenceScoreCap = 15.0

// EvidenceScore sums weights over unique anchor values, capped at
// EvidenceScoreCap. Adding an anchor with a new value never lowers the score.
func EvidenceScore(list []Anchor) float64 {
	score := 0.0
	seen := make(map[string]struct{}, len(list))
	for _, a := range list {
		if _, dup := seen[a.Value]; dup {
			continue
		}
		seen[a.Value] = struct{}{}
		w, ok := evidenceWeights[a.Type]
		if !ok {
			w = 0.1
		}
		score += w
	}
	if score > EvidenceScoreCap {
		return EvidenceScoreCap
	}
	return score
}

// Features is the per-document evidence summary persisted alongside anchors.
type Features struct {
	EvidenceScore     float64
	HasPDF            bool
	HasOfficialDomain bool
	AnchorsCount      int
	MoneyCount        int
	HasTableLike      bool
}

// Summarize derives the evidence feature row from the anchor set and the
// document text.
func Summarize(list []Anchor, text string) Features {
	f := Features{
		EvidenceScore: EvidenceScore(list),
		AnchorsCount:  len(list),
		HasTableLike:  strings.Contains(text, "[TABLE]"),
	}
	for _, a := range list {
		switch a.Type {
		case TypePDF:
			f.HasPDF = true
		case TypeLinkGov:
			f.HasOfficialDomain = true
		case TypeVALOR:
			f.MoneyCount++
		}
	}
	return f
}

// EntityLabel maps an anchor type to its derived entity label. The second
// return is false for types that carry no entity semantics.
func EntityLabel(typ Type) (string, bool) {
	switch typ {
	case TypeCNPJ:
		return "ORG", true
	case TypeCPF:
		return "PER", true
	case TypeCNJ, TypeSEI, TypeTCU, TypeATO:
		return "GOV", true
	case TypePL:
		return "EVENT", true
	}
	return "", false
}

// StrongLinkTypes are the anchor types trusted for deferred-merge linkage in
// the organizer.
var StrongLinkTypes = []Type{TypeCNPJ, TypeCNJ, TypePL, TypeSEI}

// StrongCanonicalTypes are the anchor types the canonicalizer groups on.
var StrongCanonicalTypes = []Type{TypeCNPJ, TypeCNJ, TypePL, TypeSEI, TypeTCU}
