package anchors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvidenceScore(t *testing.T) {
	tests := []struct {
		name     string
		anchors  []Anchor
		expected float64
	}{
		{"empty", nil, 0},
		{"single cnj", []Anchor{{Type: TypeCNJ, Value: "0001234-56.2024.8.26.0100"}}, 2.0},
		{
			"cnpj plus official link",
			[]Anchor{
				{Type: TypeCNPJ, Value: "12345678000199"},
				{Type: TypeLinkGov, Value: "https://exemplo.gov.br/n1"},
			},
			2.3,
		},
		{
			"duplicate values counted once",
			[]Anchor{
				{Type: TypeCNPJ, Value: "12345678000199"},
				{Type: TypeCNPJ, Value: "12345678000199"},
			},
			1.5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, EvidenceScore(tt.anchors), 1e-9)
		})
	}
}

func TestEvidenceScoreCapped(t *testing.T) {
	var many []Anchor
	for i := 0; i < 20; i++ {
		many = append(many, Anchor{Type: TypeCNJ, Value: string(rune('a' + i))})
	}
	assert.Equal(t, EvidenceScoreCap, EvidenceScore(many))
}

// Adding an anchor with a new value never lowers the score.
func TestEvidenceScoreMonotone(t *testing.T) {
	base := []Anchor{
		{Type: TypeCNPJ, Value: "12345678000199"},
		{Type: TypeVALOR, Value: "BRL:500.00"},
	}
	extended := append(append([]Anchor{}, base...), Anchor{Type: TypeDATA, Value: "2025-03-05"})
	assert.GreaterOrEqual(t, EvidenceScore(extended), EvidenceScore(base))

	// Equal inputs yield equal scores.
	assert.Equal(t, EvidenceScore(base), EvidenceScore(base))
}

func TestSummarize(t *testing.T) {
	list := []Anchor{
		{Type: TypeCNPJ, Value: "12345678000199"},
		{Type: TypeVALOR, Value: "BRL:500.00"},
		{Type: TypeVALOR, Value: "BRL:900.00"},
		{Type: TypeLinkGov, Value: "https://exemplo.gov.br/n1"},
		{Type: TypePDF, Value: "https://exemplo.gov.br/a.pdf"},
	}
	f := Summarize(list, "relatório [TABLE] a | b [/TABLE]")

	assert.Equal(t, 5, f.AnchorsCount)
	assert.Equal(t, 2, f.MoneyCount)
	assert.True(t, f.HasPDF)
	assert.True(t, f.HasOfficialDomain)
	assert.True(t, f.HasTableLike)
	assert.InDelta(t, 1.5+0.5+0.5+0.8+1.2, f.EvidenceScore, 1e-9)
}

func TestEntityLabel(t *testing.T) {
	tests := []struct {
		typ   Type
		label string
		ok    bool
	}{
		{TypeCNPJ, "ORG", true},
		{TypeCPF, "PER", true},
		{TypeCNJ, "GOV", true},
		{TypeSEI, "GOV", true},
		{TypeTCU, "GOV", true},
		{TypeATO, "GOV", true},
		{TypePL, "EVENT", true},
		{TypeVALOR, "", false},
		{TypeDATA, "", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			label, ok := EntityLabel(tt.typ)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.label, label)
		})
	}
}
