package simhash

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

const sampleText = "A Controladoria-Geral da União abriu investigação sobre " +
	"contratos de informática firmados pelo ministério, citando repasses de " +
	"R$ 2,5 milhões a uma empresa de fachada registrada em Brasília no ano passado"

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "CGU Abre INVESTIGAÇÃO", "cgu abre investigacao"},
		{"strips diacritics", "ministério união brasília", "ministerio uniao brasilia"},
		{"collapses punctuation", "R$ 2,5 milhões -- agora!", "r 2 5 milhoes agora"},
		{"trims", "  espaço   duplo  ", "espaco duplo"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeText(tt.input))
		})
	}
}

// Same normalized text must always yield the same fingerprint.
func TestComputeStable(t *testing.T) {
	a, ok := Compute(sampleText)
	require.True(t, ok)
	b, ok := Compute(sampleText)
	require.True(t, ok)
	assert.Equal(t, a, b)

	// Case changes do not alter the fingerprint.
	c, ok := Compute(upperASCII(sampleText))
	require.True(t, ok)
	assert.Equal(t, a, c)
}

func upperASCII(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			r = r - 'a' + 'A'
		}
		out = append(out, r)
	}
	return string(out)
}

// Feature digests are keyed: an attacker who can predict the bare content
// hash of a feature must not be able to predict its fingerprint contribution.
func TestHashFeatureKeyed(t *testing.T) {
	feature := "controladoria geral uniao"
	sum := blake2b.Sum256([]byte(feature))
	unkeyed := binary.BigEndian.Uint64(sum[:8])

	assert.NotEqual(t, unkeyed, hashFeature(feature))

	// Keyed digests are still deterministic.
	assert.Equal(t, hashFeature(feature), hashFeature(feature))
}

func TestComputeEmpty(t *testing.T) {
	_, ok := Compute("")
	assert.False(t, ok)

	// Only stopwords / short tokens: no features.
	_, ok = Compute("a de do em no")
	assert.False(t, ok)
}

// A single-token edit stays within the near-duplicate threshold.
func TestComputeSmallEditNearDuplicate(t *testing.T) {
	original, ok := Compute(sampleText)
	require.True(t, ok)

	edited, ok := Compute(sampleText + " atualizado")
	require.True(t, ok)

	assert.LessOrEqual(t, Distance(original, edited), DefaultThreshold)
	assert.True(t, IsNearDuplicate(original, edited, DefaultThreshold))
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 0, Distance(0xdeadbeef, 0xdeadbeef))
	assert.Equal(t, 64, Distance(0, ^uint64(0)))
	assert.Equal(t, 1, Distance(0b1000, 0b0000))
}

func TestBestMatch(t *testing.T) {
	target := uint64(0b1111_0000)
	candidates := []Candidate{
		{DocID: 30, Fingerprint: 0b1111_0001}, // distance 1
		{DocID: 10, Fingerprint: 0b1111_0011}, // distance 2
		{DocID: 20, Fingerprint: 0b1111_0001}, // distance 1
	}

	docID, dist, ok := BestMatch(target, candidates, DefaultThreshold)
	require.True(t, ok)
	assert.Equal(t, 1, dist)
	// Equal distances break by smallest doc id.
	assert.Equal(t, 20, docID)
}

func TestBestMatchThreshold(t *testing.T) {
	target := uint64(0)
	far := Candidate{DocID: 1, Fingerprint: ^uint64(0)}

	_, _, ok := BestMatch(target, []Candidate{far}, DefaultThreshold)
	assert.False(t, ok)

	near := Candidate{DocID: 2, Fingerprint: 0b111} // distance 3
	docID, dist, ok := BestMatch(target, []Candidate{far, near}, DefaultThreshold)
	require.True(t, ok)
	assert.Equal(t, 2, docID)
	assert.Equal(t, 3, dist)
}

func TestBestMatchEmpty(t *testing.T) {
	_, _, ok := BestMatch(42, nil, DefaultThreshold)
	assert.False(t, ok)
}
