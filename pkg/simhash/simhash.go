// Package simhash computes 64-bit SimHash fingerprints for near-duplicate
// detection and supports bounded-Hamming lookups over candidate sets.
package simhash

import (
	"encoding/binary"
	"math/bits"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/text/unicode/norm"
)

// DefaultThreshold is the Hamming distance bound for near-duplicates.
const DefaultThreshold = 12

// stopwords excluded from feature tokens (Portuguese function words).
var stopwords = map[string]struct{}{
	"a": {}, "ao": {}, "aos": {}, "as": {}, "com": {}, "como": {}, "contra": {},
	"da": {}, "das": {}, "de": {}, "do": {}, "dos": {}, "e": {}, "em": {},
	"entre": {}, "na": {}, "nas": {}, "no": {}, "nos": {}, "o": {}, "os": {},
	"ou": {}, "para": {}, "pela": {}, "pelas": {}, "pelo": {}, "pelos": {},
	"por": {}, "que": {}, "sem": {}, "sob": {}, "sobre": {}, "uma": {}, "um": {},
	"uns": {}, "umas": {}, "daquele": {}, "daquela": {}, "este": {}, "esta": {},
	"isso": {}, "esse": {}, "essa": {},
}

var (
	nonAlnumRe   = regexp.MustCompile(`[^a-z0-9]+`)
	multiSpaceRe = regexp.MustCompile(`\s+`)
)

// maxUnigrams bounds the unigram features added on top of shingles so very
// short texts still produce a signal.
const maxUnigrams = 24

// NormalizeText lower-cases, strips diacritics and collapses everything that
// is not [a-z0-9] to single spaces.
func NormalizeText(value string) string {
	text := strings.ToLower(strings.TrimSpace(value))
	decomposed := norm.NFKD.String(text)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	text = nonAlnumRe.ReplaceAllString(b.String(), " ")
	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(text, " "))
}

// buildFeatures tokenizes and produces 3-token shingles plus the first
// unigrams.
func buildFeatures(text string) []string {
	normalized := NormalizeText(text)
	if normalized == "" {
		return nil
	}
	var tokens []string
	for _, t := range strings.Fields(normalized) {
		if len(t) < 3 {
			continue
		}
		if _, stop := stopwords[t]; stop {
			continue
		}
		tokens = append(tokens, t)
	}
	if len(tokens) == 0 {
		return nil
	}

	var features []string
	for i := 0; i+3 <= len(tokens); i++ {
		features = append(features, strings.Join(tokens[i:i+3], " "))
	}
	n := len(tokens)
	if n > maxUnigrams {
		n = maxUnigrams
	}
	features = append(features, tokens[:n]...)
	return features
}

// featureKey fixes the keyed digest so fingerprints stay comparable across
// processes and releases.
var featureKey = []byte("radar-simhash-v1")

// hashFeature digests one feature to a stable keyed 64-bit value.
func hashFeature(feature string) uint64 {
	h, err := blake2b.New256(featureKey)
	if err != nil {
		panic(err)
	}
	h.Write([]byte(feature))
	return binary.BigEndian.Uint64(h.Sum(nil)[:8])
}

// Compute returns the 64-bit SimHash of text. ok is false when the text
// yields no features (empty after normalization).
func Compute(text string) (fingerprint uint64, ok bool) {
	features := buildFeatures(text)
	if len(features) == 0 {
		return 0, false
	}

	var votes [64]int
	for _, feature := range features {
		h := hashFeature(feature)
		for i := 0; i < 64; i++ {
			if (h>>uint(i))&1 == 1 {
				votes[i]++
			} else {
				votes[i]--
			}
		}
	}

	var out uint64
	for i := 0; i < 64; i++ {
		if votes[i] >= 0 {
			out |= 1 << uint(i)
		}
	}
	return out, true
}

// Distance is the Hamming distance between two fingerprints.
func Distance(a, b uint64) int {
	return bits.OnesCount64(a ^ b)
}

// IsNearDuplicate reports whether two fingerprints are within threshold.
func IsNearDuplicate(a, b uint64, threshold int) bool {
	return Distance(a, b) <= threshold
}

// Candidate is one recent document offered to BestMatch.
type Candidate struct {
	DocID       int
	Fingerprint uint64
}

// BestMatch scans candidates for the closest fingerprint within threshold.
// Ties break by smallest distance, then smallest doc id.
func BestMatch(target uint64, candidates []Candidate, threshold int) (docID, distance int, ok bool) {
	best := -1
	bestDist := threshold + 1
	for _, c := range candidates {
		d := Distance(target, c.Fingerprint)
		if d > threshold {
			continue
		}
		if d < bestDist || (d == bestDist && (best == -1 || c.DocID < best)) {
			best = c.DocID
			bestDist = d
		}
	}
	if best == -1 {
		return 0, 0, false
	}
	return best, bestDist, true
}
