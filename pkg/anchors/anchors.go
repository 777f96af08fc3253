// Package anchors implements the deterministic regex pack: identifier,
// amount, date and official-link extraction with stable normalization.
package anchors

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Type is a stable anchor type string, matching the doc_anchors.type enum.
type Type string

// Anchor types.
const (
	TypeCNPJ    Type = "CNPJ"
	TypeCPF     Type = "CPF"
	TypeCNJ     Type = "CNJ"
	TypeSEI     Type = "SEI"
	TypeTCU     Type = "TCU"
	TypePL      Type = "PL"
	TypeATO     Type = "ATO"
	TypeVALOR   Type = "VALOR"
	TypeDATA    Type = "DATA"
	TypeHORA    Type = "HORA"
	TypeLinkGov Type = "LINK_GOV"
	TypePDF     Type = "PDF"
)

// Anchor is one normalized match with its ±30-char evidence window.
type Anchor struct {
	Type  Type
	Value string
	Ptr   string
}

// patterns are applied in a fixed order so extraction output is stable.
var patterns = []struct {
	typ Type
	re  *regexp.Regexp
}{
	{TypeCNPJ, regexp.MustCompile(`(?i)\b(?:\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}|\d{14})\b`)},
	{TypeCPF, regexp.MustCompile(`(?i)\b(?:\d{3}\.\d{3}\.\d{3}-\d{2}|\d{11})\b`)},
	{TypeCNJ, regexp.MustCompile(`(?i)\b\d{7}-\d{2}\.\d{4}\.\d\.\d{2}\.\d{4}\b`)},
	{TypeSEI, regexp.MustCompile(`(?i)\b\d{5}\.\d{6}/\d{4}-\d{2}\b`)},
	{TypeTCU, regexp.MustCompile(`(?i)Acórdão\s+\d+/\d+`)},
	{TypePL, regexp.MustCompile(`(?i)\b(?:PL|PEC|PLP|PLR)\s+\d+(?:/\d+)?\b`)},
	{TypeATO, regexp.MustCompile(`(?i)\b(?:Portaria|Decreto|Resolução|Instrução Normativa)\s+(?:nº\s+)?\d+/\d+\b`)},
	{TypeVALOR, regexp.MustCompile(`(?i)R\$\s*[\d.]+(?:,\d{2})?\b`)},
	{TypeDATA, regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`)},
	{TypeHORA, regexp.MustCompile(`\b(?:[01]?\d|2[0-3]):[0-5]\d\b`)},
}

var (
	urlRe        = regexp.MustCompile(`(?i)https?://[^\s"'<>]+`)
	nonDigitRe   = regexp.MustCompile(`\D+`)
	multiSpaceRe = regexp.MustCompile(`\s+`)
	dateRe       = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2,4})$`)
)

// Normalize maps a raw match to its canonical value. It is idempotent for
// every type.
func Normalize(typ Type, raw string) string {
	value := strings.TrimSpace(raw)
	switch typ {
	case TypeCNPJ, TypeCPF:
		return nonDigitRe.ReplaceAllString(value, "")
	case TypeVALOR:
		if strings.HasPrefix(value, "BRL:") {
			return value
		}
		cleaned := strings.ToUpper(value)
		cleaned = strings.ReplaceAll(cleaned, "R$", "")
		cleaned = strings.TrimSpace(cleaned)
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return value
		}
		return fmt.Sprintf("BRL:%.2f", f)
	case TypeDATA:
		m := dateRe.FindStringSubmatch(value)
		if m == nil {
			return value
		}
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		// time.Date silently normalizes overflow (e.g. 32/01); reject those.
		if t.Year() != year || int(t.Month()) != month || t.Day() != day {
			return value
		}
		return t.Format("2006-01-02")
	case TypePL, TypeATO, TypeTCU:
		return strings.TrimSpace(multiSpaceRe.ReplaceAllString(strings.ToUpper(value), " "))
	case TypeLinkGov, TypePDF:
		return strings.ToLower(strings.TrimRight(value, ".,;)]}>"))
	}
	return value
}

// Extract applies the regex pack to text. Matches are deduped by
// (type, normalized value, match offset); URLs additionally yield LINK_GOV
// and PDF anchors.
func Extract(text string) []Anchor {
	var out []Anchor
	type dedupKey struct {
		typ   Type
		value string
		start int
	}
	seen := make(map[dedupKey]struct{})

	for _, p := range patterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			value := Normalize(p.typ, text[loc[0]:loc[1]])
			key := dedupKey{p.typ, value, loc[0]}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, Anchor{Type: p.typ, Value: value, Ptr: window(text, loc[0], loc[1])})
		}
	}

	for _, loc := range urlRe.FindAllStringIndex(text, -1) {
		raw := text[loc[0]:loc[1]]
		normalized := Normalize(TypeLinkGov, raw)
		if IsOfficialLink(normalized) {
			out = append(out, Anchor{Type: TypeLinkGov, Value: normalized, Ptr: window(text, loc[0], loc[1])})
		}
		if strings.Contains(normalized, ".pdf") {
			out = append(out, Anchor{Type: TypePDF, Value: Normalize(TypePDF, raw), Ptr: window(text, loc[0], loc[1])})
		}
	}

	return out
}

// IsOfficialLink reports whether a normalized URL points at a Brazilian
// government, legislative or judiciary domain.
func IsOfficialLink(url string) bool {
	return strings.Contains(url, ".gov.") ||
		strings.HasSuffix(url, ".gov.br") ||
		strings.Contains(url, ".leg.br") ||
		strings.Contains(url, ".jus.br")
}

// window returns ±30 chars of context around [start,end), clamped to valid
// UTF-8 boundaries.
func window(text string, start, end int) string {
	lo := start - 30
	if lo < 0 {
		lo = 0
	}
	hi := end + 30
	if hi > len(text) {
		hi = len(text)
	}
	for lo > 0 && !utf8.RuneStart(text[lo]) {
		lo--
	}
	for hi < len(text) && !utf8.RuneStart(text[hi]) {
		hi++
	}
	return text[lo:hi]
}
