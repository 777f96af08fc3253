package anchors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		typ      Type
		input    string
		expected string
	}{
		{"cnpj strips punctuation", TypeCNPJ, "12.345.678/0001-99", "12345678000199"},
		{"cnpj digits pass through", TypeCNPJ, "12345678000199", "12345678000199"},
		{"cpf strips punctuation", TypeCPF, "123.456.789-01", "12345678901"},
		{"valor with cents", TypeVALOR, "R$ 1.234,56", "BRL:1234.56"},
		{"valor without cents", TypeVALOR, "R$ 500", "BRL:500.00"},
		{"valor millions", TypeVALOR, "R$ 2.500.000,00", "BRL:2500000.00"},
		{"data four digit year", TypeDATA, "05/03/2025", "2025-03-05"},
		{"data two digit year maps to 2000s", TypeDATA, "5/3/25", "2025-03-05"},
		{"data invalid day kept raw", TypeDATA, "32/01/2025", "32/01/2025"},
		{"pl uppercased", TypePL, "pl 1234/2025", "PL 1234/2025"},
		{"pl whitespace collapsed", TypePL, "PL   1234/2025", "PL 1234/2025"},
		{"ato uppercased", TypeATO, "Portaria nº 15/2024", "PORTARIA Nº 15/2024"},
		{"tcu uppercased", TypeTCU, "Acórdão 123/2024", "ACÓRDÃO 123/2024"},
		{"link lowercased and trimmed", TypeLinkGov, "https://www.Gov.br/cgu/noticia),", "https://www.gov.br/cgu/noticia"},
		{"pdf link lowercased", TypePDF, "https://exemplo.gov.br/Doc.PDF", "https://exemplo.gov.br/doc.pdf"},
		{"hora passes through", TypeHORA, "14:30", "14:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.typ, tt.input))
		})
	}
}

// Normalization must be idempotent: applying it to an already-normalized
// value is a no-op for every type.
func TestNormalizeIdempotent(t *testing.T) {
	inputs := map[Type]string{
		TypeCNPJ:    "12.345.678/0001-99",
		TypeCPF:     "123.456.789-01",
		TypeCNJ:     "0001234-56.2024.8.26.0100",
		TypeSEI:     "12345.678901/2024-12",
		TypeTCU:     "Acórdão 123/2024",
		TypePL:      "pl  1234/2025",
		TypeATO:     "Decreto 11.000/2024",
		TypeVALOR:   "R$ 1.234,56",
		TypeDATA:    "05/03/2025",
		TypeHORA:    "14:30",
		TypeLinkGov: "https://Exemplo.GOV.br/x).",
		TypePDF:     "https://exemplo.gov.br/Relatorio.pdf,",
	}
	for typ, raw := range inputs {
		t.Run(string(typ), func(t *testing.T) {
			once := Normalize(typ, raw)
			assert.Equal(t, once, Normalize(typ, once))
		})
	}
}

func TestExtract(t *testing.T) {
	text := "A CGU abriu investigação contra a empresa CNPJ 12.345.678/0001-99 " +
		"no processo 0001234-56.2024.8.26.0100, citando o PL 1234/2025 e um " +
		"repasse de R$ 2.500.000,00 em 05/03/2025 às 14:30. " +
		"Detalhes em https://exemplo.gov.br/n1 e no anexo " +
		"https://exemplo.gov.br/relatorio.pdf"

	got := Extract(text)

	byType := map[Type][]string{}
	for _, a := range got {
		byType[a.Type] = append(byType[a.Type], a.Value)
	}

	assert.Equal(t, []string{"12345678000199"}, byType[TypeCNPJ])
	assert.Equal(t, []string{"0001234-56.2024.8.26.0100"}, byType[TypeCNJ])
	assert.Equal(t, []string{"PL 1234/2025"}, byType[TypePL])
	assert.Equal(t, []string{"BRL:2500000.00"}, byType[TypeVALOR])
	assert.Equal(t, []string{"2025-03-05"}, byType[TypeDATA])
	assert.Equal(t, []string{"14:30"}, byType[TypeHORA])
	assert.ElementsMatch(t,
		[]string{"https://exemplo.gov.br/n1", "https://exemplo.gov.br/relatorio.pdf"},
		byType[TypeLinkGov])
	assert.Equal(t, []string{"https://exemplo.gov.br/relatorio.pdf"}, byType[TypePDF])
}

func TestExtractEvidenceWindow(t *testing.T) {
	text := "contrato firmado com CNPJ 12.345.678/0001-99 segundo a ata publicada ontem"
	got := Extract(text)
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Ptr, "12.345.678/0001-99")
	assert.Contains(t, got[0].Ptr, "contrato firmado")
	assert.LessOrEqual(t, len(got[0].Ptr), len("12.345.678/0001-99")+60)
}

func TestExtractEmptyText(t *testing.T) {
	assert.Empty(t, Extract(""))
	assert.Empty(t, Extract("nothing interesting here"))
}

func TestIsOfficialLink(t *testing.T) {
	tests := []struct {
		url      string
		official bool
	}{
		{"https://www.gov.br/cgu", true},
		{"https://exemplo.gov.br/n1", true},
		{"https://www.camara.leg.br/pl", true},
		{"https://www.tjsp.jus.br/proc", true},
		{"https://portal.stf.gov.uk/x", true},
		{"https://g1.globo.com/politica", false},
		{"https://governoaberto.example.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.official, IsOfficialLink(tt.url))
		})
	}
}
