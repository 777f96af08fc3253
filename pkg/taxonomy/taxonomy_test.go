package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferLane(t *testing.T) {
	tests := []struct {
		name     string
		hints    LaneHints
		expected string
	}{
		{
			name:     "explicit lane wins",
			hints:    LaneHints{ExplicitLane: "economia", Title: "STF julga recurso"},
			expected: "economia",
		},
		{
			name:     "unknown explicit lane falls through to keywords",
			hints:    LaneHints{ExplicitLane: "variedades", Title: "STF julga recurso no tribunal"},
			expected: "justica",
		},
		{
			name:     "keyword hits beat topic",
			hints:    LaneHints{Topic: "saude", Title: "Senado aprova orçamento", Snippet: "congresso vota"},
			expected: "politica",
		},
		{
			name:     "priority breaks equal hit counts",
			hints:    LaneHints{Title: "operacao da policia"},
			expected: "justica",
		},
		{
			name:     "topic used when no keyword hits",
			hints:    LaneHints{Topic: "tecnologia", Title: "boletim semanal"},
			expected: "tecnologia",
		},
		{
			name:     "editoria after topic",
			hints:    LaneHints{Editoria: "cultura", Title: "agenda da semana"},
			expected: "cultura",
		},
		{
			name:     "federal scope maps to politica",
			hints:    LaneHints{SourceScope: "federal", Title: "comunicado"},
			expected: "politica",
		},
		{
			name:     "internacional scope",
			hints:    LaneHints{SourceScope: "internacional"},
			expected: "internacional",
		},
		{
			name:     "no signal falls back to geral",
			hints:    LaneHints{Title: "sem pistas aqui"},
			expected: "geral",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InferLane(tt.hints))
		})
	}
}

func TestInferSourceClass(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		url      string
		current  string
		expected string
	}{
		{"explicit class wins", "Qualquer", "https://example.com", "competitor", "competitor"},
		{"gov host is primary", "CGU", "https://www.gov.br/cgu/noticias", "", "primary"},
		{"senado host is primary", "Senado", "https://www12.senado.leg.br/noticias", "", "primary"},
		{"g1 is competitor", "G1", "https://g1.globo.com/politica", "", "competitor"},
		{"jota is specialized", "JOTA", "https://www.jota.info/tributos", "", "specialized"},
		{"apublica is independent", "Agência Pública", "https://apublica.org/feed", "", "independent"},
		{"name fallback tribunal", "Tribunal de Contas de SP", "https://tce-sp.example.com", "", "primary"},
		{"nothing known", "Blog do Zé", "https://blogdoze.example.com", "", "other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InferSourceClass(tt.source, tt.url, tt.current))
		})
	}
}

func TestInferSourceGroup(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		url      string
		class    string
		explicit string
		expected string
	}{
		{"host suffix wins", "Folha Política", "https://folha.uol.com.br/poder", "", "", "folha"},
		{"longest host suffix wins", "Opera Mundi", "https://operamundi.uol.com.br/rss", "", "", "uol"},
		{"generic explicit loses to host", "G1", "https://g1.globo.com/rss", "", "mainstream", "globo"},
		{"specific explicit wins over host", "Parceiro", "https://g1.globo.com/rss", "", "parceria_x", "parceria_x"},
		{"explicit group kept when no host match", "Desconhecido", "https://example.com", "", "parceria_x", "parceria_x"},
		{"name keyword fallback", "Jovem Pan News", "https://example.com/feed", "", "", "jp"},
		{"class fallback primary", "Diário Oficial", "https://example.com", "primary", "", "oficial"},
		{"class fallback competitor", "Portal X", "https://example.com", "competitor", "", "mainstream"},
		{"no signal", "Portal X", "https://example.com", "", "", "outros"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InferSourceGroup(tt.source, tt.url, tt.class, tt.explicit))
		})
	}
}
