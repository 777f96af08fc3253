package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radarpautas/radar/pkg/config"
)

func TestExtractAPIWithContract(t *testing.T) {
	body := []byte(`{
		"payload": {
			"noticias": [
				{
					"manchete": "Licitação suspensa",
					"permalink": "https://exemplo.gov.br/api/n1",
					"resumo": "TCU suspendeu a licitação",
					"corpo": "Acórdão 123/2024 determina suspensão",
					"publicado": "2025-03-05T10:00:00Z"
				},
				{
					"manchete": "Outra nota",
					"permalink": "https://exemplo.gov.br/api/n2",
					"resumo": "sem corpo"
				}
			]
		}
	}`)
	contract := &config.APIContract{
		ItemsPath:       "payload.noticias",
		TitleFields:     []string{"manchete"},
		URLFields:       []string{"permalink"},
		TextFields:      []string{"resumo", "corpo"},
		PublishedFields: []string{"publicado"},
	}

	items, err := extractAPI(body, contract)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Licitação suspensa", items[0].Title)
	assert.Equal(t, "https://exemplo.gov.br/api/n1", items[0].URL)
	assert.Equal(t, "TCU suspendeu a licitação\n\nAcórdão 123/2024 determina suspensão", items[0].Text)
	require.NotNil(t, items[0].PublishedAt)
	assert.Equal(t, "sem corpo", items[1].Text)
	assert.Nil(t, items[1].PublishedAt)
}

func TestExtractAPIItemsPathWithIndex(t *testing.T) {
	body := []byte(`{"pages": [{"items": [{"title": "via index", "url": "https://a/1"}]}]}`)
	contract := &config.APIContract{ItemsPath: "pages.0.items"}

	items, err := extractAPI(body, contract)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "via index", items[0].Title)
}

func TestExtractAPIFallbackKeys(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"items", `{"items": [{"title": "x", "url": "https://a/1"}]}`},
		{"results", `{"results": [{"title": "x", "url": "https://a/1"}]}`},
		{"data", `{"data": [{"title": "x", "url": "https://a/1"}]}`},
		{"rows", `{"rows": [{"title": "x", "url": "https://a/1"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := extractAPI([]byte(tt.body), nil)
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, "x", items[0].Title)
		})
	}
}

func TestExtractAPIRootObject(t *testing.T) {
	// No list anywhere: the root object itself is the single item.
	body := []byte(`{"title": "única", "url": "https://a/1", "summary": "texto"}`)
	items, err := extractAPI(body, nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "única", items[0].Title)
	assert.Equal(t, "texto", items[0].Text)
}

func TestExtractAPIRootList(t *testing.T) {
	body := []byte(`[{"title": "a", "url": "https://a/1"}, {"title": "b", "url": "https://a/2"}]`)
	items, err := extractAPI(body, nil)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestExtractAPIStringifiesNestedValues(t *testing.T) {
	body := []byte(`{"items": [{"title": "t", "url": "https://a/1", "text": {"blocks": ["um", "dois"]}}]}`)
	items, err := extractAPI(body, nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.JSONEq(t, `{"blocks":["um","dois"]}`, items[0].Text)
}

func TestExtractAPIInvalidJSON(t *testing.T) {
	_, err := extractAPI([]byte("{nope"), nil)
	require.Error(t, err)
	assert.Equal(t, ClassJSONDecode, classifyExtract(err))
}

func TestWalkPath(t *testing.T) {
	root := map[string]interface{}{
		"a": map[string]interface{}{
			"b": []interface{}{"zero", "um"},
		},
	}

	node, ok := walkPath(root, "a.b.1")
	require.True(t, ok)
	assert.Equal(t, "um", node)

	_, ok = walkPath(root, "a.missing")
	assert.False(t, ok)

	_, ok = walkPath(root, "a.b.9")
	assert.False(t, ok)
}
