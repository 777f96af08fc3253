package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radarpautas/radar/pkg/fetch"
)

const articleHTML = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
  <title>Fallback title</title>
  <meta property="og:title" content="CGU abre investigação sobre contratos"/>
  <meta name="author" content="Redação"/>
  <meta property="article:published_time" content="2025-03-05T10:00:00Z"/>
  <meta property="article:modified_time" content="2025-03-05T12:30:00Z"/>
  <link rel="canonical" href="https://exemplo.gov.br/noticias/cgu-contratos"/>
</head>
<body>
  <article>
    <h1>CGU abre investigação sobre contratos</h1>
    <p>A Controladoria-Geral da União abriu nesta quarta-feira uma investigação
    sobre contratos de informática firmados pelo ministério. Segundo a CGU, os
    repasses somam R$ 2,5 milhões e envolvem uma empresa registrada em Brasília.</p>
    <p>O processo cita o CNPJ 12.345.678/0001-99 e documentos anexos publicados
    no portal oficial. A empresa nega irregularidades e diz colaborar com a
    apuração em todas as frentes desde o início do procedimento.</p>
    <p>Procurado, o ministério afirmou que os contratos seguiram as regras de
    licitação vigentes e que os documentos estão disponíveis para consulta
    pública no portal da transparência do governo federal.</p>
  </article>
</body>
</html>`

func TestExtractHTML(t *testing.T) {
	items, err := extractHTML([]byte(articleHTML), "https://exemplo.gov.br/noticias/cgu")
	require.NoError(t, err)
	require.Len(t, items, 1)

	it := items[0]
	assert.Equal(t, "https://exemplo.gov.br/noticias/cgu", it.URL)
	assert.Equal(t, "CGU abre investigação sobre contratos", it.Title)
	assert.Equal(t, "https://exemplo.gov.br/noticias/cgu-contratos", it.CanonicalURL)
	assert.Equal(t, "Redação", it.Author)
	assert.Equal(t, "pt-BR", it.Lang)
	require.NotNil(t, it.PublishedAt)
	require.NotNil(t, it.ModifiedAt)
	assert.Contains(t, it.Text, "Controladoria-Geral")
	assert.Contains(t, it.Text, "12.345.678/0001-99")
}

func TestExtractHTMLTitleFallback(t *testing.T) {
	html := `<html><head><title>Só o título</title></head><body><p>pouco texto</p></body></html>`
	items, err := extractHTML([]byte(html), "https://exemplo.gov.br/x")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Só o título", items[0].Title)
}

func TestExtractHTMLXHRFallback(t *testing.T) {
	// An empty SPA shell with captured XHR payloads: the JSON between the
	// sentinels becomes the text.
	html := `<html><head></head><body><div id="root"></div></body></html>
` + fetch.XHRCaptureStart + `
{"noticias":[{"titulo":"Captura"}]}
` + fetch.XHRCaptureEnd + `
` + fetch.XHRCaptureStart + `
{"pagina":2}
` + fetch.XHRCaptureEnd

	items, err := extractHTML([]byte(html), "https://exemplo.gov.br/spa")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Contains(t, items[0].Text, `{"noticias":[{"titulo":"Captura"}]}`)
	assert.Contains(t, items[0].Text, `{"pagina":2}`)
}

func TestXHRCapture(t *testing.T) {
	assert.Empty(t, xhrCapture("no markers here"))

	body := "prefix " + fetch.XHRCaptureStart + " {\"a\":1} " + fetch.XHRCaptureEnd + " suffix"
	assert.Equal(t, `{"a":1}`, xhrCapture(body))

	// Unterminated capture is ignored.
	assert.Empty(t, xhrCapture(fetch.XHRCaptureStart+" {\"a\":1}"))
}

func TestFirstLine(t *testing.T) {
	text := "\n[TABLE] a | b [/TABLE]\nRelatório de fiscalização\nsegunda linha"
	assert.Equal(t, "Relatório de fiscalização", firstLine(text))

	long := strings.Repeat("x", 300)
	assert.Len(t, firstLine(long), 160)
}
