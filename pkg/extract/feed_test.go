package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Notícias CGU</title>
    <item>
      <title>CGU abre investigação</title>
      <link>https://exemplo.gov.br/n1</link>
      <description>Investigação cita CNPJ 12.345.678/0001-99</description>
      <pubDate>Mon, 03 Mar 2025 12:00:00 GMT</pubDate>
      <author>assessoria@exemplo.gov.br (Assessoria)</author>
    </item>
    <item>
      <title>Sem link</title>
      <description>Entrada sem link é ignorada</description>
    </item>
    <item>
      <title>Segunda nota</title>
      <link>https://exemplo.gov.br/n2</link>
    </item>
  </channel>
</rss>`

func TestExtractFeed(t *testing.T) {
	items, err := extractFeed([]byte(sampleRSS))
	require.NoError(t, err)
	require.Len(t, items, 2, "entries without a link are skipped")

	assert.Equal(t, "CGU abre investigação", items[0].Title)
	assert.Equal(t, "https://exemplo.gov.br/n1", items[0].URL)
	assert.Equal(t, "Investigação cita CNPJ 12.345.678/0001-99", items[0].Text)
	require.NotNil(t, items[0].PublishedAt)
	assert.Equal(t, 2025, items[0].PublishedAt.Year())

	assert.Equal(t, "Segunda nota", items[1].Title)
	assert.Equal(t, "https://exemplo.gov.br/n2", items[1].URL)
	assert.Empty(t, items[1].Text)
}

func TestExtractFeedAtom(t *testing.T) {
	atom := `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Diário</title>
  <entry>
    <title>Decreto publicado</title>
    <link href="https://exemplo.gov.br/decreto"/>
    <summary>Decreto 11.000/2024 assinado</summary>
    <updated>2025-03-05T10:00:00Z</updated>
  </entry>
</feed>`

	items, err := extractFeed([]byte(atom))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Decreto publicado", items[0].Title)
	assert.Equal(t, "https://exemplo.gov.br/decreto", items[0].URL)
	assert.Equal(t, "Decreto 11.000/2024 assinado", items[0].Text)
}

func TestExtractFeedMalformed(t *testing.T) {
	_, err := extractFeed([]byte("this is not a feed"))
	require.Error(t, err)
	assert.Equal(t, ClassHTMLParse, classifyExtract(err))
}

func TestItemHash(t *testing.T) {
	a := itemHash("t", "https://a", "text")
	b := itemHash("t", "https://a", "text")
	c := itemHash("t", "https://a", "text!")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestTruncateUTF8Safe(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "ab", truncate("abcd", 2))
	// Never cuts inside a multi-byte rune.
	assert.Equal(t, "ação"[:3], truncate("ação", 4))
}
