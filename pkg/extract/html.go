package extract

import (
	"bytes"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/radarpautas/radar/pkg/fetch"
)

// extractHTML produces exactly one item from a rendered page: readability
// main text plus document metadata. When the page yields no main text but the
// body carries captured XHR payloads, the JSON blob becomes the text.
func extractHTML(body []byte, pageURL string) ([]item, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &parseError{class: ClassHTMLParse, err: err}
	}

	it := item{URL: pageURL}
	if u, ok := doc.Find(`link[rel="canonical"]`).Attr("href"); ok {
		it.CanonicalURL = strings.TrimSpace(u)
	}
	it.Title = metaContent(doc, `meta[property="og:title"]`)
	if it.Title == "" {
		it.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	it.Author = metaContent(doc, `meta[name="author"]`)
	if lang, ok := doc.Find("html").Attr("lang"); ok {
		it.Lang = strings.TrimSpace(lang)
	}
	it.PublishedAt = metaTime(doc, `meta[property="article:published_time"]`)
	it.ModifiedAt = metaTime(doc, `meta[property="article:modified_time"]`)

	parsedURL, _ := url.Parse(pageURL)
	article, err := readability.FromReader(bytes.NewReader(body), parsedURL)
	if err == nil {
		it.Text = strings.TrimSpace(article.TextContent)
		if it.Title == "" {
			it.Title = article.Title
		}
		if it.Author == "" {
			it.Author = article.Byline
		}
	}

	if it.Text == "" {
		if captured := xhrCapture(string(body)); captured != "" {
			it.Text = captured
		}
	}

	return []item{it}, nil
}

func metaContent(doc *goquery.Document, selector string) string {
	if v, ok := doc.Find(selector).First().Attr("content"); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func metaTime(doc *goquery.Document, selector string) *time.Time {
	raw := metaContent(doc, selector)
	if raw == "" {
		return nil
	}
	for _, layout := range apiTimeFormats {
		if ts, err := time.Parse(layout, raw); err == nil {
			return &ts
		}
	}
	return nil
}

// xhrCapture returns the JSON payloads captured between the headless fetch
// sentinel markers, joined when more than one is present.
func xhrCapture(body string) string {
	var blobs []string
	rest := body
	for {
		start := strings.Index(rest, fetch.XHRCaptureStart)
		if start < 0 {
			break
		}
		rest = rest[start+len(fetch.XHRCaptureStart):]
		end := strings.Index(rest, fetch.XHRCaptureEnd)
		if end < 0 {
			break
		}
		if blob := strings.TrimSpace(rest[:end]); blob != "" {
			blobs = append(blobs, blob)
		}
		rest = rest[end+len(fetch.XHRCaptureEnd):]
	}
	return strings.Join(blobs, "\n")
}
