package extract

import (
	"bytes"

	"github.com/mmcdole/gofeed"
)

// extractFeed parses an RSS/Atom/JSON feed into one item per entry.
func extractFeed(body []byte) ([]item, error) {
	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, &parseError{class: ClassHTMLParse, err: err}
	}

	items := make([]item, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		if entry == nil || entry.Link == "" {
			continue
		}
		text := entry.Description
		if text == "" {
			text = entry.Content
		}
		it := item{
			Title:       entry.Title,
			URL:         entry.Link,
			Text:        text,
			PublishedAt: entry.PublishedParsed,
			ModifiedAt:  entry.UpdatedParsed,
		}
		if len(entry.Authors) > 0 && entry.Authors[0] != nil {
			it.Author = entry.Authors[0].Name
		}
		items = append(items, it)
	}
	return items, nil
}
