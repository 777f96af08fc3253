package extract

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/radarpautas/radar/pkg/config"
)

var itemsPathFallbacks = []string{"items", "results", "data", "rows"}

var apiTimeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
}

// extractAPI walks a JSON response into items using the profile's
// api_contract: items_path resolution with stable fallbacks, first-of field
// selection and text concatenation.
func extractAPI(body []byte, contract *config.APIContract) ([]item, error) {
	var root interface{}
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, &parseError{class: ClassJSONDecode, err: err}
	}
	if contract == nil {
		contract = &config.APIContract{}
	}

	rows := resolveItems(root, contract.ItemsPath)
	items := make([]item, 0, len(rows))
	for _, row := range rows {
		obj, ok := row.(map[string]interface{})
		if !ok {
			continue
		}
		it := item{
			Title:        firstOf(obj, contract.TitleFields, "title", "titulo", "headline"),
			URL:          firstOf(obj, contract.URLFields, "url", "link", "href"),
			CanonicalURL: firstOf(obj, contract.CanonicalURLFields),
			Author:       firstOf(obj, contract.AuthorFields, "author", "autor"),
			Lang:         firstOf(obj, contract.LangFields),
			Text:         concatFields(obj, contract.TextFields, "text", "summary", "description", "content", "body"),
			PublishedAt:  timeOf(obj, contract.PublishedFields, "published_at", "published", "date", "data"),
			ModifiedAt:   timeOf(obj, contract.ModifiedFields, "modified_at", "updated_at", "modified"),
		}
		items = append(items, it)
	}
	return items, nil
}

// resolveItems resolves the configured dotted path, then the conventional
// fallback keys, then the root itself.
func resolveItems(root interface{}, itemsPath string) []interface{} {
	if itemsPath != "" {
		if node, ok := walkPath(root, itemsPath); ok {
			if list, ok := node.([]interface{}); ok {
				return list
			}
		}
	}
	if obj, ok := root.(map[string]interface{}); ok {
		for _, key := range itemsPathFallbacks {
			if list, ok := obj[key].([]interface{}); ok {
				return list
			}
		}
		return []interface{}{obj}
	}
	if list, ok := root.([]interface{}); ok {
		return list
	}
	return nil
}

// walkPath follows a dotted path; integer segments index lists.
func walkPath(node interface{}, path string) (interface{}, bool) {
	for _, seg := range strings.Split(path, ".") {
		switch cur := node.(type) {
		case map[string]interface{}:
			next, ok := cur[seg]
			if !ok {
				return nil, false
			}
			node = next
		case []interface{}:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(cur) {
				return nil, false
			}
			node = cur[idx]
		default:
			return nil, false
		}
	}
	return node, true
}

// firstOf returns the first non-empty string among the configured fields,
// then the built-in defaults.
func firstOf(obj map[string]interface{}, configured []string, defaults ...string) string {
	for _, key := range append(append([]string{}, configured...), defaults...) {
		if v, ok := obj[key]; ok {
			if s := stringify(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// concatFields joins the configured text fields with double newlines.
func concatFields(obj map[string]interface{}, configured []string, defaults ...string) string {
	fields := configured
	if len(fields) == 0 {
		fields = defaults
	}
	var parts []string
	for _, key := range fields {
		if v, ok := obj[key]; ok {
			if s := stringify(v); s != "" {
				parts = append(parts, s)
			}
		}
	}
	return strings.Join(parts, "\n\n")
}

// stringify renders a JSON value as text; nested structures are re-encoded.
func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(raw)
	}
}

func timeOf(obj map[string]interface{}, configured []string, defaults ...string) *time.Time {
	raw := firstOf(obj, configured, defaults...)
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
