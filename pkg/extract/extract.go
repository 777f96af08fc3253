// Package extract turns raw snapshot bodies into normalized items, one
// organize task per item. Each strategy has its own parser; all of them share
// the item shape and the per-item content hash.
package extract

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/radarpautas/radar/pkg/config"
	"github.com/radarpautas/radar/pkg/fetch"
	"github.com/radarpautas/radar/pkg/metrics"
	"github.com/radarpautas/radar/pkg/queue"
)

// MaxItemTextChars caps the text carried on every extracted item.
const MaxItemTextChars = 50_000

// item is one normalized unit of content before organization.
type item struct {
	Title        string
	URL          string
	Text         string
	CanonicalURL string
	Author       string
	Lang         string
	PublishedAt  *time.Time
	ModifiedAt   *time.Time
}

// Service is the extract worker.
type Service struct {
	queues *queue.Queues
}

// NewService wires the extraction stage.
func NewService(queues *queue.Queues) *Service {
	return &Service{queues: queues}
}

// Handle parses one snapshot body and enqueues one organize task per item.
// Zero items is not an error: it is logged and counted.
func (s *Service) Handle(ctx context.Context, task queue.ExtractTask) error {
	p := task.Profile
	log := slog.With("source_id", p.SourceID, "strategy", string(p.Strategy), "snapshot_id", task.Meta.SnapshotID)

	var items []item
	var err error
	switch {
	case task.PayloadKind == fetch.PayloadKindPDF || p.Strategy == config.StrategyPDF:
		items, err = extractPDF(task.Body, task.Meta.URL)
	case p.Strategy == config.StrategyFeed:
		items, err = extractFeed(task.Body)
	case p.Strategy == config.StrategyAPI || p.Strategy == config.StrategySPAAPI:
		items, err = extractAPI(task.Body, p.Metadata.APIContract)
	default:
		items, err = extractHTML(task.Body, task.Meta.URL)
	}
	if err != nil {
		log.Warn("Extraction failed", "error_class", classifyExtract(err), "error", err)
		metrics.ExtractEmpty.WithLabelValues(string(p.Strategy)).Inc()
		return nil
	}
	if len(items) == 0 {
		log.Info("Extraction produced no items")
		metrics.ExtractEmpty.WithLabelValues(string(p.Strategy)).Inc()
		return nil
	}

	for _, it := range items {
		if it.URL == "" {
			continue
		}
		text := truncate(it.Text, MaxItemTextChars)
		org := queue.OrganizeTask{
			Profile:     p,
			Text:        text,
			ContentHash: itemHash(it.Title, it.URL, text),
			URL:         it.URL,
			Title:       it.Title,
			DocMeta: queue.DocMeta{
				SnapshotID:   task.Meta.SnapshotID,
				CanonicalURL: it.CanonicalURL,
				Author:       it.Author,
				Lang:         it.Lang,
				PublishedAt:  it.PublishedAt,
				ModifiedAt:   it.ModifiedAt,
			},
		}
		if err := s.queues.Organize.Enqueue(ctx, org); err != nil {
			return err
		}
		metrics.ExtractedItems.WithLabelValues(string(p.Strategy)).Inc()
	}
	return nil
}

// itemHash is the per-item content hash: SHA-256(title || url || text).
func itemHash(title, url, text string) string {
	h := sha256.New()
	h.Write([]byte(title))
	h.Write([]byte(url))
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	// Never split a UTF-8 sequence.
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
