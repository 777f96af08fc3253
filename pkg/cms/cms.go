// Package cms builds Draft-only article payloads from events and hands them
// to the CMS connector. The connector is a best-effort collaborator: a failed
// push never wedges the pipeline.
package cms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/radarpautas/radar/ent"
	"github.com/radarpautas/radar/ent/docanchor"
	"github.com/radarpautas/radar/ent/document"
	"github.com/radarpautas/radar/ent/entitymention"
	"github.com/radarpautas/radar/ent/eventdoc"
	"github.com/radarpautas/radar/ent/eventscore"
	"github.com/radarpautas/radar/pkg/database"
)

// ErrNoDocs rejects drafting an event with no linked documents.
var ErrNoDocs = errors.New("event has no documents")

// TombstoneError rejects drafting a merged event; the canonical id is the
// redirect hint.
type TombstoneError struct {
	EventID          int
	CanonicalEventID int
}

func (e *TombstoneError) Error() string {
	return fmt.Sprintf("event %d merged into %d", e.EventID, e.CanonicalEventID)
}

const (
	maxDraftDocs     = 5
	maxDraftDocChars = 3000
)

// SourceRef is one provenance entry of a draft.
type SourceRef struct {
	URL         string     `json:"url"`
	Title       string     `json:"title"`
	PublishedAt *time.Time `json:"published_at"`
	SourceID    int        `json:"source_id"`
}

// TimelineEntry is one document arrival in the draft timeline.
type TimelineEntry struct {
	DocID     int       `json:"doc_id"`
	SeenAt    time.Time `json:"seen_at"`
	Title     string    `json:"title"`
	IsPrimary bool      `json:"is_primary"`
}

// AnchorRef is one extracted identifier attached to the draft evidence.
type AnchorRef struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	DocID int    `json:"doc_id"`
}

// DraftPayload is the structured NewsArticle draft handed to the CMS.
type DraftPayload struct {
	Title           string              `json:"title"`
	CleanText       string              `json:"clean_text"`
	Sources         []SourceRef         `json:"sources"`
	Anchors         []AnchorRef         `json:"anchors"`
	EvidenceScore   float64             `json:"evidence_score"`
	Reasons         map[string][]string `json:"reasons"`
	Timeline        []TimelineEntry     `json:"timeline"`
	Confidence      float64             `json:"confidence"`
	FieldConfidence map[string]float64  `json:"field_confidence"`
}

// Builder assembles draft payloads from the event graph.
type Builder struct {
	db *database.Client
}

// NewBuilder creates a draft builder.
func NewBuilder(db *database.Client) *Builder {
	return &Builder{db: db}
}

// Build assembles the draft payload for one event. It returns ent's not-found
// error for a missing event, *TombstoneError for merged ones and ErrNoDocs
// for events with no documents.
func (b *Builder) Build(ctx context.Context, eventID int) (*DraftPayload, error) {
	ev, err := b.db.Event.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if ev.CanonicalEventID != nil {
		return nil, &TombstoneError{EventID: eventID, CanonicalEventID: *ev.CanonicalEventID}
	}

	links, err := b.db.EventDoc.Query().
		Where(eventdoc.EventID(eventID)).
		Order(ent.Asc(eventdoc.FieldSeenAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, ErrNoDocs
	}

	docIDs := make([]int, 0, len(links))
	for _, link := range links {
		docIDs = append(docIDs, link.DocID)
	}
	docs, err := b.db.Document.Query().
		Where(document.IDIn(docIDs...)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]*ent.Document, len(docs))
	for _, doc := range docs {
		byID[doc.ID] = doc
	}

	anchors, err := b.db.DocAnchor.Query().
		Where(docanchor.DocIDIn(docIDs...)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	mentions, err := b.db.EntityMention.Query().
		Where(entitymention.DocIDIn(docIDs...)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	payload := &DraftPayload{
		Confidence: 0.8,
		Reasons:    map[string][]string{},
	}

	var primary *ent.Document
	var texts []string
	for _, link := range links {
		doc := byID[link.DocID]
		if doc == nil {
			continue
		}
		payload.Sources = append(payload.Sources, SourceRef{
			URL:         doc.URL,
			Title:       doc.Title,
			PublishedAt: doc.PublishedAt,
			SourceID:    link.SourceID,
		})
		payload.Timeline = append(payload.Timeline, TimelineEntry{
			DocID:     doc.ID,
			SeenAt:    link.SeenAt,
			Title:     doc.Title,
			IsPrimary: link.IsPrimary,
		})
		if link.IsPrimary && primary == nil {
			primary = doc
		}
		if len(texts) < maxDraftDocs {
			texts = append(texts, truncate(doc.CleanText, maxDraftDocChars))
		}
	}
	if primary == nil && len(links) > 0 {
		primary = byID[links[0].DocID]
	}
	payload.CleanText = strings.Join(texts, "\n\n")

	for _, a := range anchors {
		payload.Anchors = append(payload.Anchors, AnchorRef{
			Type:  string(a.Type),
			Value: a.Value,
			DocID: a.DocID,
		})
	}

	payload.Title = ev.Summary
	if payload.Title == "" && primary != nil {
		payload.Title = primary.Title
	}
	if payload.Title == "" {
		payload.Title = fmt.Sprintf("Draft Event #%d", ev.ID)
	}

	score, err := b.db.EventScore.Query().
		Where(eventscore.EventID(eventID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, err
	}
	if score != nil {
		payload.EvidenceScore = score.ScoreOceanoAzul
		if score.ReasonsJSON != nil {
			payload.Reasons = score.ReasonsJSON
		}
	}

	payload.FieldConfidence = fieldConfidence(anchors, mentions)
	return payload, nil
}

// fieldConfidence is a conservative per-field estimate: a field backed only
// by regex extraction is marked below 1.0 so the CMS can flag it for review.
func fieldConfidence(anchors []*ent.DocAnchor, mentions []*ent.EntityMention) map[string]float64 {
	hasAnchor := func(t docanchor.Type) bool {
		for _, a := range anchors {
			if a.Type == t {
				return true
			}
		}
		return false
	}
	hasLabel := func(l entitymention.Label) bool {
		for _, m := range mentions {
			if m.Label == l {
				return true
			}
		}
		return false
	}

	fc := map[string]float64{"person": 1.0, "date": 1.0, "value": 1.0, "org": 1.0}
	if hasLabel(entitymention.LabelPER) {
		fc["person"] = 0.75
	}
	if hasAnchor(docanchor.TypeDATA) {
		fc["date"] = 0.85
	}
	if hasAnchor(docanchor.TypeVALOR) {
		fc["value"] = 0.85
	}
	if hasLabel(entitymention.LabelORG) {
		fc["org"] = 0.8
	}
	return fc
}

// truncate cuts s to at most max bytes without splitting a UTF-8 sequence.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && s[cut]&0xC0 == 0x80 {
		cut--
	}
	return s[:cut]
}
