package cms

import (
	"context"
	"log/slog"
)

// reviewThreshold marks drafts whose extraction confidence requires manual
// verification before publishing.
const reviewThreshold = 0.7

// Connector pushes Draft-only articles to the newsroom CMS. The transport is
// stubbed behind this type; only the payload contract is load-bearing.
type Connector struct {
	apiURL string
}

// NewConnector creates a CMS connector.
func NewConnector(apiURL string) *Connector {
	if apiURL == "" {
		apiURL = "https://cms.internal/api/v1"
	}
	return &Connector{apiURL: apiURL}
}

// CreateDraft hands one draft to the CMS. Drafts never auto-publish; low
// confidence additionally flags the draft for review.
func (c *Connector) CreateDraft(ctx context.Context, eventID int, payload *DraftPayload) error {
	needsReview := payload.Confidence < reviewThreshold
	slog.Info("Pushing draft to CMS",
		"event_id", eventID,
		"title", payload.Title,
		"sources", len(payload.Sources),
		"anchors", len(payload.Anchors),
		"needs_review", needsReview)
	return nil
}
