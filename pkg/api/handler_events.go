package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/radarpautas/radar/ent"
	"github.com/radarpautas/radar/ent/docanchor"
	"github.com/radarpautas/radar/ent/document"
	"github.com/radarpautas/radar/ent/entitymention"
	entevent "github.com/radarpautas/radar/ent/event"
	"github.com/radarpautas/radar/ent/eventdoc"
	"github.com/radarpautas/radar/ent/eventscore"
	"github.com/radarpautas/radar/ent/eventstate"
	"github.com/radarpautas/radar/ent/feedbackevent"
	"github.com/radarpautas/radar/ent/mergeaudit"
	"github.com/radarpautas/radar/ent/predicate"
)

const (
	defaultFeedLimit = 20
	maxFeedLimit     = 100
	maxHistoryLimit  = 500
)

func limitParam(c *gin.Context, def, max int) int {
	n, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(def)))
	if err != nil || n < 1 {
		return def
	}
	if n > max {
		return max
	}
	return n
}

func eventIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return 0, false
	}
	return id, true
}

// listEvents serves the plantao feed: canonical events ordered by
// score_plantao, with per-event anchors and doc/source counts.
func (s *Server) listEvents(c *gin.Context) {
	ctx := c.Request.Context()
	limit := limitParam(c, defaultFeedLimit, maxFeedLimit)

	preds := []predicate.Event{entevent.CanonicalEventIDIsNil()}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		preds = append(preds, entevent.StatusEQ(entevent.Status(status)))
	} else {
		preds = append(preds, entevent.StatusNotIn(entevent.StatusIgnored, entevent.StatusExpired))
	}
	if lane := strings.TrimSpace(c.Query("lane")); lane != "" {
		preds = append(preds, entevent.Lane(lane))
	}

	events, err := s.db.Event.Query().
		Where(preds...).
		Order(ent.Desc(entevent.FieldScorePlantao), ent.Desc(entevent.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}

	payload := make([]gin.H, 0, len(events))
	for _, ev := range events {
		item, err := s.feedItem(c, ev)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
			return
		}
		payload = append(payload, item)
	}
	c.JSON(http.StatusOK, payload)
}

func (s *Server) feedItem(c *gin.Context, ev *ent.Event) (gin.H, error) {
	ctx := c.Request.Context()

	links, err := s.db.EventDoc.Query().
		Where(eventdoc.EventID(ev.ID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	docIDs := make([]int, 0, len(links))
	sources := make(map[int]struct{})
	for _, link := range links {
		docIDs = append(docIDs, link.DocID)
		sources[link.SourceID] = struct{}{}
	}

	anchors := []gin.H{}
	if len(docIDs) > 0 {
		rows, err := s.db.DocAnchor.Query().
			Where(docanchor.DocIDIn(docIDs...)).
			All(ctx)
		if err != nil {
			return nil, err
		}
		seen := make(map[string]struct{})
		for _, a := range rows {
			key := string(a.Type) + ":" + a.Value
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			anchors = append(anchors, gin.H{"type": a.Type, "value": a.Value})
		}
	}

	score, err := s.db.EventScore.Query().
		Where(eventscore.EventID(ev.ID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, err
	}

	item := gin.H{
		"id":           ev.ID,
		"status":       ev.Status,
		"summary":      ev.Summary,
		"score":        ev.ScorePlantao,
		"lane":         ev.Lane,
		"created_at":   ev.CreatedAt,
		"last_seen_at": ev.LastSeenAt,
		"flags_json":   ev.FlagsJSON,
		"anchors":      anchors,
		"doc_count":    len(docIDs),
		"source_count": len(sources),
	}
	if score != nil {
		item["score_oceano_azul"] = score.ScoreOceanoAzul
		item["reasons_json"] = score.ReasonsJSON
	}
	return item, nil
}

// listOceanoAzul serves the blue-ocean ranking.
func (s *Server) listOceanoAzul(c *gin.Context) {
	ctx := c.Request.Context()
	limit := limitParam(c, defaultFeedLimit, maxFeedLimit)
	minScore, _ := strconv.ParseFloat(c.DefaultQuery("min_score", "0"), 64)

	scores, err := s.db.EventScore.Query().
		Where(eventscore.ScoreOceanoAzulGTE(minScore)).
		Order(ent.Desc(eventscore.FieldScoreOceanoAzul)).
		Limit(limit * 2).
		All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}

	payload := make([]gin.H, 0, limit)
	for _, score := range scores {
		if len(payload) == limit {
			break
		}
		ev, err := s.db.Event.Get(ctx, score.EventID)
		if ent.IsNotFound(err) {
			continue
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
			return
		}
		if ev.CanonicalEventID != nil ||
			ev.Status == entevent.StatusIgnored ||
			ev.Status == entevent.StatusExpired {
			continue
		}
		payload = append(payload, gin.H{
			"id":                ev.ID,
			"status":            ev.Status,
			"summary":           ev.Summary,
			"lane":              ev.Lane,
			"score_oceano_azul": score.ScoreOceanoAzul,
			"score_plantao":     score.ScorePlantao,
			"reasons_json":      score.ReasonsJSON,
			"flags_json":        ev.FlagsJSON,
			"updated_at":        ev.UpdatedAt,
		})
	}
	c.JSON(http.StatusOK, payload)
}

// eventDetail serves the full event view, or a tombstone redirect hint.
func (s *Server) eventDetail(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := eventIDParam(c)
	if !ok {
		return
	}

	ev, err := s.db.Event.Get(ctx, id)
	if ent.IsNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}

	if ev.CanonicalEventID != nil {
		body := gin.H{
			"id":                 ev.ID,
			"status":             ev.Status,
			"tombstone":          true,
			"canonical_event_id": *ev.CanonicalEventID,
			"redirect_hint":      "/api/events/" + strconv.Itoa(*ev.CanonicalEventID),
		}
		if canonical, err := s.db.Event.Get(ctx, *ev.CanonicalEventID); err == nil {
			body["canonical_event"] = gin.H{
				"id":            canonical.ID,
				"status":        canonical.Status,
				"summary":       canonical.Summary,
				"lane":          canonical.Lane,
				"score_plantao": canonical.ScorePlantao,
			}
		}
		c.JSON(http.StatusOK, body)
		return
	}

	links, err := s.db.EventDoc.Query().
		Where(eventdoc.EventID(id)).
		Order(ent.Desc(eventdoc.FieldSeenAt)).
		All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	docIDs := make([]int, 0, len(links))
	for _, link := range links {
		docIDs = append(docIDs, link.DocID)
	}

	var docs []*ent.Document
	var anchors []*ent.DocAnchor
	var mentions []*ent.EntityMention
	if len(docIDs) > 0 {
		if docs, err = s.db.Document.Query().Where(document.IDIn(docIDs...)).All(ctx); err == nil {
			if anchors, err = s.db.DocAnchor.Query().Where(docanchor.DocIDIn(docIDs...)).All(ctx); err == nil {
				mentions, err = s.db.EntityMention.Query().Where(entitymention.DocIDIn(docIDs...)).All(ctx)
			}
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
			return
		}
	}
	docByID := make(map[int]*ent.Document, len(docs))
	for _, doc := range docs {
		docByID[doc.ID] = doc
	}

	score, err := s.db.EventScore.Query().
		Where(eventscore.EventID(id)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}

	docsPayload := make([]gin.H, 0, len(links))
	for _, link := range links {
		doc := docByID[link.DocID]
		if doc == nil {
			continue
		}
		docsPayload = append(docsPayload, gin.H{
			"doc_id":        doc.ID,
			"url":           doc.URL,
			"canonical_url": doc.CanonicalURL,
			"title":         doc.Title,
			"author":        doc.Author,
			"published_at":  doc.PublishedAt,
			"modified_at":   doc.ModifiedAt,
			"lang":          doc.Language,
			"snapshot_id":   doc.SnapshotID,
			"version_no":    doc.VersionNo,
			"seen_at":       link.SeenAt,
			"is_primary":    link.IsPrimary,
		})
	}

	anchorsPayload := make([]gin.H, 0, len(anchors))
	for _, a := range anchors {
		anchorsPayload = append(anchorsPayload, gin.H{
			"type":   a.Type,
			"value":  a.Value,
			"doc_id": a.DocID,
		})
	}
	mentionsPayload := make([]gin.H, 0, len(mentions))
	for _, m := range mentions {
		mentionsPayload = append(mentionsPayload, gin.H{
			"doc_id":     m.DocID,
			"entity_key": m.EntityKey,
			"label":      m.Label,
			"confidence": m.Confidence,
		})
	}

	body := gin.H{
		"event": gin.H{
			"id":            ev.ID,
			"status":        ev.Status,
			"summary":       ev.Summary,
			"lane":          ev.Lane,
			"flags_json":    ev.FlagsJSON,
			"first_seen_at": ev.FirstSeenAt,
			"last_seen_at":  ev.LastSeenAt,
			"score_plantao": ev.ScorePlantao,
		},
		"docs":            docsPayload,
		"anchors":         anchorsPayload,
		"entity_mentions": mentionsPayload,
		"deltas":          docPairDeltas(links, anchors, mentions),
	}
	scores := gin.H{"score_plantao": nil, "score_oceano_azul": nil, "reasons_json": nil}
	if score != nil {
		scores = gin.H{
			"score_plantao":     score.ScorePlantao,
			"score_oceano_azul": score.ScoreOceanoAzul,
			"reasons_json":      score.ReasonsJSON,
		}
	}
	body["scores"] = scores
	c.JSON(http.StatusOK, body)
}

// stateHistory serves the append-only status history, newest first.
func (s *Server) stateHistory(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := eventIDParam(c)
	if !ok {
		return
	}
	if !s.eventExists(c, id) {
		return
	}
	limit := limitParam(c, 100, maxHistoryLimit)

	rows, err := s.db.EventState.Query().
		Where(eventstate.EventID(id)).
		Order(ent.Desc(eventstate.FieldUpdatedAt), ent.Desc(eventstate.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}

	items := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		items = append(items, gin.H{
			"id":            row.ID,
			"status":        row.Status,
			"status_reason": row.StatusReason,
			"updated_at":    row.UpdatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"event_id": id, "items": items})
}

// mergeAudit serves the merge rows where the event appears on either side.
func (s *Server) mergeAudit(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := eventIDParam(c)
	if !ok {
		return
	}
	if !s.eventExists(c, id) {
		return
	}
	limit := limitParam(c, 100, maxHistoryLimit)

	rows, err := s.db.MergeAudit.Query().
		Where(mergeaudit.Or(
			mergeaudit.FromEventID(id),
			mergeaudit.ToEventID(id),
		)).
		Order(ent.Desc(mergeaudit.FieldCreatedAt), ent.Desc(mergeaudit.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}

	items := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		items = append(items, gin.H{
			"id":            row.ID,
			"from_event_id": row.FromEventID,
			"to_event_id":   row.ToEventID,
			"reason_code":   row.ReasonCode,
			"evidence_json": row.EvidenceJSON,
			"created_at":    row.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"event_id": id, "items": items})
}

// feedbackHistory serves the editorial action log of one event.
func (s *Server) feedbackHistory(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := eventIDParam(c)
	if !ok {
		return
	}
	if !s.eventExists(c, id) {
		return
	}
	limit := limitParam(c, 100, maxHistoryLimit)

	rows, err := s.db.FeedbackEvent.Query().
		Where(feedbackevent.EventID(id)).
		Order(ent.Desc(feedbackevent.FieldCreatedAt), ent.Desc(feedbackevent.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}

	items := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		items = append(items, gin.H{
			"id":           row.ID,
			"action":       row.Action,
			"actor":        row.Actor,
			"payload_json": row.PayloadJSON,
			"created_at":   row.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"event_id": id, "items": items})
}

func (s *Server) eventExists(c *gin.Context, id int) bool {
	exists, err := s.db.Event.Query().
		Where(entevent.ID(id)).
		Exist(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return false
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return false
	}
	return true
}

// docPairDeltas reports what changed between the two most recent documents of
// an event: anchor set and entity set differences.
func docPairDeltas(links []*ent.EventDoc, anchors []*ent.DocAnchor, mentions []*ent.EntityMention) gin.H {
	if len(links) < 2 {
		return nil
	}
	// links are ordered seen_at desc.
	latestID, prevID := links[0].DocID, links[1].DocID

	anchorsOf := func(docID int) map[string]struct{} {
		set := make(map[string]struct{})
		for _, a := range anchors {
			if a.DocID == docID {
				set[string(a.Type)+":"+a.Value] = struct{}{}
			}
		}
		return set
	}
	entitiesOf := func(docID int) map[string]struct{} {
		set := make(map[string]struct{})
		for _, m := range mentions {
			if m.DocID == docID {
				set[m.EntityKey] = struct{}{}
			}
		}
		return set
	}

	diff := func(old, cur map[string]struct{}) ([]string, []string) {
		var added, removed []string
		for k := range cur {
			if _, ok := old[k]; !ok {
				added = append(added, k)
			}
		}
		for k := range old {
			if _, ok := cur[k]; !ok {
				removed = append(removed, k)
			}
		}
		return added, removed
	}

	anchorsAdded, anchorsRemoved := diff(anchorsOf(prevID), anchorsOf(latestID))
	entitiesAdded, entitiesRemoved := diff(entitiesOf(prevID), entitiesOf(latestID))

	return gin.H{
		"anchors":   gin.H{"added": anchorsAdded, "removed": anchorsRemoved},
		"entities":  gin.H{"added": entitiesAdded, "removed": entitiesRemoved},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
}
