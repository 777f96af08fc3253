// Package organize turns extracted items into versioned documents and links
// them to events. Linkage is deferred-merge: a weak match never blocks
// ingestion, it only decides which event absorbs the document.
package organize

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/radarpautas/radar/ent"
	"github.com/radarpautas/radar/ent/docanchor"
	"github.com/radarpautas/radar/ent/document"
	"github.com/radarpautas/radar/ent/entitymention"
	entevent "github.com/radarpautas/radar/ent/event"
	"github.com/radarpautas/radar/ent/eventdoc"
	"github.com/radarpautas/radar/ent/eventstate"
	"github.com/radarpautas/radar/ent/predicate"
	"github.com/radarpautas/radar/pkg/anchors"
	"github.com/radarpautas/radar/pkg/database"
	"github.com/radarpautas/radar/pkg/metrics"
	"github.com/radarpautas/radar/pkg/queue"
	"github.com/radarpautas/radar/pkg/simhash"
	"github.com/radarpautas/radar/pkg/taxonomy"
	"github.com/radarpautas/radar/pkg/yield"
)

const (
	// linkWindow bounds strong-anchor and SimHash linkage lookback.
	linkWindow = 12 * time.Hour

	// Base scores for freshly created events.
	baseScore      = 40.0
	baseScoreTier1 = 75.0

	snippetChars = 500
)

// Service is the organize worker.
type Service struct {
	db     *database.Client
	queues *queue.Queues
	yield  *yield.Monitor
	now    func() time.Time
}

// NewService wires the organizer.
func NewService(db *database.Client, queues *queue.Queues, ym *yield.Monitor) *Service {
	return &Service{db: db, queues: queues, yield: ym, now: time.Now}
}

// Handle organizes one extracted item inside a single transaction. An error
// rolls the whole item back and leaves no partial document behind.
func (s *Service) Handle(ctx context.Context, task queue.OrganizeTask) error {
	p := task.Profile
	log := slog.With("source_id", p.SourceID, "url", task.URL)

	anchorList := anchors.Extract(task.Text)
	features := anchors.Summarize(anchorList, task.Text)

	// Yield accounting happens regardless of dedupe: the fetch produced this
	// many anchors either way.
	s.yield.Record(ctx, p.SourceID, len(anchorList), 200)
	if p.IsOfficial {
		s.yield.CheckStarvation(ctx, p)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to open organize transaction: %w", err)
	}

	eventID, outcome, err := s.organize(ctx, tx, task, anchorList, features)
	if err != nil {
		_ = tx.Rollback()
		metrics.OrganizedDocs.WithLabelValues("error").Inc()
		log.Error("Organize failed, rolled back", "error", err)
		return err
	}
	if err := tx.Commit(); err != nil {
		metrics.OrganizedDocs.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to commit organize transaction: %w", err)
	}

	metrics.OrganizedDocs.WithLabelValues(outcome).Inc()
	if eventID == 0 {
		return nil
	}
	if err := s.queues.Score.Enqueue(ctx, queue.ScoreTask{EventID: eventID, Pool: p.Pool}); err != nil {
		log.Warn("Score task not enqueued", "event_id", eventID, "error", err)
	}
	return nil
}

func (s *Service) organize(ctx context.Context, tx *ent.Tx, task queue.OrganizeTask, anchorList []anchors.Anchor, features anchors.Features) (eventID int, outcome string, err error) {
	p := task.Profile
	now := s.now().UTC()

	prior, err := s.latestVersion(ctx, tx, task)
	if err != nil {
		return 0, "", err
	}
	versionNo := 1
	if prior != nil {
		if prior.ContentHash == task.ContentHash {
			return 0, "dropped_unchanged", nil
		}
		versionNo = prior.VersionNo + 1
	}

	lane := taxonomy.InferLane(taxonomy.LaneHints{
		ExplicitLane: p.Lane,
		Topic:        task.DocMeta.Topic,
		Title:        task.Title,
		Snippet:      snippet(task.Text),
		SourceScope:  p.Scope,
	})

	doc, err := s.insertDocument(ctx, tx, task, lane, versionNo)
	if err != nil {
		return 0, "", err
	}
	if err := s.insertAnchors(ctx, tx, doc.ID, anchorList); err != nil {
		return 0, "", err
	}
	if err := s.insertEvidence(ctx, tx, doc.ID, prior, anchorList, features); err != nil {
		return 0, "", err
	}
	if err := s.insertMentions(ctx, tx, doc.ID, anchorList); err != nil {
		return 0, "", err
	}

	ev, created, err := s.linkEvent(ctx, tx, task, doc, prior, anchorList, now)
	if err != nil {
		return 0, "", err
	}

	err = tx.EventDoc.Create().
		SetEventID(ev.ID).
		SetDocID(doc.ID).
		SetSourceID(p.SourceID).
		SetSeenAt(now).
		SetIsPrimary(created).
		OnConflict().
		DoNothing().
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return 0, "", fmt.Errorf("failed to link document to event: %w", err)
	}

	if _, err := tx.Event.UpdateOneID(ev.ID).SetLastSeenAt(now).Save(ctx); err != nil {
		return 0, "", err
	}

	outcome = "created"
	if versionNo > 1 {
		outcome = "versioned"
	}
	return ev.ID, outcome, nil
}

// latestVersion finds the newest document sharing this item's identity
// (url or canonical_url, on either side).
func (s *Service) latestVersion(ctx context.Context, tx *ent.Tx, task queue.OrganizeTask) (*ent.Document, error) {
	preds := []predicate.Document{
		document.URL(task.URL),
		document.CanonicalURL(task.URL),
	}
	if c := task.DocMeta.CanonicalURL; c != "" && c != task.URL {
		preds = append(preds, document.URL(c), document.CanonicalURL(c))
	}
	prior, err := tx.Document.Query().
		Where(document.Or(preds...)).
		Order(ent.Desc(document.FieldVersionNo), ent.Desc(document.FieldCreatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return prior, nil
}

func (s *Service) insertDocument(ctx context.Context, tx *ent.Tx, task queue.OrganizeTask, lane string, versionNo int) (*ent.Document, error) {
	fingerprint, _ := simhash.Compute(task.Text)

	create := tx.Document.Create().
		SetSourceID(task.Profile.SourceID).
		SetURL(task.URL).
		SetTitle(task.Title).
		SetCleanText(task.Text).
		SetContentHash(task.ContentHash).
		SetSimhash(fingerprint).
		SetVersionNo(versionNo).
		SetLane(lane)
	if task.DocMeta.SnapshotID != 0 {
		create.SetSnapshotID(task.DocMeta.SnapshotID)
	}
	if task.DocMeta.CanonicalURL != "" {
		create.SetCanonicalURL(task.DocMeta.CanonicalURL)
	}
	if task.DocMeta.Author != "" {
		create.SetAuthor(task.DocMeta.Author)
	}
	if task.DocMeta.Lang != "" {
		create.SetLanguage(task.DocMeta.Lang)
	} else {
		create.SetLanguage(task.Profile.Language)
	}
	if task.DocMeta.PublishedAt != nil {
		create.SetPublishedAt(*task.DocMeta.PublishedAt)
	}
	if task.DocMeta.ModifiedAt != nil {
		create.SetModifiedAt(*task.DocMeta.ModifiedAt)
	}
	return create.Save(ctx)
}

func (s *Service) insertAnchors(ctx context.Context, tx *ent.Tx, docID int, list []anchors.Anchor) error {
	if len(list) == 0 {
		return nil
	}
	bulk := make([]*ent.DocAnchorCreate, 0, len(list))
	for _, a := range list {
		bulk = append(bulk, tx.DocAnchor.Create().
			SetDocID(docID).
			SetType(docanchor.Type(a.Type)).
			SetValue(a.Value).
			SetEvidencePtr(a.Ptr))
	}
	_, err := tx.DocAnchor.CreateBulk(bulk...).Save(ctx)
	return err
}

// insertEvidence persists the evidence summary; when a prior version exists
// the anchor-value delta goes into evidence_json.
func (s *Service) insertEvidence(ctx context.Context, tx *ent.Tx, docID int, prior *ent.Document, list []anchors.Anchor, f anchors.Features) error {
	create := tx.DocEvidenceFeature.Create().
		SetDocID(docID).
		SetEvidenceScore(f.EvidenceScore).
		SetHasPdf(f.HasPDF).
		SetHasOfficialDomain(f.HasOfficialDomain).
		SetAnchorsCount(f.AnchorsCount).
		SetMoneyCount(f.MoneyCount).
		SetHasTableLike(f.HasTableLike)

	if prior != nil {
		priorAnchors, err := tx.DocAnchor.Query().
			Where(docanchor.DocID(prior.ID)).
			All(ctx)
		if err != nil {
			return err
		}
		added, removed := anchorDelta(priorAnchors, list)
		create.SetEvidenceJSON(map[string]interface{}{
			"deltas": map[string]interface{}{
				"prior_version": prior.VersionNo,
				"added":         added,
				"removed":       removed,
			},
		})
	}
	_, err := create.Save(ctx)
	return err
}

// anchorDelta diffs normalized anchor values between consecutive versions.
func anchorDelta(prior []*ent.DocAnchor, current []anchors.Anchor) (added, removed []string) {
	prev := make(map[string]struct{}, len(prior))
	for _, a := range prior {
		prev[string(a.Type)+":"+a.Value] = struct{}{}
	}
	cur := make(map[string]struct{}, len(current))
	for _, a := range current {
		key := string(a.Type) + ":" + a.Value
		cur[key] = struct{}{}
		if _, ok := prev[key]; !ok {
			added = append(added, key)
		}
	}
	for key := range prev {
		if _, ok := cur[key]; !ok {
			removed = append(removed, key)
		}
	}
	return added, removed
}

func (s *Service) insertMentions(ctx context.Context, tx *ent.Tx, docID int, list []anchors.Anchor) error {
	seen := make(map[string]struct{})
	var bulk []*ent.EntityMentionCreate
	for _, a := range list {
		label, ok := anchors.EntityLabel(a.Type)
		if !ok {
			continue
		}
		key := string(a.Type) + ":" + a.Value
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		bulk = append(bulk, tx.EntityMention.Create().
			SetDocID(docID).
			SetEntityKey(a.Value).
			SetLabel(entitymention.Label(label)).
			SetSpan(a.Value).
			SetEvidencePtr(a.Ptr))
	}
	if len(bulk) == 0 {
		return nil
	}
	_, err := tx.EntityMention.CreateBulk(bulk...).Save(ctx)
	return err
}

// linkEvent applies the linkage precedence: strong anchor, prior version,
// SimHash neighbor, then a new HYDRATING event.
func (s *Service) linkEvent(ctx context.Context, tx *ent.Tx, task queue.OrganizeTask, doc *ent.Document, prior *ent.Document, anchorList []anchors.Anchor, now time.Time) (*ent.Event, bool, error) {
	cutoff := now.Add(-linkWindow)

	if ev, err := s.linkByStrongAnchor(ctx, tx, doc.ID, anchorList, cutoff); err != nil {
		return nil, false, err
	} else if ev != nil {
		metrics.EventLinks.WithLabelValues("strong_anchor").Inc()
		return ev, false, nil
	}

	if prior != nil {
		if ev, err := s.eventOfDoc(ctx, tx, prior.ID); err != nil {
			return nil, false, err
		} else if ev != nil {
			metrics.EventLinks.WithLabelValues("prior_version").Inc()
			return ev, false, nil
		}
	}

	if doc.Simhash != 0 {
		if ev, err := s.linkBySimhash(ctx, tx, doc, cutoff); err != nil {
			return nil, false, err
		} else if ev != nil {
			metrics.EventLinks.WithLabelValues("simhash").Inc()
			return ev, false, nil
		}
	}

	ev, err := s.createEvent(ctx, tx, task, doc, now)
	if err != nil {
		return nil, false, err
	}
	metrics.EventLinks.WithLabelValues("created").Inc()
	return ev, true, nil
}

func (s *Service) linkByStrongAnchor(ctx context.Context, tx *ent.Tx, docID int, anchorList []anchors.Anchor, cutoff time.Time) (*ent.Event, error) {
	strong := make(map[anchors.Type][]string)
	for _, a := range anchorList {
		for _, t := range anchors.StrongLinkTypes {
			if a.Type == t {
				strong[a.Type] = append(strong[a.Type], a.Value)
			}
		}
	}
	if len(strong) == 0 {
		return nil, nil
	}

	var preds []predicate.DocAnchor
	for typ, values := range strong {
		preds = append(preds, docanchor.And(
			docanchor.TypeEQ(docanchor.Type(typ)),
			docanchor.ValueIn(values...),
		))
	}
	matches, err := tx.DocAnchor.Query().
		Where(docanchor.Or(preds...), docanchor.DocIDNEQ(docID)).
		Select(docanchor.FieldDocID).
		Ints(ctx)
	if err != nil || len(matches) == 0 {
		return nil, err
	}

	link, err := tx.EventDoc.Query().
		Where(eventdoc.DocIDIn(matches...), eventdoc.SeenAtGTE(cutoff)).
		Order(ent.Desc(eventdoc.FieldSeenAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s.resolveEvent(ctx, tx, link.EventID)
}

func (s *Service) eventOfDoc(ctx context.Context, tx *ent.Tx, docID int) (*ent.Event, error) {
	link, err := tx.EventDoc.Query().
		Where(eventdoc.DocID(docID)).
		Order(ent.Desc(eventdoc.FieldSeenAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s.resolveEvent(ctx, tx, link.EventID)
}

func (s *Service) linkBySimhash(ctx context.Context, tx *ent.Tx, doc *ent.Document, cutoff time.Time) (*ent.Event, error) {
	recent, err := tx.Document.Query().
		Where(
			document.CreatedAtGTE(cutoff),
			document.SimhashNEQ(0),
			document.IDNEQ(doc.ID),
		).
		Select(document.FieldID, document.FieldSimhash).
		All(ctx)
	if err != nil {
		return nil, err
	}
	candidates := make([]simhash.Candidate, 0, len(recent))
	for _, d := range recent {
		candidates = append(candidates, simhash.Candidate{DocID: d.ID, Fingerprint: d.Simhash})
	}
	matchID, _, ok := simhash.BestMatch(doc.Simhash, candidates, simhash.DefaultThreshold)
	if !ok {
		return nil, nil
	}
	return s.eventOfDoc(ctx, tx, matchID)
}

func (s *Service) createEvent(ctx context.Context, tx *ent.Tx, task queue.OrganizeTask, doc *ent.Document, now time.Time) (*ent.Event, error) {
	score := baseScore
	if task.Profile.Tier == 1 {
		score = baseScoreTier1
	}
	ev, err := tx.Event.Create().
		SetStatus(entevent.StatusHydrating).
		SetLane(doc.Lane).
		SetScorePlantao(score).
		SetFirstSeenAt(now).
		SetLastSeenAt(now).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	_, err = tx.EventState.Create().
		SetEventID(ev.ID).
		SetStatus(eventstate.StatusHydrating).
		SetStatusReason("EVENT_CREATED").
		Save(ctx)
	if err != nil {
		return nil, err
	}
	metrics.StateTransitions.WithLabelValues(string(entevent.StatusHydrating)).Inc()
	return ev, nil
}

// resolveEvent follows tombstone pointers to the canonical event.
func (s *Service) resolveEvent(ctx context.Context, tx *ent.Tx, eventID int) (*ent.Event, error) {
	for range 10 {
		ev, err := tx.Event.Get(ctx, eventID)
		if err != nil {
			return nil, err
		}
		if ev.CanonicalEventID == nil {
			return ev, nil
		}
		eventID = *ev.CanonicalEventID
	}
	return nil, fmt.Errorf("tombstone chain too deep at event %d", eventID)
}

func snippet(text string) string {
	if len(text) <= snippetChars {
		return text
	}
	cut := snippetChars
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
