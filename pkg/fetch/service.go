// Package fetch implements the acquisition stage: URL selection, SSRF guard,
// preflight limits, conditional requests, the per-strategy transports and
// content-addressed snapshot persistence.
package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/radarpautas/radar/ent"
	"github.com/radarpautas/radar/ent/snapshot"
	"github.com/radarpautas/radar/pkg/config"
	"github.com/radarpautas/radar/pkg/database"
	"github.com/radarpautas/radar/pkg/metrics"
	"github.com/radarpautas/radar/pkg/queue"
)

const (
	maxAttempts       = 3
	defaultRetryDelay = 60 * time.Second

	// PayloadKindText and PayloadKindPDF label extract task bodies.
	PayloadKindText = "text"
	PayloadKindPDF  = "pdf_base64"
)

// Service is the fetch worker: one Handle call per queued task.
type Service struct {
	db         *database.Client
	queues     *queue.Queues
	limiter    *Limiter
	guard      *Guard
	httpClient *http.Client
	retryDelay time.Duration
}

// NewService wires the fetch stage.
func NewService(db *database.Client, queues *queue.Queues, limiter *Limiter) *Service {
	guard := NewGuard()
	return &Service{
		db:         db,
		queues:     queues,
		limiter:    limiter,
		guard:      guard,
		httpClient: newHTTPClient(guard),
		retryDelay: defaultRetryDelay,
	}
}

// Handle runs one fetch for the task's source. It never returns transport
// errors to the pool: every outcome is classified and persisted here.
func (s *Service) Handle(ctx context.Context, task queue.FetchTask) error {
	p := task.Profile
	if p == nil || p.SourceID == 0 {
		metrics.FetchErrors.WithLabelValues(ClassMissingSource).Inc()
		slog.Warn("Fetch task without source id, dropping")
		return nil
	}
	log := slog.With("source_id", p.SourceID, "source", p.Name, "strategy", string(p.Strategy))

	rawURL, ok := p.SelectEndpoint()
	if !ok {
		metrics.FetchErrors.WithLabelValues(ClassMissingURL).Inc()
		log.Warn("No endpoint for strategy, skipping fetch")
		return nil
	}
	log = log.With("url", rawURL)

	if err := s.guard.Check(ctx, rawURL); err != nil {
		var blocked *ErrBlockedTarget
		if errors.As(err, &blocked) {
			// Guard blocks leave no trace in the attempts table.
			metrics.FetchAttempts.WithLabelValues(string(p.Strategy), "blocked").Inc()
			log.Warn("Fetch target blocked", "reason", blocked.Reason)
			return nil
		}
		s.finishFailure(ctx, log, p, rawURL, err, 0, task.Attempt)
		return nil
	}

	host := hostOf(rawURL)
	if err := s.limiter.Acquire(ctx, p, host); err != nil {
		class := Classify(err)
		metrics.FetchErrors.WithLabelValues(class).Inc()
		s.recordAttempt(ctx, p, rawURL, 0, &class, 0, 0, nil)
		log.Info("Fetch preflight blocked", "error_class", class)
		return nil
	}
	defer s.limiter.Release(ctx, host)

	cond := s.loadConditional(ctx, rawURL)

	start := time.Now()
	var resp *response
	var err error
	if p.Strategy == config.StrategySPAHeadless {
		resp, err = s.doHeadless(ctx, p, rawURL)
	} else {
		resp, err = s.doHTTP(ctx, p, rawURL, cond)
	}
	if err != nil {
		s.finishFailure(ctx, log, p, rawURL, err, time.Since(start), task.Attempt)
		return nil
	}

	metrics.FetchAttempts.WithLabelValues(string(p.Strategy), statusClass(resp.StatusCode)).Inc()
	metrics.FetchLatency.WithLabelValues(string(p.Pool)).Observe(resp.Latency.Seconds())

	switch {
	case resp.StatusCode == http.StatusNotModified:
		s.recordAttempt(ctx, p, rawURL, resp.StatusCode, nil, resp.Latency, 0, nil)
		s.limiter.RecordSuccess(ctx, p.SourceID)
		log.Debug("Content not modified")
		return nil

	case resp.StatusCode >= 400:
		class := ClassHTTPStatus
		metrics.FetchErrors.WithLabelValues(class).Inc()
		s.recordAttempt(ctx, p, rawURL, resp.StatusCode, &class, resp.Latency, int64(len(resp.Body)), nil)
		s.limiter.RecordFailure(ctx, p.SourceID)
		log.Warn("Fetch returned error status", "status", resp.StatusCode)
		return nil

	default:
		return s.finishSuccess(ctx, log, p, rawURL, resp)
	}
}

func (s *Service) finishSuccess(ctx context.Context, log *slog.Logger, p *config.SourceProfile, rawURL string, resp *response) error {
	payloadKind := PayloadKindText
	if p.Strategy == config.StrategyPDF {
		payloadKind = PayloadKindPDF
	}

	contentHash := sha256Hex(resp.Body)
	snapshotHash := sha256Hex([]byte(rawURL + contentHash))

	snapID, created, err := s.persistSnapshot(ctx, p, rawURL, resp, contentHash, snapshotHash, payloadKind)
	if err != nil {
		log.Error("Snapshot persistence failed", "error", err)
		s.recordAttempt(ctx, p, rawURL, resp.StatusCode, nil, resp.Latency, int64(len(resp.Body)), &snapshotHash)
		return nil
	}

	s.recordAttempt(ctx, p, rawURL, resp.StatusCode, nil, resp.Latency, int64(len(resp.Body)), &snapshotHash)
	s.limiter.RecordSuccess(ctx, p.SourceID)

	if !created {
		log.Debug("Content unchanged, no snapshot")
		return nil
	}
	metrics.SnapshotsCreated.Inc()

	body := resp.Body
	if payloadKind == PayloadKindPDF {
		body = []byte(base64.StdEncoding.EncodeToString(resp.Body))
	}
	task := queue.ExtractTask{
		Profile:     p,
		Body:        body,
		ContentHash: contentHash,
		PayloadKind: payloadKind,
		Meta: queue.FetchMeta{
			SnapshotID:      snapID,
			URL:             rawURL,
			ResponseHeaders: resp.Headers,
			StatusCode:      resp.StatusCode,
			Pool:            p.Pool,
		},
	}
	if err := s.queues.ExtractFor(p.Pool, payloadKind).TryEnqueue(task); err != nil {
		log.Warn("Extract queue full, dropping task", "snapshot_id", snapID)
	}
	return nil
}

// persistSnapshot inserts the snapshot unless the URL's latest capture has
// the same content hash. created reports whether a new row exists.
func (s *Service) persistSnapshot(ctx context.Context, p *config.SourceProfile, rawURL string, resp *response, contentHash, snapshotHash, payloadKind string) (int, bool, error) {
	prev, err := s.db.Snapshot.Query().
		Where(snapshot.URL(rawURL)).
		Order(ent.Desc(snapshot.FieldFetchedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return 0, false, err
	}
	if prev != nil && prev.ContentHash == contentHash {
		return prev.ID, false, nil
	}

	body := resp.Body
	if payloadKind == PayloadKindPDF {
		body = []byte(base64.StdEncoding.EncodeToString(resp.Body))
	}
	snap, err := s.db.Snapshot.Create().
		SetSourceID(p.SourceID).
		SetURL(rawURL).
		SetResponseHeaders(resp.Headers).
		SetBody(body).
		SetContentHash(contentHash).
		SetSnapshotHash(snapshotHash).
		Save(ctx)
	if ent.IsConstraintError(err) {
		// A concurrent worker landed the same (url, content) first.
		existing, qerr := s.db.Snapshot.Query().
			Where(snapshot.SnapshotHash(snapshotHash)).
			Only(ctx)
		if qerr != nil {
			return 0, false, qerr
		}
		return existing.ID, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return snap.ID, true, nil
}

func (s *Service) finishFailure(ctx context.Context, log *slog.Logger, p *config.SourceProfile, rawURL string, err error, latency time.Duration, attempt int) {
	class := Classify(err)
	metrics.FetchAttempts.WithLabelValues(string(p.Strategy), "error").Inc()
	metrics.FetchErrors.WithLabelValues(class).Inc()
	s.recordAttempt(ctx, p, rawURL, 0, &class, latency, 0, nil)
	s.limiter.RecordFailure(ctx, p.SourceID)
	log.Warn("Fetch failed", "error_class", class, "error", err, "attempt", attempt+1)

	if attempt+1 >= maxAttempts || !retryable(class) {
		return
	}
	retryTask := queue.FetchTask{Profile: p, Attempt: attempt + 1}
	q := s.queues.FetchFor(p.Pool)
	time.AfterFunc(s.retryDelay, func() {
		if err := q.TryEnqueue(retryTask); err != nil {
			slog.Warn("Fetch retry dropped, queue full", "source_id", p.SourceID)
		}
	})
}

func retryable(class string) bool {
	switch class {
	case ClassTimeout, ClassDNS, ClassConnect, ClassTLS:
		return true
	}
	return false
}

func (s *Service) recordAttempt(ctx context.Context, p *config.SourceProfile, rawURL string, status int, errClass *string, latency time.Duration, bytes int64, snapshotHash *string) {
	create := s.db.FetchAttempt.Create().
		SetSourceID(p.SourceID).
		SetURL(rawURL).
		SetStatusCode(status).
		SetLatencyMs(latency.Milliseconds()).
		SetBytes(bytes).
		SetPool(string(p.Pool)).
		SetNillableErrorClass(errClass).
		SetNillableSnapshotHash(snapshotHash)
	if _, err := create.Save(ctx); err != nil {
		slog.Error("Failed to record fetch attempt", "source_id", p.SourceID, "error", err)
	}
}

// loadConditional reads validators from the latest snapshot of the URL.
func (s *Service) loadConditional(ctx context.Context, rawURL string) conditional {
	prev, err := s.db.Snapshot.Query().
		Where(snapshot.URL(rawURL)).
		Order(ent.Desc(snapshot.FieldFetchedAt)).
		First(ctx)
	if err != nil {
		return conditional{}
	}
	return conditional{
		ETag:         prev.ResponseHeaders["Etag"],
		LastModified: prev.ResponseHeaders["Last-Modified"],
	}
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Hostname()
}

func statusClass(status int) string {
	if status < 100 || status > 599 {
		return "error"
	}
	return fmt.Sprintf("%dxx", status/100)
}

func sha256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
