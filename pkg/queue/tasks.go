// Package queue provides the typed in-process task queues and worker pools
// that connect the pipeline stages.
package queue

import (
	"time"

	"github.com/radarpautas/radar/pkg/config"
)

// FetchTask asks a fetch pool to run one fetch for a source.
type FetchTask struct {
	Profile *config.SourceProfile
	// Attempt counts retries; the fetch worker re-enqueues transport
	// failures up to the retry budget with a fixed back-off.
	Attempt int
}

// FetchMeta carries response context from fetch to extract.
type FetchMeta struct {
	SnapshotID      int
	URL             string
	ResponseHeaders map[string]string
	StatusCode      int
	Pool            config.Pool
}

// ExtractTask carries one snapshot body to an extraction pool.
type ExtractTask struct {
	Profile     *config.SourceProfile
	Body        []byte
	ContentHash string
	// PayloadKind is "text" or "pdf_base64".
	PayloadKind string
	Meta        FetchMeta
}

// DocMeta is the extractor's per-item metadata envelope.
type DocMeta struct {
	SnapshotID   int
	CanonicalURL string
	Author       string
	Lang         string
	PublishedAt  *time.Time
	ModifiedAt   *time.Time
	Topic        string
}

// OrganizeTask carries one normalized item to the organizer.
type OrganizeTask struct {
	Profile     *config.SourceProfile
	Text        string
	ContentHash string
	URL         string
	Title       string
	DocMeta     DocMeta
}

// ScoreTask asks the scoring engine to recompute one event.
type ScoreTask struct {
	EventID int
	// Pool records the pool of the triggering task; the state machine uses
	// it to pick the hydration SLO.
	Pool config.Pool
}

// ScorePayload is the score snapshot handed to the alert worker.
type ScorePayload struct {
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}

// AlertTask asks the alert worker to evaluate a state change.
type AlertTask struct {
	EventID int
	Plantao ScorePayload
	Oceano  ScorePayload
}

// DraftTask asks the best-effort drafting collaborator to enrich an event.
type DraftTask struct {
	EventID int
}
