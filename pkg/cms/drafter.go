package cms

import (
	"context"
	"errors"
	"log/slog"

	"github.com/radarpautas/radar/ent"
	"github.com/radarpautas/radar/pkg/database"
	"github.com/radarpautas/radar/pkg/queue"
)

// Drafter is the best-effort drafting consumer: it assembles the draft for a
// hot event and pushes it to the CMS. Failures are logged and dropped; the
// pipeline never blocks on this collaborator.
type Drafter struct {
	builder   *Builder
	connector *Connector
}

// NewDrafter wires the drafting consumer.
func NewDrafter(db *database.Client, connector *Connector) *Drafter {
	return &Drafter{builder: NewBuilder(db), connector: connector}
}

// Handle processes one draft task.
func (d *Drafter) Handle(ctx context.Context, task queue.DraftTask) error {
	payload, err := d.builder.Build(ctx, task.EventID)
	if err != nil {
		var tombstone *TombstoneError
		switch {
		case ent.IsNotFound(err), errors.Is(err, ErrNoDocs), errors.As(err, &tombstone):
			slog.Info("Draft skipped", "event_id", task.EventID, "why", err)
			return nil
		}
		return err
	}
	if err := d.connector.CreateDraft(ctx, task.EventID, payload); err != nil {
		slog.Warn("CMS draft push failed", "event_id", task.EventID, "error", err)
	}
	return nil
}
