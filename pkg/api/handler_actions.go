package api

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/radarpautas/radar/ent"
	"github.com/radarpautas/radar/ent/feedbackevent"
	"github.com/radarpautas/radar/pkg/actions"
	"github.com/radarpautas/radar/pkg/cms"
	"github.com/radarpautas/radar/pkg/state"
)

// actionBody is the editorial action request body.
type actionBody struct {
	UserID        string                 `json:"user_id"`
	TargetEventID int                    `json:"target_event_id"`
	DocIDs        []int                  `json:"doc_ids"`
	Metadata      map[string]interface{} `json:"metadata"`
}

// applyAction handles POST /feedback/{event_id}/action?action=…
func (s *Server) applyAction(c *gin.Context) {
	id, ok := eventIDParam(c)
	if !ok {
		return
	}

	rawAction := strings.ToUpper(strings.TrimSpace(c.Query("action")))
	var action feedbackevent.Action
	switch rawAction {
	case "IGNORE":
		action = feedbackevent.ActionIgnore
	case "SNOOZE":
		action = feedbackevent.ActionSnooze
	case "PAUTAR":
		action = feedbackevent.ActionPautar
	case "MERGE":
		action = feedbackevent.ActionMerge
	case "SPLIT":
		action = feedbackevent.ActionSplit
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid editorial action"})
		return
	}

	var body actionBody
	// An empty body is a valid request for IGNORE/SNOOZE/PAUTAR.
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	actor := body.UserID
	if actor == "" {
		actor = "anonymous"
	}

	result, err := s.actions.Apply(c.Request.Context(), actions.Request{
		EventID:       id,
		Action:        action,
		Actor:         actor,
		TargetEventID: body.TargetEventID,
		DocIDs:        body.DocIDs,
	})
	if err != nil {
		var blocked *state.BlockedError
		switch {
		case ent.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		case errors.As(err, &blocked):
			c.JSON(http.StatusConflict, gin.H{
				"error":    "action blocked",
				"code":     blocked.Code,
				"event_id": blocked.EventID,
			})
		case errors.Is(err, actions.ErrBadRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "action failed"})
		}
		return
	}

	response := gin.H{
		"status":        "applied",
		"event_id":      result.EventID,
		"action":        rawAction,
		"state_changed": result.StateChanged,
	}
	if result.CanonicalEventID != 0 {
		response["merge"] = gin.H{"canonical_event_id": result.CanonicalEventID}
	}
	if result.NewEventID != 0 {
		response["split"] = gin.H{"new_event_id": result.NewEventID}
	}
	c.JSON(http.StatusOK, response)
}

// createDraft handles POST /cms/draft/{event_id}.
func (s *Server) createDraft(c *gin.Context) {
	id, ok := eventIDParam(c)
	if !ok {
		return
	}

	payload, err := s.drafts.Build(c.Request.Context(), id)
	if err != nil {
		var tombstone *cms.TombstoneError
		switch {
		case ent.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		case errors.As(err, &tombstone):
			c.JSON(http.StatusConflict, gin.H{
				"error":              "event is a tombstone",
				"canonical_event_id": tombstone.CanonicalEventID,
			})
		case errors.Is(err, cms.ErrNoDocs):
			c.JSON(http.StatusBadRequest, gin.H{"error": "event has no documents"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "draft build failed"})
		}
		return
	}

	status := "draft_created"
	if err := s.connector.CreateDraft(c.Request.Context(), id, payload); err != nil {
		status = "draft_failed"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   status,
		"event_id": id,
		"payload_preview": gin.H{
			"title":         payload.Title,
			"sources_count": len(payload.Sources),
			"anchors_count": len(payload.Anchors),
		},
	})
}
