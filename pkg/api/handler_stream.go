package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// streamEvents handles GET /events/stream: a text/event-stream of named
// EVENT_UPSERT, EVENT_STATE_CHANGED, EVENT_MERGED and ping frames.
func (s *Server) streamEvents(c *gin.Context) {
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	clientID := uuid.NewString()
	log := slog.With("client_id", clientID, "remote", c.ClientIP())
	log.Info("Stream client connected")
	defer log.Info("Stream client disconnected")

	header := c.Writer.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
	flusher.Flush()

	frames, cancel := s.broadcaster.Subscribe()
	defer cancel()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case frame, open := <-frames:
			if !open {
				return
			}
			data, err := json.Marshal(frame.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", frame.Type, data)
			flusher.Flush()
		}
	}
}
