package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/radarpautas/radar/ent/document"
	entevent "github.com/radarpautas/radar/ent/event"
	"github.com/radarpautas/radar/ent/source"
)

// dashboardStats serves the aggregate counters behind the control panel.
func (s *Server) dashboardStats(c *gin.Context) {
	ctx := c.Request.Context()

	sourcesTotal, err := s.db.Source.Query().Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	sourcesEnabled, err := s.db.Source.Query().
		Where(source.Enabled(true)).
		Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}

	byStatus := gin.H{}
	for _, status := range []entevent.Status{
		entevent.StatusNew, entevent.StatusHydrating, entevent.StatusPartialEnrich,
		entevent.StatusFailedEnrich, entevent.StatusQuarantine, entevent.StatusHot,
		entevent.StatusMerged, entevent.StatusIgnored, entevent.StatusExpired,
	} {
		n, err := s.db.Event.Query().
			Where(entevent.StatusEQ(status)).
			Count(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
			return
		}
		byStatus[string(status)] = n
	}

	docsTotal, err := s.db.Document.Query().Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	docsLastHour, err := s.db.Document.Query().
		Where(document.CreatedAtGTE(time.Now().UTC().Add(-time.Hour))).
		Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sources": gin.H{
			"total":   sourcesTotal,
			"enabled": sourcesEnabled,
		},
		"events_by_status": byStatus,
		"documents": gin.H{
			"total":     docsTotal,
			"last_hour": docsLastHour,
		},
		"queue_depths": s.queues.Depths(),
	})
}
