package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wellsight/wellsight-backend/internal/services"
)

type AnalysisHandler struct {
	svc *services.AnalysisService
}

func NewAnalysisHandler(svc *services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{svc: svc}
}

// GET /api/analysis/reports
func (h *AnalysisHandler) ListReports(c *gin.Context) {
	wellID := c.Query("well_id")
	wellboreID := c.Query("wellbore_id")
	if wellID == "" || wellboreID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "well_id and wellbore_id are required"})
		return
	}
	reports, err := h.svc.ListReports(c.Request.Context(), wellID, wellboreID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"reports": reports})
}

// GET /api/analysis/events
func (h *AnalysisHandler) ListWellEvents(c *gin.Context) {
	wellID := c.Query("well_id")
	if wellID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "well_id is required"})
		return
	}
	events, err := h.svc.ListWellEvents(c.Request.Context(), wellID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"events": events})
}

// GET /api/analysis/well
func (h *AnalysisHandler) GetWell(c *gin.Context) {
	wellID := c.Query("well_id")
	if wellID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "well_id is required"})
		return
	}
	well, err := h.svc.GetWell(c.Request.Context(), wellID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, well)
}

// GET /api/analysis/datums
func (h *AnalysisHandler) ListDatums(c *gin.Context) {
	wellID := c.Query("well_id")
	if wellID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "well_id is required"})
		return
	}
	datums, err := h.svc.ListDatums(c.Request.Context(), wellID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"datums": datums})
}

// GET /api/analysis/attachments
func (h *AnalysisHandler) ListAttachments(c *gin.Context) {
	wellID := c.Query("well_id")
	wellboreID := c.Query("wellbore_id")
	if wellID == "" || wellboreID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "well_id and wellbore_id are required"})
		return
	}
	asOf := time.Now()
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid as_of date"})
			return
		}
		asOf = parsed
	}
	attachments, err := h.svc.ListAttachments(c.Request.Context(), wellID, wellboreID, asOf)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"attachments": attachments})
}
