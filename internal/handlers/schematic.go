package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wellsight/wellsight-backend/internal/services"
	"github.com/wellsight/wellsight-backend/internal/types"
)

type SchematicHandler struct {
	schematics *services.WellSchematicService
	barriers   *services.BarrierService
	annulus    *services.AnnulusService
}

func NewSchematicHandler(schematics *services.WellSchematicService, barriers *services.BarrierService, annulus *services.AnnulusService) *SchematicHandler {
	return &SchematicHandler{schematics: schematics, barriers: barriers, annulus: annulus}
}

// GET /api/schematic
func (h *SchematicHandler) GetWellSchematic(c *gin.Context) {
	var q types.SchematicQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	schematic, err := h.schematics.GetWellSchematic(c.Request.Context(), q)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, schematic)
}

// GET /api/schematic/barriers
func (h *SchematicHandler) GetBarriers(c *gin.Context) {
	var q types.SchematicQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	barriers, err := h.schematics.GetBarriers(c.Request.Context(), q)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, barriers)
}

// GET /api/schematic/barrier-diagrams
func (h *SchematicHandler) GetBarrierDiagrams(c *gin.Context) {
	var q types.SchematicQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	diagrams, err := h.schematics.GetBarrierDiagrams(c.Request.Context(), q)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, diagrams)
}

// POST /api/schematic/barriers/modify
func (h *SchematicHandler) ModifyBarriers(c *gin.Context) {
	var req types.BarriersModifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := h.barriers.ModifyBarriers(c.Request.Context(), req); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"status": "ok"})
}

// POST /api/schematic/barriers/evaluate
func (h *SchematicHandler) EvaluateBarriers(c *gin.Context) {
	var req types.BarriersEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := h.barriers.EvaluateBarriers(c.Request.Context(), req); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"status": "ok"})
}

// POST /api/schematic/annulus/evaluate
func (h *SchematicHandler) EvaluateAnnulus(c *gin.Context) {
	var req types.AnnulusEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := h.annulus.Evaluate(c.Request.Context(), req); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"status": "ok"})
}
