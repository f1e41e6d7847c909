package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/wellsight/wellsight-backend/internal/handlers"
)

type RouterConfig struct {
	SchematicHandler *handlers.SchematicHandler
	AnalysisHandler  *handlers.AnalysisHandler
	AllowOrigins     []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		schematic := api.Group("/schematic")
		schematic.GET("", cfg.SchematicHandler.GetWellSchematic)
		schematic.GET("/barriers", cfg.SchematicHandler.GetBarriers)
		schematic.GET("/barrier-diagrams", cfg.SchematicHandler.GetBarrierDiagrams)
		schematic.POST("/barriers/modify", cfg.SchematicHandler.ModifyBarriers)
		schematic.POST("/barriers/evaluate", cfg.SchematicHandler.EvaluateBarriers)
		schematic.POST("/annulus/evaluate", cfg.SchematicHandler.EvaluateAnnulus)

		analysis := api.Group("/analysis")
		analysis.GET("/reports", cfg.AnalysisHandler.ListReports)
		analysis.GET("/events", cfg.AnalysisHandler.ListWellEvents)
		analysis.GET("/well", cfg.AnalysisHandler.GetWell)
		analysis.GET("/datums", cfg.AnalysisHandler.ListDatums)
		analysis.GET("/attachments", cfg.AnalysisHandler.ListAttachments)
	}

	return router
}
