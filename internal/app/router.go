package app

import (
	"github.com/gin-gonic/gin"

	"github.com/wellsight/wellsight-backend/internal/server"
)

func wireRouter(cfg Config, h Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		SchematicHandler: h.Schematic,
		AnalysisHandler:  h.Analysis,
		AllowOrigins:     cfg.AllowOrigins,
	})
}
