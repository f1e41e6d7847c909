package app

import (
	"github.com/wellsight/wellsight-backend/internal/handlers"
	"github.com/wellsight/wellsight-backend/internal/platform/logger"
)

type Handlers struct {
	Schematic *handlers.SchematicHandler
	Analysis  *handlers.AnalysisHandler
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Schematic: handlers.NewSchematicHandler(s.Schematic, s.Barrier, s.Annulus),
		Analysis:  handlers.NewAnalysisHandler(s.Analysis),
	}
}
