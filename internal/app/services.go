package app

import (
	"gorm.io/gorm"

	"github.com/wellsight/wellsight-backend/internal/platform/logger"
	"github.com/wellsight/wellsight-backend/internal/services"
)

type Services struct {
	Helper    *services.SchematicHelper
	Schematic *services.WellSchematicService
	Barrier   *services.BarrierService
	Annulus   *services.AnnulusService
	Analysis  *services.AnalysisService
}

func wireServices(db *gorm.DB, log *logger.Logger, r Repos) Services {
	log.Info("Wiring services...")
	helper := services.NewSchematicHelper(r.Wellbore, r.Barrier, log)
	actual := services.NewActualSchematicProvider(helper, r.Wellbore, r.Tubular, r.Wellhead, r.Reference, r.Barrier, r.Annulus, log)
	design := services.NewDesignSchematicProvider(log)
	barrier := services.NewBarrierService(db, r.Barrier, log)
	return Services{
		Helper:    helper,
		Schematic: services.NewWellSchematicService(helper, r.Barrier, actual, design, log),
		Barrier:   barrier,
		Annulus:   services.NewAnnulusService(db, r.Annulus, barrier, log),
		Analysis:  services.NewAnalysisService(r.Analysis, log),
	}
}
