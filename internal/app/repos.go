package app

import (
	"gorm.io/gorm"

	"github.com/wellsight/wellsight-backend/internal/platform/logger"
	"github.com/wellsight/wellsight-backend/internal/repos"
)

type Repos struct {
	Wellbore  repos.WellboreRepo
	Tubular   repos.TubularRepo
	Wellhead  repos.WellheadRepo
	Reference repos.ReferenceRepo
	Barrier   repos.BarrierRepo
	Annulus   repos.AnnulusRepo
	Analysis  repos.AnalysisRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Wellbore:  repos.NewWellboreRepo(db, log),
		Tubular:   repos.NewTubularRepo(db, log),
		Wellhead:  repos.NewWellheadRepo(db, log),
		Reference: repos.NewReferenceRepo(db, log),
		Barrier:   repos.NewBarrierRepo(db, log),
		Annulus:   repos.NewAnnulusRepo(db, log),
		Analysis:  repos.NewAnalysisRepo(db, log),
	}
}
