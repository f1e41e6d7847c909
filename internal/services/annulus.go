package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/wellsight/wellsight-backend/internal/platform/logger"
	"github.com/wellsight/wellsight-backend/internal/repos"
	"github.com/wellsight/wellsight-backend/internal/types"
)

// AnnulusService owns annulus monitoring state. Elements are
// replace-on-write by (diagram, name), and every write records the
// full MOP/MAWOP/MAASP triple so readers never see a partial update.
type AnnulusService struct {
	db       *gorm.DB
	annulus  repos.AnnulusRepo
	barriers *BarrierService
	log      *logger.Logger
	now      func() time.Time
}

func NewAnnulusService(db *gorm.DB, annulus repos.AnnulusRepo, barriers *BarrierService, baseLog *logger.Logger) *AnnulusService {
	return &AnnulusService{
		db:       db,
		annulus:  annulus,
		barriers: barriers,
		log:      baseLog.With("service", "AnnulusService"),
		now:      time.Now,
	}
}

func (s *AnnulusService) inTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s.db == nil {
		return fn(nil)
	}
	return s.db.WithContext(ctx).Transaction(fn)
}

// Evaluate replaces the named annulus element on the request's diagram
// and records its three operative-condition tests. The prior element
// and its tests are removed in the same transaction.
func (s *AnnulusService) Evaluate(ctx context.Context, req types.AnnulusEvaluationRequest) error {
	q := types.SchematicQuery{
		WellID:        req.WellID,
		WellboreID:    req.WellboreID,
		ScenarioID:    req.ScenarioID,
		SchematicDate: req.SchematicDate,
	}
	testDate := s.now()
	return s.inTx(ctx, func(tx *gorm.DB) error {
		diagram, err := s.barriers.GetOrCreateDiagram(ctx, tx, q)
		if err != nil {
			return err
		}

		prior, err := s.annulus.GetElementByName(ctx, tx, diagram.BarrierDiagramID, req.Annular)
		if err != nil {
			return fmt.Errorf("get annulus element %q: %w", req.Annular, err)
		}
		if prior != nil {
			if err := s.annulus.DeleteTests(ctx, tx, prior.AnnulusElementID); err != nil {
				return fmt.Errorf("delete annulus tests %s: %w", prior.AnnulusElementID, err)
			}
			if err := s.annulus.DeleteElementByName(ctx, tx, diagram.BarrierDiagramID, req.Annular); err != nil {
				return fmt.Errorf("delete annulus element %q: %w", req.Annular, err)
			}
		}

		element := &types.AnnulusElementRow{
			AnnulusElementID: newShortID(),
			WellID:           q.WellID,
			WellboreID:       q.WellboreID,
			ScenarioID:       q.ScenarioID,
			BarrierDiagramID: diagram.BarrierDiagramID,
			Name:             req.Annular,
			Pressure:         req.Pressure,
			Density:          req.Density,
		}
		if err := s.annulus.InsertElement(ctx, tx, element); err != nil {
			return fmt.Errorf("insert annulus element %q: %w", req.Annular, err)
		}

		tests := []struct {
			testType string
			pressure *float64
			location *string
		}{
			{types.AnnulusTestMOP, req.MOP, nil},
			{types.AnnulusTestMAWOP, req.MAWOP, req.MAWOPPoint},
			{types.AnnulusTestMAASP, req.MAASP, req.MAASPPoint},
		}
		for _, t := range tests {
			row := &types.AnnulusTestRow{
				AnnulusTestID:    newShortID(),
				AnnulusElementID: element.AnnulusElementID,
				WellID:           q.WellID,
				WellboreID:       q.WellboreID,
				ScenarioID:       q.ScenarioID,
				BarrierDiagramID: diagram.BarrierDiagramID,
				TestType:         t.testType,
				Pressure:         t.pressure,
				Location:         t.location,
				LastTestDate:     testDate,
				CreateUser:       req.CreateUser,
			}
			if err := s.annulus.InsertTest(ctx, tx, row); err != nil {
				return fmt.Errorf("insert annulus %s test: %w", t.testType, err)
			}
		}
		return nil
	})
}
