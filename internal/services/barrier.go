package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wellsight/wellsight-backend/internal/domain/refid"
	"github.com/wellsight/wellsight-backend/internal/platform/logger"
	"github.com/wellsight/wellsight-backend/internal/repos"
	"github.com/wellsight/wellsight-backend/internal/types"
)

// Element types accepted by the toggle endpoint. Each maps the parsed
// ref id's leaf onto exactly one sub-id column of the element row.
const (
	ElementWellheadComp   = "WELLHEAD_COMP"
	ElementWellheadOutlet = "WELLHEAD_OUTLET"
	ElementWellheadHanger = "WELLHEAD_HANGER"
	ElementFormation      = "FORMATION"
	ElementCasing         = "CASING"
	ElementAssemblyComp   = "ASSEMBLY_COMP"
	ElementCement         = "CEMENT"
	ElementFluid          = "FLUID"
)

// newShortID mints the 20-char ids the overlay tables use.
func newShortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:20]
}

// BarrierService owns the barrier overlay write path: diagram and
// envelope get-or-create, element toggles and bulk evaluation.
type BarrierService struct {
	db       *gorm.DB
	barriers repos.BarrierRepo
	log      *logger.Logger
	now      func() time.Time
}

func NewBarrierService(db *gorm.DB, barriers repos.BarrierRepo, baseLog *logger.Logger) *BarrierService {
	return &BarrierService{
		db:       db,
		barriers: barriers,
		log:      baseLog.With("service", "BarrierService"),
		now:      time.Now,
	}
}

func (s *BarrierService) inTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s.db == nil {
		return fn(nil)
	}
	return s.db.WithContext(ctx).Transaction(fn)
}

// GetOrCreateDiagram resolves the diagram for a natural key, creating
// it on first touch. Insert races resolve through the unique index:
// the loser re-reads the winner's row.
func (s *BarrierService) GetOrCreateDiagram(ctx context.Context, tx *gorm.DB, q types.SchematicQuery) (*types.BarrierDiagramRow, error) {
	diagram, err := s.barriers.GetDiagram(ctx, tx, q)
	if err != nil {
		return nil, fmt.Errorf("get diagram: %w", err)
	}
	if diagram != nil {
		return diagram, nil
	}
	diagram = &types.BarrierDiagramRow{
		BarrierDiagramID: newShortID(),
		WellID:           q.WellID,
		WellboreID:       q.WellboreID,
		ScenarioID:       q.ScenarioID,
		DiagramDate:      q.SchematicDate,
	}
	if err := s.barriers.InsertDiagram(ctx, tx, diagram); err != nil {
		existing, gerr := s.barriers.GetDiagram(ctx, tx, q)
		if gerr == nil && existing != nil {
			return existing, nil
		}
		return nil, fmt.Errorf("insert diagram: %w", err)
	}
	return diagram, nil
}

func (s *BarrierService) getOrCreateEnvelope(ctx context.Context, tx *gorm.DB, q types.SchematicQuery, diagramID, name string) (*types.BarrierEnvelopeRow, error) {
	envelope, err := s.barriers.GetEnvelope(ctx, tx, diagramID, name)
	if err != nil {
		return nil, fmt.Errorf("get envelope %q: %w", name, err)
	}
	if envelope != nil {
		return envelope, nil
	}
	envelope = &types.BarrierEnvelopeRow{
		BarrierEnvelopeID: newShortID(),
		BarrierDiagramID:  diagramID,
		WellID:            q.WellID,
		WellboreID:        q.WellboreID,
		ScenarioID:        q.ScenarioID,
		Name:              name,
	}
	if err := s.barriers.InsertEnvelope(ctx, tx, envelope); err != nil {
		existing, gerr := s.barriers.GetEnvelope(ctx, tx, diagramID, name)
		if gerr == nil && existing != nil {
			return existing, nil
		}
		return nil, fmt.Errorf("insert envelope %q: %w", name, err)
	}
	return envelope, nil
}

// ModifyBarriers toggles element membership per tuple: an existing
// element is deleted, a missing one is inserted. Running the same
// batch twice lands back where it started.
func (s *BarrierService) ModifyBarriers(ctx context.Context, req types.BarriersModifyRequest) error {
	q := types.SchematicQuery{
		WellID:        req.WellID,
		WellboreID:    req.WellboreID,
		ScenarioID:    req.ScenarioID,
		SchematicDate: req.SchematicDate,
	}
	return s.inTx(ctx, func(tx *gorm.DB) error {
		diagram, err := s.GetOrCreateDiagram(ctx, tx, q)
		if err != nil {
			return err
		}
		for _, toggle := range req.BarrierModifyData {
			envelope, err := s.getOrCreateEnvelope(ctx, tx, q, diagram.BarrierDiagramID, toggle.Barrier)
			if err != nil {
				return err
			}
			existing, err := s.barriers.GetElement(ctx, tx, toggle.EventRefID, envelope.BarrierEnvelopeID, diagram.BarrierDiagramID, q)
			if err != nil {
				return fmt.Errorf("get element %s: %w", toggle.EventRefID, err)
			}
			if existing != nil {
				if err := s.barriers.DeleteElement(ctx, tx, existing.BarrierElementID); err != nil {
					return fmt.Errorf("delete element %s: %w", existing.BarrierElementID, err)
				}
				continue
			}
			row, err := s.newElementRow(q, diagram.BarrierDiagramID, envelope.BarrierEnvelopeID, toggle)
			if err != nil {
				return err
			}
			if err := s.barriers.InsertElement(ctx, tx, row); err != nil {
				return fmt.Errorf("insert element %s: %w", toggle.EventRefID, err)
			}
		}
		return nil
	})
}

// newElementRow parses the toggle's compound ref id and populates only
// the sub-id columns that belong to the element type. A ref that does
// not carry the segments its type requires is rejected, such a row
// could never be matched back to its physical element.
func (s *BarrierService) newElementRow(q types.SchematicQuery, diagramID, envelopeID string, toggle types.BarrierToggle) (*types.BarrierElementRow, error) {
	ref, err := refid.Parse(toggle.EventRefID)
	if err != nil {
		return nil, err
	}
	leaf, err := ref.Last()
	if err != nil {
		return nil, err
	}

	row := &types.BarrierElementRow{
		BarrierElementID:  newShortID(),
		BarrierEnvelopeID: envelopeID,
		BarrierDiagramID:  diagramID,
		WellID:            q.WellID,
		WellboreID:        q.WellboreID,
		ScenarioID:        q.ScenarioID,
		RefID:             toggle.EventRefID,
		ElementType:       toggle.ElementType,
		TopDepth:          toggle.Top,
		BaseDepth:         toggle.Base,
	}

	switch toggle.ElementType {
	case ElementWellheadComp:
		row.WellheadCompID = &leaf
	case ElementWellheadOutlet:
		row.WellheadOutletID = &leaf
	case ElementWellheadHanger:
		row.WellheadHangerID = &leaf
	case ElementFormation:
		row.WellboreFormationID = &leaf
	case ElementCasing, ElementAssemblyComp:
		assemblyID, err := ref.Segment(2)
		if err != nil {
			return nil, err
		}
		row.AssemblyID = &assemblyID
		row.AssemblyCompID = &leaf
	case ElementCement:
		jobID, err := ref.SecondToLast()
		if err != nil {
			return nil, err
		}
		row.CementJobID = &jobID
		row.CementStageID = &leaf
	case ElementFluid:
		row.CompletionFluidID = &leaf
	default:
		return nil, fmt.Errorf("unknown barrier element type %q", toggle.ElementType)
	}
	return row, nil
}

// EvaluateBarriers replaces the test state of every envelope touched
// by the request: per envelope, prior test and link rows are deleted,
// one fresh envelope test is inserted with the voted status, and one
// link row per element evaluation is attached. Audit copies are best
// effort, a failed audit insert is logged and the evaluation stands.
func (s *BarrierService) EvaluateBarriers(ctx context.Context, req types.BarriersEvaluationRequest) error {
	byEnvelope := make(map[string][]types.BarrierElementEvaluation)
	var order []string
	for _, ev := range req.Evaluations {
		if _, ok := byEnvelope[ev.BarrierEnvelopeID]; !ok {
			order = append(order, ev.BarrierEnvelopeID)
		}
		byEnvelope[ev.BarrierEnvelopeID] = append(byEnvelope[ev.BarrierEnvelopeID], ev)
	}

	testDate := s.now()
	return s.inTx(ctx, func(tx *gorm.DB) error {
		for _, envelopeID := range order {
			evaluations := byEnvelope[envelopeID]
			diagramID := evaluations[0].BarrierDiagramID
			scenarioID := evaluations[0].ScenarioID

			if err := s.barriers.DeleteEnvelopeTests(ctx, tx, envelopeID, diagramID); err != nil {
				return fmt.Errorf("delete envelope tests %s: %w", envelopeID, err)
			}
			if err := s.barriers.DeleteElementTestLinks(ctx, tx, envelopeID, diagramID); err != nil {
				return fmt.Errorf("delete element test links %s: %w", envelopeID, err)
			}

			statuses := make([]*string, 0, len(evaluations))
			for _, ev := range evaluations {
				statuses = append(statuses, ev.Status)
			}
			test := &types.EnvelopeTestRow{
				BarrierEnvelopeTestID: newShortID(),
				BarrierEnvelopeID:     envelopeID,
				BarrierDiagramID:      diagramID,
				WellID:                req.WellID,
				WellboreID:            req.WellboreID,
				ScenarioID:            scenarioID,
				Status:                AggregateEnvelopeStatus(statuses),
				LastTestDate:          testDate,
				CreateUser:            evaluations[0].CreateUser,
			}
			if err := s.barriers.InsertEnvelopeTest(ctx, tx, test); err != nil {
				return fmt.Errorf("insert envelope test %s: %w", envelopeID, err)
			}
			if err := s.barriers.InsertEnvelopeTestAudit(ctx, tx, test); err != nil {
				s.log.Warn("envelope test audit insert failed", "barrier_envelope_id", envelopeID, "error", err)
			}

			for _, ev := range evaluations {
				link := &types.ElementTestLinkRow{
					BarrierElementTestID:  newShortID(),
					BarrierEnvelopeTestID: test.BarrierEnvelopeTestID,
					BarrierElementID:      ev.BarrierElementID,
					BarrierEnvelopeID:     envelopeID,
					BarrierDiagramID:      diagramID,
					Status:                ev.Status,
					ComponentOvality:      ev.ComponentOvality,
					ComponentWearing:      ev.ComponentWearing,
					Details:               ev.Details,
					LastTestDate:          testDate,
					CreateUser:            ev.CreateUser,
				}
				if err := s.barriers.InsertElementTestLink(ctx, tx, link); err != nil {
					return fmt.Errorf("insert element test link %s: %w", ev.BarrierElementID, err)
				}
				if err := s.barriers.InsertElementTestLinkAudit(ctx, tx, link); err != nil {
					s.log.Warn("element test audit insert failed", "barrier_element_id", ev.BarrierElementID, "error", err)
				}
			}
		}
		return nil
	})
}
