package repos

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/wellsight/wellsight-backend/internal/platform/logger"
	"github.com/wellsight/wellsight-backend/internal/types"
)

// BarrierRepo owns the barrier overlay tables. Mutating methods take
// an optional transaction handle and fall back to the repo's own
// connection when it is nil.
type BarrierRepo interface {
	GetDiagram(ctx context.Context, tx *gorm.DB, q types.SchematicQuery) (*types.BarrierDiagramRow, error)
	InsertDiagram(ctx context.Context, tx *gorm.DB, row *types.BarrierDiagramRow) error
	ListDiagrams(ctx context.Context, q types.SchematicQuery) ([]types.BarrierDiagramRow, error)

	GetEnvelope(ctx context.Context, tx *gorm.DB, diagramID, name string) (*types.BarrierEnvelopeRow, error)
	InsertEnvelope(ctx context.Context, tx *gorm.DB, row *types.BarrierEnvelopeRow) error

	GetElement(ctx context.Context, tx *gorm.DB, refID, envelopeID, diagramID string, q types.SchematicQuery) (*types.BarrierElementRow, error)
	InsertElement(ctx context.Context, tx *gorm.DB, row *types.BarrierElementRow) error
	DeleteElement(ctx context.Context, tx *gorm.DB, elementID string) error

	// ListElementBarriers joins diagram, envelope and element rows for
	// one well/wellbore/scenario, optionally pinned to a diagram date,
	// projecting the envelope name alongside each element.
	ListElementBarriers(ctx context.Context, q types.SchematicQuery, diagramDate *time.Time) ([]types.ElementBarrier, error)

	DeleteEnvelopeTests(ctx context.Context, tx *gorm.DB, envelopeID, diagramID string) error
	InsertEnvelopeTest(ctx context.Context, tx *gorm.DB, row *types.EnvelopeTestRow) error
	InsertEnvelopeTestAudit(ctx context.Context, tx *gorm.DB, row *types.EnvelopeTestRow) error
	DeleteElementTestLinks(ctx context.Context, tx *gorm.DB, envelopeID, diagramID string) error
	InsertElementTestLink(ctx context.Context, tx *gorm.DB, row *types.ElementTestLinkRow) error
	InsertElementTestLinkAudit(ctx context.Context, tx *gorm.DB, row *types.ElementTestLinkRow) error
}

type barrierRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBarrierRepo(db *gorm.DB, baseLog *logger.Logger) BarrierRepo {
	return &barrierRepo{db: db, log: baseLog.With("repo", "BarrierRepo")}
}

func (r *barrierRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *barrierRepo) GetDiagram(ctx context.Context, tx *gorm.DB, q types.SchematicQuery) (*types.BarrierDiagramRow, error) {
	var row types.BarrierDiagramRow
	err := r.conn(tx).WithContext(ctx).
		Where("well_id = ? AND wellbore_id = ? AND scenario_id = ? AND diagram_date = ?",
			q.WellID, q.WellboreID, q.ScenarioID, q.SchematicDate).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *barrierRepo) InsertDiagram(ctx context.Context, tx *gorm.DB, row *types.BarrierDiagramRow) error {
	return r.conn(tx).WithContext(ctx).Create(row).Error
}

func (r *barrierRepo) ListDiagrams(ctx context.Context, q types.SchematicQuery) ([]types.BarrierDiagramRow, error) {
	var rows []types.BarrierDiagramRow
	err := r.db.WithContext(ctx).
		Where("well_id = ? AND wellbore_id = ? AND scenario_id = ?", q.WellID, q.WellboreID, q.ScenarioID).
		Order("diagram_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *barrierRepo) GetEnvelope(ctx context.Context, tx *gorm.DB, diagramID, name string) (*types.BarrierEnvelopeRow, error) {
	var row types.BarrierEnvelopeRow
	err := r.conn(tx).WithContext(ctx).
		Where("barrier_diagram_id = ? AND name = ?", diagramID, name).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *barrierRepo) InsertEnvelope(ctx context.Context, tx *gorm.DB, row *types.BarrierEnvelopeRow) error {
	return r.conn(tx).WithContext(ctx).Create(row).Error
}

func (r *barrierRepo) GetElement(ctx context.Context, tx *gorm.DB, refID, envelopeID, diagramID string, q types.SchematicQuery) (*types.BarrierElementRow, error) {
	var row types.BarrierElementRow
	err := r.conn(tx).WithContext(ctx).
		Where("ref_id = ? AND barrier_envelope_id = ? AND barrier_diagram_id = ?", refID, envelopeID, diagramID).
		Where("well_id = ? AND wellbore_id = ? AND scenario_id = ?", q.WellID, q.WellboreID, q.ScenarioID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *barrierRepo) InsertElement(ctx context.Context, tx *gorm.DB, row *types.BarrierElementRow) error {
	return r.conn(tx).WithContext(ctx).Create(row).Error
}

func (r *barrierRepo) DeleteElement(ctx context.Context, tx *gorm.DB, elementID string) error {
	return r.conn(tx).WithContext(ctx).
		Where("barrier_element_id = ?", elementID).
		Delete(&types.BarrierElementRow{}).Error
}

func (r *barrierRepo) ListElementBarriers(ctx context.Context, q types.SchematicQuery, diagramDate *time.Time) ([]types.ElementBarrier, error) {
	query := r.db.WithContext(ctx).
		Table("CD_BARRIER_DIAGRAM_T CBD").
		Joins("INNER JOIN CD_BARRIER_ENVELOPE_T CBE ON CBD.barrier_diagram_id = CBE.barrier_diagram_id AND CBD.well_id = CBE.well_id AND CBD.wellbore_id = CBE.wellbore_id AND CBD.scenario_id = CBE.scenario_id").
		Joins("INNER JOIN CD_BARRIER_ELEMENT_T CBEL ON CBE.barrier_envelope_id = CBEL.barrier_envelope_id AND CBE.well_id = CBEL.well_id AND CBE.wellbore_id = CBEL.wellbore_id AND CBE.scenario_id = CBEL.scenario_id AND CBEL.barrier_diagram_id = CBE.barrier_diagram_id").
		Select("CBE.name as barrier_name, CBEL.*").
		Where("CBD.well_id = ? AND CBD.wellbore_id = ? AND CBD.scenario_id = ?", q.WellID, q.WellboreID, q.ScenarioID)
	if diagramDate != nil {
		query = query.Where("CBD.diagram_date = ?", *diagramDate)
	}
	var rows []types.ElementBarrier
	err := query.Find(&rows).Error
	return rows, err
}

func (r *barrierRepo) DeleteEnvelopeTests(ctx context.Context, tx *gorm.DB, envelopeID, diagramID string) error {
	return r.conn(tx).WithContext(ctx).
		Where("barrier_envelope_id = ? AND barrier_diagram_id = ?", envelopeID, diagramID).
		Delete(&types.EnvelopeTestRow{}).Error
}

func (r *barrierRepo) InsertEnvelopeTest(ctx context.Context, tx *gorm.DB, row *types.EnvelopeTestRow) error {
	return r.conn(tx).WithContext(ctx).Create(row).Error
}

func (r *barrierRepo) InsertEnvelopeTestAudit(ctx context.Context, tx *gorm.DB, row *types.EnvelopeTestRow) error {
	return r.conn(tx).WithContext(ctx).
		Table("PL_BARRIER_ENV_TEST_AUDIT").
		Create(row).Error
}

func (r *barrierRepo) DeleteElementTestLinks(ctx context.Context, tx *gorm.DB, envelopeID, diagramID string) error {
	return r.conn(tx).WithContext(ctx).
		Where("barrier_envelope_id = ? AND barrier_diagram_id = ?", envelopeID, diagramID).
		Delete(&types.ElementTestLinkRow{}).Error
}

func (r *barrierRepo) InsertElementTestLink(ctx context.Context, tx *gorm.DB, row *types.ElementTestLinkRow) error {
	return r.conn(tx).WithContext(ctx).Create(row).Error
}

func (r *barrierRepo) InsertElementTestLinkAudit(ctx context.Context, tx *gorm.DB, row *types.ElementTestLinkRow) error {
	return r.conn(tx).WithContext(ctx).
		Table("PL_BARRIER_ELEM_TEST_AUDIT").
		Create(row).Error
}
