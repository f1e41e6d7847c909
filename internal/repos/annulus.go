package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/wellsight/wellsight-backend/internal/platform/logger"
	"github.com/wellsight/wellsight-backend/internal/types"
)

type AnnulusRepo interface {
	ListElements(ctx context.Context, q types.SchematicQuery, diagramID string) ([]types.AnnulusElementRow, error)
	GetElementByName(ctx context.Context, tx *gorm.DB, diagramID, name string) (*types.AnnulusElementRow, error)
	DeleteElementByName(ctx context.Context, tx *gorm.DB, diagramID, name string) error
	InsertElement(ctx context.Context, tx *gorm.DB, row *types.AnnulusElementRow) error

	ListTests(ctx context.Context, element types.AnnulusElementRow) ([]types.AnnulusTestRow, error)
	DeleteTests(ctx context.Context, tx *gorm.DB, annulusElementID string) error
	InsertTest(ctx context.Context, tx *gorm.DB, row *types.AnnulusTestRow) error
}

type annulusRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAnnulusRepo(db *gorm.DB, baseLog *logger.Logger) AnnulusRepo {
	return &annulusRepo{db: db, log: baseLog.With("repo", "AnnulusRepo")}
}

func (r *annulusRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *annulusRepo) ListElements(ctx context.Context, q types.SchematicQuery, diagramID string) ([]types.AnnulusElementRow, error) {
	var rows []types.AnnulusElementRow
	err := r.db.WithContext(ctx).
		Where("well_id = ? AND wellbore_id = ? AND scenario_id = ? AND barrier_diagram_id = ?",
			q.WellID, q.WellboreID, q.ScenarioID, diagramID).
		Find(&rows).Error
	return rows, err
}

func (r *annulusRepo) GetElementByName(ctx context.Context, tx *gorm.DB, diagramID, name string) (*types.AnnulusElementRow, error) {
	var row types.AnnulusElementRow
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

func (r *annulusRepo) DeleteElementByName(ctx context.Context, tx *gorm.DB, diagramID, name string) error {
	return r.conn(tx).WithContext(ctx).
		Where("barrier_diagram_id = ? AND name = ?", diagramID, name).
		Delete(&types.AnnulusElementRow{}).Error
}

func (r *annulusRepo) InsertElement(ctx context.Context, tx *gorm.DB, row *types.AnnulusElementRow) error {
	return r.conn(tx).WithContext(ctx).Create(row).Error
}

func (r *annulusRepo) ListTests(ctx context.Context, element types.AnnulusElementRow) ([]types.AnnulusTestRow, error) {
	var rows []types.AnnulusTestRow
	err := r.db.WithContext(ctx).
		Where("well_id = ? AND wellbore_id = ? AND scenario_id = ? AND barrier_diagram_id = ? AND annulus_element_id = ?",
			element.WellID, element.WellboreID, element.ScenarioID, element.BarrierDiagramID, element.AnnulusElementID).
		Find(&rows).Error
	return rows, err
}

func (r *annulusRepo) DeleteTests(ctx context.Context, tx *gorm.DB, annulusElementID string) error {
	return r.conn(tx).WithContext(ctx).
		Where("annulus_element_id = ?", annulusElementID).
		Delete(&types.AnnulusTestRow{}).Error
}

func (r *annulusRepo) InsertTest(ctx context.Context, tx *gorm.DB, row *types.AnnulusTestRow) error {
	return r.conn(tx).WithContext(ctx).Create(row).Error
}
