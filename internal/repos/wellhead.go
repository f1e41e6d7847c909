package repos

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/wellsight/wellsight-backend/internal/platform/logger"
	"github.com/wellsight/wellsight-backend/internal/types"
)

type WellheadRepo interface {
	ListComponents(ctx context.Context, wellID string, asOf time.Time) ([]types.WellheadComponentRow, error)
	ListOutlets(ctx context.Context, comp types.WellheadComponentRow, asOf time.Time) ([]types.WellheadOutletRow, error)
	ListHangers(ctx context.Context, comp types.WellheadComponentRow) ([]types.WellheadHangerRow, error)
	ListAnnularPressures(ctx context.Context, wellID string) ([]types.AnnularPressureRow, error)
	ListPressureReliefs(ctx context.Context, press types.AnnularPressureRow) ([]types.PressureReliefRow, error)
}

type wellheadRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWellheadRepo(db *gorm.DB, baseLog *logger.Logger) WellheadRepo {
	return &wellheadRepo{db: db, log: baseLog.With("repo", "WellheadRepo")}
}

func (r *wellheadRepo) ListComponents(ctx context.Context, wellID string, asOf time.Time) ([]types.WellheadComponentRow, error) {
	var rows []types.WellheadComponentRow
	err := r.db.WithContext(ctx).
		Table("CD_WELLHEAD WH").
		Joins("INNER JOIN CD_WELLHEAD_COMP WHC ON WH.wellhead_id = WHC.wellhead_id AND WH.well_id = WHC.well_id").
		Joins("LEFT JOIN PL_WELLHEAD_COMP_EXT WCE ON WCE.wellhead_comp_id = WHC.wellhead_comp_id AND WCE.wellhead_id = WHC.wellhead_id").
		Select("WHC.*, WCE.wellhead_section, WCE.test_result").
		Where("WHC.well_id = ?", wellID).
		Where("WH.scenario_id IS NULL").
		Where("WHC.install_date <= ?", asOf).
		Where("WHC.removal_date IS NULL OR WHC.removal_date > ?", asOf).
		Order("WHC.sequence_no ASC").
		Find(&rows).Error
	return rows, err
}

func (r *wellheadRepo) ListOutlets(ctx context.Context, comp types.WellheadComponentRow, asOf time.Time) ([]types.WellheadOutletRow, error) {
	var rows []types.WellheadOutletRow
	err := r.db.WithContext(ctx).
		Table("CD_WELLHEAD_COMP_OUTLET").
		Where("well_id = ? AND event_id = ? AND wellhead_id = ? AND wellhead_comp_id = ?",
			comp.WellID, comp.EventID, comp.WellheadID, comp.WellheadCompID).
		Where("valve_install_date <= ?", asOf).
		Where("valve_removal_date IS NULL OR valve_removal_date > ?", asOf).
		Order("sequence_no ASC").
		Find(&rows).Error
	return rows, err
}

func (r *wellheadRepo) ListHangers(ctx context.Context, comp types.WellheadComponentRow) ([]types.WellheadHangerRow, error) {
	var rows []types.WellheadHangerRow
	err := r.db.WithContext(ctx).
		Table("CD_WELLHEAD_HANGER").
		Where("well_id = ? AND event_id = ? AND wellhead_id = ? AND wellhead_comp_id = ?",
			comp.WellID, comp.EventID, comp.WellheadID, comp.WellheadCompID).
		Find(&rows).Error
	return rows, err
}

func (r *wellheadRepo) ListAnnularPressures(ctx context.Context, wellID string) ([]types.AnnularPressureRow, error) {
	var rows []types.AnnularPressureRow
	err := r.db.WithContext(ctx).
		Table("PL_WELLHEAD_ANNULAR_PRES").
		Where("well_id = ?", wellID).
		Find(&rows).Error
	return rows, err
}

func (r *wellheadRepo) ListPressureReliefs(ctx context.Context, press types.AnnularPressureRow) ([]types.PressureReliefRow, error) {
	var rows []types.PressureReliefRow
	err := r.db.WithContext(ctx).
		Table("PL_WELLHEAD_PRESS_RELIEF").
		Where("well_id = ? AND wellhead_id = ? AND wellhead_ann_press_id = ?",
			press.WellID, press.WellheadID, press.WellheadAnnPressID).
		Find(&rows).Error
	return rows, err
}
