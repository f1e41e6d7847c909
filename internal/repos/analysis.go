package repos

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/wellsight/wellsight-backend/internal/platform/logger"
	"github.com/wellsight/wellsight-backend/internal/types"
)

// AnalysisRepo serves the read-only analysis screens: existing
// reports, operational events, well master data and attachments.
type AnalysisRepo interface {
	ListReports(ctx context.Context, wellID, wellboreID string) ([]types.AnalysisReportRow, error)
	ListWellEvents(ctx context.Context, wellID string) ([]types.WellEventRow, error)
	GetWell(ctx context.Context, wellID string) (*types.WellRow, error)
	ListDatums(ctx context.Context, wellID string) ([]types.DatumRow, error)
	ListAttachments(ctx context.Context, wellID, wellboreID string, asOf time.Time) ([]types.AttachmentRow, error)
}

type analysisRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAnalysisRepo(db *gorm.DB, baseLog *logger.Logger) AnalysisRepo {
	return &analysisRepo{db: db, log: baseLog.With("repo", "AnalysisRepo")}
}

func (r *analysisRepo) ListReports(ctx context.Context, wellID, wellboreID string) ([]types.AnalysisReportRow, error) {
	var rows []types.AnalysisReportRow
	err := r.db.WithContext(ctx).
		Table("WF_ANALYSIS_REPORT").
		Where("well_id = ? AND wellbore_id = ?", wellID, wellboreID).
		Find(&rows).Error
	return rows, err
}

func (r *analysisRepo) ListWellEvents(ctx context.Context, wellID string) ([]types.WellEventRow, error) {
	var rows []types.WellEventRow
	err := r.db.WithContext(ctx).
		Table("DM_EVENT").
		Where("well_id = ?", wellID).
		Where("date_ops_start IS NOT NULL AND date_ops_end IS NOT NULL").
		Order("date_ops_start DESC").
		Find(&rows).Error
	return rows, err
}

func (r *analysisRepo) GetWell(ctx context.Context, wellID string) (*types.WellRow, error) {
	var row types.WellRow
	err := r.db.WithContext(ctx).
		Table("CD_WELL_SOURCE CWS").
		Joins("INNER JOIN CD_SITE_SOURCE CS ON CS.site_id = CWS.site_id").
		Joins("INNER JOIN CD_PROJECT_SOURCE CP ON CP.project_id = CS.project_id").
		Select("CWS.*, CP.project_name").
		Where("CWS.well_id = ?", wellID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *analysisRepo) ListDatums(ctx context.Context, wellID string) ([]types.DatumRow, error) {
	var rows []types.DatumRow
	err := r.db.WithContext(ctx).
		Table("CD_DATUM").
		Where("well_id = ?", wellID).
		Find(&rows).Error
	return rows, err
}

func (r *analysisRepo) ListAttachments(ctx context.Context, wellID, wellboreID string, asOf time.Time) ([]types.AttachmentRow, error) {
	var rows []types.AttachmentRow
	err := r.db.WithContext(ctx).
		Table("VIEW_REPORT_ATTACHMENTS").
		Where("well_id = ? AND wellbore_id = ?", wellID, wellboreID).
		Where("date_report <= ?", asOf).
		Find(&rows).Error
	return rows, err
}
