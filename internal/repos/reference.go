package repos

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/wellsight/wellsight-backend/internal/platform/logger"
	"github.com/wellsight/wellsight-backend/internal/types"
)

// ReferenceRepo serves static and reference lookups: catalogs, the
// maximum open-hole diameter of a section, the set of assemblies still
// in hole on a date, and the latest daily report.
type ReferenceRepo interface {
	ListCatalogs(ctx context.Context) ([]types.CatalogRow, error)
	MaxHoleSectionDiameter(ctx context.Context, wellID, wellboreID, holeSectGroupID string) (float64, error)
	ActiveAssemblyIDs(ctx context.Context, wellID, wellboreID string, asOf time.Time) ([]string, error)
	GetLatestReport(ctx context.Context, wellID, wellboreID string, asOf time.Time) (*types.ReportRow, error)
}

type referenceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReferenceRepo(db *gorm.DB, baseLog *logger.Logger) ReferenceRepo {
	return &referenceRepo{db: db, log: baseLog.With("repo", "ReferenceRepo")}
}

func (r *referenceRepo) ListCatalogs(ctx context.Context) ([]types.CatalogRow, error) {
	var rows []types.CatalogRow
	err := r.db.WithContext(ctx).
		Table("PL_COMPONENT_CATALOG").
		Order("catalog_type ASC").
		Find(&rows).Error
	return rows, err
}

func (r *referenceRepo) MaxHoleSectionDiameter(ctx context.Context, wellID, wellboreID, holeSectGroupID string) (float64, error) {
	var out struct {
		MaxSize *float64 `gorm:"column:max_size"`
	}
	err := r.db.WithContext(ctx).
		Table("CD_HOLE_SECT").
		Select("MAX(hole_size) as max_size").
		Where("well_id = ? AND wellbore_id = ? AND hole_sect_group_id = ?", wellID, wellboreID, holeSectGroupID).
		Take(&out).Error
	if err != nil || out.MaxSize == nil {
		return 0, err
	}
	return *out.MaxSize, nil
}

func (r *referenceRepo) ActiveAssemblyIDs(ctx context.Context, wellID, wellboreID string, asOf time.Time) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Table("CD_ASSEMBLY_STATUS").
		Select("assembly_id").
		Where("well_id = ? AND wellbore_id = ?", wellID, wellboreID).
		Where("install_date <= ? AND (removal_date IS NULL OR removal_date > ?)", asOf, asOf).
		Scan(&ids).Error
	return ids, err
}

func (r *referenceRepo) GetLatestReport(ctx context.Context, wellID, wellboreID string, asOf time.Time) (*types.ReportRow, error) {
	var row types.ReportRow
	err := r.db.WithContext(ctx).
		Table("DM_REPORT_JOURNAL").
		Where("well_id = ? AND wellbore_id = ? AND date_report <= ?", wellID, wellboreID, asOf).
		Order("date_report DESC").
		Limit(1).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
