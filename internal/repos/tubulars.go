package repos

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/wellsight/wellsight-backend/internal/platform/logger"
	"github.com/wellsight/wellsight-backend/internal/types"
)

// TubularRepo reads the physical element tables: hole sections,
// casing/tubular assemblies with their components, cement stages,
// perforations and fluids. Every list method accepts an optional
// maxTopMD bound: when set, only elements whose top depth is at or
// above the next wellbore's kickoff are returned, which is the
// sidetrack-deduplication rule of the assembler.
type TubularRepo interface {
	ListHoleSections(ctx context.Context, wellID, wellboreID string, asOf time.Time, maxTopMD *float64) ([]types.HoleSectionRow, error)
	ListIntegrityTests(ctx context.Context, wellID, wellboreID, holeSectGroupID string) ([]types.IntegrityTestRow, error)
	ListCasingStrings(ctx context.Context, wellID, wellboreID string, assemblyIDs []string, maxTopMD *float64) ([]types.AssemblyRow, error)
	ListAssemblies(ctx context.Context, wellID, wellboreID string, assemblyIDs []string, maxTopMD *float64) ([]types.AssemblyRow, error)
	ListAssemblyComponents(ctx context.Context, wellID, wellboreID, assemblyID string, maxTopMD *float64) ([]types.AssemblyComponentRow, error)
	ListCementStages(ctx context.Context, wellID, wellboreID string, assemblyIDs []string, asOf time.Time, maxTopMD *float64) ([]types.CementStageRow, error)
	ListPerforations(ctx context.Context, wellID, wellboreID string, asOf time.Time, maxTopMD *float64) ([]types.PerforationRow, error)
	GetDrillingFluid(ctx context.Context, wellID, wellboreID string, asOf time.Time) (*types.DrillingFluidRow, error)
	LatestCompletionFluidDate(ctx context.Context, wellID, wellboreID string, asOf time.Time) (*time.Time, error)
	ListCompletionFluids(ctx context.Context, wellID, wellboreID string, installedOn time.Time, asOf time.Time) ([]types.CompletionFluidRow, error)
	GetSSSV(ctx context.Context, assemblyCompID string) (*types.SSSVRow, error)
	GetPacker(ctx context.Context, assemblyCompID string) (*types.PackerRow, error)
}

type tubularRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTubularRepo(db *gorm.DB, baseLog *logger.Logger) TubularRepo {
	return &tubularRepo{db: db, log: baseLog.With("repo", "TubularRepo")}
}

// startOfDay/endOfDay bound date-valued columns the way the daily
// reporting tables store them.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, t.Location())
}

func (r *tubularRepo) ListHoleSections(ctx context.Context, wellID, wellboreID string, asOf time.Time, maxTopMD *float64) ([]types.HoleSectionRow, error) {
	q := r.db.WithContext(ctx).
		Table("CD_HOLE_SECT_GROUP").
		Where("well_id = ? AND wellbore_id = ?", wellID, wellboreID).
		Where("phase = ?", types.PhaseActual).
		Where("date_sect_start <= ?", asOf).
		Order("md_hole_sect_top ASC")
	if maxTopMD != nil {
		q = q.Where("md_hole_sect_top <= ?", *maxTopMD)
	}
	var rows []types.HoleSectionRow
	err := q.Find(&rows).Error
	return rows, err
}

func (r *tubularRepo) ListIntegrityTests(ctx context.Context, wellID, wellboreID, holeSectGroupID string) ([]types.IntegrityTestRow, error) {
	var rows []types.IntegrityTestRow
	err := r.db.WithContext(ctx).
		Table("DM_WELLBORE_INTEG").
		Where("well_id = ? AND wellbore_id = ? AND hole_sect_group_id = ?", wellID, wellboreID, holeSectGroupID).
		Where("test_type IS NOT NULL").
		Find(&rows).Error
	return rows, err
}

func (r *tubularRepo) ListCasingStrings(ctx context.Context, wellID, wellboreID string, assemblyIDs []string, maxTopMD *float64) ([]types.AssemblyRow, error) {
	if len(assemblyIDs) == 0 {
		return nil, nil
	}
	q := r.db.WithContext(ctx).
		Table("CD_ASSEMBLY").
		Where("well_id = ? AND wellbore_id = ?", wellID, wellboreID).
		Where("phase = ?", types.PhaseActual).
		Where("string_type IN ?", []string{"Casing", "Liner"}).
		Where("assembly_id IN ?", assemblyIDs).
		Order("md_assembly_top ASC, md_assembly_base ASC")
	if maxTopMD != nil {
		q = q.Where("md_assembly_top <= ?", *maxTopMD)
	}
	var rows []types.AssemblyRow
	err := q.Find(&rows).Error
	return rows, err
}

func (r *tubularRepo) ListAssemblies(ctx context.Context, wellID, wellboreID string, assemblyIDs []string, maxTopMD *float64) ([]types.AssemblyRow, error) {
	if len(assemblyIDs) == 0 {
		return nil, nil
	}
	q := r.db.WithContext(ctx).
		Table("CD_ASSEMBLY").
		Where("well_id = ? AND wellbore_id = ?", wellID, wellboreID).
		Where("phase = ?", types.PhaseActual).
		Where("string_type NOT IN ?", []string{"Casing", "Liner"}).
		Where("assembly_id IN ?", assemblyIDs).
		Order("md_assembly_top ASC, md_assembly_base DESC")
	if maxTopMD != nil {
		q = q.Where("md_assembly_top <= ?", *maxTopMD)
	}
	var rows []types.AssemblyRow
	err := q.Find(&rows).Error
	return rows, err
}

func (r *tubularRepo) ListAssemblyComponents(ctx context.Context, wellID, wellboreID, assemblyID string, maxTopMD *float64) ([]types.AssemblyComponentRow, error) {
	q := r.db.WithContext(ctx).
		Table("CD_ASSEMBLY_COMP").
		Where("well_id = ? AND wellbore_id = ? AND assembly_id = ?", wellID, wellboreID, assemblyID).
		Order("sequence_no ASC")
	if maxTopMD != nil {
		q = q.Where("md_top <= ?", *maxTopMD)
	}
	var rows []types.AssemblyComponentRow
	err := q.Find(&rows).Error
	return rows, err
}

func (r *tubularRepo) ListCementStages(ctx context.Context, wellID, wellboreID string, assemblyIDs []string, asOf time.Time, maxTopMD *float64) ([]types.CementStageRow, error) {
	if len(assemblyIDs) == 0 {
		return nil, nil
	}
	q := r.db.WithContext(ctx).
		Table("CD_CEMENT_JOB CCJ").
		Joins("INNER JOIN CD_CEMENT_STAGE CCS ON CCS.well_id = CCJ.well_id AND CCS.wellbore_id = CCJ.wellbore_id AND CCS.cement_job_id = CCJ.cement_job_id").
		Select("CCS.*, CCJ.assembly_id, CCJ.is_drilled_out, CCJ.job_type, CCJ.casing_test_press, CCJ.casing_test_duration, CCJ.test_comments, CCJ.date_report, CCJ.plug_type, CCJ.is_liner_neg_test_tool, CCJ.liner_emw_neg_test").
		Where("CCJ.well_id = ? AND CCJ.wellbore_id = ?", wellID, wellboreID).
		Where("CCJ.assembly_id IN ?", assemblyIDs).
		Where("CCJ.job_start_date <= ?", asOf).
		Order("CCS.md_top ASC, CCS.md_base DESC")
	if maxTopMD != nil {
		q = q.Where("CCS.md_top <= ?", *maxTopMD)
	}
	var rows []types.CementStageRow
	err := q.Find(&rows).Error
	return rows, err
}

func (r *tubularRepo) ListPerforations(ctx context.Context, wellID, wellboreID string, asOf time.Time, maxTopMD *float64) ([]types.PerforationRow, error) {
	q := r.db.WithContext(ctx).
		Table("CD_WELLBORE_OPENING WO").
		Joins("INNER JOIN CD_OPENING_STATUS OS ON OS.wellbore_opening_id = WO.wellbore_opening_id").
		Select("WO.*, OS.status").
		Where("WO.well_id = ? AND WO.wellbore_id = ?", wellID, wellboreID).
		Where("OS.effective_date <= ?", asOf)
	if maxTopMD != nil {
		q = q.Where("WO.md_top <= ?", *maxTopMD)
	}
	var rows []types.PerforationRow
	err := q.Find(&rows).Error
	return rows, err
}

func (r *tubularRepo) GetDrillingFluid(ctx context.Context, wellID, wellboreID string, asOf time.Time) (*types.DrillingFluidRow, error) {
	var row types.DrillingFluidRow
	err := r.db.WithContext(ctx).
		Table("CD_FLUID").
		Where("well_id = ? AND wellbore_id = ?", wellID, wellboreID).
		Where("check_date >= ? AND check_date <= ?", startOfDay(asOf), endOfDay(asOf)).
		Order("check_date DESC").
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

func (r *tubularRepo) LatestCompletionFluidDate(ctx context.Context, wellID, wellboreID string, asOf time.Time) (*time.Time, error) {
	var row types.CompletionFluidRow
	err := r.db.WithContext(ctx).
		Table("CD_COMPLETION_FLUID").
		Where("well_id = ? AND wellbore_id = ?", wellID, wellboreID).
		Where("install_date <= ?", startOfDay(asOf)).
		Where("removal_date >= ? OR removal_date IS NULL", endOfDay(asOf)).
		Order("install_date DESC").
		Limit(1).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.InstallDate, nil
}

func (r *tubularRepo) ListCompletionFluids(ctx context.Context, wellID, wellboreID string, installedOn time.Time, asOf time.Time) ([]types.CompletionFluidRow, error) {
	var rows []types.CompletionFluidRow
	err := r.db.WithContext(ctx).
		Table("CD_COMPLETION_FLUID").
		Where("well_id = ? AND wellbore_id = ?", wellID, wellboreID).
		Where("install_date >= ? AND install_date <= ?", startOfDay(installedOn), endOfDay(installedOn)).
		Where("removal_date >= ? OR removal_date IS NULL", startOfDay(asOf)).
		Order("install_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *tubularRepo) GetSSSV(ctx context.Context, assemblyCompID string) (*types.SSSVRow, error) {
	var row types.SSSVRow
	err := r.db.WithContext(ctx).
		Table("CD_WEQP_SSSV").
		Where("assembly_comp_id = ?", assemblyCompID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *tubularRepo) GetPacker(ctx context.Context, assemblyCompID string) (*types.PackerRow, error) {
	var row types.PackerRow
	err := r.db.WithContext(ctx).
		Table("CD_WEQP_PACKER").
		Where("assembly_comp_id = ?", assemblyCompID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
