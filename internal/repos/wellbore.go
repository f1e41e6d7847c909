package repos

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/wellsight/wellsight-backend/internal/platform/logger"
	"github.com/wellsight/wellsight-backend/internal/types"
)

// Gradient curve tables. The temperature table stores its value in a
// differently named column, handled in the query.
type GradientKind string

const (
	GradientPorePressure GradientKind = "PL_WELLBORE_PP_GRAD"
	GradientFracture     GradientKind = "PL_WELLBORE_FRAC_GRAD"
	GradientTemperature  GradientKind = "PL_WELLBORE_TEMP_GRAD"
)

type WellboreRepo interface {
	GetWellbore(ctx context.Context, wellID, wellboreID string) (*types.WellboreRow, error)
	GetScenario(ctx context.Context, wellID, wellboreID, scenarioID string) (*types.ScenarioRow, error)
	GetDefaultDatum(ctx context.Context, wellID string) (*types.DatumRow, error)
	ListSurveyStations(ctx context.Context, defSurveyHeaderID string) ([]types.SurveyStationRow, error)
	ListGradient(ctx context.Context, kind GradientKind, wellID, wellboreID string) ([]types.GradientRow, error)
	ListLithology(ctx context.Context, wellID, wellboreID, scenarioID string) ([]types.LithologyRow, error)
	ListOperationLogs(ctx context.Context, wellID, wellboreID string) ([]types.OperationLogRow, error)
	ListDerating(ctx context.Context, wellID, wellboreID string, asOf time.Time) ([]types.DeratingRow, error)
}

type wellboreRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWellboreRepo(db *gorm.DB, baseLog *logger.Logger) WellboreRepo {
	return &wellboreRepo{db: db, log: baseLog.With("repo", "WellboreRepo")}
}

func (r *wellboreRepo) GetWellbore(ctx context.Context, wellID, wellboreID string) (*types.WellboreRow, error) {
	var row types.WellboreRow
	err := r.db.WithContext(ctx).
		Table("CD_WELLBORE").
		Where("well_id = ? AND wellbore_id = ?", wellID, wellboreID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *wellboreRepo) GetScenario(ctx context.Context, wellID, wellboreID, scenarioID string) (*types.ScenarioRow, error) {
	var row types.ScenarioRow
	err := r.db.WithContext(ctx).
		Table("CD_SCENARIO").
		Where("well_id = ? AND wellbore_id = ? AND scenario_id = ?", wellID, wellboreID, scenarioID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *wellboreRepo) GetDefaultDatum(ctx context.Context, wellID string) (*types.DatumRow, error) {
	var row types.DatumRow
	err := r.db.WithContext(ctx).
		Table("CD_DATUM").
		Where("well_id = ? AND is_default = 'Y'", wellID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *wellboreRepo) ListSurveyStations(ctx context.Context, defSurveyHeaderID string) ([]types.SurveyStationRow, error) {
	var rows []types.SurveyStationRow
	err := r.db.WithContext(ctx).
		Table("CD_DEFINITIVE_SURVEY_STATION").
		Where("def_survey_header_id = ?", defSurveyHeaderID).
		Order("md ASC").
		Find(&rows).Error
	return rows, err
}

func (r *wellboreRepo) ListGradient(ctx context.Context, kind GradientKind, wellID, wellboreID string) ([]types.GradientRow, error) {
	valueColumn := "pressure"
	if kind == GradientTemperature {
		valueColumn = "temperature"
	}
	var rows []types.GradientRow
	err := r.db.WithContext(ctx).
		Table(string(kind)).
		Select("formation as formationname, "+valueColumn+" as value, depth_tvd").
		Where("well_id = ? AND wellbore_id = ?", wellID, wellboreID).
		Find(&rows).Error
	return rows, err
}

func (r *wellboreRepo) ListLithology(ctx context.Context, wellID, wellboreID, scenarioID string) ([]types.LithologyRow, error) {
	var rows []types.LithologyRow
	err := r.db.WithContext(ctx).
		Table("CD_SCENARIO_FORMATION_LINK SFL").
		Joins("INNER JOIN CD_WELLBORE_FORMATION WBF ON WBF.well_id = SFL.well_id AND WBF.wellbore_id = SFL.wellbore_id AND WBF.wellbore_formation_id = SFL.wellbore_formation_id").
		Joins("LEFT JOIN CD_FORMATION_PICK FP ON FP.well_id = SFL.well_id AND FP.wellbore_id = SFL.wellbore_id AND FP.wellbore_formation_id = SFL.wellbore_formation_id").
		Joins("LEFT JOIN HM_LITHOLOGIES LITH ON LITH.ow_lithology_id = WBF.lithology_id").
		Joins("LEFT JOIN CD_STRAT_UNIT CSU ON WBF.strat_unit_id = CSU.strat_unit_id").
		Select("WBF.*, FP.tvd_base as actual_tvd_base, FP.tvd_top as actual_tvd_top, FP.md_top as actual_md_top, FP.md_base as actual_md_base, FP.phase as actual_phase, LITH.lithology_name, CSU.strat_unit_name").
		Where("SFL.well_id = ? AND SFL.wellbore_id = ? AND SFL.scenario_id = ? AND SFL.is_log = 'Y'", wellID, wellboreID, scenarioID).
		Order("WBF.prognosed_md ASC").
		Find(&rows).Error
	return rows, err
}

func (r *wellboreRepo) ListOperationLogs(ctx context.Context, wellID, wellboreID string) ([]types.OperationLogRow, error) {
	var rows []types.OperationLogRow
	err := r.db.WithContext(ctx).
		Table("DM_LOG_INTERVAL LI").
		Joins("LEFT JOIN DM_LOG L ON LI.log_id = L.log_id").
		Joins("LEFT JOIN DM_LOG_DESC LD ON L.log_id = LD.log_id").
		Joins("LEFT JOIN PL_LOG_INTERVAL_EXT LE ON LE.log_interval_id = LI.log_interval_id").
		Select("LI.*, L.reason, LD.comments, LE.assembly_name").
		Where("LI.well_id = ? AND LI.wellbore_id = ?", wellID, wellboreID).
		Find(&rows).Error
	return rows, err
}

func (r *wellboreRepo) ListDerating(ctx context.Context, wellID, wellboreID string, asOf time.Time) ([]types.DeratingRow, error) {
	var rows []types.DeratingRow
	err := r.db.WithContext(ctx).
		Table("CD_PRESSURE_SURVEY CPS").
		Joins("INNER JOIN DM_REPORT_JOURNAL DRJ ON CPS.report_journal_id = DRJ.report_journal_id").
		Joins("INNER JOIN PL_FINAL_LOAD_SIMM PFLS ON CPS.pressure_survey_id = PFLS.pressure_survey_id").
		Select("PFLS.*").
		Where("CPS.well_id = ? AND CPS.wellbore_id = ? AND DRJ.date_report <= ?", wellID, wellboreID, asOf).
		Order("DRJ.date_report ASC, PFLS.sequence_no ASC").
		Find(&rows).Error
	return rows, err
}
