package types

import "time"

// Row structs for the legacy well store. Tables are queried by name;
// only the columns the services read are mapped. Field names follow
// the store's lowercase normalized form.

type WellboreRow struct {
	WellID           string   `gorm:"column:well_id"`
	WellboreID       string   `gorm:"column:wellbore_id"`
	WellboreName     string   `gorm:"column:wellbore_name"`
	ParentWellboreID *string  `gorm:"column:parent_wellbore_id"`
	KoMD             *float64 `gorm:"column:ko_md"`
	KoTVD            *float64 `gorm:"column:ko_tvd"`
}

type ScenarioRow struct {
	WellID            string `gorm:"column:well_id"`
	WellboreID        string `gorm:"column:wellbore_id"`
	ScenarioID        string `gorm:"column:scenario_id"`
	ScenarioName      string `gorm:"column:scenario_name"`
	Phase             string `gorm:"column:phase"`
	DefSurveyHeaderID string `gorm:"column:def_survey_header_id"`
}

type DatumRow struct {
	WellID         string   `gorm:"column:well_id"`
	DatumID        string   `gorm:"column:datum_id"`
	IsOffshore     string   `gorm:"column:is_offshore"`
	IsDefault      string   `gorm:"column:is_default"`
	DatumElevation *float64 `gorm:"column:datum_elevation"`
	WaterDepth     *float64 `gorm:"column:water_depth"`
	WellheadDepth  *float64 `gorm:"column:wellhead_depth"`
}

type SurveyStationRow struct {
	MD          float64 `gorm:"column:md"`
	Inclination float64 `gorm:"column:inclination"`
	Azimuth     float64 `gorm:"column:azimuth"`
	TVD         float64 `gorm:"column:tvd"`
	OffsetNorth float64 `gorm:"column:offset_north"`
	OffsetEast  float64 `gorm:"column:offset_east"`
}

type GradientRow struct {
	FormationName string  `gorm:"column:formationname"`
	Value         float64 `gorm:"column:value"`
	DepthTVD      float64 `gorm:"column:depth_tvd"`
}

type LithologyRow struct {
	WellboreFormationID string   `gorm:"column:wellbore_formation_id"`
	FormationName       string   `gorm:"column:formation_name"`
	LithologyID         string   `gorm:"column:lithology_id"`
	LithologyName       string   `gorm:"column:lithology_name"`
	StratUnitName       string   `gorm:"column:strat_unit_name"`
	ActualMDTop         *float64 `gorm:"column:actual_md_top"`
	ActualMDBase        *float64 `gorm:"column:actual_md_base"`
	ActualTVDTop        *float64 `gorm:"column:actual_tvd_top"`
	ActualTVDBase       *float64 `gorm:"column:actual_tvd_base"`
	ActualPhase         string   `gorm:"column:actual_phase"`
	Comments            string   `gorm:"column:comments"`
}

type OperationLogRow struct {
	LogDate      *time.Time `gorm:"column:log_date"`
	Service      string     `gorm:"column:service"`
	MDTop        *float64   `gorm:"column:md_top"`
	MDBase       *float64   `gorm:"column:md_base"`
	Reason       string     `gorm:"column:reason"`
	AssemblyName string     `gorm:"column:assembly_name"`
	Comments     string     `gorm:"column:comments"`
}

type DeratingRow struct {
	PressureSurveyID string   `gorm:"column:pressure_survey_id"`
	SequenceNo       *float64 `gorm:"column:sequence_no"`
	MDTop            *float64 `gorm:"column:md_top"`
	MDBase           *float64 `gorm:"column:md_base"`
	DerratedPressure *float64 `gorm:"column:derrated_pressure"`
	Comments         string   `gorm:"column:comments"`
}

type HoleSectionRow struct {
	WellID          string     `gorm:"column:well_id"`
	WellboreID      string     `gorm:"column:wellbore_id"`
	HoleSectGroupID string     `gorm:"column:hole_sect_group_id"`
	HoleName        string     `gorm:"column:hole_name"`
	MDTop           float64    `gorm:"column:md_hole_sect_top"`
	MDBase          float64    `gorm:"column:md_hole_sect_base"`
	DateSectEnd     *time.Time `gorm:"column:date_sect_end"`
}

type HoleSectionCompRow struct {
	HoleSectGroupID string   `gorm:"column:hole_sect_group_id"`
	HoleSectID      string   `gorm:"column:hole_sect_id"`
	Diameter        *float64 `gorm:"column:hole_size"`
}

type IntegrityTestRow struct {
	WellID          string     `gorm:"column:well_id"`
	WellboreID      string     `gorm:"column:wellbore_id"`
	HoleSectGroupID string     `gorm:"column:hole_sect_group_id"`
	TestType        string     `gorm:"column:test_type"`
	TestDate        *time.Time `gorm:"column:test_date"`
	EMW             *float64   `gorm:"column:emw"`
}

type AssemblyRow struct {
	WellID        string   `gorm:"column:well_id"`
	WellboreID    string   `gorm:"column:wellbore_id"`
	AssemblyID    string   `gorm:"column:assembly_id"`
	AssemblyName  string   `gorm:"column:assembly_name"`
	AssemblySize  string   `gorm:"column:assembly_size"`
	StringType    string   `gorm:"column:string_type"`
	IsCasingLiner string   `gorm:"column:is_casing_liner"`
	SuspPoint     *float64 `gorm:"column:susp_point"`
	MDTop         float64  `gorm:"column:md_assembly_top"`
	MDBase        float64  `gorm:"column:md_assembly_base"`
	TVDTop        *float64 `gorm:"column:tvd_assembly_top"`
	TVDBase       *float64 `gorm:"column:tvd_assembly_base"`
}

type AssemblyComponentRow struct {
	WellID            string   `gorm:"column:well_id"`
	WellboreID        string   `gorm:"column:wellbore_id"`
	AssemblyID        string   `gorm:"column:assembly_id"`
	AssemblyCompID    string   `gorm:"column:assembly_comp_id"`
	SectTypeCode      string   `gorm:"column:sect_type_code"`
	CompTypeCode      string   `gorm:"column:comp_type_code"`
	Manufacturer      string   `gorm:"column:manufacturer"`
	Model             string   `gorm:"column:model"`
	Description       string   `gorm:"column:description"`
	CatalogKeyDesc    string   `gorm:"column:catalog_key_desc"`
	MDTop             float64  `gorm:"column:md_top"`
	MDBase            float64  `gorm:"column:md_base"`
	Length            float64  `gorm:"column:length"`
	Joints            *float64 `gorm:"column:joints"`
	ODBody            *float64 `gorm:"column:od_body"`
	IDBody            *float64 `gorm:"column:id_body"`
	GradeID           string   `gorm:"column:grade_id"`
	Grade             string   `gorm:"column:grade"`
	ApproximateWeight *float64 `gorm:"column:approximate_weight"`
	SerialNo          string   `gorm:"column:serial_no"`
	PressRatingTop    *float64 `gorm:"column:press_rating_top"`
	PressRatingBot    *float64 `gorm:"column:press_rating_bot"`
	PressureBurst     *float64 `gorm:"column:pressure_burst"`
	PressureCollapse  *float64 `gorm:"column:pressure_collapse"`
}

type CementStageRow struct {
	WellID              string     `gorm:"column:well_id"`
	WellboreID          string     `gorm:"column:wellbore_id"`
	CementJobID         string     `gorm:"column:cement_job_id"`
	CementStageID       string     `gorm:"column:cement_stage_id"`
	AssemblyID          string     `gorm:"column:assembly_id"`
	MDTop               float64    `gorm:"column:md_top"`
	MDBase              float64    `gorm:"column:md_base"`
	TVDTop              *float64   `gorm:"column:tvd_top"`
	JobType             string     `gorm:"column:job_type"`
	IsDrilledOut        string     `gorm:"column:is_drilled_out"`
	CasingTestPress     *float64   `gorm:"column:casing_test_press"`
	CasingTestDuration  *float64   `gorm:"column:casing_test_duration"`
	TestComments        string     `gorm:"column:test_comments"`
	DateReport          *time.Time `gorm:"column:date_report"`
	PlugType            string     `gorm:"column:plug_type"`
	IsLinerNegTestTool  string     `gorm:"column:is_liner_neg_test_tool"`
	LinerEMWNegTest     *float64   `gorm:"column:liner_emw_neg_test"`
}

type PerforationRow struct {
	WellID            string  `gorm:"column:well_id"`
	WellboreID        string  `gorm:"column:wellbore_id"`
	WellboreOpeningID string  `gorm:"column:wellbore_opening_id"`
	MDTop             float64 `gorm:"column:md_top"`
	MDBase            float64 `gorm:"column:md_base"`
	Status            string  `gorm:"column:status"`
}

type DrillingFluidRow struct {
	WellID     string     `gorm:"column:well_id"`
	WellboreID string     `gorm:"column:wellbore_id"`
	EventID    string     `gorm:"column:event_id"`
	FluidID    string     `gorm:"column:fluid_id"`
	FluidName  string     `gorm:"column:fluid_name"`
	Density    *float64   `gorm:"column:density"`
	CheckDate  *time.Time `gorm:"column:check_date"`
}

type CompletionFluidRow struct {
	WellID            string     `gorm:"column:well_id"`
	WellboreID        string     `gorm:"column:wellbore_id"`
	EventID           string     `gorm:"column:event_id"`
	CompletionFluidID string     `gorm:"column:completion_fluid_id"`
	FluidType         string     `gorm:"column:fluid_type"`
	FluidDensity      *float64   `gorm:"column:fluid_density"`
	MDTop             float64    `gorm:"column:md_top"`
	MDBase            float64    `gorm:"column:md_base"`
	InstallDate       *time.Time `gorm:"column:install_date"`
	RemovalDate       *time.Time `gorm:"column:removal_date"`
}

type WellheadComponentRow struct {
	WellID                   string     `gorm:"column:well_id"`
	EventID                  string     `gorm:"column:event_id"`
	WellheadID               string     `gorm:"column:wellhead_id"`
	WellheadCompID           string     `gorm:"column:wellhead_comp_id"`
	SectTypeCode             string     `gorm:"column:sect_type_code"`
	CompTypeCode             string     `gorm:"column:comp_type_code"`
	Make                     string     `gorm:"column:make"`
	Model                    string     `gorm:"column:model"`
	Comments                 string     `gorm:"column:comments"`
	WellheadSection          string     `gorm:"column:wellhead_section"`
	TestResult               string     `gorm:"column:test_result"`
	WorkingPressRating       *float64   `gorm:"column:working_press_rating"`
	ManufactureMethod        string     `gorm:"column:manufacture_method"`
	ConnectionTopPressRating *float64   `gorm:"column:connection_top_press_rating"`
	InstallDate              *time.Time `gorm:"column:install_date"`
	RemovalDate              *time.Time `gorm:"column:removal_date"`
}

type WellheadOutletRow struct {
	OutletID           string   `gorm:"column:outlet_id"`
	SectTypeCode       string   `gorm:"column:sect_type_code"`
	CompTypeCode       string   `gorm:"column:comp_type_code"`
	OutletLocation     string   `gorm:"column:outlet_location"`
	ValveMake          string   `gorm:"column:valve_make"`
	ValveModel         string   `gorm:"column:valve_model"`
	OutletWorkingPress *float64 `gorm:"column:outlet_working_press"`
}

type WellheadHangerRow struct {
	WellheadHangerID string  `gorm:"column:wellhead_hanger_id"`
	AssemblyID       *string `gorm:"column:assembly_id"`
	CompTypeCode     string  `gorm:"column:comp_type_code"`
	Model            string  `gorm:"column:model"`
	HangerSize       string  `gorm:"column:hanger_size"`
}

type AnnularPressureRow struct {
	WellID            string   `gorm:"column:well_id"`
	WellheadID        string   `gorm:"column:wellhead_id"`
	WellheadAnnPressID string  `gorm:"column:wellhead_ann_press_id"`
	AnnulusName       string   `gorm:"column:annulus_name"`
	Pressure          *float64 `gorm:"column:pressure"`
}

type PressureReliefRow struct {
	WellheadPressReliefID string   `gorm:"column:wellhead_press_relief_id"`
	ReliefType            string   `gorm:"column:relief_type"`
	SetPressure           *float64 `gorm:"column:set_pressure"`
}

type CatalogRow struct {
	CatalogID   string `gorm:"column:catalog_id"`
	CatalogType string `gorm:"column:catalog_type"`
	Description string `gorm:"column:description"`
}

type SSSVRow struct {
	AssemblyCompID            string   `gorm:"column:assembly_comp_id"`
	RecordedOpeningPressure   *float64 `gorm:"column:recorded_opening_pressure"`
	RecordedClosingPressure   *float64 `gorm:"column:recorded_closing_pressure"`
	NominalOpeningPressure    *float64 `gorm:"column:nominal_opening_pressure"`
	MaximumHydraulicsPressure *float64 `gorm:"column:maximum_hydraulics_pressure"`
	FunctionTestPassFail      string   `gorm:"column:function_test_pass_fail"`
}

type PackerRow struct {
	AssemblyCompID    string   `gorm:"column:assembly_comp_id"`
	PressureTestAbove *float64 `gorm:"column:pressure_test_above"`
	PressureTestBelow *float64 `gorm:"column:pressure_test_below"`
}

type ReportRow struct {
	WellID          string     `gorm:"column:well_id"`
	WellboreID      string     `gorm:"column:wellbore_id"`
	ReportJournalID string     `gorm:"column:report_journal_id"`
	DateReport      *time.Time `gorm:"column:date_report"`
}

type AnalysisReportRow struct {
	WellID     string     `gorm:"column:well_id"`
	WellboreID string     `gorm:"column:wellbore_id"`
	ReportID   string     `gorm:"column:report_id"`
	ReportName string     `gorm:"column:report_name"`
	ReportDate *time.Time `gorm:"column:report_date"`
}

type WellEventRow struct {
	WellID       string     `gorm:"column:well_id"`
	EventID      string     `gorm:"column:event_id"`
	EventCode    string     `gorm:"column:event_code"`
	DateOpsStart *time.Time `gorm:"column:date_ops_start"`
	DateOpsEnd   *time.Time `gorm:"column:date_ops_end"`
}

type WellRow struct {
	WellID      string `gorm:"column:well_id"`
	WellName    string `gorm:"column:well_common_name"`
	SiteID      string `gorm:"column:site_id"`
	ProjectName string `gorm:"column:project_name"`
	IsOffshore  string `gorm:"column:is_offshore"`
}

type AttachmentRow struct {
	WellID     string     `gorm:"column:well_id"`
	WellboreID string     `gorm:"column:wellbore_id"`
	FileName   string     `gorm:"column:file_name"`
	DateReport *time.Time `gorm:"column:date_report"`
}
