package types

import "time"

// Barrier overlay rows. These tables belong to this service (the
// physical tables do not), so the natural keys documented here are
// enforced with unique indexes.

type BarrierDiagramRow struct {
	BarrierDiagramID string    `gorm:"column:barrier_diagram_id"`
	WellID           string    `gorm:"column:well_id;uniqueIndex:ux_barrier_diagram_nk"`
	WellboreID       string    `gorm:"column:wellbore_id;uniqueIndex:ux_barrier_diagram_nk"`
	ScenarioID       string    `gorm:"column:scenario_id;uniqueIndex:ux_barrier_diagram_nk"`
	DiagramDate      time.Time `gorm:"column:diagram_date;uniqueIndex:ux_barrier_diagram_nk"`
}

func (BarrierDiagramRow) TableName() string { return "CD_BARRIER_DIAGRAM_T" }

type BarrierEnvelopeRow struct {
	BarrierEnvelopeID string `gorm:"column:barrier_envelope_id"`
	BarrierDiagramID  string `gorm:"column:barrier_diagram_id;uniqueIndex:ux_barrier_envelope_nk"`
	WellID            string `gorm:"column:well_id"`
	WellboreID        string `gorm:"column:wellbore_id"`
	ScenarioID        string `gorm:"column:scenario_id"`
	Name              string `gorm:"column:name;uniqueIndex:ux_barrier_envelope_nk"`
}

func (BarrierEnvelopeRow) TableName() string { return "CD_BARRIER_ENVELOPE_T" }

type BarrierElementRow struct {
	BarrierElementID  string   `gorm:"column:barrier_element_id"`
	BarrierEnvelopeID string   `gorm:"column:barrier_envelope_id"`
	BarrierDiagramID  string   `gorm:"column:barrier_diagram_id"`
	WellID            string   `gorm:"column:well_id"`
	WellboreID        string   `gorm:"column:wellbore_id"`
	ScenarioID        string   `gorm:"column:scenario_id"`
	RefID             string   `gorm:"column:ref_id"`
	ElementType       string   `gorm:"column:element_type"`
	WellheadID        *string  `gorm:"column:wellhead_id"`
	WellheadCompID    *string  `gorm:"column:wellhead_comp_id"`
	WellheadOutletID  *string  `gorm:"column:wellhead_outlet_id"`
	WellheadHangerID  *string  `gorm:"column:wellhead_hanger_id"`
	AssemblyID        *string  `gorm:"column:assembly_id"`
	AssemblyCompID    *string  `gorm:"column:assembly_comp_id"`
	CementJobID       *string  `gorm:"column:cement_job_id"`
	CementStageID     *string  `gorm:"column:cement_stage_id"`
	WellboreFormationID *string `gorm:"column:wellbore_formation_id"`
	CompletionFluidID *string  `gorm:"column:completion_fluid_id"`
	ComponentWearing  *float64 `gorm:"column:component_wearing"`
	ComponentOvality  *float64 `gorm:"column:component_ovality"`
	TopDepth          *float64 `gorm:"column:top_depth"`
	BaseDepth         *float64 `gorm:"column:base_depth"`
}

func (BarrierElementRow) TableName() string { return "CD_BARRIER_ELEMENT_T" }

// ElementBarrier is the diagram-envelope-element join projection:
// one barrier element row with the owning envelope's name alongside.
type ElementBarrier struct {
	BarrierName string   `gorm:"column:barrier_name"`
	RefID       string   `gorm:"column:ref_id"`
	ElementType string   `gorm:"column:element_type"`
	TopDepth    *float64 `gorm:"column:top_depth"`
	BaseDepth   *float64 `gorm:"column:base_depth"`
}

type EnvelopeTestRow struct {
	BarrierEnvelopeTestID string    `gorm:"column:barrier_envelope_test_id"`
	BarrierEnvelopeID     string    `gorm:"column:barrier_envelope_id"`
	BarrierDiagramID      string    `gorm:"column:barrier_diagram_id"`
	WellID                string    `gorm:"column:well_id"`
	WellboreID            string    `gorm:"column:wellbore_id"`
	ScenarioID            string    `gorm:"column:scenario_id"`
	Status                string    `gorm:"column:status"`
	LastTestDate          time.Time `gorm:"column:last_test_date"`
	CreateUser            string    `gorm:"column:create_user"`
}

func (EnvelopeTestRow) TableName() string { return "CD_BARRIER_ENV_TEST_T" }

type ElementTestLinkRow struct {
	BarrierElementTestID  string    `gorm:"column:barrier_element_test_id"`
	BarrierEnvelopeTestID string    `gorm:"column:barrier_envelope_test_id"`
	BarrierElementID      string    `gorm:"column:barrier_element_id"`
	BarrierEnvelopeID     string    `gorm:"column:barrier_envelope_id"`
	BarrierDiagramID      string    `gorm:"column:barrier_diagram_id"`
	Status                *string   `gorm:"column:status"`
	ComponentOvality      *float64  `gorm:"column:component_ovality"`
	ComponentWearing      *float64  `gorm:"column:component_wearing"`
	Details               string    `gorm:"column:details"`
	LastTestDate          time.Time `gorm:"column:last_test_date"`
	CreateUser            string    `gorm:"column:create_user"`
}

func (ElementTestLinkRow) TableName() string { return "CD_BARRIER_ELEM_TEST_T" }

type AnnulusElementRow struct {
	AnnulusElementID string   `gorm:"column:annulus_element_id"`
	WellID           string   `gorm:"column:well_id"`
	WellboreID       string   `gorm:"column:wellbore_id"`
	ScenarioID       string   `gorm:"column:scenario_id"`
	BarrierDiagramID string   `gorm:"column:barrier_diagram_id;uniqueIndex:ux_annulus_element_nk"`
	Name             string   `gorm:"column:name;uniqueIndex:ux_annulus_element_nk"`
	Pressure         *float64 `gorm:"column:pressure"`
	Density          *float64 `gorm:"column:density"`
}

func (AnnulusElementRow) TableName() string { return "CD_ANNULUS_ELEMENT_T" }

// Annulus test types. The write path keeps at most one live row per
// (annulus element, type).
const (
	AnnulusTestMOP   = "MOP"
	AnnulusTestMAWOP = "MAWOP"
	AnnulusTestMAASP = "MAASP"
)

type AnnulusTestRow struct {
	AnnulusTestID    string     `gorm:"column:annulus_test_id"`
	AnnulusElementID string     `gorm:"column:annulus_element_id"`
	WellID           string     `gorm:"column:well_id"`
	WellboreID       string     `gorm:"column:wellbore_id"`
	ScenarioID       string     `gorm:"column:scenario_id"`
	BarrierDiagramID string     `gorm:"column:barrier_diagram_id"`
	TestType         string     `gorm:"column:test_type"`
	Pressure         *float64   `gorm:"column:pressure"`
	Location         *string    `gorm:"column:location"`
	LastTestDate     time.Time  `gorm:"column:last_test_date"`
	CreateUser       string     `gorm:"column:create_user"`
}

func (AnnulusTestRow) TableName() string { return "CD_ANNULUS_TEST_T" }

// AnnulusLatestTest is the per-annulus summary of the three
// operative-condition tests.
type AnnulusLatestTest struct {
	MOPValue      *float64 `json:"mop_value"`
	MAWOPValue    *float64 `json:"mawop_value"`
	MAWOPLocation *string  `json:"mawop_location"`
	MAASPValue    *float64 `json:"maasp_value"`
	MAASPLocation *string  `json:"maasp_location"`
}

// Envelope evaluation statuses, worst first.
const (
	StatusNotEffective       = "Not Effective"
	StatusPartiallyEffective = "Partially Effective"
	StatusEffective          = "Effective"
)

// BarrierToggle is one element toggle tuple: marking or unmarking one
// physical element as part of one named envelope.
type BarrierToggle struct {
	Barrier     string   `json:"barrier" binding:"required"`
	ElementType string   `json:"elementType" binding:"required"`
	EventRefID  string   `json:"eventRefId" binding:"required"`
	Top         *float64 `json:"top"`
	Base        *float64 `json:"base"`
}

// BarriersModifyRequest toggles a batch of elements against the
// diagram identified by the embedded natural key.
type BarriersModifyRequest struct {
	WellID            string          `json:"well_id" binding:"required"`
	WellboreID        string          `json:"wellbore_id" binding:"required"`
	ScenarioID        string          `json:"scenario_id" binding:"required"`
	SchematicDate     time.Time       `json:"schematic_date"`
	BarrierModifyData []BarrierToggle `json:"barrier_modify_data"`
}

// BarrierElementEvaluation is one element's evaluation inside a bulk
// envelope evaluation call.
type BarrierElementEvaluation struct {
	RefID             string   `json:"ref_id"`
	BarrierElementID  string   `json:"barrier_element_id"`
	BarrierEnvelopeID string   `json:"barrier_envelope_id"`
	BarrierDiagramID  string   `json:"barrier_diagram_id"`
	ScenarioID        string   `json:"scenario_id"`
	Status            *string  `json:"status"`
	ComponentOvality  *float64 `json:"component_ovality"`
	ComponentWearing  *float64 `json:"component_wearing"`
	Details           string   `json:"details"`
	CreateUser        string   `json:"create_user"`
}

type BarriersEvaluationRequest struct {
	WellID      string                     `json:"well_id" binding:"required"`
	WellboreID  string                     `json:"wellbore_id" binding:"required"`
	Evaluations []BarrierElementEvaluation `json:"evaluations"`
}

// AnnulusEvaluationRequest replaces the annulus element named Annular
// for the diagram natural key and records its three test values.
type AnnulusEvaluationRequest struct {
	WellID        string    `json:"well_id" binding:"required"`
	WellboreID    string    `json:"wellbore_id" binding:"required"`
	ScenarioID    string    `json:"scenario_id" binding:"required"`
	SchematicDate time.Time `json:"schematic_date"`
	Annular       string    `json:"Anular" binding:"required"`
	Pressure      *float64  `json:"pressure"`
	Density       *float64  `json:"density"`
	MOP           *float64  `json:"MOP"`
	MAWOP         *float64  `json:"MAWOP"`
	MAWOPPoint    *string   `json:"mawop_point"`
	MAASP         *float64  `json:"MAASP"`
	MAASPPoint    *string   `json:"maasp_point"`
	CreateUser    string    `json:"create_user"`
}
