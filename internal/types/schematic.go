package types

import "time"

// Schematic is the assembled physical model of one wellbore as of a
// date, with barrier annotations attached to each element.
type Schematic struct {
	Units           Units             `json:"Units"`
	ReferenceDepths ReferenceDepths   `json:"ReferenceDepths"`
	Wellhead        *Wellhead         `json:"Wellhead"`
	AnnulusData     []AnnulusStatus   `json:"AnnulusData"`
	PPGradient      []GradientRow     `json:"WellborePPGradient"`
	FPGradient      []GradientRow     `json:"WellboreFPGradient"`
	TGradient       []GradientRow     `json:"WellboreTGradient"`
	Survey          []SurveyStation   `json:"Survey"`
	DeratingData    []DeratingRow     `json:"DeratingData"`
	Catalogs        []CatalogRow      `json:"Catalogs"`
	Lithology       []Formation       `json:"Lithology"`
	Logs            []OperationLog    `json:"Logs"`
	HoleSections    []HoleSection     `json:"HoleSections"`
	Casings         []Casing          `json:"Casings"`
	CementStages    []CementStage     `json:"CementJobs"`
	Assemblies      []Assembly        `json:"Assemblies"`
	Perforations    []Perforation     `json:"Perforations"`
	Fluids          []FluidSegment    `json:"Fluids"`
}

type Units struct {
	DepthUnits    string `json:"DepthUnits"`
	DiameterUnits string `json:"DiameterUnits"`
	LengthUnits   string `json:"LengthUnits"`
	DepthDP       int    `json:"DepthDP"`
	DiameterDP    int    `json:"DiameterDP"`
	LengthDP      int    `json:"LengthDP"`
}

type ReferenceDepths struct {
	Offshore       bool    `json:"Offshore"`
	AirGap         float64 `json:"AirGap"`
	WaterDepth     float64 `json:"WaterDepth"`
	Mudline        float64 `json:"Mudline"`
	DatumElevation float64 `json:"DatumElevation"`
	WellheadDepth  float64 `json:"WellheadDepth"`
	SystemDatum    string  `json:"SystemDatum"`
}

type SurveyStation struct {
	MD  float64 `json:"Md"`
	Inc float64 `json:"Inc"`
	Azi float64 `json:"Azi"`
	TVD float64 `json:"Tvd"`
	NS  float64 `json:"Ns"`
	EW  float64 `json:"Ew"`
}

// BarrierSpan is one named barrier drawn over a depth interval of an
// element.
type BarrierSpan struct {
	BarrierID  string  `json:"barrier_id"`
	From       float64 `json:"from"`
	To         float64 `json:"to"`
	IsCombined bool    `json:"is_combined"`
}

type Wellhead struct {
	Components       []WellheadComponent `json:"Component"`
	AnnularPressures []AnnularPressure   `json:"AnnularPressure"`
}

type WellheadComponent struct {
	RefID           string           `json:"ref_id"`
	SectType        string           `json:"SectType"`
	CompType        string           `json:"CompType"`
	Manufacturer    string           `json:"Manufacturer"`
	Model           string           `json:"Model"`
	Description     string           `json:"description"`
	WellheadSection string           `json:"wellhead_section"`
	TestResult      string           `json:"test_result"`
	TestDuration    string           `json:"test_duration"`
	TestPressure    *float64         `json:"test_pressure"`
	TopPresRating   *float64         `json:"TopPresRating"`
	Comments        string           `json:"comments"`
	InstallDate     *time.Time       `json:"installDate"`
	RemovalDate     *time.Time       `json:"removalDate"`
	BarrierID       string           `json:"barrier_id"`
	IsBarrierClosed bool             `json:"is_barrier_closed"`
	IncludeSeals    bool             `json:"include_seals"`
	Outlets         []WellheadOutlet `json:"Outlet"`
	Hangers         []WellheadHanger `json:"Hanger"`
}

type WellheadOutlet struct {
	RefID              string   `json:"ref_id"`
	SectType           string   `json:"SectType"`
	CompType           string   `json:"CompType"`
	Location           string   `json:"Location"`
	Manufacturer       string   `json:"Manufacturer"`
	Model              string   `json:"Model"`
	Description        string   `json:"description"`
	WellheadSection    string   `json:"wellhead_section"`
	TestResult         string   `json:"test_result"`
	TestDuration       string   `json:"test_duration"`
	TestPressure       *float64 `json:"test_pressure"`
	OutletWorkingPress *float64 `json:"OutletWorkingPress"`
	BarrierID          string   `json:"barrier_id"`
	IsBarrierClosed    bool     `json:"is_barrier_closed"`
	IncludeSeals       bool     `json:"include_seals"`
}

type WellheadHanger struct {
	RefID           string `json:"ref_id"`
	SectType        string `json:"SectType"`
	CompType        string `json:"CompType"`
	Description     string `json:"description"`
	Model           string `json:"Model"`
	Size            string `json:"Size"`
	BarrierID       string `json:"barrier_id"`
	IsBarrierClosed bool   `json:"is_barrier_closed"`
	IncludeSeals    bool   `json:"include_seals"`
}

type AnnularPressure struct {
	AnnularPressureRow
	PressureReliefs []PressureReliefRow `json:"PressureRelief"`
}

// AnnulusStatus is one annulus element with its latest operative
// condition test values.
type AnnulusStatus struct {
	AnnulusElementRow
	AnnulusLatestTest
}

type Formation struct {
	RefID         string   `json:"ref_id"`
	Lithology     string   `json:"Lithology"`
	Top           *float64 `json:"Top"`
	Base          *float64 `json:"Base"`
	TopTVD        *float64 `json:"TopTVD"`
	BaseTVD       *float64 `json:"BaseTVD"`
	Label         string   `json:"Label"`
	StratUnitName string   `json:"StratUnitName"`
	Description   string   `json:"description"`
	Phase         string   `json:"phase"`
	Comments      string   `json:"comments"`
	BarrierDepth  *float64 `json:"BarrierDepth"`
	BarrierID     string   `json:"barrier_id"`
}

type OperationLog struct {
	LogDate      *time.Time `json:"log_date"`
	Service      string     `json:"service"`
	MDTop        *float64   `json:"md_top"`
	MDBase       *float64   `json:"md_base"`
	Reason       string     `json:"reason"`
	AssemblyName string     `json:"assembly_name"`
	Comments     string     `json:"comments"`
}

type HoleSection struct {
	RefID          string             `json:"ref_id"`
	Name           string             `json:"name"`
	StartMD        float64            `json:"StartMD"`
	Length         float64            `json:"Length"`
	Diameter       float64            `json:"Diameter"`
	DateSectEnd    *time.Time         `json:"dateSectEnd"`
	IntegrityTests []IntegrityTestRow `json:"IntegrityTest"`
}

type Casing struct {
	RefID       string            `json:"ref_id"`
	Index       int               `json:"index"`
	StringType  string            `json:"StringType"`
	IsCasing    bool              `json:"isCasing"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	AssemblyID  string            `json:"AssemblyID"`
	Size        string            `json:"assemblySize"`
	TopMD       float64           `json:"mdAssemblyTop"`
	BaseMD      float64           `json:"mdAssemblyBase"`
	TopTVD      *float64          `json:"TvdAssemblyTop"`
	BaseTVD     *float64          `json:"TvdAssemblyBase"`
	Liner       *float64          `json:"Liner"`
	Components  []CasingComponent `json:"Component"`
	Barriers    []BarrierSpan     `json:"Barrier"`
}

type CasingComponent struct {
	RefID             string   `json:"ref_id"`
	SectType          string   `json:"SectType"`
	CompType          string   `json:"CompType"`
	Manufacturer      string   `json:"Manufacturer"`
	Model             string   `json:"Model"`
	Description       string   `json:"description"`
	StartMD           float64  `json:"StartMD"`
	BottomMD          float64  `json:"BottomMD"`
	Length            float64  `json:"Length"`
	JointCount        *float64 `json:"JointCount"`
	ComponentID       string   `json:"ComponentID"`
	OD                *float64 `json:"OD"`
	ID                *float64 `json:"ID"`
	GradeID           string   `json:"GradeID"`
	Grade             string   `json:"Grade"`
	ApproxWeight      *float64 `json:"ApproxiWeight"`
	SectionName       string   `json:"CasingSectionName"`
	SerialNo          string   `json:"SerialNo"`
	PressRatingTop    *float64 `json:"PressRatingTop"`
	PressRatingBottom *float64 `json:"PressRatingBottom"`
	BurstPressure     *float64 `json:"BurstPressure"`
	CollapsePressure  *float64 `json:"CollapsePressure"`
	Stretchable       bool     `json:"Stretchable"`
	BarrierID         string   `json:"barrier_id"`
	BarrierFrom       *float64 `json:"barrier_from"`
	BarrierTo         *float64 `json:"barrier_to"`
}

type CementStage struct {
	RefID              string        `json:"ref_id"`
	TopMD              float64       `json:"TopMD"`
	BottomMD           float64       `json:"BottomMD"`
	TVDTop             *float64      `json:"Tvd_top"`
	CasingIndex        int           `json:"CasingIndex"`
	AssemblyID         string        `json:"AssemID"`
	AssemblyName       string        `json:"AssemblyName"`
	AssemblyOD         string        `json:"AssemblyOd"`
	StageName          string        `json:"stageName"`
	Description        string        `json:"description"`
	Plug               bool          `json:"Plug"`
	Drilled            bool          `json:"Drilled"`
	Color              string        `json:"Color"`
	CasingTest         *float64      `json:"CasingTest"`
	CasingTestDuration *float64      `json:"CasingTestDuration"`
	CasingTestComment  string        `json:"CasingTestComment"`
	DateReport         *time.Time    `json:"DateReport"`
	PlugType           string        `json:"PlugType"`
	LinerNegTestTool   string        `json:"LinerNegTestTool"`
	LinerEMWNegTest    *float64      `json:"LinerEnwNegTest"`
	Barriers           []BarrierSpan `json:"Barrier"`
	BarrierID          string        `json:"barrier_id"`
}

type Assembly struct {
	RefID      string              `json:"ref_id"`
	AssemblyID string              `json:"AssemblyID"`
	Name       string              `json:"name"`
	Size       string              `json:"assemblySize"`
	IsCasing   bool                `json:"isCasing"`
	TopMD      float64             `json:"mdAssemblyTop"`
	BaseMD     float64             `json:"mdAssemblyBase"`
	TopTVD     *float64            `json:"TvdAssemblyTop"`
	BaseTVD    *float64            `json:"TvdAssemblyBase"`
	Components []AssemblyComponent `json:"Component"`
}

type AssemblyComponent struct {
	RefID                 string   `json:"ref_id"`
	SectType              string   `json:"SectType"`
	CompType              string   `json:"CompType"`
	AssemblyName          string   `json:"assemblyName"`
	StartMD               float64  `json:"StartMD"`
	BottomMD              float64  `json:"BottomMD"`
	Length                float64  `json:"Length"`
	ActualLength          float64  `json:"ActualLength"`
	OD                    *float64 `json:"OD"`
	ID                    *float64 `json:"ID"`
	ComponentID           string   `json:"ComponentID"`
	Manufacturer          string   `json:"Manufacturer"`
	Model                 string   `json:"Model"`
	Description           string   `json:"description"`
	ItemDescription       string   `json:"ItemDescription"`
	ApproximateWeight     *float64 `json:"ApproximateWeight"`
	GradeID               string   `json:"GradeId"`
	Joints                *float64 `json:"Joints"`
	PressRatingTop        *float64 `json:"PressRatingTop"`
	BurstPressure         *float64 `json:"BurstPressure"`
	CollapsePressure      *float64 `json:"CollapsePressure"`
	RecordOpenPress       *float64 `json:"RecordOpenPress"`
	RecordClosePress      *float64 `json:"RecordClosePress"`
	NominalPress          *float64 `json:"NominalPress"`
	MaximumHydraulics     *float64 `json:"MaximunHydraulics"`
	FunctionTestPass      string   `json:"FunctionTestPass"`
	PressureTestAbove     *float64 `json:"PressureTestAbove"`
	PressureTestBelow     *float64 `json:"PressureTestBelow"`
	BarrierID             string   `json:"barrier_id"`
	BarrierFrom           *float64 `json:"barrier_from"`
	BarrierTo             *float64 `json:"barrier_to"`
	IsBarrierClosedTop    bool     `json:"is_barrier_closed_at_top"`
	IsBarrierClosedBottom bool     `json:"is_barrier_closed_at_bottom"`
	IncludeSeals          bool     `json:"include_seals"`
}

type Perforation struct {
	RefID   string  `json:"ref_id"`
	StartMD float64 `json:"StartMD"`
	EndMD   float64 `json:"EndMD"`
	Key     string  `json:"Key"`
	Status  string  `json:"Status"`
	Name    string  `json:"name"`
}

// Fluid segment kinds.
const (
	FluidDrilling   = "DRILLING"
	FluidCompletion = "COMPLETION"
)

type FluidSegment struct {
	RefID        string        `json:"ref_id"`
	Type         string        `json:"FluidKind"`
	StartDepth   float64       `json:"StartDepth"`
	EndDepth     float64       `json:"EndDepth"`
	CasingIndex  int           `json:"CasingIndex"`
	InsideCasing bool          `json:"InsideCasing"`
	FluidType    string        `json:"FluidType"`
	Description  string        `json:"description"`
	FluidDensity *float64      `json:"FluidDensity"`
	Color        string        `json:"Color"`
	Barriers     []BarrierSpan `json:"Barrier"`
}

// WellborePathNode is one hop of the resolved top-to-bottom wellbore
// chain.
type WellborePathNode struct {
	WellID           string   `json:"well_id"`
	WellboreID       string   `json:"wellbore_id"`
	Name             string   `json:"name"`
	ParentWellboreID *string  `json:"parent_wellbore_id"`
	KickoffMD        *float64 `json:"kickoff_md"`
	KickoffTVD       *float64 `json:"kickoff_tvd"`
}
