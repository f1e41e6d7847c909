package services

import (
	"context"
	"math"
	"testing"

	"github.com/wellsight/wellsight-backend/internal/platform/logger"
	"github.com/wellsight/wellsight-backend/internal/repos"
	"github.com/wellsight/wellsight-backend/internal/types"
)

func newActualProvider(wellbores *fakeWellboreRepo, tubulars *fakeTubularRepo, wellheads *fakeWellheadRepo, reference *fakeReferenceRepo, barriers *fakeBarrierRepo, annulus *fakeAnnulusRepo) *ActualSchematicProvider {
	log := logger.NewNop()
	helper := NewSchematicHelper(wellbores, barriers, log)
	return NewActualSchematicProvider(helper, wellbores, tubulars, wellheads, reference, barriers, annulus, log)
}

func actualScenario() *types.ScenarioRow {
	return &types.ScenarioRow{
		WellID:            "W1",
		WellboreID:        "WB1",
		ScenarioID:        "S1",
		Phase:             types.PhaseActual,
		DefSurveyHeaderID: "DSH1",
	}
}

func TestAssembleSingleWellbore(t *testing.T) {
	wellbores := &fakeWellboreRepo{
		wellbores: map[string]types.WellboreRow{
			"WB1": {WellID: "W1", WellboreID: "WB1", WellboreName: "Original Hole"},
		},
		scenario: actualScenario(),
		datum: &types.DatumRow{
			WellID:         "W1",
			IsOffshore:     "Y",
			DatumElevation: f64(30),
			WaterDepth:     f64(20),
			WellheadDepth:  f64(25),
		},
		stations: []types.SurveyStationRow{
			{MD: 0, TVD: 0},
			{MD: 1500.04, Inclination: 2.5, TVD: 1499.96},
			{MD: 3000.44, Inclination: 5, TVD: 2998.26},
		},
		gradients: map[repos.GradientKind][]types.GradientRow{
			repos.GradientPorePressure: {{FormationName: "Shale", Value: 9.1, DepthTVD: 1000}},
		},
	}
	tubulars := &fakeTubularRepo{
		holeSections: map[string][]types.HoleSectionRow{
			"WB1": {{WellID: "W1", WellboreID: "WB1", HoleSectGroupID: "HS1", HoleName: "17 1/2", MDTop: 0, MDBase: 1500}},
		},
		casings: map[string][]types.AssemblyRow{
			"WB1": {{
				WellID: "W1", WellboreID: "WB1", AssemblyID: "A1",
				AssemblyName: "9 5/8 Casing", AssemblySize: "9.625",
				StringType: "Casing", IsCasingLiner: "Y", SuspPoint: f64(0),
				MDTop: 0, MDBase: 1500.04, TVDTop: f64(0), TVDBase: f64(1499.9),
			}},
		},
		assemblies: map[string][]types.AssemblyRow{
			"WB1": {{
				WellID: "W1", WellboreID: "WB1", AssemblyID: "A2",
				AssemblyName: "Production Tubing", StringType: "Tubing",
				MDTop: 0, MDBase: 2800,
			}},
		},
		components: map[string][]types.AssemblyComponentRow{
			"A1": {{
				WellID: "W1", WellboreID: "WB1", AssemblyID: "A1", AssemblyCompID: "C1",
				SectTypeCode: "CAS", CompTypeCode: "LIN", CatalogKeyDesc: "9 5/8 55# L80",
				MDTop: 0, MDBase: 1500.04, Length: 1500.04,
			}},
			"A2": {
				{
					WellID: "W1", WellboreID: "WB1", AssemblyID: "A2", AssemblyCompID: "TH1",
					SectTypeCode: "WBEQP", CompTypeCode: "TH",
					MDTop: 100, MDBase: 100.5, Length: 0.5,
				},
				{
					WellID: "W1", WellboreID: "WB1", AssemblyID: "A2", AssemblyCompID: "PKR1",
					SectTypeCode: "WBEQP", CompTypeCode: "PKR",
					MDTop: 2700, MDBase: 2705, Length: 5,
				},
			},
		},
		cement: map[string][]types.CementStageRow{
			"WB1": {{
				WellID: "W1", WellboreID: "WB1", CementJobID: "J1", CementStageID: "CS1",
				AssemblyID: "A1", MDTop: 1200, MDBase: 1500.04,
				JobType: "Casing Cement", IsDrilledOut: "N",
			}},
		},
		perforations: map[string][]types.PerforationRow{
			"WB1": {{WellID: "W1", WellboreID: "WB1", MDTop: 2500, MDBase: 2600, Status: "OPEN"}},
		},
		drilling: &types.DrillingFluidRow{
			WellID: "W1", WellboreID: "WB1", EventID: "EV1", FluidID: "FL1",
			FluidName: "OBM", Density: f64(1.25),
		},
		packers: map[string]*types.PackerRow{
			"PKR1": {AssemblyCompID: "PKR1", PressureTestAbove: f64(3000), PressureTestBelow: f64(2500)},
		},
	}
	wellheads := &fakeWellheadRepo{
		components: []types.WellheadComponentRow{{
			WellID: "W1", EventID: "EV1", WellheadID: "WH1", WellheadCompID: "WC1",
			SectTypeCode: "WHD", CompTypeCode: "SPOOL", Make: "Acme", Model: "X-10",
			WellheadSection: "A",
		}},
		hangers: map[string][]types.WellheadHangerRow{
			"WC1": {{WellheadHangerID: "H1", CompTypeCode: "HGR", Model: "H-1", HangerSize: "13 5/8"}},
		},
	}
	reference := &fakeReferenceRepo{
		diameters: map[string]float64{"HS1": 17.5},
		activeIDs: map[string][]string{"WB1": {"A1", "A2"}},
		catalogs:  []types.CatalogRow{{CatalogID: "CAT1", CatalogType: "OD", Description: "9.625"}},
	}
	barriers := &fakeBarrierRepo{
		elementBarriers: []types.ElementBarrier{
			{BarrierName: "Primary", RefID: "CdAssemblyT/W1+WB1+A1", TopDepth: f64(100), BaseDepth: f64(900)},
			{BarrierName: "Secondary", RefID: "CdAssemblyCompT_WBEQP/W1+WB1+A2+PKR1"},
		},
	}
	provider := newActualProvider(wellbores, tubulars, wellheads, reference, barriers, &fakeAnnulusRepo{})

	q := testQuery()
	s, err := provider.Assemble(context.Background(), q, actualScenario())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	if s.Units.DepthUnits != "ft" || s.Units.DepthDP != 1 {
		t.Fatalf("units mismatch: %+v", s.Units)
	}
	if !s.ReferenceDepths.Offshore || s.ReferenceDepths.AirGap != 10 || s.ReferenceDepths.Mudline != 10 {
		t.Fatalf("reference depths mismatch: %+v", s.ReferenceDepths)
	}
	if len(s.Survey) != 3 || s.Survey[2].MD != 3000.4 {
		t.Fatalf("survey rounding off: %+v", s.Survey)
	}
	if len(s.PPGradient) != 1 {
		t.Fatalf("pore pressure gradient lost: %+v", s.PPGradient)
	}

	if len(s.HoleSections) != 1 {
		t.Fatalf("hole sections = %d, want 1", len(s.HoleSections))
	}
	if s.HoleSections[0].Diameter != 17.5 || s.HoleSections[0].Length != 1500 {
		t.Fatalf("hole section mismatch: %+v", s.HoleSections[0])
	}

	if len(s.Casings) != 1 {
		t.Fatalf("casings = %d, want 1", len(s.Casings))
	}
	casing := s.Casings[0]
	if casing.Index != 0 || !casing.IsCasing || casing.BaseMD != 1500.0 {
		t.Fatalf("casing mismatch: %+v", casing)
	}
	if len(casing.Barriers) != 1 || casing.Barriers[0].From != 100 || casing.Barriers[0].To != 900 || !casing.Barriers[0].IsCombined {
		t.Fatalf("casing barrier spans wrong: %+v", casing.Barriers)
	}
	if len(casing.Components) != 1 || casing.Components[0].CompType != "CAS" {
		t.Fatalf("liner section must render as casing: %+v", casing.Components)
	}

	if len(s.CementStages) != 1 {
		t.Fatalf("cement stages = %d, want 1", len(s.CementStages))
	}
	stage := s.CementStages[0]
	if stage.CasingIndex != 0 || stage.Color != "162,180,185" || stage.AssemblyName != "9 5/8 Casing" {
		t.Fatalf("cement stage mismatch: %+v", stage)
	}
	if stage.Plug || stage.Drilled {
		t.Fatalf("plug/drilled flags wrong: %+v", stage)
	}

	if len(s.Assemblies) != 1 {
		t.Fatalf("assemblies = %d, want 1", len(s.Assemblies))
	}
	comps := s.Assemblies[0].Components
	if len(comps) != 2 {
		t.Fatalf("assembly components = %d, want 2", len(comps))
	}
	th := comps[0]
	if th.Length != 1 || th.ActualLength != 0.5 {
		t.Fatalf("hanger floor not applied: Length=%v ActualLength=%v", th.Length, th.ActualLength)
	}
	if !th.IsBarrierClosedTop || th.IsBarrierClosedBottom {
		t.Fatalf("first component closure flags wrong: %+v", th)
	}
	pkr := comps[1]
	if !pkr.IsBarrierClosedBottom {
		t.Fatalf("last component must close at bottom: %+v", pkr)
	}
	if pkr.BarrierFrom == nil || pkr.BarrierTo == nil {
		t.Fatal("barrier depths missing on flagged component")
	}
	if math.Abs(*pkr.BarrierFrom-2700.01) > 1e-9 || math.Abs(*pkr.BarrierTo-2704.99) > 1e-9 {
		t.Fatalf("barrier nudge wrong: from=%v to=%v", *pkr.BarrierFrom, *pkr.BarrierTo)
	}
	if pkr.PressureTestAbove == nil || *pkr.PressureTestAbove != 3000 {
		t.Fatalf("packer data not joined: %+v", pkr)
	}

	if len(s.Perforations) != 1 || s.Perforations[0].Key != "00003" {
		t.Fatalf("perforation mismatch: %+v", s.Perforations)
	}

	if len(s.Fluids) != 1 {
		t.Fatalf("fluids = %d, want 1", len(s.Fluids))
	}
	fluid := s.Fluids[0]
	if fluid.Type != types.FluidDrilling || !fluid.InsideCasing {
		t.Fatalf("fluid kind mismatch: %+v", fluid)
	}
	if fluid.StartDepth != -20 || fluid.EndDepth != 3000.4 {
		t.Fatalf("fluid depths mismatch: start=%v end=%v", fluid.StartDepth, fluid.EndDepth)
	}
	if fluid.CasingIndex != 0 {
		t.Fatalf("fluid casing index = %d, want 0", fluid.CasingIndex)
	}

	if s.Wellhead == nil || len(s.Wellhead.Components) != 1 {
		t.Fatalf("wellhead missing: %+v", s.Wellhead)
	}
	hangers := s.Wellhead.Components[0].Hangers
	if len(hangers) != 1 || !hangers[0].IsBarrierClosed || !hangers[0].IncludeSeals {
		t.Fatalf("hanger flags wrong: %+v", hangers)
	}
}

func TestAssembleSidetrackClampsParent(t *testing.T) {
	wellbores := &fakeWellboreRepo{
		wellbores: map[string]types.WellboreRow{
			"WB0": {WellID: "W1", WellboreID: "WB0", WellboreName: "Original Hole"},
			"WB1": {WellID: "W1", WellboreID: "WB1", WellboreName: "Sidetrack", ParentWellboreID: str("WB0"), KoMD: f64(2000), KoTVD: f64(1950)},
		},
		scenario: actualScenario(),
	}
	tubulars := &fakeTubularRepo{
		casings: map[string][]types.AssemblyRow{
			"WB0": {
				{WellID: "W1", WellboreID: "WB0", AssemblyID: "A0", AssemblyName: "13 3/8 Casing", StringType: "Casing", IsCasingLiner: "Y", MDTop: 0, MDBase: 2500, TVDBase: f64(2400)},
				{WellID: "W1", WellboreID: "WB0", AssemblyID: "A9", AssemblyName: "Deep Liner", StringType: "Liner", MDTop: 2200, MDBase: 2600},
			},
			"WB1": {
				{WellID: "W1", WellboreID: "WB1", AssemblyID: "A5", AssemblyName: "9 5/8 Casing", StringType: "Casing", IsCasingLiner: "Y", MDTop: 1900, MDBase: 3200},
			},
		},
	}
	reference := &fakeReferenceRepo{
		activeIDs: map[string][]string{
			"WB0": {"A0", "A9"},
			"WB1": {"A5"},
		},
	}
	provider := newActualProvider(wellbores, tubulars, &fakeWellheadRepo{}, reference, &fakeBarrierRepo{}, &fakeAnnulusRepo{})

	q := testQuery()
	s, err := provider.Assemble(context.Background(), q, actualScenario())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	// Parent contributes only strings starting above the kickoff, and
	// their bases stop at it; the sidetrack's own strings are untouched.
	if len(s.Casings) != 2 {
		t.Fatalf("casings = %d, want 2", len(s.Casings))
	}
	parent := s.Casings[0]
	if parent.AssemblyID != "A0" {
		t.Fatalf("parent casing order wrong: %+v", parent)
	}
	if parent.BaseMD != 2000 {
		t.Fatalf("parent base not clamped at kickoff: %v", parent.BaseMD)
	}
	if parent.BaseTVD == nil || *parent.BaseTVD != 1950 {
		t.Fatalf("parent TVD base not clamped: %v", parent.BaseTVD)
	}
	child := s.Casings[1]
	if child.AssemblyID != "A5" || child.BaseMD != 3200 {
		t.Fatalf("sidetrack casing altered: %+v", child)
	}
	if parent.Index != 0 || child.Index != 1 {
		t.Fatalf("global casing indexes wrong: %d/%d", parent.Index, child.Index)
	}
}

func TestAssembleUnknownWellboreIsNotFound(t *testing.T) {
	wellbores := &fakeWellboreRepo{wellbores: map[string]types.WellboreRow{}, scenario: actualScenario()}
	provider := newActualProvider(wellbores, &fakeTubularRepo{}, &fakeWellheadRepo{}, &fakeReferenceRepo{}, &fakeBarrierRepo{}, &fakeAnnulusRepo{})

	_, err := provider.Assemble(context.Background(), testQuery(), actualScenario())
	if err != types.ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestAssembleAnnulusDataJoinsLatestTests(t *testing.T) {
	diagramDate := testQuery().SchematicDate
	barrierRepo := &fakeBarrierRepo{
		diagrams: []types.BarrierDiagramRow{{
			BarrierDiagramID: "D1", WellID: "W1", WellboreID: "WB1", ScenarioID: "S1", DiagramDate: diagramDate,
		}},
	}
	annulusRepo := &fakeAnnulusRepo{
		elements: []types.AnnulusElementRow{{
			AnnulusElementID: "AE1", WellID: "W1", WellboreID: "WB1", ScenarioID: "S1",
			BarrierDiagramID: "D1", Name: "Annulus A", Pressure: f64(700),
		}},
		tests: []types.AnnulusTestRow{
			{AnnulusTestID: "T1", AnnulusElementID: "AE1", TestType: types.AnnulusTestMAASP, Pressure: f64(1150), Location: str("shoe")},
		},
	}
	wellbores := &fakeWellboreRepo{
		wellbores: map[string]types.WellboreRow{
			"WB1": {WellID: "W1", WellboreID: "WB1"},
		},
		scenario: actualScenario(),
	}
	provider := newActualProvider(wellbores, &fakeTubularRepo{}, &fakeWellheadRepo{}, &fakeReferenceRepo{}, barrierRepo, annulusRepo)

	s, err := provider.Assemble(context.Background(), testQuery(), actualScenario())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if len(s.AnnulusData) != 1 {
		t.Fatalf("annulus data = %d, want 1", len(s.AnnulusData))
	}
	status := s.AnnulusData[0]
	if status.Name != "Annulus A" || status.MAASPValue == nil || *status.MAASPValue != 1150 {
		t.Fatalf("annulus status mismatch: %+v", status)
	}
	if status.MAWOPValue != nil {
		t.Fatalf("MAWOP must stay nil without a MAWOP row: %+v", status)
	}
}
