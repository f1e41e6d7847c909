package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/wellsight/wellsight-backend/internal/repos"
	"github.com/wellsight/wellsight-backend/internal/types"
)

// In-memory repo fakes. Services pass a nil *gorm.DB, so inTx runs the
// callback directly and the fakes ignore the tx handle.

func f64(v float64) *float64 { return &v }
func str(v string) *string   { return &v }

type fakeWellboreRepo struct {
	wellbores map[string]types.WellboreRow
	scenario  *types.ScenarioRow
	datum     *types.DatumRow
	stations  []types.SurveyStationRow
	gradients map[repos.GradientKind][]types.GradientRow
	lithology []types.LithologyRow
	logs      []types.OperationLogRow
	derating  []types.DeratingRow
	failWellbore string
}

func (f *fakeWellboreRepo) GetWellbore(ctx context.Context, wellID, wellboreID string) (*types.WellboreRow, error) {
	if f.failWellbore == wellboreID {
		return nil, fmt.Errorf("store down")
	}
	row, ok := f.wellbores[wellboreID]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (f *fakeWellboreRepo) GetScenario(ctx context.Context, wellID, wellboreID, scenarioID string) (*types.ScenarioRow, error) {
	return f.scenario, nil
}

func (f *fakeWellboreRepo) GetDefaultDatum(ctx context.Context, wellID string) (*types.DatumRow, error) {
	return f.datum, nil
}

func (f *fakeWellboreRepo) ListSurveyStations(ctx context.Context, defSurveyHeaderID string) ([]types.SurveyStationRow, error) {
	return f.stations, nil
}

func (f *fakeWellboreRepo) ListGradient(ctx context.Context, kind repos.GradientKind, wellID, wellboreID string) ([]types.GradientRow, error) {
	return f.gradients[kind], nil
}

func (f *fakeWellboreRepo) ListLithology(ctx context.Context, wellID, wellboreID, scenarioID string) ([]types.LithologyRow, error) {
	return f.lithology, nil
}

func (f *fakeWellboreRepo) ListOperationLogs(ctx context.Context, wellID, wellboreID string) ([]types.OperationLogRow, error) {
	return f.logs, nil
}

func (f *fakeWellboreRepo) ListDerating(ctx context.Context, wellID, wellboreID string, asOf time.Time) ([]types.DeratingRow, error) {
	return f.derating, nil
}

func withinTop(top float64, maxTopMD *float64) bool {
	return maxTopMD == nil || top <= *maxTopMD
}

type fakeTubularRepo struct {
	holeSections map[string][]types.HoleSectionRow
	integrity    map[string][]types.IntegrityTestRow
	casings      map[string][]types.AssemblyRow
	assemblies   map[string][]types.AssemblyRow
	components   map[string][]types.AssemblyComponentRow
	cement       map[string][]types.CementStageRow
	perforations map[string][]types.PerforationRow
	drilling     *types.DrillingFluidRow
	completionOn *time.Time
	completion   []types.CompletionFluidRow
	sssv         map[string]*types.SSSVRow
	packers      map[string]*types.PackerRow
}

func (f *fakeTubularRepo) ListHoleSections(ctx context.Context, wellID, wellboreID string, asOf time.Time, maxTopMD *float64) ([]types.HoleSectionRow, error) {
	var out []types.HoleSectionRow
	for _, row := range f.holeSections[wellboreID] {
		if withinTop(row.MDTop, maxTopMD) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeTubularRepo) ListIntegrityTests(ctx context.Context, wellID, wellboreID, holeSectGroupID string) ([]types.IntegrityTestRow, error) {
	return f.integrity[holeSectGroupID], nil
}

func filterAssemblies(rows []types.AssemblyRow, assemblyIDs []string, maxTopMD *float64) []types.AssemblyRow {
	allowed := make(map[string]bool, len(assemblyIDs))
	for _, id := range assemblyIDs {
		allowed[id] = true
	}
	var out []types.AssemblyRow
	for _, row := range rows {
		if allowed[row.AssemblyID] && withinTop(row.MDTop, maxTopMD) {
			out = append(out, row)
		}
	}
	return out
}

func (f *fakeTubularRepo) ListCasingStrings(ctx context.Context, wellID, wellboreID string, assemblyIDs []string, maxTopMD *float64) ([]types.AssemblyRow, error) {
	if len(assemblyIDs) == 0 {
		return nil, nil
	}
	return filterAssemblies(f.casings[wellboreID], assemblyIDs, maxTopMD), nil
}

func (f *fakeTubularRepo) ListAssemblies(ctx context.Context, wellID, wellboreID string, assemblyIDs []string, maxTopMD *float64) ([]types.AssemblyRow, error) {
	if len(assemblyIDs) == 0 {
		return nil, nil
	}
	return filterAssemblies(f.assemblies[wellboreID], assemblyIDs, maxTopMD), nil
}

func (f *fakeTubularRepo) ListAssemblyComponents(ctx context.Context, wellID, wellboreID, assemblyID string, maxTopMD *float64) ([]types.AssemblyComponentRow, error) {
	var out []types.AssemblyComponentRow
	for _, row := range f.components[assemblyID] {
		if withinTop(row.MDTop, maxTopMD) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeTubularRepo) ListCementStages(ctx context.Context, wellID, wellboreID string, assemblyIDs []string, asOf time.Time, maxTopMD *float64) ([]types.CementStageRow, error) {
	if len(assemblyIDs) == 0 {
		return nil, nil
	}
	allowed := make(map[string]bool, len(assemblyIDs))
	for _, id := range assemblyIDs {
		allowed[id] = true
	}
	var out []types.CementStageRow
	for _, row := range f.cement[wellboreID] {
		if allowed[row.AssemblyID] && withinTop(row.MDTop, maxTopMD) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeTubularRepo) ListPerforations(ctx context.Context, wellID, wellboreID string, asOf time.Time, maxTopMD *float64) ([]types.PerforationRow, error) {
	var out []types.PerforationRow
	for _, row := range f.perforations[wellboreID] {
		if withinTop(row.MDTop, maxTopMD) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeTubularRepo) GetDrillingFluid(ctx context.Context, wellID, wellboreID string, asOf time.Time) (*types.DrillingFluidRow, error) {
	return f.drilling, nil
}

func (f *fakeTubularRepo) LatestCompletionFluidDate(ctx context.Context, wellID, wellboreID string, asOf time.Time) (*time.Time, error) {
	return f.completionOn, nil
}

func (f *fakeTubularRepo) ListCompletionFluids(ctx context.Context, wellID, wellboreID string, installedOn time.Time, asOf time.Time) ([]types.CompletionFluidRow, error) {
	return f.completion, nil
}

func (f *fakeTubularRepo) GetSSSV(ctx context.Context, assemblyCompID string) (*types.SSSVRow, error) {
	return f.sssv[assemblyCompID], nil
}

func (f *fakeTubularRepo) GetPacker(ctx context.Context, assemblyCompID string) (*types.PackerRow, error) {
	return f.packers[assemblyCompID], nil
}

type fakeWellheadRepo struct {
	components []types.WellheadComponentRow
	outlets    map[string][]types.WellheadOutletRow
	hangers    map[string][]types.WellheadHangerRow
	pressures  []types.AnnularPressureRow
	reliefs    map[string][]types.PressureReliefRow
}

func (f *fakeWellheadRepo) ListComponents(ctx context.Context, wellID string, asOf time.Time) ([]types.WellheadComponentRow, error) {
	return f.components, nil
}

func (f *fakeWellheadRepo) ListOutlets(ctx context.Context, comp types.WellheadComponentRow, asOf time.Time) ([]types.WellheadOutletRow, error) {
	return f.outlets[comp.WellheadCompID], nil
}

func (f *fakeWellheadRepo) ListHangers(ctx context.Context, comp types.WellheadComponentRow) ([]types.WellheadHangerRow, error) {
	return f.hangers[comp.WellheadCompID], nil
}

func (f *fakeWellheadRepo) ListAnnularPressures(ctx context.Context, wellID string) ([]types.AnnularPressureRow, error) {
	return f.pressures, nil
}

func (f *fakeWellheadRepo) ListPressureReliefs(ctx context.Context, press types.AnnularPressureRow) ([]types.PressureReliefRow, error) {
	return f.reliefs[press.WellheadAnnPressID], nil
}

type fakeReferenceRepo struct {
	catalogs  []types.CatalogRow
	diameters map[string]float64
	activeIDs map[string][]string
	report    *types.ReportRow
}

func (f *fakeReferenceRepo) ListCatalogs(ctx context.Context) ([]types.CatalogRow, error) {
	return f.catalogs, nil
}

func (f *fakeReferenceRepo) MaxHoleSectionDiameter(ctx context.Context, wellID, wellboreID, holeSectGroupID string) (float64, error) {
	return f.diameters[holeSectGroupID], nil
}

func (f *fakeReferenceRepo) ActiveAssemblyIDs(ctx context.Context, wellID, wellboreID string, asOf time.Time) ([]string, error) {
	return f.activeIDs[wellboreID], nil
}

func (f *fakeReferenceRepo) GetLatestReport(ctx context.Context, wellID, wellboreID string, asOf time.Time) (*types.ReportRow, error) {
	return f.report, nil
}

type fakeBarrierRepo struct {
	diagrams        []types.BarrierDiagramRow
	envelopes       []types.BarrierEnvelopeRow
	elements        []types.BarrierElementRow
	elementBarriers []types.ElementBarrier
	envelopeTests   []types.EnvelopeTestRow
	envelopeAudits  []types.EnvelopeTestRow
	links           []types.ElementTestLinkRow
	linkAudits      []types.ElementTestLinkRow
	failAudits      bool
}

func (f *fakeBarrierRepo) GetDiagram(ctx context.Context, tx *gorm.DB, q types.SchematicQuery) (*types.BarrierDiagramRow, error) {
	for i := range f.diagrams {
		d := f.diagrams[i]
		if d.WellID == q.WellID && d.WellboreID == q.WellboreID && d.ScenarioID == q.ScenarioID && d.DiagramDate.Equal(q.SchematicDate) {
			return &d, nil
		}
	}
	return nil, nil
}

func (f *fakeBarrierRepo) InsertDiagram(ctx context.Context, tx *gorm.DB, row *types.BarrierDiagramRow) error {
	f.diagrams = append(f.diagrams, *row)
	return nil
}

func (f *fakeBarrierRepo) ListDiagrams(ctx context.Context, q types.SchematicQuery) ([]types.BarrierDiagramRow, error) {
	return f.diagrams, nil
}

func (f *fakeBarrierRepo) GetEnvelope(ctx context.Context, tx *gorm.DB, diagramID, name string) (*types.BarrierEnvelopeRow, error) {
	for i := range f.envelopes {
		e := f.envelopes[i]
		if e.BarrierDiagramID == diagramID && e.Name == name {
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeBarrierRepo) InsertEnvelope(ctx context.Context, tx *gorm.DB, row *types.BarrierEnvelopeRow) error {
	f.envelopes = append(f.envelopes, *row)
	return nil
}

func (f *fakeBarrierRepo) GetElement(ctx context.Context, tx *gorm.DB, refID, envelopeID, diagramID string, q types.SchematicQuery) (*types.BarrierElementRow, error) {
	for i := range f.elements {
		e := f.elements[i]
		if e.RefID == refID && e.BarrierEnvelopeID == envelopeID && e.BarrierDiagramID == diagramID {
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeBarrierRepo) InsertElement(ctx context.Context, tx *gorm.DB, row *types.BarrierElementRow) error {
	f.elements = append(f.elements, *row)
	return nil
}

func (f *fakeBarrierRepo) DeleteElement(ctx context.Context, tx *gorm.DB, elementID string) error {
	out := f.elements[:0]
	for _, e := range f.elements {
		if e.BarrierElementID != elementID {
			out = append(out, e)
		}
	}
	f.elements = out
	return nil
}

func (f *fakeBarrierRepo) ListElementBarriers(ctx context.Context, q types.SchematicQuery, diagramDate *time.Time) ([]types.ElementBarrier, error) {
	return f.elementBarriers, nil
}

func (f *fakeBarrierRepo) DeleteEnvelopeTests(ctx context.Context, tx *gorm.DB, envelopeID, diagramID string) error {
	out := f.envelopeTests[:0]
	for _, t := range f.envelopeTests {
		if !(t.BarrierEnvelopeID == envelopeID && t.BarrierDiagramID == diagramID) {
			out = append(out, t)
		}
	}
	f.envelopeTests = out
	return nil
}

func (f *fakeBarrierRepo) InsertEnvelopeTest(ctx context.Context, tx *gorm.DB, row *types.EnvelopeTestRow) error {
	f.envelopeTests = append(f.envelopeTests, *row)
	return nil
}

func (f *fakeBarrierRepo) InsertEnvelopeTestAudit(ctx context.Context, tx *gorm.DB, row *types.EnvelopeTestRow) error {
	if f.failAudits {
		return fmt.Errorf("audit table unavailable")
	}
	f.envelopeAudits = append(f.envelopeAudits, *row)
	return nil
}

func (f *fakeBarrierRepo) DeleteElementTestLinks(ctx context.Context, tx *gorm.DB, envelopeID, diagramID string) error {
	out := f.links[:0]
	for _, l := range f.links {
		if !(l.BarrierEnvelopeID == envelopeID && l.BarrierDiagramID == diagramID) {
			out = append(out, l)
		}
	}
	f.links = out
	return nil
}

func (f *fakeBarrierRepo) InsertElementTestLink(ctx context.Context, tx *gorm.DB, row *types.ElementTestLinkRow) error {
	f.links = append(f.links, *row)
	return nil
}

func (f *fakeBarrierRepo) InsertElementTestLinkAudit(ctx context.Context, tx *gorm.DB, row *types.ElementTestLinkRow) error {
	if f.failAudits {
		return fmt.Errorf("audit table unavailable")
	}
	f.linkAudits = append(f.linkAudits, *row)
	return nil
}

type fakeAnnulusRepo struct {
	elements []types.AnnulusElementRow
	tests    []types.AnnulusTestRow
}

func (f *fakeAnnulusRepo) ListElements(ctx context.Context, q types.SchematicQuery, diagramID string) ([]types.AnnulusElementRow, error) {
	var out []types.AnnulusElementRow
	for _, e := range f.elements {
		if e.BarrierDiagramID == diagramID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeAnnulusRepo) GetElementByName(ctx context.Context, tx *gorm.DB, diagramID, name string) (*types.AnnulusElementRow, error) {
	for i := range f.elements {
		e := f.elements[i]
		if e.BarrierDiagramID == diagramID && e.Name == name {
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeAnnulusRepo) DeleteElementByName(ctx context.Context, tx *gorm.DB, diagramID, name string) error {
	out := f.elements[:0]
	for _, e := range f.elements {
		if !(e.BarrierDiagramID == diagramID && e.Name == name) {
			out = append(out, e)
		}
	}
	f.elements = out
	return nil
}

func (f *fakeAnnulusRepo) InsertElement(ctx context.Context, tx *gorm.DB, row *types.AnnulusElementRow) error {
	f.elements = append(f.elements, *row)
	return nil
}

func (f *fakeAnnulusRepo) ListTests(ctx context.Context, element types.AnnulusElementRow) ([]types.AnnulusTestRow, error) {
	var out []types.AnnulusTestRow
	for _, t := range f.tests {
		if t.AnnulusElementID == element.AnnulusElementID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeAnnulusRepo) DeleteTests(ctx context.Context, tx *gorm.DB, annulusElementID string) error {
	out := f.tests[:0]
	for _, t := range f.tests {
		if t.AnnulusElementID != annulusElementID {
			out = append(out, t)
		}
	}
	f.tests = out
	return nil
}

func (f *fakeAnnulusRepo) InsertTest(ctx context.Context, tx *gorm.DB, row *types.AnnulusTestRow) error {
	f.tests = append(f.tests, *row)
	return nil
}
