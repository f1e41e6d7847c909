package services

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/wellsight/wellsight-backend/internal/domain/refid"
	"github.com/wellsight/wellsight-backend/internal/platform/logger"
	"github.com/wellsight/wellsight-backend/internal/repos"
	"github.com/wellsight/wellsight-backend/internal/types"
)

const (
	cementColor = "162,180,185"
	fluidColor  = "rgb(212, 160, 49)"
)

// Component codes whose drawn length is floored to one unit so they
// stay visible; the measured length is preserved separately.
var flooredCompTypes = map[string]bool{"TH": true, "FLTH": true}

// ActualSchematicProvider assembles the as-built schematic for
// scenarios in the ACTUAL phase. The wellbore path is fatal; every
// other fetch degrades to an empty slice so one broken table never
// blanks the whole drawing.
type ActualSchematicProvider struct {
	helper    *SchematicHelper
	wellbores repos.WellboreRepo
	tubulars  repos.TubularRepo
	wellheads repos.WellheadRepo
	reference repos.ReferenceRepo
	barriers  repos.BarrierRepo
	annulus   repos.AnnulusRepo
	log       *logger.Logger
}

func NewActualSchematicProvider(
	helper *SchematicHelper,
	wellbores repos.WellboreRepo,
	tubulars repos.TubularRepo,
	wellheads repos.WellheadRepo,
	reference repos.ReferenceRepo,
	barriers repos.BarrierRepo,
	annulus repos.AnnulusRepo,
	baseLog *logger.Logger,
) *ActualSchematicProvider {
	return &ActualSchematicProvider{
		helper:    helper,
		wellbores: wellbores,
		tubulars:  tubulars,
		wellheads: wellheads,
		reference: reference,
		barriers:  barriers,
		annulus:   annulus,
		log:       baseLog.With("service", "ActualSchematicProvider"),
	}
}

func (p *ActualSchematicProvider) Phase() string { return types.PhaseActual }

func (p *ActualSchematicProvider) Assemble(ctx context.Context, q types.SchematicQuery, scenario *types.ScenarioRow) (*types.Schematic, error) {
	path, err := p.helper.ResolvePath(ctx, q.WellID, q.WellboreID)
	if err != nil {
		p.log.Error("resolve wellbore path", "well_id", q.WellID, "wellbore_id", q.WellboreID, "error", err)
		return nil, types.ErrNotFound
	}

	cache := p.helper.NewBarrierCache(q)
	s := &types.Schematic{
		Units: types.Units{
			DepthUnits:    "ft",
			DiameterUnits: "in",
			LengthUnits:   "ft",
			DepthDP:       1,
			DiameterDP:    3,
			LengthDP:      2,
		},
	}

	// Path-independent facts fan out; each builder absorbs its own
	// failures, so the group never cancels.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { s.ReferenceDepths = p.referenceDepths(gctx, q); return nil })
	g.Go(func() error { s.Wellhead = p.wellhead(gctx, q, cache); return nil })
	g.Go(func() error { s.AnnulusData = p.annulusData(gctx, q); return nil })
	g.Go(func() error { s.PPGradient = p.gradient(gctx, repos.GradientPorePressure, q); return nil })
	g.Go(func() error { s.FPGradient = p.gradient(gctx, repos.GradientFracture, q); return nil })
	g.Go(func() error { s.TGradient = p.gradient(gctx, repos.GradientTemperature, q); return nil })
	g.Go(func() error { s.Survey = p.survey(gctx, q, scenario); return nil })
	g.Go(func() error { s.DeratingData = p.derating(gctx, q); return nil })
	g.Go(func() error { s.Catalogs = p.catalogs(gctx); return nil })
	g.Go(func() error { s.Lithology = p.lithology(gctx, q, cache); return nil })
	g.Go(func() error { s.Logs = p.operationLogs(gctx, q); return nil })
	_ = g.Wait()

	for i := range path {
		node := path[i]
		var next *types.WellborePathNode
		if i+1 < len(path) {
			next = &path[i+1]
		}

		activeIDs, err := p.reference.ActiveAssemblyIDs(ctx, node.WellID, node.WellboreID, q.SchematicDate)
		if err != nil {
			p.log.Error("active assemblies", "wellbore_id", node.WellboreID, "error", err)
			activeIDs = nil
		}

		s.HoleSections = append(s.HoleSections, p.holeSections(ctx, q, node, next)...)

		nodeCasings := p.casings(ctx, q, node, next, activeIDs, cache, len(s.Casings))
		s.Casings = append(s.Casings, nodeCasings...)
		s.CementStages = append(s.CementStages, p.cementStages(ctx, q, node, next, activeIDs, nodeCasings, cache)...)
		s.Assemblies = append(s.Assemblies, p.assemblies(ctx, q, node, next, activeIDs, cache)...)
		s.Perforations = append(s.Perforations, p.perforations(ctx, q, node, next)...)
	}

	// Fluids depend on reference depths, survey and the casing list,
	// so they come last.
	s.Fluids = p.fluids(ctx, q, s, cache)
	return s, nil
}

// maxTopBound returns the element top-depth cutoff a node inherits
// from its successor's kickoff.
func maxTopBound(next *types.WellborePathNode) *float64 {
	if next == nil {
		return nil
	}
	return next.KickoffMD
}

func clampDepth(v float64, limit *float64) float64 {
	if limit != nil && v > *limit {
		return *limit
	}
	return v
}

func joinBarrierNames(rows []types.ElementBarrier) string {
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.BarrierName)
	}
	return strings.Join(names, ",")
}

// barrierSpans draws one span per barrier row. Rows without stored
// depths span the whole element.
func barrierSpans(rows []types.ElementBarrier, fallbackTop, fallbackBase float64) []types.BarrierSpan {
	spans := make([]types.BarrierSpan, 0, len(rows))
	for _, row := range rows {
		span := types.BarrierSpan{
			BarrierID:  row.BarrierName,
			From:       fallbackTop,
			To:         fallbackBase,
			IsCombined: row.TopDepth != nil && row.BaseDepth != nil,
		}
		if row.TopDepth != nil {
			span.From = round1(*row.TopDepth)
		}
		if row.BaseDepth != nil {
			span.To = round1(*row.BaseDepth)
		}
		spans = append(spans, span)
	}
	return spans
}

func (p *ActualSchematicProvider) referenceDepths(ctx context.Context, q types.SchematicQuery) types.ReferenceDepths {
	datum, err := p.wellbores.GetDefaultDatum(ctx, q.WellID)
	if err != nil || datum == nil {
		p.log.Error("reference depths", "well_id", q.WellID, "error", err)
		return types.ReferenceDepths{SystemDatum: "None"}
	}
	var elevation, waterDepth, wellheadDepth float64
	if datum.DatumElevation != nil {
		elevation = *datum.DatumElevation
	}
	if datum.WaterDepth != nil {
		waterDepth = *datum.WaterDepth
	}
	if datum.WellheadDepth != nil {
		wellheadDepth = *datum.WellheadDepth
	}
	airGap := round1(elevation - waterDepth)
	return types.ReferenceDepths{
		Offshore:       datum.IsOffshore == "Y",
		AirGap:         airGap,
		WaterDepth:     round1(waterDepth),
		Mudline:        airGap,
		DatumElevation: round1(elevation),
		WellheadDepth:  round1(wellheadDepth),
		SystemDatum:    "Mean Sea Level",
	}
}

func (p *ActualSchematicProvider) wellhead(ctx context.Context, q types.SchematicQuery, cache *BarrierCache) *types.Wellhead {
	comps, err := p.wellheads.ListComponents(ctx, q.WellID, q.SchematicDate)
	if err != nil {
		p.log.Error("wellhead components", "well_id", q.WellID, "error", err)
		return &types.Wellhead{}
	}

	wellhead := &types.Wellhead{}
	for _, comp := range comps {
		ref := refid.WellheadComp(comp.WellID, comp.EventID, comp.WellheadID, comp.WellheadCompID).String()
		barriers := cache.ElementBarriers(ctx, ref)
		wellhead.Components = append(wellhead.Components, types.WellheadComponent{
			RefID:           ref,
			SectType:        comp.SectTypeCode,
			CompType:        comp.CompTypeCode,
			Manufacturer:    comp.Make,
			Model:           comp.Model,
			Description:     "(" + comp.WellheadSection + ") " + comp.SectTypeCode + " - " + comp.CompTypeCode + " - " + comp.Make + " - " + comp.Model,
			WellheadSection: comp.WellheadSection,
			TestResult:      comp.TestResult,
			TestDuration:    comp.ManufactureMethod,
			TestPressure:    comp.ConnectionTopPressRating,
			TopPresRating:   comp.WorkingPressRating,
			Comments:        comp.Comments,
			InstallDate:     comp.InstallDate,
			RemovalDate:     comp.RemovalDate,
			BarrierID:       joinBarrierNames(barriers),
			IsBarrierClosed: false,
			IncludeSeals:    false,
			Outlets:         p.wellheadOutlets(ctx, q, comp, cache),
			Hangers:         p.wellheadHangers(ctx, comp, cache),
		})
	}

	presses, err := p.wellheads.ListAnnularPressures(ctx, q.WellID)
	if err != nil {
		p.log.Error("annular pressures", "well_id", q.WellID, "error", err)
		return wellhead
	}
	for _, press := range presses {
		reliefs, err := p.wellheads.ListPressureReliefs(ctx, press)
		if err != nil {
			p.log.Error("pressure reliefs", "wellhead_ann_press_id", press.WellheadAnnPressID, "error", err)
			reliefs = nil
		}
		wellhead.AnnularPressures = append(wellhead.AnnularPressures, types.AnnularPressure{
			AnnularPressureRow: press,
			PressureReliefs:    reliefs,
		})
	}
	return wellhead
}

func (p *ActualSchematicProvider) wellheadOutlets(ctx context.Context, q types.SchematicQuery, comp types.WellheadComponentRow, cache *BarrierCache) []types.WellheadOutlet {
	rows, err := p.wellheads.ListOutlets(ctx, comp, q.SchematicDate)
	if err != nil {
		p.log.Error("wellhead outlets", "wellhead_comp_id", comp.WellheadCompID, "error", err)
		return nil
	}
	outlets := make([]types.WellheadOutlet, 0, len(rows))
	for _, row := range rows {
		ref := refid.WellheadOutlet(comp.WellID, comp.EventID, comp.WellheadID, comp.WellheadCompID, row.OutletID).String()
		barriers := cache.ElementBarriers(ctx, ref)
		outlets = append(outlets, types.WellheadOutlet{
			RefID:              ref,
			SectType:           row.SectTypeCode,
			CompType:           row.CompTypeCode,
			Location:           row.OutletLocation,
			Manufacturer:       row.ValveMake,
			Model:              row.ValveModel,
			Description:        row.CompTypeCode + " - " + row.OutletLocation + " - " + row.ValveModel + " - " + row.ValveMake,
			WellheadSection:    comp.WellheadSection,
			TestResult:         comp.TestResult,
			TestDuration:       comp.ManufactureMethod,
			TestPressure:       comp.ConnectionTopPressRating,
			OutletWorkingPress: row.OutletWorkingPress,
			BarrierID:          joinBarrierNames(barriers),
			IsBarrierClosed:    false,
			IncludeSeals:       false,
		})
	}
	return outlets
}

func (p *ActualSchematicProvider) wellheadHangers(ctx context.Context, comp types.WellheadComponentRow, cache *BarrierCache) []types.WellheadHanger {
	rows, err := p.wellheads.ListHangers(ctx, comp)
	if err != nil {
		p.log.Error("wellhead hangers", "wellhead_comp_id", comp.WellheadCompID, "error", err)
		return nil
	}
	hangers := make([]types.WellheadHanger, 0, len(rows))
	for _, row := range rows {
		ref := refid.WellheadHanger(comp.WellID, comp.EventID, comp.WellheadID, comp.WellheadCompID, row.WellheadHangerID).String()
		barriers := cache.ElementBarriers(ctx, ref)
		hangers = append(hangers, types.WellheadHanger{
			RefID:           ref,
			SectType:        comp.SectTypeCode,
			CompType:        row.CompTypeCode,
			Description:     row.Model + " - " + row.HangerSize + " // " + row.CompTypeCode,
			Model:           row.Model,
			Size:            row.HangerSize,
			BarrierID:       joinBarrierNames(barriers),
			IsBarrierClosed: true,
			IncludeSeals:    true,
		})
	}
	return hangers
}

// annulusData pairs each annulus element on the request's diagram with
// its latest MOP/MAWOP/MAASP values. No diagram means no annulus rows.
func (p *ActualSchematicProvider) annulusData(ctx context.Context, q types.SchematicQuery) []types.AnnulusStatus {
	diagram, err := p.barriers.GetDiagram(ctx, nil, q)
	if err != nil {
		p.log.Error("annulus diagram", "well_id", q.WellID, "error", err)
		return nil
	}
	if diagram == nil {
		return nil
	}
	elements, err := p.annulus.ListElements(ctx, q, diagram.BarrierDiagramID)
	if err != nil {
		p.log.Error("annulus elements", "barrier_diagram_id", diagram.BarrierDiagramID, "error", err)
		return nil
	}
	out := make([]types.AnnulusStatus, 0, len(elements))
	for _, element := range elements {
		tests, err := p.annulus.ListTests(ctx, element)
		if err != nil {
			p.log.Error("annulus tests", "annulus_element_id", element.AnnulusElementID, "error", err)
			tests = nil
		}
		out = append(out, types.AnnulusStatus{
			AnnulusElementRow: element,
			AnnulusLatestTest: LatestAnnulusTests(tests),
		})
	}
	return out
}

func (p *ActualSchematicProvider) gradient(ctx context.Context, kind repos.GradientKind, q types.SchematicQuery) []types.GradientRow {
	rows, err := p.wellbores.ListGradient(ctx, kind, q.WellID, q.WellboreID)
	if err != nil {
		p.log.Error("gradient", "table", string(kind), "wellbore_id", q.WellboreID, "error", err)
		return nil
	}
	return rows
}

func (p *ActualSchematicProvider) survey(ctx context.Context, q types.SchematicQuery, scenario *types.ScenarioRow) []types.SurveyStation {
	rows, err := p.wellbores.ListSurveyStations(ctx, scenario.DefSurveyHeaderID)
	if err != nil {
		p.log.Error("survey stations", "def_survey_header_id", scenario.DefSurveyHeaderID, "error", err)
		return nil
	}
	stations := make([]types.SurveyStation, 0, len(rows))
	for _, row := range rows {
		stations = append(stations, types.SurveyStation{
			MD:  round1(row.MD),
			Inc: row.Inclination,
			Azi: row.Azimuth,
			TVD: round1(row.TVD),
			NS:  row.OffsetNorth,
			EW:  row.OffsetEast,
		})
	}
	return stations
}

func (p *ActualSchematicProvider) derating(ctx context.Context, q types.SchematicQuery) []types.DeratingRow {
	rows, err := p.wellbores.ListDerating(ctx, q.WellID, q.WellboreID, q.SchematicDate)
	if err != nil {
		p.log.Error("derating", "wellbore_id", q.WellboreID, "error", err)
		return nil
	}
	return rows
}

func (p *ActualSchematicProvider) catalogs(ctx context.Context) []types.CatalogRow {
	rows, err := p.reference.ListCatalogs(ctx)
	if err != nil {
		p.log.Error("catalogs", "error", err)
		return nil
	}
	return rows
}

func (p *ActualSchematicProvider) lithology(ctx context.Context, q types.SchematicQuery, cache *BarrierCache) []types.Formation {
	rows, err := p.wellbores.ListLithology(ctx, q.WellID, q.WellboreID, q.ScenarioID)
	if err != nil {
		p.log.Error("lithology", "wellbore_id", q.WellboreID, "error", err)
		return nil
	}
	formations := make([]types.Formation, 0, len(rows))
	for _, row := range rows {
		ref := refid.Formation(q.WellID, q.WellboreID, row.WellboreFormationID).String()
		barriers := cache.ElementBarriers(ctx, ref)
		formations = append(formations, types.Formation{
			RefID:         ref,
			Lithology:     row.LithologyName,
			Top:           row.ActualMDTop,
			Base:          row.ActualMDBase,
			TopTVD:        row.ActualTVDTop,
			BaseTVD:       row.ActualTVDBase,
			Label:         row.FormationName,
			StratUnitName: row.StratUnitName,
			Description:   row.FormationName,
			Phase:         row.ActualPhase,
			Comments:      row.Comments,
			BarrierDepth:  row.ActualMDBase,
			BarrierID:     joinBarrierNames(barriers),
		})
	}
	return formations
}

func (p *ActualSchematicProvider) operationLogs(ctx context.Context, q types.SchematicQuery) []types.OperationLog {
	rows, err := p.wellbores.ListOperationLogs(ctx, q.WellID, q.WellboreID)
	if err != nil {
		p.log.Error("operation logs", "wellbore_id", q.WellboreID, "error", err)
		return nil
	}
	logs := make([]types.OperationLog, 0, len(rows))
	for _, row := range rows {
		logs = append(logs, types.OperationLog{
			LogDate:      row.LogDate,
			Service:      row.Service,
			MDTop:        row.MDTop,
			MDBase:       row.MDBase,
			Reason:       row.Reason,
			AssemblyName: row.AssemblyName,
			Comments:     row.Comments,
		})
	}
	return logs
}

func (p *ActualSchematicProvider) holeSections(ctx context.Context, q types.SchematicQuery, node types.WellborePathNode, next *types.WellborePathNode) []types.HoleSection {
	rows, err := p.tubulars.ListHoleSections(ctx, node.WellID, node.WellboreID, q.SchematicDate, maxTopBound(next))
	if err != nil {
		p.log.Error("hole sections", "wellbore_id", node.WellboreID, "error", err)
		return nil
	}
	sections := make([]types.HoleSection, 0, len(rows))
	for _, row := range rows {
		base := clampDepth(row.MDBase, maxTopBound(next))
		tests, err := p.tubulars.ListIntegrityTests(ctx, node.WellID, node.WellboreID, row.HoleSectGroupID)
		if err != nil {
			p.log.Error("integrity tests", "hole_sect_group_id", row.HoleSectGroupID, "error", err)
			tests = nil
		}
		diameter, err := p.reference.MaxHoleSectionDiameter(ctx, node.WellID, node.WellboreID, row.HoleSectGroupID)
		if err != nil {
			p.log.Error("hole section diameter", "hole_sect_group_id", row.HoleSectGroupID, "error", err)
		}
		sections = append(sections, types.HoleSection{
			RefID:          refid.HoleSection(node.WellID, node.WellboreID, row.HoleSectGroupID).String(),
			Name:           row.HoleName,
			StartMD:        round1(row.MDTop),
			Length:         round1(base - row.MDTop),
			Diameter:       diameter,
			DateSectEnd:    row.DateSectEnd,
			IntegrityTests: tests,
		})
	}
	return sections
}

// casings builds one node's casing and liner strings. indexOffset is
// the global position of the node's first string; cement stages and
// fluids address strings by that global index.
func (p *ActualSchematicProvider) casings(ctx context.Context, q types.SchematicQuery, node types.WellborePathNode, next *types.WellborePathNode, activeIDs []string, cache *BarrierCache, indexOffset int) []types.Casing {
	rows, err := p.tubulars.ListCasingStrings(ctx, node.WellID, node.WellboreID, activeIDs, maxTopBound(next))
	if err != nil {
		p.log.Error("casing strings", "wellbore_id", node.WellboreID, "error", err)
		return nil
	}
	casings := make([]types.Casing, 0, len(rows))
	for i, row := range rows {
		ref := refid.Assembly(row.WellID, row.WellboreID, row.AssemblyID).String()
		barriers := cache.ElementBarriers(ctx, ref)

		base := round1(clampDepth(row.MDBase, maxTopBound(next)))
		baseTVD := row.TVDBase
		if next != nil && next.KickoffTVD != nil && baseTVD != nil && *baseTVD > *next.KickoffTVD {
			clamped := *next.KickoffTVD
			baseTVD = &clamped
		}

		casings = append(casings, types.Casing{
			RefID:       ref,
			Index:       indexOffset + i,
			StringType:  row.StringType,
			IsCasing:    row.IsCasingLiner == "Y",
			Name:        row.AssemblyName,
			Description: row.AssemblyName,
			AssemblyID:  row.AssemblyID,
			Size:        row.AssemblySize,
			TopMD:       round1(row.MDTop),
			BaseMD:      base,
			TopTVD:      row.TVDTop,
			BaseTVD:     baseTVD,
			Liner:       row.SuspPoint,
			Components:  p.casingComponents(ctx, node, next, row, cache),
			Barriers:    barrierSpans(barriers, round1(row.MDTop), base),
		})
	}
	return casings
}

func (p *ActualSchematicProvider) casingComponents(ctx context.Context, node types.WellborePathNode, next *types.WellborePathNode, casing types.AssemblyRow, cache *BarrierCache) []types.CasingComponent {
	rows, err := p.tubulars.ListAssemblyComponents(ctx, node.WellID, node.WellboreID, casing.AssemblyID, maxTopBound(next))
	if err != nil {
		p.log.Error("casing components", "assembly_id", casing.AssemblyID, "error", err)
		return nil
	}
	components := make([]types.CasingComponent, 0, len(rows))
	for _, row := range rows {
		ref := refid.CasingComp(node.WellID, node.WellboreID, casing.AssemblyID, row.AssemblyCompID).String()
		barriers := cache.ElementBarriers(ctx, ref)

		// Liner sections render as casing.
		compType := row.CompTypeCode
		if compType == "LIN" {
			compType = "CAS"
		}

		bottom := round1(clampDepth(row.MDBase, maxTopBound(next)))
		component := types.CasingComponent{
			RefID:             ref,
			SectType:          row.SectTypeCode,
			CompType:          compType,
			Manufacturer:      row.Manufacturer,
			Model:             row.Model,
			Description:       row.CatalogKeyDesc,
			StartMD:           round1(row.MDTop),
			BottomMD:          bottom,
			Length:            row.Length,
			JointCount:        row.Joints,
			ComponentID:       row.AssemblyCompID,
			OD:                row.ODBody,
			ID:                row.IDBody,
			GradeID:           row.GradeID,
			Grade:             row.Grade,
			ApproxWeight:      row.ApproximateWeight,
			SectionName:       casing.AssemblyName,
			SerialNo:          row.SerialNo,
			PressRatingTop:    row.PressRatingTop,
			PressRatingBottom: row.PressRatingBot,
			BurstPressure:     row.PressureBurst,
			CollapsePressure:  row.PressureCollapse,
			Stretchable:       true,
			BarrierID:         joinBarrierNames(barriers),
		}
		if len(barriers) > 0 {
			from := round1(row.MDTop)
			to := bottom
			component.BarrierFrom = &from
			component.BarrierTo = &to
		}
		components = append(components, component)
	}
	return components
}

// cementStages builds one node's cement stages against the node's own
// casing strings; a stage whose string is not in hole is dropped.
func (p *ActualSchematicProvider) cementStages(ctx context.Context, q types.SchematicQuery, node types.WellborePathNode, next *types.WellborePathNode, activeIDs []string, nodeCasings []types.Casing, cache *BarrierCache) []types.CementStage {
	rows, err := p.tubulars.ListCementStages(ctx, node.WellID, node.WellboreID, activeIDs, q.SchematicDate, maxTopBound(next))
	if err != nil {
		p.log.Error("cement stages", "wellbore_id", node.WellboreID, "error", err)
		return nil
	}
	stages := make([]types.CementStage, 0, len(rows))
	for _, row := range rows {
		var casing *types.Casing
		for j := range nodeCasings {
			if nodeCasings[j].AssemblyID == row.AssemblyID {
				casing = &nodeCasings[j]
				break
			}
		}
		if casing == nil {
			p.log.Warn("cement stage without casing string", "cement_stage_id", row.CementStageID, "assembly_id", row.AssemblyID)
			continue
		}

		ref := refid.CementStage(q.WellID, q.WellboreID, row.CementJobID, row.CementStageID).String()
		barriers := cache.ElementBarriers(ctx, ref)
		base := round1(clampDepth(row.MDBase, maxTopBound(next)))

		stages = append(stages, types.CementStage{
			RefID:              ref,
			TopMD:              round1(row.MDTop),
			BottomMD:           base,
			TVDTop:             row.TVDTop,
			CasingIndex:        casing.Index,
			AssemblyID:         row.AssemblyID,
			AssemblyName:       casing.Name,
			AssemblyOD:         casing.Size,
			StageName:          row.JobType,
			Description:        row.JobType + " - " + casing.Name,
			Plug:               strings.Contains(strings.ToUpper(row.JobType), "PLUG"),
			Drilled:            row.IsDrilledOut == "Y",
			Color:              cementColor,
			CasingTest:         row.CasingTestPress,
			CasingTestDuration: row.CasingTestDuration,
			CasingTestComment:  row.TestComments,
			DateReport:         row.DateReport,
			PlugType:           row.PlugType,
			LinerNegTestTool:   row.IsLinerNegTestTool,
			LinerEMWNegTest:    row.LinerEMWNegTest,
			Barriers:           barrierSpans(barriers, round1(row.MDTop), base),
			BarrierID:          joinBarrierNames(barriers),
		})
	}
	return stages
}

func (p *ActualSchematicProvider) assemblies(ctx context.Context, q types.SchematicQuery, node types.WellborePathNode, next *types.WellborePathNode, activeIDs []string, cache *BarrierCache) []types.Assembly {
	rows, err := p.tubulars.ListAssemblies(ctx, node.WellID, node.WellboreID, activeIDs, maxTopBound(next))
	if err != nil {
		p.log.Error("assemblies", "wellbore_id", node.WellboreID, "error", err)
		return nil
	}
	assemblies := make([]types.Assembly, 0, len(rows))
	for _, row := range rows {
		assemblies = append(assemblies, types.Assembly{
			RefID:      refid.Assembly(row.WellID, row.WellboreID, row.AssemblyID).String(),
			AssemblyID: row.AssemblyID,
			Name:       row.AssemblyName,
			Size:       row.AssemblySize,
			IsCasing:   row.IsCasingLiner == "Y",
			TopMD:      round1(row.MDTop),
			BaseMD:     round1(clampDepth(row.MDBase, maxTopBound(next))),
			TopTVD:     row.TVDTop,
			BaseTVD:    row.TVDBase,
			Components: p.assemblyComponents(ctx, node, next, row, cache),
		})
	}
	return assemblies
}

func (p *ActualSchematicProvider) assemblyComponents(ctx context.Context, node types.WellborePathNode, next *types.WellborePathNode, assembly types.AssemblyRow, cache *BarrierCache) []types.AssemblyComponent {
	rows, err := p.tubulars.ListAssemblyComponents(ctx, node.WellID, node.WellboreID, assembly.AssemblyID, maxTopBound(next))
	if err != nil {
		p.log.Error("assembly components", "assembly_id", assembly.AssemblyID, "error", err)
		return nil
	}
	components := make([]types.AssemblyComponent, 0, len(rows))
	for i, row := range rows {
		ref := refid.AssemblyComp(row.SectTypeCode, node.WellID, node.WellboreID, assembly.AssemblyID, row.AssemblyCompID).String()
		barriers := cache.ElementBarriers(ctx, ref)

		top := round1(clampDepth(row.MDTop, maxTopBound(next)))
		bottom := round1(clampDepth(row.MDBase, maxTopBound(next)))

		// Short hanger components are drawn one unit long; the
		// measured length survives in ActualLength.
		length := row.Length
		if flooredCompTypes[row.CompTypeCode] && length < 1 {
			length = 1
		}

		component := types.AssemblyComponent{
			RefID:                 ref,
			SectType:              row.SectTypeCode,
			CompType:              row.CompTypeCode,
			AssemblyName:          assembly.AssemblyName,
			StartMD:               top,
			BottomMD:              bottom,
			Length:                length,
			ActualLength:          row.Length,
			OD:                    row.ODBody,
			ID:                    row.IDBody,
			ComponentID:           row.AssemblyCompID,
			Manufacturer:          row.Manufacturer,
			Model:                 row.Model,
			Description:           row.Description,
			ItemDescription:       row.CatalogKeyDesc,
			ApproximateWeight:     row.ApproximateWeight,
			GradeID:               row.Grade,
			Joints:                row.Joints,
			PressRatingTop:        row.PressRatingTop,
			BurstPressure:         row.PressureBurst,
			CollapsePressure:      row.PressureCollapse,
			BarrierID:             joinBarrierNames(barriers),
			IsBarrierClosedTop:    i == 0,
			IsBarrierClosedBottom: i == len(rows)-1,
			IncludeSeals:          true,
		}
		if len(barriers) > 0 {
			from := top + 0.01
			to := bottom - 0.01
			component.BarrierFrom = &from
			component.BarrierTo = &to
		}

		if sssv, err := p.tubulars.GetSSSV(ctx, row.AssemblyCompID); err != nil {
			p.log.Error("sssv lookup", "assembly_comp_id", row.AssemblyCompID, "error", err)
		} else if sssv != nil {
			component.RecordOpenPress = sssv.RecordedOpeningPressure
			component.RecordClosePress = sssv.RecordedClosingPressure
			component.NominalPress = sssv.NominalOpeningPressure
			component.MaximumHydraulics = sssv.MaximumHydraulicsPressure
			component.FunctionTestPass = sssv.FunctionTestPassFail
		}
		if packer, err := p.tubulars.GetPacker(ctx, row.AssemblyCompID); err != nil {
			p.log.Error("packer lookup", "assembly_comp_id", row.AssemblyCompID, "error", err)
		} else if packer != nil {
			component.PressureTestAbove = packer.PressureTestAbove
			component.PressureTestBelow = packer.PressureTestBelow
		}

		components = append(components, component)
	}
	return components
}

func (p *ActualSchematicProvider) perforations(ctx context.Context, q types.SchematicQuery, node types.WellborePathNode, next *types.WellborePathNode) []types.Perforation {
	rows, err := p.tubulars.ListPerforations(ctx, node.WellID, node.WellboreID, q.SchematicDate, maxTopBound(next))
	if err != nil {
		p.log.Error("perforations", "wellbore_id", node.WellboreID, "error", err)
		return nil
	}
	ref := refid.Perforation(q.WellID, node.WellboreID).String()
	perforations := make([]types.Perforation, 0, len(rows))
	for _, row := range rows {
		perforations = append(perforations, types.Perforation{
			RefID:   ref,
			StartMD: round1(row.MDTop),
			EndMD:   round1(clampDepth(row.MDBase, maxTopBound(next))),
			Key:     "00003",
			Status:  row.Status,
		})
	}
	return perforations
}

// fluids derives the live fluid column. A drilling fluid checked on
// the schematic date wins and fills the bore from surface to the last
// surveyed depth; otherwise the latest installed completion fluid
// batch renders segment by segment.
func (p *ActualSchematicProvider) fluids(ctx context.Context, q types.SchematicQuery, s *types.Schematic, cache *BarrierCache) []types.FluidSegment {
	lastCasingIndex := len(s.Casings) - 1
	depths := s.ReferenceDepths

	drilling, err := p.tubulars.GetDrillingFluid(ctx, q.WellID, q.WellboreID, q.SchematicDate)
	if err != nil {
		p.log.Error("drilling fluid", "wellbore_id", q.WellboreID, "error", err)
		return nil
	}
	if drilling != nil {
		if len(s.Survey) == 0 {
			p.log.Warn("drilling fluid with no survey", "wellbore_id", q.WellboreID)
			return nil
		}
		wellDepth := s.Survey[len(s.Survey)-1].MD
		ref := refid.Fluid(drilling.WellID, drilling.WellboreID, drilling.EventID, drilling.FluidID).String()
		barriers := cache.ElementBarriers(ctx, ref)
		segment := types.FluidSegment{
			RefID:        ref,
			Type:         types.FluidDrilling,
			StartDepth:   -depths.DatumElevation + depths.AirGap,
			EndDepth:     wellDepth,
			CasingIndex:  lastCasingIndex,
			InsideCasing: true,
			FluidType:    drilling.FluidName,
			Description:  drilling.FluidName,
			FluidDensity: drilling.Density,
			Color:        fluidColor,
		}
		for _, barrier := range barriers {
			segment.Barriers = append(segment.Barriers, types.BarrierSpan{
				BarrierID: barrier.BarrierName,
				From:      -depths.DatumElevation,
				To:        wellDepth,
			})
		}
		return []types.FluidSegment{segment}
	}

	installedOn, err := p.tubulars.LatestCompletionFluidDate(ctx, q.WellID, q.WellboreID, q.SchematicDate)
	if err != nil {
		p.log.Error("completion fluid date", "wellbore_id", q.WellboreID, "error", err)
		return nil
	}
	if installedOn == nil {
		return nil
	}
	rows, err := p.tubulars.ListCompletionFluids(ctx, q.WellID, q.WellboreID, *installedOn, q.SchematicDate)
	if err != nil {
		p.log.Error("completion fluids", "wellbore_id", q.WellboreID, "error", err)
		return nil
	}

	segments := make([]types.FluidSegment, 0, len(rows))
	for _, row := range rows {
		ref := refid.Fluid(row.WellID, row.WellboreID, row.EventID, row.CompletionFluidID).String()
		barriers := cache.ElementBarriers(ctx, ref)
		segment := types.FluidSegment{
			RefID:        ref,
			Type:         types.FluidCompletion,
			StartDepth:   row.MDTop,
			EndDepth:     row.MDBase,
			CasingIndex:  lastCasingIndex,
			InsideCasing: false,
			FluidType:    row.FluidType,
			Description:  row.FluidType,
			FluidDensity: row.FluidDensity,
			Color:        fluidColor,
		}
		for _, barrier := range barriers {
			segment.Barriers = append(segment.Barriers, types.BarrierSpan{
				BarrierID: barrier.BarrierName,
				From:      row.MDTop,
				To:        row.MDBase,
			})
		}
		segments = append(segments, segment)
	}
	return segments
}
