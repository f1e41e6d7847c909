package services

import (
	"context"
	"fmt"

	"github.com/wellsight/wellsight-backend/internal/platform/logger"
	"github.com/wellsight/wellsight-backend/internal/repos"
	"github.com/wellsight/wellsight-backend/internal/types"
)

// A SchematicProvider assembles the schematic for one scenario phase.
type SchematicProvider interface {
	Phase() string
	Assemble(ctx context.Context, q types.SchematicQuery, scenario *types.ScenarioRow) (*types.Schematic, error)
}

// WellSchematicService resolves the scenario, picks the provider for
// its phase and returns the assembled document. It also serves the
// barrier overlay read endpoints.
type WellSchematicService struct {
	helper    *SchematicHelper
	barriers  repos.BarrierRepo
	providers map[string]SchematicProvider
	fallback  SchematicProvider
	log       *logger.Logger
}

func NewWellSchematicService(helper *SchematicHelper, barriers repos.BarrierRepo, actual, fallback SchematicProvider, baseLog *logger.Logger) *WellSchematicService {
	return &WellSchematicService{
		helper:    helper,
		barriers:  barriers,
		providers: map[string]SchematicProvider{actual.Phase(): actual},
		fallback:  fallback,
		log:       baseLog.With("service", "WellSchematicService"),
	}
}

func (s *WellSchematicService) GetWellSchematic(ctx context.Context, q types.SchematicQuery) (*types.Schematic, error) {
	scenario, err := s.helper.DesignData(ctx, q)
	if err != nil {
		return nil, err
	}
	provider, ok := s.providers[scenario.Phase]
	if !ok {
		provider = s.fallback
	}
	schematic, err := provider.Assemble(ctx, q, scenario)
	if err != nil {
		return nil, fmt.Errorf("assemble %s schematic: %w", scenario.Phase, err)
	}
	return schematic, nil
}

// GetBarriers returns every barrier element of the scenario grouped by
// the physical element it annotates.
func (s *WellSchematicService) GetBarriers(ctx context.Context, q types.SchematicQuery) (map[string][]types.ElementBarrier, error) {
	rows, err := s.barriers.ListElementBarriers(ctx, q, nil)
	if err != nil {
		return nil, fmt.Errorf("list element barriers: %w", err)
	}
	byRef := make(map[string][]types.ElementBarrier, len(rows))
	for _, row := range rows {
		byRef[row.RefID] = append(byRef[row.RefID], row)
	}
	return byRef, nil
}

func (s *WellSchematicService) GetBarrierDiagrams(ctx context.Context, q types.SchematicQuery) ([]types.BarrierDiagramRow, error) {
	return s.barriers.ListDiagrams(ctx, q)
}
