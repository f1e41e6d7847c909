package services

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/wellsight/wellsight-backend/internal/platform/logger"
	"github.com/wellsight/wellsight-backend/internal/repos"
	"github.com/wellsight/wellsight-backend/internal/types"
)

// maxPathDepth bounds the parent walk. Real wells sidetrack a handful
// of times; anything deeper means corrupted parent links.
const maxPathDepth = 32

// SchematicHelper carries the lookups shared by the schematic
// providers: scenario resolution, wellbore path walking and the
// per-request barrier cache.
type SchematicHelper struct {
	wellbores repos.WellboreRepo
	barriers  repos.BarrierRepo
	log       *logger.Logger
}

func NewSchematicHelper(wellbores repos.WellboreRepo, barriers repos.BarrierRepo, baseLog *logger.Logger) *SchematicHelper {
	return &SchematicHelper{
		wellbores: wellbores,
		barriers:  barriers,
		log:       baseLog.With("service", "SchematicHelper"),
	}
}

// DesignData resolves the scenario the request addresses. A missing
// scenario is a hard not-found, nothing can be assembled without it.
func (h *SchematicHelper) DesignData(ctx context.Context, q types.SchematicQuery) (*types.ScenarioRow, error) {
	scenario, err := h.wellbores.GetScenario(ctx, q.WellID, q.WellboreID, q.ScenarioID)
	if err != nil {
		return nil, fmt.Errorf("get scenario %s: %w", q.ScenarioID, err)
	}
	if scenario == nil {
		return nil, types.ErrNotFound
	}
	return scenario, nil
}

// ResolvePath walks parent links from the requested wellbore up to the
// original hole and returns the chain top-first. Each node carries its
// own kickoff depths; the assembler clamps a node's elements at the
// NEXT node's kickoff.
func (h *SchematicHelper) ResolvePath(ctx context.Context, wellID, wellboreID string) ([]types.WellborePathNode, error) {
	var chain []types.WellborePathNode
	seen := make(map[string]bool)

	current := &wellboreID
	for current != nil {
		if seen[*current] {
			return nil, fmt.Errorf("wellbore path: parent cycle at %s", *current)
		}
		if len(chain) >= maxPathDepth {
			return nil, fmt.Errorf("wellbore path: deeper than %d from %s", maxPathDepth, wellboreID)
		}
		seen[*current] = true

		row, err := h.wellbores.GetWellbore(ctx, wellID, *current)
		if err != nil {
			return nil, fmt.Errorf("wellbore path: get %s: %w", *current, err)
		}
		if row == nil {
			return nil, fmt.Errorf("wellbore path: %s: %w", *current, types.ErrNotFound)
		}
		chain = append(chain, types.WellborePathNode{
			WellID:           row.WellID,
			WellboreID:       row.WellboreID,
			Name:             row.WellboreName,
			ParentWellboreID: row.ParentWellboreID,
			KickoffMD:        row.KoMD,
			KickoffTVD:       row.KoTVD,
		})
		current = row.ParentWellboreID
	}

	// Walked bottom-up, consumers want top-down.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}

// BarrierCache serves barrier annotations for one assembly pass. The
// full diagram-envelope-element join is fetched once on first use and
// grouped by ref_id; the cache never outlives its request, so element
// toggles landing mid-assembly are simply not seen.
type BarrierCache struct {
	repo repos.BarrierRepo
	log  *logger.Logger
	q    types.SchematicQuery

	once  sync.Once
	byRef map[string][]types.ElementBarrier
}

func (h *SchematicHelper) NewBarrierCache(q types.SchematicQuery) *BarrierCache {
	return &BarrierCache{repo: h.barriers, log: h.log, q: q}
}

// ElementBarriers returns the barrier rows keyed by one element's
// ref id. A failed load degrades to no annotations, the schematic
// itself still renders.
func (c *BarrierCache) ElementBarriers(ctx context.Context, refID string) []types.ElementBarrier {
	c.once.Do(func() {
		rows, err := c.repo.ListElementBarriers(ctx, c.q, &c.q.SchematicDate)
		if err != nil {
			c.log.Error("load barrier elements", "well_id", c.q.WellID, "wellbore_id", c.q.WellboreID, "error", err)
			c.byRef = map[string][]types.ElementBarrier{}
			return
		}
		c.byRef = make(map[string][]types.ElementBarrier, len(rows))
		for _, row := range rows {
			c.byRef[row.RefID] = append(c.byRef[row.RefID], row)
		}
	})
	return c.byRef[refID]
}

// round1 rounds depths to one decimal, the resolution the drawing
// layer works at.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
