package services

import (
	"context"

	"github.com/wellsight/wellsight-backend/internal/platform/logger"
	"github.com/wellsight/wellsight-backend/internal/types"
)

// DesignSchematicProvider handles scenarios that are still in a
// planning phase. Design data carries no as-built state, so the
// document is the empty shell the drawing layer expects.
type DesignSchematicProvider struct {
	log *logger.Logger
}

func NewDesignSchematicProvider(baseLog *logger.Logger) *DesignSchematicProvider {
	return &DesignSchematicProvider{log: baseLog.With("service", "DesignSchematicProvider")}
}

func (p *DesignSchematicProvider) Phase() string { return "DESIGN" }

func (p *DesignSchematicProvider) Assemble(ctx context.Context, q types.SchematicQuery, scenario *types.ScenarioRow) (*types.Schematic, error) {
	p.log.Warn("design schematic requested, returning empty document",
		"well_id", q.WellID, "wellbore_id", q.WellboreID, "phase", scenario.Phase)
	return &types.Schematic{
		Units: types.Units{
			DepthUnits:    "ft",
			DiameterUnits: "in",
			LengthUnits:   "ft",
			DepthDP:       1,
			DiameterDP:    3,
			LengthDP:      2,
		},
		ReferenceDepths: types.ReferenceDepths{SystemDatum: "None"},
	}, nil
}
