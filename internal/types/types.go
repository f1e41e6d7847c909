package types

import (
	"errors"
	"time"
)

// ErrNotFound marks a missing anchor entity (wellbore, scenario,
// diagram on read). Callers treat it as "nothing to show", not as a
// store failure.
var ErrNotFound = errors.New("not found")

// SchematicQuery identifies one point-in-time view of a well: the
// target wellbore, the design scenario and the as-of date.
type SchematicQuery struct {
	WellID        string    `json:"well_id" form:"well_id" binding:"required"`
	WellboreID    string    `json:"wellbore_id" form:"wellbore_id" binding:"required"`
	ScenarioID    string    `json:"scenario_id" form:"scenario_id" binding:"required"`
	SchematicDate time.Time `json:"schematic_date" form:"schematic_date" time_format:"2006-01-02"`
}

// PhaseActual selects the as-built provider; any other scenario phase
// selects the design provider.
const PhaseActual = "ACTUAL"
