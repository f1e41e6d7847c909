package services

import (
	"github.com/wellsight/wellsight-backend/internal/types"
)

// AggregateEnvelopeStatus derives an envelope's status from its
// element statuses. Priority is strict: Not Effective beats Partially
// Effective beats Effective, and a missing status counts as Not
// Effective.
func AggregateEnvelopeStatus(statuses []*string) string {
	aggregate := types.StatusEffective
	for _, status := range statuses {
		if status == nil || *status == "" || *status == types.StatusNotEffective {
			return types.StatusNotEffective
		}
		if *status == types.StatusPartiallyEffective {
			aggregate = types.StatusPartiallyEffective
		}
	}
	return aggregate
}

// LatestAnnulusTests picks the live MOP/MAWOP/MAASP values for one
// annulus element. The write path keeps at most one row per type, so
// a plain type match suffices; a missing type yields nil values.
func LatestAnnulusTests(rows []types.AnnulusTestRow) types.AnnulusLatestTest {
	var out types.AnnulusLatestTest
	for _, row := range rows {
		switch row.TestType {
		case types.AnnulusTestMOP:
			out.MOPValue = row.Pressure
		case types.AnnulusTestMAWOP:
			out.MAWOPValue = row.Pressure
			out.MAWOPLocation = row.Location
		case types.AnnulusTestMAASP:
			out.MAASPValue = row.Pressure
			out.MAASPLocation = row.Location
		}
	}
	return out
}
