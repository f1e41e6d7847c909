package refid

import (
	"fmt"
	"strings"
)

// A Ref is the composite reference id that joins a physical schematic
// element to its barrier overlay rows. On the wire it is a string of
// the form
//
//	<EntityTag>/<well_id>+<wellbore_id>+<...compound ids...>
//
// The tag names the source entity; the '+'-delimited parts are the
// entity's compound key, outermost id first. Refs are never reused
// across element types or across re-creation of an element.
type Ref struct {
	Tag   string
	Parts []string
}

// Entity tags, matching the legacy store's row types. Assembly
// component tags carry the section type as a suffix so that a tubing
// hanger and a packer made from the same row type stay distinct.
const (
	TagWellheadComp   = "CdWellheadCompT"
	TagWellheadOutlet = "CdWellheadCompOutletT"
	TagWellheadHanger = "CdWellheadHangerT"
	TagFormation      = "CdWellboreFormationT"
	TagHoleSection    = "CdHoleSectGroupT"
	TagAssembly       = "CdAssemblyT"
	TagCasingComp     = "CdAssemblyComp_Cas"
	TagAssemblyComp   = "CdAssemblyCompT" // suffixed: CdAssemblyCompT_<SECTTYPE>
	TagCementStage    = "CdCementStageT"
	TagPerforation    = "CdWellboreOpeningT"
	TagFluid          = "CdFluidT"
)

func New(tag string, parts ...string) Ref {
	return Ref{Tag: tag, Parts: parts}
}

func (r Ref) String() string {
	return r.Tag + "/" + strings.Join(r.Parts, "+")
}

// Segment returns the i-th compound id part, counting from zero.
func (r Ref) Segment(i int) (string, error) {
	if i < 0 || i >= len(r.Parts) {
		return "", fmt.Errorf("ref id %q: missing segment %d", r.String(), i)
	}
	return r.Parts[i], nil
}

// Last returns the leaf id, the last compound part.
func (r Ref) Last() (string, error) {
	return r.Segment(len(r.Parts) - 1)
}

// SecondToLast returns the parent id of the leaf, used by cement
// stage refs where the stage id is qualified by its job id.
func (r Ref) SecondToLast() (string, error) {
	return r.Segment(len(r.Parts) - 2)
}

// Parse decodes a composite reference id. A ref with no tag, no
// parts, or an empty part is a data-integrity error: barrier rows
// keyed by it could never be matched back to a physical element.
func Parse(s string) (Ref, error) {
	tag, rest, found := strings.Cut(s, "/")
	if !found || tag == "" {
		return Ref{}, fmt.Errorf("malformed ref id %q: missing entity tag", s)
	}
	parts := strings.Split(rest, "+")
	if len(parts) == 0 || rest == "" {
		return Ref{}, fmt.Errorf("malformed ref id %q: missing compound ids", s)
	}
	for _, p := range parts {
		if p == "" {
			return Ref{}, fmt.Errorf("malformed ref id %q: empty compound id segment", s)
		}
	}
	return Ref{Tag: tag, Parts: parts}, nil
}

// Typed constructors for every element the assembler produces.

func WellheadComp(wellID, eventID, wellheadID, compID string) Ref {
	return New(TagWellheadComp, wellID, eventID, wellheadID, compID)
}

func WellheadOutlet(wellID, eventID, wellheadID, compID, outletID string) Ref {
	return New(TagWellheadOutlet, wellID, eventID, wellheadID, compID, outletID)
}

func WellheadHanger(wellID, eventID, wellheadID, compID, hangerID string) Ref {
	return New(TagWellheadHanger, wellID, eventID, wellheadID, compID, hangerID)
}

func Formation(wellID, wellboreID, formationID string) Ref {
	return New(TagFormation, wellID, wellboreID, formationID)
}

func HoleSection(wellID, wellboreID, holeSectGroupID string) Ref {
	return New(TagHoleSection, wellID, wellboreID, holeSectGroupID)
}

func Assembly(wellID, wellboreID, assemblyID string) Ref {
	return New(TagAssembly, wellID, wellboreID, assemblyID)
}

func CasingComp(wellID, wellboreID, assemblyID, compID string) Ref {
	return New(TagCasingComp, wellID, wellboreID, assemblyID, compID)
}

func AssemblyComp(sectType, wellID, wellboreID, assemblyID, compID string) Ref {
	return New(TagAssemblyComp+"_"+strings.ToUpper(sectType), wellID, wellboreID, assemblyID, compID)
}

func CementStage(wellID, wellboreID, cementJobID, cementStageID string) Ref {
	return New(TagCementStage, wellID, wellboreID, cementJobID, cementStageID)
}

func Perforation(wellID, wellboreID string) Ref {
	return New(TagPerforation, wellID, wellboreID)
}

func Fluid(wellID, wellboreID, eventID, fluidID string) Ref {
	return New(TagFluid, wellID, wellboreID, eventID, fluidID)
}
