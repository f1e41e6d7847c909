package refid

import "testing"

func TestTypedConstructors(t *testing.T) {
	cases := []struct {
		name string
		ref  Ref
		want string
	}{
		{"assembly", Assembly("W1", "WB1", "A1"), "CdAssemblyT/W1+WB1+A1"},
		{"casing component", CasingComp("W1", "WB1", "A1", "C2"), "CdAssemblyComp_Cas/W1+WB1+A1+C2"},
		{"assembly component", AssemblyComp("wbeqp", "W1", "WB1", "A1", "C2"), "CdAssemblyCompT_WBEQP/W1+WB1+A1+C2"},
		{"cement stage", CementStage("W1", "WB1", "J1", "S2"), "CdCementStageT/W1+WB1+J1+S2"},
		{"hole section", HoleSection("W1", "WB1", "H3"), "CdHoleSectGroupT/W1+WB1+H3"},
		{"formation", Formation("W1", "WB1", "F4"), "CdWellboreFormationT/W1+WB1+F4"},
		{"perforation", Perforation("W1", "WB1"), "CdWellboreOpeningT/W1+WB1"},
		{"fluid", Fluid("W1", "WB1", "EV1", "FL1"), "CdFluidT/W1+WB1+EV1+FL1"},
		{"wellhead component", WellheadComp("W1", "EV1", "WH1", "WC1"), "CdWellheadCompT/W1+EV1+WH1+WC1"},
		{"wellhead outlet", WellheadOutlet("W1", "EV1", "WH1", "WC1", "O1"), "CdWellheadCompOutletT/W1+EV1+WH1+WC1+O1"},
		{"wellhead hanger", WellheadHanger("W1", "EV1", "WH1", "WC1", "H1"), "CdWellheadHangerT/W1+EV1+WH1+WC1+H1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ref.String(); got != tc.want {
				t.Fatalf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	ref, err := Parse("CdCementStageT/W1+WB1+J1+S2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if ref.Tag != TagCementStage {
		t.Fatalf("Tag = %q, want %q", ref.Tag, TagCementStage)
	}
	leaf, err := ref.Last()
	if err != nil || leaf != "S2" {
		t.Fatalf("Last() = %q, %v", leaf, err)
	}
	job, err := ref.SecondToLast()
	if err != nil || job != "J1" {
		t.Fatalf("SecondToLast() = %q, %v", job, err)
	}
	assembly, err := ref.Segment(2)
	if err != nil || assembly != "J1" {
		t.Fatalf("Segment(2) = %q, %v", assembly, err)
	}
}

func TestParseMalformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"no tag separator", "CdAssemblyT"},
		{"empty tag", "/W1+WB1"},
		{"empty parts", "CdAssemblyT/"},
		{"empty segment", "CdAssemblyT/W1++A1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.input); err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tc.input)
			}
		})
	}
}

func TestSegmentOutOfRange(t *testing.T) {
	ref := New(TagAssembly, "W1")
	if _, err := ref.Segment(3); err == nil {
		t.Fatal("expected error for missing segment")
	}
	if _, err := ref.SecondToLast(); err == nil {
		t.Fatal("expected error for single-part ref")
	}
}
