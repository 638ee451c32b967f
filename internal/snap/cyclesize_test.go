package snap

import "testing"

func TestCanonicalCycleOrder(t *testing.T) {
	got := FullSizeMask.Sizes()
	want := []CycleSize{SizeHalf, SizeTwoThirds, SizeThreeQuarters, SizeQuarter, SizeThird}
	if len(got) != len(want) {
		t.Fatalf("sizes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sizes = %v, want canonical order %v", got, want)
		}
	}
}

func TestMaskSubsetKeepsCanonicalOrder(t *testing.T) {
	m := MaskOf(SizeThird, SizeThreeQuarters, SizeHalf)
	got := m.Sizes()
	want := []CycleSize{SizeHalf, SizeThreeQuarters, SizeThird}
	if len(got) != len(want) {
		t.Fatalf("sizes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sizes = %v, want %v", got, want)
		}
	}
}

func TestMaskRoundTrip(t *testing.T) {
	m := MaskOf(SizeQuarter, SizeTwoThirds)
	for _, c := range []CycleSize{SizeHalf, SizeThird, SizeTwoThirds, SizeQuarter, SizeThreeQuarters} {
		want := c == SizeQuarter || c == SizeTwoThirds
		if m.Has(c) != want {
			t.Errorf("mask.Has(%v) = %v, want %v", c, m.Has(c), want)
		}
	}
}

func TestMalformedMaskFallsBackToFullSet(t *testing.T) {
	for _, m := range []SizeMask{0, FullSizeMask + 1, 0xFF} {
		if got := m.Sizes(); len(got) != 5 {
			t.Errorf("mask %#x sizes = %v, want the full set", uint8(m), got)
		}
	}
	if FullSizeMask.Valid() != true || SizeMask(0).Valid() != false {
		t.Error("mask validity misclassified")
	}
}

func TestParseCycleSize(t *testing.T) {
	for _, name := range []string{"half", "third", "two-thirds", "quarter", "three-quarters"} {
		c, err := ParseCycleSize(name)
		if err != nil {
			t.Fatalf("ParseCycleSize(%q): %v", name, err)
		}
		if c.String() != name {
			t.Fatalf("round trip %q -> %v", name, c)
		}
	}
	if _, err := ParseCycleSize("fifth"); err == nil {
		t.Fatal("expected an error for an unknown size name")
	}
}

func TestFractionOutOfRangeDefaults(t *testing.T) {
	if f := CycleSize(99).Fraction(); f != 0.5 {
		t.Fatalf("out-of-range fraction = %v, want one half", f)
	}
}

func TestParseExecutionMode(t *testing.T) {
	for _, name := range []string{"none", "resize", "across-monitor", "across-and-resize", "cycle-monitor"} {
		m, err := ParseExecutionMode(name)
		if err != nil {
			t.Fatalf("ParseExecutionMode(%q): %v", name, err)
		}
		if m.String() != name {
			t.Fatalf("round trip %q -> %v", name, m)
		}
	}
	if _, err := ParseExecutionMode("teleport"); err == nil {
		t.Fatal("expected an error for an unknown mode name")
	}
}

func TestSettingsNormalization(t *testing.T) {
	s := Settings{
		Sizes:           0xFF,
		MinimumFraction: 2.0,
		GapTolerance:    -1,
		SizeStep:        0,
	}.normalized()

	if s.Sizes != FullSizeMask {
		t.Errorf("sizes = %#x, want the full mask", uint8(s.Sizes))
	}
	if s.MinimumFraction != DefaultMinimumFraction {
		t.Errorf("minimum fraction = %v, want default", s.MinimumFraction)
	}
	if s.GapTolerance != DefaultGapTolerance {
		t.Errorf("gap tolerance = %d, want default", s.GapTolerance)
	}
	if s.SizeStep != DefaultSizeStep || s.WidthStep != DefaultSizeStep || s.HeightStep != DefaultSizeStep {
		t.Errorf("steps = %d/%d/%d, want defaults", s.SizeStep, s.WidthStep, s.HeightStep)
	}
}
