package action

import "testing"

func TestParseRoundTrip(t *testing.T) {
	for _, a := range All() {
		got, err := Parse(a.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", a.String(), err)
		}
		if got != a {
			t.Fatalf("Parse(%q) = %v, want %v", a.String(), got, a)
		}
	}
}

func TestParseRejectsUnknown(t *testing.T) {
	if _, err := Parse("diagonal-half"); err == nil {
		t.Fatal("expected error for unknown action name")
	}
}

func TestParseNormalizesCase(t *testing.T) {
	a, err := Parse("  Left-Half ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != LeftHalf {
		t.Fatalf("got %v, want LeftHalf", a)
	}
}

func TestEveryActionHasFamily(t *testing.T) {
	for _, a := range All() {
		if a.Family() == FamilyNone {
			t.Errorf("action %v has no family", a)
		}
	}
}

func TestFamilyGrouping(t *testing.T) {
	tests := []struct {
		action Action
		want   Family
	}{
		{LeftHalf, FamilyHalves},
		{CenterHalf, FamilyHalves},
		{TopRight, FamilyCorners},
		{FirstTwoThirds, FamilyThirds},
		{LastFourth, FamilyFourths},
		{AlmostMaximize, FamilyMaximize},
		{SmallerHeight, FamilySizeDelta},
		{DoubleWidthLeft, FamilyHalveDouble},
		{MoveDown, FamilyMove},
		{PreviousDisplay, FamilyDisplay},
		{BottomCenterSixth, FamilySixths},
		{MiddleCenterNinth, FamilyNinths},
		{BottomCenterRightEighth, FamilyEighths},
		{TopLeftThird, FamilyCornerThirds},
		{RightTodo, FamilyTodo},
		{Restore, FamilyMeta},
		{CascadeAll, FamilyMeta},
	}
	for _, tt := range tests {
		if got := tt.action.Family(); got != tt.want {
			t.Errorf("%v.Family() = %v, want %v", tt.action, got, tt.want)
		}
	}
}

func TestActionCount(t *testing.T) {
	// The action set is closed; growing it means touching the name table,
	// the family switch, and the engine dispatch together.
	if got := len(All()); got != 79 {
		t.Fatalf("named action count = %d, want 79", got)
	}
}
