package geometry

import "testing"

func TestIsLandscape(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want bool
	}{
		{"wide", Rect{Width: 1920, Height: 1080}, true},
		{"tall", Rect{Width: 1080, Height: 1920}, false},
		{"square counts as landscape", Rect{Width: 800, Height: 800}, true},
	}
	for _, tt := range tests {
		if got := tt.rect.IsLandscape(); got != tt.want {
			t.Errorf("%s: IsLandscape() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFloorFrac(t *testing.T) {
	if got := FloorFrac(1000, 1.0/3.0); got != 333 {
		t.Errorf("FloorFrac(1000, 1/3) = %d, want 333", got)
	}
	if got := FloorFrac(1000, 2.0/3.0); got != 666 {
		t.Errorf("FloorFrac(1000, 2/3) = %d, want 666", got)
	}
	if got := FloorFrac(900, 2.0/3.0); got != 600 {
		t.Errorf("FloorFrac(900, 2/3) = %d, want 600", got)
	}
}

func TestCenteredIn(t *testing.T) {
	screen := Rect{X: 100, Y: 50, Width: 1000, Height: 600}
	win := Rect{Width: 400, Height: 300}

	got := win.CenteredIn(screen)
	want := Rect{X: 400, Y: 200, Width: 400, Height: 300}
	if got != want {
		t.Errorf("CenteredIn = %+v, want %+v", got, want)
	}
}

func TestIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	b := Rect{X: 50, Y: 50, Width: 100, Height: 100}
	c := Rect{X: 100, Y: 0, Width: 100, Height: 100}

	if !a.Intersects(b) {
		t.Error("expected a and b to intersect")
	}
	// Shared edge is not an overlap.
	if a.Intersects(c) {
		t.Error("expected a and c not to intersect")
	}
}

func TestEmpty(t *testing.T) {
	if !(Rect{}).IsEmpty() {
		t.Error("zero rect should report IsEmpty")
	}
	if (Rect{Width: 1, Height: 1}).IsEmpty() {
		t.Error("1x1 rect should not report IsEmpty")
	}
}
