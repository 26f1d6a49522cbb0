package bez

import (
	"errors"
	"math"
	"testing"
)

func TestNewPath(t *testing.T) {
	if p := NewPath(); p != nil {
		t.Errorf("got %v, want nil", p)
	}
	want := Path{
		Vertex(Pt(0, 0)), Control(Pt(1, 0)), Control(Pt(2, 0)),
		Vertex(Pt(3, 0)), Control(Pt(3, 1)), Control(Pt(3, 2)),
		Vertex(Pt(3, 3)),
	}
	got := NewPath(
		CubicBez{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)},
		CubicBez{Pt(3, 0), Pt(3, 1), Pt(3, 2), Pt(3, 3)},
	)
	diff(t, want, got)
	if err := got.Validate(); err != nil {
		t.Error(err)
	}
	if got.NumSegments() != 2 {
		t.Errorf("got %d segments, want 2", got.NumSegments())
	}
	diff(t, []CubicBez{got.Segment(0), got.Segment(1)}, got.Segments())
}

func TestPathValidate(t *testing.T) {
	ok := NewPath(hump)
	closing := append(Path(nil), ok...)
	closing[1].Role |= RoleClosed
	tests := []struct {
		name string
		p    Path
	}{
		{"empty", nil},
		{"single point", Path{Vertex(Pt(0, 0))}},
		{"incomplete", ok[:3]},
		{"trailing", append(append(Path(nil), ok...), Control(Pt(1, 1)))},
		{"control at vertex", Path{Control(Pt(0, 0)), Control(Pt(1, 0)), Control(Pt(2, 0)), Vertex(Pt(3, 0))}},
		{"vertex at control", Path{Vertex(Pt(0, 0)), Vertex(Pt(1, 0)), Control(Pt(2, 0)), Vertex(Pt(3, 0))}},
		{"closed too early", closing},
		{"NaN", NewPath(CubicBez{Pt(0, 0), Pt(math.NaN(), 1), Pt(2, 1), Pt(3, 0)})},
		{"infinite", NewPath(hump, lineCubic(hump.P3, Pt(math.Inf(1), 0)))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if !errors.Is(err, ErrMalformedPath) {
				t.Errorf("got error %v, want ErrMalformedPath", err)
			}
		})
	}

	// Corner flags are allowed on any vertex.
	sharp := RoundedRect(0, 0, 10, 10, RoundedRectRadii{})
	if err := sharp.Validate(); err != nil {
		t.Error(err)
	}
}

func TestPathReverse(t *testing.T) {
	p := NewPath(hump, lineCubic(hump.P3, Pt(20, 0)))
	r := p.Reverse()
	diff(t, []CubicBez{lineCubic(hump.P3, Pt(20, 0)).Reverse(), hump.Reverse()}, r.Segments())
	diff(t, p, r.Reverse())

	c := Circle(Pt(0, 0), 5, 4)
	rc := c.Reverse()
	if !rc.Closed() {
		t.Error("reversed closed path isn't closed")
	}
	if rc[0].Role.Has(RoleClosed) {
		t.Error("first point of the reversed path carries RoleClosed")
	}
	if err := rc.Validate(); err != nil {
		t.Error(err)
	}
	// Reversing flips the orientation.
	if w0, w1 := c.Winding(Pt(0, 0), 8), rc.Winding(Pt(0, 0), 8); w0 != -w1 || w0 == 0 {
		t.Errorf("got windings %d and %d", w0, w1)
	}
}

func TestPathMeasures(t *testing.T) {
	square := RoundedRect(0, 0, 10, 10, RoundedRectRadii{})
	diff(t, 40.0, square.Length(1e-9), approx(1e-9))
	diff(t, Rect{0, 0, 10, 10}, square.BoundingBox(), approx(1e-12))
	diff(t, 4*DefaultSamples+1, len(square.Flatten(DefaultSamples)))

	tests := []struct {
		pt   Point
		want bool
	}{
		{Pt(5, 5), true},
		{Pt(0.5, 9.5), true},
		{Pt(-1, 5), false},
		{Pt(5, 11), false},
	}
	for _, tt := range tests {
		if got := square.Contains(tt.pt, 4); got != tt.want {
			t.Errorf("Contains(%s) = %t, want %t", tt.pt, got, tt.want)
		}
	}
}

func TestPathNearest(t *testing.T) {
	p := NewPath(lineCubic(Pt(0, 0), Pt(10, 0)), lineCubic(Pt(10, 0), Pt(10, 10)))
	loc, d := p.Nearest(Pt(12, 5), DefaultSamples)
	diff(t, PathLocation{1, 0.5}, loc, approx(1e-9))
	diff(t, 2.0, d, approx(1e-9))

	loc, d = p.Nearest(Pt(3, -4), DefaultSamples)
	diff(t, PathLocation{0, 0.3}, loc, approx(1e-3))
	diff(t, 4.0, d, approx(1e-3))
}
