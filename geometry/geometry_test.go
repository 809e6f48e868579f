package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func mustLine(t *testing.T, c *Context, pts ...orb.Point) *Line {
	t.Helper()
	l, err := c.NewLine(orb.LineString(pts))
	if err != nil {
		t.Fatalf("NewLine: %v", err)
	}
	return l
}

func TestNewLine_Degenerate(t *testing.T) {
	c := NewContext()
	for _, pts := range []orb.LineString{nil, {orb.Point{1, 2}}} {
		if _, err := c.NewLine(pts); !errors.Is(err, ErrDegenerateLine) {
			t.Errorf("NewLine(%v): err = %v, want ErrDegenerateLine", pts, err)
		}
	}
}

func TestLine_Length(t *testing.T) {
	c := NewContext()
	l := mustLine(t, c, orb.Point{0, 0}, orb.Point{3, 4})
	if got := l.Length(); math.Abs(got-5) > 1e-9 {
		t.Errorf("Length = %g, want 5", got)
	}
}

func TestLine_LineStringRoundtrip(t *testing.T) {
	c := NewContext()
	in := orb.LineString{{0, 0}, {10, 0}, {10, 5}}
	l, err := c.NewLine(in)
	if err != nil {
		t.Fatalf("NewLine: %v", err)
	}
	out := l.LineString()
	if len(out) != len(in) {
		t.Fatalf("got %d coordinates, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("coordinate %d = %v, want %v", i, out[i], in[i])
		}
	}
}

func TestIntersection_PointResultDropped(t *testing.T) {
	// Crossing lines intersect in a point, which classifies to no
	// line pieces.
	c := NewContext()
	a := mustLine(t, c, orb.Point{-10, 0}, orb.Point{10, 0})
	b := mustLine(t, c, orb.Point{0, -10}, orb.Point{0, 10})
	pieces, err := a.Intersection(b).Pieces()
	if err != nil {
		t.Fatalf("Pieces: %v", err)
	}
	if len(pieces) != 0 {
		t.Errorf("got %d pieces, want 0", len(pieces))
	}
}

func TestIntersection_Corridor(t *testing.T) {
	c := NewContext()
	a := mustLine(t, c, orb.Point{0, 0}, orb.Point{100, 0})
	b := mustLine(t, c, orb.Point{40, 0}, orb.Point{60, 0})
	pieces, err := a.Intersection(b.Buffer(1)).Pieces()
	if err != nil {
		t.Fatalf("Pieces: %v", err)
	}
	if len(pieces) != 1 {
		t.Fatalf("got %d pieces, want 1", len(pieces))
	}
	if got := pieces[0].Length(); math.Abs(got-22) > 1 {
		t.Errorf("overlap length = %g, want ~22 (20 plus the corridor caps)", got)
	}
}

func TestDifference_SplitsAndRemerges(t *testing.T) {
	c := NewContext()
	a := mustLine(t, c, orb.Point{0, 0}, orb.Point{100, 0})
	hole := mustLine(t, c, orb.Point{40, 0}, orb.Point{60, 0})
	pieces, err := a.Difference(hole.Buffer(1)).Pieces()
	if err != nil {
		t.Fatalf("Pieces: %v", err)
	}
	if len(pieces) != 2 {
		t.Fatalf("got %d pieces, want 2", len(pieces))
	}

	// Subtracting nothing keeps one piece, and MergeLines joins the
	// two halves of a split back together.
	far := mustLine(t, c, orb.Point{0, 500}, orb.Point{100, 500})
	whole, err := a.Difference(far).Pieces()
	if err != nil {
		t.Fatalf("Pieces: %v", err)
	}
	if len(whole) != 1 {
		t.Fatalf("difference with distant line: got %d pieces, want 1", len(whole))
	}

	left := mustLine(t, c, orb.Point{0, 0}, orb.Point{50, 0})
	right := mustLine(t, c, orb.Point{50, 0}, orb.Point{100, 0})
	merged, err := c.MergeLines([]*Line{left, right})
	if err != nil {
		t.Fatalf("MergeLines: %v", err)
	}
	if len(merged) != 1 {
		t.Fatalf("MergeLines: got %d pieces, want 1", len(merged))
	}
	if got := merged[0].Length(); math.Abs(got-100) > 1e-9 {
		t.Errorf("merged length = %g, want 100", got)
	}
}

func TestMergeLines_DisjointStayApart(t *testing.T) {
	c := NewContext()
	a := mustLine(t, c, orb.Point{0, 0}, orb.Point{10, 0})
	b := mustLine(t, c, orb.Point{20, 0}, orb.Point{30, 0})
	merged, err := c.MergeLines([]*Line{a, b})
	if err != nil {
		t.Fatalf("MergeLines: %v", err)
	}
	if len(merged) != 2 {
		t.Errorf("got %d pieces, want 2", len(merged))
	}
}

func TestPieces_PolygonRejected(t *testing.T) {
	// A corridor is polygonal; feeding one through the line
	// classification must fail loudly rather than coerce.
	c := NewContext()
	l := mustLine(t, c, orb.Point{0, 0}, orb.Point{10, 0})
	r := &Result{g: l.Buffer(1).g}
	if _, err := r.Pieces(); !errors.Is(err, ErrUnsupportedKind) {
		t.Errorf("err = %v, want ErrUnsupportedKind", err)
	}
}
