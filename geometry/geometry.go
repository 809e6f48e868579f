package geometry

import (
	"errors"

	"github.com/paulmach/orb"
	"github.com/twpayne/go-geos"
)

// bufferQuadSegs is the number of segments per quarter circle used when
// dilating a line into a corridor.
const bufferQuadSegs = 8

var (
	// ErrDegenerateLine is returned when a line is constructed from
	// fewer than two coordinates.
	ErrDegenerateLine = errors.New("geometry: line needs at least two coordinates")

	// ErrUnsupportedKind is returned when a boolean operation yields a
	// geometry kind the line classification does not recognize, such as
	// a polygon. It indicates a contract violation by the backend, not
	// a recoverable input condition.
	ErrUnsupportedKind = errors.New("geometry: unsupported geometry kind")
)

// Geometry is any planar shape a Line can be intersected with or
// subtracted by: another Line, or a Corridor produced by buffering one.
type Geometry interface {
	geom() *geos.Geom
}

// Context owns a GEOS context and constructs geometries bound to it.
// Geometries from different contexts must not be mixed in one operation.
type Context struct {
	gc *geos.Context
}

// NewContext creates a fresh GEOS context.
func NewContext() *Context {
	return &Context{gc: geos.NewContext()}
}

// Line is a connected planar polyline.
type Line struct {
	g *geos.Geom
}

func (l *Line) geom() *geos.Geom { return l.g }

// Corridor is the polygonal dilation of a line by a fixed distance. It
// only ever appears as the right-hand side of an intersection or
// difference; the classification logic never has to recognize it as an
// operation result.
type Corridor struct {
	g *geos.Geom
}

func (c *Corridor) geom() *geos.Geom { return c.g }

// NewLine builds a Line from projected coordinates.
func (c *Context) NewLine(ls orb.LineString) (*Line, error) {
	if len(ls) < 2 {
		return nil, ErrDegenerateLine
	}
	coords := make([][]float64, len(ls))
	for i, p := range ls {
		coords[i] = []float64{p[0], p[1]}
	}
	return &Line{g: c.gc.NewLineString(coords)}, nil
}

// Length returns the line's planar length.
func (l *Line) Length() float64 {
	return l.g.Length()
}

// LineString copies the line's coordinates back out of the backend.
func (l *Line) LineString() orb.LineString {
	coords := l.g.CoordSeq().ToCoords()
	ls := make(orb.LineString, len(coords))
	for i, c := range coords {
		ls[i] = orb.Point{c[0], c[1]}
	}
	return ls
}

// Buffer dilates the line into a corridor of the given radius.
func (l *Line) Buffer(radius float64) *Corridor {
	return &Corridor{g: l.g.Buffer(radius, bufferQuadSegs)}
}

// Intersection computes the portion of l covered by g.
func (l *Line) Intersection(g Geometry) *Result {
	return &Result{g: l.g.Intersection(g.geom())}
}

// Difference computes the portion of l not covered by g.
func (l *Line) Difference(g Geometry) *Result {
	return &Result{g: l.g.Difference(g.geom())}
}
