package geometry

import (
	"fmt"

	"github.com/twpayne/go-geos"
)

// Result is the raw outcome of an intersection or difference before it
// has been classified into line pieces.
type Result struct {
	g *geos.Geom
}

// Pieces flattens the result into its constituent line pieces. Point
// pieces and empty geometries are dropped. Polygonal pieces mean the
// backend broke the lines-in/lines-out contract and are reported as
// ErrUnsupportedKind.
func (r *Result) Pieces() ([]*Line, error) {
	var out []*Line
	if err := collectLines(r.g, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func collectLines(g *geos.Geom, out *[]*Line) error {
	if g.IsEmpty() {
		return nil
	}
	switch g.TypeID() {
	case geos.TypeIDPoint, geos.TypeIDMultiPoint:
		return nil
	case geos.TypeIDLineString, geos.TypeIDLinearRing:
		*out = append(*out, &Line{g: g})
		return nil
	case geos.TypeIDMultiLineString, geos.TypeIDGeometryCollection:
		for i := 0; i < g.NumGeometries(); i++ {
			if err := collectLines(g.Geometry(i), out); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedKind, g.Type())
	}
}

// MergeLines joins touching line pieces into maximal connected lines
// and returns the resulting pieces. Pieces must all belong to this
// context.
func (c *Context) MergeLines(lines []*Line) ([]*Line, error) {
	switch len(lines) {
	case 0:
		return nil, nil
	case 1:
		return lines, nil
	}
	// The collection takes ownership of its members, so hand it clones
	// and leave the callers' pieces untouched.
	geoms := make([]*geos.Geom, len(lines))
	for i, l := range lines {
		geoms[i] = l.g.Clone()
	}
	multi := c.gc.NewCollection(geos.TypeIDMultiLineString, geoms)
	merged := &Result{g: multi.LineMerge()}
	return merged.Pieces()
}
