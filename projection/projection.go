package projection

import (
	"fmt"

	"github.com/ctessum/geom/proj"
	"github.com/paulmach/orb"
)

const wgs84 = "+proj=longlat +datum=WGS84 +no_defs"

// Transform maps a single coordinate between coordinate systems.
type Transform func(orb.Point) (orb.Point, error)

// UTM builds the forward (lon/lat -> UTM meters) and inverse transforms
// for the given zone.
func UTM(zone int) (forward, inverse Transform, err error) {
	if zone < 1 || zone > 60 {
		return nil, nil, fmt.Errorf("projection: UTM zone %d out of range [1, 60]", zone)
	}
	geoSR, err := proj.Parse(wgs84)
	if err != nil {
		return nil, nil, fmt.Errorf("projection: parse WGS84: %w", err)
	}
	utmSR, err := proj.Parse(fmt.Sprintf("+proj=utm +zone=%d +datum=WGS84 +units=m +no_defs", zone))
	if err != nil {
		return nil, nil, fmt.Errorf("projection: parse UTM zone %d: %w", zone, err)
	}
	fwd, err := geoSR.NewTransform(utmSR)
	if err != nil {
		return nil, nil, fmt.Errorf("projection: forward transform: %w", err)
	}
	inv, err := utmSR.NewTransform(geoSR)
	if err != nil {
		return nil, nil, fmt.Errorf("projection: inverse transform: %w", err)
	}
	return wrap(fwd), wrap(inv), nil
}

func wrap(t proj.Transformer) Transform {
	return func(p orb.Point) (orb.Point, error) {
		x, y, err := t(p[0], p[1])
		if err != nil {
			return orb.Point{}, err
		}
		return orb.Point{x, y}, nil
	}
}

// Apply transforms every coordinate of a line, returning a fresh line.
func Apply(t Transform, ls orb.LineString) (orb.LineString, error) {
	out := make(orb.LineString, len(ls))
	for i, p := range ls {
		q, err := t(p)
		if err != nil {
			return nil, err
		}
		out[i] = q
	}
	return out, nil
}
