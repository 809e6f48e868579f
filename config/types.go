package config

// GTFSConfig locates the schedule input.
type GTFSConfig struct {
	Path      string   `yaml:"path" validate:"omitempty"`
	Calendars []string `yaml:"calendars"`
}

// ProjectionConfig selects the planar coordinate system shapes are
// reconciled in.
type ProjectionConfig struct {
	UTMZone int `yaml:"utmZone" validate:"gte=1,lte=60"`
}

// ToleranceConfig holds the core's geometric tolerances, in meters of
// the projected system.
type ToleranceConfig struct {
	// MinSegmentM is the minimum length a segment must exceed to be
	// kept; shorter fragments are discarded as numerical noise.
	MinSegmentM float64 `yaml:"minSegmentM" validate:"gt=0"`
	// BufferM is the corridor radius used to make intersection tests
	// robust against near-miss coordinates.
	BufferM float64 `yaml:"bufferM" validate:"gt=0"`
}

// OutputConfig controls the GeoJSON export.
type OutputConfig struct {
	Dir              string  `yaml:"dir" validate:"required"`
	SimplifyM        float64 `yaml:"simplifyM" validate:"gte=0"`
	StrokeScale      float64 `yaml:"strokeScale" validate:"gt=0"`
	CombinedMaxRoute int     `yaml:"combinedMaxRoute" validate:"gte=0"`
	PastelFactor     float64 `yaml:"pastelFactor" validate:"gte=0,lte=1"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	GTFS       GTFSConfig       `yaml:"gtfs"`
	Projection ProjectionConfig `yaml:"projection"`
	Tolerance  ToleranceConfig  `yaml:"tolerance"`
	Output     OutputConfig     `yaml:"output"`
	// Jobs bounds the number of routes reconciled concurrently;
	// 0 means one worker per CPU.
	Jobs int `yaml:"jobs" validate:"gte=0"`
}
