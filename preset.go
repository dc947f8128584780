package ringgen

import (
	"fmt"
	"math"
	"sort"
)

// DefaultRefDim is the display height the base radii were designed for.
const DefaultRefDim = 1080

// Geometry derives circle parameters from a target display dimension.
// The radius is BaseRadius scaled by Dim/RefDim in integer arithmetic,
// the origin is the center of a Dim x Dim square.
type Geometry struct {
	Dim        int
	BaseRadius int
	RefDim     int
	Count      int
}

// Params returns the origin and radius of the circle described by g.
func (g Geometry) Params() (Params, error) {
	refDim := g.RefDim
	if refDim == 0 {
		refDim = DefaultRefDim
	}
	if refDim < 0 {
		return Params{}, fmt.Errorf("%w: reference dimension can't be negative, got %d", ErrInvalidParams, refDim)
	}
	if g.Dim < 0 {
		return Params{}, fmt.Errorf("%w: dimension can't be negative, got %d", ErrInvalidParams, g.Dim)
	}
	if g.BaseRadius == math.MinInt || (g.BaseRadius != 0 && g.Dim > math.MaxInt/absInt(g.BaseRadius)) {
		return Params{}, fmt.Errorf("%w: radius %d at dimension %d overflows int", ErrInvalidParams, g.BaseRadius, g.Dim)
	}
	center := float64(g.Dim / 2)
	return Params{
		Origin: Vec{X: center, Y: center},
		Radius: float64(g.BaseRadius * g.Dim / refDim),
		Count:  g.Count,
	}, nil
}

// Preset is a named geometry and convention pair matching one of the
// known consumers of generated tables.
type Preset struct {
	Name       string
	Geometry   Geometry
	Convention Convention
}

// Sample runs the sampler with the preset geometry and convention.
func (p Preset) Sample() ([]Point, error) {
	params, paramsErr := p.Geometry.Params()
	if paramsErr != nil {
		return nil, fmt.Errorf("can't build params for preset %v: %w", p.Name, paramsErr)
	}
	return Sample(params, p.Convention)
}

var (
	// PhasedFloor starts one step past twelve o'clock, shifts the sine term
	// by 1.5/n and walks the circle backwards.
	PhasedFloor = Convention{
		FirstIndex: 1,
		SinePhase:  1.5,
		Rounding:   Floor,
		Order:      Reverse,
	}
	// MirroredNearest mirrors a negated sweep through the origin and rounds
	// to the nearest pixel.
	MirroredNearest = Convention{
		FirstIndex:  1,
		NegateAngle: true,
		Subtract:    true,
		Rounding:    Nearest,
		Order:       Forward,
	}
	// MirroredTruncated starts at twelve o'clock and truncates the offsets
	// from an integer center.
	MirroredTruncated = Convention{
		FirstIndex:  0,
		NegateAngle: true,
		Subtract:    true,
		Rounding:    Truncate,
		RoundOffset: true,
		Order:       Forward,
	}
)

const (
	secondsRadius = 450
	hoursRadius   = 500
)

var presets = map[string]Preset{
	"ring176": {
		Name:       "ring176",
		Geometry:   Geometry{Dim: 176, BaseRadius: hoursRadius, Count: 60},
		Convention: PhasedFloor,
	},
	"ring192": {
		Name:       "ring192",
		Geometry:   Geometry{Dim: 192, BaseRadius: hoursRadius, Count: 60},
		Convention: MirroredNearest,
	},
	"seconds1080": {
		Name:       "seconds1080",
		Geometry:   Geometry{Dim: 1080, BaseRadius: secondsRadius, Count: 60},
		Convention: MirroredTruncated,
	},
	"hours1080": {
		Name:       "hours1080",
		Geometry:   Geometry{Dim: 1080, BaseRadius: hoursRadius, Count: 12},
		Convention: MirroredTruncated,
	},
	"seconds192": {
		Name:       "seconds192",
		Geometry:   Geometry{Dim: 192, BaseRadius: secondsRadius, Count: 60},
		Convention: MirroredTruncated,
	},
	"hours192": {
		Name:       "hours192",
		Geometry:   Geometry{Dim: 192, BaseRadius: hoursRadius, Count: 12},
		Convention: MirroredTruncated,
	},
}

// DefaultPreset is used when no preset is requested.
const DefaultPreset = "ring176"

// LookupPreset returns the preset registered under name.
func LookupPreset(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset `%v`; available: %v", name, PresetNames())
	}
	return p, nil
}

// PresetNames lists the registered presets in lexical order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
