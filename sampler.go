package ringgen

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams is wrapped by every error caused by unusable sampler input.
var ErrInvalidParams = errors.New("invalid ring parameters")

// MaxCoordinate bounds |origin| + |radius| on both axes, so every sampled
// coordinate fits into an int32 table.
const MaxCoordinate = math.MaxInt32

// Rounding selects how real coordinates become integers.
type Rounding int

const (
	Floor Rounding = iota
	// Nearest rounds half away from zero.
	Nearest
	// Truncate rounds toward zero, like an integer conversion.
	Truncate
)

func (r Rounding) String() string {
	switch r {
	case Floor:
		return "floor"
	case Nearest:
		return "nearest"
	case Truncate:
		return "truncate"
	default:
		return fmt.Sprintf("Rounding(%d)", int(r))
	}
}

func (r Rounding) apply(v float64) float64 {
	switch r {
	case Floor:
		return math.Floor(v)
	case Nearest:
		return math.Round(v)
	default:
		return math.Trunc(v)
	}
}

// Order selects the sequence in which sampled points are returned.
type Order int

const (
	// Forward emits points by ascending sample index.
	Forward Order = iota
	// Reverse emits points by descending sample index.
	Reverse
)

func (o Order) String() string {
	switch o {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Params are the geometric inputs of a single sampling run.
type Params struct {
	Origin Vec
	Radius float64
	Count  int
}

// Convention describes how sample indices are mapped onto the circle.
//
// For each index i in [FirstIndex, FirstIndex+Count) the sampler computes
// a = i*2π (or -i*2π with NegateAngle) and places the point at
//
//	x = origin.x ± r*sin((a + SinePhase) / n)
//	y = origin.y ± r*cos(a / n)
//
// where ± is - when Subtract is set.
type Convention struct {
	FirstIndex  int
	NegateAngle bool
	SinePhase   float64
	Subtract    bool
	Rounding    Rounding
	// RoundOffset rounds the origin and the r*sin, r*cos offsets separately
	// and combines the integers, instead of rounding the final coordinate.
	RoundOffset bool
	Order       Order
}

func (c Convention) validate() error {
	if c.FirstIndex != 0 && c.FirstIndex != 1 {
		return fmt.Errorf("%w: first index must be 0 or 1, got %d", ErrInvalidParams, c.FirstIndex)
	}
	if c.Rounding < Floor || c.Rounding > Truncate {
		return fmt.Errorf("%w: unknown rounding %v", ErrInvalidParams, c.Rounding)
	}
	if c.Order != Forward && c.Order != Reverse {
		return fmt.Errorf("%w: unknown order %v", ErrInvalidParams, c.Order)
	}
	if !isFinite(c.SinePhase) {
		return fmt.Errorf("%w: sine phase must be finite", ErrInvalidParams)
	}
	return nil
}

func (p Params) validate() error {
	if p.Count < 0 {
		return fmt.Errorf("%w: count can't be negative, got %d", ErrInvalidParams, p.Count)
	}
	if !isFinite(p.Radius) {
		return fmt.Errorf("%w: radius must be finite, got %v", ErrInvalidParams, p.Radius)
	}
	if !isFinite(p.Origin.X) || !isFinite(p.Origin.Y) {
		return fmt.Errorf("%w: origin must be finite, got %+v", ErrInvalidParams, p.Origin)
	}
	extent := math.Abs(p.Radius)
	if math.Abs(p.Origin.X)+extent > MaxCoordinate || math.Abs(p.Origin.Y)+extent > MaxCoordinate {
		return fmt.Errorf(
			"%w: origin %+v with radius %v exceeds coordinate limit %d",
			ErrInvalidParams, p.Origin, p.Radius, MaxCoordinate,
		)
	}
	return nil
}

// Sample returns p.Count points on the circle described by p, placed and
// ordered according to c. The same inputs always produce the same points.
func Sample(p Params, c Convention) ([]Point, error) {
	if paramsErr := p.validate(); paramsErr != nil {
		return nil, paramsErr
	}
	if conventionErr := c.validate(); conventionErr != nil {
		return nil, conventionErr
	}

	points := make([]Point, 0, p.Count)
	n := float64(p.Count)
	for i := c.FirstIndex; i < c.FirstIndex+p.Count; i++ {
		a := float64(i) * 2 * math.Pi
		if c.NegateAngle {
			a = -a
		}
		// explicit conversions keep the products out of a fused multiply-add
		dx := float64(p.Radius * math.Sin((a+c.SinePhase)/n))
		dy := float64(p.Radius * math.Cos(a/n))
		points = append(points, Point{
			X: c.place(p.Origin.X, dx),
			Y: c.place(p.Origin.Y, dy),
		})
	}

	if c.Order == Reverse {
		return Reversed(points), nil
	}
	return points, nil
}

func (c Convention) place(origin float64, offset float64) int {
	if c.RoundOffset {
		base := int(c.Rounding.apply(origin))
		delta := int(c.Rounding.apply(offset))
		if c.Subtract {
			return base - delta
		}
		return base + delta
	}
	if c.Subtract {
		return int(c.Rounding.apply(origin - offset))
	}
	return int(c.Rounding.apply(origin + offset))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
