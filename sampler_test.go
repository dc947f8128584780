package ringgen

import (
	"errors"
	"math"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"
)

var clockParams = Params{Origin: Vec{X: 88, Y: 88}, Radius: 500 * 176 / 1080, Count: 60}

func TestSampleReturnsRequestedCount(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	for _, count := range []int{1, 2, 7, 12, 60, 360} {
		p := clockParams
		p.Count = count
		points, err := Sample(p, MirroredNearest)
		c.Assert(err, qt.IsNil)
		c.Assert(points, qt.HasLen, count)
	}
}

func TestSampleZeroCountIsEmpty(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	p := clockParams
	p.Count = 0
	points, err := Sample(p, PhasedFloor)
	c.Assert(err, qt.IsNil)
	c.Assert(points, qt.IsNotNil)
	c.Assert(points, qt.HasLen, 0)
}

func TestSampleFirstPointMatchesDirectEvaluation(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	ascending := Convention{FirstIndex: 1, Rounding: Nearest, Order: Forward}
	points, err := Sample(clockParams, ascending)
	c.Assert(err, qt.IsNil)

	expected := Point{
		X: int(math.Round(88 + 81*math.Sin(2*math.Pi/60))),
		Y: int(math.Round(88 + 81*math.Cos(2*math.Pi/60))),
	}
	c.Assert(points[0], qt.Equals, expected)
	c.Assert(points[0], qt.Equals, Point{X: 96, Y: 169})
}

func TestSampleIsDeterministic(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	for _, conv := range []Convention{PhasedFloor, MirroredNearest, MirroredTruncated} {
		first, firstErr := Sample(clockParams, conv)
		c.Assert(firstErr, qt.IsNil)
		second, secondErr := Sample(clockParams, conv)
		c.Assert(secondErr, qt.IsNil)
		c.Assert(first, qt.DeepEquals, second)
	}
}

func TestSampleReverseOrderReversesSequence(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	forward := PhasedFloor
	forward.Order = Forward
	reverse := PhasedFloor
	reverse.Order = Reverse

	forwardPoints, forwardErr := Sample(clockParams, forward)
	c.Assert(forwardErr, qt.IsNil)
	reversePoints, reverseErr := Sample(clockParams, reverse)
	c.Assert(reverseErr, qt.IsNil)

	c.Assert(reversePoints, qt.HasLen, len(forwardPoints))
	for i := range forwardPoints {
		c.Assert(reversePoints[len(reversePoints)-1-i], qt.Equals, forwardPoints[i])
	}
	if diff := cmp.Diff(forwardPoints, Reversed(reversePoints)); diff != "" {
		t.Errorf("reversed sequence mismatch (-forward +reversed):\n%s", diff)
	}
}

func TestRoundingBoundary(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	cases := []struct {
		rounding Rounding
		value    float64
		expected float64
	}{
		{Floor, 2.5, 2},
		{Nearest, 2.5, 3},
		{Truncate, 2.5, 2},
		{Floor, -2.5, -3},
		{Nearest, -2.5, -3},
		{Truncate, -2.5, -2},
		{Floor, 7, 7},
		{Nearest, 7.49, 7},
	}
	for _, tc := range cases {
		c.Assert(tc.rounding.apply(tc.value), qt.Equals, tc.expected, qt.Commentf("%v(%v)", tc.rounding, tc.value))
	}
}

func TestSampleHalfCoordinateFollowsRounding(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	// i = 0 puts y exactly at 10.5
	p := Params{Origin: Vec{X: 10, Y: 10}, Radius: 0.5, Count: 4}

	floored, floorErr := Sample(p, Convention{Rounding: Floor})
	c.Assert(floorErr, qt.IsNil)
	c.Assert(floored[0], qt.Equals, Point{X: 10, Y: 10})

	nearest, nearestErr := Sample(p, Convention{Rounding: Nearest})
	c.Assert(nearestErr, qt.IsNil)
	c.Assert(nearest[0], qt.Equals, Point{X: 10, Y: 11})
}

func TestSampleRoundOffsetTruncatesOffsetOnly(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	// offset of y is exactly 0.5: truncating it keeps the integer center
	p := Params{Origin: Vec{X: 10, Y: 10}, Radius: 0.5, Count: 4}
	conv := Convention{Rounding: Truncate, RoundOffset: true, Subtract: true}
	points, err := Sample(p, conv)
	c.Assert(err, qt.IsNil)
	c.Assert(points[0], qt.Equals, Point{X: 10, Y: 10})

	conv.RoundOffset = false
	points, err = Sample(p, conv)
	c.Assert(err, qt.IsNil)
	c.Assert(points[0], qt.Equals, Point{X: 10, Y: 9})
}

func TestSampleNegativeRadiusMirrors(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	mirrored := clockParams
	mirrored.Radius = -clockParams.Radius
	flipped := MirroredNearest
	flipped.Subtract = !flipped.Subtract

	expected, expectedErr := Sample(clockParams, flipped)
	c.Assert(expectedErr, qt.IsNil)
	actual, actualErr := Sample(mirrored, MirroredNearest)
	c.Assert(actualErr, qt.IsNil)
	c.Assert(actual, qt.DeepEquals, expected)
}

func TestSamplePointsStayNearCircle(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	for _, name := range PresetNames() {
		preset, lookupErr := LookupPreset(name)
		c.Assert(lookupErr, qt.IsNil)
		params, paramsErr := preset.Geometry.Params()
		c.Assert(paramsErr, qt.IsNil)
		points, sampleErr := preset.Sample()
		c.Assert(sampleErr, qt.IsNil)
		c.Assert(points, qt.HasLen, params.Count)

		low := int(params.Origin.X - math.Abs(params.Radius) - 1)
		high := int(params.Origin.X + math.Abs(params.Radius) + 1)
		for i, point := range points {
			inBounds := point.X >= low && point.X <= high && point.Y >= low && point.Y <= high
			c.Assert(inBounds, qt.IsTrue, qt.Commentf("preset %v point %d %v outside [%d, %d]", name, i, point, low, high))
		}
	}
}

func TestSampleRejectsInvalidInput(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	withCount := clockParams
	withCount.Count = -1
	withNaN := clockParams
	withNaN.Radius = math.NaN()
	withInf := clockParams
	withInf.Origin.Y = math.Inf(1)
	withHugeRadius := Params{Radius: 1e19, Count: 4}
	withFarOrigin := clockParams
	withFarOrigin.Origin.X = MaxCoordinate

	cases := []struct {
		name   string
		params Params
		conv   Convention
	}{
		{"negative count", withCount, MirroredNearest},
		{"nan radius", withNaN, MirroredNearest},
		{"infinite origin", withInf, MirroredNearest},
		{"huge radius", withHugeRadius, MirroredNearest},
		{"far origin", withFarOrigin, MirroredTruncated},
		{"first index", clockParams, Convention{FirstIndex: 2}},
		{"rounding", clockParams, Convention{Rounding: Rounding(7)}},
		{"order", clockParams, Convention{Order: Order(3)}},
		{"phase", clockParams, Convention{SinePhase: math.Inf(-1)}},
	}
	for _, tc := range cases {
		points, err := Sample(tc.params, tc.conv)
		c.Assert(points, qt.IsNil, qt.Commentf(tc.name))
		c.Assert(errors.Is(err, ErrInvalidParams), qt.IsTrue, qt.Commentf("%v: %v", tc.name, err))
	}
}

func TestPointString(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	c.Assert(Point{X: 10, Y: 20}.String(), qt.Equals, "{10, 20}")
	c.Assert(Point{X: -3, Y: 0}.String(), qt.Equals, "{-3, 0}")
}
