package ringgen

import "strconv"

// Point is a coordinate on the output grid.
type Point struct {
	X int
	Y int
}

// String renders the point as a Go composite literal element: {x, y}
func (p Point) String() string {
	return "{" + strconv.Itoa(p.X) + ", " + strconv.Itoa(p.Y) + "}"
}

// Vec is a real-valued position, used for circle origins.
type Vec struct {
	X float64
	Y float64
}

// Reversed returns a copy of points in descending order.
func Reversed(points []Point) []Point {
	result := make([]Point, len(points))
	for i, p := range points {
		result[len(points)-1-i] = p
	}
	return result
}
