package detection

import "math"

// Rectangle is a contour whose simplified boundary is a quadrilateral.
type Rectangle struct {
	// Vertices are the four corners in boundary order.
	Vertices []Point `json:"vertices"`

	// Area is the enclosed area of the source contour, in square pixels.
	Area float64 `json:"area"`

	// Bounds is the bounding box of the source contour.
	Bounds Bounds `json:"bounds"`
}

// FindRectangles filters contours down to those that read as rectangles.
//
// Each contour's closed boundary is simplified with the Douglas-Peucker
// algorithm at a tolerance of epsilonFrac times the contour's perimeter. A
// contour qualifies when the simplified polygon has exactly four vertices
// and the enclosed area exceeds minArea. Bars, legend boxes, and plot frames
// all pass this test; curved or irregular outlines simplify to more than
// four vertices.
func FindRectangles(contours []Contour, epsilonFrac, minArea float64) []Rectangle {
	rectangles := make([]Rectangle, 0)

	for _, c := range contours {
		if c.Area <= minArea {
			continue
		}

		approx := approxPolygon(c.Points, epsilonFrac*c.Perimeter)
		if len(approx) != 4 {
			continue
		}

		rectangles = append(rectangles, Rectangle{
			Vertices: approx,
			Area:     c.Area,
			Bounds:   c.Bounds,
		})
	}

	return rectangles
}

// approxPolygon simplifies a closed boundary with the Douglas-Peucker
// algorithm.
//
// A ring has no natural endpoints for the recursion, so it is split at the
// point farthest from the first point, each half is simplified separately,
// and the halves are rejoined without the duplicated split points.
func approxPolygon(ring []Point, epsilon float64) []Point {
	if len(ring) < 3 {
		return append([]Point(nil), ring...)
	}

	split := 0
	maxDist := 0.0
	for i, p := range ring {
		if d := pointDistance(ring[0], p); d > maxDist {
			maxDist = d
			split = i
		}
	}
	if split == 0 {
		// Every point coincides with the first.
		return []Point{ring[0]}
	}

	first := simplifyPolyline(ring[:split+1], epsilon)

	back := make([]Point, 0, len(ring)-split+1)
	back = append(back, ring[split:]...)
	back = append(back, ring[0])
	second := simplifyPolyline(back, epsilon)

	result := append([]Point(nil), first...)
	result = append(result, second[1:len(second)-1]...)
	return result
}

// simplifyPolyline is the standard recursive Douglas-Peucker step over an
// open polyline: keep the endpoints, recurse around the most distant interior
// point while any point deviates from the chord by more than epsilon.
func simplifyPolyline(points []Point, epsilon float64) []Point {
	if len(points) < 3 {
		return append([]Point(nil), points...)
	}

	index := 0
	maxDist := 0.0
	for i := 1; i < len(points)-1; i++ {
		if d := perpendicularDistance(points[i], points[0], points[len(points)-1]); d > maxDist {
			maxDist = d
			index = i
		}
	}

	if maxDist <= epsilon {
		return []Point{points[0], points[len(points)-1]}
	}

	left := simplifyPolyline(points[:index+1], epsilon)
	right := simplifyPolyline(points[index:], epsilon)
	return append(left[:len(left)-1], right...)
}

// perpendicularDistance returns the distance from p to the line through a
// and b, or the distance to a when the two coincide.
func perpendicularDistance(p, a, b Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	norm := math.Sqrt(dx*dx + dy*dy)
	if norm == 0 {
		return pointDistance(p, a)
	}
	num := dy*float64(p.X) - dx*float64(p.Y) + float64(b.X)*float64(a.Y) - float64(b.Y)*float64(a.X)
	return math.Abs(num) / norm
}

// pointDistance returns the Euclidean distance between two points.
func pointDistance(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
