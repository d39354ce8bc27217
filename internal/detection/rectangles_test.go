package detection

import (
	"testing"
)

func TestFindRectangles(t *testing.T) {
	edges := newEdgeMap(100, 100)
	drawRectOutline(edges, 20, 20, 80, 80)

	contours := FindContours(edges)
	rectangles := FindRectangles(contours, 0.02, 200)

	if len(rectangles) != 1 {
		t.Fatalf("rectangles: got %d, want 1", len(rectangles))
	}

	r := rectangles[0]
	if len(r.Vertices) != 4 {
		t.Fatalf("vertices: got %d, want 4", len(r.Vertices))
	}
	if absVal(r.Area-3600) > 0.001 {
		t.Errorf("Area: got %.2f, want 3600", r.Area)
	}

	// Each simplified vertex should sit on a corner of the outline.
	corners := []Point{{20, 20}, {80, 20}, {80, 80}, {20, 80}}
	for _, v := range r.Vertices {
		onCorner := false
		for _, c := range corners {
			if pointDistance(v, c) <= 2 {
				onCorner = true
				break
			}
		}
		if !onCorner {
			t.Errorf("vertex %+v is not near any corner", v)
		}
	}
}

func TestFindRectangles_RejectsCircle(t *testing.T) {
	edges := newEdgeMap(100, 100)
	drawCircleOutline(edges, 50, 50, 30)

	contours := FindContours(edges)
	rectangles := FindRectangles(contours, 0.02, 200)

	if len(rectangles) != 0 {
		t.Errorf("rectangles: got %d, want 0 for a circle outline", len(rectangles))
	}
}

func TestFindRectangles_MinArea(t *testing.T) {
	edges := newEdgeMap(100, 100)
	drawRectOutline(edges, 40, 40, 50, 50) // encloses 100 square pixels

	contours := FindContours(edges)
	rectangles := FindRectangles(contours, 0.02, 200)

	if len(rectangles) != 0 {
		t.Errorf("rectangles: got %d, want 0 below the area floor", len(rectangles))
	}
}

func TestApproxPolygon_Square(t *testing.T) {
	// Hand-built square ring, one point per boundary pixel.
	ring := make([]Point, 0, 40)
	for x := 0; x < 10; x++ {
		ring = append(ring, Point{X: x, Y: 0})
	}
	for y := 0; y < 10; y++ {
		ring = append(ring, Point{X: 10, Y: y})
	}
	for x := 10; x > 0; x-- {
		ring = append(ring, Point{X: x, Y: 10})
	}
	for y := 10; y > 0; y-- {
		ring = append(ring, Point{X: 0, Y: y})
	}

	approx := approxPolygon(ring, 0.02*40)

	if len(approx) != 4 {
		t.Fatalf("approx vertices: got %d (%v), want 4", len(approx), approx)
	}
}

func TestApproxPolygon_Degenerate(t *testing.T) {
	// A flat out-and-back ring collapses to its two extremes.
	ring := []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {2, 0}, {1, 0}}

	approx := approxPolygon(ring, 0.5)

	if len(approx) == 4 {
		t.Errorf("approx vertices: got 4 for a degenerate ring (%v)", approx)
	}
}

func TestSimplifyPolyline_Collinear(t *testing.T) {
	line := []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}

	got := simplifyPolyline(line, 0.5)

	if len(got) != 2 || got[0] != (Point{0, 0}) || got[1] != (Point{4, 0}) {
		t.Errorf("simplify collinear: got %v, want endpoints only", got)
	}
}

func TestSimplifyPolyline_KeepsCorner(t *testing.T) {
	bent := []Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}, {4, 3}, {4, 2}, {4, 1}, {4, 0}}

	got := simplifyPolyline(bent, 0.5)

	if len(got) != 3 {
		t.Fatalf("simplify corner: got %v, want 3 points", got)
	}
	if got[1] != (Point{4, 4}) {
		t.Errorf("kept corner: got %+v, want {4 4}", got[1])
	}
}

func TestPerpendicularDistance(t *testing.T) {
	// Point (0,5) against the horizontal line through (0,0)-(10,0).
	if d := perpendicularDistance(Point{0, 5}, Point{0, 0}, Point{10, 0}); absVal(d-5) > 0.001 {
		t.Errorf("distance: got %.3f, want 5", d)
	}

	// Coincident chord endpoints fall back to point distance.
	if d := perpendicularDistance(Point{3, 4}, Point{0, 0}, Point{0, 0}); absVal(d-5) > 0.001 {
		t.Errorf("degenerate chord distance: got %.3f, want 5", d)
	}
}
