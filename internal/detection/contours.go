package detection

import (
	"math"
	"sort"

	"github.com/chartscope/chartscope/internal/imaging"
)

// minContourSize is the smallest connected component, in pixels, kept as a
// contour. Anything smaller is sensor-level noise for chart renderings.
const minContourSize = 10

// Point represents a 2D coordinate in pixel space.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// Bounds represents a rectangular bounding box in pixel coordinates.
//
// (X1, Y1) is the top-left corner and (X2, Y2) the bottom-right, both
// inclusive.
type Bounds struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Contour is a connected group of edge pixels described by its traced outer
// boundary.
//
// Area is the area enclosed by the boundary polygon, not the number of edge
// pixels: a thin closed outline around a large region scores the full
// enclosed area, which is what separates a bar or pie outline from a speck
// of noise.
type Contour struct {
	// Points is the closed outer boundary in tracing order. The last
	// point connects back to the first.
	Points []Point `json:"points"`

	// Area is the area enclosed by Points, in square pixels.
	Area float64 `json:"area"`

	// Perimeter is the length of the closed boundary in pixels.
	Perimeter float64 `json:"perimeter"`

	// Bounds is the bounding box of the component.
	Bounds Bounds `json:"bounds"`
}

// FindContours finds connected components in an edge map and traces each
// component's outer boundary.
//
// Connectivity is 8-connected (includes diagonals). Components smaller than
// minContourSize pixels are discarded as noise. The result is sorted by
// enclosed area, largest first.
func FindContours(edges *imaging.EdgeMap) []Contour {
	width := edges.Width
	height := edges.Height

	visited := make([][]bool, height)
	for y := 0; y < height; y++ {
		visited[y] = make([]bool, width)
	}

	contours := make([]Contour, 0)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !edges.Bits[y][x] || visited[y][x] {
				continue
			}

			component := make([]Point, 0)
			floodFill(edges, visited, x, y, &component)
			if len(component) < minContourSize {
				continue
			}

			boundary := traceBoundary(edges, startPoint(component), len(component))

			contours = append(contours, Contour{
				Points:    boundary,
				Area:      polygonArea(boundary),
				Perimeter: polygonPerimeter(boundary),
				Bounds:    componentBounds(component),
			})
		}
	}

	sort.Slice(contours, func(i, j int) bool {
		return contours[i].Area > contours[j].Area
	})

	return contours
}

// floodFill collects the 8-connected component containing (startX, startY).
//
// Uses a stack-based approach (not recursive) to avoid stack overflow on
// large components. Marks visited pixels and appends them to component.
func floodFill(edges *imaging.EdgeMap, visited [][]bool, startX, startY int, component *[]Point) {
	stack := []Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= edges.Width || p.Y < 0 || p.Y >= edges.Height {
			continue
		}
		if visited[p.Y][p.X] || !edges.Bits[p.Y][p.X] {
			continue
		}

		visited[p.Y][p.X] = true
		*component = append(*component, p)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
}

// startPoint returns the topmost, then leftmost, pixel of a component. The
// boundary trace starts there so the cell to its left is guaranteed to be
// outside the component.
func startPoint(component []Point) Point {
	start := component[0]
	for _, p := range component[1:] {
		if p.Y < start.Y || (p.Y == start.Y && p.X < start.X) {
			start = p
		}
	}
	return start
}

// mooreOffsets lists the 8-neighborhood in clockwise order starting east,
// with Y growing downward.
var mooreOffsets = [8]Point{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// traceBoundary walks the outer boundary of the component containing start
// using Moore neighbor tracing.
//
// From each boundary pixel the neighborhood is scanned clockwise beginning
// just after the backtrack cell; the first edge pixel found is the next
// boundary pixel. Tracing stops once the first step of the walk repeats, at
// which point the ring is closed. An open stroke is traced out and back, so
// its boundary degenerates to a flat polygon with zero enclosed area, the
// same as a hand-traced outline would.
func traceBoundary(edges *imaging.EdgeMap, start Point, componentSize int) []Point {
	boundary := []Point{start}

	current := start
	backtrack := Point{X: start.X - 1, Y: start.Y}

	var second Point
	maxSteps := 4*componentSize + 8

	for step := 0; step < maxSteps; step++ {
		scanFrom := neighborIndex(current, backtrack)

		var next Point
		found := false
		for k := 1; k <= 8; k++ {
			idx := (scanFrom + k) % 8
			n := Point{X: current.X + mooreOffsets[idx].X, Y: current.Y + mooreOffsets[idx].Y}
			if n.X >= 0 && n.X < edges.Width && n.Y >= 0 && n.Y < edges.Height && edges.Bits[n.Y][n.X] {
				prev := mooreOffsets[(idx+7)%8]
				backtrack = Point{X: current.X + prev.X, Y: current.Y + prev.Y}
				next = n
				found = true
				break
			}
		}

		if !found {
			// Isolated pixel, nothing to walk.
			break
		}

		if step == 0 {
			second = next
		} else if current == start && next == second {
			break
		}

		boundary = append(boundary, next)
		current = next
	}

	// The closing step back to the start is implicit in a ring.
	if len(boundary) > 1 && boundary[len(boundary)-1] == start {
		boundary = boundary[:len(boundary)-1]
	}

	return boundary
}

// neighborIndex returns the position of neighbor in current's clockwise
// neighborhood, or 0 if it is not adjacent.
func neighborIndex(current, neighbor Point) int {
	for i, off := range mooreOffsets {
		if current.X+off.X == neighbor.X && current.Y+off.Y == neighbor.Y {
			return i
		}
	}
	return 0
}

// polygonArea computes the area enclosed by a closed boundary using the
// shoelace formula. Orientation does not matter; the result is always
// non-negative.
func polygonArea(points []Point) float64 {
	if len(points) < 3 {
		return 0
	}

	sum := 0.0
	for i := 0; i < len(points); i++ {
		j := (i + 1) % len(points)
		sum += float64(points[i].X)*float64(points[j].Y) - float64(points[j].X)*float64(points[i].Y)
	}
	return math.Abs(sum) / 2
}

// polygonPerimeter computes the length of a closed boundary, including the
// closing step from the last point back to the first.
func polygonPerimeter(points []Point) float64 {
	if len(points) < 2 {
		return 0
	}

	sum := 0.0
	for i := 0; i < len(points); i++ {
		j := (i + 1) % len(points)
		dx := float64(points[j].X - points[i].X)
		dy := float64(points[j].Y - points[i].Y)
		sum += math.Sqrt(dx*dx + dy*dy)
	}
	return sum
}

// componentBounds returns the bounding box of a set of pixels.
func componentBounds(component []Point) Bounds {
	b := Bounds{X1: component[0].X, Y1: component[0].Y, X2: component[0].X, Y2: component[0].Y}
	for _, p := range component[1:] {
		if p.X < b.X1 {
			b.X1 = p.X
		}
		if p.X > b.X2 {
			b.X2 = p.X
		}
		if p.Y < b.Y1 {
			b.Y1 = p.Y
		}
		if p.Y > b.Y2 {
			b.Y2 = p.Y
		}
	}
	return b
}
