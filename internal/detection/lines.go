package detection

import (
	"math"
	"math/rand"

	"github.com/chartscope/chartscope/internal/imaging"
)

// samplingSeed fixes the order the segment detector draws edge points in,
// so the same edge map always yields the same segments.
const samplingSeed = 1

// numAngles is the angular resolution of the Hough accumulator: one bin per
// degree over the half circle.
const numAngles = 180

// Segment is a detected line segment.
type Segment struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// Length returns the Euclidean length of the segment in pixels.
func (s Segment) Length() float64 {
	dx := float64(s.End.X - s.Start.X)
	dy := float64(s.End.Y - s.Start.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// AngleDegrees returns the segment's direction in degrees, measured from the
// positive X axis with Y growing downward, in (-180, 180].
func (s Segment) AngleDegrees() float64 {
	dy := float64(s.End.Y - s.Start.Y)
	dx := float64(s.End.X - s.Start.X)
	return math.Atan2(dy, dx) * 180 / math.Pi
}

// DetectSegments finds line segments in an edge map using the progressive
// probabilistic Hough transform.
//
// Parameters:
//   - voteThreshold: accumulator votes a line must reach before it is traced.
//   - minLength: minimum axis displacement, in pixels, between a traced
//     segment's endpoints.
//   - maxGap: largest run of non-edge pixels bridged while tracing along a
//     line.
//
// # Algorithm
//
// Edge points are drawn one at a time in a fixed pseudo-random order. Each
// drawn point votes across all angle bins; when the strongest bin the point
// touched reaches voteThreshold, the image is walked along that bin's
// direction from the point, bridging gaps up to maxGap, to find the
// segment's endpoints. Pixels on an accepted segment are removed from the
// edge pool and their votes withdrawn, so one stroke yields one segment
// rather than a bundle of near-duplicates.
//
// Axis structure dominates chart renderings, and grid lines, tick rows, and
// bar sides all arrive as distinct segments.
func DetectSegments(edges *imaging.EdgeMap, voteThreshold, minLength, maxGap int) []Segment {
	width := edges.Width
	height := edges.Height
	if width == 0 || height == 0 || edges.Count == 0 {
		return []Segment{}
	}

	numRho := 2*(width+height) + 1
	rhoOffset := width + height

	tabSin := make([]float64, numAngles)
	tabCos := make([]float64, numAngles)
	for n := 0; n < numAngles; n++ {
		angle := float64(n) * math.Pi / numAngles
		tabSin[n] = math.Sin(angle)
		tabCos[n] = math.Cos(angle)
	}

	accumulator := make([][]int, numAngles)
	for n := range accumulator {
		accumulator[n] = make([]int, numRho)
	}

	// Working copy of the edge mask; traced pixels are cleared from it.
	mask := make([][]bool, height)
	points := make([]Point, 0, edges.Count)
	for y := 0; y < height; y++ {
		mask[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			if edges.Bits[y][x] {
				mask[y][x] = true
				points = append(points, Point{X: x, Y: y})
			}
		}
	}

	rng := rand.New(rand.NewSource(samplingSeed))
	segments := make([]Segment, 0)

	const shift = 16

	for count := len(points); count > 0; count-- {
		idx := rng.Intn(count)
		seed := points[idx]
		points[idx] = points[count-1]

		// The point may already belong to a traced segment.
		if !mask[seed.Y][seed.X] {
			continue
		}

		// Vote across all angles and remember the strongest bin touched.
		maxVotes := voteThreshold - 1
		maxN := 0
		for n := 0; n < numAngles; n++ {
			r := int(math.Round(float64(seed.X)*tabCos[n]+float64(seed.Y)*tabSin[n])) + rhoOffset
			accumulator[n][r]++
			if accumulator[n][r] > maxVotes {
				maxVotes = accumulator[n][r]
				maxN = n
			}
		}
		if maxVotes < voteThreshold {
			continue
		}

		// Walk along the line direction (perpendicular to the bin's normal)
		// in both directions, bridging gaps, to find the endpoints.
		// Stepping uses fixed-point increments along the minor axis.
		a := -tabSin[maxN]
		b := tabCos[maxN]

		var xFlag bool
		var dx0, dy0, x0, y0 int
		if math.Abs(a) > math.Abs(b) {
			xFlag = true
			dx0 = signOf(a)
			dy0 = int(math.Round(b * (1 << shift) / math.Abs(a)))
			x0 = seed.X
			y0 = (seed.Y << shift) + (1 << (shift - 1))
		} else {
			xFlag = false
			dy0 = signOf(b)
			dx0 = int(math.Round(a * (1 << shift) / math.Abs(b)))
			x0 = (seed.X << shift) + (1 << (shift - 1))
			y0 = seed.Y
		}

		var lineEnd [2]Point
		for k := 0; k < 2; k++ {
			gap := 0
			x, y, dx, dy := x0, y0, dx0, dy0
			if k > 0 {
				dx, dy = -dx, -dy
			}

			for ; ; x, y = x+dx, y+dy {
				var px, py int
				if xFlag {
					px = x
					py = y >> shift
				} else {
					px = x >> shift
					py = y
				}
				if px < 0 || px >= width || py < 0 || py >= height {
					break
				}

				if mask[py][px] {
					gap = 0
					lineEnd[k] = Point{X: px, Y: py}
				} else {
					gap++
					if gap > maxGap {
						break
					}
				}
			}
		}

		goodLine := absInt(lineEnd[1].X-lineEnd[0].X) >= minLength ||
			absInt(lineEnd[1].Y-lineEnd[0].Y) >= minLength

		// Walk again to clear traced pixels and withdraw their votes, so
		// the remaining accumulator only describes untraced evidence.
		for k := 0; k < 2; k++ {
			x, y, dx, dy := x0, y0, dx0, dy0
			if k > 0 {
				dx, dy = -dx, -dy
			}

			for ; ; x, y = x+dx, y+dy {
				var px, py int
				if xFlag {
					px = x
					py = y >> shift
				} else {
					px = x >> shift
					py = y
				}

				if mask[py][px] {
					if goodLine {
						for n := 0; n < numAngles; n++ {
							r := int(math.Round(float64(px)*tabCos[n]+float64(py)*tabSin[n])) + rhoOffset
							accumulator[n][r]--
						}
					}
					mask[py][px] = false
				}

				if px == lineEnd[k].X && py == lineEnd[k].Y {
					break
				}
			}
		}

		if goodLine {
			segments = append(segments, Segment{Start: lineEnd[0], End: lineEnd[1]})
		}
	}

	return segments
}

func signOf(f float64) int {
	if f > 0 {
		return 1
	}
	return -1
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
