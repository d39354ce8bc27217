package detection

import (
	"image"
	"math"
	"sort"

	"github.com/chartscope/chartscope/internal/imaging"
)

// CircleParams tunes DetectCircles.
type CircleParams struct {
	// MinDist is the minimum distance in pixels between accepted centers.
	// Candidates closer than this to a stronger accepted center are merged
	// into it.
	MinDist float64 `json:"min_dist"`

	// CannyHigh is the high threshold of the gating edge detection on the
	// 0-255 gradient scale. The low threshold is half of it.
	CannyHigh int `json:"canny_high"`

	// VoteThreshold is the minimum number of gradient votes a center must
	// collect to be considered.
	VoteThreshold int `json:"vote_threshold"`

	// MinRadius and MaxRadius bound the searched radius band in pixels.
	MinRadius int `json:"min_radius"`
	MaxRadius int `json:"max_radius"`
}

// Circle represents a detected circular shape.
type Circle struct {
	// Center is the detected center point.
	Center Point `json:"center"`

	// Radius is the detected radius in pixels.
	Radius int `json:"radius"`

	// Votes is the number of gradient rays that crossed the center bin.
	Votes int `json:"votes"`
}

// DetectCircles finds circular shapes using a gradient Hough transform.
//
// The edge gate and the gradient field are both derived from the input as
// given; no smoothing is applied.
//
// # Algorithm
//
//  1. Edge gating: Canny at (CannyHigh/2, CannyHigh) selects the pixels
//     allowed to vote
//  2. Gradient voting: each edge pixel casts votes along its Sobel gradient
//     direction, both ways, at every integer distance in the radius band.
//     A circle's rim pixels all point through its center, so the center bin
//     collects roughly one vote per rim pixel
//  3. Peak detection: accumulator cells at or above VoteThreshold that are
//     local maxima become candidate centers
//  4. Separation: candidates are taken strongest first and any candidate
//     within MinDist of an accepted center is dropped
//  5. Radius estimation: for each center, the radius is the distance bin in
//     the band with the most supporting edge pixels
//
// Results are sorted by votes, strongest first.
func DetectCircles(gray *image.Gray, p CircleParams) []Circle {
	width := gray.Rect.Dx()
	height := gray.Rect.Dy()

	minRadius := p.MinRadius
	if minRadius < 1 {
		minRadius = 1
	}
	if width == 0 || height == 0 || p.MaxRadius < minRadius {
		return []Circle{}
	}

	edges := imaging.Canny(gray, p.CannyHigh/2, p.CannyHigh)
	gradX, gradY := sobelGradients(gray)

	// Vote along the gradient direction from every edge pixel.
	accumulator := make([][]int, height)
	for y := 0; y < height; y++ {
		accumulator[y] = make([]int, width)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !edges.Bits[y][x] {
				continue
			}

			gx := gradX[y][x]
			gy := gradY[y][x]
			mag := math.Sqrt(gx*gx + gy*gy)
			if mag == 0 {
				continue
			}
			ux := gx / mag
			uy := gy / mag

			for r := minRadius; r <= p.MaxRadius; r++ {
				for _, sign := range [2]float64{1, -1} {
					cx := x + int(math.Round(sign*ux*float64(r)))
					cy := y + int(math.Round(sign*uy*float64(r)))
					if cx >= 0 && cx < width && cy >= 0 && cy < height {
						accumulator[cy][cx]++
					}
				}
			}
		}
	}

	// Collect candidate centers: strong bins that are local maxima.
	candidates := make([]Circle, 0)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if accumulator[y][x] < p.VoteThreshold {
				continue
			}

			isMax := true
			for dy := -5; dy <= 5 && isMax; dy++ {
				for dx := -5; dx <= 5 && isMax; dx++ {
					if dy == 0 && dx == 0 {
						continue
					}
					ny, nx := y+dy, x+dx
					if ny >= 0 && ny < height && nx >= 0 && nx < width {
						if accumulator[ny][nx] > accumulator[y][x] {
							isMax = false
						}
					}
				}
			}
			if isMax {
				candidates = append(candidates, Circle{
					Center: Point{X: x, Y: y},
					Votes:  accumulator[y][x],
				})
			}
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Votes != b.Votes {
			return a.Votes > b.Votes
		}
		if a.Center.Y != b.Center.Y {
			return a.Center.Y < b.Center.Y
		}
		return a.Center.X < b.Center.X
	})

	// Enforce center separation, strongest first, then size each survivor.
	circles := make([]Circle, 0)
	for _, c := range candidates {
		tooClose := false
		for _, accepted := range circles {
			dx := float64(c.Center.X - accepted.Center.X)
			dy := float64(c.Center.Y - accepted.Center.Y)
			if math.Sqrt(dx*dx+dy*dy) < p.MinDist {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}

		c.Radius = estimateRadius(edges, c.Center, minRadius, p.MaxRadius)
		circles = append(circles, c)
	}

	return circles
}

// sobelGradients computes 3x3 Sobel derivatives of a grayscale image.
// Samples outside the image are clamped to the nearest pixel.
func sobelGradients(gray *image.Gray) (gradX, gradY [][]float64) {
	width := gray.Rect.Dx()
	height := gray.Rect.Dy()

	sobelX := [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY := [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}

	gradX = make([][]float64, height)
	gradY = make([][]float64, height)
	for y := 0; y < height; y++ {
		gradX[y] = make([]float64, width)
		gradY[y] = make([]float64, width)

		for x := 0; x < width; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					py := clampInt(y+ky, 0, height-1)
					px := clampInt(x+kx, 0, width-1)
					v := float64(gray.Pix[py*gray.Stride+px])
					gx += v * sobelX[ky+1][kx+1]
					gy += v * sobelY[ky+1][kx+1]
				}
			}
			gradX[y][x] = gx
			gradY[y][x] = gy
		}
	}
	return gradX, gradY
}

// estimateRadius picks the distance bin with the most supporting edge pixels
// around a center.
func estimateRadius(edges *imaging.EdgeMap, center Point, minRadius, maxRadius int) int {
	histogram := make([]int, maxRadius+1)

	for y := 0; y < edges.Height; y++ {
		for x := 0; x < edges.Width; x++ {
			if !edges.Bits[y][x] {
				continue
			}
			dx := float64(x - center.X)
			dy := float64(y - center.Y)
			d := int(math.Round(math.Sqrt(dx*dx + dy*dy)))
			if d >= minRadius && d <= maxRadius {
				histogram[d]++
			}
		}
	}

	radius := minRadius
	best := 0
	for r := minRadius; r <= maxRadius; r++ {
		if histogram[r] > best {
			best = histogram[r]
			radius = r
		}
	}
	return radius
}

// clampInt restricts val to the range [min, max].
func clampInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
