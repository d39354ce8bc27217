package imaging

import (
	"image"
	"math"
)

// EdgeMap is a binary edge image produced by Canny.
//
// Bits[y][x] is true where the pixel lies on an intensity discontinuity.
// Count caches the number of set bits so edge density is O(1).
type EdgeMap struct {
	// Width of the map in pixels (same as input).
	Width int

	// Height of the map in pixels (same as input).
	Height int

	// Bits holds the edge mask, indexed [y][x].
	Bits [][]bool

	// Count is the number of edge pixels in Bits.
	Count int
}

// Density returns the fraction of pixels marked as edges, in [0,1].
// A zero-area map has density 0.
func (m *EdgeMap) Density() float64 {
	total := m.Width * m.Height
	if total == 0 {
		return 0
	}
	return float64(m.Count) / float64(total)
}

// Canny computes a binary edge map from a grayscale image.
//
// Parameters:
//   - gray: 8-bit grayscale source image. No smoothing is applied here;
//     gradients are taken from the pixels as given.
//   - thresholdLow: low hysteresis threshold on the 0-255 gradient scale.
//     Weak edges below this are discarded.
//   - thresholdHigh: high hysteresis threshold on the 0-255 gradient scale.
//     Edges above this are always kept.
//
// # Algorithm
//
//  1. Sobel gradients: magnitude = sqrt(Gx² + Gy²), direction = atan2(Gy, Gx)
//  2. Non-maximum suppression: thin ridges to 1-pixel width by keeping only
//     local maxima along the gradient direction
//  3. Hysteresis: pixels above thresholdHigh are strong edges; pixels between
//     the thresholds are kept only when adjacent to a strong edge
//
// Chart renderings are high-contrast line art, so the low/high pair controls
// how much anti-aliasing halo around strokes is counted as edge. Lower
// thresholds inflate edge density; higher thresholds may drop faint gridlines.
func Canny(gray *image.Gray, thresholdLow, thresholdHigh int) *EdgeMap {
	width := gray.Rect.Dx()
	height := gray.Rect.Dy()

	edges := &EdgeMap{Width: width, Height: height, Bits: make([][]bool, height)}
	for y := 0; y < height; y++ {
		edges.Bits[y] = make([]bool, width)
	}
	if width == 0 || height == 0 {
		return edges
	}

	plane := grayPlane(gray)

	// Sobel gradients.
	magnitude := make([][]float64, height)
	direction := make([][]float64, height)

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

	for y := 0; y < height; y++ {
		magnitude[y] = make([]float64, width)
		direction[y] = make([]float64, width)

		for x := 0; x < width; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					py := clamp(y+ky, 0, height-1)
					px := clamp(x+kx, 0, width-1)
					gx += plane[py][px] * sobelX[ky+1][kx+1]
					gy += plane[py][px] * sobelY[ky+1][kx+1]
				}
			}
			magnitude[y][x] = math.Sqrt(gx*gx + gy*gy)
			direction[y][x] = math.Atan2(gy, gx)
		}
	}

	// Non-maximum suppression.
	suppressed := make([][]float64, height)
	for y := 0; y < height; y++ {
		suppressed[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			if y == 0 || y == height-1 || x == 0 || x == width-1 {
				continue
			}

			angle := direction[y][x]
			mag := magnitude[y][x]

			// Compare against the two neighbors along the gradient direction.
			var n1, n2 float64
			if (angle >= -math.Pi/8 && angle < math.Pi/8) || (angle >= 7*math.Pi/8 || angle < -7*math.Pi/8) {
				n1 = magnitude[y][x-1]
				n2 = magnitude[y][x+1]
			} else if (angle >= math.Pi/8 && angle < 3*math.Pi/8) || (angle >= -7*math.Pi/8 && angle < -5*math.Pi/8) {
				n1 = magnitude[y-1][x+1]
				n2 = magnitude[y+1][x-1]
			} else if (angle >= 3*math.Pi/8 && angle < 5*math.Pi/8) || (angle >= -5*math.Pi/8 && angle < -3*math.Pi/8) {
				n1 = magnitude[y-1][x]
				n2 = magnitude[y+1][x]
			} else {
				n1 = magnitude[y-1][x-1]
				n2 = magnitude[y+1][x+1]
			}

			// Strict comparison on the first neighbor breaks plateau ties,
			// so a 2-pixel-wide gradient ridge thins to a single pixel.
			if mag > n1 && mag >= n2 {
				suppressed[y][x] = mag
			}
		}
	}

	// Double threshold and edge tracking by hysteresis.
	lowThresh := float64(thresholdLow) / 255.0
	highThresh := float64(thresholdHigh) / 255.0

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			val := suppressed[y][x]
			switch {
			case val >= highThresh:
				edges.Bits[y][x] = true
				edges.Count++
			case val >= lowThresh:
				// Keep a weak edge only when connected to a strong one.
				hasStrongNeighbor := false
				for ky := -1; ky <= 1 && !hasStrongNeighbor; ky++ {
					for kx := -1; kx <= 1 && !hasStrongNeighbor; kx++ {
						py := clamp(y+ky, 0, height-1)
						px := clamp(x+kx, 0, width-1)
						if suppressed[py][px] >= highThresh {
							hasStrongNeighbor = true
						}
					}
				}
				if hasStrongNeighbor {
					edges.Bits[y][x] = true
					edges.Count++
				}
			}
		}
	}

	return edges
}
