package imaging

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// ColorStd returns the population standard deviation of all RGB channel
// values in the image, on the 0-255 scale.
//
// The three channels are pooled into a single sample, so a saturated
// multi-color chart scores high while a grayscale rendering scores near the
// spread of its gray levels. Returns 0 for a zero-area image.
func ColorStd(src image.Image) float64 {
	nrgba := imaging.Clone(src)
	width := nrgba.Rect.Dx()
	height := nrgba.Rect.Dy()
	n := width * height * 3
	if n == 0 {
		return 0
	}

	var sum, sumSq float64
	for y := 0; y < height; y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < width; x++ {
			for c := 0; c < 3; c++ {
				v := float64(row[x*4+c])
				sum += v
				sumSq += v * v
			}
		}
	}

	mean := sum / float64(n)
	variance := sumSq/float64(n) - mean*mean
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance)
}

// SaturationMean returns the mean HSV saturation across the image, on the
// 0-255 scale.
//
// Saturation separates colorful fills (pie slices, heatmap cells) from
// monochrome line art regardless of how dark the ink is. Returns 0 for a
// zero-area image.
func SaturationMean(src image.Image) float64 {
	nrgba := imaging.Clone(src)
	width := nrgba.Rect.Dx()
	height := nrgba.Rect.Dy()
	total := width * height
	if total == 0 {
		return 0
	}

	var sum float64
	for y := 0; y < height; y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < width; x++ {
			c := colorful.Color{
				R: float64(row[x*4]) / 255.0,
				G: float64(row[x*4+1]) / 255.0,
				B: float64(row[x*4+2]) / 255.0,
			}
			_, s, _ := c.Hsv()
			sum += s * 255.0
		}
	}
	return sum / float64(total)
}
