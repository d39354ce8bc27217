package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// Grayscale converts an image to an 8-bit single-channel image using
// ITU-R BT.601 luminance weights (0.299*R + 0.587*G + 0.114*B).
//
// The conversion is delegated to disintegration/imaging, which applies the
// same weights; the flat NRGBA result is repacked into an *image.Gray so
// downstream consumers can index the luminance plane directly.
func Grayscale(src image.Image) *image.Gray {
	bounds := src.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	flat := imaging.Grayscale(src)
	// In a grayscaled NRGBA all three channels carry the luminance value.
	for y := 0; y < gray.Rect.Dy(); y++ {
		srcRow := flat.Pix[y*flat.Stride:]
		dstRow := gray.Pix[y*gray.Stride:]
		for x := 0; x < gray.Rect.Dx(); x++ {
			dstRow[x] = srcRow[x*4]
		}
	}
	return gray
}

// grayPlane converts an 8-bit grayscale image to a [0,1] float plane
// indexed as plane[y][x]. Convolution and gradient code operates on this
// representation.
func grayPlane(gray *image.Gray) [][]float64 {
	width := gray.Rect.Dx()
	height := gray.Rect.Dy()

	plane := make([][]float64, height)
	for y := 0; y < height; y++ {
		plane[y] = make([]float64, width)
		row := gray.Pix[y*gray.Stride:]
		for x := 0; x < width; x++ {
			plane[y][x] = float64(row[x]) / 255.0
		}
	}
	return plane
}

// clamp constrains an integer value to the range [min, max].
// Used for boundary handling in convolution operations.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
