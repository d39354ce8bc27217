package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/segment"
)

// FilledRatio returns the fraction of pixels darker than level, in [0,1].
//
// Charts render ink on a light background, so dark pixels approximate how
// much of the canvas is covered by marks. Pie charts and heatmaps fill large
// regions; sparse scatterplots barely register. A zero-area image yields 0.
func FilledRatio(gray *image.Gray, level uint8) float64 {
	width := gray.Rect.Dx()
	height := gray.Rect.Dy()
	total := width * height
	if total == 0 {
		return 0
	}

	binary := segment.Threshold(gray, level)

	filled := 0
	for y := 0; y < height; y++ {
		row := binary.Pix[y*binary.Stride:]
		for x := 0; x < width; x++ {
			if row[x] == 0 {
				filled++
			}
		}
	}
	return float64(filled) / float64(total)
}
