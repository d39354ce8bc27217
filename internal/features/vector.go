package features

import (
	"github.com/chartscope/chartscope/internal/detection"
)

// Vector is the measurement vector extracted from one chart image.
//
// Counts are plain totals over the whole image; ratios are normalized by
// the pixel count so vectors from different image sizes are comparable.
type Vector struct {
	// Width and Height are the image dimensions in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// EdgeDensity is the fraction of pixels on an intensity edge, in [0,1].
	EdgeDensity float64 `json:"edge_density"`

	// SignificantContours counts contours whose enclosed area clears the
	// noise gate.
	SignificantContours int `json:"significant_contours"`

	// SmallContours counts significant contours inside the small-mark
	// area band. Scatter points land here.
	SmallContours int `json:"small_contours"`

	// Rectangles counts significant contours whose boundary simplifies to
	// exactly four vertices. Bars land here.
	Rectangles int `json:"rectangles"`

	// Circles holds the detected circles, strongest first. Pie charts
	// produce one dominant circle.
	Circles []detection.Circle `json:"circles"`

	// LongLines counts detected segments longer than a fraction of the
	// image width. Axes and trend lines land here.
	LongLines int `json:"long_lines"`

	// VerticalLines counts detected segments within the vertical angle
	// band. Histogram bin edges and bar sides land here.
	VerticalLines int `json:"vertical_lines"`

	// ColorStd is the population standard deviation over every raw RGB
	// channel value in the image.
	ColorStd float64 `json:"color_std"`

	// SaturationMean is the mean HSV saturation on the 0-255 scale.
	SaturationMean float64 `json:"saturation_mean"`

	// FilledRatio is the fraction of pixels darker than the ink threshold,
	// in [0,1].
	FilledRatio float64 `json:"filled_ratio"`
}
