package features

import (
	"errors"
	"image"
	"math"

	"github.com/chartscope/chartscope/internal/detection"
	"github.com/chartscope/chartscope/internal/imaging"
)

// ErrEmptyImage is returned by Extract for an image with no pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// Extract runs the measurement pipeline over a decoded image and returns
// its Vector.
//
// The pipeline shares one grayscale conversion and one edge map across all
// measurements that need them, so the contour, rectangle, and line counts
// are always derived from the same edge evidence.
//
// The only error condition is a zero-area image.
func Extract(img image.Image, p Params) (Vector, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return Vector{}, ErrEmptyImage
	}

	gray := imaging.Grayscale(img)
	edges := imaging.Canny(gray, p.CannyLow, p.CannyHigh)

	contours := detection.FindContours(edges)
	significant := make([]detection.Contour, 0, len(contours))
	small := 0
	for _, c := range contours {
		if c.Area <= p.SignificantArea {
			continue
		}
		significant = append(significant, c)
		if c.Area > p.SmallAreaMin && c.Area < p.SmallAreaMax {
			small++
		}
	}

	rectangles := detection.FindRectangles(significant, p.RectEpsilonFrac, p.RectMinArea)

	minDim := width
	if height < minDim {
		minDim = height
	}
	circles := detection.DetectCircles(gray, detection.CircleParams{
		MinDist:       p.CircleMinDist,
		CannyHigh:     p.CircleCannyHigh,
		VoteThreshold: p.CircleVotes,
		MinRadius:     int(p.CircleMinRadiusFrac * float64(minDim)),
		MaxRadius:     int(p.CircleMaxRadiusFrac * float64(minDim)),
	})

	segments := detection.DetectSegments(edges, p.LineVotes, p.LineMinLength, p.LineMaxGap)
	longLines := 0
	verticalLines := 0
	for _, s := range segments {
		if s.Length() > p.LongLineFrac*float64(width) {
			longLines++
		}
		angle := math.Abs(s.AngleDegrees())
		if angle > p.VerticalAngleMin && angle < p.VerticalAngleMax {
			verticalLines++
		}
	}

	return Vector{
		Width:               width,
		Height:              height,
		EdgeDensity:         edges.Density(),
		SignificantContours: len(significant),
		SmallContours:       small,
		Rectangles:          len(rectangles),
		Circles:             circles,
		LongLines:           longLines,
		VerticalLines:       verticalLines,
		ColorStd:            imaging.ColorStd(img),
		SaturationMean:      imaging.SaturationMean(img),
		FilledRatio:         imaging.FilledRatio(gray, p.FillLevel),
	}, nil
}
