package classify

import (
	"image"

	"github.com/chartscope/chartscope/internal/features"
)

// Annotations attached to detection results. The confidence is a fixed
// string, not a calibrated probability.
const (
	MethodDetection = "trained_feature_detection"
	MethodFallback  = "fallback"
	ConfidenceHigh  = "high"
)

// Classify assigns one of the thirteen labels to a measurement vector.
//
// It is a pure function over the vector: deterministic, and total in the
// sense that every vector receives a label.
func Classify(v features.Vector) ChartType {
	for _, r := range rules {
		if r.when(v) {
			return r.pick(v)
		}
	}
	return fallback(v)
}

// Result is the outcome of one detection.
type Result struct {
	// ChartType is the assigned label.
	ChartType ChartType

	// Method and Confidence are the constant annotations the API envelope
	// reports alongside the label.
	Method     string
	Confidence string

	// Vector holds the measurements the label was derived from, for debug
	// logging. Zero when extraction failed.
	Vector features.Vector

	// Err records an extraction failure that was absorbed into the
	// fallback label. Nil on a normal detection.
	Err error
}

// Detector runs the full pipeline, measurement then classification, with a
// safe default for unmeasurable input.
//
// A Detector is immutable after construction and safe for concurrent use.
type Detector struct {
	params features.Params
}

// NewDetector returns a detector using the given pipeline parameters.
func NewDetector(p features.Params) *Detector {
	return &Detector{params: p}
}

// Params returns the pipeline parameters the detector was built with.
func (d *Detector) Params() features.Params {
	return d.params
}

// Detect classifies a decoded image.
//
// When the image cannot be measured (zero-area input), the result carries
// the fixed Scatterplot label and records the cause in Err; the error is
// never propagated, so a caller always gets a label.
func (d *Detector) Detect(img image.Image) Result {
	v, err := features.Extract(img, d.params)
	if err != nil {
		return Result{
			ChartType:  Scatterplot,
			Method:     MethodDetection,
			Confidence: ConfidenceHigh,
			Err:        err,
		}
	}

	return Result{
		ChartType:  Classify(v),
		Method:     MethodDetection,
		Confidence: ConfidenceHigh,
		Vector:     v,
	}
}
