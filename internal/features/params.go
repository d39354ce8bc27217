package features

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Params holds every tunable of the measurement pipeline.
//
// The zero value is not useful; start from DefaultParams and override
// individual fields, or load overrides from a YAML file with LoadParams.
type Params struct {
	// Edge detection hysteresis thresholds, on the 0-255 gradient scale.
	CannyLow  int `yaml:"canny_low"`
	CannyHigh int `yaml:"canny_high"`

	// Contour area gates, in squared pixels of enclosed area. Contours at
	// or below SignificantArea are treated as noise and dropped. Among the
	// survivors, contours strictly inside (SmallAreaMin, SmallAreaMax)
	// count as small marks, the kind scatter points leave.
	SignificantArea float64 `yaml:"significant_area"`
	SmallAreaMin    float64 `yaml:"small_area_min"`
	SmallAreaMax    float64 `yaml:"small_area_max"`

	// Rectangle approximation. A contour qualifies when its area exceeds
	// RectMinArea and its boundary simplifies to exactly four vertices at
	// a tolerance of RectEpsilonFrac times the perimeter.
	RectEpsilonFrac float64 `yaml:"rect_epsilon_frac"`
	RectMinArea     float64 `yaml:"rect_min_area"`

	// Circle search. The radius band is expressed as fractions of the
	// smaller image dimension; CircleCannyHigh gates which pixels vote and
	// CircleVotes is the accumulator acceptance threshold.
	CircleMinDist       float64 `yaml:"circle_min_dist"`
	CircleCannyHigh     int     `yaml:"circle_canny_high"`
	CircleVotes         int     `yaml:"circle_votes"`
	CircleMinRadiusFrac float64 `yaml:"circle_min_radius_frac"`
	CircleMaxRadiusFrac float64 `yaml:"circle_max_radius_frac"`

	// Line segment search.
	LineVotes     int `yaml:"line_votes"`
	LineMinLength int `yaml:"line_min_length"`
	LineMaxGap    int `yaml:"line_max_gap"`

	// Derived segment measures. A segment is long when its length exceeds
	// LongLineFrac times the image width, and vertical when the absolute
	// angle in degrees falls strictly inside the vertical band.
	LongLineFrac     float64 `yaml:"long_line_frac"`
	VerticalAngleMin float64 `yaml:"vertical_angle_min"`
	VerticalAngleMax float64 `yaml:"vertical_angle_max"`

	// FillLevel is the ink coverage threshold on the 0-255 intensity
	// scale. Pixels strictly darker than this count as filled.
	FillLevel uint8 `yaml:"fill_level"`
}

// DefaultParams returns the pipeline parameters calibrated against rendered
// chart images. The classifier's decision thresholds assume these values.
func DefaultParams() Params {
	return Params{
		CannyLow:  30,
		CannyHigh: 100,

		SignificantArea: 50,
		SmallAreaMin:    10,
		SmallAreaMax:    200,

		RectEpsilonFrac: 0.02,
		RectMinArea:     200,

		CircleMinDist:       100,
		CircleCannyHigh:     100,
		CircleVotes:         80,
		CircleMinRadiusFrac: 0.15,
		CircleMaxRadiusFrac: 0.45,

		LineVotes:     50,
		LineMinLength: 30,
		LineMaxGap:    15,

		LongLineFrac:     0.15,
		VerticalAngleMin: 80,
		VerticalAngleMax: 100,

		FillLevel: 200,
	}
}

// LoadParams reads parameter overrides from a YAML file. Fields absent from
// the file keep their default values, so a file may override just one knob.
func LoadParams(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("read params: %w", err)
	}

	p := DefaultParams()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("parse params: %w", err)
	}

	return p, nil
}

// SaveParams writes parameters to a YAML file, suitable as a starting point
// for hand tuning.
func SaveParams(p Params, path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode params: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
