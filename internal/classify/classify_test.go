package classify

import (
	"math/rand"
	"testing"

	"github.com/chartscope/chartscope/internal/detection"
	"github.com/chartscope/chartscope/internal/features"
)

func TestClassify_RuleTable(t *testing.T) {
	tests := []struct {
		name string
		v    features.Vector
		want ChartType
	}{
		{
			name: "dominant circle wins as pie",
			v: features.Vector{
				Width: 300, Height: 300,
				Circles: []detection.Circle{{Center: detection.Point{X: 150, Y: 150}, Radius: 80}},
			},
			want: PieChart,
		},
		{
			name: "small circle does not make a pie",
			v: features.Vector{
				Width: 300, Height: 300,
				Circles:             []detection.Circle{{Center: detection.Point{X: 150, Y: 150}, Radius: 40}},
				SignificantContours: 20,
				EdgeDensity:         0.2,
			},
			want: LineChart, // falls through the whole chain to the default
		},
		{
			name: "dense field of small marks is a scatterplot",
			v: features.Vector{
				Width: 300, Height: 300,
				SmallContours:       35,
				SignificantContours: 35,
				EdgeDensity:         0.2,
				LongLines:           0,
			},
			want: Scatterplot,
		},
		{
			name: "boxes with whiskers are a boxplot",
			v: features.Vector{
				Width: 300, Height: 300,
				Rectangles:          5,
				VerticalLines:       4,
				SignificantContours: 20,
				EdgeDensity:         0.2,
			},
			want: Boxplot,
		},
		{
			name: "saturated blobs are a violin plot",
			v: features.Vector{
				Width: 300, Height: 300,
				SignificantContours: 8,
				Rectangles:          0,
				EdgeDensity:         0.1,
				SaturationMean:      120,
			},
			want: ViolinPlot,
		},
		{
			name: "long strokes over several contours are a line chart",
			v: features.Vector{
				Width: 300, Height: 300,
				LongLines:           3,
				SignificantContours: 10,
				Rectangles:          0,
				EdgeDensity:         0.2,
			},
			want: LineChart,
		},
		{
			name: "heavy colorful fill is a stacked area chart",
			v: features.Vector{
				Width: 300, Height: 300,
				FilledRatio:         0.4,
				ColorStd:            50,
				EdgeDensity:         0.08,
				SignificantContours: 1,
			},
			want: StackedAreaChart,
		},
		{
			name: "heavy plain fill is an area chart",
			v: features.Vector{
				Width: 300, Height: 300,
				FilledRatio:         0.28,
				ColorStd:            10,
				EdgeDensity:         0.05,
				SignificantContours: 1,
			},
			want: AreaChart,
		},
		{
			name: "plain bar chart",
			v: features.Vector{
				Width: 300, Height: 300,
				Rectangles:          4,
				SignificantContours: 10,
				ColorStd:            20,
				EdgeDensity:         0.2,
			},
			want: BarChart,
		},
		{
			name: "many contours make bars grouped",
			v: features.Vector{
				Width: 300, Height: 300,
				Rectangles:          6,
				SignificantContours: 20,
				ColorStd:            20,
				EdgeDensity:         0.2,
			},
			want: GroupedBarChart,
		},
		{
			name: "color spread makes bars stacked",
			v: features.Vector{
				Width: 300, Height: 300,
				Rectangles:          6,
				SignificantContours: 10,
				ColorStd:            55,
				EdgeDensity:         0.2,
			},
			want: StackedBarChart,
		},
		{
			name: "vertical bins are a histogram",
			v: features.Vector{
				Width: 300, Height: 300,
				VerticalLines:       8,
				EdgeDensity:         0.18,
				Rectangles:          2,
				SignificantContours: 20,
				ColorStd:            10,
			},
			want: Histogram,
		},
		{
			name: "vertical bins with color spread are a histogram with density",
			v: features.Vector{
				Width: 300, Height: 300,
				VerticalLines:       8,
				EdgeDensity:         0.18,
				Rectangles:          2,
				SignificantContours: 20,
				ColorStd:            60,
			},
			want: HistogramDensity,
		},
		{
			name: "one smooth curve is a density plot",
			v: features.Vector{
				Width: 300, Height: 300,
				EdgeDensity:         0.03,
				SignificantContours: 2,
			},
			want: DensityPlot,
		},
	}

	for _, tt := range tests {
		if got := Classify(tt.v); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

// A vector satisfying both the boxplot rule and the histogram rule must be
// labeled by the earlier rule.
func TestClassify_BoxplotBeforeHistogram(t *testing.T) {
	v := features.Vector{
		Width: 300, Height: 300,
		Rectangles:          5,
		VerticalLines:       8,
		EdgeDensity:         0.2,
		ColorStd:            60,
		SignificantContours: 20,
	}

	if got := Classify(v); got != Boxplot {
		t.Errorf("got %q, want %q (earlier rule must win)", got, Boxplot)
	}
}

// An all-zero vector, the measurement of a blank image, is claimed by the
// low-edge density rule before the fallback chain is reached.
func TestClassify_EmptyVector(t *testing.T) {
	if got := Classify(features.Vector{Width: 200, Height: 200}); got != DensityPlot {
		t.Errorf("got %q, want %q", got, DensityPlot)
	}
}

func TestClassify_FallbackChain(t *testing.T) {
	// Every vector here dodges all ten structural rules; SignificantContours
	// and EdgeDensity are held high enough to keep the density plot rule
	// from firing.
	tests := []struct {
		name string
		v    features.Vector
		want ChartType
	}{
		{
			name: "a single long stroke defaults to a line chart",
			v: features.Vector{
				Width: 300, Height: 300,
				LongLines:           1,
				SignificantContours: 6,
				EdgeDensity:         0.2,
			},
			want: LineChart,
		},
		{
			name: "a few small marks default to a scatterplot",
			v: features.Vector{
				Width: 300, Height: 300,
				SmallContours:       15,
				SignificantContours: 20,
				EdgeDensity:         0.2,
			},
			want: Scatterplot,
		},
		{
			name: "a lone rectangle defaults to a bar chart",
			v: features.Vector{
				Width: 300, Height: 300,
				Rectangles:          1,
				SmallContours:       5,
				SignificantContours: 20,
				EdgeDensity:         0.2,
			},
			want: BarChart,
		},
		{
			name: "nothing at all defaults to a line chart",
			v: features.Vector{
				Width: 300, Height: 300,
				SignificantContours: 20,
				EdgeDensity:         0.2,
			},
			want: LineChart,
		},
	}

	for _, tt := range tests {
		if got := Classify(tt.v); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

// Classify must map every vector to one of the thirteen labels.
func TestClassify_Totality(t *testing.T) {
	valid := make(map[ChartType]bool, len(ChartTypes))
	for _, ct := range ChartTypes {
		valid[ct] = true
	}
	if len(valid) != 13 {
		t.Fatalf("label set: got %d distinct labels, want 13", len(valid))
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		v := features.Vector{
			Width:               1 + rng.Intn(500),
			Height:              1 + rng.Intn(500),
			EdgeDensity:         rng.Float64() * 0.3,
			SignificantContours: rng.Intn(50),
			SmallContours:       rng.Intn(50),
			Rectangles:          rng.Intn(15),
			ColorStd:            rng.Float64() * 90,
			SaturationMean:      rng.Float64() * 255,
			FilledRatio:         rng.Float64() * 0.6,
			LongLines:           rng.Intn(8),
			VerticalLines:       rng.Intn(12),
		}
		if rng.Intn(3) == 0 {
			v.Circles = []detection.Circle{{
				Center: detection.Point{X: rng.Intn(500), Y: rng.Intn(500)},
				Radius: rng.Intn(200),
			}}
		}

		got := Classify(v)
		if !valid[got] {
			t.Fatalf("vector %+v: got label %q outside the closed set", v, got)
		}
	}
}
