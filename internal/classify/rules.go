package classify

import (
	"github.com/chartscope/chartscope/internal/features"
)

// Decision thresholds, grouped by the rule that reads them. Comparisons are
// strict unless the name says otherwise; the rule table below is the
// authority on which side of each threshold matches.
const (
	// A circle this large relative to the short image side reads as a pie.
	pieRadiusFrac = 0.2

	// Scatterplots are a field of small marks with busy edges and few
	// long strokes.
	scatterSmallMin   = 30
	scatterDensityMin = 0.15
	scatterLongCap    = 5

	// Boxplots show a handful of boxes with whisker lines.
	boxplotRectMin     = 3
	boxplotRectMax     = 10
	boxplotVerticalMin = 3

	// Violin plots are a few saturated blobs with moderate edge density
	// and almost no rectangles.
	violinContoursMin   = 2
	violinContoursMax   = 15
	violinRectCap       = 3
	violinDensityMin    = 0.05
	violinDensityMax    = 0.15
	violinSaturationMin = 50

	// Line charts carry long strokes across several contours.
	lineLongMin     = 2
	lineContoursMin = 5
	lineRectCap     = 5

	// Area family: heavy ink coverage with smooth interiors. The stacked
	// variant adds color variety from its bands.
	stackedFillMin     = 0.3
	stackedColorStdMin = 30
	stackedDensityCap  = 0.12
	areaFillMin        = 0.25
	areaDensityCap     = 0.1

	// Bar family: rectangle count opens the rule, contour count and color
	// spread pick the subtype.
	barRectMin          = 3
	groupedContoursMin  = 15
	stackedBarStdMin    = 40
	histVerticalMin     = 5
	histDensityMin      = 0.12
	histDensityColorStd = 40

	// Density plots are nearly empty: one smooth curve.
	densityPlotEdgeCap    = 0.08
	densityPlotContourCap = 5

	// Fallback chain.
	fallbackSmallMin = 10
)

// rule pairs a predicate over the feature vector with the label logic that
// runs when it matches.
type rule struct {
	when func(features.Vector) bool
	pick func(features.Vector) ChartType
}

// constant adapts a fixed label to the pick signature.
func constant(t ChartType) func(features.Vector) ChartType {
	return func(features.Vector) ChartType { return t }
}

// rules is evaluated top to bottom; the first matching predicate wins.
// Ordering is load-bearing: a boxplot also has vertical lines and a
// histogram also has rectangles, so the specific rules must run before the
// generic ones that would otherwise claim them.
var rules = []rule{
	// Pie: any sufficiently dominant circle decides immediately.
	{when: hasDominantCircle, pick: constant(PieChart)},

	// Scatterplot.
	{
		when: func(v features.Vector) bool {
			return v.SmallContours > scatterSmallMin &&
				v.EdgeDensity > scatterDensityMin &&
				v.LongLines < scatterLongCap
		},
		pick: constant(Scatterplot),
	},

	// Boxplot.
	{
		when: func(v features.Vector) bool {
			return v.Rectangles >= boxplotRectMin &&
				v.Rectangles <= boxplotRectMax &&
				v.VerticalLines >= boxplotVerticalMin
		},
		pick: constant(Boxplot),
	},

	// Violin plot.
	{
		when: func(v features.Vector) bool {
			return v.SignificantContours > violinContoursMin &&
				v.SignificantContours < violinContoursMax &&
				v.Rectangles < violinRectCap &&
				v.EdgeDensity > violinDensityMin &&
				v.EdgeDensity < violinDensityMax &&
				v.SaturationMean > violinSaturationMin
		},
		pick: constant(ViolinPlot),
	},

	// Line chart.
	{
		when: func(v features.Vector) bool {
			return v.LongLines >= lineLongMin &&
				v.SignificantContours > lineContoursMin &&
				v.Rectangles < lineRectCap
		},
		pick: constant(LineChart),
	},

	// Stacked area chart.
	{
		when: func(v features.Vector) bool {
			return v.FilledRatio > stackedFillMin &&
				v.ColorStd > stackedColorStdMin &&
				v.EdgeDensity < stackedDensityCap
		},
		pick: constant(StackedAreaChart),
	},

	// Area chart.
	{
		when: func(v features.Vector) bool {
			return v.FilledRatio > areaFillMin &&
				v.EdgeDensity < areaDensityCap
		},
		pick: constant(AreaChart),
	},

	// Bar family, with subtype selection.
	{
		when: func(v features.Vector) bool { return v.Rectangles > barRectMin },
		pick: pickBarSubtype,
	},

	// Histogram family, with subtype selection.
	{
		when: func(v features.Vector) bool {
			return v.VerticalLines > histVerticalMin &&
				v.EdgeDensity > histDensityMin
		},
		pick: pickHistogramSubtype,
	},

	// Density plot.
	{
		when: func(v features.Vector) bool {
			return v.EdgeDensity < densityPlotEdgeCap &&
				v.SignificantContours < densityPlotContourCap
		},
		pick: constant(DensityPlot),
	},
}

// hasDominantCircle reports whether any detected circle has a radius above
// pieRadiusFrac of the smaller image dimension.
func hasDominantCircle(v features.Vector) bool {
	minDim := v.Width
	if v.Height < minDim {
		minDim = v.Height
	}
	cutoff := pieRadiusFrac * float64(minDim)

	for _, c := range v.Circles {
		if float64(c.Radius) > cutoff {
			return true
		}
	}
	return false
}

// pickBarSubtype separates grouped, stacked and plain bar charts once the
// rectangle count has matched.
func pickBarSubtype(v features.Vector) ChartType {
	if v.SignificantContours > groupedContoursMin {
		return GroupedBarChart
	}
	if v.ColorStd > stackedBarStdMin {
		return StackedBarChart
	}
	return BarChart
}

// pickHistogramSubtype separates a histogram with a density overlay from a
// plain one by the color spread the overlay curve adds.
func pickHistogramSubtype(v features.Vector) ChartType {
	if v.ColorStd > histDensityColorStd {
		return HistogramDensity
	}
	return Histogram
}

// fallback decides when no structural rule matched, and always produces a
// label.
func fallback(v features.Vector) ChartType {
	switch {
	case v.LongLines > 0:
		return LineChart
	case v.SmallContours > fallbackSmallMin:
		return Scatterplot
	case v.Rectangles > 0:
		return BarChart
	default:
		return LineChart
	}
}
