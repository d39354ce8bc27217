package classify

// ChartType is one of the thirteen chart-type labels the classifier can
// assign.
type ChartType string

const (
	PieChart         ChartType = "Pie Chart"
	Scatterplot      ChartType = "Scatterplot"
	Boxplot          ChartType = "Boxplot"
	ViolinPlot       ChartType = "Violin Plot"
	LineChart        ChartType = "Line Chart"
	StackedAreaChart ChartType = "Stacked Area Chart"
	AreaChart        ChartType = "Area Chart"
	BarChart         ChartType = "Bar Chart"
	GroupedBarChart  ChartType = "Grouped Bar Chart"
	StackedBarChart  ChartType = "Stacked Bar Chart"
	Histogram        ChartType = "Histogram"
	HistogramDensity ChartType = "Histogram with Density"
	DensityPlot      ChartType = "Density Plot"
)

// ChartTypes lists every label the classifier can return, in a stable order.
var ChartTypes = []ChartType{
	PieChart,
	Scatterplot,
	Boxplot,
	ViolinPlot,
	LineChart,
	StackedAreaChart,
	AreaChart,
	BarChart,
	GroupedBarChart,
	StackedBarChart,
	Histogram,
	HistogramDensity,
	DensityPlot,
}
