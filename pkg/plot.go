package demandProfiler

import (
	"errors"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// errorPoints type
type errorPoints struct {
	plotter.XYs     // mean net demand per hour-of-week
	plotter.YErrors // one-sigma error bars
}

// PlotProfileStats function
func PlotProfileStats(
	stats *ProfileStats,
	plotPath string) error {

	// allocate plot series
	pts := make(plotter.XYs, 0, hrs)
	errs := make(plotter.YErrors, 0, hrs)

	// populate series from stat vectors, dropping NaN buckets
	for b := 0; b < hrs; b++ {

		// extract bucket statistics
		mean := stats.Means.At(b, 0)
		std := stats.Stds.At(b, 0)

		// empty buckets carry NaN and cannot be ranged
		if math.IsNaN(mean) || math.IsNaN(std) {
			continue
		}

		// append series values
		pts = append(pts, plotter.XY{X: float64(b), Y: mean})
		errs = append(errs, struct{ Low, High float64 }{Low: std, High: std})
	}

	// an all-empty profile leaves nothing to range the axes over
	if len(pts) == 0 {
		return errors.New("no samples to plot")
	}

	// allocate new plot
	p := plot.New()
	p.Title.Text = "Weekly Net Demand Profile"
	p.X.Label.Text = "Hour of Week"
	p.Y.Label.Text = "Net Demand (kWh)"

	// generate mean line series
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}

	// generate error bar series
	bars, err := plotter.NewYErrorBars(errorPoints{XYs: pts, YErrors: errs})
	if err != nil {
		return err
	}

	// add series to plot
	p.Add(line, bars)

	// render plot to file
	return p.Save(12*vg.Inch, 6*vg.Inch, plotPath)
}
