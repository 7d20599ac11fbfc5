package main

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// writeTrace plots the objective function against the iteration
// number, with one line for each successful fit.
func writeTrace(fname string, fits []fitResult) error {

	p := plot.New()
	p.Title.Text = "IRLS trace"
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Penalized log-likelihood"

	var nline int
	for _, f := range fits {
		if f.rslt == nil {
			continue
		}

		// The starting objective may be infinite.
		var pts plotter.XYs
		for i, v := range f.rslt.History() {
			if math.IsInf(v, 0) {
				continue
			}
			pts = append(pts, plotter.XY{X: float64(i), Y: v})
		}
		if len(pts) == 0 {
			continue
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return errors.Wrapf(err, "plotting %s", f.yname)
		}
		line.Color = plotutil.Color(nline)
		line.Dashes = plotutil.Dashes(nline)
		nline++

		p.Add(line)
		p.Legend.Add(f.yname, line)
	}

	p.Legend.Top = false
	p.Legend.Left = false

	if err := p.Save(6*vg.Inch, 4*vg.Inch, fname); err != nil {
		return errors.Wrap(err, "saving trace plot")
	}

	return nil
}
