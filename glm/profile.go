package glm

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/kshedden/glmfit/statmodel"
)

// Profiler is used to do likelihood profile analysis on the
// coefficients of a fitted GLM.  The profile log-likelihood of a
// coefficient is the largest log-likelihood that can be obtained with
// that coefficient held fixed.  The scale parameter is held at its
// value from the fit.
type Profiler struct {

	// The profile analysis is done with respect to this fitted
	// model.
	results *GLMResults
	model   *Model

	// The settings used for the constrained fits
	cfg FitConfig

	scale      float64
	maxLogLike float64

	// Profile holds, for each coefficient that has been profiled,
	// the (value, log-likelihood) points visited on the profile
	// curve, sorted by value.
	Profile map[int][][2]float64
}

// NewProfiler returns a Profiler for the coefficients of a fitted
// model.  Profiles are only available for unpenalized fits.
func NewProfiler(rslt *GLMResults, cfg FitConfig) (*Profiler, error) {

	m := rslt.Model().(*Model)
	if m.l2wgt > 0 {
		return nil, statmodel.NewConfigError("NewProfiler", "l2wgt",
			"profiles are not available for penalized fits")
	}

	return &Profiler{
		results:    rslt,
		model:      m,
		cfg:        cfg,
		scale:      rslt.scale,
		maxLogLike: rslt.LogLike(),
		Profile:    make(map[int][][2]float64),
	}, nil
}

// LogLike returns the profile log-likelihood for coefficient j at the
// value b.  The remaining coefficients are fit with x[:, j]*b moved
// into the offset.
func (ps *Profiler) LogLike(j int, b float64) (float64, error) {

	m := ps.model
	n, p := m.x.Dims()
	if j < 0 || j >= p {
		return 0, statmodel.NewConfigError("Profiler.LogLike", "coefficient", "index %d out of range", j)
	}

	offset := make([]float64, n)
	for i := range offset {
		offset[i] = m.x.At(i, j) * b
		if m.offset != nil {
			offset[i] += m.offset[i]
		}
	}

	// Only the fixed coefficient is left.
	if p == 1 {
		sub, err := NewModel(m.fam, m.link, m.y, mat.NewDense(n, 1, make([]float64, n)),
			WithOffset(offset), WithWeights(m.weights))
		if err != nil {
			return 0, err
		}
		return sub.LogLike(NewGLMParams([]float64{0}, ps.scale), true), nil
	}

	var cols []int
	var start []float64
	for k := 0; k < p; k++ {
		if k != j {
			cols = append(cols, k)
			start = append(start, ps.results.Params()[k])
		}
	}
	x := mat.NewDense(n, p-1, nil)
	for c, k := range cols {
		x.SetCol(c, mat.Col(nil, k, m.x))
	}

	sub, err := NewModel(m.fam, m.link, m.y, x,
		WithOffset(offset), WithWeights(m.weights), WithStart(start))
	if err != nil {
		return 0, err
	}

	rslt, err := sub.Fit(ps.cfg)
	if rslt == nil {
		return 0, errors.Wrapf(err, "profiling coefficient %d at %v", j, b)
	}
	if err != nil {
		m.log.Debug().Err(err).Int("coefficient", j).Float64("value", b).Msg("constrained fit stopped early")
	}

	return sub.LogLike(NewGLMParams(rslt.Params(), ps.scale), true), nil
}

type profPoint [][2]float64

func (a profPoint) Len() int           { return len(a) }
func (a profPoint) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a profPoint) Less(i, j int) bool { return a[i][0] < a[j][0] }

func bisectroot(f func(float64) (float64, error), x0, x1, y0, y1, yt float64) (float64, [][2]float64, error) {

	if (y0-yt)*(y1-yt) > 0 {
		return 0, nil, errors.Newf("bisectroot invalid bracket [%v, %v]", x0, x1)
	}

	var hist [][2]float64

	for x1-x0 > 1e-6*(1+math.Abs(x0)) {
		x := (x0 + x1) / 2
		y, err := f(x)
		if err != nil {
			return 0, hist, err
		}
		hist = append(hist, [2]float64{x, y})
		if (y-yt)*(y0-yt) > 0 {
			x0 = x
			y0 = y
		} else {
			x1 = x
		}
	}

	return (x0 + x1) / 2, hist, nil
}

// maxExpand bounds the number of times the search interval is widened.
const maxExpand = 30

// ConfInt returns a profile likelihood confidence interval for
// coefficient j with coverage probability prob.  All points on the
// profile visited during the search are added to the Profile field.
func (ps *Profiler) ConfInt(j int, prob float64) (float64, float64, error) {

	if j < 0 || j >= ps.model.NumParams() {
		return 0, 0, statmodel.NewConfigError("Profiler.ConfInt", "coefficient", "index %d out of range", j)
	}
	if !(prob > 0 && prob < 1) {
		return 0, 0, statmodel.NewConfigError("Profiler.ConfInt", "prob", "must be in (0, 1), got %v", prob)
	}

	qp := distuv.ChiSquared{K: 1}.Quantile(prob) / 2
	target := ps.maxLogLike - qp
	mle := ps.results.Params()[j]
	f := func(b float64) (float64, error) { return ps.LogLike(j, b) }

	// Initial step from the standard error when there is one
	step := 1.0
	if se := ps.results.StdErr(); se != nil && se[j] > 0 && !math.IsInf(se[j], 0) {
		step = se[j]
	}

	prof := ps.Profile[j]
	prof = append(prof, [2]float64{mle, ps.maxLogLike})

	var bounds [2]float64
	for k, dir := range []float64{-1, 1} {
		b, d := mle, step
		var ll float64
		var expand int
		for {
			b = mle + dir*d
			var err error
			ll, err = f(b)
			if err != nil {
				return 0, 0, err
			}
			prof = append(prof, [2]float64{b, ll})
			if ll <= target {
				break
			}
			if expand++; expand > maxExpand {
				return 0, 0, errors.Newf("profile for %s does not fall below the cutoff", ps.model.xnames[j])
			}
			d *= 2
		}

		x0, x1, y0, y1 := b, mle, ll, ps.maxLogLike
		if dir > 0 {
			x0, x1, y0, y1 = mle, b, ps.maxLogLike, ll
		}
		r, hist, err := bisectroot(f, x0, x1, y0, y1, target)
		if err != nil {
			return 0, 0, err
		}
		prof = append(prof, hist...)
		bounds[k] = r
	}

	sort.Sort(profPoint(prof))
	ps.Profile[j] = prof

	return bounds[0], bounds[1], nil
}
