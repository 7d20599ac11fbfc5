package glm

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/kshedden/glmfit/statmodel"
)

// FitConfig holds the settings that control the IRLS iterations.
// Zero-valued fields take the values from DefaultFitConfig.
type FitConfig struct {

	// Iterations stop when the objective improves by less than Tol
	// relative to its magnitude.
	Tol float64

	// The maximum number of IRLS iterations.
	MaxIter int

	// The maximum number of times the update is halved within one
	// iteration while looking for an improvement.
	MaxHalvings int

	// Starting values for the coefficients, overriding those set on
	// the model.
	Start []float64
}

// DefaultFitConfig returns the default IRLS settings.
func DefaultFitConfig() FitConfig {
	return FitConfig{
		Tol:         1e-8,
		MaxIter:     50,
		MaxHalvings: 20,
	}
}

func (cfg FitConfig) withDefaults() FitConfig {
	def := DefaultFitConfig()
	if cfg.Tol <= 0 {
		cfg.Tol = def.Tol
	}
	if cfg.MaxIter <= 0 {
		cfg.MaxIter = def.MaxIter
	}
	if cfg.MaxHalvings <= 0 {
		cfg.MaxHalvings = def.MaxHalvings
	}
	return cfg
}

// irls holds the state of one IRLS fit.
type irls struct {
	m   *Model
	cfg FitConfig
	ev  *evaluator

	linpred []float64
	mn      []float64
	va      []float64
	lderiv  []float64
	irlsw   []float64
	fac     []float64
	adjy    []float64

	params  []float64
	obj     float64
	history []float64
	numIter int
}

func newIRLS(m *Model, cfg FitConfig) *irls {
	n := m.NumObs()
	return &irls{
		m:       m,
		cfg:     cfg,
		ev:      newEvaluator(m),
		linpred: make([]float64, n),
		mn:      make([]float64, n),
		va:      make([]float64, n),
		lderiv:  make([]float64, n),
		irlsw:   make([]float64, n),
		fac:     make([]float64, n),
		adjy:    make([]float64, n),
	}
}

// Fit estimates the parameters of the GLM by iteratively reweighted
// least squares and returns a results object.
//
// Every update is checked against the objective (see Objective); a
// step that does not increase it is halved up to cfg.MaxHalvings
// times.  If no fraction of the step helps, the fit stops with an
// error wrapping statmodel.ErrStepHalving.  If cfg.MaxIter iterations
// pass without convergence the error wraps statmodel.ErrNotConverged.
// In both cases the results for the best coefficients found are
// returned along with the error.
func (m *Model) Fit(cfg FitConfig) (*GLMResults, error) {

	cfg = cfg.withDefaults()
	p := m.NumParams()

	start := cfg.Start
	if start == nil {
		start = m.start
	}
	if start != nil && len(start) != p {
		return nil, statmodel.NewConfigError("Fit", "start",
			"length %d does not match %d covariates", len(start), p)
	}

	s := newIRLS(m, cfg)
	if start == nil {
		s.params = make([]float64, p)
	} else {
		s.params = clone(start)
	}

	return s.run()
}

func (s *irls) run() (*GLMResults, error) {

	m := s.m
	cfg := s.cfg
	tol := cfg.Tol

	s.obj = s.ev.objective(s.params)
	s.history = append(s.history, s.obj)

	if math.IsInf(s.obj, -1) {
		// The starting coefficients are outside the domain of the
		// family, so linearize around a mean derived from the data.
		s.startingMu()
	} else {
		s.update()
	}

	cand := make([]float64, len(s.params))
	trial := make([]float64, len(s.params))
	converged := false
	change := math.Inf(1)

	// IRLS iterations
	for iter := 0; iter < cfg.MaxIter; iter++ {

		s.numIter = iter + 1

		if err := s.solve(iter+1, cand); err != nil {
			m.log.Error().Err(err).Int("iter", iter+1).Msg("IRLS failed")
			return s.results(false), err
		}

		// Step-halving: move only part of the way toward the
		// candidate until the objective increases.  A step that
		// leaves the objective unchanged is not an improvement.
		copy(trial, cand)
		tobj := s.ev.objective(trial)
		step := 1.0
		var halvings int
		for !(tobj > s.obj) && halvings < cfg.MaxHalvings {
			halvings++
			step /= 2
			for j := range trial {
				trial[j] = s.params[j] + step*(cand[j]-s.params[j])
			}
			tobj = s.ev.objective(trial)
		}

		if !(tobj > s.obj) {
			if s.obj-tobj <= tol*(math.Abs(s.obj)+tol) {
				// Rounding decides the comparison at the optimum.
				converged = true
				break
			}
			err := statmodel.NewStepHalvingError(iter+1, halvings, s.obj)
			m.log.Warn().Err(err).Int("iter", iter+1).Msg("IRLS step-halving failed")
			return s.results(false), err
		}

		change = tobj - s.obj
		s.params, trial = trial, s.params
		s.obj = tobj
		s.history = append(s.history, tobj)

		m.log.Debug().
			Int("iter", iter+1).
			Float64("objective", tobj).
			Int("halvings", halvings).
			Msg("IRLS iteration")

		if change <= tol*(math.Abs(tobj)+tol) {
			converged = true
			break
		}

		s.update()
	}

	if !converged {
		err := statmodel.NewConvergenceError(s.numIter, change)
		m.log.Warn().Err(err).Int("iter", s.numIter).Float64("change", change).Msg("IRLS did not converge")
		return s.results(false), err
	}

	m.log.Info().Int("iter", s.numIter).Float64("objective", s.obj).Msg("IRLS converged")

	return s.results(true), nil
}

// update recomputes the linear predictor and mean at the current
// coefficients.
func (s *irls) update() {
	s.linpred = s.m.LinearPredictor(s.params, s.linpred)
	s.m.link.InvLink(s.linpred, s.mn)
}

// startingMu sets the mean to a value derived from the data and the
// linear predictor to the corresponding link value.
func (s *irls) startingMu() {

	m := s.m
	y := m.y

	var q float64
	if m.fam.TypeCode == BernoulliFamily || m.fam.TypeCode == BinomialFamily {
		q = m.fam.trials / 2
	} else {
		q = floats.Sum(y) / float64(len(y))
	}
	for i := range s.mn {
		s.mn[i] = (y[i] + q) / 2
		if m.fam.TypeCode == PoissonFamily && s.mn[i] < 0.1 {
			s.mn[i] = 0.1
		}
	}

	m.link.Link(s.mn, s.linpred)
	if m.offset != nil {
		// The offset is subtracted again from the working response.
		floats.Add(s.linpred, m.offset)
	}
}

// workingWeights computes the IRLS weights w = wt / (g'(mu)^2 V(mu))
// and the score factors f = wt / (g'(mu) V(mu)) from the current mean.
// For a canonical link g'(mu) V(mu) = 1, so w = wt V(mu) and f = wt.
func (s *irls) workingWeights(canonical bool) {

	m := s.m
	m.fam.Variance.Var(s.mn, s.va)

	if canonical {
		for i := range s.irlsw {
			w := weight(m.weights, i)
			s.irlsw[i] = w * s.va[i]
			s.fac[i] = w
		}
	} else {
		m.link.Deriv(s.mn, s.lderiv)
		for i := range s.irlsw {
			w := weight(m.weights, i)
			d := s.lderiv[i] * s.va[i]
			s.irlsw[i] = w / (s.lderiv[i] * d)
			s.fac[i] = w / d
		}
	}

	// Saturated means give zero or non-finite weights.  They are
	// raised to a small positive floor so that X'WX keeps a positive
	// diagonal.  Non-finite score factors are dropped.
	var wmax float64
	for _, w := range s.irlsw {
		if w > wmax && !math.IsInf(w, 1) {
			wmax = w
		}
	}
	floor := math.Max(weightFloor*wmax, minWeight)
	for i := range s.irlsw {
		if weight(m.weights, i) == 0 {
			s.irlsw[i] = 0
			s.fac[i] = 0
			continue
		}
		if !(s.irlsw[i] >= floor) || math.IsInf(s.irlsw[i], 1) {
			s.irlsw[i] = floor
		}
		if math.IsNaN(s.fac[i]) || math.IsInf(s.fac[i], 0) {
			s.fac[i] = 0
		}
	}
}

// IRLS weights are at least weightFloor times the largest weight, and
// never below minWeight.
const (
	weightFloor = 1e-10
	minWeight   = 1e-100
)

// solve computes the solution of the weighted, penalized least
// squares problem (X' W X + l2 I) b = X' W z at the current mean,
// placing it into cand.
func (s *irls) solve(iter int, cand []float64) error {

	m := s.m
	p := m.NumParams()

	s.workingWeights(m.canonical)

	// W z, with z = eta - offset + g'(mu) (y - mu) the working
	// response, written without dividing by the weights.
	for i := range s.adjy {
		eta := s.linpred[i]
		if m.offset != nil {
			eta -= m.offset[i]
		}
		s.adjy[i] = s.irlsw[i]*eta + s.fac[i]*(m.y[i]-s.mn[i])
	}

	sw := make([]float64, len(s.irlsw))
	for i, w := range s.irlsw {
		sw[i] = math.Sqrt(w)
	}
	xs := weightRows(m.x, sw)

	xtwx := mat.NewSymDense(p, nil)
	xtwx.SymOuterK(1, xs.T())
	if m.l2wgt > 0 {
		for j := 0; j < p; j++ {
			xtwx.SetSym(j, j, xtwx.At(j, j)+m.l2wgt)
		}
	}

	var xtwz mat.VecDense
	xtwz.MulVec(m.x.T(), mat.NewVecDense(len(s.adjy), s.adjy))

	var chol mat.Cholesky
	if ok := chol.Factorize(xtwx); !ok {
		return statmodel.NewSingularError(iter, "weighted design matrix is not positive definite")
	}

	nparam := mat.NewVecDense(p, cand)
	if err := chol.SolveVecTo(nparam, &xtwz); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return statmodel.NewSingularError(iter, err.Error())
		}
		// The solution is still computed for ill-conditioned systems.
		m.log.Debug().Int("iter", iter).Float64("condition", float64(cond)).Msg("ill-conditioned normal equations")
	}

	for _, v := range cand {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return statmodel.NewSingularError(iter, "non-finite solution")
		}
	}

	return nil
}

func (s *irls) results(converged bool) *GLMResults {

	m := s.m
	params := clone(s.params)
	scale := m.EstimateScale(params)
	gpar := &GLMParams{coeff: params, scale: scale}

	// No covariance matrix for penalized fits
	var vcov []float64
	if math.IsNaN(scale) {
		m.log.Warn().Int("nobs", m.NumObs()).Int("nparams", m.NumParams()).
			Msg("no residual degrees of freedom, scale and covariance matrix not available")
	} else if m.l2wgt == 0 {
		var err error
		vcov, err = statmodel.GetVcov(m, gpar)
		if err != nil {
			m.log.Warn().Err(err).Msg("covariance matrix not available")
			vcov = nil
		} else {
			floats.Scale(scale, vcov)
		}
	}

	ll := m.LogLike(gpar, true)

	return &GLMResults{
		BaseResults: statmodel.NewBaseResults(m, ll, params, m.xnames, vcov),
		scale:       scale,
		numIter:     s.numIter,
		converged:   converged,
		history:     s.history,
		objective:   s.obj,
	}
}
