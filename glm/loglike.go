package glm

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/kshedden/glmfit/statmodel"
)

// GLMParams represents the model parameters for a GLM.
type GLMParams struct {
	coeff []float64
	scale float64
}

// NewGLMParams returns a parameter value with the given coefficients
// and scale.
func NewGLMParams(coeff []float64, scale float64) *GLMParams {
	return &GLMParams{coeff: coeff, scale: scale}
}

// GetCoeff returns the coefficients (slopes for individual
// covariates) from the parameter.
func (p *GLMParams) GetCoeff() []float64 {
	return p.coeff
}

// SetCoeff sets the coefficients (slopes for individual covariates)
// for the parameter.
func (p *GLMParams) SetCoeff(coeff []float64) {
	p.coeff = coeff
}

// Clone produces a deep copy of the parameter value.
func (p *GLMParams) Clone() statmodel.Parameter {
	return &GLMParams{
		coeff: clone(p.coeff),
		scale: p.scale,
	}
}

// evaluator holds the per-observation work space used to evaluate
// the objective function.  Each fit owns its evaluator.
type evaluator struct {
	m       *Model
	linpred []float64
	work    []float64
}

func newEvaluator(m *Model) *evaluator {
	n := m.NumObs()
	return &evaluator{
		m:       m,
		linpred: make([]float64, n),
		work:    make([]float64, n),
	}
}

// LinearPredictor places the linear predictor x*coeff (plus the
// offset if present) into linpred, which is allocated if it is too
// small, and returns it.
func (m *Model) LinearPredictor(coeff, linpred []float64) []float64 {

	n := m.NumObs()
	linpred = resize(linpred, n)

	lp := mat.NewVecDense(n, linpred)
	lp.MulVec(m.x, mat.NewVecDense(len(coeff), coeff))

	if m.offset != nil {
		floats.Add(linpred, m.offset)
	}

	return linpred
}

// objective returns the penalized log-likelihood at unit scale,
// omitting terms that do not depend on the coefficients.
func (ev *evaluator) objective(coeff []float64) float64 {

	m := ev.m
	ev.linpred = m.LinearPredictor(coeff, ev.linpred)

	var ll float64
	if m.canonical && m.fam.CanonLogLike != nil {
		m.link.NatParam(ev.linpred, ev.work)
		ll = m.fam.CanonLogLike(m.y, ev.work, m.weights)
	} else {
		m.link.InvLink(ev.linpred, ev.work)
		ll = m.fam.LogLike(m.y, ev.work, m.weights, 1)
	}

	if m.l2wgt > 0 {
		ll -= m.l2wgt * floats.Dot(coeff, coeff) / 2
	}

	if math.IsNaN(ll) {
		return math.Inf(-1)
	}

	return ll
}

// Objective returns the function maximized by Fit: the log-likelihood
// at unit scale minus the L2 penalty, omitting terms that do not
// depend on the coefficients.  Values outside the domain of the
// family give -Inf.
func (m *Model) Objective(coeff []float64) float64 {
	return newEvaluator(m).objective(coeff)
}

// LogLike returns the log-likelihood value for the generalized linear
// model at the given parameter values.  The L2 penalty is not
// included.  If exact is true, terms that do not depend on the
// coefficients are included.
func (m *Model) LogLike(params statmodel.Parameter, exact bool) float64 {

	gpar := params.(*GLMParams)
	scale := gpar.scale
	if scale == 0 {
		scale = 1
	}

	linpred := m.LinearPredictor(gpar.coeff, nil)
	mn := make([]float64, len(linpred))
	m.link.InvLink(linpred, mn)

	ll := m.fam.LogLike(m.y, mn, m.weights, scale)
	if exact {
		ll += m.fam.LogLikeConst(m.y, m.weights, scale)
	}

	return ll
}

// moments holds the mean and the link and variance function values
// at a linear predictor.
type moments struct {
	linpred, mn, lderiv, va []float64
}

func (m *Model) moments(coeff []float64) *moments {
	n := m.NumObs()
	mo := &moments{
		linpred: m.LinearPredictor(coeff, nil),
		mn:      make([]float64, n),
		lderiv:  make([]float64, n),
		va:      make([]float64, n),
	}
	m.link.InvLink(mo.linpred, mo.mn)
	m.link.Deriv(mo.mn, mo.lderiv)
	m.fam.Variance.Var(mo.mn, mo.va)
	return mo
}

func scoreFactor(yda, mn, deriv, va, sfac []float64) {
	for i, y := range yda {
		sfac[i] = (y - mn[i]) / (deriv[i] * va[i])
	}
}

// Score places the gradient of the penalized log-likelihood (at unit
// scale) into score.
func (m *Model) Score(params statmodel.Parameter, score []float64) {

	coeff := params.GetCoeff()
	mo := m.moments(coeff)

	fac := make([]float64, m.NumObs())
	scoreFactor(m.y, mo.mn, mo.lderiv, mo.va, fac)
	if m.weights != nil {
		floats.Mul(fac, m.weights)
	}

	sv := mat.NewVecDense(len(score), score)
	sv.MulVec(m.x.T(), mat.NewVecDense(len(fac), fac))

	// Account for the L2 penalty
	if m.l2wgt > 0 {
		floats.AddScaled(score, -m.l2wgt, coeff)
	}
}

// Hessian places the Hessian matrix of the penalized log-likelihood
// (at unit scale) into hess, as a vectorized p x p array.  Either the
// observed or expected Hessian can be calculated; they agree when the
// link is canonical.
func (m *Model) Hessian(params statmodel.Parameter, ht statmodel.HessType, hess []float64) {

	coeff := params.GetCoeff()
	mo := m.moments(coeff)
	n := m.NumObs()
	p := m.NumParams()

	// Factor for the expected Hessian
	fac := make([]float64, n)
	for i := range fac {
		fac[i] = 1 / (mo.lderiv[i] * mo.lderiv[i] * mo.va[i])
	}

	// Adjust the factor for the observed Hessian
	if ht == statmodel.ObsHess && !m.canonical {
		lderiv2 := make([]float64, n)
		vad := make([]float64, n)
		m.link.Deriv2(mo.mn, lderiv2)
		m.fam.Variance.Deriv(mo.mn, vad)
		for i := range fac {
			h := mo.va[i]*lderiv2[i] + mo.lderiv[i]*vad[i]
			h *= (m.y[i] - mo.mn[i]) / (mo.va[i] * mo.lderiv[i])
			fac[i] *= 1 + h
		}
	}

	if m.weights != nil {
		floats.Mul(fac, m.weights)
	}

	hm := mat.NewDense(p, p, hess)
	hm.Mul(m.x.T(), weightRows(m.x, fac))
	hm.Scale(-1, hm)

	// Account for the L2 penalty
	if m.l2wgt > 0 {
		for j := 0; j < p; j++ {
			hess[j*p+j] -= m.l2wgt
		}
	}
}

// weightRows returns a copy of x with row i multiplied by w[i].
func weightRows(x *mat.Dense, w []float64) *mat.Dense {
	var xw mat.Dense
	xw.CloneFrom(x)
	for i, v := range w {
		row := xw.RawRowView(i)
		floats.Scale(v, row)
	}
	return &xw
}

// EstimateScale returns an estimate of the GLM scale parameter at the
// given parameter values.  It is NaN when the total weight does not
// exceed the number of covariates.
func (m *Model) EstimateScale(params []float64) float64 {

	if m.fam.fixedScale {
		return 1
	}

	mo := m.moments(params)

	var scale, ws float64
	for i, y := range m.y {
		r := y - mo.mn[i]
		w := weight(m.weights, i)
		scale += w * r * r / mo.va[i]
		ws += w
	}

	df := ws - float64(m.NumParams())
	if df <= 0 {
		return math.NaN()
	}

	return scale / df
}
