package glm

import (
	"gonum.org/v1/gonum/mat"

	"github.com/kshedden/glmfit/statmodel"
)

// GLMResults describes the results of a fitted generalized linear model.
type GLMResults struct {
	statmodel.BaseResults

	scale     float64
	numIter   int
	converged bool
	history   []float64
	objective float64
}

// Scale returns the estimated scale parameter.
func (rslt *GLMResults) Scale() float64 {
	return rslt.scale
}

// NumIter returns the number of IRLS iterations that were performed.
func (rslt *GLMResults) NumIter() int {
	return rslt.numIter
}

// Converged returns true if the convergence criterion was met.
func (rslt *GLMResults) Converged() bool {
	return rslt.converged
}

// History returns the objective function value at the starting
// coefficients followed by its value after each accepted update.  The
// sequence is strictly increasing.
func (rslt *GLMResults) History() []float64 {
	return rslt.history
}

// Objective returns the penalized log-likelihood at the final
// coefficients, omitting terms that do not depend on them.
func (rslt *GLMResults) Objective() float64 {
	return rslt.objective
}

// FittedValues returns the fitted means for the data used to fit the
// model.
func (rslt *GLMResults) FittedValues() []float64 {
	m := rslt.Model().(*Model)
	lp := m.LinearPredictor(rslt.Params(), nil)
	mn := make([]float64, len(lp))
	m.link.InvLink(lp, mn)
	return mn
}

// Predict returns the means for the rows of x, which must have the
// same columns as the design matrix of the model.  The offset may be
// nil.
func (rslt *GLMResults) Predict(x mat.Matrix, offset []float64) ([]float64, error) {

	m := rslt.Model().(*Model)
	n, p := x.Dims()
	if p != m.NumParams() {
		return nil, statmodel.NewConfigError("Predict", "design",
			"%d columns, the model has %d covariates", p, m.NumParams())
	}
	if offset != nil && len(offset) != n {
		return nil, statmodel.NewConfigError("Predict", "offset",
			"length %d does not match %d rows", len(offset), n)
	}

	lp := make([]float64, n)
	lv := mat.NewVecDense(n, lp)
	lv.MulVec(x, mat.NewVecDense(p, rslt.Params()))
	for i := range offset {
		lp[i] += offset[i]
	}

	mn := make([]float64, n)
	m.link.InvLink(lp, mn)

	return mn, nil
}
