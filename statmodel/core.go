package statmodel

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Dtype is the element type of every data column.
type Dtype = float64

// HessType indicates the type of a Hessian matrix for a log-likelihood.
type HessType int

// ObsHess (observed Hessian) and ExpHess (expected Hessian) are the two type of log-likelihood
// Hessian matrices
const (
	ObsHess HessType = iota
	ExpHess
)

// Dataset is a collection of equal-length named columns held in memory.
type Dataset struct {
	names []string
	data  [][]Dtype
}

// NewDataset returns a Dataset holding the given columns.  The columns
// are not copied and must not be modified while the Dataset is in use.
func NewDataset(data [][]Dtype, names []string) (Dataset, error) {

	if len(data) != len(names) {
		return Dataset{}, NewConfigError("NewDataset", "names",
			"%d names for %d columns", len(names), len(data))
	}

	seen := make(map[string]bool)
	for j, na := range names {
		if seen[na] {
			return Dataset{}, NewConfigError("NewDataset", "names", "duplicate column '%s'", na)
		}
		seen[na] = true
		if len(data[j]) != len(data[0]) {
			return Dataset{}, NewConfigError("NewDataset", na,
				"column has length %d, expected %d", len(data[j]), len(data[0]))
		}
	}

	return Dataset{names: names, data: data}, nil
}

// Names returns the column names.
func (ds Dataset) Names() []string {
	return ds.names
}

// Data returns the columns.
func (ds Dataset) Data() [][]Dtype {
	return ds.data
}

// NumObs returns the number of rows.
func (ds Dataset) NumObs() int {
	if len(ds.data) == 0 {
		return 0
	}
	return len(ds.data[0])
}

// Pos returns the position of the named column, or -1 if there is no
// such column.
func (ds Dataset) Pos(name string) int {
	for j, na := range ds.names {
		if na == name {
			return j
		}
	}
	return -1
}

// Parameter is the parameter of a model.
type Parameter interface {

	// Get the coefficients of the covariates in the linear
	// predictor.  The returned value should be a reference so
	// that changes to it lead to corresponding changes in the
	// parameter itself.
	GetCoeff() []float64

	// Set the coefficients of the covariates in the linear
	// predictor.
	SetCoeff([]float64)

	// Clone creates a deep copy of the Parameter struct.
	Clone() Parameter
}

// RegFitter is a regression model that can be fit to data.
type RegFitter interface {

	// Number of parameters in the model.
	NumParams() int

	// Number of observations in the data set
	NumObs() int

	// The log-likelihood function.  If the flag is true, terms
	// that do not depend on the parameters are included.
	LogLike(Parameter, bool) float64

	// The score vector
	Score(Parameter, []float64)

	// The Hessian matrix
	Hessian(Parameter, HessType, []float64)
}

// BaseResultser is a fitted model that can produce results (parameter estimates, etc.).
type BaseResultser interface {
	Model() RegFitter
	Names() []string
	LogLike() float64
	Params() []float64
	VCov() []float64
	StdErr() []float64
	ZScores() []float64
	PValues() []float64
}

// BaseResults contains the results after fitting a model to data.
// The standard errors, Z-scores and p-values are computed when the
// results are constructed, so a BaseResults can be read from several
// goroutines.
type BaseResults struct {
	model   RegFitter
	loglike float64
	params  []float64
	xnames  []string
	vcov    []float64
	stderr  []float64
	zscores []float64
	pvalues []float64
}

// NewBaseResults returns a BaseResults corresponding to the given
// fitted model.  The vcov argument is the vectorized covariance matrix
// of the parameters, or nil if it is not available.
func NewBaseResults(model RegFitter, loglike float64, params []float64, xnames []string, vcov []float64) BaseResults {

	rslt := BaseResults{
		model:   model,
		loglike: loglike,
		params:  params,
		xnames:  xnames,
		vcov:    vcov,
	}
	if vcov == nil {
		return rslt
	}

	p := len(params)
	rslt.stderr = make([]float64, p)
	rslt.zscores = make([]float64, p)
	rslt.pvalues = make([]float64, p)
	for i, b := range params {
		se := math.Sqrt(vcov[i*p+i])
		rslt.stderr[i] = se
		rslt.zscores[i] = b / se
		rslt.pvalues[i] = 2 * distuv.UnitNormal.CDF(-math.Abs(b/se))
	}

	return rslt
}

// Model returns the model that was fit.
func (rslt *BaseResults) Model() RegFitter {
	return rslt.model
}

// Names returns the covariate names.
func (rslt *BaseResults) Names() []string {
	return rslt.xnames
}

// Params returns the estimated coefficients.
func (rslt *BaseResults) Params() []float64 {
	return rslt.params
}

// VCov returns the covariance matrix of the estimates, vectorized in
// row-major order.  It is nil if not available.
func (rslt *BaseResults) VCov() []float64 {
	return rslt.vcov
}

// LogLike returns the log-likelihood at the estimates.
func (rslt *BaseResults) LogLike() float64 {
	return rslt.loglike
}

// StdErr returns the standard errors of the estimates, or nil if there
// is no covariance matrix.
func (rslt *BaseResults) StdErr() []float64 {
	return rslt.stderr
}

// ZScores returns the estimates divided by their standard errors.
func (rslt *BaseResults) ZScores() []float64 {
	return rslt.zscores
}

// PValues returns two-sided p-values for the null hypothesis that each
// coefficient is zero, based on the normal approximation.
func (rslt *BaseResults) PValues() []float64 {
	return rslt.pvalues
}

// GetVcov returns the covariance matrix of the estimates as the inverse
// of the negative expected Hessian, vectorized in row-major order.
func GetVcov(model RegFitter, params Parameter) ([]float64, error) {

	p := model.NumParams()
	hess := make([]float64, p*p)
	model.Hessian(params, ExpHess, hess)
	for i := range hess {
		hess[i] = -hess[i]
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(mat.NewSymDense(p, hess)); !ok {
		return nil, errors.Wrap(ErrSingular, "information matrix is not positive definite")
	}

	var inv mat.SymDense
	if err := chol.InverseTo(&inv); err != nil {
		return nil, errors.Wrap(ErrSingular, "inverting information matrix")
	}

	vcov := make([]float64, p*p)
	for i := 0; i < p; i++ {
		for j := 0; j < p; j++ {
			vcov[i*p+j] = inv.At(i, j)
		}
	}

	return vcov, nil
}
