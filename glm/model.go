package glm

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/kshedden/glmfit/statmodel"
)

// Model is a validated generalized linear model, ready to be fit.  A
// Model is never modified after construction, so a single value may
// be fit from several goroutines at once.
type Model struct {

	// The response, on the float scale of the family
	y []float64

	// The design matrix, one row per observation
	x *mat.Dense

	// Offset added to the linear predictor, optional
	offset []float64

	// Frequency weights, optional
	weights []float64

	// L2 (ridge) penalty weight, 0 if unpenalized
	l2wgt float64

	fam  *Family
	link *Link

	// True if the link is canonical for the family
	canonical bool

	// Covariate names
	xnames []string

	// Starting values, optional
	start []float64

	log zerolog.Logger
}

// ModelOption configures optional parts of a Model.
type ModelOption func(*Model)

// WithOffset sets an offset that is added to the linear predictor.
func WithOffset(offset []float64) ModelOption {
	return func(m *Model) {
		m.offset = offset
	}
}

// WithWeights sets frequency weights for the observations.
func WithWeights(weights []float64) ModelOption {
	return func(m *Model) {
		m.weights = weights
	}
}

// WithL2 sets the L2 (ridge) penalty weight.
func WithL2(l2wgt float64) ModelOption {
	return func(m *Model) {
		m.l2wgt = l2wgt
	}
}

// WithNames sets the covariate names.
func WithNames(names []string) ModelOption {
	return func(m *Model) {
		m.xnames = names
	}
}

// WithStart sets starting values for the coefficients.  They can be
// overridden for a single fit through FitConfig.Start.
func WithStart(start []float64) ModelOption {
	return func(m *Model) {
		m.start = start
	}
}

// WithLogger sets the logger that receives progress messages during
// fitting.
func WithLogger(log zerolog.Logger) ModelOption {
	return func(m *Model) {
		m.log = log
	}
}

// NewModel returns a model for the response y and design matrix x.
// If link is nil the canonical link of the family is used.  The data
// are copied, so later changes to the arguments do not affect the
// model.
func NewModel(fam *Family, link *Link, y []float64, x mat.Matrix, opts ...ModelOption) (*Model, error) {

	if fam == nil {
		return nil, statmodel.NewConfigError("NewModel", "family", "no family given")
	}
	if link == nil {
		link = fam.CanonicalLink()
	}
	if !fam.IsValidLink(link) {
		return nil, statmodel.NewConfigError("NewModel", "link",
			"%s link cannot be used with the %s family", link.Name, fam.Name)
	}

	m := &Model{
		fam:       fam,
		link:      link,
		canonical: link.IsCanonical(fam.TypeCode),
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	n, p := x.Dims()
	if n == 0 || p == 0 {
		return nil, statmodel.NewConfigError("NewModel", "design", "empty design matrix (%d x %d)", n, p)
	}
	if len(y) != n {
		return nil, statmodel.NewConfigError("NewModel", "response",
			"length %d does not match %d design rows", len(y), n)
	}
	if err := fam.CheckResponse(y); err != nil {
		return nil, err
	}
	if m.offset != nil && len(m.offset) != n {
		return nil, statmodel.NewConfigError("NewModel", "offset",
			"length %d does not match %d design rows", len(m.offset), n)
	}
	if m.weights != nil {
		if len(m.weights) != n {
			return nil, statmodel.NewConfigError("NewModel", "weights",
				"length %d does not match %d design rows", len(m.weights), n)
		}
		for i, w := range m.weights {
			if !(w >= 0) || math.IsInf(w, 1) {
				return nil, statmodel.NewConfigError("NewModel", "weights",
					"weight %v at position %d is not a non-negative number", w, i)
			}
		}
	}
	if !(m.l2wgt >= 0) || math.IsInf(m.l2wgt, 1) {
		return nil, statmodel.NewConfigError("NewModel", "l2wgt", "must be non-negative, got %v", m.l2wgt)
	}
	if m.start != nil && len(m.start) != p {
		return nil, statmodel.NewConfigError("NewModel", "start",
			"length %d does not match %d covariates", len(m.start), p)
	}
	if m.xnames == nil {
		m.xnames = make([]string, p)
		for j := range m.xnames {
			m.xnames[j] = fmt.Sprintf("x%d", j+1)
		}
	} else if len(m.xnames) != p {
		return nil, statmodel.NewConfigError("NewModel", "names",
			"%d names for %d covariates", len(m.xnames), p)
	}

	m.x = mat.DenseCopyOf(x)
	m.y = clone(y)
	m.offset = clone(m.offset)
	m.weights = clone(m.weights)
	m.start = clone(m.start)

	return m, nil
}

// NumParams returns the number of covariates in the model.
func (m *Model) NumParams() int {
	_, p := m.x.Dims()
	return p
}

// NumObs returns the number of observations in the model.
func (m *Model) NumObs() int {
	return len(m.y)
}

// Family returns the family of the model.
func (m *Model) Family() *Family {
	return m.fam
}

// Link returns the link function of the model.
func (m *Model) Link() *Link {
	return m.link
}

// Canonical returns true if the model's link is canonical for its
// family.
func (m *Model) Canonical() bool {
	return m.canonical
}

// L2Weight returns the L2 penalty weight.
func (m *Model) L2Weight() float64 {
	return m.l2wgt
}

// Names returns the covariate names.
func (m *Model) Names() []string {
	return m.xnames
}

// Design returns the design matrix.  It must not be modified.
func (m *Model) Design() mat.Matrix {
	return m.x
}

// Response returns the response values.  They must not be modified.
func (m *Model) Response() []float64 {
	return m.y
}

func clone(x []float64) []float64 {
	if x == nil {
		return nil
	}
	y := make([]float64, len(x))
	copy(y, x)
	return y
}

// resize returns a float64 slice of length n, using the initial
// subslice of x if it is big enough.
func resize(x []float64, n int) []float64 {
	if cap(x) >= n {
		return x[0:n]
	}
	return make([]float64, n)
}

// zero sets all elements of the slice to 0
func zero(x []float64) {
	for i := range x {
		x[i] = 0
	}
}

// one sets all elements of the slice to 1
func one(x []float64) {
	for i := range x {
		x[i] = 1
	}
}
