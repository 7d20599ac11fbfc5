package glm

import (
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/kshedden/glmfit/statmodel"
)

// GLM specifies a generalized linear model in terms of the named
// columns of a data set.  Call the setters to configure the model,
// then Done to validate it and obtain a Model that can be fit.
type GLM struct {
	data statmodel.Dataset

	// Name of the outcome variable
	yname string

	// Names of the covariates; if nil every column that is not the
	// outcome, offset or weight is a covariate.
	xnames []string

	// Name of the offset variable, if present.
	offsetname string

	// Name of the weight variable, if present.
	weightname string

	// The GLM family
	fam *Family

	// The GLM link function
	link *Link

	// L2 (ridge) penalty weight
	l2wgt float64

	// Starting values, optional
	start []float64

	log zerolog.Logger
}

// NewGLM creates a new GLM for the outcome variable with the given
// name.  The family must be set before calling Done.
func NewGLM(data statmodel.Dataset, yname string) *GLM {

	return &GLM{
		data:  data,
		yname: yname,
		log:   zerolog.Nop(),
	}
}

// Family sets the GLM family.
func (glm *GLM) Family(fam *Family) *GLM {
	glm.fam = fam
	return glm
}

// Link sets the link function.  If not set, the canonical link of the
// family is used.
func (glm *GLM) Link(link *Link) *GLM {
	glm.link = link
	return glm
}

// Covariates sets the names of the covariates.
func (glm *GLM) Covariates(names ...string) *GLM {
	glm.xnames = names
	return glm
}

// Offset sets the name of the offset variable
func (glm *GLM) Offset(name string) *GLM {
	glm.offsetname = name
	return glm
}

// Weight sets the name of the weight variable.
func (glm *GLM) Weight(name string) *GLM {
	glm.weightname = name
	return glm
}

// L2Weight sets the L2 penalty weight used for ridge-regularization.
// When using L2 weights it is advisable to standardize the covariates
// so that the penalty has equal impacts on them.
func (glm *GLM) L2Weight(l2wgt float64) *GLM {
	glm.l2wgt = l2wgt
	return glm
}

// Start sets starting values for the fitting algorithm.
func (glm *GLM) Start(start []float64) *GLM {
	glm.start = start
	return glm
}

// Log takes a logger that will receive progress messages during
// fitting.
func (glm *GLM) Log(log zerolog.Logger) *GLM {
	glm.log = log
	return glm
}

// column returns the data column with the given name.
func (glm *GLM) column(param, name string) ([]float64, error) {
	k := glm.data.Pos(name)
	if k == -1 {
		return nil, statmodel.NewConfigError("GLM", param, "variable '%s' not found", name)
	}
	return glm.data.Data()[k], nil
}

// findvars returns the names of the covariates.
func (glm *GLM) findvars() []string {

	if glm.xnames != nil {
		return glm.xnames
	}

	var xnames []string
	for _, na := range glm.data.Names() {
		switch na {
		case glm.yname, glm.weightname, glm.offsetname:
		default:
			xnames = append(xnames, na)
		}
	}

	return xnames
}

// Done completes definition of a GLM, returning a validated Model.
func (glm *GLM) Done() (*Model, error) {

	if glm.fam == nil {
		return nil, statmodel.NewConfigError("GLM", "family", "the family must be set before calling Done")
	}

	y, err := glm.column("outcome", glm.yname)
	if err != nil {
		return nil, err
	}

	xnames := glm.findvars()
	if len(xnames) == 0 {
		return nil, statmodel.NewConfigError("GLM", "covariates", "no covariates")
	}

	n := len(y)
	x := mat.NewDense(n, len(xnames), nil)
	for j, na := range xnames {
		xda, err := glm.column("covariate", na)
		if err != nil {
			return nil, err
		}
		x.SetCol(j, xda)
	}

	opts := []ModelOption{
		WithNames(xnames),
		WithL2(glm.l2wgt),
		WithLogger(glm.log),
	}

	if glm.offsetname != "" {
		off, err := glm.column("offset", glm.offsetname)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithOffset(off))
	}

	if glm.weightname != "" {
		wgt, err := glm.column("weight", glm.weightname)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithWeights(wgt))
	}

	if glm.start != nil {
		opts = append(opts, WithStart(glm.start))
	}

	return NewModel(glm.fam, glm.link, y, x, opts...)
}
