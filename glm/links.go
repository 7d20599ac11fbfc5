package glm

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/kshedden/glmfit/statmodel"
)

// VecFunc is a function with two float64 array arguments.
type VecFunc func([]float64, []float64)

// Link specifies a GLM link function.
type Link struct {
	Name string

	TypeCode LinkType

	// Link calculates the link function (usually mapping the mean
	// value to the linear predictor).
	Link VecFunc

	// InvLink calculates the inverse of the link function
	// (usually mapping the linear predictor to the mean value).
	InvLink VecFunc

	// Deriv calculates the derivative of the link function.
	Deriv VecFunc

	// Deriv2 calculates the second derivative of the link function.
	Deriv2 VecFunc

	// NatParam maps the linear predictor to the natural parameter
	// of the families listed in CanonicalFor.  It is nil for links
	// that are not canonical for any family.
	NatParam VecFunc

	// CanonicalFor lists the families for which the natural
	// parameter is a fixed function (usually the identity) of the
	// linear predictor.  This is declared, never inferred.
	CanonicalFor []FamilyType

	// Number of trials that the mean is scaled by, only used by
	// the logit link.
	trials float64
}

// LinkType is used to specify a GLM link function.
type LinkType uint8

// LogLink, etc. indicate the different link functions.
const (
	LogLink LinkType = iota
	IdentityLink
	LogitLink
	CloglogLink
	ProbitLink
)

// NewLink returns a link function object corresponding to the given
// type.  The logit link returned here maps means in (0, 1); binomial
// families with more than one trial supply their own scaled logit.
func NewLink(link LinkType) *Link {

	switch link {
	case LogLink:
		return &logLink
	case IdentityLink:
		return &idLink
	case CloglogLink:
		return &cLogLogLink
	case LogitLink:
		return &logitLink
	case ProbitLink:
		return &probitLink
	default:
		msg := fmt.Sprintf("Link unknown: %v\n", link)
		panic(msg)
	}
}

// ParseLink returns the link type with the given case-insensitive
// name.
func ParseLink(name string) (LinkType, error) {
	switch strings.ToLower(name) {
	case "log":
		return LogLink, nil
	case "identity":
		return IdentityLink, nil
	case "logit":
		return LogitLink, nil
	case "cloglog":
		return CloglogLink, nil
	case "probit":
		return ProbitLink, nil
	}
	return 0, statmodel.NewConfigError("ParseLink", "link", "unknown link '%s'", name)
}

// IsCanonical returns true if the link has declared itself to be
// canonical for the given family type.
func (link *Link) IsCanonical(fam FamilyType) bool {
	for _, f := range link.CanonicalFor {
		if f == fam {
			return true
		}
	}
	return false
}

// Trials returns the number of trials the mean is scaled by.  It is 1
// except for the logit link of a binomial family.
func (link *Link) Trials() float64 {
	if link.trials == 0 {
		return 1
	}
	return link.trials
}

var logLink = Link{
	Name:         "Log",
	TypeCode:     LogLink,
	Link:         logFunc,
	InvLink:      expFunc,
	Deriv:        logDerivFunc,
	Deriv2:       logDeriv2Func,
	NatParam:     idFunc,
	CanonicalFor: []FamilyType{PoissonFamily},
}

var idLink = Link{
	Name:         "Identity",
	TypeCode:     IdentityLink,
	Link:         idFunc,
	InvLink:      idFunc,
	Deriv:        idDerivFunc,
	Deriv2:       idDeriv2Func,
	NatParam:     idFunc,
	CanonicalFor: []FamilyType{GaussianFamily},
}

var cLogLogLink = Link{
	Name:     "CLogLog",
	TypeCode: CloglogLink,
	Link:     cloglogFunc,
	InvLink:  cloglogInvFunc,
	Deriv:    cloglogDerivFunc,
	Deriv2:   cloglogDeriv2Func,
}

var probitLink = Link{
	Name:     "Probit",
	TypeCode: ProbitLink,
	Link:     probitFunc,
	InvLink:  probitInvFunc,
	Deriv:    probitDerivFunc,
	Deriv2:   probitDeriv2Func,
}

var logitLink = *newLogitLink(1)

// newLogitLink returns the logit link for a mean on the scale of n
// trials, eta = log(mu / (n - mu)).
func newLogitLink(n float64) *Link {

	return &Link{
		Name:     "Logit",
		TypeCode: LogitLink,
		Link: func(x []float64, y []float64) {
			for i, v := range x {
				y[i] = math.Log(v / (n - v))
			}
		},
		InvLink: func(x []float64, y []float64) {
			for i, v := range x {
				y[i] = n / (1 + math.Exp(-v))
			}
		},
		Deriv: func(x []float64, y []float64) {
			for i, v := range x {
				y[i] = n / (v * (n - v))
			}
		},
		Deriv2: func(x []float64, y []float64) {
			for i, v := range x {
				u := v * (n - v)
				y[i] = n * (2*v - n) / (u * u)
			}
		},
		NatParam:     idFunc,
		CanonicalFor: []FamilyType{BernoulliFamily, BinomialFamily},
		trials:       n,
	}
}

func logFunc(x []float64, y []float64) {
	for i := 0; i < len(x); i++ {
		y[i] = math.Log(x[i])
	}
}

func logDerivFunc(x []float64, y []float64) {
	for i := 0; i < len(x); i++ {
		y[i] = 1 / x[i]
	}
}

func logDeriv2Func(x []float64, y []float64) {
	for i := 0; i < len(x); i++ {
		y[i] = -1 / (x[i] * x[i])
	}
}

func expFunc(x []float64, y []float64) {
	for i := 0; i < len(x); i++ {
		y[i] = math.Exp(x[i])
	}
}

func idFunc(x []float64, y []float64) {
	copy(y, x)
}

func idDerivFunc(x []float64, y []float64) {
	one(y)
}

func idDeriv2Func(x []float64, y []float64) {
	zero(y)
}

func cloglogFunc(x []float64, y []float64) {
	for i, v := range x {
		y[i] = math.Log(-math.Log1p(-v))
	}
}

func cloglogDerivFunc(x []float64, y []float64) {
	for i, v := range x {
		y[i] = 1 / ((v - 1) * math.Log1p(-v))
	}
}

func cloglogDeriv2Func(x []float64, y []float64) {
	for i, v := range x {
		f := math.Log1p(-v)
		r := -1 / ((1 - v) * (1 - v) * f)
		y[i] = r * (1 + 1/f)
	}
}

func cloglogInvFunc(x []float64, y []float64) {
	for i, v := range x {
		y[i] = -math.Expm1(-math.Exp(v))
	}
}

func probitFunc(x []float64, y []float64) {
	for i, v := range x {
		y[i] = distuv.UnitNormal.Quantile(v)
	}
}

func probitInvFunc(x []float64, y []float64) {
	for i, v := range x {
		y[i] = distuv.UnitNormal.CDF(v)
	}
}

// The derivative of the probit link is 1/phi(q), q = Phi^{-1}(mu).
func probitDerivFunc(x []float64, y []float64) {
	for i, v := range x {
		q := distuv.UnitNormal.Quantile(v)
		y[i] = 1 / distuv.UnitNormal.Prob(q)
	}
}

func probitDeriv2Func(x []float64, y []float64) {
	for i, v := range x {
		q := distuv.UnitNormal.Quantile(v)
		d := distuv.UnitNormal.Prob(q)
		y[i] = q / (d * d)
	}
}
