package glm

import (
	"fmt"
	"math"
	"strings"

	"github.com/kshedden/glmfit/statmodel"
)

// FamilyType is the type of GLM family used in a model.
type FamilyType uint8

// BernoulliFamily, ... are families for a GLM.
const (
	BernoulliFamily FamilyType = iota
	BinomialFamily
	PoissonFamily
	GaussianFamily
)

// LogLikeFunc evaluates and returns the log-likelihood for a GLM in
// terms of the mean.  The arguments are the data, the mean values, the
// weights, and the scale parameter.  Terms that do not depend on the
// mean are omitted.  The weights may be nil in which case all weights
// are taken to be 1.
type LogLikeFunc func(y, mn, wt []float64, scale float64) float64

// CanonLogLikeFunc evaluates the log-likelihood at unit scale in terms
// of the natural parameter.  It must remain finite for natural
// parameters of any magnitude.
type CanonLogLikeFunc func(y, eta, wt []float64) float64

// LogLikeConstFunc returns the terms of the log-likelihood that do
// not depend on the mean.
type LogLikeConstFunc func(y, wt []float64, scale float64) float64

// Family represents a generalized linear model family.
type Family struct {

	// The name of the family
	Name string

	// The numeric code for the family
	TypeCode FamilyType

	// The log-likelihood function for the family, in terms of the mean
	LogLike LogLikeFunc

	// The log-likelihood in terms of the natural parameter, used
	// with canonical links.  May be nil.
	CanonLogLike CanonLogLikeFunc

	// The terms omitted from LogLike and CanonLogLike
	LogLikeConst LogLikeConstFunc

	// The variance function of the family
	Variance *Variance

	// True if the scale parameter is fixed at 1.
	fixedScale bool

	// The valid links for this family.  The first listed link
	// is the canonical link.
	validLinks []LinkType

	// Number of trials, binomial family only
	trials float64
}

// NewFamily returns a family object corresponding to the given type.
// Binomial families carry a trial count and are created with
// NewBinomialFamily.
func NewFamily(fam FamilyType) *Family {

	switch fam {
	case BernoulliFamily:
		return &bernoulli
	case BinomialFamily:
		panic("glm: binomial families must be created with NewBinomialFamily")
	case PoissonFamily:
		return &poisson
	case GaussianFamily:
		return &gaussian
	default:
		msg := fmt.Sprintf("Unknown family: %v\n", fam)
		panic(msg)
	}
}

// ParseFamily returns the family type with the given case-insensitive
// name.
func ParseFamily(name string) (FamilyType, error) {
	switch strings.ToLower(name) {
	case "bernoulli", "logistic":
		return BernoulliFamily, nil
	case "binomial":
		return BinomialFamily, nil
	case "poisson":
		return PoissonFamily, nil
	case "gaussian":
		return GaussianFamily, nil
	}
	return 0, statmodel.NewConfigError("ParseFamily", "family", "unknown family '%s'", name)
}

// NewBinomialFamily returns the family of counts of successes out of
// a fixed number of trials.  Only the canonical (logit) link is
// supported.
func NewBinomialFamily(trials int) (*Family, error) {

	if trials < 1 {
		return nil, statmodel.NewConfigError("NewBinomialFamily", "trials",
			"must be positive, got %d", trials)
	}
	if trials > math.MaxUint16 {
		return nil, statmodel.NewConfigError("NewBinomialFamily", "trials",
			"must be at most %d, got %d", math.MaxUint16, trials)
	}

	n := float64(trials)

	return &Family{
		Name:         "Binomial",
		TypeCode:     BinomialFamily,
		LogLike:      binomLogLike(n),
		CanonLogLike: binomCanonLogLike(n),
		LogLikeConst: binomLogLikeConst(n),
		Variance:     newBinomVariance(n),
		fixedScale:   true,
		validLinks:   []LinkType{LogitLink},
		trials:       n,
	}, nil
}

var bernoulli = Family{
	Name:         "Bernoulli",
	TypeCode:     BernoulliFamily,
	LogLike:      binomLogLike(1),
	CanonLogLike: binomCanonLogLike(1),
	LogLikeConst: binomLogLikeConst(1),
	Variance:     newBinomVariance(1),
	fixedScale:   true,
	validLinks:   []LinkType{LogitLink, ProbitLink, CloglogLink, LogLink},
	trials:       1,
}

var poisson = Family{
	Name:         "Poisson",
	TypeCode:     PoissonFamily,
	LogLike:      poissonLogLike,
	CanonLogLike: poissonCanonLogLike,
	LogLikeConst: poissonLogLikeConst,
	Variance:     poissonVariance,
	fixedScale:   true,
	validLinks:   []LinkType{LogLink, IdentityLink},
}

var gaussian = Family{
	Name:         "Gaussian",
	TypeCode:     GaussianFamily,
	LogLike:      gaussianLogLike,
	CanonLogLike: gaussianCanonLogLike,
	LogLikeConst: gaussianLogLikeConst,
	Variance:     gaussianVariance,
	validLinks:   []LinkType{IdentityLink, LogLink},
}

// Trials returns the number of trials for binomial and Bernoulli
// families, and 0 for other families.
func (fam *Family) Trials() float64 {
	return fam.trials
}

// CanonicalLink returns the canonical link of the family.
func (fam *Family) CanonicalLink() *Link {
	if fam.TypeCode == BinomialFamily && fam.trials != 1 {
		return newLogitLink(fam.trials)
	}
	return NewLink(fam.validLinks[0])
}

// IsValidLink returns true or false based on whether the link is
// valid for the family.
func (fam *Family) IsValidLink(link *Link) bool {

	if link.TypeCode == LogitLink && link.Trials() != math.Max(fam.trials, 1) {
		return false
	}

	for _, q := range fam.validLinks {
		if link.TypeCode == q {
			return true
		}
	}

	return false
}

// CheckResponse returns an error if any value of y is outside the
// domain of the family.
func (fam *Family) CheckResponse(y []float64) error {

	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return statmodel.NewConfigError(fam.Name, "response", "value %v at position %d is not finite", v, i)
		}
		switch fam.TypeCode {
		case BernoulliFamily, BinomialFamily:
			if v < 0 || v > fam.trials || v != math.Floor(v) {
				return statmodel.NewConfigError(fam.Name, "response",
					"value %v at position %d is not a count in [0, %v]", v, i, fam.trials)
			}
		case PoissonFamily:
			if v < 0 {
				return statmodel.NewConfigError(fam.Name, "response",
					"value %v at position %d is negative", v, i)
			}
		}
	}

	return nil
}

// BoolResponse converts binary observations to the 0/1 coding used by
// the Bernoulli family.
func BoolResponse(y []bool) []float64 {
	z := make([]float64, len(y))
	for i, v := range y {
		if v {
			z[i] = 1
		}
	}
	return z
}

// CountResponse converts counts of successes to the coding used by
// the binomial and Poisson families.
func CountResponse(y []uint16) []float64 {
	z := make([]float64, len(y))
	for i, v := range y {
		z[i] = float64(v)
	}
	return z
}

// xlogy returns x*log(y), taking the value 0 when x is 0.
func xlogy(x, y float64) float64 {
	if x == 0 {
		return 0
	}
	return x * math.Log(y)
}

// log1pexp returns log(1 + exp(x)) without overflow.
func log1pexp(x float64) float64 {
	if x > 0 {
		return x + math.Log1p(math.Exp(-x))
	}
	return math.Log1p(math.Exp(x))
}

func weight(wt []float64, i int) float64 {
	if wt == nil {
		return 1
	}
	return wt[i]
}

func binomLogLike(n float64) LogLikeFunc {
	return func(y, mn, wt []float64, scale float64) float64 {
		var ll float64
		for i := range y {
			p := mn[i] / n
			ll += weight(wt, i) * (xlogy(y[i], p) + xlogy(n-y[i], 1-p))
		}
		return ll
	}
}

// binomCanonLogLike evaluates y*eta - n*log(1 + exp(eta)), branching
// on the sign of eta so that exp never overflows.
func binomCanonLogLike(n float64) CanonLogLikeFunc {
	return func(y, eta, wt []float64) float64 {
		var ll float64
		for i := range y {
			ll += weight(wt, i) * (y[i]*eta[i] - n*log1pexp(eta[i]))
		}
		return ll
	}
}

func binomLogLikeConst(n float64) LogLikeConstFunc {
	return func(y, wt []float64, scale float64) float64 {
		if n == 1 {
			return 0
		}
		var c float64
		g0 := lgamma(n + 1)
		for i := range y {
			c += weight(wt, i) * (g0 - lgamma(y[i]+1) - lgamma(n-y[i]+1))
		}
		return c
	}
}

func poissonLogLike(y, mn, wt []float64, scale float64) float64 {
	var ll float64
	for i := range y {
		ll += weight(wt, i) * (xlogy(y[i], mn[i]) - mn[i])
	}
	return ll
}

func poissonCanonLogLike(y, eta, wt []float64) float64 {
	var ll float64
	for i := range y {
		ll += weight(wt, i) * (y[i]*eta[i] - math.Exp(eta[i]))
	}
	return ll
}

func poissonLogLikeConst(y, wt []float64, scale float64) float64 {
	var c float64
	for i := range y {
		c -= weight(wt, i) * lgamma(y[i]+1)
	}
	return c
}

func gaussianLogLike(y, mn, wt []float64, scale float64) float64 {
	var ll float64
	for i := range y {
		r := y[i] - mn[i]
		ll -= weight(wt, i) * r * r / (2 * scale)
	}
	return ll
}

func gaussianCanonLogLike(y, eta, wt []float64) float64 {
	return gaussianLogLike(y, eta, wt, 1)
}

func gaussianLogLikeConst(y, wt []float64, scale float64) float64 {
	var ws float64
	for i := range y {
		ws += weight(wt, i)
	}
	return -ws * math.Log(2*math.Pi*scale) / 2
}

func lgamma(x float64) float64 {
	u, s := math.Lgamma(x)
	if s != 1 {
		panic("lgamma")
	}
	return u
}
