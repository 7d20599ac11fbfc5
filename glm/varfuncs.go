package glm

// Variance represents a GLM variance function V(mu) and its
// derivative with respect to mu.
type Variance struct {
	Name  string
	Var   VecFunc
	Deriv VecFunc
}

// poissonVariance is V(mu) = mu.
var poissonVariance = &Variance{
	Name:  "Identity",
	Var:   func(mn, v []float64) { copy(v, mn) },
	Deriv: func(_, v []float64) { one(v) },
}

// gaussianVariance is V(mu) = 1.
var gaussianVariance = &Variance{
	Name:  "Constant",
	Var:   func(_, v []float64) { one(v) },
	Deriv: func(_, v []float64) { zero(v) },
}

// newBinomVariance returns the variance function of a count out of n
// trials with mean mu, which is mu * (n - mu) / n.
func newBinomVariance(n float64) *Variance {

	vaf := func(mn []float64, v []float64) {
		for i, m := range mn {
			v[i] = m * (n - m) / n
		}
	}

	vad := func(mn []float64, v []float64) {
		for i, m := range mn {
			v[i] = 1 - 2*m/n
		}
	}

	return &Variance{
		Name:  "Binomial",
		Var:   vaf,
		Deriv: vad,
	}
}
