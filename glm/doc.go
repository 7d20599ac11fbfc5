/*
Package glm fits generalized linear models (GLM) by iteratively
reweighted least squares (IRLS) with step-halving.

A model is built either directly from a response vector and a design
matrix with NewModel, or from the named columns of a
statmodel.Dataset using the GLM builder:

	model, err := glm.NewGLM(data, "y").
		Family(glm.NewFamily(glm.PoissonFamily)).
		Offset("logexposure").
		Done()
	if err != nil {
		...
	}
	rslt, err := model.Fit(glm.DefaultFitConfig())

The Bernoulli, binomial, Poisson and Gaussian families are supported.
Each family has a canonical link, which is used when no link is given,
and the Bernoulli, Poisson and Gaussian families accept some
non-canonical links as well.  An optional L2 (ridge) penalty is
applied to all coefficients.

Every accepted IRLS update strictly increases the penalized
log-likelihood.  Fit returns an error wrapping statmodel.ErrSingular,
statmodel.ErrNotConverged or statmodel.ErrStepHalving when the fit
fails; in the latter two cases the results at the best coefficients
found are returned too.

For unpenalized fits, a Profiler gives profile likelihood confidence
intervals for the coefficients.
*/
package glm
