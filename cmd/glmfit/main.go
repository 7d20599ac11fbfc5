// Command glmfit fits generalized linear models to the columns of a
// CSV file.
//
// One model is fit for each response named with -y, using the same
// family, link and covariates.  The fits run concurrently.  For
// example:
//
//	glmfit -data claims.csv.gz -y nclaim -family poisson -offset logexp -x age,urban
//
// prints a coefficient table for a Poisson regression of nclaim on
// age and urban with an intercept.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/kshedden/glmfit/glm"
	"github.com/kshedden/glmfit/statmodel"
)

type config struct {
	data      string
	ynames    []string
	xnames    []string
	family    string
	trials    int
	link      string
	offset    string
	weight    string
	l2wgt     float64
	tol       float64
	maxIter   int
	maxHalve  int
	intercept bool
	trace     string
	verbose   bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {

	fs := flag.NewFlagSet("glmfit", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := glm.DefaultFitConfig()
	cfg := &config{}
	var ynames, xnames string

	fs.StringVar(&cfg.data, "data", "", "CSV file with a header row, optionally gzip compressed (.gz)")
	fs.StringVar(&ynames, "y", "", "comma-separated response columns, one model is fit for each")
	fs.StringVar(&xnames, "x", "", "comma-separated covariate columns (default all other columns)")
	fs.StringVar(&cfg.family, "family", "gaussian", "bernoulli, binomial, poisson or gaussian")
	fs.IntVar(&cfg.trials, "trials", 1, "number of trials for the binomial family")
	fs.StringVar(&cfg.link, "link", "", "link function (default canonical): logit, probit, cloglog, log or identity")
	fs.StringVar(&cfg.offset, "offset", "", "offset column")
	fs.StringVar(&cfg.weight, "weight", "", "frequency weight column")
	fs.Float64Var(&cfg.l2wgt, "l2", 0, "L2 (ridge) penalty weight")
	fs.Float64Var(&cfg.tol, "tol", def.Tol, "relative convergence tolerance for the objective")
	fs.IntVar(&cfg.maxIter, "maxiter", def.MaxIter, "maximum number of IRLS iterations")
	fs.IntVar(&cfg.maxHalve, "maxhalve", def.MaxHalvings, "maximum number of step halvings per iteration")
	fs.BoolVar(&cfg.intercept, "intercept", true, "include an intercept")
	fs.StringVar(&cfg.trace, "trace", "", "write a plot of the objective function history to this PNG file")
	fs.BoolVar(&cfg.verbose, "v", false, "log each IRLS iteration")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.data == "" {
		return nil, errors.New("-data is required")
	}
	cfg.ynames = splitNames(ynames)
	if len(cfg.ynames) == 0 {
		return nil, errors.New("-y is required")
	}
	cfg.xnames = splitNames(xnames)

	return cfg, nil
}

func splitNames(s string) []string {
	var names []string
	for _, na := range strings.Split(s, ",") {
		if na = strings.TrimSpace(na); na != "" {
			names = append(names, na)
		}
	}
	return names
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	// Fits log from several goroutines.
	out := zerolog.ConsoleWriter{Out: zerolog.SyncWriter(w), NoColor: true}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// familyLink returns the family and link selected on the command line.  A
// nil link selects the canonical link of the family.
func (cfg *config) familyLink() (*glm.Family, *glm.Link, error) {

	ft, err := glm.ParseFamily(cfg.family)
	if err != nil {
		return nil, nil, err
	}

	var fam *glm.Family
	if ft == glm.BinomialFamily {
		fam, err = glm.NewBinomialFamily(cfg.trials)
		if err != nil {
			return nil, nil, err
		}
	} else {
		fam = glm.NewFamily(ft)
	}

	if cfg.link == "" {
		return fam, nil, nil
	}

	lt, err := glm.ParseLink(cfg.link)
	if err != nil {
		return nil, nil, err
	}

	link := glm.NewLink(lt)
	if lt == glm.LogitLink {
		link = fam.CanonicalLink()
	}

	return fam, link, nil
}

// columns returns the names of all columns that are read from the data
// file, and the covariate names.
func (cfg *config) columns(header []string) (keep, xnames []string) {

	special := make(map[string]bool)
	for _, na := range cfg.ynames {
		special[na] = true
	}
	if cfg.offset != "" {
		special[cfg.offset] = true
	}
	if cfg.weight != "" {
		special[cfg.weight] = true
	}

	xnames = cfg.xnames
	if xnames == nil {
		for _, na := range header {
			if !special[na] {
				xnames = append(xnames, na)
			}
		}
	}

	keep = append(keep, cfg.ynames...)
	keep = append(keep, xnames...)
	for _, na := range []string{cfg.offset, cfg.weight} {
		if na != "" {
			keep = append(keep, na)
		}
	}

	return keep, xnames
}

type fitResult struct {
	yname string
	rslt  *glm.GLMResults
	err   error
}

// fitAll fits one model per response concurrently.  The results are in
// the order of the responses.
func fitAll(cfg *config, ds statmodel.Dataset, xnames []string, log zerolog.Logger) ([]fitResult, error) {

	fam, link, err := cfg.familyLink()
	if err != nil {
		return nil, err
	}

	fitcfg := glm.FitConfig{
		Tol:         cfg.tol,
		MaxIter:     cfg.maxIter,
		MaxHalvings: cfg.maxHalve,
	}

	fits := make([]fitResult, len(cfg.ynames))
	var wg sync.WaitGroup
	for i, yname := range cfg.ynames {
		wg.Add(1)
		go func(i int, yname string) {
			defer wg.Done()

			fits[i].yname = yname
			b := glm.NewGLM(ds, yname).
				Family(fam).
				Link(link).
				Covariates(xnames...).
				L2Weight(cfg.l2wgt).
				Log(log.With().Str("response", yname).Logger())
			if cfg.offset != "" {
				b = b.Offset(cfg.offset)
			}
			if cfg.weight != "" {
				b = b.Weight(cfg.weight)
			}

			model, err := b.Done()
			if err != nil {
				fits[i].err = errors.Wrapf(err, "model for %s", yname)
				return
			}

			fits[i].rslt, fits[i].err = model.Fit(fitcfg)
			if fits[i].err != nil {
				fits[i].err = errors.Wrapf(fits[i].err, "fitting %s", yname)
			}
		}(i, yname)
	}
	wg.Wait()

	return fits, nil
}

// writeResults prints a coefficient table for each fit.  Fits that
// stopped early are printed along with the reason.
func writeResults(w io.Writer, cfg *config, fits []fitResult) {

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	defer tw.Flush()

	for k, f := range fits {
		if k > 0 {
			fmt.Fprintln(tw)
		}

		if f.rslt == nil {
			fmt.Fprintf(tw, "%s: %v\n", f.yname, f.err)
			continue
		}

		m := f.rslt.Model().(*glm.Model)
		fmt.Fprintf(tw, "Response:\t%s\n", f.yname)
		fmt.Fprintf(tw, "Family:\t%s\n", m.Family().Name)
		fmt.Fprintf(tw, "Link:\t%s\n", m.Link().Name)
		fmt.Fprintf(tw, "Observations:\t%d\n", m.NumObs())
		fmt.Fprintf(tw, "Iterations:\t%d\n", f.rslt.NumIter())
		fmt.Fprintf(tw, "Converged:\t%t\n", f.rslt.Converged())
		fmt.Fprintf(tw, "Log-likelihood:\t%.4f\n", f.rslt.LogLike())
		fmt.Fprintf(tw, "Scale:\t%.4f\n", f.rslt.Scale())
		if cfg.l2wgt > 0 {
			fmt.Fprintf(tw, "L2 weight:\t%g\n", cfg.l2wgt)
		}
		if f.err != nil {
			fmt.Fprintf(tw, "Warning:\t%v\n", f.err)
		}
		fmt.Fprintln(tw)

		se := f.rslt.StdErr()
		if se == nil {
			fmt.Fprintf(tw, "Variable\tCoefficient\n")
			for j, na := range f.rslt.Names() {
				fmt.Fprintf(tw, "%s\t%.6f\n", na, f.rslt.Params()[j])
			}
			continue
		}

		z := f.rslt.ZScores()
		pv := f.rslt.PValues()
		fmt.Fprintf(tw, "Variable\tCoefficient\tSE\tZ\tP\n")
		for j, na := range f.rslt.Names() {
			fmt.Fprintf(tw, "%s\t%.6f\t%.6f\t%.2f\t%.4f\n", na, f.rslt.Params()[j], se[j], z[j], pv[j])
		}
	}
}

func run(cfg *config, stdout io.Writer, log zerolog.Logger) error {

	header, err := readHeader(cfg.data)
	if err != nil {
		return err
	}
	keep, xnames := cfg.columns(header)

	ds, err := readData(cfg.data, keep, log)
	if err != nil {
		return err
	}
	if cfg.intercept && ds.Pos(interceptName) == -1 {
		if ds, err = addIntercept(ds); err != nil {
			return err
		}
		xnames = append([]string{interceptName}, xnames...)
	}

	fits, err := fitAll(cfg, ds, xnames, log)
	if err != nil {
		return err
	}

	writeResults(stdout, cfg, fits)

	if cfg.trace != "" {
		if err := writeTrace(cfg.trace, fits); err != nil {
			return err
		}
	}

	var nfail int
	for _, f := range fits {
		switch {
		case f.err == nil:
		case errors.Is(f.err, statmodel.ErrNotConverged), errors.Is(f.err, statmodel.ErrStepHalving):
			log.Warn().Err(f.err).Msg("fit stopped early")
		default:
			log.Error().Err(f.err).Msg("fit failed")
			nfail++
		}
	}
	if nfail > 0 {
		return errors.Newf("%d of %d fits failed", nfail, len(fits))
	}

	return nil
}

func main() {

	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := newLogger(os.Stderr, cfg.verbose)
	if err := run(cfg, os.Stdout, log); err != nil {
		log.Error().Err(err).Msg("glmfit")
		os.Exit(1)
	}
}
