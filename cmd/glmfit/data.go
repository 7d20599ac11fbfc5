package main

import (
	"compress/gzip"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/kshedden/glmfit/statmodel"
)

// interceptName is the name of the column of ones added by -intercept.
const interceptName = "icept"

// openData opens a data file, decompressing it if the name has a .gz
// suffix.
func openData(fname string) (io.ReadCloser, error) {

	fid, err := os.Open(fname)
	if err != nil {
		return nil, errors.Wrap(err, "opening data")
	}

	if !strings.HasSuffix(fname, ".gz") {
		return fid, nil
	}

	gid, err := gzip.NewReader(fid)
	if err != nil {
		fid.Close()
		return nil, errors.Wrapf(err, "reading %s", fname)
	}

	return &gzipFile{Reader: gid, fid: fid}, nil
}

type gzipFile struct {
	*gzip.Reader
	fid *os.File
}

func (g *gzipFile) Close() error {
	err := g.Reader.Close()
	if cerr := g.fid.Close(); err == nil {
		err = cerr
	}
	return err
}

// readHeader returns the column names from the first row of a data
// file.
func readHeader(fname string) ([]string, error) {

	rdr, err := openData(fname)
	if err != nil {
		return nil, err
	}
	defer rdr.Close()

	cr := csv.NewReader(rdr)
	cr.TrimLeadingSpace = true
	head, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(err, "reading header")
	}
	for j := range head {
		head[j] = strings.TrimSpace(head[j])
	}

	return head, nil
}

// readData reads a CSV file with a header row into a Dataset.  Files
// with a .gz suffix are decompressed.  Rows with an empty, NA or
// non-numeric value in any of the columns in keep are dropped; other
// columns are not read.
func readData(fname string, keep []string, log zerolog.Logger) (statmodel.Dataset, error) {

	rdr, err := openData(fname)
	if err != nil {
		return statmodel.Dataset{}, err
	}
	defer rdr.Close()

	return parseCSV(rdr, keep, log)
}

func parseCSV(rdr io.Reader, keep []string, log zerolog.Logger) (statmodel.Dataset, error) {

	cr := csv.NewReader(rdr)
	cr.TrimLeadingSpace = true

	head, err := cr.Read()
	if err != nil {
		return statmodel.Dataset{}, errors.Wrap(err, "reading header")
	}

	pos := make(map[string]int)
	for j, na := range head {
		pos[strings.TrimSpace(na)] = j
	}

	cols := make([]int, len(keep))
	for j, na := range keep {
		k, ok := pos[na]
		if !ok {
			return statmodel.Dataset{}, errors.Newf("column '%s' not found in header", na)
		}
		cols[j] = k
	}

	data := make([][]float64, len(keep))
	row := make([]float64, len(keep))
	var line, dropped int
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return statmodel.Dataset{}, errors.Wrapf(err, "reading line %d", line+1)
		}

		ok := true
		for j, k := range cols {
			v, err := parseValue(rec[k])
			if err != nil {
				ok = false
				break
			}
			row[j] = v
		}
		if !ok {
			dropped++
			continue
		}

		for j := range data {
			data[j] = append(data[j], row[j])
		}
	}

	if dropped > 0 {
		log.Info().Int("dropped", dropped).Int("kept", line-dropped).Msg("dropped incomplete rows")
	}
	if line == dropped {
		return statmodel.Dataset{}, errors.New("no complete rows")
	}

	return statmodel.NewDataset(data, keep)
}

func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "NA" {
		return 0, errors.New("missing")
	}
	return strconv.ParseFloat(s, 64)
}

// addIntercept returns a Dataset with a leading column of ones.
func addIntercept(ds statmodel.Dataset) (statmodel.Dataset, error) {

	one := make([]float64, ds.NumObs())
	for i := range one {
		one[i] = 1
	}

	data := append([][]float64{one}, ds.Data()...)
	names := append([]string{interceptName}, ds.Names()...)

	return statmodel.NewDataset(data, names)
}
