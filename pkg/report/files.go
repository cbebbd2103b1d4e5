package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
)

// File names written by WriteFiles.
const (
	PnLFile      = "pnl.csv"
	CashFlowFile = "cashflow.csv"
	SummaryFile  = "summary.csv"
	JSONFile     = "report.json"
	HTMLFile     = "report.html"
)

// WriteFiles exports r into dir, creating it if needed. Each file is
// attempted even when an earlier one fails; all failures are returned
// together. The paths of successfully written files are returned.
func WriteFiles(dir string, r *Report, withHTML bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("report: create %s: %w", dir, err)
	}

	jobs := []job{
		{PnLFile, func(w io.Writer) error { return WritePnLCSV(w, r.PnL) }},
		{CashFlowFile, func(w io.Writer) error { return WriteCashFlowCSV(w, r.CashFlow) }},
		{SummaryFile, func(w io.Writer) error { return WriteSummaryCSV(w, r.Summary) }},
		{JSONFile, func(w io.Writer) error { return WriteJSON(w, r) }},
	}
	if withHTML {
		jobs = append(jobs, job{HTMLFile, func(w io.Writer) error { return WriteHTML(w, r) }})
	}

	var (
		result  *multierror.Error
		written []string
	)
	for _, j := range jobs {
		path := filepath.Join(dir, j.name)
		if err := writeFile(path, j.write); err != nil {
			result = multierror.Append(result, fmt.Errorf("report: %s: %w", j.name, err))
			continue
		}
		written = append(written, path)
	}
	return written, result.ErrorOrNil()
}

type job struct {
	name  string
	write func(io.Writer) error
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
