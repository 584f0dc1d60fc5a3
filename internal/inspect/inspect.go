// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inspect streams tabular assessment data and prints a bounded
// preview of the fields the data team checks before a load.
package inspect

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fredrickburns/sas-tools/pkg/types"
)

// DefaultColumns are the MAAP assessment fields previewed when no columns
// are configured: the student identifier, two operational codes, and the
// scale score.
var DefaultColumns = []string{"MSIS", "D1OP", "DTOP", "SCALE_SCORE"}

// DefaultRows bounds the preview when no row count is configured.
const DefaultRows = 5

// Report holds the outcome of a preview run.
type Report struct {
	// Total is the number of data rows in the file.
	Total int

	// Previewed is the number of preview lines printed.
	Previewed int
}

// label shortens a column name for display. SCALE_SCORE prints as SCALE,
// the form the data team's checklists use.
func label(col string) string {
	if col == "SCALE_SCORE" {
		return "SCALE"
	}
	return col
}

// Preview streams the CSV named by cfg, printing the selected fields for
// the first cfg.Rows data rows and a final line with the total row count.
// Every data row is counted regardless of position. A requested column
// missing from the header is an error.
func Preview(cfg types.InspectConfig, w io.Writer) (Report, error) {
	f, err := os.Open(cfg.DataFile)
	if err != nil {
		return Report{}, fmt.Errorf("opening %s: %w", cfg.DataFile, err)
	}
	defer f.Close()

	r, err := DecodeReader(f, cfg.Encoding)
	if err != nil {
		return Report{}, err
	}

	return preview(r, cfg, w)
}

func preview(r io.Reader, cfg types.InspectConfig, w io.Writer) (Report, error) {
	columns := cfg.Columns
	if len(columns) == 0 {
		columns = DefaultColumns
	}
	rows := cfg.Rows
	if rows <= 0 {
		rows = DefaultRows
	}

	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		// No header at all: an empty dataset, not a failure.
		fmt.Fprintf(w, "Total rows: %d\n", 0)
		return Report{}, nil
	}
	if err != nil {
		return Report{}, fmt.Errorf("reading header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		idx[strings.TrimSpace(h)] = i
	}

	colIx := make([]int, len(columns))
	for i, c := range columns {
		src, ok := idx[c]
		if !ok {
			return Report{}, fmt.Errorf("column %q not present in header", c)
		}
		colIx[i] = src
	}

	var report Report
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return report, fmt.Errorf("reading row %d: %w", report.Total+1, err)
		}

		if report.Total < rows {
			parts := make([]string, len(columns))
			for i, c := range columns {
				v := ""
				if colIx[i] < len(rec) {
					v = strings.TrimSpace(rec[colIx[i]])
				}
				parts[i] = fmt.Sprintf("%s: %s", label(c), v)
			}
			fmt.Fprintln(w, strings.Join(parts, ", "))
			report.Previewed++
		}
		report.Total++
	}

	fmt.Fprintf(w, "Total rows: %d\n", report.Total)
	return report, nil
}
