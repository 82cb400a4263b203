package mailsift

import (
	"encoding/csv"
	"io"

	"github.com/optimode/mailsift/types"
)

// ExportOptions configures report rendering.
type ExportOptions struct {
	// Delimiter between fields. Default: ','
	Delimiter rune
	// Statuses keeps only results with one of these statuses.
	// Empty means export everything.
	Statuses []types.Status
}

// WriteReport renders the (optionally filtered) reconciled result set as
// delimited text. The header row is the first-seen-order union of all
// record column names across the exported rows, followed by Status and
// Details. Each data row carries the original cell values (empty for
// columns the row lacks), the status, and the detail string derived from
// the result. Values containing the delimiter or a quote character are
// quoted with quotes doubled.
//
// The output is a value for the caller to persist; no network or disk
// access happens here.
func WriteReport(w io.Writer, results []ReconciledResult, opts ...ExportOptions) error {
	o := ExportOptions{}
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Delimiter == 0 {
		o.Delimiter = ','
	}

	rows := FilterByStatus(results, o.Statuses...)
	columns := unionColumns(rows)

	cw := csv.NewWriter(w)
	cw.Comma = o.Delimiter

	header := append(append([]string{}, columns...), "Status", "Details")
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		line := make([]string, 0, len(columns)+2)
		for _, col := range columns {
			value, _ := r.Record.Get(col)
			line = append(line, value)
		}
		line = append(line, r.Status, r.Detail())
		if err := cw.Write(line); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// unionColumns collects the distinct record column names across the rows
// in first-seen order.
func unionColumns(rows []ReconciledResult) []string {
	var columns []string
	seen := make(map[string]struct{})
	for _, r := range rows {
		for _, f := range r.Record {
			if _, ok := seen[f.Column]; !ok {
				seen[f.Column] = struct{}{}
				columns = append(columns, f.Column)
			}
		}
	}
	return columns
}
