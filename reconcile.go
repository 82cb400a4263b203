package mailsift

import (
	"strings"

	"github.com/optimode/mailsift/types"
)

// Reconcile re-attaches each verification result to the uploaded row it
// originated from. A row matches when any of its cell values contains the
// result's address, case-insensitively; the first matching row in
// original order wins and no further rows are inspected. Results with no
// matching row get an empty Record.
//
// Matching is substring containment, not equality, so a cell that embeds
// one address inside another string can be mis-attributed. That mirrors
// how uploads were reconciled historically; see DESIGN.md before
// tightening it.
func Reconcile(results []types.Result, rows []types.Record) []ReconciledResult {
	out := make([]ReconciledResult, len(results))
	for i, result := range results {
		out[i] = ReconciledResult{
			Result: result,
			Record: findRow(result.Email, rows),
		}
	}
	return out
}

func findRow(email string, rows []types.Record) types.Record {
	needle := strings.ToLower(email)
	for _, row := range rows {
		for _, field := range row {
			if strings.Contains(strings.ToLower(field.Value), needle) {
				return row
			}
		}
	}
	return types.Record{}
}
