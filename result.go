package mailsift

import "github.com/optimode/mailsift/types"

// ReconciledResult pairs a verification result with the uploaded row it
// came from. Record is empty when no source row matched.
type ReconciledResult struct {
	types.Result
	Record types.Record `json:"record,omitempty"`
}

// FilterByStatus returns the results whose status is one of the given
// statuses. With no statuses, everything is returned.
func FilterByStatus(results []ReconciledResult, statuses ...types.Status) []ReconciledResult {
	if len(statuses) == 0 {
		return results
	}
	keep := make(map[types.Status]struct{}, len(statuses))
	for _, s := range statuses {
		keep[s] = struct{}{}
	}
	out := make([]ReconciledResult, 0, len(results))
	for _, r := range results {
		if _, ok := keep[r.Status]; ok {
			out = append(out, r)
		}
	}
	return out
}
