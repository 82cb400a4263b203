// Package mailsift checks whether email addresses are deliverable before
// they are added to a mailing list, for a single address or for an
// uploaded list of up to several thousand.
//
// Basic usage:
//
//	result, err := mailsift.New().Verify(ctx, "user@example.com")
//
// Bulk pipeline with progress reporting:
//
//	report, err := mailsift.New().VerifyList(ctx, addresses, mailsift.BatchOptions{
//	    Progress: func(processed, total int) {
//	        fmt.Printf("%d/%d\n", processed, total)
//	    },
//	})
//
// Every verification is transient and in-memory: no address or result is
// ever persisted, and nothing outlives the call that produced it.
// SMTP validity is an explicit approximation derived from DNS success;
// no mailbox probing is performed.
package mailsift

import "github.com/optimode/mailsift/types"

// Result is a re-export from the types package so that consumers
// don't need to import the types package directly.
type Result = types.Result

// Status is a re-export.
type Status = types.Status

// Stats is a re-export.
type Stats = types.Stats

// Record is a re-export.
type Record = types.Record

// Field is a re-export.
type Field = types.Field

// Status constants re-exported.
const (
	StatusValid   = types.StatusValid
	StatusInvalid = types.StatusInvalid
	StatusRisky   = types.StatusRisky
	StatusUnknown = types.StatusUnknown
)

// Tally is a re-export of the stats fold.
func Tally(results []Result) Stats {
	return types.Tally(results)
}
