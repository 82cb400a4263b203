// Package types contains the shared types for mailsift.
// This package does not import anything from other mailsift packages
// to avoid circular imports.
package types

// Status is the overall verdict for one verified address.
type Status = string

const (
	StatusValid   Status = "valid"
	StatusInvalid Status = "invalid"
	StatusRisky   Status = "risky"
	StatusUnknown Status = "unknown"
)

// Result is the outcome of verifying a single address. It is immutable
// once produced; every per-address failure mode is encoded here rather
// than surfaced as an error.
type Result struct {
	Email        string `json:"email"`
	Status       Status `json:"status"`
	DNSValid     bool   `json:"dns_valid"`
	SMTPValid    bool   `json:"smtp_valid"`
	Disposable   bool   `json:"disposable"`
	FreeProvider bool   `json:"free_provider"`
	Domain       string `json:"domain"`
	Error        string `json:"error,omitempty"`
}

// Detail returns the human-readable explanation for the result,
// derived purely from the result fields.
func (r Result) Detail() string {
	switch r.Status {
	case StatusValid:
		return "Mailbox exists and is accepting mail."
	case StatusInvalid:
		if r.DNSValid {
			return "Mailbox does not exist."
		}
		return "Domain does not accept mail."
	case StatusRisky:
		if r.Disposable {
			return "Disposable email address detected."
		}
		return "This email may have a high bounce risk."
	default:
		return "Could not verify this email address."
	}
}

// Field is one column/value cell of an uploaded row.
type Field struct {
	Column string `json:"column"`
	Value  string `json:"value"`
}

// Record is one uploaded row in original column order. Records are
// produced by the caller's file parser; the engine only reads them.
type Record []Field

// Get returns the value for the given column and whether it exists.
func (r Record) Get(column string) (string, bool) {
	for _, f := range r {
		if f.Column == column {
			return f.Value, true
		}
	}
	return "", false
}

// Stats is the count breakdown of a result set.
type Stats struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
	Risky   int `json:"risky"`
	Unknown int `json:"unknown"`
}

// Tally folds a result slice into Stats. Statuses outside the three
// known non-unknown values count as unknown.
func Tally(results []Result) Stats {
	s := Stats{Total: len(results)}
	for _, r := range results {
		switch r.Status {
		case StatusValid:
			s.Valid++
		case StatusInvalid:
			s.Invalid++
		case StatusRisky:
			s.Risky++
		default:
			s.Unknown++
		}
	}
	return s
}
