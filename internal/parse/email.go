package parse

import (
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

// formatPattern is the deliverability-oriented format check: one or more
// non-space non-@ characters, an @, a domain with at least one dot.
// Addresses that fail it are rejected without any network activity.
var formatPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is the internal representation of a candidate address.
// The resolver and verifier receive this as parameter.
type Email struct {
	Raw          string // the original input
	Domain       string // the part after the last @, lower-cased
	LookupDomain string // ASCII/Punycode form of Domain, used for DNS
	Valid        bool   // false if Raw fails the format check
}

// NewEmail parses the given address string. If the format check fails,
// Valid=false, Domain is empty and Raw is always populated.
func NewEmail(raw string) Email {
	if !formatPattern.MatchString(raw) {
		return Email{Raw: raw, Valid: false}
	}

	domain := strings.ToLower(raw[strings.LastIndex(raw, "@")+1:])

	return Email{
		Raw:          raw,
		Domain:       domain,
		LookupDomain: lookupDomain(domain),
		Valid:        true,
	}
}

// lookupDomain converts an internationalized domain to its Punycode form
// for DNS resolution. Pure ASCII domains pass through unchanged, and so
// does anything IDNA2008 rejects: the subsequent MX lookup fails on its
// own and the address resolves to an invalid verdict.
func lookupDomain(domain string) string {
	hasNonASCII := false
	for _, r := range domain {
		if r > 127 {
			hasNonASCII = true
			break
		}
	}
	if !hasNonASCII {
		return domain
	}

	ascii, err := idna.Lookup.ToASCII(domain)
	if err != nil {
		return domain
	}
	return ascii
}
