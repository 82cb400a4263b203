// Package resolve performs MX record resolution for candidate domains.
package resolve

import (
	"context"
	"net"
	"sort"
	"time"

	"github.com/optimode/mailsift/internal/dnscache"
)

// LookupFunc is the raw MX lookup. Injectable for testability.
type LookupFunc func(ctx context.Context, domain string) ([]*net.MX, error)

// Options configures the resolver.
type Options struct {
	// Timeout is the maximum time for one MX lookup. Default: 5s
	Timeout time.Duration
	// CacheTTL enables a shared MX cache when positive. Resolution results
	// for a domain are reused until the TTL expires. Purely a performance
	// enhancement: verdicts are identical with caching off.
	CacheTTL time.Duration
	// Lookup overrides the MX lookup function (for testing).
	// When set, Timeout and CacheTTL are ignored.
	Lookup LookupFunc
}

func defaultOptions() Options {
	return Options{
		Timeout: 5 * time.Second,
	}
}

// MXResolver resolves MX records with a single attempt per call.
// Stateless apart from the optional cache; safe for concurrent use.
type MXResolver struct {
	lookup LookupFunc
}

// New creates an MXResolver. Optionally overrides the default Options.
func New(opts ...Options) *MXResolver {
	o := defaultOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Timeout == 0 {
		o.Timeout = defaultOptions().Timeout
	}

	if o.Lookup != nil {
		return &MXResolver{lookup: o.Lookup}
	}

	if o.CacheTTL > 0 {
		cache := dnscache.New(o.Timeout, o.CacheTTL)
		return &MXResolver{lookup: cache.LookupMX}
	}

	r := &net.Resolver{}
	timeout := o.Timeout
	return &MXResolver{
		lookup: func(ctx context.Context, domain string) ([]*net.MX, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			return r.LookupMX(ctx, domain)
		},
	}
}

// Resolve attempts MX resolution for the domain. Any resolution error
// (NXDOMAIN, timeout, malformed domain, resolver failure) yields ok=false
// and an empty record set: a recoverable, expected outcome. No retry is
// performed. Records are sorted by preference.
func (r *MXResolver) Resolve(ctx context.Context, domain string) ([]*net.MX, bool) {
	records, err := r.lookup(ctx, domain)
	if err != nil {
		return nil, false
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Pref < records[j].Pref
	})
	return records, true
}
