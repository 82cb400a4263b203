package mailsift

import (
	"context"
	"sync"

	"github.com/optimode/mailsift/internal/domainset"
	"github.com/optimode/mailsift/internal/parse"
	"github.com/optimode/mailsift/resolve"
	"github.com/optimode/mailsift/types"
)

// formatErrorDetail marks results that failed the format check.
const formatErrorDetail = "Invalid email format"

// Verifier is the main fluent builder struct.
// Instantiate with the New() function. A Verifier is safe for concurrent
// use: the classification sets are read-only after construction and the
// resolver is stateless.
type Verifier struct {
	sets     *domainset.Sets
	resolver *resolve.MXResolver
	err      error // configuration error, returned on Verify()
}

// New creates a Verifier with the embedded classification lists and a
// plain uncached resolver.
func New() *Verifier {
	return &Verifier{
		sets:     domainset.Default(),
		resolver: resolve.New(),
	}
}

// WithLists replaces the classification sets.
func (v *Verifier) WithLists(opts ListOptions) *Verifier {
	sets, err := opts.build()
	if err != nil {
		v.err = err
		return v
	}
	v.sets = sets
	return v
}

// WithResolver replaces the MX resolver configuration.
func (v *Verifier) WithResolver(opts ResolverOptions) *Verifier {
	v.resolver = resolve.New(resolve.Options{
		Timeout:  opts.Timeout,
		CacheTTL: opts.CacheTTL,
		Lookup:   opts.Lookup,
	})
	return v
}

// Err reports any configuration error accumulated by the builder, so a
// daemon can fail fast at startup instead of on the first verification.
func (v *Verifier) Err() error {
	return v.err
}

// Verify checks a single address and returns exactly one Result. Every
// per-address failure mode (bad format, DNS failure) is encoded in the
// Result; the error return is only non-nil for builder misconfiguration.
func (v *Verifier) Verify(ctx context.Context, email string) (types.Result, error) {
	if v.err != nil {
		return types.Result{}, v.err
	}
	return v.verify(ctx, email), nil
}

// verify implements the verdict algorithm:
//
//  1. Format check; on failure short-circuit with no network call.
//  2. Classify the domain against the disposable and free-provider sets.
//  3. Resolve MX records; dnsValid requires at least one record.
//  4. smtpValid := dnsValid - a named approximation, no mailbox probing.
//  5. Status precedence: invalid (no DNS), risky (disposable), valid,
//     unknown. The unknown rule is unreachable while smtpValid equals
//     dnsValid but stays for when the two are decoupled.
func (v *Verifier) verify(ctx context.Context, email string) types.Result {
	addr := parse.NewEmail(email)
	if !addr.Valid {
		return types.Result{
			Email:  email,
			Status: types.StatusInvalid,
			Error:  formatErrorDetail,
		}
	}

	disposable, freeProvider := v.sets.Classify(addr.Domain)

	records, ok := v.resolver.Resolve(ctx, addr.LookupDomain)
	dnsValid := ok && len(records) > 0
	smtpValid := dnsValid

	status := types.StatusUnknown
	switch {
	case !dnsValid:
		status = types.StatusInvalid
	case disposable:
		status = types.StatusRisky
	case dnsValid && smtpValid:
		status = types.StatusValid
	}

	return types.Result{
		Email:        email,
		Status:       status,
		DNSValid:     dnsValid,
		SMTPValid:    smtpValid,
		Disposable:   disposable,
		FreeProvider: freeProvider,
		Domain:       addr.Domain,
	}
}

// VerifyAll verifies every address concurrently and returns results in
// input order, without the chunking and progress semantics of VerifyList.
// One malformed address never aborts its siblings. Returns the context
// error when cancelled mid-flight, with no partial results.
func (v *Verifier) VerifyAll(ctx context.Context, emails []string) ([]types.Result, error) {
	if v.err != nil {
		return nil, v.err
	}

	results := make([]types.Result, len(emails))
	var wg sync.WaitGroup
	for i, email := range emails {
		wg.Add(1)
		go func(i int, email string) {
			defer wg.Done()
			results[i] = v.verify(ctx, email)
		}(i, email)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
