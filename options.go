package mailsift

import (
	"context"
	"time"

	"github.com/optimode/mailsift/internal/domainset"
	"github.com/optimode/mailsift/resolve"
)

// ListOptions configures the disposable and free-provider classification
// sets. The sets are configuration data, not code: embedded defaults ship
// with the library and either set can be replaced without recompilation.
// For each set an explicit slice takes precedence over a file path, and
// leaving both empty keeps the embedded default.
type ListOptions struct {
	// Disposable replaces the disposable-domain set. An empty non-nil
	// slice disables disposable classification entirely.
	Disposable []string
	// FreeProviders replaces the free-provider set.
	FreeProviders []string
	// DisposableFile is a list file path, one domain per line,
	// #-comments ignored.
	DisposableFile string
	// FreeProviderFile is a list file path in the same format.
	FreeProviderFile string
}

func (o ListOptions) build() (*domainset.Sets, error) {
	disposable := o.Disposable
	if disposable == nil && o.DisposableFile != "" {
		domains, err := domainset.ReadList(o.DisposableFile)
		if err != nil {
			return nil, err
		}
		disposable = domains
	}

	free := o.FreeProviders
	if free == nil && o.FreeProviderFile != "" {
		domains, err := domainset.ReadList(o.FreeProviderFile)
		if err != nil {
			return nil, err
		}
		free = domains
	}

	return domainset.New(disposable, free), nil
}

// ResolverOptions configures MX resolution.
type ResolverOptions struct {
	// Timeout is the maximum time for one MX lookup. Default: 5s
	Timeout time.Duration
	// CacheTTL enables per-domain MX caching when positive. Purely a
	// performance enhancement: verdicts are identical with caching off.
	CacheTTL time.Duration
	// Lookup overrides the MX lookup function (for testing).
	Lookup resolve.LookupFunc
}

// DefaultChunkSize is the batch chunk size used when BatchOptions leaves
// ChunkSize unset.
const DefaultChunkSize = 50

// ProgressFunc receives (processed, total) after each completed chunk.
// Processed counts successfully verified addresses, so it reaches total
// only when no chunk failed.
type ProgressFunc func(processed, total int)

// ChunkFunc verifies one chunk of addresses and returns results in input
// order. The default verifies in-process; callers can substitute a remote
// transport (for example repeated VerifyBulk calls).
type ChunkFunc func(ctx context.Context, emails []string) ([]Result, error)

// BatchOptions configures the batch pipeline.
type BatchOptions struct {
	// ChunkSize is the maximum chunk length. Default: DefaultChunkSize.
	ChunkSize int
	// Progress, when set, is invoked after each successful chunk.
	Progress ProgressFunc
	// ChunkFunc overrides how one chunk is verified.
	ChunkFunc ChunkFunc
}
