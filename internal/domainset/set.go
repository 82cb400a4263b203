// Package domainset holds the classification sets for disposable and
// free-provider domains. The sets are configuration data: embedded
// defaults ship with the binary and callers can swap in their own lists
// at construction time without recompiling.
package domainset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sets is a pair of case-insensitive domain membership sets.
// Read-only after construction, safe for concurrent use.
type Sets struct {
	disposable map[string]struct{}
	free       map[string]struct{}
}

// New builds Sets from explicit domain slices. A nil slice selects the
// embedded default for that set; an empty non-nil slice selects an empty set.
func New(disposable, freeProviders []string) *Sets {
	if disposable == nil {
		disposable = defaultDisposable
	}
	if freeProviders == nil {
		freeProviders = defaultFreeProviders
	}
	return &Sets{
		disposable: toSet(disposable),
		free:       toSet(freeProviders),
	}
}

// Default returns Sets built from the embedded lists.
func Default() *Sets {
	return New(defaultDisposable, defaultFreeProviders)
}

// ReadList reads a domain list file, one domain per line, blank lines
// and #-comments ignored.
func ReadList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading domain list: %w", err)
	}
	defer f.Close()
	return parseList(f)
}

// Classify reports membership of the domain in both sets.
func (s *Sets) Classify(domain string) (disposable, freeProvider bool) {
	key := strings.ToLower(domain)
	_, disposable = s.disposable[key]
	_, freeProvider = s.free[key]
	return disposable, freeProvider
}

func toSet(domains []string) map[string]struct{} {
	set := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			set[d] = struct{}{}
		}
	}
	return set
}

func parseList(r io.Reader) ([]string, error) {
	domains := make([]string, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			domains = append(domains, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return domains, nil
}
