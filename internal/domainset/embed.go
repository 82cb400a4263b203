package domainset

import (
	_ "embed"
	"strings"
)

//go:embed disposable.txt
var rawDisposable string

//go:embed free_providers.txt
var rawFreeProviders string

var (
	defaultDisposable    = splitList(rawDisposable)
	defaultFreeProviders = splitList(rawFreeProviders)
)

func splitList(raw string) []string {
	var domains []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			domains = append(domains, line)
		}
	}
	return domains
}
