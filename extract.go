package mailsift

import "regexp"

// tokenPattern is the shared email-token pattern used by file-parsing
// collaborators to collect candidate addresses from cell values.
var tokenPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// ExtractAddresses returns the candidate addresses found in text, in
// first-seen order. Uniqueness is exact case-sensitive string equality
// over the whole address; the engine itself never deduplicates, so
// callers run this (or their own dedup) before submission.
func ExtractAddresses(text string) []string {
	matches := tokenPattern.FindAllString(text, -1)
	if matches == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	unique := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		unique = append(unique, m)
	}
	return unique
}
