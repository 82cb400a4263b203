package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optimode/mailsift/internal/parse"
)

func TestNewEmail_Valid(t *testing.T) {
	tests := []struct {
		raw    string
		domain string
	}{
		{"user@example.com", "example.com"},
		{"User.Name+tag@Example.COM", "example.com"},
		{"a@b.co", "b.co"},
		{"weird!chars@sub.domain.org", "sub.domain.org"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			e := parse.NewEmail(tt.raw)
			assert.True(t, e.Valid)
			assert.Equal(t, tt.raw, e.Raw)
			assert.Equal(t, tt.domain, e.Domain)
		})
	}
}

func TestNewEmail_Invalid(t *testing.T) {
	tests := []string{
		"",
		"not-an-email",
		"missing-domain@",
		"@missing-local.com",
		"no-tld@domain",
		"spaces in@local.com",
		"two@@ats.com",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			e := parse.NewEmail(raw)
			assert.False(t, e.Valid)
			assert.Equal(t, raw, e.Raw)
			assert.Empty(t, e.Domain)
		})
	}
}

func TestNewEmail_IDNLookupDomain(t *testing.T) {
	e := parse.NewEmail("user@münchen.de")
	assert.True(t, e.Valid)
	assert.Equal(t, "münchen.de", e.Domain)
	assert.Equal(t, "xn--mnchen-3ya.de", e.LookupDomain)

	// ASCII domains pass through unchanged
	e = parse.NewEmail("user@example.com")
	assert.Equal(t, e.Domain, e.LookupDomain)
}
