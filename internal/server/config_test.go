package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	assert.Equal(t, 42, getEnvAsInt("TEST_INT", 7))

	// trailing garbage is a parse failure, not a partial read
	t.Setenv("TEST_INT", "42abc")
	assert.Equal(t, 7, getEnvAsInt("TEST_INT", 7))

	t.Setenv("TEST_INT", "")
	assert.Equal(t, 7, getEnvAsInt("TEST_INT", 7))
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("TEST_DUR", "150ms")
	assert.Equal(t, 150*time.Millisecond, getEnvAsDuration("TEST_DUR", time.Second))

	t.Setenv("TEST_DUR", "nope")
	assert.Equal(t, time.Second, getEnvAsDuration("TEST_DUR", time.Second))
}
