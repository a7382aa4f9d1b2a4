package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterSensitiveHeaders(t *testing.T) {
	filtered := filterSensitiveHeaders(map[string]string{
		"authorization": "Bearer secret",
		"cookie":        "session=1",
		"content-type":  "application/json",
	})

	assert.Equal(t, "[REDACTED]", filtered["authorization"])
	assert.Equal(t, "[REDACTED]", filtered["cookie"])
	assert.Equal(t, "application/json", filtered["content-type"])
}
