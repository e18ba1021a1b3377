package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrentFallsBackToBuildInfoWhenUnset(t *testing.T) {
	info := Current()
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.BuildDate)
}

func TestStringIncludesAllFields(t *testing.T) {
	info := Info{Version: "1.2.3", CommitHash: "abcdef1", BuildDate: "2026-01-01 00:00:00"}
	s := info.String()
	assert.Contains(t, s, "1.2.3")
	assert.Contains(t, s, "abcdef1")
	assert.Contains(t, s, "2026-01-01 00:00:00")
}
