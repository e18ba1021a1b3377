package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadAppliesDefaults(t *testing.T) {
	m := New(nil)
	m.Load()
	assert.Equal(t, DefaultLogLevel, m.String("LOG_LEVEL"))
	assert.Equal(t, DefaultQueueCapacity, m.Int("QUEUE_CAPACITY", -1))
}

func TestEnvVarOverridesDefault(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	m := New(nil)
	m.Load()
	assert.Equal(t, "debug", m.String("LOG_LEVEL"))
}

func TestSetOverridesEverything(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	m := New(nil)
	m.Load()
	m.Set("LOG_LEVEL", "error")
	assert.Equal(t, "error", m.String("LOG_LEVEL"))
}

func TestIntFallsBackOnUnparsable(t *testing.T) {
	m := New(nil)
	m.Set("QUEUE_CAPACITY", "not-a-number")
	assert.Equal(t, 7, m.Int("QUEUE_CAPACITY", 7))
}
