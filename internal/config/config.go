// Package config centralizes arbsh's configuration, adapted from the
// teacher's layered ConfigManager: flags override environment
// variables, which override a .env file, which overrides defaults.
package config

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	// DefaultLogLevel is used when --log-level and LOG_LEVEL are both unset.
	DefaultLogLevel = "info"
	// DefaultQueueCapacity bounds a pipeline stage's queue, per spec §5.
	DefaultQueueCapacity = 64
	// DefaultLogFile is the rotating log file the logger writes to.
	DefaultLogFile = "arbsh.log"
)

// Manager centralizes access to configuration values.
type Manager struct {
	mu     sync.RWMutex
	values map[string]string
	logger *zap.Logger
}

// New creates a Manager. A nil logger falls back to zap.NewNop().
func New(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{values: make(map[string]string), logger: logger}
}

// Load populates values from defaults, then .env, then the process
// environment, each layer overriding the last.
func (m *Manager) Load() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadDefaults()
	m.loadEnvFile()
	m.loadEnvVars()
}

func (m *Manager) loadDefaults() {
	m.values["LOG_LEVEL"] = DefaultLogLevel
	m.values["LOG_FILE"] = DefaultLogFile
	m.values["QUEUE_CAPACITY"] = strconv.Itoa(DefaultQueueCapacity)
	m.values["COMMANDS_MANIFEST"] = "configs/commands.yaml"
}

func (m *Manager) loadEnvFile() {
	path := os.Getenv("ARBSH_DOTENV")
	if path == "" {
		path = ".env"
	}
	envMap, err := godotenv.Read(path)
	if err != nil {
		m.logger.Debug("no .env file found", zap.String("path", path), zap.Error(err))
		return
	}
	for k, v := range envMap {
		m.values[k] = v
	}
}

func (m *Manager) loadEnvVars() {
	for _, key := range []string{"LOG_LEVEL", "LOG_FILE", "QUEUE_CAPACITY", "COMMANDS_MANIFEST", "ENV"} {
		if v, ok := os.LookupEnv(key); ok {
			m.values[key] = v
		}
	}
}

// Set overrides a value directly, used by main to apply parsed flags
// (highest priority layer).
func (m *Manager) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

// String returns a value, or "" if unset.
func (m *Manager) String(key string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key]
}

// Int returns a value parsed as an integer, or def if unset or unparsable.
func (m *Manager) Int(key string, def int) int {
	m.mu.RLock()
	v := m.values[key]
	m.mu.RUnlock()
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}
