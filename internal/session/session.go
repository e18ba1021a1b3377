// Package session implements SessionState: per-shell mutable state
// that survives across statements but never leaks into the host
// process's environment.
package session

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// State holds one shell session's current directory, variable table,
// and language mode. It is read-shared across the stages of one
// statement but mutated only by the executor's main thread or the
// single stage declared session-mutating for that statement (spec §5).
type State struct {
	mu               sync.RWMutex
	id               string
	currentDirectory string
	variables        map[string]string
	language         language.Tag
}

// New creates a session rooted at dir, defaulting to English. Each
// session gets a unique ID for log correlation across concurrently
// running shells.
func New(dir string) (*State, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("session: resolve initial directory: %w", err)
	}
	return &State{
		id:               uuid.NewString(),
		currentDirectory: abs,
		variables:        make(map[string]string),
		language:         language.English,
	}, nil
}

// ID returns the session's unique identifier.
func (s *State) ID() string { return s.id }

// CurrentDirectory returns the session's current directory. It is
// never the host process's working directory.
func (s *State) CurrentDirectory() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentDirectory
}

// ChangeDirectory sets the session's current directory to path,
// resolved relative to the existing session directory. It never calls
// os.Chdir: the host process's working directory is left untouched.
func (s *State) ChangeDirectory(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := path
	if !filepath.IsAbs(target) {
		target = filepath.Join(s.currentDirectory, target)
	}
	abs, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("session: resolve %q: %w", path, err)
	}
	s.currentDirectory = abs
	return nil
}

// SetVariable stores a session variable, case-insensitively keyed.
func (s *State) SetVariable(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.variables[strings.ToLower(name)] = value
}

// Variable reads a session variable. Undefined variables return ""
// and false, matching the parser's "undefined expands to empty
// string" rule (spec §4.5).
func (s *State) Variable(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.variables[strings.ToLower(name)]
	return v, ok
}

// Language returns the session's current language mode.
func (s *State) Language() language.Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// SetLanguage mutates the session's language mode.
func (s *State) SetLanguage(tag language.Tag) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = tag
}

// IsArabic reports whether the session is currently in Arabic mode.
func (s *State) IsArabic() bool {
	base, _ := s.Language().Base()
	return base.String() == "ar"
}
