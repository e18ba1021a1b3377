// Package registry holds the set of builtin commands available to a
// shell session and the manifest describing their metadata.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/arbsh/arbsh/internal/binder"
)

// Descriptor is a command's static metadata, as loaded from the
// registry manifest or registered directly by a builtin package.
type Descriptor struct {
	Name        string                `yaml:"name"`
	EnglishName string                `yaml:"englishName"`
	Summary     string                `yaml:"summary"`
	Parameters  []string              `yaml:"parameters"`
	Params      []binder.ParamSpec    `yaml:"-"`
	AcceptsPipe bool                  `yaml:"acceptsPipe"`
	NewHandler  func() CommandHandler `yaml:"-"`
}

// Registry is the set of commands a session can dispatch to, cached
// as a case-insensitive map from command name (Arabic primary, plus
// an English alias where declared) to descriptor, per spec §4.8.
// Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Descriptor // keyed by canonical (Arabic) Name
	byAlias  map[string]string     // case-folded lookup key -> canonical Name
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		commands: make(map[string]Descriptor),
		byAlias:  make(map[string]string),
	}
}

func foldKey(name string) string { return strings.ToLower(name) }

// Register adds or replaces a command descriptor, indexing it under
// both its Arabic name and, if declared, its English alias.
func (r *Registry) Register(d Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands[d.Name] = d
	r.byAlias[foldKey(d.Name)] = d.Name
	if d.EnglishName != "" {
		r.byAlias[foldKey(d.EnglishName)] = d.Name
	}
}

// Unregister removes a command by its canonical name, allowing a
// session to shadow or retire a builtin.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.commands[name]
	if !ok {
		return
	}
	delete(r.commands, name)
	delete(r.byAlias, foldKey(d.Name))
	if d.EnglishName != "" {
		delete(r.byAlias, foldKey(d.EnglishName))
	}
}

// Lookup resolves a command by its Arabic name or English alias,
// case-insensitively.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	canonical, ok := r.byAlias[foldKey(name)]
	if !ok {
		return Descriptor{}, false
	}
	d, ok := r.commands[canonical]
	return d, ok
}

// All returns every registered descriptor sorted by name.
func (r *Registry) All() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]Descriptor, 0, len(r.commands))
	for _, d := range r.commands {
		list = append(list, d)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// LoadManifest merges descriptor metadata (summary, parameters,
// acceptsPipe) from a YAML manifest into already-registered commands,
// leaving the Handler untouched. A manifest entry for a command that
// has no registered Handler is rejected: the manifest documents
// builtins, it does not invent them.
func (r *Registry) LoadManifest(entries []Descriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range entries {
		existing, ok := r.commands[e.Name]
		if !ok {
			return fmt.Errorf("registry: manifest entry %q has no registered handler", e.Name)
		}
		existing.Summary = e.Summary
		existing.Parameters = e.Parameters
		existing.AcceptsPipe = e.AcceptsPipe
		r.commands[e.Name] = existing
	}
	return nil
}
