// Package registry maps protocol type names to constructors so that tools can
// decode a base64 value chosen at run time.
package registry

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
	"golang.org/x/sync/errgroup"
)

// Value is a protocol value with binary and base64 text forms.
type Value interface {
	MarshalBinary() ([]byte, error)
	UnmarshalBinary(data []byte) error
	ToBase64() (string, error)
	FromBase64(s string) error
}

// Factory returns a new zero Value.
type Factory func() Value

// Entry describes one registered type.
type Entry struct {
	Name   string
	Family string
	New    Factory
}

// Registry is a set of named Value factories. Lookups are case-insensitive.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	aliases map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*Entry),
		aliases: make(map[string]string),
	}
}

// Register adds a type under name. Names must be unique, ignoring case.
func (r *Registry) Register(name, family string, f Factory) error {
	if f == nil {
		return fmt.Errorf("cannot register nil factory for %q", name)
	}
	if name == "" {
		return fmt.Errorf("cannot register type with empty name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(name)
	if _, exists := r.entries[key]; exists {
		return fmt.Errorf("type %q already registered", name)
	}
	if _, exists := r.aliases[key]; exists {
		return fmt.Errorf("type %q already registered as an alias", name)
	}
	r.entries[key] = &Entry{Name: name, Family: family, New: f}
	return nil
}

// RegisterAlias makes alias resolve to the registered type name.
func (r *Registry) RegisterAlias(alias, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(alias)
	if _, exists := r.entries[key]; exists {
		return fmt.Errorf("alias %q shadows a registered type", alias)
	}
	target := strings.ToLower(name)
	if _, exists := r.entries[target]; !exists {
		return fmt.Errorf("type %q not found", name)
	}
	r.aliases[key] = target
	return nil
}

// Lookup returns the entry for name or one of its aliases.
func (r *Registry) Lookup(name string) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := strings.ToLower(strings.TrimSpace(name))
	if target, ok := r.aliases[key]; ok {
		key = target
	}
	e, exists := r.entries[key]
	if !exists {
		return nil, fmt.Errorf("type %q not found", name)
	}
	return e, nil
}

// Exists reports whether name resolves to a registered type.
func (r *Registry) Exists(name string) bool {
	_, err := r.Lookup(name)
	return err == nil
}

// New returns a zero value of the named type.
func (r *Registry) New(name string) (Value, error) {
	e, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return e.New(), nil
}

// List returns all entries sorted by family, then name.
// The returned slice is a copy and safe to modify.
func (r *Registry) List() []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Family != out[j].Family {
			return out[i].Family < out[j].Family
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Names returns the sorted type names.
func (r *Registry) Names() []string {
	entries := r.List()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered types.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Decode decodes the base64 text s as the named type.
func (r *Registry) Decode(name, s string) (Value, error) {
	v, err := r.New(name)
	if err != nil {
		return nil, err
	}
	if err := v.FromBase64(s); err != nil {
		return nil, err
	}
	return v, nil
}

// Canonical decodes data as the named type and reports whether re-encoding
// reproduces data exactly.
func (r *Registry) Canonical(name string, data []byte) (Value, bool, error) {
	v, err := r.New(name)
	if err != nil {
		return nil, false, err
	}
	if err := v.UnmarshalBinary(data); err != nil {
		return nil, false, err
	}
	again, err := v.MarshalBinary()
	if err != nil {
		return v, false, err
	}
	return v, bytes.Equal(again, data), nil
}

// Match is a type that decoded an input canonically.
type Match struct {
	Name   string
	Family string
	Value  Value
}

// Guess decodes s as every registered type concurrently and returns the
// types that consume it completely and re-encode to the same bytes, sorted
// by name. Malformed base64 fails with xdr.ErrInvalidBase64.
func (r *Registry) Guess(ctx context.Context, s string) ([]Match, error) {
	data, err := xdr.DecodeBase64(s)
	if err != nil {
		return nil, err
	}

	entries := r.List()
	found := make([]*Match, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, e := range entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, ok, err := r.Canonical(e.Name, data)
			if err != nil || !ok {
				return nil
			}
			found[i] = &Match{Name: e.Name, Family: e.Family, Value: v}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Match
	for _, m := range found {
		if m != nil {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
