package polarisdocs

import (
	"context"
	"strings"
)

// MaxSuggestions bounds the number of alternatives offered when a component
// lookup misses.
const MaxSuggestions = 5

// ComponentInfo identifies one documented component. Immutable once
// constructed.
type ComponentInfo struct {
	// Slug is the unique external identifier, e.g. "button-group".
	Slug string `json:"slug"`

	// Name is the display name; falls back to Slug when the component's
	// metadata document is missing or malformed.
	Name string `json:"name"`

	// Description may be empty.
	Description string `json:"description"`

	// Category is the non-unique grouping key, e.g. "actions".
	Category string `json:"category"`
}

// Location identifies a component's place in the documentation tree.
type Location struct {
	Category string `json:"category"`
	Slug     string `json:"slug"`
}

// Registry is the in-memory index of all known components: an ordered
// collection plus a slug lookup map. It is built atomically by NewRegistry
// and never mutated afterwards.
type Registry struct {
	components []ComponentInfo
	bySlug     map[string]ComponentInfo
}

// NewRegistry builds a Registry from components, preserving their order.
// Later duplicates of a slug are ignored for lookup purposes.
func NewRegistry(components []ComponentInfo) *Registry {
	bySlug := make(map[string]ComponentInfo, len(components))
	for _, c := range components {
		if _, ok := bySlug[c.Slug]; !ok {
			bySlug[c.Slug] = c
		}
	}
	return &Registry{components: components, bySlug: bySlug}
}

// Components returns all components in registry order.
func (r *Registry) Components() []ComponentInfo {
	return r.components
}

// Lookup returns the component with the given slug.
func (r *Registry) Lookup(slug string) (ComponentInfo, bool) {
	c, ok := r.bySlug[slug]
	return c, ok
}

// Suggest returns slugs of components whose slug or display name contains
// input (case-insensitive), in registry order, capped at MaxSuggestions.
// Used to enrich not-found messages; there is no relevance ranking.
func (r *Registry) Suggest(input string) []string {
	needle := strings.ToLower(input)
	var matches []string
	for _, c := range r.components {
		if strings.Contains(strings.ToLower(c.Slug), needle) ||
			strings.Contains(strings.ToLower(c.Name), needle) {
			matches = append(matches, c.Slug)
			if len(matches) == MaxSuggestions {
				break
			}
		}
	}
	return matches
}

// ResolveLocation determines the definitive location for a component
// identifier. A non-empty category is trusted verbatim and the registry is
// not consulted (reg may be nil in that case). Otherwise the identifier is
// looked up as a slug; a miss returns ok=false, which callers must treat as
// "not found" rather than a failure.
func ResolveLocation(reg *Registry, component, category string) (Location, bool) {
	if category != "" {
		return Location{Category: category, Slug: component}, true
	}
	c, ok := reg.Lookup(component)
	if !ok {
		return Location{}, false
	}
	return Location{Category: c.Category, Slug: c.Slug}, true
}

// RegistryService provides the component registry.
type RegistryService interface {
	// Registry returns the full component index. Implementations may cache;
	// a returned registry is always complete (partial builds are never
	// exposed).
	Registry(ctx context.Context) (*Registry, error)
}
