package lint

import (
	"cmp"
	"slices"
	"strings"
	"sync"
)

// Registry holds all registered rules. Lookups by ID and name are
// case-insensitive.
type Registry struct {
	mu      sync.RWMutex
	byID    map[string]Rule
	byName  map[string]Rule
	aliases map[string]string // alias -> canonical ID
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:    make(map[string]Rule),
		byName:  make(map[string]Rule),
		aliases: make(map[string]string),
	}
}

func key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Register adds a rule, replacing any rule with the same ID.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[key(rule.ID())] = rule
	r.byName[key(rule.Name())] = rule
}

// RegisterAlias maps an alternative name to a canonical rule ID.
func (r *Registry) RegisterAlias(alias, ruleID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[key(alias)] = key(ruleID)
}

// Resolve returns the canonical ID and rule for an ID, name or alias.
func (r *Registry) Resolve(name string) (string, Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	k := key(name)
	if rule, ok := r.byID[k]; ok {
		return rule.ID(), rule, true
	}
	if rule, ok := r.byName[k]; ok {
		return rule.ID(), rule, true
	}
	if target, ok := r.aliases[k]; ok {
		if rule, ok := r.byID[target]; ok {
			return rule.ID(), rule, true
		}
	}
	return "", nil, false
}

// Get retrieves a rule by ID, name or alias.
func (r *Registry) Get(name string) (Rule, bool) {
	_, rule, ok := r.Resolve(name)
	return rule, ok
}

// Rules returns all registered rules sorted by ID.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Rule, 0, len(r.byID))
	for _, rule := range r.byID {
		result = append(result, rule)
	}
	slices.SortFunc(result, func(a, b Rule) int {
		return cmp.Compare(a.ID(), b.ID())
	})
	return result
}

// IDs returns all registered rule IDs in sorted order.
func (r *Registry) IDs() []string {
	rules := r.Rules()
	ids := make([]string, len(rules))
	for i, rule := range rules {
		ids[i] = rule.ID()
	}
	return ids
}

// DefaultRegistry is the global registry for built-in rules.
// Rules register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for rule registration
var DefaultRegistry = NewRegistry()
