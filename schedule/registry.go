package schedule

import (
	"fmt"
	"strings"
)

// DefaultGroups is the registry used when none is configured.
func DefaultGroups() []Group {
	return []Group{{
		ID:          "КББО-12-24",
		Description: "У нас нет рассписания, пока смотрим ваше",
		Thumb:       "https://i.pinimg.com/736x/27/cb/70/27cb70c5b0989fb48d1d06bc32143239.jpg",
	}}
}

// Registry is the fixed, ordered set of known groups.
type Registry struct {
	groups []Group
	byID   map[string]Group
}

// NewRegistry validates groups and indexes them by upper-cased id. Ids must
// be non-empty and unique.
func NewRegistry(groups []Group) (*Registry, error) {
	r := &Registry{
		groups: make([]Group, 0, len(groups)),
		byID:   make(map[string]Group, len(groups)),
	}
	for _, g := range groups {
		g.ID = NormalizeID(g.ID)
		if g.ID == "" {
			return nil, fmt.Errorf("schedule: group with empty id")
		}
		if _, dup := r.byID[g.ID]; dup {
			return nil, fmt.Errorf("schedule: duplicate group %q", g.ID)
		}
		r.byID[g.ID] = g
		r.groups = append(r.groups, g)
	}
	return r, nil
}

// NormalizeID trims and upper-cases a group id.
func NormalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// Resolve returns the group with id, compared after normalization.
func (r *Registry) Resolve(id string) (Group, error) {
	g, ok := r.byID[NormalizeID(id)]
	if !ok {
		return Group{}, fmt.Errorf("%w: %s", ErrUnknownGroup, id)
	}
	return g, nil
}

// Match returns, in registry order, the groups whose id contains the
// normalized query. An empty query matches every group.
func (r *Registry) Match(query string) []Group {
	q := NormalizeID(query)
	out := make([]Group, 0, len(r.groups))
	for _, g := range r.groups {
		if q == "" || strings.Contains(g.ID, q) {
			out = append(out, g)
		}
	}
	return out
}

// Groups returns a copy of all groups in order.
func (r *Registry) Groups() []Group {
	return append([]Group(nil), r.groups...)
}

// Len returns the number of groups.
func (r *Registry) Len() int {
	return len(r.groups)
}
