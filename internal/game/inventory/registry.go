package inventory

import "fmt"

// Registry holds all loaded item definitions indexed by ID.
// It is read-only after loading and safe to share between sessions.
type Registry struct {
	items map[string]*ItemDef
	order []string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]*ItemDef)}
}

// NewRegistryFrom builds a Registry holding defs.
//
// Postcondition: returns an error on the first duplicate ID.
func NewRegistryFrom(defs []*ItemDef) (*Registry, error) {
	r := NewRegistry()
	for _, d := range defs {
		if err := r.RegisterItem(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// RegisterItem adds d to the registry.
//
// Precondition:  d must not be nil.
// Postcondition: Item(d.ID) returns (d, true); returns error if d.ID already registered.
func (r *Registry) RegisterItem(d *ItemDef) error {
	if _, exists := r.items[d.ID]; exists {
		return fmt.Errorf("inventory: Registry.RegisterItem: item ID %q already registered", d.ID)
	}
	r.items[d.ID] = d
	r.order = append(r.order, d.ID)
	return nil
}

// Item returns the ItemDef for the given id and whether it was found.
func (r *Registry) Item(id string) (*ItemDef, bool) {
	d, ok := r.items[id]
	return d, ok
}

// Name returns the display name for id, falling back to the id itself.
func (r *Registry) Name(id string) string {
	if d, ok := r.items[id]; ok {
		return d.Name
	}
	return id
}

// Names maps ids to display names, preserving order.
func (r *Registry) Names(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = r.Name(id)
	}
	return out
}

// OfKind returns the IDs of every item of the given kind in registration order.
func (r *Registry) OfKind(kind string) []string {
	var out []string
	for _, id := range r.order {
		if r.items[id].Kind == kind {
			out = append(out, id)
		}
	}
	return out
}

// Len returns the number of registered items.
func (r *Registry) Len() int { return len(r.items) }
