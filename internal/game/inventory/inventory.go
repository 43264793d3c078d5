package inventory

// Inventory is an ordered collection of item tokens. Duplicates are allowed
// and insertion order is acquisition order.
type Inventory struct {
	items []string
}

// NewInventory returns an inventory holding ids in order.
func NewInventory(ids ...string) *Inventory {
	inv := &Inventory{}
	inv.Add(ids...)
	return inv
}

// Add appends ids to the end of the inventory.
func (inv *Inventory) Add(ids ...string) {
	inv.items = append(inv.items, ids...)
}

// Remove deletes the first occurrence of id.
//
// Postcondition: returns true iff a token was removed.
func (inv *Inventory) Remove(id string) bool {
	for i, it := range inv.items {
		if it == id {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return true
		}
	}
	return false
}

// Has reports whether at least one id token is held.
func (inv *Inventory) Has(id string) bool {
	if id == "" {
		return false
	}
	for _, it := range inv.items {
		if it == id {
			return true
		}
	}
	return false
}

// HasAll reports whether every id in ids is held. An empty list is trivially held.
func (inv *Inventory) HasAll(ids []string) bool {
	for _, id := range ids {
		if !inv.Has(id) {
			return false
		}
	}
	return true
}

// Count returns how many id tokens are held.
func (inv *Inventory) Count(id string) int {
	n := 0
	for _, it := range inv.items {
		if it == id {
			n++
		}
	}
	return n
}

// Items returns a snapshot copy of the tokens in acquisition order.
func (inv *Inventory) Items() []string {
	out := make([]string, len(inv.items))
	copy(out, inv.items)
	return out
}

// Len returns the number of tokens held.
func (inv *Inventory) Len() int { return len(inv.items) }
