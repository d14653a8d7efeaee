package entities

import (
	"fmt"
	"math/rand"
	"sort"
)

// ItemPool is the catalog of known items keyed by name.
type ItemPool struct {
	items map[string]Item
}

// NewItemPool creates an empty pool.
func NewItemPool() *ItemPool {
	return &ItemPool{items: make(map[string]Item)}
}

// NewItemPoolFrom creates a pool from an existing mapping.
// Every value must be a constructed item stored under its own name.
func NewItemPoolFrom(items map[string]Item) (*ItemPool, error) {
	p := NewItemPool()
	for key, item := range items {
		if !item.valid() {
			return nil, fmt.Errorf("%w: entry %q is not a valid item", ErrInvalidPool, key)
		}
		if key != item.name {
			return nil, fmt.Errorf("%w: key %q does not match item name %q", ErrInvalidPool, key, item.name)
		}
		p.items[key] = item
	}
	return p, nil
}

// Add inserts item. It fails if an item with the same name is present.
func (p *ItemPool) Add(item Item) error {
	if !item.valid() {
		return fmt.Errorf("%w: cannot add an unconstructed item", ErrInvalidPool)
	}
	if _, ok := p.items[item.name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateItem, item.name)
	}
	p.items[item.name] = item
	return nil
}

// Remove deletes the item with the given name.
func (p *ItemPool) Remove(name string) error {
	if _, ok := p.items[name]; !ok {
		return fmt.Errorf("%w: item named %q is not present in the item pool", ErrNoSuchItem, name)
	}
	delete(p.items, name)
	return nil
}

// Contains reports whether an item with the given name is present.
func (p *ItemPool) Contains(name string) bool {
	_, ok := p.items[name]
	return ok
}

// Get returns the item with the given name.
func (p *ItemPool) Get(name string) (Item, bool) {
	item, ok := p.items[name]
	return item, ok
}

// Size returns the number of items in the pool.
func (p *ItemPool) Size() int {
	return len(p.items)
}

// Items returns all items sorted by name.
func (p *ItemPool) Items() []Item {
	out := make([]Item, 0, len(p.items))
	for _, item := range p.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// Sample returns min(n, Size()) distinct items chosen uniformly at random
// without replacement. Candidates are ordered by name before drawing, so a
// seeded rng yields the same sample for the same pool.
func (p *ItemPool) Sample(rng *rand.Rand, n int) []Item {
	candidates := p.Items()
	k := min(max(n, 0), len(candidates))

	// Partial Fisher-Yates: the first k slots end up holding the sample.
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	return candidates[:k]
}

// Equal reports whether both pools hold the same items.
func (p *ItemPool) Equal(other *ItemPool) bool {
	if other == nil || len(p.items) != len(other.items) {
		return false
	}
	for name, item := range p.items {
		if o, ok := other.items[name]; !ok || o != item {
			return false
		}
	}
	return true
}
