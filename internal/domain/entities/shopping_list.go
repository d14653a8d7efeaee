package entities

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	DefaultMinQuantity = 1
	DefaultMaxQuantity = 9
)

// Entry is one line of a shopping list.
type Entry struct {
	Item     Item
	Quantity int
}

// Cents returns price*quantity in cents.
func (e Entry) Cents() int64 {
	return e.Item.cents * int64(e.Quantity)
}

// ShoppingList is an ordered sample of (item, quantity) pairs drawn from a pool.
type ShoppingList struct {
	entries []Entry
}

// NewShoppingList creates an empty list.
func NewShoppingList() *ShoppingList {
	return &ShoppingList{}
}

type refreshOptions struct {
	size        int
	sizeSet     bool
	quantities  []int
	minQuantity int
	maxQuantity int
}

// RefreshOption configures ShoppingList.Refresh.
type RefreshOption func(*refreshOptions)

// WithSize fixes the number of entries instead of drawing it from [1, pool size].
func WithSize(size int) RefreshOption {
	return func(o *refreshOptions) {
		o.size = size
		o.sizeSet = true
	}
}

// WithQuantities fixes entry quantities. A shorter slice is padded with ones,
// a longer one is truncated.
func WithQuantities(quantities ...int) RefreshOption {
	return func(o *refreshOptions) {
		o.quantities = append([]int{}, quantities...)
	}
}

// WithQuantityRange sets the inclusive range random quantities are drawn from.
func WithQuantityRange(minQuantity, maxQuantity int) RefreshOption {
	return func(o *refreshOptions) {
		o.minQuantity = minQuantity
		o.maxQuantity = maxQuantity
	}
}

// Refresh replaces the list contents with a new sample from pool. The list is
// left unchanged on error, including ErrAmountOverflow when the total of the
// new sample would not fit in cents.
func (l *ShoppingList) Refresh(rng *rand.Rand, pool *ItemPool, opts ...RefreshOption) error {
	o := refreshOptions{
		minQuantity: DefaultMinQuantity,
		maxQuantity: DefaultMaxQuantity,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if !o.sizeSet {
		if pool.Size() == 0 {
			return fmt.Errorf("%w: the item pool is empty", ErrInvalidSize)
		}
		o.size = rng.Intn(pool.Size()) + 1
	}

	if o.size < 1 {
		return fmt.Errorf("%w: size must be a positive integer, got %d", ErrInvalidArgument, o.size)
	}
	if o.size > pool.Size() {
		return fmt.Errorf("%w: size %d exceeds pool size %d", ErrInvalidSize, o.size, pool.Size())
	}

	quantities := o.quantities
	if quantities == nil {
		if o.minQuantity < 1 || o.maxQuantity < o.minQuantity {
			return fmt.Errorf("%w: quantity range [%d, %d]", ErrInvalidArgument, o.minQuantity, o.maxQuantity)
		}
		quantities = make([]int, o.size)
		for i := range quantities {
			quantities[i] = o.minQuantity + rng.Intn(o.maxQuantity-o.minQuantity+1)
		}
	}

	for _, q := range quantities {
		if q < 1 {
			return fmt.Errorf("%w: quantities must be positive integers, got %d", ErrInvalidArgument, q)
		}
	}

	for len(quantities) < o.size {
		quantities = append(quantities, 1)
	}
	quantities = quantities[:o.size]

	items := pool.Sample(rng, o.size)
	entries := make([]Entry, len(items))
	var total int64
	for i, item := range items {
		entries[i] = Entry{Item: item, Quantity: quantities[i]}

		cents, ok := mulCents(item.cents, quantities[i])
		if !ok || total > math.MaxInt64-cents {
			return fmt.Errorf("%w: the list total does not fit in cents", ErrAmountOverflow)
		}
		total += cents
	}
	l.entries = entries

	return nil
}

// mulCents returns cents*quantity and whether the product fits in an int64.
func mulCents(cents int64, quantity int) (int64, bool) {
	if quantity < 0 || (quantity > 0 && cents > math.MaxInt64/int64(quantity)) {
		return 0, false
	}
	return cents * int64(quantity), true
}

// Len returns the number of entries.
func (l *ShoppingList) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the list entries.
func (l *ShoppingList) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// TotalCents returns the sum of price*quantity over all entries.
// Refresh rejects lists whose total would not fit, so the sum never wraps.
func (l *ShoppingList) TotalCents() int64 {
	var total int64
	for _, e := range l.entries {
		total += e.Cents()
	}
	return total
}

// TotalPrice returns the list total in currency units.
func (l *ShoppingList) TotalPrice() float64 {
	return float64(l.TotalCents()) / 100
}

// ItemCents returns price*quantity in cents for the entry at index.
func (l *ShoppingList) ItemCents(index int) (int64, error) {
	if index < 0 || index >= len(l.entries) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(l.entries))
	}
	return l.entries[index].Cents(), nil
}

// ItemPrice returns price*quantity in currency units for the entry at index.
func (l *ShoppingList) ItemPrice(index int) (float64, error) {
	cents, err := l.ItemCents(index)
	if err != nil {
		return 0, err
	}
	return float64(cents) / 100, nil
}
