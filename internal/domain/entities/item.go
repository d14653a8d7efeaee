// Package entities contains domain entities used across the application.
package entities

import (
	"fmt"
	"math"
	"strings"
)

// MaxPrice is the largest accepted item price. Prices up to it stay exact in
// cents, and lists of them have room to sum.
const MaxPrice = 1e13

// Item is a named, priced catalog entry.
// The price is kept in cents so that sums and comparisons are exact.
type Item struct {
	name  string
	cents int64
}

// NewItem creates an item, rounding price to two fractional digits.
func NewItem(name string, price float64) (Item, error) {
	if name == "" {
		return Item{}, fmt.Errorf("%w: item name string cannot be empty", ErrInvalidName)
	}

	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return Item{}, fmt.Errorf("%w: %v is not a positive number", ErrInvalidPrice, price)
	}

	cents, ok := ToCents(price)
	if !ok || cents > MaxPrice*100 {
		return Item{}, fmt.Errorf("%w: %v", ErrPriceTooLarge, price)
	}
	if cents < 1 {
		return Item{}, fmt.Errorf("%w: %v rounds to zero", ErrInvalidPrice, price)
	}

	return Item{name: name, cents: cents}, nil
}

// Name returns the item name.
func (i Item) Name() string { return i.name }

// Price returns the item price in currency units.
func (i Item) Price() float64 { return float64(i.cents) / 100 }

// Cents returns the item price in cents.
func (i Item) Cents() int64 { return i.cents }

// Order returns the power-of-ten exponent of the price.
func (i Item) Order() int { return OrderOf(i.cents) }

// FormatPrice renders price*quantity as a zero-padded currency string with
// order+1 integer digits. A quantity below one counts as one. When hidden is
// set, digits are replaced by question marks of the same width.
func (i Item) FormatPrice(quantity int, hidden bool, order int) string {
	if quantity < 1 {
		quantity = 1
	}
	return FormatAmount(i.cents*int64(quantity), hidden, order)
}

// FormatListEntry renders "- name (Nx)". A quantity of zero omits the suffix.
func (i Item) FormatListEntry(quantity int, leadingDash bool) string {
	var sb strings.Builder
	if leadingDash {
		sb.WriteString("- ")
	}
	sb.WriteString(i.name)
	if quantity > 0 {
		fmt.Fprintf(&sb, " (%dx)", quantity)
	}
	return sb.String()
}

// String returns the textual form used in confirmations, e.g. "Item(Milk, 4.25)".
func (i Item) String() string {
	return fmt.Sprintf("Item(%s, %s)", i.name, shortDecimal(i.cents))
}

func (i Item) valid() bool {
	return i.name != "" && i.cents > 0
}

// ToCents rounds an amount to two fractional digits and returns it in cents.
// It reports false when the amount is negative or does not fit in an int64.
func ToCents(amount float64) (int64, bool) {
	c := math.Round(amount * 100)
	if math.IsNaN(c) || c < 0 || c >= math.MaxInt64 {
		return 0, false
	}
	return int64(c), true
}

// OrderOf returns floor(log10(cents/100)). The logarithm is rounded to ten
// digits first so exact powers of ten are not pushed below the boundary.
func OrderOf(cents int64) int {
	l := math.Log10(float64(cents) / 100)
	l = math.Round(l*1e10) / 1e10
	return int(math.Floor(l))
}

// FormatAmount renders cents as "$" followed by order+1 zero-padded integer
// digits and two decimals. Orders below zero are padded as order zero so the
// hidden mask always has the width of the visible amount.
func FormatAmount(cents int64, hidden bool, order int) string {
	digits := max(order, 0) + 1
	if hidden {
		return "$" + strings.Repeat("?", digits) + ".??"
	}
	return fmt.Sprintf("$%0*d.%02d", digits, cents/100, cents%100)
}

// shortDecimal formats cents with the shortest fractional part, keeping at
// least one digit: 100 -> "1.0", 410 -> "4.1", 99 -> "0.99".
func shortDecimal(cents int64) string {
	s := fmt.Sprintf("%d.%02d", cents/100, cents%100)
	if strings.HasSuffix(s, "0") {
		s = s[:len(s)-1]
	}
	return s
}
