package entities

import (
	"errors"
	"fmt"
)

// Construction and lookup errors. Callers match them with errors.Is; the
// wrapped message carries the offending value.
var (
	ErrInvalidName     = errors.New("invalid item name")
	ErrInvalidPrice    = errors.New("invalid item price")
	ErrInvalidPool     = errors.New("invalid item pool")
	ErrDuplicateItem   = errors.New("duplicate item")
	ErrNoSuchItem      = errors.New("no such item")
	ErrInvalidSize     = errors.New("invalid shopping list size")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrAmountOverflow  = errors.New("amount overflows")
)

// ErrPriceTooLarge is an ErrInvalidPrice for prices above MaxPrice.
var ErrPriceTooLarge = fmt.Errorf("%w: price is too large", ErrInvalidPrice)
