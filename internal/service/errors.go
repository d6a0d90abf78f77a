package service

import (
	"fmt"

	"github.com/packlane/box-picker/internal/domain/model"
)

// UnfittableItemError is returned when an item cannot be placed in any
// catalog box, not even in isolation. It is a routine business outcome,
// not an internal failure, and always names the offending item.
type UnfittableItemError struct {
	SKU    string
	Length int
	Width  int
	Height int

	// MaxBox is the largest box in the catalog the item was tried against.
	MaxBox model.Box
}

// Error implements the error interface.
func (e *UnfittableItemError) Error() string {
	return fmt.Sprintf("item %q (%dx%dx%d) does not fit in any available box",
		e.SKU, e.Length, e.Width, e.Height)
}
