package engine

import (
	"errors"
	"fmt"
)

// Validation rejections. Their messages are meant for the user.
var (
	ErrEmptyTitle        = errors.New("title is required")
	ErrEmptyCategoryName = errors.New("category name is required")

	ErrUnknownItem       = errors.New("unknown item")
	ErrInsufficientFunds = errors.New("not enough points")

	ErrEmptyCode       = errors.New("Enter a code.")
	ErrSelfCode        = errors.New("You can't add yourself!")
	ErrDuplicateFriend = errors.New("Friend already added.")
)

// ItemKind names a shop section.
type ItemKind string

const (
	ItemPet       ItemKind = "pet"
	ItemAccessory ItemKind = "accessory"
	ItemTheme     ItemKind = "theme"
)

// PurchaseError is returned when a purchase is rejected. The balance and
// ownership are unchanged.
type PurchaseError struct {
	Kind    ItemKind
	ID      string
	Cost    int
	Balance int
	Err     error
}

func (e PurchaseError) Error() string {
	if errors.Is(e.Err, ErrInsufficientFunds) {
		return fmt.Sprintf("%s '%s' costs %d points, you have %d", e.Kind, e.ID, e.Cost, e.Balance)
	}
	return fmt.Sprintf("%s '%s': %v", e.Kind, e.ID, e.Err)
}

func (e PurchaseError) Unwrap() error { return e.Err }
