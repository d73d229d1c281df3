package entities

import (
	"fmt"
	"strings"
)

type Shortage struct {
	ProductID string
	Name      string
	Requested int
	Available int
}

// ShortageError перечисляет все позиции корзины, которых не хватает на складе.
// errors.Is(err, ErrInsufficientStock) == true.
type ShortageError struct {
	Shortages []Shortage
}

func (e *ShortageError) Error() string {
	parts := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		parts = append(parts, fmt.Sprintf("%s: requested %d, available %d", s.Name, s.Requested, s.Available))
	}
	return fmt.Sprintf("%s (%s)", ErrInsufficientStock, strings.Join(parts, "; "))
}

func (e *ShortageError) Unwrap() error {
	return ErrInsufficientStock
}
