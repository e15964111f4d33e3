// Package guard provides a defensive construction pattern for value objects,
// commands and queries. Embedding a ConstructorGuard in a struct makes it
// possible to detect whether the struct was created through its designated
// constructor or left as a zero value, which keeps domain invariants intact.
package guard

import "errors"

// ErrDefaultConstructorGuard is the error returned by Validate when the guard
// is a zero value and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether its enclosing struct was created through a
// constructor. The zero value fails validation; NewConstructorGuard produces
// a passing guard.
//
// Example usage:
//
//	var ErrMoneyNotConstructed = errors.New("Money must be created via NewMoney")
//
//	type Money struct {
//	    amount decimal.Decimal
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewMoney(amount decimal.Decimal) (Money, error) {
//	    return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyNotConstructed)
//	}
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard that passes validation.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil when the guard was created via NewConstructorGuard.
// For a zero-value guard it returns notConstructed, or
// ErrDefaultConstructorGuard when notConstructed is nil.
func (g ConstructorGuard) Validate(notConstructed error) error {
	if g.constructed {
		return nil
	}
	if notConstructed != nil {
		return notConstructed
	}
	return ErrDefaultConstructorGuard
}
