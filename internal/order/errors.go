package order

import "fmt"

// EmptyCartError rejects checkout on a cart with no lines.
type EmptyCartError struct{}

func (e EmptyCartError) Error() string {
	return "cart is empty"
}

// ValidationError reports a bad checkout field. No state is mutated when one
// is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// InvalidTransitionError rejects a status change not allowed by the
// transition table. The stored status is left unchanged.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition order from %s to %s", e.From, e.To)
}

// OrderNotFoundError reports a transition request for an unknown order id.
type OrderNotFoundError struct {
	OrderID string
}

func (e OrderNotFoundError) Error() string {
	return "order not found: " + e.OrderID
}
