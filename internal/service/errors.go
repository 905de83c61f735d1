package service

import "fmt"

// ValidationError reports a missing or malformed request field. Handlers map
// it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports a referenced entity that does not exist. Handlers map
// it to 404.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// InvalidStateError reports an operation that is illegal for the entity's
// current state. Handlers map it to 400.
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string {
	return e.Message
}

// InsufficientStockError reports an order line that asks for more than the
// product has on hand. Handlers map it to 400.
type InsufficientStockError struct {
	ProductName string
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Not enough stock for product %s, available: %d", e.ProductName, e.Available)
}
