package services

import "net/http"

// Error codes returned to clients alongside the HTTP status. Validation
// and precondition failures are recoverable by the user; persistence
// failures get a generic retry prompt client-side.
const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeEmptyCart   = "EMPTY_CART"
	CodePersistence = "PERSISTENCE_ERROR"
	CodeNotFound    = "NOT_FOUND"
)

// ServiceError is a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

func ErrValidation(message string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusBadRequest, Code: CodeValidation, Message: message}
}

func ErrEmptyCart() *ServiceError {
	return &ServiceError{StatusCode: http.StatusBadRequest, Code: CodeEmptyCart, Message: "Cart is empty"}
}

func ErrPersistence(message string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusInternalServerError, Code: CodePersistence, Message: message}
}

func ErrNotFound(message string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusNotFound, Code: CodeNotFound, Message: message}
}
