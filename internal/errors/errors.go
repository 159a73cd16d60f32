// Package errors defines the typed error taxonomy returned across component
// boundaries. Errors are kind-tagged values, never uncaught faults; the
// handlers are the single translation point to the response contract.
package errors

// DomainError is a generic coded domain failure.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
