// Package validation checks calculation requests against the rate catalog's
// enumerations and numeric constraints.
package validation

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Validator collects per-field validation errors. The first error per field
// wins and insertion order is preserved, so the first failing field is
// deterministic for a fixed check order.
type Validator struct {
	Errors map[string]string
	order  []string
}

// New creates a new validator
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError adds an error to the validator. Later errors for the same field
// are dropped.
func (v *Validator) AddError(field, message string) {
	if _, exists := v.Errors[field]; exists {
		return
	}
	v.Errors[field] = message
	v.order = append(v.order, field)
}

// Check adds an error if the condition is false
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// First returns the first failing field and its message, in check order.
func (v *Validator) First() (field, message string) {
	if len(v.order) == 0 {
		return "", ""
	}
	field = v.order[0]
	return field, v.Errors[field]
}

// Required checks that a string is not empty
func (v *Validator) Required(field, value string) {
	v.Check(strings.TrimSpace(value) != "", field, "must not be empty")
}

// NonNegative checks that a decimal is zero or greater
func (v *Validator) NonNegative(field string, value decimal.Decimal) {
	v.Check(!value.IsNegative(), field, "must not be negative")
}
