package errors

import "fmt"

// Fee components, as named in the response contract. CalculationError uses
// them to identify which catalog table is missing a rule.
const (
	ComponentReferral       = "referralFee"
	ComponentWeightHandling = "weightHandlingFee"
	ComponentClosing        = "closingFee"
	ComponentPickAndPack    = "pickAndPackFee"
)

// ValidationError reports a request that failed validation. Field and
// Reason describe the first failing check in declared order; Fields carries
// every failing field so callers can surface all of them at once.
type ValidationError struct {
	Field  string
	Reason string
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// CalculationError reports a valid request combination that has no
// configured rule in the catalog. This is a configuration fault, not a
// caller mistake, and is never substituted with a default fee.
type CalculationError struct {
	Component string
	Key       string
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("no %s rate configured for %s", e.Component, e.Key)
}

// CatalogLoadError reports malformed rate data. It is fatal at startup; on
// hot reload the previous catalog stays in service.
type CatalogLoadError struct {
	Problems []string
}

func (e *CatalogLoadError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid rate catalog: " + e.Problems[0]
	}
	return fmt.Sprintf("invalid rate catalog: %d problems, first: %s", len(e.Problems), e.Problems[0])
}
