package booking

import "fmt"

// Workflow error codes. Handlers map these onto HTTP statuses.
const (
	CodeUnauthenticated = "unauthenticated"
	CodeSessionNotFound = "sessionNotFound"
	CodeInvalidState    = "invalidState"
	CodeInvalidSlot     = "invalidSlot"
	CodeValidation      = "validationError"
	CodeNotFound        = "notFound"
	CodeNotMutable      = "notMutable"
	CodeStoreError      = "storeError"
)

// WorkflowError is a typed error surfaced by the booking wizard and the
// booking management operations.
type WorkflowError struct {
	Code    string
	Message string
}

func (e *WorkflowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newWorkflowError(code, format string, args ...interface{}) error {
	return &WorkflowError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
