package httperr

import "fmt"

// Validation is a client-data failure naming the offending field. Handlers
// render it as a 400 with a field-level message; no state change occurred.
type Validation struct {
	Field   string
	Message string
}

func (e *Validation) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidation(field, message string) *Validation {
	return &Validation{Field: field, Message: message}
}
