package validators

import "strings"

// FieldError describes a single rule violation on one payload field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors aggregates every rule violation found in one payload.
// A payload is either fully valid or rejected with the complete list —
// validation never stops at the first failing field.
type ValidationErrors []FieldError

// Error implements the error interface by joining all violation messages.
func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}

	messages := make([]string, 0, len(v))
	for _, fieldError := range v {
		messages = append(messages, fieldError.Field+": "+fieldError.Message)
	}

	return strings.Join(messages, "; ")
}

// add appends a violation and returns the extended list.
func (v ValidationErrors) add(field, message string) ValidationErrors {
	return append(v, FieldError{Field: field, Message: message})
}

// orNil converts an empty list to a nil error so that callers can use the
// usual `if err != nil` idiom.
func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
