package load

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidDocument is the sentinel matched by every document validation
// failure.
var ErrInvalidDocument = errors.New("morph: invalid document")

// DocumentError describes a malformed definitions document. Model and Field
// locate the fault when it belongs to a specific definition; both are empty
// for document-level faults such as a negative version.
type DocumentError struct {
	Model   string // owning model name, if any
	Field   string // attribute or relationship name, if any
	Message string
}

// Error returns the error string.
func (e *DocumentError) Error() string {
	var b strings.Builder
	b.WriteString("morph: invalid document")
	if e.Model != "" {
		b.WriteString(": model ")
		b.WriteString(strconv.Quote(e.Model))
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(strconv.Quote(e.Field))
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}

// Is reports whether the target matches the sentinel error for DocumentError.
func (e *DocumentError) Is(target error) bool {
	return target == ErrInvalidDocument
}

// NewDocumentError returns a new DocumentError located at the given model
// and field.
func NewDocumentError(model, field, message string) *DocumentError {
	return &DocumentError{Model: model, Field: field, Message: message}
}

// IsDocumentError reports whether the error is a DocumentError.
func IsDocumentError(err error) bool {
	if err == nil {
		return false
	}
	var e *DocumentError
	return errors.As(err, &e)
}
