package wire

import "fmt"

// MessageError describes an error encountered while serializing or
// deserializing a wire type, naming the offending field.
type MessageError struct {
	Func        string
	Description string
}

func (e *MessageError) Error() string {
	if e.Func != "" {
		return fmt.Sprintf("%s: %s", e.Func, e.Description)
	}
	return e.Description
}

func messageError(fn, format string, args ...interface{}) *MessageError {
	return &MessageError{Func: fn, Description: fmt.Sprintf(format, args...)}
}
