package argsparser

import "fmt"

// ParseError is returned by Parse. Error yields the user-facing message; Unwrap yields one of
// the Err* sentinels so callers can branch with errors.Is.
type ParseError struct {
	Kind    error
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

func newParseError(kind error, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
