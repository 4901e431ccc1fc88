package spirv

import "github.com/pkg/errors"

// ParseError indicates the input byte slice is not a well-formed SPIR-V
// binary: a bad magic number, a truncated header, or an instruction whose
// declared word count runs past the end of the stream.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return "spirv: parse error: " + e.Message
}

func newParseError(format string, args ...any) error {
	return errors.WithStack(&ParseError{Message: errors.Errorf(format, args...).Error()})
}
