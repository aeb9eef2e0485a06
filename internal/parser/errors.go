package parser

import (
	"fmt"

	"midl/internal/diag"
	"midl/internal/source"
)

// SyntaxError is the first syntax problem encountered; parsing stops there.
type SyntaxError struct {
	Code diag.Code
	Span source.Span
	Line uint32
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Line, e.Msg)
}
