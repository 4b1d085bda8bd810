package irm

import "fmt"

// ParseError reports a malformed or empty input file. Line is 1-based and
// zero when the error is not tied to a single line.
type ParseError struct {
	File   string
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.File, e.Reason)
}

// ComputationError reports a series that parsed cleanly but cannot yield the
// requested statistic. Callers can tell it apart from a ParseError with
// errors.As.
type ComputationError struct {
	Reason string
}

func (e *ComputationError) Error() string { return e.Reason }
