package gridparser

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput     = errors.New("map is empty")
	ErrRaggedRows     = errors.New("rows have inconsistent length")
	ErrUnknownSymbol  = errors.New("unknown map symbol")
	ErrNoGuard        = errors.New("map has no guard")
	ErrMultipleGuards = errors.New("map has more than one guard")
)

// ParseError describes why a map could not be built. Line and Column are
// 1-based and zero when the problem is not tied to a location.
type ParseError struct {
	Line   int
	Column int
	Err    error
	Detail string
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, msg)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
