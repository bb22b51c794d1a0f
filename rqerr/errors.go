// Package rqerr defines RestQ's closed error-kind set (§7 of the
// specification), shared by every layer (parser, catalog, sqlast, frame)
// so that callers can type-switch or use errors.As against one error
// type regardless of where in the pipeline a failure originated.
package rqerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is one of the eight closed error kinds.
type Kind int

const (
	// KindParseError is a grammar mismatch: position + expected label.
	KindParseError Kind = iota
	// KindInvalidDataType is an unknown data-type tag.
	KindInvalidDataType
	// KindTableNotFound is a catalog lookup miss during lowering.
	KindTableNotFound
	// KindNoSuppliedTableLookup is a join requested without a catalog.
	KindNoSuppliedTableLookup
	// KindInvalidValue is a coercion failure.
	KindInvalidValue
	// KindMoreThanOneStatement is raised where exactly one is expected.
	KindMoreThanOneStatement
	// KindIoError wraps an underlying byte-stream failure.
	KindIoError
	// KindNotImplemented marks a deliberately unimplemented feature
	// (AlterColumn lowering; OPTIONS/TRACE/CONNECT/HEAD dispatch).
	KindNotImplemented
)

// Error is RestQ's single error type. Only the fields grouped under a
// given Kind below are meaningful for it; see the Kind-specific
// constructors below.
type Error struct {
	Kind Kind

	// KindParseError
	Position int
	Expected string

	// KindInvalidDataType / KindTableNotFound / KindNotImplemented
	Name string

	// KindInvalidValue
	Text       string
	TargetType string

	// KindIoError
	inner error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindParseError:
		return fmt.Sprintf("parse error at position %d: expecting %s", e.Position, e.Expected)
	case KindInvalidDataType:
		return fmt.Sprintf("invalid data type: %q", e.Name)
	case KindTableNotFound:
		return fmt.Sprintf("table not found: %q", e.Name)
	case KindNoSuppliedTableLookup:
		return "a join was requested but no table lookup (catalog) was supplied"
	case KindInvalidValue:
		return fmt.Sprintf("invalid value %q for target type %q", e.Text, e.TargetType)
	case KindMoreThanOneStatement:
		return "more than one statement found where exactly one was expected"
	case KindIoError:
		return fmt.Sprintf("io error: %v", e.inner)
	case KindNotImplemented:
		return fmt.Sprintf("not implemented: %s", e.Name)
	default:
		return "unknown restq error"
	}
}

// Unwrap exposes the wrapped cause for KindIoError so that
// errors.Is/errors.As reach the underlying I/O error.
func (e *Error) Unwrap() error { return e.inner }

// ParseError builds a KindParseError.
func ParseError(position int, expected string) *Error {
	return &Error{Kind: KindParseError, Position: position, Expected: expected}
}

// InvalidDataType builds a KindInvalidDataType.
func InvalidDataType(name string) *Error {
	return &Error{Kind: KindInvalidDataType, Name: name}
}

// TableNotFound builds a KindTableNotFound.
func TableNotFound(name string) *Error {
	return &Error{Kind: KindTableNotFound, Name: name}
}

// NoSuppliedTableLookup builds a KindNoSuppliedTableLookup.
func NoSuppliedTableLookup() *Error {
	return &Error{Kind: KindNoSuppliedTableLookup}
}

// InvalidValue builds a KindInvalidValue.
func InvalidValue(text, targetType string) *Error {
	return &Error{Kind: KindInvalidValue, Text: text, TargetType: targetType}
}

// MoreThanOneStatement builds a KindMoreThanOneStatement.
func MoreThanOneStatement() *Error {
	return &Error{Kind: KindMoreThanOneStatement}
}

// IoError wraps an underlying I/O failure with context, using
// github.com/pkg/errors the way _examples/aretext-aretext wraps file
// errors throughout its codebase.
func IoError(cause error) *Error {
	return &Error{Kind: KindIoError, inner: errors.Wrap(cause, "restq: io error")}
}

// NotImplemented builds a KindNotImplemented.
func NotImplemented(feature string) *Error {
	return &Error{Kind: KindNotImplemented, Name: feature}
}
