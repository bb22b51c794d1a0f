package rqerr

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseErrorMessage(t *testing.T) {
	err := ParseError(12, "an expression")
	want := "parse error at position 12: expecting an expression"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
	if err.Kind != KindParseError {
		t.Errorf("expected KindParseError, got %v", err.Kind)
	}
}

func TestInvalidDataTypeMessage(t *testing.T) {
	err := InvalidDataType("not_a_type")
	want := `invalid data type: "not_a_type"`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestTableNotFoundMessage(t *testing.T) {
	err := TableNotFound("person")
	want := `table not found: "person"`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestNoSuppliedTableLookupMessage(t *testing.T) {
	err := NoSuppliedTableLookup()
	want := "a join was requested but no table lookup (catalog) was supplied"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestInvalidValueMessage(t *testing.T) {
	err := InvalidValue("abc", "s32")
	want := `invalid value "abc" for target type "s32"`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestMoreThanOneStatementMessage(t *testing.T) {
	err := MoreThanOneStatement()
	want := "more than one statement found where exactly one was expected"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestNotImplementedMessage(t *testing.T) {
	err := NotImplemented("alter column")
	want := "not implemented: alter column"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestIoErrorWrapsAndUnwraps(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := IoError(cause)
	if err.Kind != KindIoError {
		t.Errorf("expected KindIoError, got %v", err.Kind)
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
	if err.Unwrap() == nil {
		t.Error("expected Unwrap to return a non-nil error")
	}
}

func TestUnknownKindMessage(t *testing.T) {
	err := &Error{Kind: Kind(999)}
	if err.Error() != "unknown restq error" {
		t.Errorf("expected fallback message, got %q", err.Error())
	}
}
