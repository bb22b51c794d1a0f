package coerce

import (
	"testing"

	"github.com/ivanceras/restq/ast"
)

func TestCoerceBool(t *testing.T) {
	tests := []struct {
		in   ast.Value
		want bool
	}{
		{ast.StringValue("true"), true},
		{ast.StringValue("1"), true},
		{ast.StringValue("false"), false},
		{ast.StringValue("nonsense"), false},
		{ast.BoolValue(true), true},
	}
	for _, tt := range tests {
		got, err := Coerce(tt.in, ast.Bool)
		if err != nil {
			t.Fatalf("Coerce(%v) error: %v", tt.in, err)
		}
		bv, ok := got.(ast.BoolVal)
		if !ok {
			t.Fatalf("expected ast.BoolVal, got %T", got)
		}
		if bool(bv) != tt.want {
			t.Errorf("Coerce(%v) = %v, want %v", tt.in, bv, tt.want)
		}
	}
}

func TestCoerceIntegers(t *testing.T) {
	got, err := Coerce(ast.StringValue("42"), ast.S32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := got.(ast.Uint32Val); !ok || v != 42 {
		t.Errorf("expected Uint32Val(42), got %#v", got)
	}

	got, err = Coerce(ast.StringValue("-7"), ast.I16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := got.(ast.Int16Val); !ok || v != -7 {
		t.Errorf("expected Int16Val(-7), got %#v", got)
	}
}

func TestCoerceIntegerOverflowIsInvalidValue(t *testing.T) {
	_, err := Coerce(ast.StringValue("999999"), ast.S8)
	if err == nil {
		t.Fatal("expected an error for an out-of-range s8 value")
	}
}

func TestCoerceFloat(t *testing.T) {
	got, err := Coerce(ast.StringValue("3.5"), ast.F64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := got.(ast.Float64Val); !ok || v != 3.5 {
		t.Errorf("expected Float64Val(3.5), got %#v", got)
	}
}

func TestCoerceEmptyStringNumericIsNil(t *testing.T) {
	got, err := Coerce(ast.StringValue(""), ast.S32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got.(ast.NilVal); !ok {
		t.Errorf("expected NilVal for an empty numeric field, got %#v", got)
	}
}

func TestCoerceEmptyStringTextIsEmptyText(t *testing.T) {
	got, err := Coerce(ast.StringValue(""), ast.Text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tv, ok := got.(ast.TextVal)
	if !ok || tv != "" {
		t.Errorf("expected TextVal(\"\"), got %#v", got)
	}
}

func TestCoerceNullIsAlwaysNil(t *testing.T) {
	got, err := Coerce(ast.NullValue{}, ast.Text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got.(ast.NilVal); !ok {
		t.Errorf("expected NilVal for a null value, got %#v", got)
	}
}

func TestCoerceUuid(t *testing.T) {
	const id = "123e4567-e89b-12d3-a456-426614174000"
	got, err := Coerce(ast.StringValue(id), ast.Uuid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := got.(ast.UuidVal); !ok || string(v) != id {
		t.Errorf("expected UuidVal(%q), got %#v", id, got)
	}
}

func TestCoerceUuidInvalidIsError(t *testing.T) {
	_, err := Coerce(ast.StringValue("not-a-uuid"), ast.Uuid)
	if err == nil {
		t.Fatal("expected an error for an invalid uuid")
	}
}

func TestCoerceUuidRandEmptyGeneratesOne(t *testing.T) {
	got, err := Coerce(ast.StringValue(""), ast.UuidRandType)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := got.(ast.UuidRandVal)
	if !ok || string(v) == "" {
		t.Errorf("expected a generated UuidRandVal, got %#v", got)
	}
}

func TestCoerceUuidSlugEncodesUrlSafe(t *testing.T) {
	const id = "123e4567-e89b-12d3-a456-426614174000"
	got, err := Coerce(ast.StringValue(id), ast.UuidSlugType)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := got.(ast.UuidSlugVal)
	if !ok || string(v) == "" {
		t.Errorf("expected a UuidSlugVal, got %#v", got)
	}
}

func TestCoerceTimestamp(t *testing.T) {
	tests := []string{
		"2024-01-15T10:30:00Z",
		"2024-01-15 10:30:00",
		"2024-01-15",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			if _, err := Coerce(ast.StringValue(in), ast.Local); err != nil {
				t.Errorf("Local: unexpected error for %q: %v", in, err)
			}
			if _, err := Coerce(ast.StringValue(in), ast.Utc); err != nil {
				t.Errorf("Utc: unexpected error for %q: %v", in, err)
			}
		})
	}
}

func TestCoerceTimestampInvalidIsError(t *testing.T) {
	_, err := Coerce(ast.StringValue("not a date"), ast.Local)
	if err == nil {
		t.Fatal("expected an error for an unparseable timestamp")
	}
}

func TestCoerceTextVariants(t *testing.T) {
	for _, dt := range []ast.DataType{ast.Text, ast.Email, ast.Domain, ast.IpAddr, ast.Json} {
		got, err := Coerce(ast.StringValue("hello"), dt)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", dt, err)
		}
		if tv, ok := got.(ast.TextVal); !ok || tv != "hello" {
			t.Errorf("%v: expected TextVal(hello), got %#v", dt, got)
		}
	}
}

func TestCoerceIdentAndUrl(t *testing.T) {
	got, err := Coerce(ast.StringValue("my_ident"), ast.Ident)
	if err != nil || got.(ast.IdentVal) != "my_ident" {
		t.Errorf("unexpected Ident coercion: %#v, err=%v", got, err)
	}
	got, err = Coerce(ast.StringValue("https://example.com"), ast.Url)
	if err != nil || got.(ast.UrlVal) != "https://example.com" {
		t.Errorf("unexpected Url coercion: %#v, err=%v", got, err)
	}
}

func TestCoerceBytesDecodesBase64(t *testing.T) {
	got, err := Coerce(ast.StringValue("aGVsbG8="), ast.Bytes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bv, ok := got.(ast.BytesVal)
	if !ok || string(bv) != "hello" {
		t.Errorf("expected decoded BytesVal(hello), got %#v", got)
	}
}

func TestCoerceBytesInvalidBase64IsError(t *testing.T) {
	_, err := Coerce(ast.StringValue("not base64!!"), ast.Bytes)
	if err == nil {
		t.Fatal("expected an error for invalid base64")
	}
}
