package ast

import "fmt"

// DataValue is the strict, catalog-aware value domain that C2's coercion
// step (package coerce) produces from a coarse Value plus a target
// DataType. Each variant carries its payload and reports its own DataType
// tag, which is not always the tag it was coerced against (several target
// types share one variant). Variant names carry a Val suffix so they
// do not collide with the parallel DataType tag constants of the same
// spelling (e.g. DataType Bool vs DataValue BoolVal).
type DataValue interface {
	fmt.Stringer
	// Type reports the DataType tag of this value's variant: NilVal
	// reports Text, and the S8..S64 serial types coerce to the Uint*Val
	// variants, which report U8..U64.
	Type() DataType
	dataValueNode()
}

// NilVal is the nil sentinel: produced for empty numeric/integer/serial/
// bytes fields, or explicitly for the coarse Null value.
type NilVal struct{}

func (NilVal) dataValueNode()  {}
func (NilVal) Type() DataType  { return Text }
func (NilVal) String() string  { return "" }

// BoolVal is a coerced boolean.
type BoolVal bool

func (BoolVal) dataValueNode() {}
func (BoolVal) Type() DataType { return Bool }
func (b BoolVal) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Int8Val/Int16Val/Int32Val/Int64Val are signed integers.
type Int8Val int8
type Int16Val int16
type Int32Val int32
type Int64Val int64

func (Int8Val) dataValueNode()    {}
func (Int8Val) Type() DataType    { return I8 }
func (v Int8Val) String() string  { return fmt.Sprintf("%d", int8(v)) }

func (Int16Val) dataValueNode()   {}
func (Int16Val) Type() DataType   { return I16 }
func (v Int16Val) String() string { return fmt.Sprintf("%d", int16(v)) }

func (Int32Val) dataValueNode()   {}
func (Int32Val) Type() DataType   { return I32 }
func (v Int32Val) String() string { return fmt.Sprintf("%d", int32(v)) }

func (Int64Val) dataValueNode()   {}
func (Int64Val) Type() DataType   { return I64 }
func (v Int64Val) String() string { return fmt.Sprintf("%d", int64(v)) }

// Uint8Val/Uint16Val/Uint32Val/Uint64Val are unsigned integers, also the
// coercion target for the S8/S16/S32/S64 serial family.
type Uint8Val uint8
type Uint16Val uint16
type Uint32Val uint32
type Uint64Val uint64

func (Uint8Val) dataValueNode()    {}
func (Uint8Val) Type() DataType    { return U8 }
func (v Uint8Val) String() string  { return fmt.Sprintf("%d", uint8(v)) }

func (Uint16Val) dataValueNode()   {}
func (Uint16Val) Type() DataType   { return U16 }
func (v Uint16Val) String() string { return fmt.Sprintf("%d", uint16(v)) }

func (Uint32Val) dataValueNode()   {}
func (Uint32Val) Type() DataType   { return U32 }
func (v Uint32Val) String() string { return fmt.Sprintf("%d", uint32(v)) }

func (Uint64Val) dataValueNode()   {}
func (Uint64Val) Type() DataType   { return U64 }
func (v Uint64Val) String() string { return fmt.Sprintf("%d", uint64(v)) }

// Float32Val/Float64Val are IEEE-754 floats.
type Float32Val float32
type Float64Val float64

func (Float32Val) dataValueNode()   {}
func (Float32Val) Type() DataType   { return F32 }
func (v Float32Val) String() string { return fmt.Sprintf("%v", float32(v)) }

func (Float64Val) dataValueNode()   {}
func (Float64Val) Type() DataType   { return F64 }
func (v Float64Val) String() string { return fmt.Sprintf("%v", float64(v)) }

// UuidVal is a parsed RFC-4122 UUID in its canonical hyphenated form.
type UuidVal string

func (UuidVal) dataValueNode()  {}
func (UuidVal) Type() DataType  { return Uuid }
func (v UuidVal) String() string { return string(v) }

// UuidRandVal is a UUID for a column whose values are auto-generated by
// the writer; it carries a concrete UUID value (see coerce.Coerce).
type UuidRandVal string

func (UuidRandVal) dataValueNode()  {}
func (UuidRandVal) Type() DataType  { return UuidRandType }
func (v UuidRandVal) String() string { return string(v) }

// UuidSlugVal is a URL-safe (base64-url, no padding) encoding of a UUID.
type UuidSlugVal string

func (UuidSlugVal) dataValueNode()  {}
func (UuidSlugVal) Type() DataType  { return UuidSlugType }
func (v UuidSlugVal) String() string { return string(v) }

// LocalVal is a local-zone timestamp.
type LocalVal struct{ Text string }

func (LocalVal) dataValueNode()   {}
func (LocalVal) Type() DataType   { return Local }
func (v LocalVal) String() string { return v.Text }

// UtcVal is a UTC timestamp.
type UtcVal struct{ Text string }

func (UtcVal) dataValueNode()   {}
func (UtcVal) Type() DataType   { return Utc }
func (v UtcVal) String() string { return v.Text }

// TextVal/IdentVal/UrlVal are plain-text-carrying variants distinguished
// only by their DataType tag (Email/Domain/IpAddr all coerce to TextVal
// too - they are Text under a validated semantic label).
type TextVal string

func (TextVal) dataValueNode()  {}
func (TextVal) Type() DataType  { return Text }
func (v TextVal) String() string { return string(v) }

type IdentVal string

func (IdentVal) dataValueNode()  {}
func (IdentVal) Type() DataType  { return Ident }
func (v IdentVal) String() string { return string(v) }

type UrlVal string

func (UrlVal) dataValueNode()  {}
func (UrlVal) Type() DataType  { return Url }
func (v UrlVal) String() string { return string(v) }

// BytesVal is decoded binary payload (MIME-variant base64 on the wire).
type BytesVal []byte

func (BytesVal) dataValueNode()  {}
func (BytesVal) Type() DataType  { return Bytes }
func (v BytesVal) String() string { return string(v) }
