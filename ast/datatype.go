package ast

// DataType is the closed tag set parallel to DataValue, plus the semantic
// variants Email/Domain/IpAddr/Json and the integer "serial" family
// S8/S16/S32/S64.
type DataType int

const (
	Bool DataType = iota
	S8
	S16
	S32
	S64
	U8
	U16
	U32
	U64
	I8
	I16
	I32
	I64
	F32
	F64
	Uuid
	UuidRandType
	UuidSlugType
	Local
	Utc
	Text
	Ident
	Email
	Domain
	IpAddr
	Url
	Json
	Bytes
)

var dataTypeTags = [...]string{
	Bool:         "bool",
	S8:           "s8",
	S16:          "s16",
	S32:          "s32",
	S64:          "s64",
	U8:           "u8",
	U16:          "u16",
	U32:          "u32",
	U64:          "u64",
	I8:           "i8",
	I16:          "i16",
	I32:          "i32",
	I64:          "i64",
	F32:          "f32",
	F64:          "f64",
	Uuid:         "uuid",
	UuidRandType: "uuid_rand",
	UuidSlugType: "uuid_slug",
	Local:        "local",
	Utc:          "utc",
	Text:         "text",
	Ident:        "ident",
	Email:        "email",
	Domain:       "domain",
	IpAddr:       "ip_addr",
	Url:          "url",
	Json:         "json",
	Bytes:        "bytes",
}

// All returns every DataType tag, in declaration order.
func All() []DataType {
	out := make([]DataType, len(dataTypeTags))
	for i := range dataTypeTags {
		out[i] = DataType(i)
	}
	return out
}

// String renders the canonical lowercase tag for the data type.
func (d DataType) String() string {
	if int(d) >= 0 && int(d) < len(dataTypeTags) {
		return dataTypeTags[d]
	}
	return "unknown"
}

// ParseDataType resolves a tag string to its DataType. Matching is
// case-sensitive; unknown tags return ok=false so the caller can raise
// InvalidDataType(tag).
func ParseDataType(tag string) (DataType, bool) {
	for i, t := range dataTypeTags {
		if t == tag {
			return DataType(i), true
		}
	}
	return 0, false
}

// IsSerial reports whether the data type belongs to the auto-generated
// "serial" integer family (S8/S16/S32/S64).
func (d DataType) IsSerial() bool {
	return d == S8 || d == S16 || d == S32 || d == S64
}

// IsNumericOrBytes reports whether empty-string coercion for this type
// yields Nil rather than Text(""), per the coercion contract in §4.2.
func (d DataType) IsNumericOrBytes() bool {
	switch d {
	case S8, S16, S32, S64, U8, U16, U32, U64, I8, I16, I32, I64, F32, F64, Bytes:
		return true
	default:
		return false
	}
}
