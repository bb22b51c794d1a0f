// Package coerce implements C2's coercion table: mapping a coarse
// ast.Value to a strict ast.DataValue under a declared ast.DataType.
package coerce

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ivanceras/restq/ast"
	"github.com/ivanceras/restq/rqerr"
)

// timestampLayouts are tried in order; the first successful parse wins,
// per §4.2: RFC-3339, then four strftime-style fallbacks.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Coerce maps a coarse Value to a strict DataValue under the given
// target DataType. It never succeeds silently: values that cannot be
// coerced return an InvalidValue error, except that empty strings map to
// Nil for numeric/integer/serial/bytes types and to Text("") otherwise.
func Coerce(v ast.Value, dt ast.DataType) (ast.DataValue, error) {
	text, isText := asText(v)
	if _, isNull := v.(ast.NullValue); isNull {
		return ast.NilVal{}, nil
	}
	if isText && text == "" {
		if dt.IsNumericOrBytes() {
			return ast.NilVal{}, nil
		}
		return ast.TextVal(""), nil
	}

	switch dt {
	case ast.Bool:
		return ast.BoolVal(coerceBool(v)), nil
	case ast.S8, ast.U8:
		n, err := parseUint(text, v, 8, dt)
		if err != nil {
			return nil, err
		}
		return ast.Uint8Val(n), nil
	case ast.S16, ast.U16:
		n, err := parseUint(text, v, 16, dt)
		if err != nil {
			return nil, err
		}
		return ast.Uint16Val(n), nil
	case ast.S32, ast.U32:
		n, err := parseUint(text, v, 32, dt)
		if err != nil {
			return nil, err
		}
		return ast.Uint32Val(n), nil
	case ast.S64, ast.U64:
		n, err := parseUint(text, v, 64, dt)
		if err != nil {
			return nil, err
		}
		return ast.Uint64Val(n), nil
	case ast.I8:
		n, err := parseInt(text, v, 8, dt)
		if err != nil {
			return nil, err
		}
		return ast.Int8Val(n), nil
	case ast.I16:
		n, err := parseInt(text, v, 16, dt)
		if err != nil {
			return nil, err
		}
		return ast.Int16Val(n), nil
	case ast.I32:
		n, err := parseInt(text, v, 32, dt)
		if err != nil {
			return nil, err
		}
		return ast.Int32Val(n), nil
	case ast.I64:
		n, err := parseInt(text, v, 64, dt)
		if err != nil {
			return nil, err
		}
		return ast.Int64Val(n), nil
	case ast.F32:
		f, err := parseFloat(text, v, 32, dt)
		if err != nil {
			return nil, err
		}
		return ast.Float32Val(f), nil
	case ast.F64:
		f, err := parseFloat(text, v, 64, dt)
		if err != nil {
			return nil, err
		}
		return ast.Float64Val(f), nil
	case ast.Uuid:
		id, err := uuid.Parse(text)
		if err != nil {
			return nil, rqerr.InvalidValue(text, dt.String())
		}
		return ast.UuidVal(id.String()), nil
	case ast.UuidRandType:
		if text == "" {
			return ast.UuidRandVal(uuid.New().String()), nil
		}
		id, err := uuid.Parse(text)
		if err != nil {
			return nil, rqerr.InvalidValue(text, dt.String())
		}
		return ast.UuidRandVal(id.String()), nil
	case ast.UuidSlugType:
		id, err := uuid.Parse(text)
		if err != nil {
			return nil, rqerr.InvalidValue(text, dt.String())
		}
		return ast.UuidSlugVal(base64.RawURLEncoding.EncodeToString(id[:])), nil
	case ast.Local:
		t, err := parseTimestamp(text)
		if err != nil {
			return nil, rqerr.InvalidValue(text, dt.String())
		}
		return ast.LocalVal{Text: t.Format(time.RFC3339)}, nil
	case ast.Utc:
		t, err := parseTimestamp(text)
		if err != nil {
			return nil, rqerr.InvalidValue(text, dt.String())
		}
		return ast.UtcVal{Text: t.UTC().Format(time.RFC3339)}, nil
	case ast.Text, ast.Email, ast.Domain, ast.IpAddr, ast.Json:
		return ast.TextVal(text), nil
	case ast.Ident:
		return ast.IdentVal(text), nil
	case ast.Url:
		return ast.UrlVal(text), nil
	case ast.Bytes:
		b, err := decodeBytes(text)
		if err != nil {
			return nil, rqerr.InvalidValue(text, dt.String())
		}
		return ast.BytesVal(b), nil
	default:
		return nil, rqerr.InvalidValue(text, dt.String())
	}
}

func asText(v ast.Value) (string, bool) {
	switch x := v.(type) {
	case ast.StringValue:
		return string(x), true
	case ast.NumberValue:
		return strconv.FormatFloat(float64(x), 'g', -1, 64), true
	case ast.BoolValue:
		if x {
			return "true", true
		}
		return "false", true
	case ast.NullValue:
		return "", true
	default:
		return "", false
	}
}

// coerceBool accepts true|false|1|0; anything else is false, per §4.2.
func coerceBool(v ast.Value) bool {
	if b, ok := v.(ast.BoolValue); ok {
		return bool(b)
	}
	text, _ := asText(v)
	switch strings.ToLower(text) {
	case "true", "1":
		return true
	default:
		return false
	}
}

func parseUint(text string, v ast.Value, bits int, dt ast.DataType) (uint64, error) {
	n, err := strconv.ParseUint(text, 10, bits)
	if err != nil {
		return 0, rqerr.InvalidValue(text, dt.String())
	}
	return n, nil
}

func parseInt(text string, v ast.Value, bits int, dt ast.DataType) (int64, error) {
	n, err := strconv.ParseInt(text, 10, bits)
	if err != nil {
		return 0, rqerr.InvalidValue(text, dt.String())
	}
	return n, nil
}

func parseFloat(text string, v ast.Value, bits int, dt ast.DataType) (float64, error) {
	f, err := strconv.ParseFloat(text, bits)
	if err != nil {
		return 0, rqerr.InvalidValue(text, dt.String())
	}
	return f, nil
}

func parseTimestamp(text string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, text)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("no timestamp layout matched %q: %w", text, lastErr)
}

// decodeBytes decodes MIME-variant (standard, padded) base64, per §4.2.
func decodeBytes(text string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(text)
}
