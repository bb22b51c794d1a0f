// Package frame is C9: splitting a request stream into one or more
// header+body frames and iterating each frame's CSV body as coerced
// rows. Grounded on original_source's src/multi_stmt.rs (blank-line
// delimited statement stream), src/stmt_data.rs (header line plus body
// reader, dispatched per statement kind), and src/csv_data.rs (the CSV
// row iterator itself) - translated from iterator-of-iterators into
// Go's callback-free Scanner/Reader idiom rather than ported literally.
package frame

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"

	"github.com/ivanceras/restq/ast"
	"github.com/ivanceras/restq/coerce"
	"github.com/ivanceras/restq/parser"
	"github.com/ivanceras/restq/rqerr"
)

// Frame is one parsed header line plus its still-unconsumed CSV body.
type Frame struct {
	Statement ast.Statement
	body      *bufio.Reader
}

// Body returns the frame's still-unconsumed CSV body reader, bounded
// to end at the next blank line or EOF.
func (f *Frame) Body() io.Reader { return f.body }

// MultiReader splits an input stream into statement frames separated by
// one or more blank lines, mirroring multi_stmt.rs's StatementIter:
// each frame's header is the first non-blank line, and its body runs
// until the next blank line or EOF.
type MultiReader struct {
	r *bufio.Reader
}

// NewMultiReader wraps r for frame-at-a-time reading.
func NewMultiReader(r io.Reader) *MultiReader {
	return &MultiReader{r: bufio.NewReader(r)}
}

// Next reads and parses the next frame's header line, returning the
// frame with its body positioned to read the rows that follow. It
// returns io.EOF (wrapped in neither error) once the stream is
// exhausted. Blank lines preceding a header are skipped; the body
// reader stops at the next blank line. Next reads on from wherever the
// previous frame's body stopped, so a body that was not fully drained
// before calling Next again has its remaining lines read as the next
// header.
func (m *MultiReader) Next() (*Frame, error) {
	var header string
	for {
		line, err := m.r.ReadString('\n')
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed != "" {
			header = trimmed
			break
		}
		if err != nil {
			return nil, io.EOF
		}
	}

	stmt, err := parser.Parse(header)
	if err != nil {
		return nil, err
	}

	return &Frame{
		Statement: stmt,
		body:      newBodyReader(m.r),
	}, nil
}

// bodyReader wraps the shared underlying reader so that reading a
// frame's body never consumes past the blank line terminating it -
// exactly the buffer-fill-until-blank-line loop multi_stmt.rs's
// Iterator::next implements for StmtData.
type bodyReader struct {
	src  *bufio.Reader
	done bool
	buf  []byte
}

func newBodyReader(src *bufio.Reader) *bufio.Reader {
	return bufio.NewReader(&bodyReader{src: src})
}

func (b *bodyReader) Read(p []byte) (int, error) {
	if len(b.buf) == 0 {
		if b.done {
			return 0, io.EOF
		}
		line, err := b.src.ReadString('\n')
		if strings.TrimRight(line, "\r\n") == "" {
			b.done = true
			if line == "" {
				return 0, io.EOF
			}
		}
		if err != nil {
			b.done = true
		}
		b.buf = []byte(line)
	}
	n := copy(p, b.buf)
	b.buf = b.buf[n:]
	return n, nil
}

// RowReader coerces each CSV record of a frame's body against an
// ordered column list, per csv_data.rs's CsvRows.
type RowReader struct {
	csv     *csv.Reader
	columns []*ast.ColumnDef
}

// NewRowReader builds a RowReader over body, coercing each record's
// fields positionally against columns. The caller resolves columns
// (e.g. via ast.TableDef.MatchingColumnDefs, doubled for BulkUpdate's
// 2N-vs-N shape via DoubledColumns) before constructing this.
func NewRowReader(body io.Reader, columns []*ast.ColumnDef) *RowReader {
	r := csv.NewReader(body)
	r.FieldsPerRecord = -1
	return &RowReader{csv: r, columns: columns}
}

// Next returns the next row's coerced values, or io.EOF when the body
// is exhausted.
func (r *RowReader) Next() ([]ast.DataValue, error) {
	record, err := r.csv.Read()
	if err != nil {
		return nil, err
	}
	if len(record) != len(r.columns) {
		return nil, rqerr.ParseError(0, "a row with one field per declared column")
	}
	row := make([]ast.DataValue, len(record))
	for i, field := range record {
		dv, err := coerce.Coerce(ast.StringValue(strings.TrimSpace(field)), r.columns[i].Type.DataType)
		if err != nil {
			return nil, err
		}
		row[i] = dv
	}
	return row, nil
}

// DoubledColumns returns columns repeated twice in sequence - old
// values then new values - matching a BulkUpdate row's 2N-field shape
// against its N declared columns, per spec §4.4's "virtually doubled"
// rule.
func DoubledColumns(columns []*ast.ColumnDef) []*ast.ColumnDef {
	out := make([]*ast.ColumnDef, 0, len(columns)*2)
	out = append(out, columns...)
	out = append(out, columns...)
	return out
}

// RowColumns resolves the column definitions a frame's body rows
// should be coerced against, given the table catalog. It dispatches
// on the statement kind exactly as stmt_data.rs's StmtData::rows_iter
// does, doubling the list for BulkUpdate per DoubledColumns.
func RowColumns(stmt ast.Statement, lookup *CatalogLookup) ([]*ast.ColumnDef, error) {
	switch s := stmt.(type) {
	case *ast.TableDef:
		return s.Columns, nil
	case *ast.Insert:
		def, err := lookup.require(s.Into)
		if err != nil {
			return nil, err
		}
		return def.MatchingColumnDefs(s.Columns), nil
	case *ast.BulkDelete:
		def, err := lookup.require(s.From)
		if err != nil {
			return nil, err
		}
		return def.MatchingColumnDefs(s.Columns), nil
	case *ast.BulkUpdate:
		def, err := lookup.require(s.Table)
		if err != nil {
			return nil, err
		}
		return DoubledColumns(def.MatchingColumnDefs(s.Columns)), nil
	default:
		return nil, rqerr.NotImplemented("row iteration for this statement type")
	}
}

// CatalogLookup is the minimal slice of catalog.TableLookup that
// RowColumns needs, kept narrow so frame does not import catalog
// directly for anything beyond this lookup.
type CatalogLookup struct {
	get func(ast.TableName) (*ast.TableDef, bool)
}

// NewCatalogLookup adapts any TableLookup-shaped getter - typically
// (*catalog.TableLookup).GetTableDef.
func NewCatalogLookup(get func(ast.TableName) (*ast.TableDef, bool)) *CatalogLookup {
	return &CatalogLookup{get: get}
}

func (c *CatalogLookup) require(name ast.TableName) (*ast.TableDef, error) {
	def, ok := c.get(name)
	if !ok {
		return nil, rqerr.TableNotFound(name.Name())
	}
	return def, nil
}
