// Package parser implements RestQ's recursive-descent grammar: C1
// lexical primitives, C3 expression grammar, C4 DDL grammar, C5 DML
// grammar, and C6 the statement dispatcher, on top of the token/lexer
// packages. It follows the stateful single-token-lookahead style of
// _examples/freeeve-machparse's parser/parser.go, with explicit
// save/restore-position backtracking standing in for the Rust `pom`
// combinator library's alternation, and an expect helper
// implementing spec §9's "committed choice" contract.
package parser

import (
	"strconv"
	"sync"

	"github.com/ivanceras/restq/ast"
	"github.com/ivanceras/restq/lexer"
	"github.com/ivanceras/restq/rqerr"
	"github.com/ivanceras/restq/token"
)

// Parser is a recursive-descent parser over RestQ's header-line grammar.
type Parser struct {
	lex *lexer.Lexer
	cur token.Item
}

// New creates a new Parser over the given input (one header line; any
// trailing CSV body is not this package's concern - see package frame).
func New(input string) *Parser {
	p := &Parser{lex: lexer.New(input)}
	p.advance()
	return p
}

var parserPool = sync.Pool{New: func() any { return &Parser{} }}

// Get returns a pooled Parser for the given input; call Put when done.
func Get(input string) *Parser {
	p := parserPool.Get().(*Parser)
	p.lex = lexer.Get(input)
	p.cur = token.Item{}
	p.advance()
	return p
}

// Put returns the parser and its lexer to their pools.
func Put(p *Parser) {
	if p.lex != nil {
		lexer.Put(p.lex)
		p.lex = nil
	}
	parserPool.Put(p)
}

func (p *Parser) advance()          { p.cur = p.lex.Next() }
func (p *Parser) curIs(t token.Token) bool { return p.cur.Type == t }
func (p *Parser) pos() token.Pos    { return p.cur.Pos }

// mark/reset implement backtracking: a failed alternative that has not
// yet committed rewinds to the mark and tries the next alternative. The
// mark is the start offset of the current token, so reset re-scans that
// token into cur.
func (p *Parser) mark() int {
	return p.cur.Pos.Offset
}

func (p *Parser) reset(m int) {
	p.lex.Seek(m)
	p.advance()
}

// expect consumes the current token if it matches t, else raises a
// ParseError naming what was expected - the "committed choice" helper
// from spec §9: once the caller has decided this IS the production (a
// distinguishing prefix already matched), a further mismatch is a hard
// failure, not a backtrack point.
func (p *Parser) expect(t token.Token, expected string) (token.Item, error) {
	if p.cur.Type != t {
		return token.Item{}, rqerr.ParseError(p.cur.Pos.Offset, expected)
	}
	item := p.cur
	p.advance()
	return item, nil
}

func (p *Parser) fail(expected string) error {
	return rqerr.ParseError(p.cur.Pos.Offset, expected)
}

// atEnd reports RestQ's end_or_line: end of input or immediately before
// a newline.
func (p *Parser) atEnd() bool {
	return p.cur.Type == token.EOF
}

// --- C1 lexical primitives ---

// ident parses `[A-Za-z_][A-Za-z0-9_]*` without the restricted-identifier
// guard (used where the grammar position makes the word unambiguous,
// e.g. right after a `.` in a qualified name, or a data-type tag).
func (p *Parser) ident() (string, error) {
	item, err := p.expect(token.IDENT, "an identifier")
	if err != nil {
		return "", err
	}
	return item.Value, nil
}

// strictIdent is the restricted-identifier guard from §4.1/§9: the
// tokens `from group_by having order_by limit asc desc page page_size`
// must not parse as bare identifiers when immediately followed by
// end-of-input or one of `, & =`. This is the only negative lookahead in
// the grammar.
func (p *Parser) strictIdent() (string, error) {
	if p.cur.Type != token.IDENT {
		return "", p.fail("an identifier")
	}
	name := p.cur.Value
	if token.IsRestrictedIdent(name) {
		m := p.mark()
		p.advance()
		blocked := p.cur.Type == token.EOF || p.cur.Type == token.COMMA ||
			p.cur.Type == token.AMP || p.cur.Type == token.EQ
		p.reset(m)
		if blocked {
			return "", p.fail("an identifier (not a reserved query keyword)")
		}
	}
	p.advance()
	return name, nil
}

// tableName parses an identifier optionally followed by `.identifier`
// (one level of schema qualification).
func (p *Parser) tableName() (ast.TableName, error) {
	first, err := p.ident()
	if err != nil {
		return ast.TableName{}, err
	}
	parts := []string{first}
	if p.curIs(token.DOT) {
		p.advance()
		second, err := p.ident()
		if err != nil {
			return ast.TableName{}, err
		}
		parts = append(parts, second)
	}
	return ast.NewTableName(parts...), nil
}

// columnName parses an identifier with up to two `.identifier` suffixes
// (schema.table.column), guarded by the restricted-identifier rule on
// its first segment. A suffix that is itself a restricted word in guarded
// position (`.desc` before `,`, `&`, `=` or end of input) is left
// unconsumed, so order_by's direction marker is not read as a column part.
func (p *Parser) columnName() (ast.ColumnName, error) {
	first, err := p.strictIdent()
	if err != nil {
		return ast.ColumnName{}, err
	}
	parts := []string{first}
	for len(parts) < 3 && p.curIs(token.DOT) {
		m := p.mark()
		p.advance()
		next, err := p.ident()
		if err != nil {
			return ast.ColumnName{}, err
		}
		if token.IsRestrictedIdent(next) && (p.curIs(token.EOF) || p.curIs(token.COMMA) ||
			p.curIs(token.AMP) || p.curIs(token.EQ)) {
			p.reset(m)
			break
		}
		parts = append(parts, next)
	}
	return ast.NewColumnName(parts...), nil
}

// number parses a signed decimal with optional fraction/exponent.
func (p *Parser) number() (float64, error) {
	neg := false
	if p.curIs(token.MINUS) {
		neg = true
		p.advance()
	}
	if p.cur.Type != token.INT && p.cur.Type != token.FLOAT {
		return 0, p.fail("a number")
	}
	f, err := parseFloat(p.cur.Value)
	if err != nil {
		return 0, p.fail("a number")
	}
	p.advance()
	if neg {
		f = -f
	}
	return f, nil
}

// integer parses the same grammar as number but without fraction/
// exponent, mapped to a signed 64-bit integer.
func (p *Parser) integer() (int64, error) {
	neg := false
	if p.curIs(token.MINUS) {
		neg = true
		p.advance()
	}
	if p.cur.Type != token.INT {
		return 0, p.fail("an integer")
	}
	n, err := parseInt(p.cur.Value)
	if err != nil {
		return 0, p.fail("an integer")
	}
	p.advance()
	if neg {
		n = -n
	}
	return n, nil
}

// quotedString consumes any of the three quote styles (the lexer already
// unescapes and collapses them to a single STRING token).
func (p *Parser) quotedString() (string, error) {
	item, err := p.expect(token.STRING, "a quoted string")
	if err != nil {
		return "", err
	}
	return item.Value, nil
}

// unquotedString is the bare_string fallback: any run excluding `= & ( )`,
// guarded by the restricted-identifier rule. It bypasses the ordinary
// token stream since those characters would already have been split into
// punctuation tokens; see lexer.ScanUnquoted.
func (p *Parser) unquotedString() (string, error) {
	if p.cur.Type == token.IDENT && token.IsRestrictedIdent(p.cur.Value) {
		m := p.mark()
		p.advance()
		blocked := p.cur.Type == token.EOF || p.cur.Type == token.COMMA ||
			p.cur.Type == token.AMP || p.cur.Type == token.EQ
		p.reset(m)
		if blocked {
			return "", p.fail("an unquoted value (not a reserved query keyword)")
		}
	}
	p.lex.Seek(p.cur.Pos.Offset)
	s, ok := p.lex.ScanUnquoted("=&()")
	if !ok {
		return "", p.fail("an unquoted value")
	}
	p.advance()
	return s, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
