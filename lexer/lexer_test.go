package lexer

import (
	"testing"

	"github.com/ivanceras/restq/token"
)

func TestLexerBasicTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected []token.Item
	}{
		{
			input: "GET /person?age=30",
			expected: []token.Item{
				{Type: token.IDENT, Value: "GET"},
				{Type: token.SLASH, Value: "/"},
				{Type: token.IDENT, Value: "person"},
				{Type: token.QUESTION, Value: "?"},
				{Type: token.IDENT, Value: "age"},
				{Type: token.EQ, Value: "="},
				{Type: token.INT, Value: "30"},
				{Type: token.EOF, Value: ""},
			},
		},
		{
			input: "*category_id:s32,name:text?",
			expected: []token.Item{
				{Type: token.STAR, Value: "*"},
				{Type: token.IDENT, Value: "category_id"},
				{Type: token.COLON, Value: ":"},
				{Type: token.IDENT, Value: "s32"},
				{Type: token.COMMA, Value: ","},
				{Type: token.IDENT, Value: "name"},
				{Type: token.COLON, Value: ":"},
				{Type: token.IDENT, Value: "text"},
				{Type: token.QUESTION, Value: "?"},
				{Type: token.EOF, Value: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New(tt.input)
			for i, exp := range tt.expected {
				got := l.Next()
				if got.Type != exp.Type {
					t.Errorf("token %d: expected type %v, got %v", i, exp.Type, got.Type)
				}
				if got.Value != exp.Value {
					t.Errorf("token %d: expected value %q, got %q", i, exp.Value, got.Value)
				}
			}
		})
	}
}

func TestLexerJoinArrows(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Item
	}{
		{"->", token.Item{Type: token.ARROW, Value: "->"}},
		{"<-", token.Item{Type: token.LARROW, Value: "<-"}},
		{"-><-", token.Item{Type: token.INNERARROW, Value: "-><-"}},
		{"<-->", token.Item{Type: token.FULLARROW, Value: "<-->"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New(tt.input)
			got := l.Next()
			if got.Type != tt.expected.Type {
				t.Errorf("expected type %v, got %v", tt.expected.Type, got.Type)
			}
			if got.Value != tt.expected.Value {
				t.Errorf("expected value %q, got %q", tt.expected.Value, got.Value)
			}
		})
	}
}

func TestLexerRenameMarkers(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Item
	}{
		{"=>", token.Item{Type: token.RENAMEFAT, Value: "=>"}},
		{"=^", token.Item{Type: token.RENAMECARET, Value: "=^"}},
		{"=", token.Item{Type: token.EQ, Value: "="}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New(tt.input)
			got := l.Next()
			if got.Type != tt.expected.Type {
				t.Errorf("expected type %v, got %v", tt.expected.Type, got.Type)
			}
			if got.Value != tt.expected.Value {
				t.Errorf("expected value %q, got %q", tt.expected.Value, got.Value)
			}
		})
	}
}

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Item
	}{
		{"123", token.Item{Type: token.INT, Value: "123"}},
		{"-123", token.Item{Type: token.INT, Value: "-123"}},
		{"123.456", token.Item{Type: token.FLOAT, Value: "123.456"}},
		{"1e10", token.Item{Type: token.FLOAT, Value: "1e10"}},
		{"1.5e+10", token.Item{Type: token.FLOAT, Value: "1.5e+10"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New(tt.input)
			got := l.Next()
			if got.Type != tt.expected.Type {
				t.Errorf("expected type %v, got %v", tt.expected.Type, got.Type)
			}
			if got.Value != tt.expected.Value {
				t.Errorf("expected value %q, got %q", tt.expected.Value, got.Value)
			}
		})
	}
}

func TestLexerStrings(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Item
	}{
		{"'hello'", token.Item{Type: token.STRING, Value: "hello"}},
		{"'it''s'", token.Item{Type: token.STRING, Value: "it's"}},
		{`"double"`, token.Item{Type: token.STRING, Value: "double"}},
		{"`backtick`", token.Item{Type: token.STRING, Value: "backtick"}},
		{`'escaped\nchar'`, token.Item{Type: token.STRING, Value: "escaped\nchar"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New(tt.input)
			got := l.Next()
			if got.Type != tt.expected.Type {
				t.Errorf("expected type %v, got %v", tt.expected.Type, got.Type)
			}
			if got.Value != tt.expected.Value {
				t.Errorf("expected value %q, got %q", tt.expected.Value, got.Value)
			}
		})
	}
}

func TestLexerUnterminatedStringIsIllegal(t *testing.T) {
	l := New("'unterminated")
	got := l.Next()
	if got.Type != token.ILLEGAL {
		t.Errorf("expected ILLEGAL, got %v", got.Type)
	}
}

func TestLexerLoneLessThanIsIllegal(t *testing.T) {
	l := New("<")
	got := l.Next()
	if got.Type != token.ILLEGAL {
		t.Errorf("expected ILLEGAL, got %v", got.Type)
	}
}

func TestLexerNewlineEndsInput(t *testing.T) {
	l := New("GET /t\nDELETE /t")
	got := l.Next()
	if got.Type != token.IDENT || got.Value != "GET" {
		t.Fatalf("expected IDENT GET, got %v %q", got.Type, got.Value)
	}
	l.Next() // '/'
	l.Next() // 't'
	eof := l.Next()
	if eof.Type != token.EOF {
		t.Errorf("expected EOF at newline, got %v", eof.Type)
	}
}

func TestLexerPeek(t *testing.T) {
	l := New("GET /person")

	peek1 := l.Peek()
	if peek1.Type != token.IDENT || peek1.Value != "GET" {
		t.Errorf("expected IDENT GET, got %v %q", peek1.Type, peek1.Value)
	}
	peek2 := l.Peek()
	if peek2 != peek1 {
		t.Errorf("second Peek should return the same token, got %+v vs %+v", peek2, peek1)
	}

	next1 := l.Next()
	if next1 != peek1 {
		t.Errorf("Next after Peek should return the peeked token")
	}
	next2 := l.Next()
	if next2.Type != token.SLASH {
		t.Errorf("expected SLASH, got %v", next2.Type)
	}
}

func TestLexerMarkAndSeek(t *testing.T) {
	l := New("GET /person")
	l.Next() // GET
	mark := l.Mark()
	l.Next() // /
	l.Next() // person
	l.Seek(mark)
	got := l.Next()
	if got.Type != token.SLASH {
		t.Errorf("expected SLASH after seeking back, got %v", got.Type)
	}
}

func TestLexerPositions(t *testing.T) {
	input := "GET /a\nDELETE /b"
	l := New(input)

	expected := []struct {
		tok  token.Token
		line int
		col  int
	}{
		{token.IDENT, 1, 1}, // GET
		{token.SLASH, 1, 5},
		{token.IDENT, 1, 6}, // a
	}
	for _, exp := range expected {
		got := l.Next()
		if got.Type != exp.tok {
			t.Errorf("expected token %v, got %v", exp.tok, got.Type)
		}
		if got.Pos.Line != exp.line {
			t.Errorf("token %v: expected line %d, got %d", got.Type, exp.line, got.Pos.Line)
		}
		if got.Pos.Column != exp.col {
			t.Errorf("token %v: expected column %d, got %d", got.Type, exp.col, got.Pos.Column)
		}
	}
}

func TestGetPutRoundTrip(t *testing.T) {
	l := Get("GET /t")
	got := l.Next()
	if got.Type != token.IDENT || got.Value != "GET" {
		t.Fatalf("unexpected first token: %v %q", got.Type, got.Value)
	}
	Put(l)

	l2 := Get("DELETE /t")
	got2 := l2.Next()
	if got2.Type != token.IDENT || got2.Value != "DELETE" {
		t.Fatalf("reused lexer did not reset: %v %q", got2.Type, got2.Value)
	}
	Put(l2)
}

func TestLexerScanUnquoted(t *testing.T) {
	l := New("hello world")
	s, ok := l.ScanUnquoted("=&()")
	if !ok {
		t.Fatal("expected ScanUnquoted to succeed")
	}
	if s != "hello world" {
		t.Errorf("expected %q, got %q", "hello world", s)
	}
}

func BenchmarkLexer(b *testing.B) {
	input := "GET /person<-category?age=gt.30&name=eq.'bob'&order_by=name&limit=10"

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		l := New(input)
		for {
			tok := l.Next()
			if tok.Type == token.EOF {
				break
			}
		}
	}
}
