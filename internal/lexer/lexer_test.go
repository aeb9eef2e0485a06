package lexer

import (
	"testing"

	"midl/internal/diag"
	"midl/internal/source"
	"midl/internal/token"
)

func lexAll(t *testing.T, src string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.idl", []byte(src))
	bag := diag.NewBag(16)
	lx := New(fs.Get(id), Options{Reporter: diag.BagReporter{Bag: bag}})

	toks := lx.Tokens()
	if toks[len(toks)-1].Kind != token.EOF {
		t.Fatalf("expected trailing EOF, got %v", toks[len(toks)-1].Kind)
	}
	return toks[:len(toks)-1], bag
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestLexModuleHeader(t *testing.T) {
	toks, bag := lexAll(t, "module M { struct S { long x; }; };")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %d", bag.Len())
	}

	want := []token.Kind{
		token.KwModule, token.Ident, token.LBrace,
		token.KwStruct, token.Ident, token.LBrace,
		token.KwLong, token.Ident, token.Semicolon,
		token.RBrace, token.Semicolon,
		token.RBrace, token.Semicolon,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if toks[1].Text != "M" || toks[4].Text != "S" || toks[7].Text != "x" {
		t.Errorf("unexpected identifier texts: %q %q %q", toks[1].Text, toks[4].Text, toks[7].Text)
	}
}

func TestLexOperators(t *testing.T) {
	toks, bag := lexAll(t, ":: | ^ & << >> + - * / % ~ = , [ ]")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %d", bag.Len())
	}
	want := []token.Kind{
		token.ColonColon, token.Pipe, token.Caret, token.Amp,
		token.Shl, token.Shr, token.Plus, token.Minus, token.Star,
		token.Slash, token.Percent, token.Tilde, token.Assign,
		token.Comma, token.LBracket, token.RBracket,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestLexLiterals(t *testing.T) {
	cases := []struct {
		src  string
		kind token.Kind
	}{
		{"42", token.IntLit},
		{"0", token.IntLit},
		{"0x1F", token.IntLit},
		{"3.14", token.FloatLit},
		{"3.", token.FloatLit},
		{"1e9", token.FloatLit},
		{"2.5e-3", token.FloatLit},
		{`"hi there"`, token.StringLit},
		{`"esc \" quote"`, token.StringLit},
		{"'a'", token.CharLit},
		{`'\n'`, token.CharLit},
		{"TRUE", token.BoolLit},
		{"false", token.BoolLit},
	}
	for _, c := range cases {
		toks, bag := lexAll(t, c.src)
		if bag.Len() != 0 {
			t.Errorf("%q: unexpected diagnostics", c.src)
			continue
		}
		if len(toks) != 1 || toks[0].Kind != c.kind {
			t.Errorf("%q: expected single %v, got %v", c.src, c.kind, kinds(toks))
			continue
		}
		if toks[0].Text != c.src {
			t.Errorf("%q: expected text to round-trip, got %q", c.src, toks[0].Text)
		}
	}
}

func TestLexComments(t *testing.T) {
	toks, bag := lexAll(t, "// line comment\nmodule /* block\ncomment */ M")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %d", bag.Len())
	}
	want := []token.Kind{token.KwModule, token.Ident}
	got := kinds(toks)
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		src  string
		code diag.Code
	}{
		{"@", diag.LexUnknownChar},
		{`"open`, diag.LexUnterminatedString},
		{"'x", diag.LexUnterminatedChar},
		{"/* open", diag.LexUnterminatedBlockComment},
		{"0x", diag.LexBadNumber},
		{"1e+", diag.LexBadNumber},
		{"a : b", diag.LexBadScopeOperator},
	}
	for _, c := range cases {
		_, bag := lexAll(t, c.src)
		if bag.Len() == 0 {
			t.Errorf("%q: expected a diagnostic", c.src)
			continue
		}
		if bag.Items()[0].Code != c.code {
			t.Errorf("%q: expected code %v, got %v", c.src, c.code, bag.Items()[0].Code)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("p.idl", []byte("struct S"))
	lx := New(fs.Get(id), Options{})

	if lx.Peek().Kind != token.KwStruct {
		t.Fatal("expected Peek to see the struct keyword")
	}
	if lx.Next().Kind != token.KwStruct {
		t.Fatal("expected Next to return the peeked token")
	}
	if lx.Next().Kind != token.Ident {
		t.Fatal("expected the identifier after struct")
	}
}
