package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	cases := []struct {
		ident string
		kind  Kind
		ok    bool
	}{
		{"module", KwModule, true},
		{"struct", KwStruct, true},
		{"unsigned", KwUnsigned, true},
		{"uint64", KwUint64, true},
		{"TRUE", BoolLit, true},
		{"false", BoolLit, true},
		{"Module", 0, false},
		{"int", 0, false},
		{"x", 0, false},
	}
	for _, c := range cases {
		k, ok := LookupKeyword(c.ident)
		if ok != c.ok || (ok && k != c.kind) {
			t.Errorf("LookupKeyword(%q) = (%v, %v), expected (%v, %v)", c.ident, k, ok, c.kind, c.ok)
		}
	}
}

func TestTokenPredicates(t *testing.T) {
	if !(Token{Kind: IntLit}).IsLiteral() {
		t.Error("IntLit should be a literal")
	}
	if (Token{Kind: Ident}).IsLiteral() {
		t.Error("Ident should not be a literal")
	}
	if !(Token{Kind: KwUnsigned}).IsBaseType() {
		t.Error("unsigned should start a base type")
	}
	if (Token{Kind: KwModule}).IsBaseType() {
		t.Error("module should not start a base type")
	}
	if !(Token{Kind: Tilde}).IsUnaryOp() {
		t.Error("~ should be a unary operator")
	}
	if (Token{Kind: Star}).IsUnaryOp() {
		t.Error("* should not be a unary operator")
	}
}
