package diag

import (
	"strings"
	"testing"

	"midl/internal/source"
)

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	for i := 0; i < 3; i++ {
		ok := bag.Add(Diagnostic{Severity: SevError, Code: SynUnexpectedToken})
		if i < 2 && !ok {
			t.Fatalf("expected Add %d to succeed", i)
		}
		if i == 2 && ok {
			t.Fatal("expected Add past the limit to fail")
		}
	}
	if bag.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", bag.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	bag := NewBag(4)
	bag.Add(Diagnostic{Severity: SevInfo})
	bag.Add(Diagnostic{Severity: SevWarning})
	if bag.HasErrors() {
		t.Fatal("expected no errors yet")
	}
	bag.Add(Diagnostic{Severity: SevError})
	if !bag.HasErrors() {
		t.Fatal("expected errors after adding one")
	}
}

func TestBagSort(t *testing.T) {
	bag := NewBag(4)
	bag.Add(Diagnostic{Severity: SevError, Code: SynExpectSemicolon, Primary: source.Span{Start: 20, End: 21}})
	bag.Add(Diagnostic{Severity: SevError, Code: LexUnknownChar, Primary: source.Span{Start: 5, End: 6}})
	bag.Add(Diagnostic{Severity: SevWarning, Code: UnknownCode, Primary: source.Span{Start: 5, End: 6}})
	bag.Sort()

	items := bag.Items()
	if items[0].Code != LexUnknownChar {
		t.Errorf("expected LexUnknownChar first (same span, higher severity), got %v", items[0].Code)
	}
	if items[1].Severity != SevWarning {
		t.Errorf("expected the warning second, got %v", items[1].Severity)
	}
	if items[2].Code != SynExpectSemicolon {
		t.Errorf("expected SynExpectSemicolon last, got %v", items[2].Code)
	}
}

func TestRendererOutput(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.idl", []byte("module M {\nstruct S\n};\n"))

	var sb strings.Builder
	r := &Renderer{Out: &sb, FileSet: fs}
	r.Render(Diagnostic{
		Severity: SevError,
		Code:     SynExpectLBrace,
		Message:  "expected '{' after struct name",
		Primary:  source.Span{File: id, Start: 11, End: 17},
	})

	out := sb.String()
	if !strings.Contains(out, "t.idl:2:1") {
		t.Errorf("expected position in output, got %q", out)
	}
	if !strings.Contains(out, "ERROR[SynExpectLBrace]") {
		t.Errorf("expected severity and code in output, got %q", out)
	}
	if !strings.Contains(out, "struct S") {
		t.Errorf("expected source line excerpt in output, got %q", out)
	}
}

func TestRendererWithoutSpan(t *testing.T) {
	var sb strings.Builder
	r := &Renderer{Out: &sb}
	r.Render(Diagnostic{Severity: SevError, Code: IOLoadFileError, Message: "failed to load file"})
	if !strings.Contains(sb.String(), "ERROR[IOLoadFileError]: failed to load file") {
		t.Errorf("unexpected output %q", sb.String())
	}
}
