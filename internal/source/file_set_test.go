package source

import (
	"testing"
)

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("a.idl", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}

	if file.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag to be set")
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("m.idl", []byte("module M {\n  struct S;\n};\n"))

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},   // 'm' of module
		{7, LineCol{Line: 1, Col: 8}},   // 'M'
		{10, LineCol{Line: 1, Col: 11}}, // the \n itself stays on line 1
		{11, LineCol{Line: 2, Col: 1}},  // first space of line 2
		{13, LineCol{Line: 2, Col: 3}},  // 's' of struct
		{23, LineCol{Line: 3, Col: 1}},  // '}'
	}
	for _, c := range cases {
		start, _ := fs.Resolve(Span{File: id, Start: c.off, End: c.off})
		if start != c.want {
			t.Errorf("Resolve(%d): expected %+v, got %+v", c.off, c.want, start)
		}
	}
}

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.idl", []byte("struct A;"), 0)
	id2 := fs.Add("test.idl", []byte("struct B;"), 0)
	if id1 == id2 {
		t.Fatalf("expected distinct IDs for re-added path")
	}

	latest, ok := fs.GetByPath("test.idl")
	if !ok {
		t.Fatal("expected file to be indexed by path")
	}
	if string(latest.Content) != "struct B;" {
		t.Errorf("expected index to point at latest version, got %q", latest.Content)
	}
	if string(fs.Get(id1).Content) != "struct A;" {
		t.Errorf("expected first version to stay reachable by ID")
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("l.idl", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	cases := []struct {
		line uint32
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
		{0, ""},
	}
	for _, c := range cases {
		if got := f.GetLine(c.line); got != c.want {
			t.Errorf("GetLine(%d): expected %q, got %q", c.line, c.want, got)
		}
	}
}

func TestLoadNormalizesCRLF(t *testing.T) {
	content, changed := normalizeCRLF([]byte("a\r\nb"))
	if !changed {
		t.Fatal("expected CRLF normalization to report a change")
	}
	if string(content) != "a\nb" {
		t.Errorf("expected %q, got %q", "a\nb", content)
	}

	content, changed = removeBOM([]byte{0xEF, 0xBB, 0xBF, 'x'})
	if !changed || string(content) != "x" {
		t.Errorf("expected BOM to be stripped, got %q (changed=%v)", content, changed)
	}
}
