package semantic

import (
	"testing"
)

func TestDeclareDuplicateInSameScope(t *testing.T) {
	table := NewTable()

	if _, ok := table.Declare("x", EntryVariable); !ok {
		t.Fatal("first declaration should succeed")
	}
	prev, ok := table.Declare("x", EntryArray)
	if ok {
		t.Fatal("redeclaration in the same scope should fail")
	}
	if prev != EntryVariable {
		t.Errorf("expected previous kind variable, got %v", prev)
	}
}

func TestDuplicateRegardlessOfKind(t *testing.T) {
	kinds := []EntryKind{EntryModule, EntryStruct, EntryStructFwd, EntryVariable, EntryArray}
	for _, first := range kinds {
		for _, second := range kinds {
			table := NewTable()
			if _, ok := table.Declare("n", first); !ok {
				t.Fatalf("declare %v failed", first)
			}
			if _, ok := table.Declare("n", second); ok {
				t.Errorf("declare %v after %v should fail", second, first)
			}
		}
	}
}

func TestShadowingAcrossScopes(t *testing.T) {
	table := NewTable()

	if _, ok := table.Declare("x", EntryVariable); !ok {
		t.Fatal("global declaration should succeed")
	}
	table.EnterScope("M")
	if _, ok := table.Declare("x", EntryVariable); !ok {
		t.Fatal("shadowing in an inner scope should succeed")
	}
	table.ExitScope()
}

func TestSameNameInSiblingScopes(t *testing.T) {
	table := NewTable()

	table.Declare("A", EntryStruct)
	table.EnterScope("A")
	if _, ok := table.Declare("x", EntryVariable); !ok {
		t.Fatal("declaring x in A should succeed")
	}
	table.ExitScope()

	table.Declare("B", EntryStruct)
	table.EnterScope("B")
	if _, ok := table.Declare("x", EntryVariable); !ok {
		t.Fatal("declaring x in sibling scope B should succeed")
	}
	table.ExitScope()
}

func TestExitScopeRestoresState(t *testing.T) {
	table := NewTable()

	table.Declare("M", EntryModule)
	table.EnterScope("M")
	table.Declare("inner", EntryVariable)
	if !table.IsDefined("inner") {
		t.Fatal("inner should be visible while its scope is open")
	}
	table.ExitScope()

	if table.IsDefined("inner") {
		t.Fatal("inner should be invisible as a plain name after its scope closed")
	}
	// The qualified spelling survives in the registry.
	if !table.IsDefined("M::inner") {
		t.Fatal("M::inner should stay reachable by qualified name")
	}
	if table.Depth() != 1 {
		t.Fatalf("expected only the global scope open, got depth %d", table.Depth())
	}
}

func TestIsDefinedWalksEnclosingPath(t *testing.T) {
	table := NewTable()

	table.Declare("M", EntryModule)
	table.EnterScope("M")
	table.Declare("T", EntryStructFwd)
	table.Declare("S", EntryStruct)
	table.EnterScope("S")

	// From inside M::S, the plain name T resolves through the enclosing path.
	if !table.IsDefined("T") {
		t.Error("T declared in the enclosing module should resolve")
	}
	if !table.IsDefined("M::T") {
		t.Error("M::T should resolve from anywhere below the root")
	}
	if !table.IsDefined("::M::T") {
		t.Error("::M::T should resolve absolutely")
	}
	if table.IsDefined("::T") {
		t.Error("::T should not resolve: T is not a root declaration")
	}
	if table.IsDefined("U") {
		t.Error("U was never declared")
	}

	table.ExitScope()
	table.ExitScope()
}

func TestNoForwardReferences(t *testing.T) {
	table := NewTable()

	table.Declare("M", EntryModule)
	table.EnterScope("M")
	if table.IsDefined("Later") {
		t.Fatal("a name declared later must not resolve yet")
	}
	table.Declare("Later", EntryStructFwd)
	if !table.IsDefined("Later") {
		t.Fatal("the name must resolve once declared")
	}
	table.ExitScope()
}

func TestLookupKinds(t *testing.T) {
	table := NewTable()
	table.Declare("M", EntryModule)
	table.EnterScope("M")
	table.Declare("S", EntryStruct)

	kind, ok := table.Lookup("S")
	if !ok || kind != EntryStruct {
		t.Fatalf("expected struct kind for S, got %v (ok=%v)", kind, ok)
	}
	kind, ok = table.Lookup("::M")
	if !ok || kind != EntryModule {
		t.Fatalf("expected module kind for ::M, got %v (ok=%v)", kind, ok)
	}
	table.ExitScope()
}

func TestMarkAsStruct(t *testing.T) {
	table := NewTable()
	table.Declare("S", EntryStruct)
	table.EnterScope("S")
	// S was declared in the enclosing scope; MarkAsStruct must find it there.
	table.MarkAsStruct("S")
	table.ExitScope()
	// Marking an unknown name is a no-op, not a panic.
	table.MarkAsStruct("nope")
}

func TestExitScopeUnderflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on unmatched ExitScope")
		}
	}()
	NewTable().ExitScope()
}
