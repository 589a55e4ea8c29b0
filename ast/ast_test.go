package ast

import "testing"

func TestNamespacePathParent(t *testing.T) {
	path := NewNamespacePath([]string{"std", "io", "file"})
	if path.Name() != "file" {
		t.Fatalf("Name() = %q, want %q", path.Name(), "file")
	}

	parent, ok := path.Parent()
	if !ok {
		t.Fatalf("expected a multi-segment path to have a parent")
	}
	if parent.String() != "std::io" {
		t.Fatalf("Parent().String() = %q, want %q", parent.String(), "std::io")
	}

	single := NewNamespacePath([]string{"std"})
	if _, ok := single.Parent(); ok {
		t.Fatalf("expected a single-segment path to have no parent")
	}
}

func TestNewProjectStartsWithEmptyRootNamespace(t *testing.T) {
	p := NewProject("demo", Program)
	if p.Name != "demo" || p.Kind != Program {
		t.Fatalf("unexpected project fields: %#v", p)
	}
	if p.Root == nil || p.Root.Kind.HasPath {
		t.Fatalf("expected an empty root namespace, got %#v", p.Root)
	}
	if len(p.Root.Items) != 0 {
		t.Fatalf("expected a fresh project to have no items")
	}
}

func TestBinaryKindPrecedenceRoundTrips(t *testing.T) {
	for level := LowestBinaryKind().Precedence(); level <= Exponential.Precedence(); level++ {
		kind, ok := BinaryKindFromPrecedence(level)
		if !ok {
			t.Fatalf("expected a BinaryKind at precedence level %d", level)
		}
		if kind.Precedence() != level {
			t.Errorf("BinaryKind %v Precedence() = %d, want %d", kind, kind.Precedence(), level)
		}
	}

	if _, ok := BinaryKindFromPrecedence(99); ok {
		t.Fatalf("expected no BinaryKind at an out-of-range precedence level")
	}
}
