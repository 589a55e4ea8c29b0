// Package ast defines the strongly-typed syntax tree the parser produces:
// Project at the root, Namespaces of Items, Functions with Bodies of
// Statements, and a Expression tree for everything that evaluates to a
// value.
//
// Go has no tagged-union enum, so each closed sum (ItemKind, BodyKind,
// Statement, Expression, ...) is modeled the way
// github.com/aundis/formula models its Node/Expression hierarchy: a
// marker interface plus one concrete struct per variant, each carrying an
// unexported marker method. Unlike that reference, nodes here carry no
// ID/Parent bookkeeping — this front end has no later passes that need to
// walk back up the tree.
package ast

// Project is the root of a compiled source tree.
type Project struct {
	Name string
	Kind ProjectKind
	Root *Namespace
}

// ProjectKind distinguishes a library package from a standalone program.
type ProjectKind int

const (
	Package ProjectKind = iota
	Program
)

// NewProject builds an empty Project with a Root namespace, mirroring the
// reference implementation's Default impl for ProjectNode.
func NewProject(name string, kind ProjectKind) *Project {
	return &Project{
		Name: name,
		Kind: kind,
		Root: &Namespace{Kind: RootNamespace()},
	}
}
