package ast

import "strings"

// Namespace holds an ordered list of Items under either the project root
// or a `::`-separated sub-path.
type Namespace struct {
	Kind  NamespaceKind
	Items []*Item
}

// NamespaceKind is Root or Sub(path); Sub distinguishes itself by
// HasPath, the Go stand-in for the reference's Root/Sub(NamespacePath)
// enum payload.
type NamespaceKind struct {
	HasPath bool
	Path    NamespacePath
}

// RootNamespace is the project's top-level namespace.
func RootNamespace() NamespaceKind {
	return NamespaceKind{}
}

// SubNamespace names a nested namespace by its `::`-separated path.
func SubNamespace(path NamespacePath) NamespaceKind {
	return NamespaceKind{HasPath: true, Path: path}
}

// NamespacePath is an ordered list of path segments, e.g. ["std", "io"].
type NamespacePath struct {
	Names []string
}

// NewNamespacePath builds a NamespacePath from its segments.
func NewNamespacePath(names []string) NamespacePath {
	return NamespacePath{Names: names}
}

// Name returns the path's last segment.
func (p NamespacePath) Name() string {
	return p.Names[len(p.Names)-1]
}

// Parent returns the path with its last segment dropped, and whether one
// exists (a single-segment path has no parent).
func (p NamespacePath) Parent() (NamespacePath, bool) {
	if len(p.Names) == 1 {
		return NamespacePath{}, false
	}
	return NamespacePath{Names: p.Names[:len(p.Names)-1]}, true
}

func (p NamespacePath) String() string {
	return strings.Join(p.Names, "::")
}
