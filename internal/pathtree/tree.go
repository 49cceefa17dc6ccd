// Package pathtree stores values organized under a tree-like
// hierarchy of '/'-separated paths, where values from higher levels
// cascade down to lower levels unless the lower levels define
// their own values.
//
// For example, if 'foo/bar' defines a value X,
// foo/bar and all its descendants inherit this value:
//
//	t.Set("foo/bar", X)
//	t.Get("foo/bar")     // == X
//	t.Get("foo/bar/baz") // == X
//
// A descendant that defines its own value uses that instead,
// as do its own descendants.
package pathtree

import (
	"strings"
)

const _sep = '/'

// Root is the starting point of the path tree.
// The zero-value of Root is an empty tree.
type Root[T any] struct {
	root node[T]
}

// Set adds a value to the tree under the given path.
// All descendants of this path that do not have an explicit value
// will inherit this value.
// If this path already had a value specified, it will be overwritten.
func (r *Root[T]) Set(p string, v T) {
	r.root.set(p, &v)
}

// Lookup retrieves the value for the given path,
// inheriting values specified for parents of this path
// if it didn't get its own value.
//
// Lookup reports true if a value was found--even if it was inherited.
func (r *Root[T]) Lookup(p string) (v T, ok bool) {
	if got := r.root.get(p, nil); got != nil {
		v = *got
		ok = true
	}
	return v, ok
}

// Snapshot is a snapshot of values added to the tree
// presented in a hierarchical manner.
type Snapshot[T any] struct {
	// Value in the tree,
	// or nil if this node doesn't have an explicit value.
	Value *T

	// Path to this node.
	Path string

	// Children of this node.
	Children []Snapshot[T]
}

// Snapshot builds and returns a snapshot of all values
// in this path tree.
//
// The returned slice holds nodes closest to root.
func (r *Root[T]) Snapshot() []Snapshot[T] {
	return r.root.snapshot(nil).Children
}

type node[T any] struct {
	value *T
	// Children sorted by name.
	children []child[T]
}

type child[T any] struct {
	name string
	node *node[T]
}

// search finds the position of name among the children,
// reporting whether it is already present.
func (n *node[T]) search(name string) (int, bool) {
	lo, hi := 0, len(n.children)
	for lo < hi {
		mid := (lo + hi) / 2
		if n.children[mid].name < name {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < len(n.children) && n.children[lo].name == name
}

func (n *node[T]) child(name string) *node[T] {
	i, ok := n.search(name)
	if ok {
		return n.children[i].node
	}

	c := child[T]{name: name, node: new(node[T])}
	n.children = append(n.children, child[T]{})
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = c
	return c.node
}

func (n *node[T]) set(p string, v *T) {
	if len(p) == 0 {
		n.value = v
		return
	}

	head, tail := split(p)
	n.child(head).set(tail, v)
}

func (n *node[T]) get(p string, current *T) *T {
	if n.value != nil {
		current = n.value
	}
	if len(p) == 0 {
		return current
	}

	head, tail := split(p)
	i, ok := n.search(head)
	if !ok {
		return current
	}
	return n.children[i].node.get(tail, current)
}

func (n *node[T]) snapshot(path []string) Snapshot[T] {
	var children []Snapshot[T]
	if len(n.children) > 0 {
		children = make([]Snapshot[T], len(n.children))
		for i, c := range n.children {
			children[i] = c.node.snapshot(append(path, c.name))
		}
	}

	return Snapshot[T]{
		Value:    n.value,
		Path:     strings.Join(path, string(_sep)),
		Children: children,
	}
}

func split(p string) (head, tail string) {
	head, tail = p, ""
	if idx := strings.IndexByte(p, _sep); idx >= 0 {
		head, tail = p[:idx], p[idx+1:]
	}
	// Collapse any extra slashes at the start of the tail.
	for len(tail) > 0 && tail[0] == _sep {
		tail = tail[1:]
	}
	return head, tail
}
