package schema

import "strings"

// Kind identifies what a schema node accepts.
type Kind int

const (
	// KindString is a scalar string leaf.
	KindString Kind = iota
	// KindBool is a scalar boolean leaf.
	KindBool
	// KindNumber is a scalar numeric leaf (integer or float).
	KindNumber
	// KindBoolOrString is a leaf that keeps either a boolean or a string.
	KindBoolOrString
	// KindGroup is a node with named children.
	KindGroup
)

// String returns the kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindBoolOrString:
		return "bool or string"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Node is one entry of a configuration schema tree.
//
// Leaves carry a Default typed per Kind. Groups carry ordered Children and
// always materialize after a merge, populated with their children's defaults.
type Node struct {
	Name        string
	Kind        Kind
	Default     any
	Nullable    bool
	Description string
	Children    []*Node
}

// String declares a string leaf.
func String(name, def string) *Node {
	return &Node{Name: name, Kind: KindString, Default: def}
}

// NullableString declares a string leaf that defaults to null.
func NullableString(name string) *Node {
	return &Node{Name: name, Kind: KindString, Nullable: true}
}

// Bool declares a boolean leaf.
func Bool(name string, def bool) *Node {
	return &Node{Name: name, Kind: KindBool, Default: def}
}

// Number declares a numeric leaf.
func Number(name string, def int) *Node {
	return &Node{Name: name, Kind: KindNumber, Default: def}
}

// BoolOrString declares a leaf accepting a boolean or a string, with a
// boolean default.
func BoolOrString(name string, def bool) *Node {
	return &Node{Name: name, Kind: KindBoolOrString, Default: def}
}

// Group declares a group node with the given children, in order.
func Group(name string, children ...*Node) *Node {
	return &Node{Name: name, Kind: KindGroup, Children: children}
}

// Describe sets the node description and returns the node.
func (n *Node) Describe(text string) *Node {
	n.Description = text
	return n
}

// IsGroup reports whether n has children.
func (n *Node) IsGroup() bool {
	return n.Kind == KindGroup
}

// Child returns the direct child called name.
func (n *Node) Child(name string) (*Node, bool) {
	for _, c := range n.Children {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Lookup walks a dotted path ("config.theme.base") from n.
func (n *Node) Lookup(path string) (*Node, bool) {
	if path == "" {
		return n, true
	}
	cur := n
	for _, seg := range strings.Split(path, ".") {
		next, ok := cur.Child(seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Walk visits every leaf under n in declaration order with its dotted path.
func (n *Node) Walk(fn func(path string, leaf *Node)) {
	n.walk("", fn)
}

func (n *Node) walk(prefix string, fn func(string, *Node)) {
	for _, c := range n.Children {
		path := joinPath(prefix, c.Name)
		if c.IsGroup() {
			c.walk(path, fn)
			continue
		}
		fn(path, c)
	}
}

// Defaults returns the document produced by merging no overrides.
func (n *Node) Defaults() Document {
	doc, _ := NewMerger().Merge(n)
	return doc
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
