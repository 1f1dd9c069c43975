// Package types implements quill's type graph: the nominal hierarchy of
// abstract types, structurally interned function pointer types, union
// types with canonical member sets, and the signature model the checker
// and code generator share. Nodes are created and interned by a Registry,
// so reference identity is type identity throughout.
package types

import (
	"sort"
	"strings"
)

// ConstexprTypePrefix marks a type whose values exist only at compile
// time. The prefix is part of the declared name itself.
const ConstexprTypePrefix = "constexpr "

// Reserved type names. The predicates and the registry recognize these;
// everything else about a type comes from its declaration.
const (
	NeverTypeName         = "never"
	VoidTypeName          = "void"
	BoolTypeName          = "bool"
	ConstexprBoolTypeName = ConstexprTypePrefix + "bool"
	ArgumentsTypeName     = ConstexprTypePrefix + "Arguments"
	ContextTypeName       = "Context"
	ObjectTypeName        = "Object"
	StringTypeName        = "String"
	CodeTypeName          = "Code"
	IntPtrTypeName        = "intptr"
	ConstInt31TypeName    = ConstexprTypePrefix + "int31"
	ConstInt32TypeName    = ConstexprTypePrefix + "int32"
	ConstFloat64TypeName  = ConstexprTypePrefix + "float64"
)

// Type is implemented by the three node kinds of the graph: *AbstractType,
// *FunctionPointerType and *UnionType. Because every node is interned,
// subtyping and equality compare references, never names.
type Type interface {
	// String returns the display name: the first declared alias when one
	// exists, otherwise the explicit structural form.
	String() string

	// MangledName returns a deterministic name unique to this type,
	// usable as a symbol fragment in generated code.
	MangledName() string

	// GeneratedTypeName names the host representation the code generator
	// uses for values of this type. Empty for valueless types.
	GeneratedTypeName() string

	// GeneratedTNodeTypeName names the payload inside a TNode<...> host
	// representation. Asking for it on a type without one means the
	// graph is malformed, and panics with an *InternalError.
	GeneratedTNodeTypeName() string

	// IsConstexpr reports whether values of this type exist only at
	// compile time.
	IsConstexpr() bool

	// Parent returns the nominal supertype edge, or nil for a root.
	Parent() Type

	// IsSubtypeOf reports whether every value of this type is acceptable
	// where other is expected.
	IsSubtypeOf(other Type) bool

	// base keeps implementations inside this package and exposes the
	// state shared by all node kinds.
	base() *typeBase
}

var (
	_ Type = (*AbstractType)(nil)
	_ Type = (*FunctionPointerType)(nil)
	_ Type = (*UnionType)(nil)
)

// typeBase is the state common to every node: the nominal parent edge and
// the declared display aliases. Aliases are written only by the Registry;
// a node handed out to the checker is otherwise immutable.
type typeBase struct {
	parent  Type
	aliases []string // sorted, deduplicated
}

func (b *typeBase) base() *typeBase { return b }

func (b *typeBase) Parent() Type { return b.parent }

func (b *typeBase) addAlias(alias string) {
	i := sort.SearchStrings(b.aliases, alias)
	if i < len(b.aliases) && b.aliases[i] == alias {
		return
	}
	b.aliases = append(b.aliases, "")
	copy(b.aliases[i+1:], b.aliases[i:])
	b.aliases[i] = alias
}

// display renders the alias-aware name around the node's explicit form:
// no aliases shows the explicit form, one alias replaces it, and several
// show the first with the rest in an "aka." suffix.
func (b *typeBase) display(explicit string) string {
	switch len(b.aliases) {
	case 0:
		return explicit
	case 1:
		return b.aliases[0]
	}
	var out strings.Builder
	out.WriteString(b.aliases[0])
	out.WriteString(" (aka. ")
	for i, alias := range b.aliases[1:] {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(alias)
	}
	out.WriteString(")")
	return out.String()
}

// subtypeOf is the nominal rule shared by AbstractType and
// FunctionPointerType: walk the parent chain comparing references. A
// union on the right-hand side is asked existentially instead, so a
// member counts as a subtype of any union containing it.
func subtypeOf(t, super Type) bool {
	if u, ok := super.(*UnionType); ok {
		return u.IsSupertypeOf(t)
	}
	for cur := t; cur != nil; cur = cur.Parent() {
		if cur == super {
			return true
		}
	}
	return false
}

// depth is the distance from t to the root of its parent chain.
func depth(t Type) int {
	d := 0
	for cur := t.Parent(); cur != nil; cur = cur.Parent() {
		d++
	}
	return d
}

// CommonSupertype returns the closest ancestor shared by a and b along
// their parent chains: the deeper side is lifted until both sit at the
// same depth, then both walk up in lock step until they meet. Two types
// with no shared ancestor mean the registry produced a disconnected
// graph, which is fatal.
func CommonSupertype(a, b Type) Type {
	as, bs := a, b
	diff := depth(as) - depth(bs)
	for ; diff > 0; diff-- {
		as = as.Parent()
	}
	for ; diff < 0; diff++ {
		bs = bs.Parent()
	}
	for as != nil && bs != nil {
		if as == bs {
			return as
		}
		as = as.Parent()
		bs = bs.Parent()
	}
	panic(internalf([]Type{a, b}, "types %s and %s have no common supertype", a, b))
}
