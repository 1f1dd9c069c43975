package types

import (
	"sort"
	"strings"
)

// UnionType is a finite set of member types kept in canonical order by
// mangled name, so rendering, mangling and equality are independent of
// construction order. The parent edge caches the common supertype of the
// members.
//
// Invariants, established by UnionBuilder and relied on everywhere: the
// member set is non-empty, contains no unions, contains no member that is
// a subtype of another, and every member is a subtype of the parent.
type UnionType struct {
	typeBase
	members []Type
}

func newUnionType(t Type) *UnionType {
	return &UnionType{
		typeBase: typeBase{parent: t},
		members:  []Type{t},
	}
}

// Members returns the canonically ordered member set. Callers must not
// modify the returned slice.
func (t *UnionType) Members() []Type { return t.members }

// SingleMember returns the sole member of a singleton union.
func (t *UnionType) SingleMember() (Type, bool) {
	if len(t.members) == 1 {
		return t.members[0], true
	}
	return nil, false
}

// Normalize collapses a singleton union to its sole member, which is
// interchangeable with the union itself, and returns t unchanged
// otherwise. Anything caching or comparing by reference normalizes first.
func (t *UnionType) Normalize() Type {
	if m, ok := t.SingleMember(); ok {
		return m
	}
	return t
}

func (t *UnionType) String() string { return t.display(t.explicitString()) }

func (t *UnionType) explicitString() string {
	var out strings.Builder
	out.WriteString("(")
	for i, m := range t.members {
		if i > 0 {
			out.WriteString(" | ")
		}
		out.WriteString(m.String())
	}
	out.WriteString(")")
	return out.String()
}

func (t *UnionType) MangledName() string {
	var out strings.Builder
	out.WriteString("UT")
	for _, m := range t.members {
		writeMangled(&out, m)
	}
	return out.String()
}

func (t *UnionType) GeneratedTypeName() string {
	return "TNode<" + t.GeneratedTNodeTypeName() + ">"
}

// GeneratedTNodeTypeName falls back to the common supertype: a
// union-typed value is stored in its parent's representation.
func (t *UnionType) GeneratedTNodeTypeName() string {
	return t.parent.GeneratedTNodeTypeName()
}

// IsConstexpr is always false. A constexpr parent would mean the builder
// combined compile-time types into a union, which it never does.
func (t *UnionType) IsConstexpr() bool {
	if t.parent.IsConstexpr() {
		panic(internalf([]Type{t}, "union %s has constexpr supertype %s", t, t.parent))
	}
	return false
}

// IsSubtypeOf quantifies universally: the union fits where other is
// expected only if every member does.
func (t *UnionType) IsSubtypeOf(other Type) bool {
	for _, m := range t.members {
		if !m.IsSubtypeOf(other) {
			return false
		}
	}
	return true
}

// IsSupertypeOf quantifies existentially: one member that subsumes other
// is enough.
func (t *UnionType) IsSupertypeOf(other Type) bool {
	for _, m := range t.members {
		if other.IsSubtypeOf(m) {
			return true
		}
	}
	return false
}

// Eq reports structural equality: the same members in the same canonical
// order.
func (t *UnionType) Eq(other Type) bool {
	o, ok := other.(*UnionType)
	if !ok || len(t.members) != len(o.members) {
		return false
	}
	for i, m := range t.members {
		if m != o.members[i] {
			return false
		}
	}
	return true
}

// UnionBuilder holds the only mutable handle to a union under
// construction. Build seals the node; a sealed union is never mutated
// again, which is what makes sharing interned unions safe.
type UnionBuilder struct {
	u *UnionType
}

// UnionFrom seeds a builder from t: a copy of t's member set when t is
// already a union, otherwise a singleton union whose sole member and
// parent are both t.
func UnionFrom(t Type) *UnionBuilder {
	if u, ok := t.(*UnionType); ok {
		members := make([]Type, len(u.members))
		copy(members, u.members)
		return &UnionBuilder{u: &UnionType{
			typeBase: typeBase{parent: u.parent},
			members:  members,
		}}
	}
	return &UnionBuilder{u: newUnionType(t)}
}

// Extend merges t into the union under construction. Unions flatten
// member by member; a t already subsumed by some member is a no-op;
// otherwise the parent is lifted to the common supertype of itself and t,
// members that t subsumes are pruned, and t is inserted at its canonical
// position.
func (b *UnionBuilder) Extend(t Type) *UnionBuilder {
	u := b.mutable()
	if nested, ok := t.(*UnionType); ok {
		for _, m := range nested.members {
			b.Extend(m)
		}
		return b
	}
	if t.IsSubtypeOf(u) {
		return b
	}
	u.parent = CommonSupertype(u.parent, t)
	kept := u.members[:0]
	for _, m := range u.members {
		if !m.IsSubtypeOf(t) {
			kept = append(kept, m)
		}
	}
	u.members = kept
	tm := t.MangledName()
	i := sort.Search(len(u.members), func(i int) bool {
		return u.members[i].MangledName() >= tm
	})
	u.members = append(u.members, nil)
	copy(u.members[i+1:], u.members[i:])
	u.members[i] = t
	return b
}

// Build seals the union and invalidates the builder. A singleton
// collapses to its sole member, so the result is already normalized.
func (b *UnionBuilder) Build() Type {
	u := b.mutable()
	b.u = nil
	return u.Normalize()
}

func (b *UnionBuilder) mutable() *UnionType {
	if b.u == nil {
		panic(internalf(nil, "union builder used after Build"))
	}
	return b.u
}
