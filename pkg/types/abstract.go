package types

import "strings"

// AbstractType is a named nominal type: a primitive, a tagged value kind,
// or a compile-time constant type. Everything about it is declared, not
// computed: its parent edge places it in the hierarchy and its generated
// name records the host representation.
type AbstractType struct {
	typeBase
	name      string
	generated string
}

func newAbstractType(parent Type, name, generated string) *AbstractType {
	return &AbstractType{
		typeBase:  typeBase{parent: parent},
		name:      name,
		generated: generated,
	}
}

// Name returns the name the type was declared under.
func (t *AbstractType) Name() string { return t.name }

func (t *AbstractType) String() string { return t.display(t.name) }

// MangledName camel-cases the declared name behind a kind tag, so names
// with spaces stay valid symbol fragments.
func (t *AbstractType) MangledName() string { return "AT" + mangleWord(t.name) }

func (t *AbstractType) GeneratedTypeName() string { return t.generated }

func (t *AbstractType) GeneratedTNodeTypeName() string {
	inner, ok := strings.CutPrefix(t.generated, "TNode<")
	if !ok || !strings.HasSuffix(inner, ">") {
		panic(internalf([]Type{t}, "type %s has no TNode representation (generates %q)", t, t.generated))
	}
	return strings.TrimSuffix(inner, ">")
}

// IsConstexpr reports whether the declared name carries the reserved
// compile-time prefix.
func (t *AbstractType) IsConstexpr() bool {
	return strings.HasPrefix(t.name, ConstexprTypePrefix)
}

func (t *AbstractType) IsSubtypeOf(other Type) bool { return subtypeOf(t, other) }
