package types

import (
	"fmt"
	"strings"
)

// FunctionPointerType is the type of a callable value: an ordered
// parameter list and a return type. The Registry interns instances
// structurally, so two pointers with the same components are the same
// node. Its parent is always the reserved Code type, and representation
// questions delegate there: a function pointer is stored as code.
type FunctionPointerType struct {
	typeBase
	parameterTypes []Type
	returnType     Type
}

func newFunctionPointerType(parent Type, parameterTypes []Type, returnType Type) *FunctionPointerType {
	return &FunctionPointerType{
		typeBase:       typeBase{parent: parent},
		parameterTypes: parameterTypes,
		returnType:     returnType,
	}
}

// ParameterTypes returns the declared parameter types in order. Callers
// must not modify the returned slice.
func (t *FunctionPointerType) ParameterTypes() []Type { return t.parameterTypes }

// ReturnType returns the declared return type.
func (t *FunctionPointerType) ReturnType() Type { return t.returnType }

func (t *FunctionPointerType) String() string { return t.display(t.explicitString()) }

func (t *FunctionPointerType) explicitString() string {
	var out strings.Builder
	out.WriteString("builtin (")
	for i, p := range t.parameterTypes {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p.String())
	}
	_, _ = fmt.Fprintf(&out, ") => %s", t.returnType)
	return out.String()
}

// MangledName length-prefixes each component so distinct shapes can never
// collide.
func (t *FunctionPointerType) MangledName() string {
	var out strings.Builder
	out.WriteString("FT")
	for _, p := range t.parameterTypes {
		writeMangled(&out, p)
	}
	writeMangled(&out, t.returnType)
	return out.String()
}

func (t *FunctionPointerType) GeneratedTypeName() string { return t.parent.GeneratedTypeName() }

func (t *FunctionPointerType) GeneratedTNodeTypeName() string {
	return t.parent.GeneratedTNodeTypeName()
}

func (t *FunctionPointerType) IsConstexpr() bool { return t.parent.IsConstexpr() }

func (t *FunctionPointerType) IsSubtypeOf(other Type) bool { return subtypeOf(t, other) }

// Eq reports structural equality over the already-interned components.
func (t *FunctionPointerType) Eq(other Type) bool {
	o, ok := other.(*FunctionPointerType)
	if !ok || len(t.parameterTypes) != len(o.parameterTypes) {
		return false
	}
	for i, p := range t.parameterTypes {
		if p != o.parameterTypes[i] {
			return false
		}
	}
	return t.returnType == o.returnType
}
