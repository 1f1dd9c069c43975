package types

import (
	"fmt"
	"strings"
)

// NameAndType pairs a declared name with its type.
type NameAndType struct {
	Name string
	Type Type
}

// LabelDeclaration declares a named alternate exit from a callable,
// together with the parameter types its continuation receives.
type LabelDeclaration struct {
	Name  string
	Types []Type
}

// ParameterTypes is a callable's declared parameter list. When Variadic
// is set the last declared type also matches any number of trailing
// arguments.
type ParameterTypes struct {
	Types    []Type
	Variadic bool
}

func (p ParameterTypes) String() string {
	var out strings.Builder
	for i, t := range p.Types {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(t.String())
	}
	if p.Variadic {
		if len(p.Types) > 0 {
			out.WriteString(", ")
		}
		out.WriteString("...")
	}
	return out.String()
}

// Signature is a callable's declared type: parameter names and types, the
// return type, and any label declarations.
type Signature struct {
	ParameterNames []string
	Parameters     ParameterTypes
	ReturnType     Type
	Labels         []LabelDeclaration
}

// Types returns the declared parameter types.
func (s *Signature) Types() []Type { return s.Parameters.Types }

// HasSameTypesAs reports whether two signatures declare the same
// parameter types, variadic flag and return type. Parameter names and
// labels are ignored; two overloads differing only there collide.
func (s *Signature) HasSameTypesAs(other *Signature) bool {
	if len(s.Parameters.Types) != len(other.Parameters.Types) {
		return false
	}
	for i, t := range s.Parameters.Types {
		if t != other.Parameters.Types[i] {
			return false
		}
	}
	return s.Parameters.Variadic == other.Parameters.Variadic &&
		s.ReturnType == other.ReturnType
}

// String renders the signature the way diagnostics quote it: named
// parameters, a return type unless it is void, then any labels with their
// parameter types.
func (s *Signature) String() string {
	var out strings.Builder
	out.WriteString("(")
	for i, t := range s.Parameters.Types {
		if i > 0 {
			out.WriteString(", ")
		}
		if i < len(s.ParameterNames) {
			out.WriteString(s.ParameterNames[i])
			out.WriteString(": ")
		}
		out.WriteString(t.String())
	}
	if s.Parameters.Variadic {
		if len(s.Parameters.Types) > 0 {
			out.WriteString(", ")
		}
		out.WriteString("...")
	}
	out.WriteString(")")
	if s.ReturnType != nil && !IsVoid(s.ReturnType) {
		_, _ = fmt.Fprintf(&out, ": %s", s.ReturnType)
	}
	if len(s.Labels) > 0 {
		out.WriteString(" labels ")
		for i, l := range s.Labels {
			if i > 0 {
				out.WriteString(", ")
			}
			out.WriteString(l.Name)
			if len(l.Types) > 0 {
				out.WriteString("(")
				for j, t := range l.Types {
					if j > 0 {
						out.WriteString(", ")
					}
					out.WriteString(t.String())
				}
				out.WriteString(")")
			}
		}
	}
	return out.String()
}

// IsAssignableFrom reports whether a value of type from may be bound
// where to is declared. Subtyping is the only assignability rule; there
// are no implicit conversions.
func IsAssignableFrom(to, from Type) bool {
	return from.IsSubtypeOf(to)
}

// IsCompatibleSignature reports whether actual argument types satisfy the
// declared parameter list: arity must match exactly, or exceed it when
// the declaration is variadic, in which case trailing arguments check
// against the last declared type. Too few arguments are never compatible.
// Incompatibility is an ordinary overload-resolution miss, not an error.
func IsCompatibleSignature(declared ParameterTypes, actual []Type) bool {
	if len(actual) < len(declared.Types) {
		return false
	}
	if len(actual) > len(declared.Types) && !declared.Variadic {
		return false
	}
	if len(declared.Types) == 0 {
		// A variadic list still needs a trailing declared type to check
		// extras against.
		return len(actual) == 0
	}
	for i, t := range actual {
		j := i
		if j >= len(declared.Types) {
			j = len(declared.Types) - 1
		}
		if !IsAssignableFrom(declared.Types[j], t) {
			return false
		}
	}
	return true
}
