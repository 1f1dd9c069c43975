package types

// isAbstractName reports whether t is the abstract type declared under
// the given reserved name. Function pointer and union nodes never match.
func isAbstractName(t Type, name string) bool {
	a, ok := t.(*AbstractType)
	return ok && a.name == name
}

// IsVoid reports whether t is the unit type.
func IsVoid(t Type) bool { return isAbstractName(t, VoidTypeName) }

// IsNever reports whether t is the bottom type of diverging control flow.
func IsNever(t Type) bool { return isAbstractName(t, NeverTypeName) }

// IsVoidOrNever reports whether a callable returning t produces no usable
// value, either because there is none or because the call never returns.
func IsVoidOrNever(t Type) bool { return IsVoid(t) || IsNever(t) }

// IsBool reports whether t is the runtime boolean type.
func IsBool(t Type) bool { return isAbstractName(t, BoolTypeName) }

// IsConstexprBool reports whether t is the compile-time boolean type.
func IsConstexprBool(t Type) bool { return isAbstractName(t, ConstexprBoolTypeName) }
