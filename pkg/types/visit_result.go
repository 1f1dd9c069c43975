package types

// VisitResult records, for one value the code generator has produced, its
// type and the generated-code variable currently holding it.
type VisitResult struct {
	typ      Type
	variable string
}

func NewVisitResult(t Type, variable string) VisitResult {
	return VisitResult{typ: t, variable: variable}
}

// Type returns the value's type.
func (v VisitResult) Type() Type { return v.typ }

// Variable returns the generated-code variable naming the value.
func (v VisitResult) Variable() string { return v.variable }

// VisitResults is a sequence of produced values in evaluation order.
type VisitResults []VisitResult

// Types projects just the types, in the same order.
func (vs VisitResults) Types() []Type {
	out := make([]Type, len(vs))
	for i, v := range vs {
		out[i] = v.typ
	}
	return out
}

// Label is a handle to an alternate-exit continuation: its name and the
// values its parameters are bound to. Labels are created and owned by the
// enclosing code-generation scope; values passing through here only
// reference them.
type Label struct {
	Name       string
	Parameters []VisitResult
}

// Arguments is the realized input of one call: the evaluated parameter
// values plus the label targets the callee may exit through.
type Arguments struct {
	Parameters VisitResults
	Labels     []*Label
}
