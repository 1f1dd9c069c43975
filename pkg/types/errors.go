package types

import "fmt"

// InternalError reports an internally inconsistent type graph: nodes were
// combined in a way the registry's construction contracts are supposed to
// make impossible. It is raised as a panic because continuing would let
// the code generator pick wrong representations; CatchInternal recovers
// it at a compilation-unit boundary.
type InternalError struct {
	Message string
	Types   []Type
}

func (e *InternalError) Error() string { return e.Message }

func internalf(offenders []Type, format string, args ...any) *InternalError {
	return &InternalError{
		Message: fmt.Sprintf(format, args...),
		Types:   offenders,
	}
}

// CatchInternal runs fn and converts an *InternalError panic into a
// returned error. Any other panic propagates.
func CatchInternal(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*InternalError); ok {
				err = ie
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}
