package types

import (
	"log/slog"
	"sort"

	"github.com/pkg/errors"
)

// Registry is the arena and sole factory for type nodes. Every node it
// hands out is interned for the life of a compilation, so reference
// identity is type identity; the checker and code generator consume nodes
// read-only. Declaration is single-threaded; once the universe is built,
// concurrent reads are safe because sealed nodes are never mutated.
type Registry struct {
	byName map[string]Type
	owned  map[Type]struct{}

	functionPointers map[string]*FunctionPointerType
	unions           map[string]*UnionType
}

// NewRegistry returns an empty registry. Most callers want NewUniverse,
// which also installs the base hierarchy.
func NewRegistry() *Registry {
	return &Registry{
		byName:           make(map[string]Type),
		owned:            make(map[Type]struct{}),
		functionPointers: make(map[string]*FunctionPointerType),
		unions:           make(map[string]*UnionType),
	}
}

// Lookup resolves a declared name or alias.
func (r *Registry) Lookup(name string) (Type, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Names returns every declared name and alias, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DeclareAbstract creates and interns a nominal type. parent must be nil,
// declaring a new root, or a type owned by this registry; generated names
// the host representation and may be empty for a valueless type.
func (r *Registry) DeclareAbstract(name string, parent Type, generated string) (*AbstractType, error) {
	if name == "" {
		return nil, errors.New("cannot declare a type without a name")
	}
	if _, exists := r.byName[name]; exists {
		return nil, errors.Errorf("type %q already declared", name)
	}
	if err := r.checkOwned(parent); err != nil {
		return nil, errors.Wrapf(err, "declaring %q", name)
	}
	t := newAbstractType(parent, name, generated)
	t.addAlias(name)
	r.byName[name] = t
	r.owned[t] = struct{}{}
	slog.Debug("declared abstract type",
		"name", name,
		"parent", describeParent(parent),
		"generates", generated)
	return t, nil
}

// DeclareAlias binds an additional name to an existing type. The name
// also becomes a display alias; identity and subtyping are unaffected.
func (r *Registry) DeclareAlias(name string, t Type) error {
	if name == "" {
		return errors.New("cannot declare an alias without a name")
	}
	if _, exists := r.byName[name]; exists {
		return errors.Errorf("type %q already declared", name)
	}
	if err := r.checkOwned(t); err != nil {
		return errors.Wrapf(err, "aliasing %q", name)
	}
	slog.Debug("declared type alias", "name", name, "type", t.String())
	t.base().addAlias(name)
	r.byName[name] = t
	return nil
}

// FunctionPointer interns the callable type with the given parameter and
// return types. All components must be owned by this registry, and the
// reserved Code type must already be declared: it anchors every function
// pointer in the nominal hierarchy.
func (r *Registry) FunctionPointer(parameterTypes []Type, returnType Type) (*FunctionPointerType, error) {
	root, ok := r.Lookup(CodeTypeName)
	if !ok {
		return nil, errors.Errorf("function pointer types need %q declared first", CodeTypeName)
	}
	for _, p := range parameterTypes {
		if err := r.checkOwned(p); err != nil {
			return nil, errors.Wrap(err, "function pointer parameter")
		}
	}
	if err := r.checkOwned(returnType); err != nil {
		return nil, errors.Wrap(err, "function pointer return type")
	}
	params := make([]Type, len(parameterTypes))
	copy(params, parameterTypes)
	t := newFunctionPointerType(root, params, returnType)
	key := t.MangledName()
	if existing, ok := r.functionPointers[key]; ok {
		return existing, nil
	}
	r.functionPointers[key] = t
	r.owned[t] = struct{}{}
	slog.Debug("interned function pointer type", "type", t.String(), "mangled", key)
	return t, nil
}

// UnionOf computes the type of a control-flow join between a and b: the
// dominating side when one subsumes the other, otherwise their normalized
// union, interned so repeated joins of the same members return the same
// node. Passing a node this registry does not own is an internal error.
func (r *Registry) UnionOf(a, b Type) Type {
	r.mustOwn(a)
	r.mustOwn(b)
	if a.IsSubtypeOf(b) {
		return b
	}
	if b.IsSubtypeOf(a) {
		return a
	}
	return r.internUnion(UnionFrom(a).Extend(b).Build())
}

// internUnion promotes a built union into the permanent type set. A
// non-union result, from a singleton collapsed by Build, passes through.
func (r *Registry) internUnion(t Type) Type {
	u, ok := t.(*UnionType)
	if !ok {
		return t
	}
	key := u.MangledName()
	if existing, ok := r.unions[key]; ok {
		return existing
	}
	r.unions[key] = u
	r.owned[u] = struct{}{}
	slog.Debug("promoted union type", "type", u.String(), "mangled", key)
	return u
}

// checkOwned enforces the construction-time contract that keeps the graph
// connected: an edge may only point at a node this registry created. nil
// is fine, it declares a root.
func (r *Registry) checkOwned(t Type) error {
	if t == nil {
		return nil
	}
	if _, ok := r.owned[t]; !ok {
		return errors.Errorf("type %s was not declared in this registry", t)
	}
	return nil
}

// mustOwn is the query-time counterpart of checkOwned. Transient unions
// built by a caller are accepted as long as their members are owned,
// since interning will resolve them to a permanent node.
func (r *Registry) mustOwn(t Type) {
	if u, ok := t.(*UnionType); ok {
		for _, m := range u.members {
			r.mustOwn(m)
		}
		return
	}
	if _, ok := r.owned[t]; !ok {
		panic(internalf([]Type{t}, "type %s was not declared in this registry", t))
	}
}

func describeParent(t Type) string {
	if t == nil {
		return "none"
	}
	return t.String()
}
