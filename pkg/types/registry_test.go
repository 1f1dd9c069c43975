package types

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func testUniverse(t *testing.T) *Registry {
	t.Helper()
	r, err := NewUniverse()
	require.NoError(t, err)
	return r
}

func mustLookup(t *testing.T, r *Registry, name string) Type {
	t.Helper()
	typ, ok := r.Lookup(name)
	require.True(t, ok, "type %q not declared", name)
	return typ
}

func TestDeclareAbstract(t *testing.T) {
	r := NewRegistry()

	tagged, err := r.DeclareAbstract("Tagged", nil, "TNode<Object>")
	require.NoError(t, err)
	smi, err := r.DeclareAbstract("Smi", tagged, "TNode<Smi>")
	require.NoError(t, err)
	assert.Same(t, tagged, smi.Parent())
	assert.Same(t, smi, mustLookup(t, r, "Smi"))

	t.Run("empty name", func(t *testing.T) {
		_, err := r.DeclareAbstract("", nil, "")
		require.Error(t, err)
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := r.DeclareAbstract("Smi", tagged, "TNode<Smi>")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already declared")
	})

	t.Run("foreign parent", func(t *testing.T) {
		other := NewRegistry()
		foreign, err := other.DeclareAbstract("Tagged", nil, "TNode<Object>")
		require.NoError(t, err)
		_, err = r.DeclareAbstract("Oddball", foreign, "TNode<Oddball>")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not declared in this registry")
	})
}

func TestDeclareAlias(t *testing.T) {
	r := testUniverse(t)
	str := mustLookup(t, r, "String")

	require.NoError(t, r.DeclareAlias("Text", str))
	assert.Same(t, str, mustLookup(t, r, "Text"))

	t.Run("name collisions", func(t *testing.T) {
		assert.Error(t, r.DeclareAlias("Smi", str))
		assert.Error(t, r.DeclareAlias("Text", str))
		assert.Error(t, r.DeclareAlias("", str))
	})

	t.Run("transient unions cannot be named", func(t *testing.T) {
		smi := mustLookup(t, r, "Smi")
		heapNumber := mustLookup(t, r, "HeapNumber")

		transient := UnionFrom(smi).Extend(heapNumber).Build()
		err := r.DeclareAlias("Numeric", transient)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not declared in this registry")

		// Promoting through UnionOf makes it nameable.
		promoted := r.UnionOf(smi, heapNumber)
		assert.Same(t, promoted, mustLookup(t, r, "Number"))
		require.NoError(t, r.DeclareAlias("Numeric", promoted))
		assert.Same(t, promoted, mustLookup(t, r, "Numeric"))
	})
}

func TestFunctionPointer(t *testing.T) {
	r := testUniverse(t)
	smi := mustLookup(t, r, "Smi")
	object := mustLookup(t, r, "Object")
	ctx := mustLookup(t, r, "Context")

	fn1, err := r.FunctionPointer([]Type{ctx, smi}, object)
	require.NoError(t, err)
	fn2, err := r.FunctionPointer([]Type{ctx, smi}, object)
	require.NoError(t, err)
	assert.Same(t, fn1, fn2)
	assert.True(t, fn1.Eq(fn2))

	fn3, err := r.FunctionPointer([]Type{ctx}, object)
	require.NoError(t, err)
	assert.NotSame(t, fn1, fn3)
	assert.False(t, fn1.Eq(fn3))

	code := mustLookup(t, r, "Code")
	assert.Same(t, code, fn1.Parent())
	assert.True(t, fn1.IsSubtypeOf(code))

	t.Run("requires the Code root", func(t *testing.T) {
		bare := NewRegistry()
		x, err := bare.DeclareAbstract("X", nil, "TNode<X>")
		require.NoError(t, err)
		_, err = bare.FunctionPointer([]Type{x}, x)
		require.Error(t, err)
		assert.Contains(t, err.Error(), CodeTypeName)
	})

	t.Run("rejects foreign components", func(t *testing.T) {
		other := testUniverse(t)
		foreign := mustLookup(t, other, "Smi")
		_, err := r.FunctionPointer([]Type{foreign}, smi)
		require.Error(t, err)
		_, err = r.FunctionPointer(nil, foreign)
		require.Error(t, err)
	})
}

func TestUnionOf(t *testing.T) {
	r := testUniverse(t)
	smi := mustLookup(t, r, "Smi")
	heapNumber := mustLookup(t, r, "HeapNumber")
	str := mustLookup(t, r, "String")
	object := mustLookup(t, r, "Object")

	t.Run("subsumption short-circuits", func(t *testing.T) {
		assert.Same(t, object, r.UnionOf(smi, object))
		assert.Same(t, object, r.UnionOf(object, smi))
		assert.Same(t, smi, r.UnionOf(smi, smi))
	})

	t.Run("joins are interned", func(t *testing.T) {
		ab := r.UnionOf(smi, str)
		ba := r.UnionOf(str, smi)
		assert.Same(t, ab, ba)

		number := mustLookup(t, r, "Number")
		assert.Same(t, number, r.UnionOf(smi, heapNumber))
	})

	t.Run("accepts transient unions", func(t *testing.T) {
		transient := UnionFrom(smi).Extend(heapNumber).Build()
		promoted := r.UnionOf(transient, str)
		u, ok := promoted.(*UnionType)
		require.True(t, ok)
		assert.Len(t, u.Members(), 3)

		number := mustLookup(t, r, "Number")
		assert.Same(t, promoted, r.UnionOf(str, number))
	})

	t.Run("foreign nodes are fatal", func(t *testing.T) {
		other := testUniverse(t)
		foreign := mustLookup(t, other, "Smi")
		err := CatchInternal(func() { r.UnionOf(foreign, smi) })
		require.Error(t, err)
		var ie *InternalError
		require.ErrorAs(t, err, &ie)
		assert.Contains(t, ie.Message, "not declared in this registry")
	})
}

func TestBuildUniverseValidation(t *testing.T) {
	base := []TypeEntry{{Name: "Tagged", Generates: "TNode<Object>"}}

	t.Run("unknown parent", func(t *testing.T) {
		_, err := BuildUniverse(UniverseManifest{Types: []TypeEntry{
			{Name: "Smi", Extends: "Tagged"},
		}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not declared yet")
	})

	t.Run("nameless type", func(t *testing.T) {
		_, err := BuildUniverse(UniverseManifest{Types: []TypeEntry{
			{Generates: "TNode<Anon>"},
		}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "malformed type entry")
	})

	t.Run("constexpr without representation", func(t *testing.T) {
		_, err := BuildUniverse(UniverseManifest{Types: []TypeEntry{
			{Name: "constexpr word"},
		}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "generated representation")
	})

	t.Run("valueless with representation", func(t *testing.T) {
		_, err := BuildUniverse(UniverseManifest{Types: []TypeEntry{
			{Name: "void", Valueless: true, Generates: "TNode<Void>"},
		}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "malformed type entry")
	})

	t.Run("union needs two members", func(t *testing.T) {
		_, err := BuildUniverse(UniverseManifest{
			Types:  base,
			Unions: []UnionEntry{{Name: "Lonely", Members: []string{"Tagged"}}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "malformed union entry")
	})

	t.Run("union member must exist", func(t *testing.T) {
		_, err := BuildUniverse(UniverseManifest{
			Types:  base,
			Unions: []UnionEntry{{Name: "Broken", Members: []string{"Tagged", "Ghost"}}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"Ghost"`)
	})
}

func TestLoadUniverse(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "universe.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[types]]
name = "Tagged"
generates = "TNode<Object>"

[[types]]
name = "Smi"
extends = "Tagged"
`), 0644))

	r, err := LoadUniverse(path)
	require.NoError(t, err)
	smi := mustLookup(t, r, "Smi")
	assert.Equal(t, "TNode<Smi>", smi.GeneratedTypeName())
	assert.Same(t, mustLookup(t, r, "Tagged"), smi.Parent())

	_, err = LoadUniverse(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
}

func TestConcurrentReads(t *testing.T) {
	r := testUniverse(t)
	names := r.Names()
	object := mustLookup(t, r, "Object")

	// Expectations computed single-threaded; the sealed universe must
	// answer identically from any number of goroutines.
	type record struct {
		mangled   string
		subObject bool
	}
	want := make(map[string]record, len(names))
	for _, name := range names {
		typ := mustLookup(t, r, name)
		want[name] = record{
			mangled:   typ.MangledName(),
			subObject: typ.IsSubtypeOf(object),
		}
	}

	eg := new(errgroup.Group)
	for i := 0; i < 8; i++ {
		eg.Go(func() error {
			for j := 0; j < 50; j++ {
				for _, name := range names {
					typ, ok := r.Lookup(name)
					if !ok {
						return errors.Errorf("lost type %q", name)
					}
					got := record{
						mangled:   typ.MangledName(),
						subObject: typ.IsSubtypeOf(object),
					}
					if got != want[name] {
						return errors.Errorf("inconsistent read of %q", name)
					}
				}
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())
}
