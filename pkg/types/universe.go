package types

import (
	_ "embed"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kr/pretty"
	"github.com/pkg/errors"
)

//go:embed universe.toml
var defaultUniverse string

// UniverseManifest declares a base type hierarchy: nominal types with
// their parent edges and host representations, then named unions built
// over them. The embedded default describes quill's standard universe; a
// host embedding quill can load its own with LoadUniverse.
type UniverseManifest struct {
	Types  []TypeEntry  `toml:"types"`
	Unions []UnionEntry `toml:"unions"`
}

// TypeEntry declares one nominal type.
type TypeEntry struct {
	// Name is the source-level type name. The "constexpr " prefix marks
	// a compile-time-only type.
	Name string `toml:"name"`

	// Extends names the parent type, which must appear earlier in the
	// manifest. Empty declares a root.
	Extends string `toml:"extends,omitempty"`

	// Generates names the host representation. When empty it defaults to
	// TNode<CamelCase(Name)>; constexpr types get no default and must
	// name their representation explicitly.
	Generates string `toml:"generates,omitempty"`

	// Valueless declares a type with no runtime values and therefore no
	// host representation, such as void and never.
	Valueless bool `toml:"valueless,omitempty"`
}

// UnionEntry names a union of previously declared types.
type UnionEntry struct {
	Name    string   `toml:"name"`
	Members []string `toml:"members"`
}

// NewUniverse builds a registry holding the default base hierarchy.
func NewUniverse() (*Registry, error) {
	var manifest UniverseManifest
	if _, err := toml.Decode(defaultUniverse, &manifest); err != nil {
		return nil, errors.Wrap(err, "decoding embedded universe manifest")
	}
	return BuildUniverse(manifest)
}

// LoadUniverse builds a registry from a manifest file.
func LoadUniverse(path string) (*Registry, error) {
	var manifest UniverseManifest
	if _, err := toml.DecodeFile(path, &manifest); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return BuildUniverse(manifest)
}

// BuildUniverse declares every manifest entry, in order, into a fresh
// registry.
func BuildUniverse(manifest UniverseManifest) (*Registry, error) {
	r := NewRegistry()
	for _, entry := range manifest.Types {
		if entry.Name == "" || (entry.Valueless && entry.Generates != "") {
			return nil, errors.Errorf("malformed type entry: %s", pretty.Sprint(entry))
		}
		var parent Type
		if entry.Extends != "" {
			p, ok := r.Lookup(entry.Extends)
			if !ok {
				return nil, errors.Errorf("type %q extends %q, which is not declared yet", entry.Name, entry.Extends)
			}
			parent = p
		}
		generated := entry.Generates
		if generated == "" && !entry.Valueless {
			if strings.HasPrefix(entry.Name, ConstexprTypePrefix) {
				return nil, errors.Errorf("constexpr type %q must name its generated representation", entry.Name)
			}
			generated = defaultGeneratedName(entry.Name)
		}
		if _, err := r.DeclareAbstract(entry.Name, parent, generated); err != nil {
			return nil, err
		}
	}
	for _, entry := range manifest.Unions {
		if entry.Name == "" || len(entry.Members) < 2 {
			return nil, errors.Errorf("malformed union entry: %s", pretty.Sprint(entry))
		}
		combined, err := r.unionOfNames(entry.Members)
		if err != nil {
			return nil, errors.Wrapf(err, "union %q", entry.Name)
		}
		if err := r.DeclareAlias(entry.Name, combined); err != nil {
			return nil, err
		}
	}
	slog.Debug("universe ready", "types", len(manifest.Types), "unions", len(manifest.Unions))
	return r, nil
}

// unionOfNames folds UnionOf over the named members, left to right.
func (r *Registry) unionOfNames(names []string) (Type, error) {
	var combined Type
	for _, name := range names {
		m, ok := r.Lookup(name)
		if !ok {
			return nil, errors.Errorf("member %q is not declared", name)
		}
		if combined == nil {
			combined = m
			continue
		}
		combined = r.UnionOf(combined, m)
	}
	return combined, nil
}
