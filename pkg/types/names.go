package types

import (
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
)

// mangleWord turns a declared name into a symbol fragment. Reserved names
// carry spaces ("constexpr int31"); camel-casing removes them without
// losing distinctness among the names the registry accepts.
func mangleWord(name string) string {
	return strcase.ToCamel(name)
}

// writeMangled appends t's mangled name behind its decimal length, which
// keeps composed mangles prefix-free and therefore injective.
func writeMangled(out *strings.Builder, t Type) {
	m := t.MangledName()
	out.WriteString(strconv.Itoa(len(m)))
	out.WriteString(m)
}

// defaultGeneratedName derives the host representation for a declared
// type that does not name one: a typed node handle over the camel-cased
// name.
func defaultGeneratedName(name string) string {
	return "TNode<" + strcase.ToCamel(name) + ">"
}
