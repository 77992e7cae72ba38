// Package naming computes canonical schema type names from type references.
package naming

import (
	"strings"

	"github.com/chirino/graphql-schemagen/typeref"
)

// Strategy derives the canonical name of a type. Implementations must be
// pure: the same reference always yields the same name.
type Strategy interface {
	TypeName(t typeref.Type) string
}

// StrategyFunc adapts a function to the Strategy interface.
type StrategyFunc func(t typeref.Type) string

func (f StrategyFunc) TypeName(t typeref.Type) string {
	return f(t)
}

const DefaultDelimiter = "_"

// Simple names a type by its simple name, followed by the names of its type
// arguments.
type Simple struct {
	Delimiter string
}

func (s Simple) TypeName(t typeref.Type) string {
	return typeName(t, s.delimiter(), simpleBase, s.TypeName)
}

func (s Simple) delimiter() string {
	if s.Delimiter == "" {
		return DefaultDelimiter
	}
	return s.Delimiter
}

// Full names a type by its fully qualified package path.
type Full struct {
	Delimiter string
}

func (s Full) TypeName(t typeref.Type) string {
	d := Simple{Delimiter: s.Delimiter}.delimiter()
	return typeName(t, d, fullBase, s.TypeName)
}

func fullBase(c *typeref.Class, d string) string {
	if c.Markers.Name != "" || c.PkgPath == "" {
		return simpleBase(c, d)
	}
	return qualifiedReplacer(d).Replace(c.PkgPath + "." + c.Name)
}

// Relay is Simple naming that moves type arguments in front of a trailing
// "Connection" suffix: XConnection[string] is named X_string_Connection.
type Relay struct {
	Delimiter string
	// Suffix defaults to "Connection" and is matched case insensitively.
	Suffix string
}

func (s Relay) TypeName(t typeref.Type) string {
	d := Simple{Delimiter: s.Delimiter}.delimiter()
	suffix := s.Suffix
	if suffix == "" {
		suffix = "Connection"
	}

	base, args := split(t, d, simpleBase, s.TypeName)
	if len(args) == 0 || !strings.HasSuffix(strings.ToLower(base), strings.ToLower(suffix)) {
		return join(base, args, d)
	}
	i := strings.LastIndex(strings.ToLower(base), strings.ToLower(suffix))
	prefix, tail := base[:i], base[i:]
	name := strings.Join(args, d) + d + tail
	if prefix == "" {
		return name
	}
	return prefix + d + name
}

type baseFunc func(c *typeref.Class, delimiter string) string

func typeName(t typeref.Type, d string, base baseFunc, arg func(typeref.Type) string) string {
	b, args := split(t, d, base, arg)
	return join(b, args, d)
}

// split returns the base name of t and the names arg gives its type
// arguments. Strategies pass their own TypeName so every argument carries its
// canonical name.
func split(t typeref.Type, d string, base baseFunc, arg func(typeref.Type) string) (string, []string) {
	switch t := t.(type) {
	case *typeref.Class:
		args := make([]string, len(t.InstanceArgs))
		for i, a := range t.InstanceArgs {
			args[i] = sanitize(a, d)
		}
		return base(t, d), args
	case *typeref.Parameterized:
		args := make([]string, len(t.Args))
		for i, a := range t.Args {
			args[i] = arg(a)
		}
		return base(t.Raw, d), args
	case *typeref.Wildcard:
		if len(t.Lower) > 0 {
			return split(t.Lower[0], d, base, arg)
		}
		if len(t.Upper) > 0 {
			return split(t.Upper[0], d, base, arg)
		}
		return "Object", nil
	case *typeref.Variable:
		return t.Name, nil
	}
	return "", nil
}

func join(base string, args []string, d string) string {
	if len(args) == 0 {
		return base
	}
	return base + d + strings.Join(args, d)
}

func simpleBase(c *typeref.Class, _ string) string {
	if c.Markers.Name != "" {
		return c.Markers.Name
	}
	return c.Name
}

func qualifiedReplacer(d string) *strings.Replacer {
	return strings.NewReplacer(".", d, "/", d, "-", d)
}

// sanitize turns a nested instance argument such as "Pair[int,string]" into
// "Pair_int_string".
func sanitize(name, d string) string {
	name = strings.NewReplacer("[", d, ",", d, "]", "").Replace(name)
	return strings.TrimSuffix(name, d)
}
