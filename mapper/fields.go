package mapper

import (
	"strings"
	"unicode"

	"github.com/chirino/graphql-schemagen/errors"
	"github.com/chirino/graphql-schemagen/internal/linkedmap"
	"github.com/chirino/graphql-schemagen/typeref"
)

// discoverFields returns the fields declared at one class level: accessor
// methods first, then struct fields not already covered by an accessor. A
// name excluded on either side is left out and returned in ignored. Names
// for which shadowed returns true are skipped.
func (m *Mapper) discoverFields(c *typeref.Class, shadowed func(string) bool) ([]*FieldDescriptor, map[string]bool, error) {
	ignored := map[string]bool{}
	for _, method := range c.Methods {
		if name, ok := m.accessorName(method); ok && method.Ignore {
			ignored[name] = true
		}
	}
	for _, field := range c.Fields {
		if field.Ignore {
			ignored[field.Name] = true
		}
	}

	found := linkedmap.CreateLinkedMap[string, *FieldDescriptor](len(c.Methods) + len(c.Fields))
	for _, method := range c.Methods {
		name, ok := m.accessorName(method)
		if !ok || ignored[name] || found.Has(name) || shadowed(name) {
			continue
		}
		d, err := m.methodField(c, method, name)
		if err != nil {
			if errors.IsNotMappable(err) {
				m.skipField(c, name, err)
				continue
			}
			return nil, nil, err
		}
		found.Set(name, d)
	}

	for _, field := range c.Fields {
		if field.Static || field.Synthetic {
			continue
		}
		if ignored[field.Name] || found.Has(field.Name) || shadowed(field.Name) {
			continue
		}
		d, err := m.memberField(c, field)
		if err != nil {
			if errors.IsNotMappable(err) {
				m.skipField(c, field.Name, err)
				continue
			}
			return nil, nil, err
		}
		found.Set(field.Name, d)
	}
	return found.Values(), ignored, nil
}

// accessorName returns the field name of a getter: GetName and IsName both
// expose the field "name".
func (m *Mapper) accessorName(method *typeref.Method) (string, bool) {
	if !method.Accessor() {
		return "", false
	}
	for _, prefix := range m.getterPrefixes {
		rest := strings.TrimPrefix(method.Name, prefix)
		if rest == method.Name || rest == "" {
			continue
		}
		if r := []rune(rest)[0]; !unicode.IsUpper(r) {
			continue
		}
		return typeref.LowerFirst(rest), true
	}
	return "", false
}

func (m *Mapper) skipField(c *typeref.Class, name string, err error) {
	m.logger.Warn("skipping field with unmappable type", "type", c.String(), "field", name, "error", err)
}
