package schema

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/kr/text"
)

func (t *List) WriteSchemaFormat(out io.StringWriter)     { out.WriteString(t.String()) }
func (t *NonNull) WriteSchemaFormat(out io.StringWriter)  { out.WriteString(t.String()) }
func (t *TypeName) WriteSchemaFormat(out io.StringWriter) { out.WriteString(t.Name) }

func (s *Schema) String() string {
	buf := &bytes.Buffer{}
	s.WriteSchemaFormat(buf)
	return buf.String()
}

// WriteSchemaFormat writes the schema in SDL, types sorted by name.
func (s *Schema) WriteSchemaFormat(out io.StringWriter) {
	names := make([]string, 0, len(s.Types))
	for name := range s.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		value := s.Types[name]
		if isBuiltIn(value) {
			continue
		}
		value.WriteSchemaFormat(out)
	}

	if len(s.EntryPoints) == 0 {
		return
	}
	ops := make([]string, 0, len(s.EntryPoints))
	for op := range s.EntryPoints {
		ops = append(ops, string(op))
	}
	sort.Strings(ops)
	out.WriteString("schema {\n")
	for _, op := range ops {
		out.WriteString(fmt.Sprintf("  %s: %s\n", op, s.EntryPoints[OperationType(op)].TypeName()))
	}
	out.WriteString("}\n")
}

func (t *Scalar) WriteSchemaFormat(out io.StringWriter) {
	writeDescription(out, t.Desc)
	out.WriteString("scalar ")
	out.WriteString(t.Name)
	out.WriteString("\n")
}

func (t *Object) WriteSchemaFormat(out io.StringWriter) {
	writeDescription(out, t.Desc)
	out.WriteString("type ")
	out.WriteString(t.Name)
	if len(t.Interfaces) > 0 {
		out.WriteString(" implements")
		for i, intf := range t.Interfaces {
			if i != 0 {
				out.WriteString(" &")
			}
			out.WriteString(" ")
			out.WriteString(intf.Name)
		}
	}
	out.WriteString(" {\n")
	for _, f := range t.Fields {
		i := &indent{}
		f.WriteSchemaFormat(i)
		i.WriteString("\n")
		i.Done(out)
	}
	out.WriteString("}\n")
}

type indent struct {
	bytes.Buffer
}

func (i *indent) Done(out io.StringWriter) {
	out.WriteString(text.Indent(i.String(), "  "))
}

func (t *Interface) WriteSchemaFormat(out io.StringWriter) {
	writeDescription(out, t.Desc)
	out.WriteString("interface ")
	out.WriteString(t.Name)
	out.WriteString(" {\n")
	for _, f := range t.Fields {
		i := &indent{}
		f.WriteSchemaFormat(i)
		i.WriteString("\n")
		i.Done(out)
	}
	out.WriteString("}\n")
}

func (t *Enum) WriteSchemaFormat(out io.StringWriter) {
	writeDescription(out, t.Desc)
	out.WriteString("enum ")
	out.WriteString(t.Name)
	out.WriteString(" {\n")
	for _, f := range t.Values {
		i := &indent{}
		f.WriteSchemaFormat(i)
		i.WriteString("\n")
		i.Done(out)
	}
	out.WriteString("}\n")
}

func (t *InputObject) WriteSchemaFormat(out io.StringWriter) {
	writeDescription(out, t.Desc)
	out.WriteString("input ")
	out.WriteString(t.Name)
	out.WriteString(" {\n")
	for _, f := range t.Fields {
		i := &indent{}
		f.WriteSchemaFormat(i)
		i.WriteString("\n")
		i.Done(out)
	}
	out.WriteString("}\n")
}

func (t *EnumValue) WriteSchemaFormat(out io.StringWriter) {
	writeDescription(out, t.Desc)
	out.WriteString(t.Name)
}

func (t *Field) WriteSchemaFormat(out io.StringWriter) {
	writeDescription(out, t.Desc)
	out.WriteString(t.Name)
	t.Args.WriteSchemaFormat(out)
	out.WriteString(":")
	out.WriteString(t.Type.String())
}

func (t InputValueList) WriteSchemaFormat(out io.StringWriter) {
	if len(t) > 0 {
		indented := false
		out.WriteString("(")
		for i, v := range t {
			if i != 0 {
				out.WriteString(", ")
			}

			b := bytes.Buffer{}
			v.WriteSchemaFormat(&b)
			arg := b.String()

			if strings.Contains(arg, "\n") {
				i := &indent{}
				i.WriteString("\n")
				i.WriteString(arg)
				i.Done(out)
				indented = true
			} else {
				out.WriteString(arg)
			}
		}
		if indented {
			out.WriteString("\n")
		}
		out.WriteString(")")
	}
}

func (t *InputValue) WriteSchemaFormat(out io.StringWriter) {
	writeDescription(out, t.Desc)
	out.WriteString(t.Name)
	out.WriteString(":")
	out.WriteString(t.Type.String())
}

func writeDescription(out io.StringWriter, desc string) {
	if desc == "" {
		return
	}
	if strings.Contains(desc, "\n") {
		out.WriteString(`"""`)
		out.WriteString(desc)
		out.WriteString(`"""` + "\n")
		return
	}
	out.WriteString(strconv.Quote(desc))
	out.WriteString("\n")
}
