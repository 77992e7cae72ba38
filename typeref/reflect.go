package typeref

import (
	"context"
	"reflect"
	"strings"
	"sync"
)

// Node is the capability implemented by types exposed through the shared
// Node interface.
type Node interface {
	GetId() string
}

// Enum is implemented by named basic types that enumerate their constants.
type Enum interface {
	EnumValues() []string
}

// Annotated types describe markers that struct tags cannot carry.
type Annotated interface {
	GraphQLAnnotations() Annotations
}

type Annotations struct {
	Name         string
	QueryFactory string
	Resolver     string
	Root         bool
	// Methods are keyed by Go method name.
	Methods map[string]MethodAnnotation
}

type MethodAnnotation struct {
	Ignore   bool
	Resolver string
}

var (
	nodeType      = reflect.TypeOf((*Node)(nil)).Elem()
	enumType      = reflect.TypeOf((*Enum)(nil)).Elem()
	annotatedType = reflect.TypeOf((*Annotated)(nil)).Elem()
	errorType     = reflect.TypeOf((*error)(nil)).Elem()
	contextType   = reflect.TypeOf((*context.Context)(nil)).Elem()
)

// Universe holds the classes known to a schema build. Reflected classes are
// created on first use and reused afterwards, so recursive types terminate.
type Universe struct {
	mu       sync.Mutex
	byType   map[reflect.Type]*Class
	declared map[string]*Class
}

func NewUniverse() *Universe {
	return &Universe{
		byType:   map[reflect.Type]*Class{},
		declared: map[string]*Class{},
	}
}

// Declare registers an explicitly declared class.
func (u *Universe) Declare(c *Class) *Class {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.declared[Key(c)] = c
	return c
}

// Lookup returns a declared class by its key (package path dot name).
func (u *Universe) Lookup(key string) *Class {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.declared[key]
}

// TypeOf returns the reference for the dynamic type of v.
func (u *Universe) TypeOf(v interface{}) Type {
	return u.Of(reflect.TypeOf(v))
}

// Of returns the reference for t. Pointers are dereferenced, slices and arrays
// become List[E] and maps become Map[K,V].
func (u *Universe) Of(t reflect.Type) Type {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.of(t)
}

func (u *Universe) of(t reflect.Type) Type {
	if t == nil {
		return Any
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return ListOf(u.of(t.Elem()))
	case reflect.Map:
		return MapOf(u.of(t.Key()), u.of(t.Elem()))
	}
	if c, ok := u.byType[t]; ok {
		return c
	}
	if t.PkgPath() == "" && t.Name() != "" {
		if c := BasicOf(t.Kind()); c != nil && c.Name == t.Name() {
			return c
		}
	}

	c := &Class{GoType: t, PkgPath: t.PkgPath()}
	c.Name, c.InstanceArgs = splitInstanceName(t.Name())
	if key := Key(c); u.declared[key] != nil {
		return u.declared[key]
	}
	u.byType[t] = c

	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		c.Shape = Basic
		c.Basic = t.Kind()
		if e, ok := reflect.New(t).Interface().(Enum); ok {
			c.Shape = Enumeration
			c.EnumValues = e.EnumValues()
		}
	case reflect.Struct:
		if t.Name() == "" {
			c.Shape = Opaque
			break
		}
		c.Shape = Struct
		u.inspectStruct(c, t)
	case reflect.Interface:
		if t.Name() == "" || t.NumMethod() == 0 || t == errorType {
			c.Shape = Opaque
			break
		}
		c.Shape = Struct
		u.inspectInterface(c, t)
	default:
		c.Shape = Opaque
	}
	if c.Shape == Struct {
		annotate(c, t)
	}
	return c
}

func (u *Universe) inspectStruct(c *Class, t reflect.Type) {
	var embedded []reflect.Type
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name, _ := parseTag(sf.Tag.Get("graphql"))
		if sf.Anonymous && name == "" {
			et := sf.Type
			for et.Kind() == reflect.Ptr {
				et = et.Elem()
			}
			if et.Kind() == reflect.Struct || et.Kind() == reflect.Interface {
				c.Embedded = append(c.Embedded, u.of(et))
				embedded = append(embedded, et)
				continue
			}
		}
		if sf.Name == "_" {
			c.Fields = append(c.Fields, &Field{Name: sf.Name, GoName: sf.Name, Synthetic: true, Type: Any})
			continue
		}
		if !sf.IsExported() {
			continue
		}
		f := TaggedField(sf.Name, sf.Tag.Get("graphql"))
		f.Type = u.of(sf.Type)
		c.Fields = append(c.Fields, f)
	}

	annotated := annotations(t).Methods
	pt := reflect.PointerTo(t)
	for i := 0; i < pt.NumMethod(); i++ {
		m := pt.Method(i)
		if _, ok := annotated[m.Name]; !ok && promoted(m, embedded) {
			continue
		}
		c.Methods = append(c.Methods, u.method(m.Name, m.Type, 1))
	}
}

// promoted reports whether m is supplied by one of the embedded types. A
// method redeclared with the embedded signature resolves identically from
// either level, so only a differing signature marks an override.
func promoted(m reflect.Method, embedded []reflect.Type) bool {
	for _, et := range embedded {
		em, in, ok := methodOf(et, m.Name)
		if ok && sameSignature(m.Type, 1, em.Type, in) {
			return true
		}
	}
	return false
}

func methodOf(t reflect.Type, name string) (reflect.Method, int, bool) {
	if t.Kind() == reflect.Interface {
		m, ok := t.MethodByName(name)
		return m, 0, ok
	}
	m, ok := reflect.PointerTo(t).MethodByName(name)
	return m, 1, ok
}

func sameSignature(a reflect.Type, ain int, b reflect.Type, bin int) bool {
	if a.NumIn()-ain != b.NumIn()-bin || a.NumOut() != b.NumOut() || a.IsVariadic() != b.IsVariadic() {
		return false
	}
	for i := 0; i < a.NumIn()-ain; i++ {
		if a.In(ain+i) != b.In(bin+i) {
			return false
		}
	}
	for i := 0; i < a.NumOut(); i++ {
		if a.Out(i) != b.Out(i) {
			return false
		}
	}
	return true
}

func (u *Universe) inspectInterface(c *Class, t reflect.Type) {
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		c.Methods = append(c.Methods, u.method(m.Name, m.Type, 0))
	}
}

func (u *Universe) method(name string, ft reflect.Type, in int) *Method {
	m := &Method{Name: name}
	if ft.NumIn() > in && ft.In(in) == contextType {
		m.TakesContext = true
		in++
	}
	for ; in < ft.NumIn(); in++ {
		m.Params = append(m.Params, u.of(ft.In(in)))
	}
	switch {
	case ft.NumOut() == 1 && ft.Out(0) != errorType:
		m.Returns = u.of(ft.Out(0))
	case ft.NumOut() == 2 && ft.Out(1) == errorType:
		m.Returns = u.of(ft.Out(0))
		m.ReturnsError = true
	}
	return m
}

func annotate(c *Class, t reflect.Type) {
	if t.Implements(nodeType) || (t.Kind() != reflect.Interface && reflect.PointerTo(t).Implements(nodeType)) {
		c.Markers.Node = true
	}
	a := annotations(t)
	c.Markers.Name = a.Name
	c.Markers.QueryFactory = a.QueryFactory
	c.Markers.Resolver = a.Resolver
	c.Markers.Root = a.Root
	for _, m := range c.Methods {
		if ma, ok := a.Methods[m.Name]; ok {
			m.Ignore = ma.Ignore
			m.Resolver = ma.Resolver
		}
	}
}

func annotations(t reflect.Type) Annotations {
	if t.Kind() == reflect.Interface || !reflect.PointerTo(t).Implements(annotatedType) {
		return Annotations{}
	}
	return reflect.New(t).Interface().(Annotated).GraphQLAnnotations()
}

func parseTag(tag string) (string, []string) {
	if tag == "" {
		return "", nil
	}
	parts := strings.Split(tag, ",")
	return strings.TrimSpace(parts[0]), parts[1:]
}

// TaggedField returns the field for the Go struct field goName carrying the
// graphql struct tag value tag: "name,ignore,resolver=x", or "-" to ignore
// the field. The field type is left to the caller.
func TaggedField(goName, tag string) *Field {
	f := &Field{Name: LowerFirst(goName), GoName: goName}
	name, options := parseTag(tag)
	switch name {
	case "-":
		f.Ignore = true
	case "":
	default:
		f.Name = name
	}
	for _, o := range options {
		o = strings.TrimSpace(o)
		switch {
		case o == "ignore":
			f.Ignore = true
		case strings.HasPrefix(o, "resolver="):
			f.Resolver = strings.TrimPrefix(o, "resolver=")
		}
	}
	return f
}

// splitInstanceName splits the reflected name of an instantiated generic
// type, "Box[int,example.com/m.Person]", into "Box" and its short argument
// names "int" and "Person".
func splitInstanceName(name string) (string, []string) {
	open := strings.IndexByte(name, '[')
	if open < 0 || !strings.HasSuffix(name, "]") {
		return name, nil
	}
	var args []string
	depth, start := 0, open+1
	inner := name[:len(name)-1]
	for i := open + 1; i < len(inner); i++ {
		switch inner[i] {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, shortTypeName(inner[start:i]))
				start = i + 1
			}
		}
	}
	args = append(args, shortTypeName(inner[start:]))
	return name[:open], args
}

// shortTypeName drops package qualifiers and pointer markers from every type
// name found in s.
func shortTypeName(s string) string {
	b := strings.Builder{}
	token := strings.Builder{}
	flush := func() {
		t := strings.TrimLeft(token.String(), "*")
		if i := strings.LastIndexByte(t, '/'); i >= 0 {
			t = t[i+1:]
		}
		if i := strings.LastIndexByte(t, '.'); i >= 0 {
			t = t[i+1:]
		}
		b.WriteString(t)
		token.Reset()
	}
	for _, r := range strings.TrimSpace(s) {
		switch r {
		case '[', ']', ',':
			flush()
			b.WriteRune(r)
		default:
			token.WriteRune(r)
		}
	}
	flush()
	return b.String()
}
