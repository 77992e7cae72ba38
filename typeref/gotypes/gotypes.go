// Package gotypes builds typeref classes from Go sources with go/types.
//
// Unlike reflection, static analysis sees generic declarations, so a field
// of type T in Box[T any] is a type variable and Box[int] is a parameterized
// reference. Type level markers are read from doc comment directives:
//
//	//graphql:name=Person
//	//graphql:node
//	//graphql:root
//	//graphql:enum
//	//graphql:query=key
//	//graphql:resolver=name
//
// Methods accept //graphql:ignore and //graphql:resolver=name.
package gotypes

import (
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/chirino/graphql-schemagen/errors"
	"github.com/chirino/graphql-schemagen/typeref"
)

// LoadMode is what Load asks go/packages for.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Load loads the packages matching patterns and declares their exported
// named types in u.
func Load(u *typeref.Universe, patterns ...string) ([]*typeref.Class, error) {
	pkgs, err := packages.Load(&packages.Config{Mode: LoadMode}, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load packages")
	}
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Multi(errs...)
	}

	imp := NewImporter(u)
	var result []*typeref.Class
	for _, pkg := range pkgs {
		result = append(result, imp.Import(pkg.Types, pkg.Syntax)...)
	}
	return result, nil
}

// Importer converts go/types types into typeref types. Classes are created
// once per type name, so recursive types terminate.
type Importer struct {
	universe   *typeref.Universe
	classes    map[*types.TypeName]*typeref.Class
	directives map[string][]string
	errorType  types.Type
}

func NewImporter(u *typeref.Universe) *Importer {
	return &Importer{
		universe:   u,
		classes:    map[*types.TypeName]*typeref.Class{},
		directives: map[string][]string{},
		errorType:  types.Universe.Lookup("error").Type(),
	}
}

// Import declares the exported named types of pkg and returns their classes
// sorted by name. files are the parsed sources of pkg, used to read doc
// comment directives; they may be nil.
func (imp *Importer) Import(pkg *types.Package, files []*ast.File) []*typeref.Class {
	for _, f := range files {
		imp.collectDirectives(pkg.Path(), f)
	}
	var result []*typeref.Class
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !tn.Exported() || tn.IsAlias() {
			continue
		}
		c := imp.class(tn)
		imp.universe.Declare(c)
		result = append(result, c)
	}
	return result
}

// Type converts t. Type parameters become variables named as declared.
func (imp *Importer) Type(t types.Type) typeref.Type {
	return imp.convert(t, nil)
}

func (imp *Importer) convert(t types.Type, rename map[string]string) typeref.Type {
	switch t := types.Unalias(t).(type) {
	case *types.Pointer:
		return imp.convert(t.Elem(), rename)
	case *types.Slice:
		return typeref.ListOf(imp.convert(t.Elem(), rename))
	case *types.Array:
		return typeref.ListOf(imp.convert(t.Elem(), rename))
	case *types.Map:
		return typeref.MapOf(imp.convert(t.Key(), rename), imp.convert(t.Elem(), rename))
	case *types.TypeParam:
		name := t.Obj().Name()
		if declared, ok := rename[name]; ok {
			name = declared
		}
		return &typeref.Variable{Name: name}
	case *types.Basic:
		if c := typeref.BasicOf(basicKind(t.Kind())); c != nil {
			return c
		}
	case *types.Named:
		if t.Obj().Pkg() == nil {
			// error and comparable
			return typeref.Any
		}
		c := imp.class(t.Origin().Obj())
		args := t.TypeArgs()
		if args == nil || args.Len() == 0 {
			return c
		}
		p := &typeref.Parameterized{Raw: c}
		for i := 0; i < args.Len(); i++ {
			p.Args = append(p.Args, imp.convert(args.At(i), rename))
		}
		return p
	}
	return typeref.Any
}

func (imp *Importer) class(tn *types.TypeName) *typeref.Class {
	if c, ok := imp.classes[tn]; ok {
		return c
	}
	c := &typeref.Class{Name: tn.Name(), PkgPath: tn.Pkg().Path()}
	imp.classes[tn] = c

	named, ok := tn.Type().(*types.Named)
	if !ok {
		c.Shape = typeref.Opaque
		return c
	}
	for i := 0; i < named.TypeParams().Len(); i++ {
		c.TypeParams = append(c.TypeParams, &typeref.Variable{Name: named.TypeParams().At(i).Obj().Name()})
	}

	directives := imp.directives[c.PkgPath+"."+c.Name]
	switch u := named.Underlying().(type) {
	case *types.Basic:
		c.Basic = basicKind(u.Kind())
		c.Shape = typeref.Basic
		if c.Basic == reflect.Invalid {
			c.Shape = typeref.Opaque
		} else if has(directives, "enum") || hasMethod(named, "EnumValues") {
			c.Shape = typeref.Enumeration
			c.EnumValues = enumConstants(tn)
		}
	case *types.Struct:
		c.Shape = typeref.Struct
		imp.structFields(c, u)
		imp.methods(c, named)
	case *types.Interface:
		if u.NumMethods() == 0 {
			c.Shape = typeref.Opaque
			break
		}
		c.Shape = typeref.Struct
		for i := 0; i < u.NumEmbeddeds(); i++ {
			c.Embedded = append(c.Embedded, imp.convert(u.EmbeddedType(i), nil))
		}
		for i := 0; i < u.NumExplicitMethods(); i++ {
			if m := imp.method(c, u.ExplicitMethod(i), nil); m != nil {
				c.Methods = append(c.Methods, m)
			}
		}
	default:
		c.Shape = typeref.Opaque
	}

	if c.Shape == typeref.Struct {
		c.Markers.Node = isNode(named)
		applyMarkers(c, directives)
	}
	return c
}

func (imp *Importer) structFields(c *typeref.Class, st *types.Struct) {
	for i := 0; i < st.NumFields(); i++ {
		v := st.Field(i)
		tag := reflect.StructTag(st.Tag(i)).Get("graphql")
		if name, _, _ := strings.Cut(tag, ","); v.Embedded() && strings.TrimSpace(name) == "" && isComposite(v.Type()) {
			c.Embedded = append(c.Embedded, imp.convert(v.Type(), nil))
			continue
		}
		if v.Name() == "_" {
			c.Fields = append(c.Fields, &typeref.Field{Name: "_", GoName: "_", Synthetic: true, Type: typeref.Any})
			continue
		}
		if !v.Exported() {
			continue
		}
		f := typeref.TaggedField(v.Name(), tag)
		f.Type = imp.convert(v.Type(), nil)
		c.Fields = append(c.Fields, f)
	}
}

func (imp *Importer) methods(c *typeref.Class, named *types.Named) {
	for i := 0; i < named.NumMethods(); i++ {
		fn := named.Method(i)
		if !fn.Exported() {
			continue
		}
		sig := fn.Type().(*types.Signature)
		// A method may name the receiver type parameters differently from
		// the type declaration.
		var rename map[string]string
		if rtp := sig.RecvTypeParams(); rtp != nil {
			rename = map[string]string{}
			for j := 0; j < rtp.Len() && j < len(c.TypeParams); j++ {
				rename[rtp.At(j).Obj().Name()] = c.TypeParams[j].Name
			}
		}
		if m := imp.method(c, fn, rename); m != nil {
			c.Methods = append(c.Methods, m)
		}
	}
}

func (imp *Importer) method(c *typeref.Class, fn *types.Func, rename map[string]string) *typeref.Method {
	sig := fn.Type().(*types.Signature)
	m := &typeref.Method{Name: fn.Name()}
	params := sig.Params()
	i := 0
	if params.Len() > 0 && isContext(params.At(0).Type()) {
		m.TakesContext = true
		i++
	}
	for ; i < params.Len(); i++ {
		m.Params = append(m.Params, imp.convert(params.At(i).Type(), rename))
	}
	results := sig.Results()
	switch {
	case results.Len() == 1 && !types.Identical(results.At(0).Type(), imp.errorType):
		m.Returns = imp.convert(results.At(0).Type(), rename)
	case results.Len() == 2 && types.Identical(results.At(1).Type(), imp.errorType):
		m.Returns = imp.convert(results.At(0).Type(), rename)
		m.ReturnsError = true
	}

	for _, d := range imp.directives[c.PkgPath+"."+c.Name+"."+fn.Name()] {
		switch {
		case d == "ignore":
			m.Ignore = true
		case strings.HasPrefix(d, "resolver="):
			m.Resolver = strings.TrimPrefix(d, "resolver=")
		}
	}
	return m
}

// collectDirectives indexes the //graphql: directives of the type and
// method declarations of f by "pkg.Type" and "pkg.Type.Method".
func (imp *Importer) collectDirectives(pkgPath string, f *ast.File) {
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}
			for _, spec := range d.Specs {
				ts := spec.(*ast.TypeSpec)
				doc := ts.Doc
				if doc == nil && len(d.Specs) == 1 {
					doc = d.Doc
				}
				if found := parseDirectives(doc); len(found) > 0 {
					imp.directives[pkgPath+"."+ts.Name.Name] = found
				}
			}
		case *ast.FuncDecl:
			if d.Recv == nil || len(d.Recv.List) == 0 {
				continue
			}
			recv := receiverName(d.Recv.List[0].Type)
			if found := parseDirectives(d.Doc); recv != "" && len(found) > 0 {
				imp.directives[pkgPath+"."+recv+"."+d.Name.Name] = found
			}
		}
	}
}

func parseDirectives(doc *ast.CommentGroup) []string {
	if doc == nil {
		return nil
	}
	var result []string
	for _, c := range doc.List {
		text, ok := strings.CutPrefix(c.Text, "//graphql:")
		if !ok {
			continue
		}
		result = append(result, strings.FieldsFunc(text, func(r rune) bool { return r == ',' || r == ' ' })...)
	}
	return result
}

func receiverName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.StarExpr:
		return receiverName(e.X)
	case *ast.IndexExpr:
		return receiverName(e.X)
	case *ast.IndexListExpr:
		return receiverName(e.X)
	case *ast.Ident:
		return e.Name
	}
	return ""
}

func applyMarkers(c *typeref.Class, directives []string) {
	for _, d := range directives {
		key, value, _ := strings.Cut(d, "=")
		switch key {
		case "name":
			c.Markers.Name = value
		case "node":
			c.Markers.Node = true
		case "root":
			c.Markers.Root = true
		case "query":
			c.Markers.QueryFactory = value
		case "resolver":
			c.Markers.Resolver = value
		}
	}
}

func has(directives []string, d string) bool {
	for _, x := range directives {
		if x == d {
			return true
		}
	}
	return false
}

func hasMethod(named *types.Named, name string) bool {
	obj, _, _ := types.LookupFieldOrMethod(types.NewPointer(named), false, named.Obj().Pkg(), name)
	_, ok := obj.(*types.Func)
	return ok
}

// isNode reports whether named has a GetId() string method.
func isNode(named *types.Named) bool {
	obj, _, _ := types.LookupFieldOrMethod(types.NewPointer(named), false, named.Obj().Pkg(), "GetId")
	fn, ok := obj.(*types.Func)
	if !ok {
		return false
	}
	sig := fn.Type().(*types.Signature)
	if sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return false
	}
	b, ok := sig.Results().At(0).Type().(*types.Basic)
	return ok && b.Kind() == types.String
}

// enumConstants returns the names of the package level constants of type
// tn in declaration order.
func enumConstants(tn *types.TypeName) []string {
	scope := tn.Pkg().Scope()
	var consts []*types.Const
	for _, name := range scope.Names() {
		if c, ok := scope.Lookup(name).(*types.Const); ok && c.Exported() && types.Identical(c.Type(), tn.Type()) {
			consts = append(consts, c)
		}
	}
	sort.Slice(consts, func(i, j int) bool { return consts[i].Pos() < consts[j].Pos() })
	names := make([]string, len(consts))
	for i, c := range consts {
		names[i] = c.Name()
	}
	return names
}

// isComposite reports whether t, or the type it points to, is a struct or
// an interface.
func isComposite(t types.Type) bool {
	if p, ok := types.Unalias(t).(*types.Pointer); ok {
		t = p.Elem()
	}
	switch t.Underlying().(type) {
	case *types.Struct, *types.Interface:
		return true
	}
	return false
}

func isContext(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return false
	}
	return named.Obj().Pkg().Path() == "context" && named.Obj().Name() == "Context"
}

func basicKind(k types.BasicKind) reflect.Kind {
	switch k {
	case types.Bool:
		return reflect.Bool
	case types.Int:
		return reflect.Int
	case types.Int8:
		return reflect.Int8
	case types.Int16:
		return reflect.Int16
	case types.Int32:
		return reflect.Int32
	case types.Int64:
		return reflect.Int64
	case types.Uint:
		return reflect.Uint
	case types.Uint8:
		return reflect.Uint8
	case types.Uint16:
		return reflect.Uint16
	case types.Uint32:
		return reflect.Uint32
	case types.Uint64:
		return reflect.Uint64
	case types.Uintptr:
		return reflect.Uintptr
	case types.Float32:
		return reflect.Float32
	case types.Float64:
		return reflect.Float64
	case types.String:
		return reflect.String
	}
	return reflect.Invalid
}
