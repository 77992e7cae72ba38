package schema

// AddIfMissing copies the entry points of t and every type reachable from
// them into to.
func (t *Schema) AddIfMissing(to *Schema) {
	for k, v := range t.EntryPoints {
		if to.EntryPoints[k] == nil {
			to.EntryPoints[k] = v
		}
		v.AddIfMissing(to)
	}
}

func (t *InputObject) AddIfMissing(to *Schema) {
	if to.Types[t.Name] == nil {
		to.Types[t.Name] = t
		t.Fields.AddIfMissing(to)
	}
}

func (t *Object) AddIfMissing(to *Schema) {
	if to.Types[t.Name] == nil {
		to.Types[t.Name] = t
		t.Fields.AddIfMissing(to)
		for _, intf := range t.Interfaces {
			intf.AddIfMissing(to)
		}
	}
}

func (t FieldList) AddIfMissing(to *Schema) {
	for _, t := range t {
		t.AddIfMissing(to)
	}
}

func (t *Field) AddIfMissing(to *Schema) {
	t.Type.AddIfMissing(to)
	t.Args.AddIfMissing(to)
}

func (t InputValueList) AddIfMissing(to *Schema) {
	for _, t := range t {
		t.AddIfMissing(to)
	}
}

func (t *InputValue) AddIfMissing(to *Schema) {
	t.Type.AddIfMissing(to)
}

func (t *List) AddIfMissing(to *Schema) {
	t.OfType.AddIfMissing(to)
}
func (t *NonNull) AddIfMissing(to *Schema) {
	t.OfType.AddIfMissing(to)
}
func (t *TypeName) AddIfMissing(to *Schema) {
}
func (t *Scalar) AddIfMissing(to *Schema) {
	if to.Types[t.Name] == nil {
		to.Types[t.Name] = t
	}
}
func (t *Interface) AddIfMissing(to *Schema) {
	if to.Types[t.Name] == nil {
		to.Types[t.Name] = t
		t.Fields.AddIfMissing(to)
		for _, o := range t.PossibleTypes {
			o.AddIfMissing(to)
		}
	}
}
func (t *Enum) AddIfMissing(to *Schema) {
	if to.Types[t.Name] == nil {
		to.Types[t.Name] = t
	}
}
