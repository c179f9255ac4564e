// Package schema provides centralized language knowledge for the RMC XML LSP.
// Element hierarchy, attribute declarations, required attributes and value
// domains are defined here as a single source of truth used by completion,
// hover and validation.
package schema

// RootKey names the implicit document root. Its children are the permitted
// top-level elements.
const RootKey = "ROOT"

// ElementDef describes an element of the dialect.
type ElementDef struct {
	Name        string
	Description string
	Details     string
	Children    []string
	Attributes  []AttributeDef
}

// AttributeDef describes an attribute declared on an element.
type AttributeDef struct {
	Name        string
	Description string
	Required    bool
}

// ValueKind classifies how an attribute value is checked.
type ValueKind int

const (
	// ValueFree accepts any value.
	ValueFree ValueKind = iota
	// ValueEnum restricts the value to an enumerated domain.
	ValueEnum
	// ValueIdentifier requires [A-Za-z_][A-Za-z0-9_]*.
	ValueIdentifier
	// ValueBoolean requires true or false, case-insensitively.
	ValueBoolean
)

// String returns a human-readable name for the ValueKind.
func (k ValueKind) String() string {
	switch k {
	case ValueEnum:
		return "enum"
	case ValueIdentifier:
		return "identifier"
	case ValueBoolean:
		return "boolean"
	default:
		return "string"
	}
}

// Registry is an immutable set of element and attribute tables.
// It is safe for concurrent use because nothing mutates it after New returns.
type Registry struct {
	root     string
	order    []string
	elements map[string]*ElementDef
	enums    map[string][]string
	kinds    map[string]ValueKind
}

// Option configures a Registry under construction.
type Option func(*Registry)

// WithEnum declares the enumerated value domain of an attribute.
func WithEnum(attr string, values ...string) Option {
	return func(r *Registry) {
		r.enums[attr] = values
		r.kinds[attr] = ValueEnum
	}
}

// WithIdentifier marks attributes whose values must be identifiers.
func WithIdentifier(attrs ...string) Option {
	return func(r *Registry) {
		for _, a := range attrs {
			r.kinds[a] = ValueIdentifier
		}
	}
}

// WithBoolean marks boolean-typed attributes.
func WithBoolean(attrs ...string) Option {
	return func(r *Registry) {
		for _, a := range attrs {
			r.kinds[a] = ValueBoolean
		}
	}
}

// New builds a registry whose single permitted top-level element is root.
// Elements are kept in the order given; a later definition of the same name
// replaces the earlier one.
func New(root string, elements []*ElementDef, opts ...Option) *Registry {
	r := &Registry{
		root:     root,
		elements: make(map[string]*ElementDef, len(elements)+1),
		enums:    make(map[string][]string),
		kinds:    make(map[string]ValueKind),
	}
	r.elements[RootKey] = &ElementDef{Name: RootKey, Children: []string{root}}
	for _, e := range elements {
		if _, seen := r.elements[e.Name]; !seen {
			r.order = append(r.order, e.Name)
		}
		r.elements[e.Name] = e
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Root returns the designated root element name.
func (r *Registry) Root() string {
	return r.root
}

// Element returns the definition for name, or nil if it is unknown.
func (r *Registry) Element(name string) *ElementDef {
	if name == RootKey {
		return nil
	}
	return r.elements[name]
}

// IsKnownElement reports whether name is a declared element.
func (r *Registry) IsKnownElement(name string) bool {
	return r.Element(name) != nil
}

// Elements returns all declared element names in declaration order.
func (r *Registry) Elements() []string {
	return append([]string(nil), r.order...)
}

// ChildrenOf returns the allowed children of element in declaration order.
// The root key yields the permitted top-level elements.
func (r *Registry) ChildrenOf(element string) []string {
	e, ok := r.elements[element]
	if !ok {
		return nil
	}
	return append([]string(nil), e.Children...)
}

// AttributesOf returns the attribute names declared for element.
func (r *Registry) AttributesOf(element string) []string {
	e := r.Element(element)
	if e == nil {
		return nil
	}
	names := make([]string, 0, len(e.Attributes))
	for _, a := range e.Attributes {
		names = append(names, a.Name)
	}
	return names
}

// RequiredAttributesOf returns the required attribute names of element in
// declaration order. The result is always a subset of AttributesOf.
func (r *Registry) RequiredAttributesOf(element string) []string {
	e := r.Element(element)
	if e == nil {
		return nil
	}
	var names []string
	for _, a := range e.Attributes {
		if a.Required {
			names = append(names, a.Name)
		}
	}
	return names
}

// Attribute returns the declaration of attr on element, or nil.
func (r *Registry) Attribute(element, attr string) *AttributeDef {
	e := r.Element(element)
	if e == nil {
		return nil
	}
	for i := range e.Attributes {
		if e.Attributes[i].Name == attr {
			return &e.Attributes[i]
		}
	}
	return nil
}

// EnumDomainOf returns the enumerated values of attr. The boolean is false
// for free-form attributes.
func (r *Registry) EnumDomainOf(attr string) ([]string, bool) {
	values, ok := r.enums[attr]
	if !ok {
		return nil, false
	}
	return append([]string(nil), values...), true
}

// KindOf returns how values of attr are checked.
func (r *Registry) KindOf(attr string) ValueKind {
	return r.kinds[attr]
}

// IsIdentifierAttribute reports whether attr is pattern-constrained.
func (r *Registry) IsIdentifierAttribute(attr string) bool {
	return r.kinds[attr] == ValueIdentifier
}

// IsBooleanAttribute reports whether attr is boolean-typed.
func (r *Registry) IsBooleanAttribute(attr string) bool {
	return r.kinds[attr] == ValueBoolean
}

// ElementsWithRequired returns, in declaration order, every element that
// declares at least one required attribute.
func (r *Registry) ElementsWithRequired() []string {
	var names []string
	for _, name := range r.order {
		if len(r.RequiredAttributesOf(name)) > 0 {
			names = append(names, name)
		}
	}
	return names
}
