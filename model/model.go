package model

import "maps"

// Kind is the cardinality of a relationship.
type Kind string

// Relationship kinds.
const (
	// HasOne marks a to-one relationship.
	HasOne Kind = "hasOne"
	// HasMany marks a to-many relationship.
	HasMany Kind = "hasMany"
)

// Valid reports whether k is a known relationship kind.
func (k Kind) Valid() bool {
	return k == HasOne || k == HasMany
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// Attribute describes a single named value carried by a model.
//
// Type is a semantic tag such as "string" or "date". The registry stores it
// verbatim and leaves interpretation to the record layer. Options carries
// caller-defined settings the same way.
type Attribute struct {
	Type    string         `json:"type,omitempty" yaml:"type,omitempty" msgpack:"type,omitempty"`
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty" msgpack:"options,omitempty"`
}

// Attr returns an attribute descriptor with the given semantic type.
func Attr(typ string) *Attribute {
	return &Attribute{Type: typ}
}

// Option sets a caller-defined option on the attribute.
func (a *Attribute) Option(key string, value any) *Attribute {
	if a.Options == nil {
		a.Options = make(map[string]any)
	}
	a.Options[key] = value
	return a
}

// Clone returns a copy of the attribute. Option values are copied shallowly;
// the registry treats them as opaque.
func (a *Attribute) Clone() *Attribute {
	if a == nil {
		return nil
	}
	return &Attribute{
		Type:    a.Type,
		Options: maps.Clone(a.Options),
	}
}

// Relationship describes a named link from one model to another.
type Relationship struct {
	// Kind is the cardinality of the link.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty" msgpack:"kind,omitempty"`
	// Type names the related model.
	Type string `json:"type,omitempty" yaml:"type,omitempty" msgpack:"type,omitempty"`
	// Inverse optionally names the relationship declared on the related
	// model that points back to this one.
	Inverse string         `json:"inverse,omitempty" yaml:"inverse,omitempty" msgpack:"inverse,omitempty"`
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty" msgpack:"options,omitempty"`
}

// ToOne returns a to-one relationship descriptor targeting the given model.
func ToOne(typ string) *Relationship {
	return &Relationship{Kind: HasOne, Type: typ}
}

// ToMany returns a to-many relationship descriptor targeting the given model.
func ToMany(typ string) *Relationship {
	return &Relationship{Kind: HasMany, Type: typ}
}

// Ref sets the name of the inverse relationship declared on the related
// model.
func (r *Relationship) Ref(inverse string) *Relationship {
	r.Inverse = inverse
	return r
}

// Option sets a caller-defined option on the relationship.
func (r *Relationship) Option(key string, value any) *Relationship {
	if r.Options == nil {
		r.Options = make(map[string]any)
	}
	r.Options[key] = value
	return r
}

// Clone returns a copy of the relationship. Option values are copied
// shallowly; the registry treats them as opaque.
func (r *Relationship) Clone() *Relationship {
	if r == nil {
		return nil
	}
	return &Relationship{
		Kind:    r.Kind,
		Type:    r.Type,
		Inverse: r.Inverse,
		Options: maps.Clone(r.Options),
	}
}

// Definition is the declared shape of a single model. Both maps are
// optional: an empty definition declares a model that exists only to be
// referenced by others.
type Definition struct {
	Attributes    map[string]*Attribute    `json:"attributes,omitempty" yaml:"attributes,omitempty" msgpack:"attributes,omitempty"`
	Relationships map[string]*Relationship `json:"relationships,omitempty" yaml:"relationships,omitempty" msgpack:"relationships,omitempty"`
}

// Define returns an empty model definition.
func Define() *Definition {
	return &Definition{}
}

// Attribute adds or replaces a named attribute on the definition.
func (d *Definition) Attribute(name string, a *Attribute) *Definition {
	if d.Attributes == nil {
		d.Attributes = make(map[string]*Attribute)
	}
	d.Attributes[name] = a
	return d
}

// Relationship adds or replaces a named relationship on the definition.
func (d *Definition) Relationship(name string, r *Relationship) *Definition {
	if d.Relationships == nil {
		d.Relationships = make(map[string]*Relationship)
	}
	d.Relationships[name] = r
	return d
}

// Clone returns a deep copy of the definition.
func (d *Definition) Clone() *Definition {
	if d == nil {
		return nil
	}
	nd := &Definition{}
	if d.Attributes != nil {
		nd.Attributes = make(map[string]*Attribute, len(d.Attributes))
		for name, a := range d.Attributes {
			nd.Attributes[name] = a.Clone()
		}
	}
	if d.Relationships != nil {
		nd.Relationships = make(map[string]*Relationship, len(d.Relationships))
		for name, r := range d.Relationships {
			nd.Relationships[name] = r.Clone()
		}
	}
	return nd
}

// Definitions maps model names to their definitions. A Definitions value is
// the unit of registry construction and of upgrade payloads; it may cover
// any subset of the registry's models.
type Definitions map[string]*Definition

// Clone returns a deep copy of the definitions.
func (d Definitions) Clone() Definitions {
	if d == nil {
		return nil
	}
	nd := make(Definitions, len(d))
	for name, def := range d {
		nd[name] = def.Clone()
	}
	return nd
}
