package model

import (
	"maps"
	"slices"
)

// Model is the merged runtime definition of a single model. It is built and
// mutated by its Store; readers get by-name lookups and a stable iteration
// order.
type Model struct {
	name string

	// Attribute and relationship names in registry order, with their
	// descriptors in lookup maps alongside.
	attrOrder []string
	attrs     map[string]*Attribute
	relOrder  []string
	rels      map[string]*Relationship
}

// Name returns the model name.
func (m *Model) Name() string {
	return m.name
}

// HasAttribute reports whether the model declares the named attribute.
func (m *Model) HasAttribute(name string) bool {
	_, ok := m.attrs[name]
	return ok
}

// HasRelationship reports whether the model declares the named relationship.
func (m *Model) HasRelationship(name string) bool {
	_, ok := m.rels[name]
	return ok
}

// Attribute returns the named attribute. It returns a NotFoundError if the
// model does not declare it.
func (m *Model) Attribute(name string) (*Attribute, error) {
	a, ok := m.attrs[name]
	if !ok {
		return nil, NewAttributeNotFoundError(m.name, name)
	}
	return a, nil
}

// Relationship returns the named relationship. It returns a NotFoundError if
// the model does not declare it.
func (m *Model) Relationship(name string) (*Relationship, error) {
	r, ok := m.rels[name]
	if !ok {
		return nil, NewRelationshipNotFoundError(m.name, name)
	}
	return r, nil
}

// AttributeNames returns the attribute names in registry order.
func (m *Model) AttributeNames() []string {
	return slices.Clone(m.attrOrder)
}

// RelationshipNames returns the relationship names in registry order.
func (m *Model) RelationshipNames() []string {
	return slices.Clone(m.relOrder)
}

// EachAttribute visits every attribute in registry order.
func (m *Model) EachAttribute(fn func(name string, a *Attribute)) {
	for _, name := range m.attrOrder {
		fn(name, m.attrs[name])
	}
}

// EachRelationship visits every relationship in registry order.
func (m *Model) EachRelationship(fn func(name string, r *Relationship)) {
	for _, name := range m.relOrder {
		fn(name, m.rels[name])
	}
}

// Definition returns a deep copy of the model as a definition.
func (m *Model) Definition() *Definition {
	def := &Definition{}
	if len(m.attrs) > 0 {
		def.Attributes = make(map[string]*Attribute, len(m.attrs))
		for name, a := range m.attrs {
			def.Attributes[name] = a.Clone()
		}
	}
	if len(m.rels) > 0 {
		def.Relationships = make(map[string]*Relationship, len(m.rels))
		for name, r := range m.rels {
			def.Relationships[name] = r.Clone()
		}
	}
	return def
}

// merge folds a partial definition into the model. Names already declared
// are overwritten in place; new names are appended in sorted order.
func (m *Model) merge(def *Definition) {
	if def == nil {
		return
	}
	for _, name := range sortedKeys(def.Attributes) {
		if _, ok := m.attrs[name]; !ok {
			m.attrOrder = append(m.attrOrder, name)
		}
		m.attrs[name] = def.Attributes[name].Clone()
	}
	for _, name := range sortedKeys(def.Relationships) {
		if _, ok := m.rels[name]; !ok {
			m.relOrder = append(m.relOrder, name)
		}
		m.rels[name] = def.Relationships[name].Clone()
	}
}

// Store is an insertion-ordered registry of merged model definitions.
//
// A Store is not safe for concurrent mutation; the owning registry
// serializes merges. Lookups return descriptors shared with the store and
// must be treated as read-only.
type Store struct {
	order  []string
	models map[string]*Model
}

// NewStore returns a store holding the given definitions.
func NewStore(defs Definitions) *Store {
	s := &Store{models: make(map[string]*Model)}
	s.Merge(defs)
	return s
}

// Len returns the number of registered models.
func (s *Store) Len() int {
	return len(s.order)
}

// Names returns the model names in registry order.
func (s *Store) Names() []string {
	return slices.Clone(s.order)
}

// Has reports whether the named model is registered.
func (s *Store) Has(name string) bool {
	_, ok := s.models[name]
	return ok
}

// Get returns the named model. It returns a NotFoundError if no such model
// is registered.
func (s *Store) Get(name string) (*Model, error) {
	m, ok := s.models[name]
	if !ok {
		return nil, NewModelNotFoundError(name)
	}
	return m, nil
}

// HasAttribute reports whether the named model declares the named attribute.
// It reports false if the model itself is missing.
func (s *Store) HasAttribute(model, name string) bool {
	m, ok := s.models[model]
	return ok && m.HasAttribute(name)
}

// HasRelationship reports whether the named model declares the named
// relationship. It reports false if the model itself is missing.
func (s *Store) HasRelationship(model, name string) bool {
	m, ok := s.models[model]
	return ok && m.HasRelationship(name)
}

// Attribute returns an attribute by model and name. It returns a
// NotFoundError naming whichever of the two is missing.
func (s *Store) Attribute(model, name string) (*Attribute, error) {
	m, err := s.Get(model)
	if err != nil {
		return nil, err
	}
	return m.Attribute(name)
}

// Relationship returns a relationship by model and name. It returns a
// NotFoundError naming whichever of the two is missing.
func (s *Store) Relationship(model, name string) (*Relationship, error) {
	m, err := s.Get(model)
	if err != nil {
		return nil, err
	}
	return m.Relationship(name)
}

// EachAttribute visits every attribute of the named model in registry order.
// A missing model or a model without attributes yields zero visits.
func (s *Store) EachAttribute(model string, fn func(name string, a *Attribute)) {
	if m, ok := s.models[model]; ok {
		m.EachAttribute(fn)
	}
}

// EachRelationship visits every relationship of the named model in registry
// order. A missing model or a model without relationships yields zero
// visits.
func (s *Store) EachRelationship(model string, fn func(name string, r *Relationship)) {
	if m, ok := s.models[model]; ok {
		m.EachRelationship(fn)
	}
}

// Merge folds a set of partial definitions into the store. Models named for
// the first time are created; models already registered keep every attribute
// and relationship the payload does not mention, and have the mentioned ones
// added or overwritten. Merge copies descriptors on the way in, so the
// payload stays caller-owned, and it never fails: a nil definition registers
// the model name and nothing else.
//
// Payload maps are unordered; Merge processes names in sorted order so that
// registry order is deterministic. Names already registered keep their
// position.
func (s *Store) Merge(defs Definitions) {
	for _, name := range sortedKeys(defs) {
		m, ok := s.models[name]
		if !ok {
			m = &Model{
				name:  name,
				attrs: make(map[string]*Attribute),
				rels:  make(map[string]*Relationship),
			}
			s.models[name] = m
			s.order = append(s.order, name)
		}
		m.merge(defs[name])
	}
}

// Definitions returns a deep copy of every registered model definition.
func (s *Store) Definitions() Definitions {
	defs := make(Definitions, len(s.order))
	for name, m := range s.models {
		defs[name] = m.Definition()
	}
	return defs
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	return slices.Sorted(maps.Keys(m))
}
