package morph

import (
	"context"

	"github.com/syssam/morph/event"
	"github.com/syssam/morph/inflection"
	"github.com/syssam/morph/model"
)

// Schema is a versioned, upgradeable registry of model definitions.
//
// A Schema owns a single mutable structure: the merged set of model
// definitions, tagged with a version that starts at 1 and advances by one on
// every [Schema.Upgrade]. Upgrades are the only mutation path; everything
// else is a read against the merged shape, an inflection, or an identifier
// assignment.
//
// A Schema is not safe for concurrent upgrades; callers serialize them.
// Reads from upgrade listeners are safe because the merge completes before
// any listener starts.
type Schema struct {
	version   int64
	store     *model.Store
	bus       *event.Bus
	inflector inflection.Inflector
	idFunc    IDFunc
}

// New returns a schema built from the given options. Without options it
// holds no models, reports version 1, inflects naively and assigns random
// identifiers.
func New(opts ...Option) (*Schema, error) {
	c := defaults()
	if err := c.apply(opts...); err != nil {
		return nil, err
	}
	if c.inflector.Pluralize == nil {
		c.inflector.Pluralize = inflection.Pluralize
	}
	if c.inflector.Singularize == nil {
		c.inflector.Singularize = inflection.Singularize
	}
	s := &Schema{
		version:   c.version,
		store:     model.NewStore(nil),
		bus:       event.NewBus(),
		inflector: c.inflector,
		idFunc:    c.idFunc,
	}
	for _, defs := range c.models {
		s.store.Merge(defs)
	}
	return s, nil
}

// MustNew is like New but panics if an option fails.
func MustNew(opts ...Option) *Schema {
	s, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Version returns the current schema version. A new registry reports 1
// unless constructed with WithVersion; every upgrade adds one.
func (s *Schema) Version() int64 {
	return s.version
}

// ModelNames returns the registered model names in registry order.
func (s *Schema) ModelNames() []string {
	return s.store.Names()
}

// Models returns a deep copy of every registered model definition.
func (s *Schema) Models() model.Definitions {
	return s.store.Definitions()
}

// Model returns the merged view of the named model. It returns a
// *model.NotFoundError if no such model is registered.
func (s *Schema) Model(name string) (*model.Model, error) {
	return s.store.Get(name)
}

// HasModel reports whether the named model is registered.
func (s *Schema) HasModel(name string) bool {
	return s.store.Has(name)
}

// HasAttribute reports whether the named model declares the named attribute.
// It reports false if the model itself is missing.
func (s *Schema) HasAttribute(model, name string) bool {
	return s.store.HasAttribute(model, name)
}

// HasRelationship reports whether the named model declares the named
// relationship. It reports false if the model itself is missing.
func (s *Schema) HasRelationship(model, name string) bool {
	return s.store.HasRelationship(model, name)
}

// Attribute returns an attribute by model and name. It returns a
// *model.NotFoundError naming whichever of the two is missing.
func (s *Schema) Attribute(model, name string) (*model.Attribute, error) {
	return s.store.Attribute(model, name)
}

// Relationship returns a relationship by model and name. It returns a
// *model.NotFoundError naming whichever of the two is missing.
func (s *Schema) Relationship(model, name string) (*model.Relationship, error) {
	return s.store.Relationship(model, name)
}

// EachAttribute visits every attribute of the named model in registry order.
// A missing model or a model without attributes yields zero visits.
func (s *Schema) EachAttribute(model string, fn func(name string, a *model.Attribute)) {
	s.store.EachAttribute(model, fn)
}

// EachRelationship visits every relationship of the named model in registry
// order. A missing model or a model without relationships yields zero
// visits.
func (s *Schema) EachRelationship(model string, fn func(name string, r *model.Relationship)) {
	s.store.EachRelationship(model, fn)
}

// Pluralize returns the plural form of a model name, using the configured
// strategy.
func (s *Schema) Pluralize(word string) string {
	return s.inflector.Pluralize(word)
}

// Singularize returns the singular form of a model name, using the
// configured strategy.
func (s *Schema) Singularize(word string) string {
	return s.inflector.Singularize(word)
}

// GenerateID produces an identifier for a new record of the named model
// using the configured generator.
func (s *Schema) GenerateID(modelName string) string {
	return s.idFunc(modelName)
}

// InitializeRecord assigns a generated identifier to the record if it does
// not already carry one. Records with an identifier pass through untouched,
// so the call is idempotent.
func (s *Schema) InitializeRecord(rec Record) {
	if rec.ID() != "" {
		return
	}
	rec.SetID(s.GenerateID(rec.ModelType()))
}

// OnUpgrade registers a listener invoked on every subsequent upgrade.
// Listeners persist for the lifetime of the schema and cannot be removed.
func (s *Schema) OnUpgrade(fn event.Listener) {
	s.bus.On(fn)
}

// Upgrade merges a set of partial definitions into the registry, advances
// the version by one, and notifies every listener registered with OnUpgrade.
//
// The steps are ordered: by the time listeners run, they observe the merged
// shape and the new version. Listeners run concurrently, one goroutine each,
// and Upgrade returns only after all of them settle; the first failure comes
// back as a *event.ListenerError. A listener failure rolls nothing back:
// the merge and the version advance stay committed, and the error concerns
// notification only.
func (s *Schema) Upgrade(ctx context.Context, defs model.Definitions) error {
	s.store.Merge(defs)
	s.version++
	return s.bus.Emit(ctx, s.version)
}
