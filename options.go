package morph

import (
	"github.com/syssam/morph/inflection"
	"github.com/syssam/morph/model"
)

// Option configures schema construction.
type Option func(*config) error

type config struct {
	version   int64
	models    []model.Definitions
	inflector inflection.Inflector
	idFunc    IDFunc
}

func defaults() *config {
	return &config{
		version:   1,
		inflector: inflection.Default(),
		idFunc:    defaultID,
	}
}

// apply applies options to the config.
// It returns the first error encountered.
func (c *config) apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// WithVersion sets the starting version. Versions start at 1; restoring a
// snapshot is the usual reason to start higher.
func WithVersion(v int64) Option {
	return func(c *config) error {
		if v < 1 {
			return NewConfigError("Version", v, "version must be at least 1")
		}
		c.version = v
		return nil
	}
}

// WithModels merges the given definitions into the new schema. Repeated use
// merges the payloads in option order, later payloads overwriting the keys
// they redefine.
func WithModels(defs model.Definitions) Option {
	return func(c *config) error {
		c.models = append(c.models, defs)
		return nil
	}
}

// WithInflector replaces both inflection strategies, e.g. with
// inflection.Rules(). Nil members fall back to the naive defaults.
func WithInflector(inf inflection.Inflector) Option {
	return func(c *config) error {
		c.inflector = inf
		return nil
	}
}

// WithPluralize replaces the pluralization strategy only.
func WithPluralize(fn inflection.Strategy) Option {
	return func(c *config) error {
		if fn == nil {
			return NewConfigError("Pluralize", nil, "strategy cannot be nil")
		}
		c.inflector.Pluralize = fn
		return nil
	}
}

// WithSingularize replaces the singularization strategy only.
func WithSingularize(fn inflection.Strategy) Option {
	return func(c *config) error {
		if fn == nil {
			return NewConfigError("Singularize", nil, "strategy cannot be nil")
		}
		c.inflector.Singularize = fn
		return nil
	}
}

// WithIDFunc replaces the identifier generator used by GenerateID and
// InitializeRecord.
func WithIDFunc(fn IDFunc) Option {
	return func(c *config) error {
		if fn == nil {
			return NewConfigError("IDFunc", nil, "generator cannot be nil")
		}
		c.idFunc = fn
		return nil
	}
}
