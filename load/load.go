// Package load reads and writes definitions documents: the serialized form
// of a registry declaration.
//
// A [Document] pairs a version with a set of model definitions. Documents
// are YAML (JSON, being a YAML subset, works too):
//
//	version: 1
//	models:
//	  planet:
//	    attributes:
//	      name: {type: string}
//	    relationships:
//	      moons: {kind: hasMany, type: moon, inverse: planet}
//	  moon:
//	    relationships:
//	      planet: {kind: hasOne, type: planet, inverse: moons}
//
// [Unmarshal] and [ReadFile] validate on decode: every attribute needs a
// type, every relationship a known kind and a target model. Malformed
// documents are reported as *[DocumentError] values naming the model and
// field at fault. [Document.Schema] builds a registry from a valid document.
package load

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/syssam/morph"
	"github.com/syssam/morph/model"
)

// Document is a registry declaration: a starting version and the model
// definitions it holds. The zero version means "unset" and leaves the
// registry default (version 1) in effect.
type Document struct {
	Version int64             `json:"version,omitempty" yaml:"version,omitempty"`
	Models  model.Definitions `json:"models,omitempty" yaml:"models,omitempty"`
}

// Unmarshal decodes and validates a definitions document.
func Unmarshal(data []byte) (*Document, error) {
	doc := &Document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Marshal encodes a document as YAML.
func Marshal(doc *Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

// ReadFile reads and decodes the definitions document at path.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return Unmarshal(data)
}

// Validate checks the document against the definition rules: a non-negative
// version, a type on every attribute, and a known kind and target model on
// every relationship. The first violation is returned as a *DocumentError;
// models and fields are checked in sorted order, so the reported violation
// is deterministic.
func (d *Document) Validate() error {
	if d.Version < 0 {
		return NewDocumentError("", "", fmt.Sprintf("version %d is negative", d.Version))
	}
	for _, name := range sortedKeys(d.Models) {
		def := d.Models[name]
		if def == nil {
			continue
		}
		for _, attr := range sortedKeys(def.Attributes) {
			a := def.Attributes[attr]
			if a == nil || a.Type == "" {
				return NewDocumentError(name, attr, "attribute has no type")
			}
		}
		for _, rel := range sortedKeys(def.Relationships) {
			r := def.Relationships[rel]
			switch {
			case r == nil || r.Kind == "":
				return NewDocumentError(name, rel, "relationship has no kind")
			case !r.Kind.Valid():
				return NewDocumentError(name, rel, fmt.Sprintf("unknown relationship kind %q", r.Kind))
			case r.Type == "":
				return NewDocumentError(name, rel, "relationship has no target model")
			}
		}
	}
	return nil
}

// Schema builds a registry from the document. Options are applied after the
// document's fields, so explicit options win: a WithVersion overrides the
// document version, and WithModels payloads merge on top of the document
// models.
func (d *Document) Schema(opts ...morph.Option) (*morph.Schema, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	all := make([]morph.Option, 0, len(opts)+2)
	if d.Version > 0 {
		all = append(all, morph.WithVersion(d.Version))
	}
	if d.Models != nil {
		all = append(all, morph.WithModels(d.Models))
	}
	all = append(all, opts...)
	return morph.New(all...)
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	return slices.Sorted(maps.Keys(m))
}
