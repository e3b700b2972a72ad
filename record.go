package morph

import "github.com/google/uuid"

// Record is the minimal contract between the registry and the record layer:
// a model type tag plus a mutable string identifier. The registry's only
// write into a record is identifier assignment; everything else about
// records lives outside this module.
type Record interface {
	// ModelType names the model the record instantiates.
	ModelType() string
	// ID returns the record's identifier, or "" when unassigned.
	ID() string
	// SetID assigns the record's identifier.
	SetID(id string)
}

// IDFunc produces identifiers for new records of the named model. The
// default generator returns a random UUID and ignores the model name;
// generators that key identifiers by model can make use of it.
type IDFunc func(modelName string) string

func defaultID(string) string {
	return uuid.NewString()
}
