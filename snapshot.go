package morph

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/morph/model"
)

// Snapshot is a point-in-time export of a registry: its version and a deep
// copy of its merged model definitions. Snapshots are plain data for the
// surrounding application to cache or persist; the registry itself never
// touches storage. The fields carry json tags as well, for applications
// that prefer a readable encoding over the compact one.
type Snapshot struct {
	Version int64             `json:"version" yaml:"version" msgpack:"version"`
	Models  model.Definitions `json:"models,omitempty" yaml:"models,omitempty" msgpack:"models,omitempty"`
}

// Snapshot exports the current registry state.
func (s *Schema) Snapshot() *Snapshot {
	return &Snapshot{Version: s.version, Models: s.store.Definitions()}
}

// EncodeSnapshot encodes a snapshot into its compact binary form.
func EncodeSnapshot(snap *Snapshot) ([]byte, error) {
	return msgpack.Marshal(snap)
}

// DecodeSnapshot decodes a snapshot from its compact binary form.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	snap := &Snapshot{}
	if err := msgpack.Unmarshal(data, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// Restore builds a schema from a snapshot, applying any further options on
// top. Model iteration order is not part of a snapshot; the restored
// registry uses sorted order.
func Restore(snap *Snapshot, opts ...Option) (*Schema, error) {
	if snap == nil {
		return nil, NewConfigError("Snapshot", nil, "snapshot cannot be nil")
	}
	all := make([]Option, 0, len(opts)+2)
	all = append(all, WithVersion(snap.Version), WithModels(snap.Models))
	all = append(all, opts...)
	return New(all...)
}
