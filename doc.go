// Package morph maintains a versioned, upgradeable registry of model
// definitions.
//
// A registry (the [Schema] type) maps model names to their attributes and
// relationships, assigns identifiers to new records, and inflects between
// singular and plural model names. Its shape is not fixed: at runtime,
// partial definitions can be merged in with [Schema.Upgrade], which advances
// the schema version and notifies every registered listener concurrently.
// Record storage, network sync and data validation are deliberately outside
// this module; a record layer consumes the registry and reacts to its
// upgrades.
//
// # Constructing a registry
//
// Definitions come from Go literals, the fluent builders in the
// [github.com/syssam/morph/model] package, or documents decoded by the
// [github.com/syssam/morph/load] package:
//
//	s, err := morph.New(
//	    morph.WithModels(model.Definitions{
//	        "user": model.Define().
//	            Attribute("name", model.Attr("string")).
//	            Relationship("posts", model.ToMany("post").Ref("author")),
//	        "post": model.Define().
//	            Attribute("title", model.Attr("string")).
//	            Relationship("author", model.ToOne("user")),
//	    }),
//	)
//
// A fresh registry reports Version() == 1.
//
// # Lookups
//
//	m, err := s.Model("user")
//	ok := s.HasAttribute("user", "name")
//	s.EachRelationship("user", func(name string, r *model.Relationship) {
//	    // visited in registry order
//	})
//
// Lookup failures are *[model.NotFoundError] values matching
// [model.ErrNotFound] and naming what was missing. The Has* and Each*
// methods never fail: they report false or visit nothing.
//
// # Upgrades
//
// An upgrade merges a partial payload into the registry, advances the
// version by one, and fans the new version out to every listener registered
// with [Schema.OnUpgrade]:
//
//	s.OnUpgrade(func(ctx context.Context, version int64) error {
//	    // the merged shape is already visible here
//	    return rebuildCaches(ctx, s)
//	})
//
//	err := s.Upgrade(ctx, model.Definitions{
//	    "user": model.Define().Attribute("email", model.Attr("string")),
//	})
//
// Merging is additive and overwriting: models, attributes and relationships
// the payload does not mention survive untouched. Listeners run
// concurrently, one goroutine each, and Upgrade returns only after all of
// them settle; the first failure is returned as a *[event.ListenerError]
// and rolls nothing back.
//
// A Schema is not safe for concurrent upgrades; callers serialize them.
//
// # Records
//
// The registry assigns identifiers to anything implementing [Record]:
//
//	rec := &Planet{} // ModelType() "planet", empty ID
//	s.InitializeRecord(rec)
//
// Records that already carry an identifier pass through untouched. The
// generator is pluggable via [WithIDFunc]; the default returns random UUIDs.
//
// # Snapshots
//
// [Schema.Snapshot] exports the registry state as plain data, and
// [EncodeSnapshot] and [DecodeSnapshot] give it a compact binary form for
// the surrounding application to cache or hand off. [Restore] rebuilds a
// registry from a snapshot:
//
//	data, _ := morph.EncodeSnapshot(s.Snapshot())
//	snap, _ := morph.DecodeSnapshot(data)
//	s2, _ := morph.Restore(snap)
package morph
