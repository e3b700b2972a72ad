// Package model defines the descriptor types held by a morph registry and
// the ordered store that merges them.
//
// # Descriptors
//
// A [Definition] declares the shape of one model: a map of named
// [Attribute] values and a map of named [Relationship] values. Both maps are
// optional. [Definitions] collects definitions by model name and is the
// payload type for registry construction and upgrades; it may describe any
// subset of the registry, down to a single attribute of a single model.
//
// Descriptors can be written as literals or built fluently:
//
//	model.Definitions{
//	    "user": model.Define().
//	        Attribute("name", model.Attr("string")).
//	        Attribute("age", model.Attr("number").Option("min", 0)).
//	        Relationship("posts", model.ToMany("post").Ref("author")),
//	    "post": model.Define().
//	        Relationship("author", model.ToOne("user")),
//	}
//
// Attribute types and option values are opaque tags: the registry stores
// them verbatim for the record layer to interpret.
//
// # Store
//
// A [Store] holds the merged view. Merging is additive and overwriting at
// every level: models, attributes and relationships that a payload does not
// mention survive untouched, and mentioned ones are added or replaced.
// Lookups for missing names return *[NotFoundError] values matching
// [ErrNotFound]; the Has* and Each* methods never fail, they report false or
// visit nothing.
//
// Iteration order is deterministic: names keep the position of their first
// merge, and each merge appends its new names in sorted order.
package model
