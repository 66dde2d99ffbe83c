// Package descriptor builds the extension descriptor document.
//
// # Overview
//
// An extension descriptor is a JSON object recording the extension's identity
// (group-id, artifact-id, version), its display name and description, and a
// nested metadata object (keywords, guide, short-name). Projects may ship a
// partial descriptor; this package completes it from the project coordinates.
//
// # Pipeline
//
//	doc, err := descriptor.Decode(content, path)   // or descriptor.New()
//	doc = descriptor.Migrate(doc)                   // legacy flat schema -> nested schema
//	doc = descriptor.Synthesize(doc, coords, log)  // fill required fields
//	out, err := descriptor.DefaultFormat().Marshal(doc)
//
// Migrate and Synthesize return new documents and never modify their input.
//
// # Legacy Schema
//
// Older descriptors used flat camel-case keys. Migrate rewrites them:
//
//	groupId    -> group-id
//	artifactId -> artifact-id
//	labels     -> metadata.keywords
//	guide      -> metadata.guide
//	shortName  -> metadata.short-name
//
// # Key Order
//
// Documents keep keys in insertion order so regenerated descriptors diff cleanly
// against the ones checked into a project.
package descriptor
