package descriptor

// legacyMetadataKeys maps legacy top-level keys to their metadata sub-keys, in migration order.
var legacyMetadataKeys = []struct {
	legacy string
	key    string
}{
	{LegacyLabels, KeyKeywords},
	{LegacyGuide, KeyGuide},
	{LegacyShortName, KeyShortName},
}

// Migrate rewrites the legacy flat schema into the nested one and returns the result.
// doc is not modified; a nil doc migrates like an empty one.
//
// After Migrate the document has no groupId, artifactId, labels, guide or
// shortName key, and always carries a metadata object. Migrating an already
// migrated document yields an equal document.
func Migrate(doc *Document) *Document {
	out := doc.Clone()
	if out == nil {
		out = New()
	}

	moveKey(out, LegacyGroupID, out, KeyGroupID)
	moveKey(out, LegacyArtifactID, out, KeyArtifactID)

	metadata, ok := out.GetObject(KeyMetadata)
	if !ok {
		metadata = New()
	}
	for _, m := range legacyMetadataKeys {
		moveKey(out, m.legacy, metadata, m.key)
	}

	out.Set(KeyMetadata, metadata)
	return out
}

// moveKey moves src[from] to dst[to] when present.
func moveKey(src *Document, from string, dst *Document, to string) {
	value, ok := src.Get(from)
	if !ok {
		return
	}
	dst.Set(to, value)
	src.Remove(from)
}
