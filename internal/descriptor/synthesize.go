package descriptor

import (
	"strconv"

	"github.com/vvka-141/extdesc/pkg/extdesc"
)

// Synthesize fills the required descriptor fields from the project coordinates
// and returns the result. doc is not modified.
//
// Rules, applied in order:
//  1. group-id, artifact-id and version are set from coords only when absent.
//  2. name is set from coords.Name when absent; with no declared name it is
//     derived from artifact-id and a warning is logged.
//  3. description is replaced by coords.Description only when the document
//     already has a description key. A missing description is never added.
func Synthesize(doc *Document, coords extdesc.Coordinates, logger extdesc.Logger) *Document {
	out := doc.Clone()
	if out == nil {
		out = New()
	}

	setIfAbsent(out, KeyGroupID, coords.GroupID)
	setIfAbsent(out, KeyArtifactID, coords.ArtifactID)
	setIfAbsent(out, KeyVersion, coords.Version)

	if !out.Has(KeyName) {
		if coords.Name != "" {
			out.Set(KeyName, coords.Name)
		} else {
			groupID, _ := out.Get(KeyGroupID)
			artifactID, _ := out.Get(KeyArtifactID)
			name := DeriveName(Text(artifactID))
			if logger != nil {
				logger.Warn("Extension name has not been provided for %s:%s! Using '%s' as the default one.",
					Text(groupID), Text(artifactID), name)
			}
			out.Set(KeyName, name)
		}
	}

	// TODO(product): confirm whether a declared description should also be added when the key is missing.
	if out.Has(KeyDescription) && coords.Description != "" {
		out.Set(KeyDescription, coords.Description)
	}

	return out
}

func setIfAbsent(doc *Document, key, value string) {
	if !doc.Has(key) {
		doc.Set(key, value)
	}
}

// Text returns the textual form of a scalar value: strings as-is, numbers and
// booleans in their JSON spelling, and "" for null, objects and arrays.
func Text(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case Number:
		return string(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}
