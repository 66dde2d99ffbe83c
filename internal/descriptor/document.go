package descriptor

import (
	"slices"
)

// Well-known descriptor keys.
const (
	KeyGroupID     = "group-id"
	KeyArtifactID  = "artifact-id"
	KeyVersion     = "version"
	KeyName        = "name"
	KeyDescription = "description"
	KeyMetadata    = "metadata"

	KeyKeywords  = "keywords"
	KeyGuide     = "guide"
	KeyShortName = "short-name"
)

// Legacy top-level keys rewritten by Migrate.
const (
	LegacyGroupID    = "groupId"
	LegacyArtifactID = "artifactId"
	LegacyLabels     = "labels"
	LegacyGuide      = "guide"
	LegacyShortName  = "shortName"
)

// Number is a JSON number kept in its original textual form.
type Number string

// Document is an ordered JSON object.
//
// Values are one of: string, bool, nil, Number, []any, *Document.
// The zero value is an empty document ready to use.
type Document struct {
	keys   []string
	values map[string]any
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// Len returns the number of keys.
func (d *Document) Len() int {
	return len(d.keys)
}

// Keys returns the keys in insertion order.
func (d *Document) Keys() []string {
	return slices.Clone(d.keys)
}

// Has reports whether key is present, regardless of its value.
func (d *Document) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// GetString returns the value under key when it is a string.
func (d *Document) GetString(key string) (string, bool) {
	v, ok := d.values[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetObject returns the value under key when it is an object.
func (d *Document) GetObject(key string) (*Document, bool) {
	v, ok := d.values[key]
	if !ok {
		return nil, false
	}
	obj, ok := v.(*Document)
	return obj, ok && obj != nil
}

// Set stores value under key. An existing key keeps its position; a new key is appended.
func (d *Document) Set(key string, value any) {
	if d.values == nil {
		d.values = make(map[string]any)
	}
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Remove deletes key. Removing a missing key is a no-op.
func (d *Document) Remove(key string) {
	if _, exists := d.values[key]; !exists {
		return
	}
	delete(d.values, key)
	d.keys = slices.DeleteFunc(d.keys, func(k string) bool { return k == key })
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{keys: slices.Clone(d.keys)}
	if d.values != nil {
		out.values = make(map[string]any, len(d.values))
		for k, v := range d.values {
			out.values[k] = cloneValue(v)
		}
	}
	return out
}

// Equal reports whether d and other hold the same keys, in the same order, with equal values.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	if !slices.Equal(d.keys, other.keys) {
		return false
	}
	for _, k := range d.keys {
		if !valuesEqual(d.values[k], other.values[k]) {
			return false
		}
	}
	return true
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case *Document:
		return val.Clone()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return val
	}
}

func valuesEqual(a, b any) bool {
	switch av := a.(type) {
	case *Document:
		bv, ok := b.(*Document)
		return ok && av.Equal(bv)
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !valuesEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
