package descriptor

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/extdesc/internal/logging"
	"github.com/vvka-141/extdesc/pkg/extdesc"
)

var testCoords = extdesc.Coordinates{
	GroupID:    "io.test",
	ArtifactID: "quarkus-widget",
	Version:    "1.0",
}

func synthesize(t *testing.T, doc *Document, coords extdesc.Coordinates) (*Document, string) {
	t.Helper()
	var buf bytes.Buffer
	out := Synthesize(doc, coords, logging.NewWriterLogger(&buf, false))
	return out, buf.String()
}

func TestSynthesize_EmptyDocument(t *testing.T) {
	out, logged := synthesize(t, Migrate(New()), testCoords)

	for key, want := range map[string]string{
		KeyGroupID:    "io.test",
		KeyArtifactID: "quarkus-widget",
		KeyVersion:    "1.0",
		KeyName:       "Widget",
	} {
		got, ok := out.GetString(key)
		assert.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}
	assert.Equal(t, []string{KeyMetadata, KeyGroupID, KeyArtifactID, KeyVersion, KeyName}, out.Keys())
	assert.Equal(t, "[WARN] Extension name has not been provided for io.test:quarkus-widget! Using 'Widget' as the default one.\n", logged)
}

func TestSynthesize_NeverOverwritesIdentity(t *testing.T) {
	doc := mustDecode(t, `{"group-id": "org.acme", "artifact-id": "acme-core", "version": "9.9"}`)

	out, _ := synthesize(t, doc, testCoords)

	groupID, _ := out.GetString(KeyGroupID)
	artifactID, _ := out.GetString(KeyArtifactID)
	version, _ := out.GetString(KeyVersion)
	assert.Equal(t, "org.acme", groupID)
	assert.Equal(t, "acme-core", artifactID)
	assert.Equal(t, "9.9", version)
}

func TestSynthesize_NameFromDocumentArtifact(t *testing.T) {
	doc := mustDecode(t, `{"group-id": "org.acme", "artifact-id": "acme-rest-client"}`)

	out, logged := synthesize(t, doc, testCoords)

	name, _ := out.GetString(KeyName)
	assert.Equal(t, "Acme Rest Client", name)
	assert.Contains(t, logged, "org.acme:acme-rest-client")
}

func TestSynthesize_DeclaredName(t *testing.T) {
	coords := testCoords
	coords.Name = "Quarkus - Widget"

	out, logged := synthesize(t, New(), coords)

	name, _ := out.GetString(KeyName)
	assert.Equal(t, "Quarkus - Widget", name)
	assert.Empty(t, logged)
}

func TestSynthesize_ExistingNameUntouched(t *testing.T) {
	coords := testCoords
	coords.Name = "Declared"

	out, logged := synthesize(t, mustDecode(t, `{"name": "From Descriptor"}`), coords)

	name, _ := out.GetString(KeyName)
	assert.Equal(t, "From Descriptor", name)
	assert.Empty(t, logged)
}

func TestSynthesize_Description(t *testing.T) {
	coords := testCoords
	coords.Description = "new"

	t.Run("existing key is overwritten", func(t *testing.T) {
		out, _ := synthesize(t, mustDecode(t, `{"description": "old"}`), coords)
		desc, _ := out.GetString(KeyDescription)
		assert.Equal(t, "new", desc)
	})

	t.Run("null key is overwritten", func(t *testing.T) {
		out, _ := synthesize(t, mustDecode(t, `{"description": null}`), coords)
		desc, _ := out.GetString(KeyDescription)
		assert.Equal(t, "new", desc)
	})

	t.Run("missing key is not added", func(t *testing.T) {
		out, _ := synthesize(t, New(), coords)
		assert.False(t, out.Has(KeyDescription))
	})

	t.Run("empty project description keeps document value", func(t *testing.T) {
		out, _ := synthesize(t, mustDecode(t, `{"description": "old"}`), testCoords)
		desc, _ := out.GetString(KeyDescription)
		assert.Equal(t, "old", desc)
	})
}

func TestSynthesize_DoesNotModifyInput(t *testing.T) {
	doc := mustDecode(t, `{"description": "old"}`)
	before := doc.Clone()

	_, _ = synthesize(t, doc, testCoords)

	assert.True(t, before.Equal(doc))
}

func TestSynthesize_NilLogger(t *testing.T) {
	out := Synthesize(nil, testCoords, nil)
	require.NotNil(t, out)
	name, _ := out.GetString(KeyName)
	assert.Equal(t, "Widget", name)
}

func TestSynthesize_NonStringArtifactID(t *testing.T) {
	out, logged := synthesize(t, mustDecode(t, `{"artifact-id": 42}`), testCoords)

	name, _ := out.GetString(KeyName)
	assert.Equal(t, "42", name)
	assert.Contains(t, logged, "io.test:42")
}

func TestText(t *testing.T) {
	assert.Equal(t, "x", Text("x"))
	assert.Equal(t, "1.5", Text(Number("1.5")))
	assert.Equal(t, "true", Text(true))
	assert.Equal(t, "", Text(nil))
	assert.Equal(t, "", Text(New()))
}
