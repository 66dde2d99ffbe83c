package descriptor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"quarkus-resteasy-reactive", "Resteasy Reactive"},
		{"quarkus-foo-bar", "Foo Bar"},
		{"quarkus-widget", "Widget"},
		{"my-lib", "My Lib"},
		{"a--b", "A B"},
		{"-a-", "A"},
		{"---", ""},
		{"", ""},
		{"quarkus-", ""},
		{"quarkus", "Quarkus"},
		{"quarkusx-core", "Quarkusx Core"},
		{"quarkus-quarkus-core", "Quarkus Core"},
		{"smallrye-openAPI", "Smallrye OpenAPI"},
		{"élan-vital", "Élan Vital"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveName(tt.in))
		})
	}
}

func TestDeriveName_StripsPrefixOnce(t *testing.T) {
	for _, id := range []string{"foo", "foo-bar", "x-y-z"} {
		assert.Equal(t, DeriveName(id), DeriveName("quarkus-"+id), id)
	}
}

func TestDeriveName_StableUnderKebabCase(t *testing.T) {
	for _, id := range []string{"foo-bar", "resteasy-reactive", "a"} {
		name := DeriveName(id)
		kebab := strings.ReplaceAll(strings.ToLower(name), " ", "-")
		assert.Equal(t, name, DeriveName(kebab), id)
	}
}
