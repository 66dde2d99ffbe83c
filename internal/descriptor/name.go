package descriptor

import (
	"strings"

	"github.com/huandu/xstrings"

	"github.com/vvka-141/extdesc/pkg/extdesc"
)

// DeriveName turns an artifact id into a display name.
//
// A leading "quarkus-" is dropped, dashes become single spaces, and each word
// starts with an upper-case letter:
//
//	quarkus-resteasy-reactive -> Resteasy Reactive
//	my-lib                    -> My Lib
//	a--b                      -> A B
//
// Runs of dashes collapse, and leading or trailing dashes produce no spaces.
func DeriveName(artifactID string) string {
	words := strings.FieldsFunc(strings.TrimPrefix(artifactID, extdesc.ProductPrefix), func(r rune) bool {
		return r == '-'
	})
	for i, w := range words {
		words[i] = xstrings.FirstRuneToUpper(w)
	}
	return strings.Join(words, " ")
}
