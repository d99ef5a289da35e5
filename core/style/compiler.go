package style

import (
	"fmt"
	"strings"
)

// placeholder is compiled instead of an empty aggregate so the transpiler
// always receives valid input and always yields (possibly empty) output.
const placeholder = "/* no styles */"

// Transpiler converts an SCSS source into flat CSS.
type Transpiler interface {
	Transpile(source string) (string, error)
}

// Aggregate joins non-empty style fragments with blank lines. An aggregate
// of zero fragments returns the placeholder comment.
func Aggregate(fragments ...string) string {
	parts := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		if strings.TrimSpace(fragment) != "" {
			parts = append(parts, fragment)
		}
	}
	if len(parts) == 0 {
		return placeholder
	}
	return strings.Join(parts, "\n\n")
}

// Compile produces the final stylesheet for one template: all partial style
// fragments in discovery order, then the template's own fragment, compiled
// through the transpiler. The result is cached by the caller and reused for
// every render of the template regardless of language.
func Compile(tr Transpiler, template string, partialStyles []string, ownStyle string) (string, error) {
	fragments := make([]string, 0, len(partialStyles)+1)
	fragments = append(fragments, partialStyles...)
	fragments = append(fragments, ownStyle)

	css, err := tr.Transpile(Aggregate(fragments...))
	if err != nil {
		return "", fmt.Errorf("%w: template %q: %v", ErrStyleCompile, template, err)
	}
	return strings.TrimSpace(css), nil
}
