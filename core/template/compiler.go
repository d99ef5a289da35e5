package template

import (
	"fmt"

	"github.com/mailgun/raymond/v2"

	"github.com/dmitrymomot/mailbundle/core/bundle"
)

// Helpers maps helper names to handlebars helper functions. Helper values
// must satisfy raymond's helper signatures; they are supplied by the caller
// at construction time and are never loaded from the bundle itself.
type Helpers map[string]any

const (
	// LayoutPartial is the name of the shared structural wrapper every
	// localized body is embedded in. A bundle must provide it.
	LayoutPartial = "layout"

	// ContentPartial is the reserved name under which the localized body is
	// exposed to the layout. Bundles cannot define a partial with this name.
	ContentPartial = "content"
)

// wrapperSource invokes the structural wrapper; the body itself is attached
// as the content partial, so every template shares one outer document shape.
const wrapperSource = "{{> " + LayoutPartial + "}}"

// CompilePartials parses every bundle partial into a compiled template,
// keyed by name, for registration on template roots.
func CompilePartials(partials []bundle.Partial) (map[string]*raymond.Template, error) {
	compiled := make(map[string]*raymond.Template, len(partials))
	for _, partial := range partials {
		if partial.Name == ContentPartial {
			return nil, fmt.Errorf("%w: partial name %q is reserved", ErrTemplateCompile, ContentPartial)
		}
		tpl, err := raymond.Parse(partial.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: partial %q: %v", ErrTemplateCompile, partial.Name, err)
		}
		compiled[partial.Name] = tpl
	}
	return compiled, nil
}

// Compile turns one localized template body into a renderable template:
// the body is parsed, wrapped in the layout partial, and bound to the full
// partial and helper registries so any name is addressable from the body.
// Compilation happens exactly once per (template, language) pair at load
// time; rendering never recompiles.
func Compile(name, lang, body string, partials map[string]*raymond.Template, helpers Helpers) (*raymond.Template, error) {
	if _, ok := partials[LayoutPartial]; !ok {
		return nil, fmt.Errorf("%w: template %q (%s): bundle has no %q partial",
			ErrTemplateCompile, name, lang, LayoutPartial)
	}

	content, err := raymond.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("%w: template %q (%s): %v", ErrTemplateCompile, name, lang, err)
	}

	root := raymond.MustParse(wrapperSource)
	for partialName, partial := range partials {
		root.RegisterPartialTemplate(partialName, partial)
	}
	root.RegisterPartialTemplate(ContentPartial, content)

	if err := registerHelpers(root, helpers); err != nil {
		return nil, fmt.Errorf("%w: template %q (%s): %v", ErrTemplateCompile, name, lang, err)
	}

	return root, nil
}

// registerHelpers converts raymond's panic on an invalid helper signature
// into an error, so a bad injected helper fails construction instead of
// crashing the process.
func registerHelpers(root *raymond.Template, helpers Helpers) (err error) {
	if len(helpers) == 0 {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("registering helpers: %v", r)
		}
	}()
	root.RegisterHelpers(helpers)
	return nil
}
