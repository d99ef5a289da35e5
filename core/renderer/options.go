package renderer

import (
	"fmt"
	"maps"

	"github.com/dmitrymomot/mailbundle/core/style"
	"github.com/dmitrymomot/mailbundle/core/template"
)

// DefaultLanguage is used when no default language option is given.
const DefaultLanguage = "en"

// Option configures the Renderer during construction.
type Option func(*options) error

type options struct {
	defaultLang string
	helpers     template.Helpers
	globals     map[string]any
	locales     map[string]map[string]any
	transpiler  style.Transpiler
}

// WithDefaultLanguage sets the language used when a render request does not
// specify one.
func WithDefaultLanguage(lang string) Option {
	return func(o *options) error {
		if lang == "" {
			return fmt.Errorf("language cannot be empty")
		}
		o.defaultLang = lang
		return nil
	}
}

// WithHelpers injects named helper functions addressable from every
// template and partial. Helpers are opaque callables owned by the caller;
// the renderer never loads executable code from the bundle.
func WithHelpers(helpers template.Helpers) Option {
	return func(o *options) error {
		maps.Copy(o.helpers, helpers)
		return nil
	}
}

// WithGlobals injects the global context available to every render as the
// handlebars private data channel ({{@key}}). Globals are a distinct
// namespace: caller-supplied render data cannot shadow them.
func WithGlobals(globals map[string]any) Option {
	return func(o *options) error {
		maps.Copy(o.globals, globals)
		return nil
	}
}

// WithLocale injects or replaces the locale dictionary for a language.
// Injected dictionaries take precedence over locale files in the bundle.
func WithLocale(lang string, dict map[string]any) Option {
	return func(o *options) error {
		if lang == "" {
			return fmt.Errorf("language cannot be empty")
		}
		o.locales[lang] = dict
		return nil
	}
}

// WithTranspiler overrides the SCSS transpiler used for style compilation.
// Without this option a dart-sass process is started (style.NewDartSass).
func WithTranspiler(tr style.Transpiler) Option {
	return func(o *options) error {
		if tr == nil {
			return fmt.Errorf("transpiler cannot be nil")
		}
		o.transpiler = tr
		return nil
	}
}

// RenderOption configures a single render call.
type RenderOption func(*renderOptions)

type renderOptions struct {
	language string
}

// WithLanguage selects the language variant for one render call.
func WithLanguage(lang string) RenderOption {
	return func(o *renderOptions) {
		o.language = lang
	}
}
