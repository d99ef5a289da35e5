package renderer

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/mailgun/raymond/v2"

	"github.com/dmitrymomot/mailbundle/core/bundle"
	"github.com/dmitrymomot/mailbundle/core/style"
	"github.com/dmitrymomot/mailbundle/core/template"
)

// Renderer is the per-bundle registry of compiled templates, stylesheets,
// locale dictionaries and the global context. It is built once by New and
// immutable afterwards, making Render safe for concurrent use without
// locking.
type Renderer struct {
	templates   map[string]*compiledTemplate
	locales     map[string]map[string]any
	globals     map[string]any
	defaultLang string
}

// compiledTemplate holds everything a render needs for one template name:
// one compiled root per language and the stylesheet compiled once for all
// languages.
type compiledTemplate struct {
	localized map[string]*raymond.Template
	css       string
}

// New loads the bundle from fsys and compiles all styles and templates.
// Any load-time failure aborts construction; no partially usable registry
// is returned.
func New(fsys fs.FS, opts ...Option) (*Renderer, error) {
	o := &options{
		defaultLang: DefaultLanguage,
		helpers:     template.Helpers{},
		globals:     map[string]any{},
		locales:     map[string]map[string]any{},
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	b, err := bundle.Load(fsys)
	if err != nil {
		return nil, err
	}

	transpiler := o.transpiler
	if transpiler == nil {
		sass, err := style.NewDartSass()
		if err != nil {
			return nil, err
		}
		transpiler = sass
	}

	partials, err := template.CompilePartials(b.Partials)
	if err != nil {
		return nil, err
	}

	partialStyles := make([]string, 0, len(b.Partials))
	for _, partial := range b.Partials {
		if partial.Style != "" {
			partialStyles = append(partialStyles, partial.Style)
		}
	}

	// Bundle locales first, injected dictionaries win.
	locales := make(map[string]map[string]any, len(b.Locales)+len(o.locales))
	for lang, dict := range b.Locales {
		locales[lang] = dict
	}
	for lang, dict := range o.locales {
		locales[lang] = dict
	}

	templates := make(map[string]*compiledTemplate, len(b.Templates))
	for _, tmpl := range b.Templates {
		css, err := style.Compile(transpiler, tmpl.Name, partialStyles, tmpl.Style)
		if err != nil {
			return nil, err
		}

		localized := make(map[string]*raymond.Template, len(tmpl.Bodies))
		for lang, body := range tmpl.Bodies {
			compiled, err := template.Compile(tmpl.Name, lang, body, partials, o.helpers)
			if err != nil {
				return nil, err
			}
			localized[lang] = compiled
		}

		templates[tmpl.Name] = &compiledTemplate{localized: localized, css: css}
	}

	return &Renderer{
		templates:   templates,
		locales:     locales,
		globals:     o.globals,
		defaultLang: o.defaultLang,
	}, nil
}

// NewDir loads the bundle from a directory on the local filesystem.
func NewDir(root string, opts ...Option) (*Renderer, error) {
	return New(os.DirFS(root), opts...)
}

// DefaultLanguage returns the language used when a render call does not
// specify one.
func (r *Renderer) DefaultLanguage() string {
	return r.defaultLang
}

// Templates returns the registered template names, in no particular order.
func (r *Renderer) Templates() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	return names
}

// Languages returns the language variants registered for a template.
// The boolean reports whether the template exists.
func (r *Renderer) Languages(name string) ([]string, bool) {
	tmpl, ok := r.templates[name]
	if !ok {
		return nil, false
	}
	langs := make([]string, 0, len(tmpl.localized))
	for lang := range tmpl.localized {
		langs = append(langs, lang)
	}
	return langs, true
}
