package renderer

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/aymerick/douceur/inliner"
	"github.com/jaytaylor/html2text"
	"github.com/mailgun/raymond/v2"
)

// languageKey exposes the effective language code to templates as a
// literal {{language}} flag.
const languageKey = "language"

// Result is the outcome of one render: the subject extracted from the
// markup's title element, the style-inlined HTML body, and its plain-text
// derivation.
type Result struct {
	Subject string
	HTML    string
	Text    string
}

// Render produces a Result for one template, input data and language.
//
// The render context is a shallow merge of {language: lang, <lang>:
// localeDict} with the caller's data, where data wins key collisions —
// a caller key named after the language code shadows the locale
// dictionary. Globals live in the handlebars private data channel
// ({{@key}}) and cannot be shadowed by data.
//
// Render is a pure computation over the already-built registry: it
// allocates its own context and result, mutates no shared state, and is
// safe to call concurrently.
func (r *Renderer) Render(name string, data map[string]any, opts ...RenderOption) (Result, error) {
	var o renderOptions
	for _, opt := range opts {
		opt(&o)
	}

	tmpl, ok := r.templates[name]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}

	lang := o.language
	if lang == "" {
		lang = r.defaultLang
	}
	compiled, ok := tmpl.localized[lang]
	if !ok {
		return Result{}, fmt.Errorf("%w: template %q has no %q variant", ErrUnknownLanguage, name, lang)
	}

	ctx := make(map[string]any, len(data)+2)
	ctx[languageKey] = lang
	if dict, ok := r.locales[lang]; ok {
		ctx[lang] = dict
	}
	maps.Copy(ctx, data)

	frame := raymond.NewDataFrame()
	for key, value := range r.globals {
		frame.Set(key, value)
	}

	markup, err := compiled.ExecWith(ctx, frame)
	if err != nil {
		return Result{}, errors.Join(fmt.Errorf("%w: template %q (%s)", ErrRenderFailed, name, lang), err)
	}

	html, err := inlineStyles(markup, tmpl.css)
	if err != nil {
		return Result{}, errors.Join(fmt.Errorf("%w: template %q (%s)", ErrRenderFailed, name, lang), err)
	}

	text, err := html2text.FromString(html)
	if err != nil {
		return Result{}, errors.Join(fmt.Errorf("%w: template %q (%s)", ErrRenderFailed, name, lang), err)
	}

	subject, err := extractTitle(html)
	if err != nil {
		return Result{}, errors.Join(fmt.Errorf("%w: template %q (%s)", ErrRenderFailed, name, lang), err)
	}

	return Result{Subject: subject, HTML: html, Text: text}, nil
}

// inlineStyles injects the compiled stylesheet into the markup and resolves
// its rules into inline style attributes on matching elements. Rules the
// inliner cannot rewrite (media queries, pseudo-classes) stay in a style
// block so they survive email clients that strip inline styles
// inconsistently.
func inlineStyles(markup, css string) (string, error) {
	if css == "" {
		return inliner.Inline(markup)
	}
	block := "<style type=\"text/css\">\n" + css + "\n</style>"
	if i := strings.Index(markup, "</head>"); i >= 0 {
		markup = markup[:i] + block + markup[i:]
	} else {
		markup = block + markup
	}
	return inliner.Inline(markup)
}

// extractTitle returns the trimmed text of the markup's title element, or
// an empty string when there is none.
func extractTitle(markup string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(doc.Find("title").First().Text()), nil
}
