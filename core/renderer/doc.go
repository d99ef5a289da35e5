// Package renderer renders multi-language transactional email bodies from
// a template bundle.
//
// A Renderer is an explicit registry object built once per bundle: the
// loader reads partials, localized bodies and locale dictionaries; the
// style compiler produces one stylesheet per template; the template
// compiler wraps every localized body in the shared layout partial. After
// construction the registry is immutable, so Render is safe for concurrent
// use from any number of goroutines.
//
//	r, err := renderer.NewDir("./emails",
//		renderer.WithDefaultLanguage("en"),
//		renderer.WithGlobals(map[string]any{"product": "Acme"}),
//		renderer.WithHelpers(template.Helpers{
//			"upper": strings.ToUpper,
//		}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	res, err := r.Render("welcome", map[string]any{"name": "Ada"},
//		renderer.WithLanguage("pl"),
//	)
//	// res.Subject, res.HTML, res.Text
//
// Inside a template the effective language is available as {{language}},
// the locale dictionary of that language under the language code itself
// ({{pl.greeting}}), and globals through the private data channel
// ({{@product}}).
//
// # Error taxonomy
//
// Construction fails with bundle.ErrBundleLoad, style.ErrStyleCompile or
// template.ErrTemplateCompile; a corrupt bundle never yields a partially
// usable registry. Render fails with ErrUnknownTemplate or
// ErrUnknownLanguage for unregistered names — there is no silent fallback
// to the default language — and with ErrRenderFailed for execution or
// post-processing failures. Render-time errors never affect subsequent
// calls.
package renderer
