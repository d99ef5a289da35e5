package renderer_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailbundle/core/renderer"
	"github.com/dmitrymomot/mailbundle/core/template"
)

// passthroughTranspiler stands in for dart-sass; fixtures carry plain CSS,
// which is valid SCSS, so identity is a faithful transpilation.
type passthroughTranspiler struct{}

func (passthroughTranspiler) Transpile(source string) (string, error) {
	return source, nil
}

func welcomeBundleFS() fstest.MapFS {
	return fstest.MapFS{
		"partials/footer/footer.hbs": {Data: []byte(
			`<p class="footer">Sent by {{@product}} ({{language}})</p>`)},
		"partials/layout/layout.hbs": {Data: []byte(
			"<html>\n<head>\n<title>{{title}}</title>\n</head>\n<body>\n{{> content}}\n</body>\n</html>")},
		"partials/layout/layout.scss": {Data: []byte(
			"p {\n  color: red;\n}")},
		"templates/welcome/welcome-en.hbs": {Data: []byte(
			"<p>{{en.greeting}}, {{upper name}}!</p>\n<p>Thanks for joining.</p>\n{{> footer}}")},
		"templates/welcome/welcome-pl.hbs": {Data: []byte(
			"<p>{{pl.greeting}}, {{upper name}}!</p>\n<p>Dziękujemy.</p>\n{{> footer}}")},
		"templates/welcome/welcome.scss": {Data: []byte(
			"@media (max-width: 600px) {\n  p {\n    font-size: 14px;\n  }\n}")},
		"locale/en.json": {Data: []byte(`{"greeting":"Hello"}`)},
		"locale/pl.json": {Data: []byte(`{"greeting":"Witaj"}`)},
	}
}

func newRenderer(t *testing.T, opts ...renderer.Option) *renderer.Renderer {
	t.Helper()
	base := []renderer.Option{
		renderer.WithTranspiler(passthroughTranspiler{}),
		renderer.WithDefaultLanguage("en"),
		renderer.WithGlobals(map[string]any{"product": "Acme"}),
		renderer.WithHelpers(template.Helpers{"upper": strings.ToUpper}),
	}
	r, err := renderer.New(welcomeBundleFS(), append(base, opts...)...)
	require.NoError(t, err)
	return r
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("builds a registry from a complete bundle", func(t *testing.T) {
		t.Parallel()

		r := newRenderer(t)
		assert.Equal(t, "en", r.DefaultLanguage())
		assert.Equal(t, []string{"welcome"}, r.Templates())

		langs, ok := r.Languages("welcome")
		require.True(t, ok)
		assert.ElementsMatch(t, []string{"en", "pl"}, langs)
	})

	t.Run("fails when the layout partial is missing", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"templates/welcome/welcome-en.hbs": {Data: []byte("Hi")},
		}
		_, err := renderer.New(fsys, renderer.WithTranspiler(passthroughTranspiler{}))
		require.Error(t, err)
		assert.ErrorIs(t, err, template.ErrTemplateCompile)
	})

	t.Run("rejects invalid options", func(t *testing.T) {
		t.Parallel()

		_, err := renderer.New(welcomeBundleFS(),
			renderer.WithTranspiler(passthroughTranspiler{}),
			renderer.WithDefaultLanguage(""),
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "language cannot be empty")
	})
}

func TestRender(t *testing.T) {
	t.Parallel()

	data := map[string]any{"title": "Welcome aboard", "name": "Ada"}

	t.Run("renders the default language variant", func(t *testing.T) {
		t.Parallel()

		res, err := newRenderer(t).Render("welcome", data)
		require.NoError(t, err)

		assert.Equal(t, "Welcome aboard", res.Subject)
		assert.Contains(t, res.HTML, "Hello, ADA!")
		assert.Contains(t, res.HTML, "(en)")
		assert.NotContains(t, res.HTML, "{{")
	})

	t.Run("renders the requested language variant", func(t *testing.T) {
		t.Parallel()

		res, err := newRenderer(t).Render("welcome", data, renderer.WithLanguage("pl"))
		require.NoError(t, err)

		assert.Contains(t, res.HTML, "Witaj, ADA!")
		assert.Contains(t, res.HTML, "(pl)")
	})

	t.Run("inlines matched rules and preserves media queries", func(t *testing.T) {
		t.Parallel()

		res, err := newRenderer(t).Render("welcome", data)
		require.NoError(t, err)

		assert.Contains(t, res.HTML, `<p style=`)
		assert.Contains(t, res.HTML, "color: red")
		assert.Contains(t, res.HTML, "@media")
	})

	t.Run("derives plain text with block structure", func(t *testing.T) {
		t.Parallel()

		res, err := newRenderer(t).Render("welcome", data)
		require.NoError(t, err)

		assert.Contains(t, res.Text, "Hello, ADA!")
		assert.Contains(t, res.Text, "Thanks for joining.")
		assert.Contains(t, res.Text, "\n")
		assert.NotContains(t, res.Text, "<p>")
		assert.NotContains(t, res.Text, "style=")
	})

	t.Run("subject is empty without a title", func(t *testing.T) {
		t.Parallel()

		res, err := newRenderer(t).Render("welcome", map[string]any{"name": "Ada"})
		require.NoError(t, err)
		assert.Equal(t, "", res.Subject)
	})

	t.Run("globals are not overridable by caller data", func(t *testing.T) {
		t.Parallel()

		res, err := newRenderer(t).Render("welcome", map[string]any{
			"name":    "Ada",
			"product": "Evil Corp",
		})
		require.NoError(t, err)
		assert.Contains(t, res.HTML, "Sent by Acme")
		assert.NotContains(t, res.HTML, "Evil Corp")
	})

	t.Run("caller data wins reserved key collisions", func(t *testing.T) {
		t.Parallel()

		res, err := newRenderer(t).Render("welcome", map[string]any{
			"name":     "Ada",
			"language": "custom",
		})
		require.NoError(t, err)
		assert.Contains(t, res.HTML, "(custom)")
	})

	t.Run("missing locale key renders empty, not an error", func(t *testing.T) {
		t.Parallel()

		r, err := renderer.New(welcomeBundleFS(),
			renderer.WithTranspiler(passthroughTranspiler{}),
			renderer.WithHelpers(template.Helpers{"upper": strings.ToUpper}),
			renderer.WithLocale("en", map[string]any{}),
		)
		require.NoError(t, err)

		res, err := r.Render("welcome", map[string]any{"name": "Ada"})
		require.NoError(t, err)
		assert.Contains(t, res.HTML, ", ADA!")
	})

	t.Run("render is deterministic", func(t *testing.T) {
		t.Parallel()

		r := newRenderer(t)
		first, err := r.Render("welcome", data)
		require.NoError(t, err)
		second, err := r.Render("welcome", data)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("unknown template", func(t *testing.T) {
		t.Parallel()

		_, err := newRenderer(t).Render("nonexistent", map[string]any{})
		require.Error(t, err)
		assert.ErrorIs(t, err, renderer.ErrUnknownTemplate)
	})

	t.Run("unknown language is never silently substituted", func(t *testing.T) {
		t.Parallel()

		_, err := newRenderer(t).Render("welcome", map[string]any{}, renderer.WithLanguage("xx"))
		require.Error(t, err)
		assert.ErrorIs(t, err, renderer.ErrUnknownLanguage)
	})

	t.Run("concurrent renders share the registry safely", func(t *testing.T) {
		t.Parallel()

		r := newRenderer(t)
		want, err := r.Render("welcome", data)
		require.NoError(t, err)

		done := make(chan renderer.Result, 8)
		for i := 0; i < 8; i++ {
			go func() {
				res, err := r.Render("welcome", data)
				assert.NoError(t, err)
				done <- res
			}()
		}
		for i := 0; i < 8; i++ {
			assert.Equal(t, want, <-done)
		}
	})
}
