package bundle

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"golang.org/x/text/language"
)

// Sub-locations of a bundle root. Each is optional; a missing directory
// yields an empty registry, not an error.
const (
	partialsDir  = "partials"
	templatesDir = "templates"
	localeDir    = "locale"
)

const (
	bodyExt  = ".hbs"
	styleExt = ".scss"
)

// langLen is the length of a language code in file names ("en", "pl", ...).
const langLen = 2

// Load reads a bundle from fsys into memory. The expected layout is:
//
//	partials/<name>/<name>.hbs     partial body (required per partial)
//	partials/<name>/<name>.scss    partial style fragment (optional)
//	templates/<name>/<name>-<lang>.hbs  localized body, lang is 2 chars
//	templates/<name>/<name>.scss   template style fragment (optional)
//	locale/<lang>.json             locale dictionary (optional)
//
// Files that do not match the naming convention are silently ignored.
// Helper and globals scripts (helpers.js, globals.js) are never evaluated;
// helpers and globals are injected by the caller at construction time.
// A matched file that cannot be read fails with ErrBundleLoad.
func Load(fsys fs.FS) (*Bundle, error) {
	b := &Bundle{Locales: make(map[string]map[string]any)}

	if err := loadPartials(fsys, b); err != nil {
		return nil, err
	}
	if err := loadTemplates(fsys, b); err != nil {
		return nil, err
	}
	if err := loadLocales(fsys, b); err != nil {
		return nil, err
	}

	return b, nil
}

// LoadDir reads a bundle from a directory on the local filesystem.
func LoadDir(root string) (*Bundle, error) {
	return Load(os.DirFS(root))
}

func loadPartials(fsys fs.FS, b *Bundle) error {
	entries, err := fs.ReadDir(fsys, partialsDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", ErrBundleLoad, partialsDir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()

		body, err := fs.ReadFile(fsys, path.Join(partialsDir, name, name+bodyExt))
		if err != nil {
			return fmt.Errorf("%w: partial %q: %v", ErrBundleLoad, name, err)
		}

		style, err := readOptional(fsys, path.Join(partialsDir, name, name+styleExt))
		if err != nil {
			return fmt.Errorf("%w: partial %q style: %v", ErrBundleLoad, name, err)
		}

		b.Partials = append(b.Partials, Partial{
			Name:  name,
			Body:  string(body),
			Style: style,
		})
	}

	return nil
}

func loadTemplates(fsys fs.FS, b *Bundle) error {
	entries, err := fs.ReadDir(fsys, templatesDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", ErrBundleLoad, templatesDir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()

		dir := path.Join(templatesDir, name)
		files, err := fs.ReadDir(fsys, dir)
		if err != nil {
			return fmt.Errorf("%w: template %q: %v", ErrBundleLoad, name, err)
		}

		tmpl := Template{Name: name, Bodies: make(map[string]string)}
		for _, file := range files {
			if file.IsDir() {
				continue
			}
			lang, ok := localizedLang(name, file.Name())
			if !ok {
				continue
			}
			body, err := fs.ReadFile(fsys, path.Join(dir, file.Name()))
			if err != nil {
				return fmt.Errorf("%w: template %q (%s): %v", ErrBundleLoad, name, lang, err)
			}
			tmpl.Bodies[lang] = string(body)
		}

		// A directory with no localized variant defines nothing to render.
		if len(tmpl.Bodies) == 0 {
			continue
		}

		style, err := readOptional(fsys, path.Join(dir, name+styleExt))
		if err != nil {
			return fmt.Errorf("%w: template %q style: %v", ErrBundleLoad, name, err)
		}
		tmpl.Style = style

		b.Templates = append(b.Templates, tmpl)
	}

	return nil
}

func loadLocales(fsys fs.FS, b *Bundle) error {
	entries, err := fs.ReadDir(fsys, localeDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", ErrBundleLoad, localeDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if path.Ext(name) != ".json" {
			// Script locales (.js) are data-as-code and are never evaluated.
			continue
		}
		lang := strings.TrimSuffix(name, ".json")
		if !validLang(lang) {
			continue
		}

		raw, err := fs.ReadFile(fsys, path.Join(localeDir, name))
		if err != nil {
			return fmt.Errorf("%w: locale %q: %v", ErrBundleLoad, lang, err)
		}

		var dict map[string]any
		if err := json.Unmarshal(raw, &dict); err != nil {
			return fmt.Errorf("%w: locale %q: %v", ErrBundleLoad, lang, err)
		}
		b.Locales[lang] = dict
	}

	return nil
}

// localizedLang matches <template>-<lang>.hbs and returns the language code.
func localizedLang(template, file string) (string, bool) {
	rest, ok := strings.CutPrefix(file, template+"-")
	if !ok {
		return "", false
	}
	lang, ok := strings.CutSuffix(rest, bodyExt)
	if !ok || !validLang(lang) {
		return "", false
	}
	return lang, true
}

// validLang accepts exactly two-character codes that form a syntactically
// valid BCP 47 tag. Unknown-but-well-formed codes are accepted: a
// language.ValueError still carries a usable tag.
func validLang(code string) bool {
	if len(code) != langLen {
		return false
	}
	if _, err := language.Parse(code); err != nil {
		var verr language.ValueError
		return errors.As(err, &verr)
	}
	return true
}

// readOptional returns the file content, or empty string when it is absent.
func readOptional(fsys fs.FS, name string) (string, error) {
	raw, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
