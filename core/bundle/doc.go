// Package bundle reads a directory-defined email template bundle into
// immutable in-memory structures: named partials (with optional scoped
// styles), localized template bodies, and per-language locale dictionaries.
//
// A bundle root looks like:
//
//	partials/
//	  layout/layout.hbs        shared structural wrapper
//	  layout/layout.scss
//	  header/header.hbs
//	templates/
//	  welcome/welcome-en.hbs   one body per language
//	  welcome/welcome-pl.hbs
//	  welcome/welcome.scss
//	locale/
//	  en.json
//	  pl.json
//
// The loader works on an fs.FS, so bundles can live on disk
// (bundle.LoadDir), in an embed.FS, or in a fstest.MapFS in tests:
//
//	b, err := bundle.LoadDir("./emails")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Every optional sub-location may be absent; only files matched by the
// naming convention are required to be readable. Partial order is the
// sorted directory order and is stable across runs.
//
// The loader only reads data. It never compiles styles or templates and
// never evaluates script files found in the bundle.
package bundle
