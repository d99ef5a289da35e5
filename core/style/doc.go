// Package style assembles one compiled stylesheet per template from the
// style fragments scattered across a bundle: every partial's fragment in
// discovery order, then the template's own fragment, concatenated and run
// through an SCSS transpiler into flat CSS.
//
// The production transpiler is DartSass (Dart Sass embedded protocol).
// Anything implementing the one-method Transpiler interface can be
// substituted, which keeps the aggregation logic testable without a
// dart-sass binary:
//
//	sass, err := style.NewDartSass()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer sass.Close()
//
//	css, err := style.Compile(sass, "welcome", partialStyles, ownStyle)
//
// Compilation happens once per template at load time; the compiled output
// is reused for every render of that template regardless of language.
package style
