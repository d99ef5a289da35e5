package style

import (
	"fmt"

	"github.com/bep/godartsass/v2"
)

// DartSass transpiles SCSS through the Dart Sass embedded protocol.
// A single instance owns one long-lived dart-sass process and is safe for
// concurrent use.
type DartSass struct {
	transpiler *godartsass.Transpiler
}

// NewDartSass starts a dart-sass process found on PATH.
func NewDartSass() (*DartSass, error) {
	return NewDartSassBinary("")
}

// NewDartSassBinary starts a dart-sass process from the given binary path.
func NewDartSassBinary(binary string) (*DartSass, error) {
	transpiler, err := godartsass.Start(godartsass.Options{
		DartSassEmbeddedFilename: binary,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: starting dart-sass: %v", ErrStyleCompile, err)
	}
	return &DartSass{transpiler: transpiler}, nil
}

// Transpile implements Transpiler.
func (d *DartSass) Transpile(source string) (string, error) {
	result, err := d.transpiler.Execute(godartsass.Args{
		Source:       source,
		SourceSyntax: godartsass.SourceSyntaxSCSS,
		OutputStyle:  godartsass.OutputStyleExpanded,
	})
	if err != nil {
		return "", err
	}
	return result.CSS, nil
}

// Close shuts the underlying dart-sass process down.
func (d *DartSass) Close() error {
	return d.transpiler.Close()
}
