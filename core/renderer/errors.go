package renderer

import "errors"

// Render-time errors are returned per call and never invalidate the
// registry; one failed render does not affect subsequent calls.
var (
	// ErrUnknownTemplate indicates the requested template name is not
	// registered in the bundle.
	ErrUnknownTemplate = errors.New("unknown template")

	// ErrUnknownLanguage indicates the template has no variant for the
	// resolved language. A missing variant is never silently substituted
	// with the default language.
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrRenderFailed indicates a failure while executing the compiled
	// template or post-processing its markup.
	ErrRenderFailed = errors.New("failed to render template")
)
