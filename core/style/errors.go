package style

import "errors"

// ErrStyleCompile indicates that the aggregated stylesheet of a template
// failed to compile. The error message names the template; fragment-level
// attribution is not tracked.
var ErrStyleCompile = errors.New("failed to compile stylesheet")
