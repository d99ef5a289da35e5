package bundle

import "errors"

// ErrBundleLoad indicates that a file required by the bundle layout
// convention could not be read or parsed. Loading aborts on the first
// failure; no partially populated bundle is returned.
var ErrBundleLoad = errors.New("failed to load template bundle")
