package template

import "errors"

// ErrTemplateCompile indicates malformed template syntax or an invalid
// partial/helper registration. The error message identifies the template
// name and language of the failing pair.
var ErrTemplateCompile = errors.New("failed to compile template")
