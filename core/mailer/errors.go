package mailer

import "errors"

// Error variables define mailer failures that can be wrapped with detailed
// context using errors.Join() for comprehensive error reporting.
var (
	ErrFailedToSend  = errors.New("failed to send email")
	ErrInvalidConfig = errors.New("invalid mailer configuration")
	ErrInvalidParams = errors.New("invalid message parameters")
)
