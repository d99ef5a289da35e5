package mailer

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

// Message is the transport-facing email descriptor. It either carries a
// fully rendered body (Subject/BodyHTML/BodyText) or references a bundle
// template by name, to be rendered by a Hook before delivery.
type Message struct {
	ID       string
	SendTo   string
	Subject  string
	BodyHTML string
	BodyText string

	// Template references a bundle template to render; Data and Language
	// feed the render. All three are ignored for prerendered messages.
	Template string
	Data     map[string]any
	Language string

	// Tag is an optional label for provider-side analytics and tracking.
	Tag string
}

// NewMessage creates a message addressed to a recipient with a fresh ID.
func NewMessage(sendTo string) Message {
	return Message{ID: uuid.NewString(), SendTo: sendTo}
}

// ContentKind reports where a message's body comes from. It replaces
// truthy checks on the body and template fields with an explicit variant.
type ContentKind int

const (
	// ContentEmpty means the message carries neither a body nor a
	// template reference; it cannot be delivered.
	ContentEmpty ContentKind = iota

	// ContentPrerendered means the message already carries rendered
	// markup and bypasses rendering entirely.
	ContentPrerendered

	// ContentTemplate means the message references a bundle template and
	// must be rendered before delivery.
	ContentTemplate
)

// Content classifies the message. A rendered body always wins over a
// template reference, so re-sending an already rendered message never
// renders twice.
func (m Message) Content() ContentKind {
	switch {
	case m.BodyHTML != "":
		return ContentPrerendered
	case m.Template != "":
		return ContentTemplate
	default:
		return ContentEmpty
	}
}

// Validate checks the message is deliverable: a valid recipient and either
// a rendered body or a template reference.
func (m Message) Validate() error {
	if m.SendTo == "" {
		return fmt.Errorf("%w: SendTo is required", ErrInvalidParams)
	}
	if !isValidEmail(m.SendTo) {
		return fmt.Errorf("%w: SendTo must be a valid email address", ErrInvalidParams)
	}
	if m.Content() == ContentEmpty {
		return fmt.Errorf("%w: message carries neither a body nor a template reference", ErrInvalidParams)
	}
	return nil
}

// emailRegex is a simple regex for validating email addresses.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// isValidEmail checks if the provided string is a valid email address.
func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
