package mailer

import "context"

// Sender delivers fully rendered messages. Implementations live in
// integration/mailer; all must be safe for concurrent use.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
