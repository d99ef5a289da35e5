package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/mailbundle/core/logger"
	"github.com/dmitrymomot/mailbundle/core/renderer"
)

// Hook sits between message producers and a transport Sender. Messages
// that already carry rendered markup, or that lack a template reference,
// pass through untouched; template messages are rendered first and their
// subject, HTML and text bodies populated. Render failures propagate on
// the hook's error return and nothing is handed to the transport.
type Hook struct {
	renderer *renderer.Renderer
	sender   Sender
	log      *slog.Logger
}

// HookOption configures a Hook.
type HookOption func(*Hook)

// WithLogger attaches a logger for render and delivery diagnostics.
// Without it the hook is silent.
func WithLogger(log *slog.Logger) HookOption {
	return func(h *Hook) {
		h.log = log
	}
}

// NewHook wires a renderer and a transport sender together.
func NewHook(r *renderer.Renderer, sender Sender, opts ...HookOption) (*Hook, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: renderer is required", ErrInvalidConfig)
	}
	if sender == nil {
		return nil, fmt.Errorf("%w: sender is required", ErrInvalidConfig)
	}
	h := &Hook{renderer: r, sender: sender}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Send renders the message if needed and hands it to the transport.
func (h *Hook) Send(ctx context.Context, msg Message) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}

	if msg.Content() != ContentTemplate {
		return h.sender.Send(ctx, msg)
	}

	start := time.Now()
	var opts []renderer.RenderOption
	if msg.Language != "" {
		opts = append(opts, renderer.WithLanguage(msg.Language))
	}

	res, err := h.renderer.Render(msg.Template, msg.Data, opts...)
	if err != nil {
		if h.log != nil {
			h.log.ErrorContext(ctx, "email render failed",
				logger.ID("message_id", msg.ID),
				logger.ID("template", msg.Template),
				logger.Error(err),
			)
		}
		return err
	}

	msg.Subject = res.Subject
	msg.BodyHTML = res.HTML
	msg.BodyText = res.Text

	if h.log != nil {
		h.log.DebugContext(ctx, "email rendered",
			logger.ID("message_id", msg.ID),
			logger.ID("template", msg.Template),
			logger.Elapsed(start),
		)
	}

	return h.sender.Send(ctx, msg)
}
