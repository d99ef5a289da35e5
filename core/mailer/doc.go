// Package mailer defines the transport boundary of the rendering core: a
// message descriptor, an abstract Sender interface, a development sender
// that writes messages to disk, and a Hook that renders template-backed
// messages before handing them to a transport.
//
// # Message content model
//
// A Message either carries rendered markup or references a bundle template
// by name. Message.Content() classifies it explicitly:
//
//	switch msg.Content() {
//	case mailer.ContentPrerendered: // deliver as-is
//	case mailer.ContentTemplate:    // render first
//	case mailer.ContentEmpty:       // reject
//	}
//
// # Hook
//
// The Hook composes a renderer.Renderer with any Sender. Prerendered or
// template-less messages bypass the renderer entirely; template messages
// are rendered and their subject/html/text populated from the result:
//
//	hook, err := mailer.NewHook(r, mailer.NewDevSender("./dev_emails"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	err = hook.Send(ctx, mailer.Message{
//		SendTo:   "user@example.com",
//		Template: "welcome",
//		Language: "pl",
//		Data:     map[string]any{"name": "Ada"},
//		Tag:      "welcome_email",
//	})
//
// Render failures propagate on the hook's error return; nothing reaches
// the transport for a message that failed to render.
//
// # Senders
//
// Production senders live in integration/mailer (SMTP, Postmark). The
// DevSender in this package saves messages as HTML, text and JSON files
// for local development and debugging.
package mailer
