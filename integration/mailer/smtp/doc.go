// Package smtp provides an SMTP-based implementation of the mailer.Sender
// interface.
//
// It delivers rendered messages through any SMTP server with support for
// STARTTLS, direct TLS, and plain connections. Messages carrying both an
// HTML and a plain-text body are sent as multipart/alternative.
//
// Basic usage:
//
//	import (
//		"github.com/dmitrymomot/mailbundle/core/config"
//		"github.com/dmitrymomot/mailbundle/integration/mailer/smtp"
//	)
//
//	var cfg smtp.Config
//	config.MustLoad(&cfg)
//
//	sender, err := smtp.New(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Configuration is validated in New; MustNewClient panics instead, for
// dependency injection at startup.
package smtp
