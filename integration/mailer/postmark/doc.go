// Package postmark provides a Postmark-backed implementation of the
// mailer.Sender interface for transactional email delivery.
//
// Rendered messages are delivered through Postmark's transactional API
// with open and HTML link tracking enabled and Reply-To pointed at the
// configured support address.
//
// Basic usage:
//
//	import (
//		"github.com/dmitrymomot/mailbundle/core/config"
//		"github.com/dmitrymomot/mailbundle/integration/mailer/postmark"
//	)
//
//	var cfg postmark.Config
//	config.MustLoad(&cfg)
//
//	sender, err := postmark.New(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Configuration is validated in New; MustNewClient panics instead, for
// dependency injection at startup.
package postmark
