// Package logger provides slog attribute helpers used at the transport
// boundary of the mailer. Helpers return an empty slog.Attr for nil input,
// so call sites never need nil checks:
//
//	log.Error("email render failed",
//		logger.ID("message_id", msg.ID),
//		logger.Error(err),
//	)
//
// The rendering core itself stays silent; it is a pure computation over
// in-memory registries and has nothing to report.
package logger
