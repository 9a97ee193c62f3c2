// Package logger builds the slog loggers used across the pipeline.
//
// Components take a *slog.Logger and default to the no-op logger, so
// logging is always available but never required:
//
//	resolver := translation.NewResolver(store,
//	    translation.WithLogger(logger.New()),
//	)
package logger
