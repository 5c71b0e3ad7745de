// Package logging provides the structured logger shared by the API process.
//
// Output is JSON on stdout by default. LOG_LEVEL selects the minimum level
// and LOG_FORMAT=text switches to the human-readable handler for local work.
// Request-scoped loggers come from requestid.Logger, which adds request_id.
//
// Example usage:
//
//	logger := logging.NewLogger()
//	slog.SetDefault(logger)
//	logger.Info("server starting", slog.String("addr", ":8080"))
package logging
