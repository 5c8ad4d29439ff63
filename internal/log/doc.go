// Package log provides logging with automatic masking of API credentials,
// built on top of the standard slog package.
//
// mapdown handles bearer tokens for hosted reader APIs. The SecureHandler
// masks attribute values that look like credentials (api_key, authorization,
// bearer tokens) so verbose logs can be shared without leaking keys.
//
// Usage:
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
package log
