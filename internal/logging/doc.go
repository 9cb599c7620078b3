// Package logging provides structured logging for pokedex.
//
// This package wraps a global zap logger with convenience functions. Logging
// is silent by default so the terminal UI and CLI output are never
// interleaved with log lines; set POKEDEX_LOG_LEVEL (or --log-level) to
// enable it.
//
// # Log Levels
//
//   - Debug: every API request with status and duration
//   - Info: completed browser operations (load, search, filter)
//   - Warn: failed operations that were shown to the user as a message
//   - Error: startup failures
//
// # Configuration
//
//	if err := logging.InitializeWithOptions(logging.Options{
//	    Level:      "debug",
//	    OutputPath: "/tmp/pokedex.log",
//	}); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// The interactive UI owns the terminal, so when logging is enabled there it
// should always be pointed at a file.
package logging
