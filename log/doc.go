// Package log provides a simplified, concurrency-safe logging interface
// based on [log/slog].
//
// Loggers are configured once at creation time with functional options and
// are immutable afterwards: [Logger.Wrap] and [Logger.With] return new
// loggers and never modify the receiver.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("stack loaded", slog.Int("layers", 3))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("kitchen"),
//		log.WithCaller(true))
//
// # Package Logger
//
// The package-level functions ([Debug], [Info], ...) write through a default
// logger that can be reconfigured with [Config]. Context-unaware variants use
// [DefaultContextProvider] to obtain a context.
//
// # Levels
//
// Five levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Messages below the configured level are
// discarded before any attribute is formatted.
//
// # Formats
//
// [FormatJSON] (default) and [FormatText]. When pretty printing is enabled
// (the default), text output is colorized and JSON output is indented.
package log
