// Package log builds [log/slog] handlers from command-line settings.
//
// Three output formats are supported: [FormatText] for people watching a
// terminal, [FormatLogfmt] and [FormatJSON] for machines. Levels are
// [LevelError], [LevelWarn], [LevelInfo] and [LevelDebug].
//
// Typical usage registers the flags on the root command and installs the
// handler once flags are parsed:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	slog.SetDefault(slog.New(handler))
//
// Rendered frames are written to stdout, so handlers should target stderr.
package log
