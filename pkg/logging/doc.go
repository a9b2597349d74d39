// Package logging configures log/slog for shapemock.
//
// Components take a *slog.Logger in their constructor or through an
// option and fall back to Nop() when none is given.
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatJSON,
//	})
//	logger.Info("serving mocks", "addr", ":4380")
//
// FromEnv reads SHAPEMOCK_LOG_LEVEL and SHAPEMOCK_LOG_FORMAT. A Mirror
// writer receives a JSON copy of every record, which the CLI uses for
// --log-file.
package logging
