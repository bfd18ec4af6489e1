// Package slog decorates reader services with structured logging.
package slog

import "log/slog"

// levelFor logs successful calls at debug level and failures at warn level.
func levelFor(err error) slog.Level {
	if err != nil {
		return slog.LevelWarn
	}
	return slog.LevelDebug
}
