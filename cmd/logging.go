package cmd

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// setupLogger installs a tint handler as the default logger. The first
// non-empty level of flag, BALLOON_LOG_LEVEL and the config wins.
func setupLogger(w io.Writer, flagLevel, configLevel string) {
	logLevel := slog.LevelInfo
	for _, levelStr := range []string{flagLevel, os.Getenv("BALLOON_LOG_LEVEL"), configLevel} {
		if levelStr == "" {
			continue
		}
		var l slog.Level
		if err := l.UnmarshalText([]byte(levelStr)); err == nil {
			logLevel = l
			break
		}
	}

	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.Kitchen,
		}),
	))
}
