// Package logging builds the application's *slog.Logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// New returns a logger for the given environment writing to w.
//
// Development (dev): human-readable tint output, coloured only when w is a
// terminal.
// Staging and production: machine-readable JSON.
func New(env, level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("logging.New: level %q: %w", level, err)
	}

	switch env {
	case "prod", "staging":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})), nil
	default:
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:   lvl,
			NoColor: !IsTerminal(w),
		})), nil
	}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
