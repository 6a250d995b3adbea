package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/alnah/go-mdexport/internal/config"
)

// newLogger builds the CLI logger on w. --verbose forces debug and
// --quiet raises the floor to error; log.level "off" discards everything
// unless --verbose is given.
func newLogger(lc config.LogConfig, common commonFlags, w io.Writer) (*slog.Logger, error) {
	level, ok, err := lc.SlogLevel()
	if err != nil {
		return nil, err
	}

	switch {
	case common.verbose:
		level, ok = slog.LevelDebug, true
	case common.quiet:
		level = slog.LevelError
	}
	if !ok {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(lc.Format, config.LogJSON) {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
