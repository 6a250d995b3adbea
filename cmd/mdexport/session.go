package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/alnah/go-mdexport"
	"github.com/alnah/go-mdexport/internal/config"
	"github.com/alnah/go-mdexport/internal/hints"
)

// session is the state one command invocation works with: the effective
// config, a logger, a converter, and the selected themes.
type session struct {
	cfg       *config.Config
	logger    *slog.Logger
	conv      *mdexport.Converter
	theme     *mdexport.Theme
	codeTheme *mdexport.CodeTheme
}

// loadConfig returns the config named by --config, or env.Config.
func loadConfig(common commonFlags, env *Environment) (*config.Config, error) {
	if common.config == "" {
		if env.Config != nil {
			return env.Config, nil
		}
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(common.config)
	if err != nil {
		var notFound *config.NotFoundError
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(notFound.Searched))
		}
		return nil, err
	}
	return cfg, nil
}

// newSession resolves config, logger, converter and themes.
// Flags take priority over config values.
func newSession(common commonFlags, tf themeFlags, env *Environment) (*session, error) {
	cfg, err := loadConfig(common, env)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.Log, common, env.Stderr)
	if err != nil {
		return nil, err
	}

	assetPath := firstNonEmpty(tf.assetPath, cfg.Assets.BasePath)
	conv, err := mdexport.NewConverter(
		mdexport.WithLogger(logger),
		mdexport.WithCacheSize(cfg.Cache.Size),
		mdexport.WithAssetPath(assetPath),
	)
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, logger: logger, conv: conv}

	s.theme, err = conv.LoadTheme(firstNonEmpty(tf.theme, cfg.Theme))
	if err != nil {
		return nil, withThemeHint(err, conv)
	}
	s.codeTheme, err = conv.LoadCodeTheme(firstNonEmpty(tf.codeTheme, cfg.CodeTheme))
	if err != nil {
		return nil, withThemeHint(err, conv)
	}

	logger.Debug("session ready",
		"theme", s.theme.ID,
		"codeTheme", s.codeTheme.ID,
		"assetPath", assetPath,
		"cacheSize", cfg.Cache.Size)
	return s, nil
}

// withThemeHint appends the matching hint to theme selection errors.
func withThemeHint(err error, conv *mdexport.Converter) error {
	switch {
	case errors.Is(err, mdexport.ErrThemeNotFound):
		return fmt.Errorf("%w%s", err, hints.ForThemeNotFound(conv.ThemeNames()))
	case errors.Is(err, mdexport.ErrCodeThemeNotFound):
		return fmt.Errorf("%w%s", err, hints.ForCodeThemeNotFound(conv.CodeThemeNames()))
	case errors.Is(err, mdexport.ErrInvalidTheme), errors.Is(err, mdexport.ErrInvalidCodeTheme):
		return fmt.Errorf("%w%s", err, hints.ForInvalidTheme())
	}
	return err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
