package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"

	"github.com/alnah/go-mdexport"
	"github.com/alnah/go-mdexport/internal/hints"
	"github.com/alnah/go-mdexport/internal/theme"
)

// runValidate decodes each file as a theme (or code theme with --code)
// and reports one line per file. The first failure is returned.
func runValidate(args []string, env *Environment) error {
	flags, files, err := parseValidateFlags(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: validate needs at least one file", ErrNoInput)
	}

	au := aurora.NewAurora(env.Color)
	var first error
	for _, path := range files {
		id, err := validateFile(path, flags.code)
		if err != nil {
			if first == nil {
				first = err
			}
			fmt.Fprintf(env.Stdout, "%s %s: %v\n", au.Red("FAIL"), path, err)
			continue
		}
		if !flags.common.quiet {
			fmt.Fprintf(env.Stdout, "%s   %s (%s)\n", au.Green("ok"), path, id)
		}
	}

	if errors.Is(first, theme.ErrInvalidTheme) || errors.Is(first, theme.ErrInvalidCodeTheme) {
		return fmt.Errorf("%w%s", first, hints.ForInvalidTheme())
	}
	return first
}

func validateFile(path string, code bool) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided input
	if err != nil {
		return "", fmt.Errorf("%w: %w", mdexport.ErrThemeRead, err)
	}

	if code {
		ct, err := theme.DecodeCodeTheme(data)
		if err != nil {
			return "", err
		}
		return ct.ID, nil
	}

	t, err := theme.Decode(data)
	if err != nil {
		return "", err
	}
	return t.ID, nil
}
