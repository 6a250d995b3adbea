package main

import (
	"fmt"

	"github.com/logrusorgru/aurora"

	"github.com/alnah/go-mdexport"
)

// runPlatforms lists the registered exporters in display order.
func runPlatforms(args []string, env *Environment) error {
	if _, _, err := parseListFlags("platforms", args); err != nil {
		return err
	}

	au := aurora.NewAurora(env.Color)
	for _, e := range mdexport.NewDefaultRegistry().All() {
		fmt.Fprintf(env.Stdout, "%s %s %-8s %s\n",
			e.Icon(),
			au.Bold(fmt.Sprintf("%-9s", e.ID())),
			e.FormatType(),
			e.Name())
	}
	return nil
}

// runThemes lists content themes and code themes, marking the configured
// defaults.
func runThemes(args []string, env *Environment) error {
	common, tf, err := parseListFlags("themes", args)
	if err != nil {
		return err
	}
	s, err := newSession(*common, *tf, env)
	if err != nil {
		return err
	}

	au := aurora.NewAurora(env.Color)
	printNames := func(title string, names []string, current string) {
		fmt.Fprintln(env.Stdout, au.Bold(title))
		for _, name := range names {
			if name == current {
				fmt.Fprintf(env.Stdout, "  %s %s\n", au.Green(name), au.Gray(12, "(default)"))
				continue
			}
			fmt.Fprintf(env.Stdout, "  %s\n", name)
		}
	}

	printNames("Themes:", s.conv.ThemeNames(), s.theme.ID)
	fmt.Fprintln(env.Stdout)
	printNames("Code themes:", s.conv.CodeThemeNames(), s.codeTheme.ID)
	return nil
}

// runConfig prints the effective configuration.
func runConfig(args []string, env *Environment) error {
	common, _, err := parseListFlags("config", args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(*common, env)
	if err != nil {
		return err
	}
	out, err := cfg.Dump()
	if err != nil {
		return err
	}
	fmt.Fprint(env.Stdout, out)
	return nil
}
