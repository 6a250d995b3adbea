package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks malformed command lines.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// themeFlags selects the content theme, code theme, and asset directory.
type themeFlags struct {
	theme     string // Name or path to .json/.css
	codeTheme string // Name or path to .json
	assetPath string // Override asset directory
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common  commonFlags
	themes  themeFlags
	output  string
	workers int
}

// exportFlags holds all flags for the export command.
type exportFlags struct {
	common   commonFlags
	themes   themeFlags
	platform string
	html     string // Pre-rendered HTML file for HTML exporters
	output   string
	plain    bool // Print the plain-text alternative when one exists
}

// validateFlags holds all flags for the validate command.
type validateFlags struct {
	common commonFlags
	code   bool // Inputs are code themes
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addThemeFlags adds theme selection flags to a FlagSet.
func addThemeFlags(fs *flag.FlagSet, f *themeFlags) {
	fs.StringVarP(&f.theme, "theme", "t", "", "theme name or .json/.css path")
	fs.StringVar(&f.codeTheme, "code-theme", "", "code theme name or .json path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// newFlagSet creates a silent FlagSet. Errors and usage are reported by
// runMain so every command prints them the same way.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}

// parse runs fs.Parse, passing flag.ErrHelp through and marking every
// other failure as a usage error.
func parse(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string) (*renderFlags, []string, error) {
	fs := newFlagSet("render")
	f := &renderFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory (default: stdout)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = config or auto)")
	addCommonFlags(fs, &f.common)
	addThemeFlags(fs, &f.themes)

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseExportFlags parses export command flags and returns positional args.
func parseExportFlags(args []string) (*exportFlags, []string, error) {
	fs := newFlagSet("export")
	f := &exportFlags{}

	fs.StringVarP(&f.platform, "platform", "p", "", "target platform id")
	fs.StringVar(&f.html, "html", "", "pre-rendered HTML file (HTML platforms)")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.BoolVar(&f.plain, "plain", false, "print the plain-text alternative")
	addCommonFlags(fs, &f.common)
	addThemeFlags(fs, &f.themes)

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() > 1 {
		return nil, nil, fmt.Errorf("%w: export takes at most one input file, got %d", ErrUsage, fs.NArg())
	}
	return f, fs.Args(), nil
}

// parseValidateFlags parses validate command flags and returns positional args.
func parseValidateFlags(args []string) (*validateFlags, []string, error) {
	fs := newFlagSet("validate")
	f := &validateFlags{}

	fs.BoolVar(&f.code, "code", false, "validate code theme files")
	addCommonFlags(fs, &f.common)

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseListFlags parses flags for the listing commands (platforms,
// themes, config), which take no positional arguments.
func parseListFlags(name string, args []string) (*commonFlags, *themeFlags, error) {
	fs := newFlagSet(name)
	common := &commonFlags{}
	themes := &themeFlags{}

	addCommonFlags(fs, common)
	if name == "themes" {
		fs.StringVar(&themes.assetPath, "asset-path", "", "custom asset directory")
	}

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() > 0 {
		return nil, nil, fmt.Errorf("%w: %s takes no arguments", ErrUsage, name)
	}
	return common, themes, nil
}
