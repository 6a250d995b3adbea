package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

// runMain dispatches to a command and returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}
	cmd, rest := args[1], args[2:]

	var err error
	switch cmd {
	case "render":
		err = runRender(ctx, rest, env)
	case "export":
		err = runExport(ctx, rest, env)
	case "platforms":
		err = runPlatforms(rest, env)
	case "themes":
		err = runThemes(rest, env)
	case "validate":
		err = runValidate(rest, env)
	case "config":
		err = runConfig(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "mdexport %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if errors.Is(err, flag.ErrHelp) {
		return runHelp([]string{cmd}, env)
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		if errors.Is(err, ErrUsage) {
			fmt.Fprintf(env.Stderr, "Run 'mdexport help %s' for usage.\n", cmd)
		}
		return exitCodeFor(err)
	}
	return ExitSuccess
}
