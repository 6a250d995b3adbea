package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdexport <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render markdown to theme-inlined HTML")
	fmt.Fprintln(w, "  export     Convert markdown for a publishing platform")
	fmt.Fprintln(w, "  platforms  List export platforms")
	fmt.Fprintln(w, "  themes     List themes and code themes")
	fmt.Fprintln(w, "  validate   Check theme JSON files")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdexport help <command>' for details on a specific command.")
}

func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Debug logs and timing")
}

func printThemeFlags(w io.Writer) {
	fmt.Fprintln(w, "Theme:")
	fmt.Fprintln(w, "  -t, --theme <name|path>   Theme name, or .json/.css file")
	fmt.Fprintln(w, "      --code-theme <name>   Code theme name, or .json file")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with themes/ and styles/")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdexport render [files...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render markdown to HTML with every theme style inlined.")
	fmt.Fprintln(w, "Reads stdin when no file is given.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file, or directory for several inputs")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = config or auto)")
	fmt.Fprintln(w)
	printThemeFlags(w)
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printExportUsage prints usage for the export command.
func printExportUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdexport export [file] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown into the content a platform editor accepts.")
	fmt.Fprintln(w, "HTML platforms render the markdown first unless --html is given.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Export:")
	fmt.Fprintln(w, "  -p, --platform <id>       Target platform (see 'mdexport platforms')")
	fmt.Fprintln(w, "      --html <file>         Pre-rendered HTML for HTML platforms")
	fmt.Fprintln(w, "  -o, --output <file>       Output file (default: stdout)")
	fmt.Fprintln(w, "      --plain               Print the plain-text alternative")
	fmt.Fprintln(w)
	printThemeFlags(w)
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printValidateUsage prints usage for the validate command.
func printValidateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdexport validate <files...> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Decode and validate theme JSON files.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --code                Files are code themes")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "export":
		printExportUsage(env.Stdout)
	case "validate":
		printValidateUsage(env.Stdout)
	case "platforms":
		fmt.Fprintln(env.Stdout, "Usage: mdexport platforms")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "List export platforms in display order with their output format.")
	case "themes":
		fmt.Fprintln(env.Stdout, "Usage: mdexport themes [--asset-path <dir>]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "List content themes, stylesheets usable as themes, and code themes.")
	case "config":
		fmt.Fprintln(env.Stdout, "Usage: mdexport config [-c <name>]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Print the effective configuration as YAML.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdexport version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdexport help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
