package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-mdexport"
	"github.com/alnah/go-mdexport/internal/hints"
)

// ErrUnknownPlatform is returned for a platform id with no exporter.
var ErrUnknownPlatform = errors.New("unknown platform")

// runExport converts one markdown input for a platform.
func runExport(ctx context.Context, args []string, env *Environment) error {
	flags, files, err := parseExportFlags(args)
	if err != nil {
		return err
	}

	s, err := newSession(flags.common, flags.themes, env)
	if err != nil {
		return err
	}

	id := firstNonEmpty(flags.platform, s.cfg.Platform)
	exporter := findExporter(s.conv, id)
	if exporter == nil {
		return fmt.Errorf("%w: %q%s", ErrUnknownPlatform, id, hints.ForUnknownPlatform(s.conv.PlatformIDs()))
	}

	md, err := readMarkdown(files, env.Stdin)
	if err != nil {
		return err
	}

	var html string
	if exporter.FormatType() == mdexport.FormatHTML {
		// Exporters that never produce content fail before the render.
		if _, err := exporter.Export(md, "", s.theme); errors.Is(err, mdexport.ErrDOMCopyOnly) {
			return fmt.Errorf("%s: %w%s", id, err, hints.ForDOMCopyOnly())
		}
		html, err = exportHTML(ctx, s, flags.html, md)
		if err != nil {
			return err
		}
	}

	res, err := s.conv.ExportContent(id, md, html, s.theme)
	if err != nil {
		if errors.Is(err, mdexport.ErrDOMCopyOnly) {
			return fmt.Errorf("%s: %w%s", id, err, hints.ForDOMCopyOnly())
		}
		return err
	}

	content := res.Content
	if flags.plain && res.PlainText != "" {
		content = res.PlainText
	}

	s.logger.Debug("exported",
		"platform", id,
		"mimeType", res.MIMEType,
		"bytes", len(content))
	return writeOutput(env, flags.output, content)
}

// exportHTML returns the --html file contents, or renders md.
func exportHTML(ctx context.Context, s *session, htmlPath, md string) (string, error) {
	if htmlPath == "" {
		return s.conv.Render(ctx, s.request(md))
	}
	data, err := os.ReadFile(htmlPath) // #nosec G304 -- user-provided input
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadHTML, err)
	}
	return string(data), nil
}

func findExporter(conv *mdexport.Converter, id string) mdexport.Exporter {
	for _, e := range conv.Exporters() {
		if e.ID() == id {
			return e
		}
	}
	return nil
}
