package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/alnah/go-mdexport"
	"github.com/alnah/go-mdexport/internal/config"
	"github.com/alnah/go-mdexport/internal/fileutil"
	"github.com/alnah/go-mdexport/internal/hints"
)

// Sentinel errors for file operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadMarkdown       = errors.New("failed to read markdown")
	ErrReadHTML           = errors.New("failed to read HTML file")
	ErrWriteOutput        = errors.New("failed to write output")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

const dirPermissions = 0o750 // rwxr-x---: owner full, group read+execute

// renderJob pairs an input file with its destination. An empty
// OutputPath means stdout.
type renderJob struct {
	InputPath  string
	OutputPath string
}

// renderResult holds the outcome of a single render.
type renderResult struct {
	InputPath  string
	OutputPath string
	HTML       string // Kept only for stdout output
	Err        error
	Duration   time.Duration
}

// runRender renders stdin or a list of files.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, files, err := parseRenderFlags(args)
	if err != nil {
		return err
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	s, err := newSession(flags.common, flags.themes, env)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		md, err := readMarkdown(nil, env.Stdin)
		if err != nil {
			return err
		}
		html, err := s.conv.Render(ctx, s.request(md))
		if err != nil {
			return err
		}
		return writeOutput(env, flags.output, html)
	}

	jobs, err := planOutputs(files, flags.output)
	if err != nil {
		return err
	}

	workers := flags.workers
	if workers == 0 {
		workers = s.cfg.Workers
	}
	renderer := mdexport.NewRenderer(s.conv, workers)
	defer renderer.Close()

	s.logger.Debug("rendering files", "files", len(jobs), "workers", mdexport.ResolvePoolSize(workers))
	results := renderBatch(ctx, renderer, jobs, s, mdexport.ResolvePoolSize(workers))
	return printResults(results, flags.common, env)
}

// request builds a render request with the session themes.
func (s *session) request(markdown string) mdexport.RenderRequest {
	return mdexport.RenderRequest{
		Markdown:  markdown,
		Theme:     s.theme,
		CodeTheme: s.codeTheme,
	}
}

// validateWorkers checks the --workers range.
func validateWorkers(n int) error {
	if n < 0 || n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (must be 0-%d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// planOutputs assigns destinations. Without -o every result goes to
// stdout in input order. A single input with -o writes that file; several
// inputs, or an existing directory, write <dir>/<name>.html.
func planOutputs(files []string, output string) ([]renderJob, error) {
	jobs := make([]renderJob, len(files))
	for i, f := range files {
		jobs[i].InputPath = f
	}

	switch {
	case output == "":
		return jobs, nil
	case len(files) == 1 && !isDirTarget(output):
		jobs[0].OutputPath = output
		return jobs, nil
	}

	if err := os.MkdirAll(output, dirPermissions); err != nil {
		return nil, fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}
	for i, f := range files {
		jobs[i].OutputPath = filepath.Join(output, htmlName(f))
	}
	return jobs, nil
}

func isDirTarget(path string) bool {
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return true
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// htmlName maps "notes/post.md" to "post.html".
func htmlName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".html"
}

// renderBatch renders jobs concurrently. Results keep input order.
func renderBatch(ctx context.Context, r mdexport.Renderer, jobs []renderJob, s *session, concurrency int) []renderResult {
	if len(jobs) == 0 {
		return nil
	}
	if concurrency > len(jobs) {
		concurrency = len(jobs)
	}
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]renderResult, len(jobs))
	var wg sync.WaitGroup
	queue := make(chan int, len(jobs))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				if ctx.Err() != nil {
					results[idx] = renderResult{InputPath: jobs[idx].InputPath, Err: ctx.Err()}
					continue
				}
				results[idx] = renderFile(ctx, r, jobs[idx], s)
			}
		}()
	}

	for i := range jobs {
		queue <- i
	}
	close(queue)

	wg.Wait()
	return results
}

// renderFile processes a single file and returns the result.
func renderFile(ctx context.Context, r mdexport.Renderer, job renderJob, s *session) renderResult {
	start := time.Now()
	result := renderResult{InputPath: job.InputPath, OutputPath: job.OutputPath}

	content, err := os.ReadFile(job.InputPath) // #nosec G304 -- user-provided input
	if err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	html, err := r.Render(ctx, s.request(string(content)))
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if job.OutputPath == "" {
		result.HTML = html
	} else if err := fileutil.WriteFileAtomic(job.OutputPath, html); err != nil {
		result.Err = fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}

	result.Duration = time.Since(start)
	return result
}

// printResults writes stdout results in order and reports file results.
// It returns the first failure, annotated with the failure count.
func printResults(results []renderResult, common commonFlags, env *Environment) error {
	var failed, written int
	var first error

	for _, r := range results {
		if r.Err != nil {
			failed++
			if first == nil {
				first = r.Err
			}
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if r.OutputPath == "" {
			writeStdout(env.Stdout, r.HTML)
			continue
		}

		written++
		if common.quiet {
			continue
		}
		if common.verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !common.quiet && written > 0 && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", len(results)-failed, failed)
	}

	if failed > 0 {
		return fmt.Errorf("%w (%d of %d failed)", first, failed, len(results))
	}
	return nil
}

// readMarkdown reads the single input file, or r when files is empty.
func readMarkdown(files []string, r io.Reader) (string, error) {
	if len(files) == 0 {
		if r == nil {
			return "", ErrNoInput
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("%w: stdin: %v", ErrReadMarkdown, err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(files[0]) // #nosec G304 -- user-provided input
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}
	return string(data), nil
}

// writeOutput writes content to path, or to stdout when path is empty.
func writeOutput(env *Environment, path, content string) error {
	if path == "" {
		writeStdout(env.Stdout, content)
		return nil
	}
	if err := fileutil.WriteFileAtomic(path, content); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}
	return nil
}

// writeStdout prints content with exactly one trailing newline.
func writeStdout(w io.Writer, content string) {
	if content == "" {
		return
	}
	fmt.Fprint(w, content)
	if !strings.HasSuffix(content, "\n") {
		fmt.Fprintln(w)
	}
}
