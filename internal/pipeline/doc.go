// Package pipeline implements the Markdown-to-clipboard HTML pipeline.
//
// This package handles the parsing and inlining stages:
//   - Markdown preprocessing (line normalization, heading repair, highlight syntax)
//   - Markdown to HTML conversion via goldmark, with chroma code highlighting
//   - Inline-code splitting into punctuation and text runs
//   - Style inlining: every element gets a literal style attribute computed
//     from a resolved theme, so the output survives paste targets that
//     strip <style> blocks
//
// Theme resolution lives in internal/theme and platform-specific
// post-processing in internal/platform.
package pipeline
