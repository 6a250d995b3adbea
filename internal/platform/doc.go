// Package platform adapts rendered content to the paste rules of each
// publishing platform and keeps the registry of available adapters.
//
// HTML adapters consume the inlined HTML produced by the pipeline;
// Markdown adapters rewrite the raw source with ordered regex passes
// while fenced and inline code is held aside untouched.
package platform
