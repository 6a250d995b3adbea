package main

import (
	"io"
	"os"

	"github.com/alnah/go-mdexport/internal/config"
	"github.com/alnah/go-mdexport/internal/hints"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Config *config.Config // Used when no --config is given
	Color  bool           // ANSI styling for listings
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Config: config.DefaultConfig(),
		Color:  hints.InTerminal(),
	}
}
