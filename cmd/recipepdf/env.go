package main

import (
	"io"
	"os"
	"time"

	recipepdf "github.com/priscilaarruda/sorobo-chef-agent"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now     func() time.Time
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	NewPool func(size int, opts ...recipepdf.Option) Pool
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewPool: func(size int, opts ...recipepdf.Option) Pool {
			return recipepdf.NewRendererPool(size, opts...)
		},
	}
}
