package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	recipepdf "github.com/priscilaarruda/sorobo-chef-agent"
	"github.com/priscilaarruda/sorobo-chef-agent/internal/config"
	"github.com/priscilaarruda/sorobo-chef-agent/internal/hints"
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
	dimColor  = color.New(color.Faint)
)

// ResultSummary holds the count of succeeded and failed renders.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed renders.
func countResults(results []RenderResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs render results. Failures always go to stderr;
// successes are silent with quiet.
func printResults(results []RenderResult, quiet, verbose bool, env *Environment) ResultSummary {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			failColor.Fprint(env.Stderr, "FAILED")
			fmt.Fprintf(env.Stderr, " %s: %v%s\n", displaySource(r.Source), r.Err, hintFor(r.Err))
			continue
		}

		if quiet {
			continue
		}

		okColor.Fprint(env.Stdout, "Created")
		fmt.Fprintf(env.Stdout, " %s", r.Path)
		if r.Pages > 0 {
			fmt.Fprintf(env.Stdout, " (%d %s)", r.Pages, plural(r.Pages, "page", "pages"))
		}
		if verbose {
			dimColor.Fprintf(env.Stdout, " from %s in %v", displaySource(r.Source), r.Duration.Round(time.Millisecond))
		}
		fmt.Fprintln(env.Stdout)
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// hintFor returns an actionable hint for known failures, or "".
func hintFor(err error) string {
	var nf *config.NotFoundError
	switch {
	case errors.As(err, &nf):
		return hints.ForConfigNotFound(nf.Tried)
	case errors.Is(err, recipepdf.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, recipepdf.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, recipepdf.ErrCreateDir):
		return hints.ForOutputDirectory()
	case errors.Is(err, recipepdf.ErrUnknownBackend):
		return hints.ForUnknownBackend([]string{recipepdf.BackendFPDF, recipepdf.BackendChrome})
	}
	return ""
}

// reportError prints a top-level error with its hint.
func reportError(w io.Writer, err error) {
	failColor.Fprint(w, "recipepdf:")
	fmt.Fprintf(w, " %v%s\n", err, hintFor(err))
}
