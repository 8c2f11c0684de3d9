package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags that control output verbosity and config.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size   string
	margin float64
}

// modeFlags select what the run produces.
type modeFlags struct {
	dumpBlocks bool // print classified blocks as YAML, render nothing
	inspect    bool // validate artifacts and report page counts
	help       bool
	version    bool
}

// cliFlags holds every recipepdf flag.
type cliFlags struct {
	common    commonFlags
	outputDir string
	name      string
	backend   string
	workers   int
	timeout   string
	page      pageFlags
	mode      modeFlags

	// changed reports whether a flag was set on the command line, so only
	// explicit flags override config values.
	changed func(name string) bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing and debug logs")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: a4, letter, legal")
	fs.Float64Var(&f.margin, "margin", 0, "margin in centimeters (0.5-5)")
}

// addModeFlags adds run mode flags to a FlagSet.
func addModeFlags(fs *flag.FlagSet, f *modeFlags) {
	fs.BoolVar(&f.dumpBlocks, "dump-blocks", false, "print classified blocks as YAML instead of rendering")
	fs.BoolVar(&f.inspect, "inspect", false, "validate each PDF and print its page count")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
	fs.BoolVar(&f.version, "version", false, "show version")
}

// parseFlags parses args (without the program name) and returns the
// positional inputs.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("recipepdf", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &cliFlags{}

	fs.StringVarP(&f.outputDir, "output-dir", "o", "", "destination directory (default \"recipes\")")
	fs.StringVarP(&f.name, "name", "n", "", "filename hint (default: input file stem)")
	fs.StringVarP(&f.backend, "backend", "b", "", "PDF backend: fpdf, chrome")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel renderers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "Chrome page load timeout (e.g., 30s, 2m)")

	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	addModeFlags(fs, &f.mode)

	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.changed = fs.Changed
	return f, fs.Args(), nil
}
