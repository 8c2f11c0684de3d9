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

	"go.uber.org/zap"

	recipepdf "github.com/priscilaarruda/sorobo-chef-agent"
	"github.com/priscilaarruda/sorobo-chef-agent/internal/yamlutil"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage        = errors.New("invalid usage")
	ErrReadInput    = errors.New("failed to read input")
	ErrRendererInit = errors.New("failed to initialize renderer")
)

// stdinSource names standard input among the positional arguments.
const stdinSource = "-"

// Pool abstracts renderer pool operations for testability.
type Pool interface {
	Acquire() (*recipepdf.Renderer, error)
	Release(*recipepdf.Renderer)
	Size() int
	Close() error
}

// Compile-time interface implementation check.
var _ Pool = (*recipepdf.RendererPool)(nil)

// Job is one input to render.
type Job struct {
	Source string // file path or "-"
	Hint   string // filename hint passed to the renderer
}

// RenderResult holds the outcome of a single render.
type RenderResult struct {
	Source   string
	Path     string
	Pages    int // set with --inspect
	Err      error
	Duration time.Duration
}

// renderParams groups parameters shared across the batch.
type renderParams struct {
	outputDir string
	inspect   bool
	stdin     io.Reader
	logger    *zap.Logger
}

// buildJobs maps positional arguments to jobs. No arguments means stdin.
// The hint is name when given, else the file stem.
func buildJobs(args []string, name string) ([]Job, error) {
	if len(args) == 0 {
		args = []string{stdinSource}
	}

	if name != "" && len(args) > 1 {
		return nil, fmt.Errorf("%w: --name applies to a single input, got %d", ErrUsage, len(args))
	}

	jobs := make([]Job, 0, len(args))
	stdinSeen := false
	for _, a := range args {
		if a == stdinSource {
			if stdinSeen {
				return nil, fmt.Errorf("%w: stdin (-) given more than once", ErrUsage)
			}
			stdinSeen = true
		}
		hint := name
		if hint == "" {
			hint = sourceStem(a)
		}
		jobs = append(jobs, Job{Source: a, Hint: hint})
	}
	return jobs, nil
}

// sourceStem returns the file name without extension, or the default
// stem for stdin.
func sourceStem(source string) string {
	if source == stdinSource {
		return recipepdf.DefaultStem
	}
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// readInput reads a job's raw text.
func readInput(source string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if source == stdinSource {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(source) // #nosec G304 -- user-provided input path
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReadInput, displaySource(source), err)
	}
	return string(data), nil
}

func displaySource(source string) string {
	if source == stdinSource {
		return "stdin"
	}
	return source
}

// renderBatch renders jobs concurrently using the renderer pool.
// Results keep the order of jobs.
func renderBatch(ctx context.Context, pool Pool, jobs []Job, params *renderParams) []RenderResult {
	if len(jobs) == 0 {
		return nil
	}

	concurrency := min(pool.Size(), len(jobs))

	results := make([]RenderResult, len(jobs))
	var wg sync.WaitGroup
	queue := make(chan int, len(jobs))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()

			r, err := pool.Acquire()
			if err != nil {
				// Renderer creation failed, mark the jobs this worker takes as failed
				for idx := range queue {
					results[idx] = RenderResult{
						Source: jobs[idx].Source,
						Err:    fmt.Errorf("%w: %w", ErrRendererInit, err),
					}
				}
				return
			}
			defer pool.Release(r)

			for idx := range queue {
				if ctx.Err() != nil {
					results[idx] = RenderResult{Source: jobs[idx].Source, Err: ctx.Err()}
					continue
				}
				results[idx] = renderJob(ctx, r, jobs[idx], params)
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

// renderJob reads, classifies and renders one input.
func renderJob(ctx context.Context, r *recipepdf.Renderer, job Job, params *renderParams) (result RenderResult) {
	start := time.Now()
	result = RenderResult{Source: job.Source}
	defer func() { result.Duration = time.Since(start) }()

	raw, err := readInput(job.Source, params.stdin)
	if err != nil {
		result.Err = err
		return result
	}

	blocks := recipepdf.Classify(raw)
	if len(blocks) == 0 {
		params.logger.Warn("input has no content; writing an empty document",
			zap.String("source", displaySource(job.Source)))
	}

	path, err := r.Render(ctx, blocks, params.outputDir, job.Hint)
	if err != nil {
		result.Err = err
		return result
	}
	result.Path = path

	if params.inspect {
		info, err := recipepdf.Inspect(path)
		if err != nil {
			result.Err = err
			return result
		}
		result.Pages = info.Pages
	}

	params.logger.Debug("rendered",
		zap.String("source", displaySource(job.Source)),
		zap.String("path", path),
		zap.Int("blocks", len(blocks)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result
}

// dumpBlocks classifies every job and writes the blocks as YAML, one
// document per input.
func dumpBlocks(jobs []Job, stdin io.Reader, w io.Writer) error {
	for i, job := range jobs {
		raw, err := readInput(job.Source, stdin)
		if err != nil {
			return err
		}

		if i > 0 {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}
		if len(jobs) > 1 {
			fmt.Fprintf(w, "# %s\n", displaySource(job.Source))
		}

		blocks := recipepdf.Classify(raw)
		if blocks == nil {
			blocks = []recipepdf.Block{}
		}
		if err := yamlutil.Encode(w, blocks); err != nil {
			return fmt.Errorf("encoding blocks for %s: %w", displaySource(job.Source), err)
		}
	}
	return nil
}
