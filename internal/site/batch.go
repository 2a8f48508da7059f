package site

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
)

// BatchSummary reports the outcome of generating a directory of pages.
type BatchSummary struct {
	Processed int
	Succeeded int
	// Failed lists the parameter files that could not be generated, in
	// path order, with their errors.
	Failed   []BatchFailure
	Warnings int
}

// BatchFailure is one parameter file that failed to generate.
type BatchFailure struct {
	ParamsPath string
	Err        error
}

// FindParamFiles returns the parameter files under dir matching the
// doublestar pattern, sorted.
func FindParamFiles(dir, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("matching %q in %s: %w", pattern, dir, err)
	}
	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = filepath.Join(dir, filepath.FromSlash(m))
	}
	sort.Strings(paths)
	return paths, nil
}

// GenerateAll generates a page for every parameter file, at most
// concurrency at a time (unbounded when concurrency <= 0). A failing file
// does not stop the others. done, if set, is called after each file with the
// number finished so far.
func (g *Generator) GenerateAll(ctx context.Context, paramsPaths []string, concurrency int, done func(n int, path string)) (*BatchSummary, error) {
	eg, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		eg.SetLimit(concurrency)
	}

	var (
		mu      sync.Mutex
		summary BatchSummary
	)
	for _, path := range paramsPaths {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := g.GenerateFile(path)

			mu.Lock()
			defer mu.Unlock()
			summary.Processed++
			if err != nil {
				g.log.Error("generating page", "params", path, "err", err)
				summary.Failed = append(summary.Failed, BatchFailure{ParamsPath: path, Err: err})
			} else {
				summary.Succeeded++
				summary.Warnings += len(res.Warnings)
			}
			if done != nil {
				done(summary.Processed, path)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return &summary, err
	}

	sort.Slice(summary.Failed, func(i, j int) bool {
		return summary.Failed[i].ParamsPath < summary.Failed[j].ParamsPath
	})
	return &summary, nil
}
