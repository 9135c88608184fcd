// Package engine drives batch analysis: it filters ignored paths,
// resolves the per-file language from configuration, and scores the
// remaining files concurrently.
package engine

import (
	"sync"

	"github.com/eshatrova/textgrade/internal/analyze"
	"github.com/eshatrova/textgrade/internal/config"
	"github.com/eshatrova/textgrade/internal/log"
)

// Runner analyzes sets of files under one configuration.
type Runner struct {
	Config *config.Config
	Log    *log.Logger
}

// Run analyzes the files at the given paths and returns one outcome
// per analyzed file, in path order. Paths matching the configured
// ignore patterns are skipped entirely. Files are independent, so
// they are analyzed concurrently; one file's failure never affects
// the others.
func (r *Runner) Run(paths []string) []analyze.Comparison {
	kept := make([]string, 0, len(paths))
	for _, path := range paths {
		if r.Config.IsIgnored(path) {
			r.logf("ignoring %s", path)
			continue
		}
		kept = append(kept, path)
	}

	out := make([]analyze.Comparison, len(kept))
	var wg sync.WaitGroup
	for i, path := range kept {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			mode := r.Config.EffectiveMode(path)
			res, err := analyze.New(mode).AnalyzeFile(path)
			out[i] = analyze.Comparison{Name: path, Result: res, Err: err}
		}(i, path)
	}
	wg.Wait()

	for _, c := range out {
		if c.Err != nil {
			r.logf("%s: %v", c.Name, c.Err)
		} else {
			r.logf("%s: flesch %.2f (%s)", c.Name, c.Result.Flesch, c.Result.Difficulty)
		}
	}

	return out
}

// RunSource analyzes in-memory text under the configured default
// language. The name is used for logging only.
func (r *Runner) RunSource(name, text string) (*analyze.Result, error) {
	r.logf("analyzing %s", name)
	return analyze.New(r.Config.Mode()).Analyze(text)
}

func (r *Runner) logf(format string, args ...any) {
	if r.Log != nil {
		r.Log.Printf(format, args...)
	}
}
