package bench

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/time/rate"

	"github.com/scottcagno/searchbench/pkg/corpus"
	"github.com/scottcagno/searchbench/pkg/search"
)

var ErrMismatch = errors.New("bench: result mismatch")

// Case is one text and pattern pair every searcher is timed on.
type Case struct {
	Name    string
	Text    string
	Pattern string
	Expect  int // index the pattern is expected at, or search.NotFound
}

// Cases returns the two cases of a document: a pattern that is expected to
// occur in it and one that is expected not to. Expected indexes come from a
// brute force scan, in bytes or code points depending on runes.
func Cases(label string, doc *corpus.Document, existing, missing string, runes bool) []Case {
	ref := search.NewBruteForce()
	expect := func(pattern string) int {
		if runes {
			return ref.FindIndexRunes([]rune(doc.Text), []rune(pattern))
		}
		return ref.FindIndexString(doc.Text, pattern)
	}
	return []Case{
		{Name: label + " (exists)", Text: doc.Text, Pattern: existing, Expect: expect(existing)},
		{Name: label + " (missing)", Text: doc.Text, Pattern: missing, Expect: expect(missing)},
	}
}

// Result is the outcome of timing one searcher on one case.
type Result struct {
	Searcher   string
	Case       string
	Index      int
	Iterations int
	Elapsed    time.Duration
	Err        error
}

// PerOp returns the mean time of a single search call.
func (r Result) PerOp() time.Duration {
	if r.Iterations == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Iterations)
}

// Measure calls fn n times and returns the total wall clock time.
func Measure(fn func(), n int) time.Duration {
	t1 := time.Now()
	for i := 0; i < n; i++ {
		fn()
	}
	return time.Since(t1)
}

type Runner struct {
	conf     *Config
	progress *rate.Limiter
}

func NewRunner(conf *Config) *Runner {
	conf = checkConfig(conf)
	return &Runner{
		conf:     conf,
		progress: rate.NewLimiter(rate.Every(conf.ProgressEvery), 1),
	}
}

// input holds a case converted once into the form the searchers take.
type input struct {
	text, pattern   string
	rtext, rpattern []rune
}

func (r *Runner) prepare(cases []Case) []input {
	in := make([]input, len(cases))
	for i, c := range cases {
		in[i].text, in[i].pattern = c.Text, c.Pattern
		if r.conf.Runes {
			in[i].rtext, in[i].rpattern = []rune(c.Text), []rune(c.Pattern)
		}
	}
	return in
}

func (r *Runner) finder(s search.Searcher, in input) func() int {
	if r.conf.Runes {
		return func() int { return s.FindIndexRunes(in.rtext, in.rpattern) }
	}
	return func() int { return s.FindIndexString(in.text, in.pattern) }
}

// Run times every searcher on every case. Each pair is first checked once
// against the case's expected index; a wrong answer is kept in Result.Err
// and does not stop the run. A cancelled ctx stops the run between pairs
// and the results gathered so far are returned with the context error.
func (r *Runner) Run(ctx context.Context, searchers []search.Searcher, cases []Case) ([]Result, error) {
	log := r.conf.Logger
	n := r.conf.Iterations
	in := r.prepare(cases)
	total := len(searchers) * len(cases)
	results := make([]Result, 0, total)
	for _, s := range searchers {
		for i, c := range cases {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			find := r.finder(s, in[i])
			res := Result{
				Searcher:   s.String(),
				Case:       c.Name,
				Index:      find(),
				Iterations: n,
			}
			if res.Index != c.Expect {
				res.Err = fmt.Errorf("%w: %s on %q: got %d, want %d", ErrMismatch, res.Searcher, c.Name, res.Index, c.Expect)
				log.Error(res.Err.Error())
			}
			var idx int
			res.Elapsed = Measure(func() { idx = find() }, n)
			runtime.KeepAlive(idx)
			results = append(results, res)
			log.Debugf("%s %q: index=%d elapsed=%s", res.Searcher, c.Name, res.Index, res.Elapsed)
			if r.progress.Allow() {
				log.Infof("progress: %d/%d timed", len(results), total)
			}
		}
	}
	return results, nil
}
