// Package batch fetches many FotMob documents concurrently with bounded
// parallelism and optional pacing.
package batch

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/s0up4200/fotmob/fotmob"
)

const (
	DefaultConcurrency = 4
	MaxConcurrency     = 20
)

// FetchFunc retrieves one document; fotmob.Client methods satisfy it
type FetchFunc func(ctx context.Context, id string) (fotmob.Value, error)

// Runner fans a list of ids out over a FetchFunc
type Runner struct {
	concurrency int
	limiter     *rate.Limiter
	logger      zerolog.Logger
}

// Option configures a Runner
type Option func(*Runner)

// WithConcurrency caps in-flight requests, clamped to [1, MaxConcurrency]
func WithConcurrency(n int) Option {
	return func(r *Runner) {
		r.concurrency = min(max(n, 1), MaxConcurrency)
	}
}

// WithRate paces request starts to perSecond; zero or less disables pacing
func WithRate(perSecond float64) Option {
	return func(r *Runner) {
		if perSecond > 0 {
			r.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		} else {
			r.limiter = nil
		}
	}
}

// WithLogger sets the runner logger
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a runner with DefaultConcurrency and no pacing
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		concurrency: DefaultConcurrency,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Item is the successful result for one id
type Item struct {
	ID    string
	Value fotmob.Value
}

// Failure contains information about a failed fetch
type Failure struct {
	ID  string
	Err error
}

// Error implements the error interface
func (f Failure) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", f.ID, f.Err)
}

// Unwrap returns the fetch error
func (f Failure) Unwrap() error {
	return f.Err
}

// Result contains the results of a batch run, both in input order
type Result struct {
	Requested  int
	Successful []Item
	Failed     []Failure
}

// OK reports whether every id was fetched
func (r Result) OK() bool {
	return len(r.Failed) == 0 && len(r.Successful) == r.Requested
}

// Run fetches every id. A failing id never cancels its siblings; a cancelled
// context stops scheduling and the unscheduled ids are reported as failures.
func (r *Runner) Run(ctx context.Context, ids []string, fetch FetchFunc) Result {
	result := Result{Requested: len(ids)}
	if len(ids) == 0 {
		return result
	}

	values := make([]fotmob.Value, len(ids))
	errs := make([]error, len(ids))

	var g errgroup.Group
	g.SetLimit(r.concurrency)

	var mu sync.Mutex
	completed := 0

	for i, id := range ids {
		if r.limiter != nil {
			if err := r.limiter.Wait(ctx); err != nil {
				for j := i; j < len(ids); j++ {
					errs[j] = err
				}
				break
			}
		} else if err := ctx.Err(); err != nil {
			for j := i; j < len(ids); j++ {
				errs[j] = err
			}
			break
		}

		g.Go(func() error {
			value, err := fetch(ctx, id)
			values[i] = value
			errs[i] = err

			mu.Lock()
			completed++
			done := completed
			mu.Unlock()

			event := r.logger.Debug()
			if err != nil {
				event = r.logger.Warn().Err(err)
			}
			event.
				Str("id", id).
				Int("completed", done).
				Int("total", len(ids)).
				Msg("Fetched document")

			return nil // Don't stop on individual errors
		})
	}

	_ = g.Wait()

	for i, id := range ids {
		if errs[i] != nil {
			result.Failed = append(result.Failed, Failure{ID: id, Err: errs[i]})
			continue
		}
		result.Successful = append(result.Successful, Item{ID: id, Value: values[i]})
	}

	return result
}
