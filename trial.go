package sortbench

import (
	"context"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"
)

// TrialResult records the comparison count of one engine on one randomized
// trial. Results are immutable once produced. A non-nil Err marks a failed
// trial whose count must not enter aggregation.
type TrialResult struct {
	Algorithm   Algorithm
	Trial       int
	Length      int
	Comparisons uint64
	Err         error
}

// RandomSequence returns a fresh sequence of length independent uniform
// integers in [0, bound) drawn from rng.
func RandomSequence(rng *rand.Rand, length, bound int) ([]int, error) {
	if length < 0 {
		return nil, NewInvalidInputError("length", length, "must be non-negative")
	}
	if bound < 1 {
		return nil, NewInvalidInputError("bound", bound, "must be positive")
	}
	s := make([]int, length)
	for i := range s {
		s[i] = rng.Intn(bound)
	}
	return s, nil
}

// Runner generates randomized input sequences and runs every engine on an
// independent copy of each trial's sequence, so all three algorithms see
// identical input per trial.
type Runner struct {
	config Config
	rng    *rand.Rand
}

// NewRunner creates a Runner drawing trial inputs from rng. A nil rng is
// seeded from the clock; pass a seeded rand.Rand for reproducible runs.
// A nil config uses DefaultConfig.
func NewRunner(rng *rand.Rand, config *Config) *Runner {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Runner{config: *mergeConfig(config), rng: rng}
}

// trialInput carries one generated sequence to the worker pool.
type trialInput struct {
	trial int
	data  []int
}

// Run generates one fresh random sequence of the given length per trial and
// runs all engines on each, streaming one TrialResult per (algorithm, trial) on
// the returned result channel. Trials run on config.NumWorkers parallel
// workers; sequence generation stays sequential on the Runner's rng so a
// seeded run is reproducible. An engine failure is delivered as a
// TrialResult with Err set and does not stop the run; invalid parameters
// and context cancellation are delivered on the error channel.
// Length zero is valid: every engine reports zero comparisons.
func (r *Runner) Run(ctx context.Context, length, trials int) (<-chan TrialResult, <-chan error) {
	results := make(chan TrialResult, r.config.ResultChanBuffSize)
	errChan := make(chan error, 1)

	if length < 0 {
		errChan <- NewInvalidInputError("length", length, "must be non-negative")
		close(errChan)
		close(results)
		return results, errChan
	}
	if trials < 1 {
		errChan <- NewInvalidInputError("trials", trials, "must be positive")
		close(errChan)
		close(results)
		return results, errChan
	}

	go func() {
		defer close(results)
		defer close(errChan)

		group, groupCtx := errgroup.WithContext(ctx)
		inputs := make(chan trialInput)

		group.Go(func() error {
			defer close(inputs) // if this is not called on error, workers deadlock

			for t := 0; t < trials; t++ {
				seq, err := RandomSequence(r.rng, length, r.config.Bound)
				if err != nil {
					return err
				}
				select {
				case inputs <- trialInput{trial: t, data: seq}:
				case <-groupCtx.Done():
					return groupCtx.Err()
				}
			}
			return nil
		})

		for i := 0; i < r.config.NumWorkers; i++ {
			group.Go(func() error {
				for in := range inputs {
					for _, alg := range Algorithms {
						select {
						case results <- runTrial(alg, in):
						case <-groupCtx.Done():
							return groupCtx.Err()
						}
					}
				}
				return nil
			})
		}

		if err := group.Wait(); err != nil {
			errChan <- err
		}
	}()

	return results, errChan
}

// runTrial runs one engine over its own copy of the trial sequence,
// converting an engine panic into a failed TrialResult so a single bad
// trial cannot abort the benchmark.
func runTrial(alg Algorithm, in trialInput) (res TrialResult) {
	res = TrialResult{Algorithm: alg, Trial: in.trial, Length: len(in.data)}
	defer func() {
		if p := recover(); p != nil {
			res.Err = NewSortError(alg, in.trial, p)
		}
	}()
	data := append([]int(nil), in.data...)
	res.Comparisons = Sort(alg, data)
	return res
}

// RunAll drains Run into a slice. It returns the collected results, or the
// run's fatal error if there was one.
func (r *Runner) RunAll(ctx context.Context, length, trials int) ([]TrialResult, error) {
	resultChan, errChan := r.Run(ctx, length, trials)
	results := make([]TrialResult, 0, trials*len(Algorithms))
	for res := range resultChan {
		results = append(results, res)
	}
	if err := <-errChan; err != nil {
		return nil, err
	}
	return results, nil
}
