package sortbench

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"golang.org/x/perf/benchmath"
)

// StatKey identifies one (algorithm, length) cell of a Report.
type StatKey struct {
	Algorithm Algorithm
	Length    int
}

// Report is the terminal output of a benchmark sweep: per-length aggregate
// statistics, distribution-free summaries of the raw counts, and the fitted
// growth model per algorithm. It is the data handed to an external
// plotting or reporting collaborator.
type Report struct {
	Lengths []int
	Trials  int

	// Stats holds one entry per (algorithm, length), ordered by algorithm
	// then length.
	Stats []AggregateStat

	// Summaries holds a summary (center and confidence interval under the
	// configured assumption) of the raw comparison counts behind each
	// entry in Stats.
	Summaries map[StatKey]benchmath.Summary

	// Fits holds the recovered growth-model coefficients per algorithm.
	// Algorithms whose regression failed appear in FitErrors instead.
	Fits      map[Algorithm]FitModel
	FitErrors map[Algorithm]error
}

// Benchmark sweeps the given input lengths, running the requested number of
// randomized trials per length with all engines on identical per-trial input
// copies, and
// reduces the counts to a Report. A fit failure for one algorithm is
// recorded in Report.FitErrors without blocking the others; only invalid
// parameters, aggregation over fully-failed groups, or context cancellation
// fail the sweep itself.
func (r *Runner) Benchmark(ctx context.Context, lengths []int, trials int) (*Report, error) {
	if len(lengths) == 0 {
		return nil, NewInvalidInputError("lengths", lengths, "need at least one input length")
	}

	report := &Report{
		Lengths:   append([]int(nil), lengths...),
		Trials:    trials,
		Summaries: make(map[StatKey]benchmath.Summary),
		Fits:      make(map[Algorithm]FitModel),
		FitErrors: make(map[Algorithm]error),
	}

	allStats := make([]AggregateStat, 0, len(lengths)*len(Algorithms))
	for _, length := range lengths {
		results, err := r.RunAll(ctx, length, trials)
		if err != nil {
			return nil, err
		}

		counts := make(map[Algorithm][]float64)
		for _, res := range results {
			if res.Err == nil {
				counts[res.Algorithm] = append(counts[res.Algorithm], float64(res.Comparisons))
			}
		}

		stats, err := AggregateAll(results)
		if err != nil {
			return nil, err
		}
		for _, st := range stats {
			sample := benchmath.NewSample(counts[st.Algorithm], &benchmath.DefaultThresholds)
			report.Summaries[StatKey{st.Algorithm, st.Length}] = r.config.Assumption.Summary(sample, r.config.Confidence)
		}
		allStats = append(allStats, stats...)
	}

	sort.Slice(allStats, func(i, j int) bool {
		if allStats[i].Algorithm != allStats[j].Algorithm {
			return allStats[i].Algorithm < allStats[j].Algorithm
		}
		return allStats[i].Length < allStats[j].Length
	})
	report.Stats = allStats

	for _, alg := range Algorithms {
		fit, err := Fit(alg, allStats)
		if err != nil {
			report.FitErrors[alg] = err
			continue
		}
		report.Fits[alg] = fit
	}

	return report, nil
}

// String formats the report as a plain-text table of per-length statistics
// followed by the fitted model per algorithm.
func (r *Report) String() string {
	var b strings.Builder

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "algorithm\tn\tmean\tstddev\tcenter\tinterval\ttrials\tskipped")
	for _, st := range r.Stats {
		sum := r.Summaries[StatKey{st.Algorithm, st.Length}]
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%.3f\t%.2f\t[%.2f, %.2f]\t%d\t%d\n",
			st.Algorithm, st.Length, st.Mean, st.StdDev, sum.Center, sum.Lo, sum.Hi, st.Trials, st.Skipped)
	}
	w.Flush()

	for _, alg := range Algorithms {
		if fit, ok := r.Fits[alg]; ok {
			parts := make([]string, len(fit.Coefficients))
			for i, c := range fit.Coefficients {
				parts[i] = fmt.Sprintf("%.6g", c)
			}
			fmt.Fprintf(&b, "%s fit %s: [%s]\n", alg, fit.Model, strings.Join(parts, ", "))
		} else if err, ok := r.FitErrors[alg]; ok {
			fmt.Fprintf(&b, "%s fit failed: %v\n", alg, err)
		}
	}

	return b.String()
}
