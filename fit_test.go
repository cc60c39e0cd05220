package sortbench_test

import (
	"errors"
	"math"
	"testing"

	"github.com/lanrat/sortbench"
)

func aggregateStats(alg sortbench.Algorithm, f func(n float64) float64, lengths ...int) []sortbench.AggregateStat {
	stats := make([]sortbench.AggregateStat, len(lengths))
	for i, n := range lengths {
		stats[i] = sortbench.AggregateStat{
			Algorithm: alg,
			Length:    n,
			Mean:      f(float64(n)),
			Trials:    1,
		}
	}
	return stats
}

// TestFitNLogNExact checks that noiseless samples generated from
// a*n*log(n) + b recover a and b to within floating-point tolerance
func TestFitNLogNExact(t *testing.T) {
	a, b := 2.5, 7.0
	curve := func(n float64) float64 { return a*n*math.Log(n) + b }

	fit, err := sortbench.Fit(sortbench.Quick, aggregateStats(sortbench.Quick, curve, 2, 3, 4, 5, 8, 10, 20, 50))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fit.Model != sortbench.NLogN {
		t.Fatalf("model = %v, want NLogN", fit.Model)
	}
	if len(fit.Coefficients) != 2 {
		t.Fatalf("got %d coefficients, want 2", len(fit.Coefficients))
	}
	if math.Abs(fit.Coefficients[0]-a) > 1e-9 {
		t.Errorf("a = %v, want %v", fit.Coefficients[0], a)
	}
	if math.Abs(fit.Coefficients[1]-b) > 1e-9 {
		t.Errorf("b = %v, want %v", fit.Coefficients[1], b)
	}
}

// TestFitQuadraticExact checks that noiseless samples generated from
// a + b*n + c*n^2 recover all three coefficients
func TestFitQuadraticExact(t *testing.T) {
	a, b, c := 1.0, 2.0, 0.5
	curve := func(n float64) float64 { return a + b*n + c*n*n }

	fit, err := sortbench.Fit(sortbench.Bubble, aggregateStats(sortbench.Bubble, curve, 2, 4, 6, 8, 10, 20))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fit.Model != sortbench.Quadratic {
		t.Fatalf("model = %v, want Quadratic", fit.Model)
	}
	want := []float64{a, b, c}
	for i, coef := range fit.Coefficients {
		if math.Abs(coef-want[i]) > 1e-9 {
			t.Errorf("coefficient %d = %v, want %v", i, coef, want[i])
		}
	}
}

// TestFitPredict checks that Predict evaluates the fitted curve
func TestFitPredict(t *testing.T) {
	curve := func(n float64) float64 { return 3*n*math.Log(n) + 11 }
	fit, err := sortbench.Fit(sortbench.Merge, aggregateStats(sortbench.Merge, curve, 2, 4, 8, 16))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, n := range []float64{1, 10, 1000} {
		if got, want := fit.Predict(n), curve(n); math.Abs(got-want) > 1e-6*want+1e-9 {
			t.Errorf("Predict(%v) = %v, want %v", n, got, want)
		}
	}
}

// TestFitInsufficientSamples checks that too few distinct lengths is a
// FitError, not a bogus fit
func TestFitInsufficientSamples(t *testing.T) {
	var fitErr *sortbench.FitError

	curve := func(n float64) float64 { return n }
	_, err := sortbench.Fit(sortbench.Quick, aggregateStats(sortbench.Quick, curve, 10))
	if !errors.As(err, &fitErr) {
		t.Errorf("one length: expected FitError, got %v", err)
	}

	// repeated lengths are not distinct samples
	_, err = sortbench.Fit(sortbench.Bubble, aggregateStats(sortbench.Bubble, curve, 10, 10, 10, 10))
	if !errors.As(err, &fitErr) {
		t.Errorf("repeated lengths: expected FitError, got %v", err)
	}

	// no stats for the requested algorithm at all
	_, err = sortbench.Fit(sortbench.Merge, aggregateStats(sortbench.Quick, curve, 2, 4, 8))
	if !errors.As(err, &fitErr) {
		t.Errorf("wrong algorithm: expected FitError, got %v", err)
	}
}

// TestFitDomain checks that the n*log(n) model rejects lengths below one
func TestFitDomain(t *testing.T) {
	var fitErr *sortbench.FitError
	curve := func(n float64) float64 { return n }
	_, err := sortbench.Fit(sortbench.Merge, aggregateStats(sortbench.Merge, curve, 0, 2, 4))
	if !errors.As(err, &fitErr) {
		t.Errorf("expected FitError for length 0 under NLogN, got %v", err)
	}
}

// TestFitIgnoresOtherAlgorithms checks that the full AggregateAll output can
// be passed straight to Fit
func TestFitIgnoresOtherAlgorithms(t *testing.T) {
	curve := func(n float64) float64 { return 2*n*math.Log(n) + 1 }
	noise := func(n float64) float64 { return n * n * n }

	stats := aggregateStats(sortbench.Quick, curve, 2, 4, 8, 16)
	stats = append(stats, aggregateStats(sortbench.Bubble, noise, 2, 4, 8, 16)...)

	fit, err := sortbench.Fit(sortbench.Quick, stats)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(fit.Coefficients[0]-2) > 1e-9 || math.Abs(fit.Coefficients[1]-1) > 1e-9 {
		t.Errorf("coefficients = %v, want [2 1]", fit.Coefficients)
	}
}

// TestAlgorithmModel checks the fixed theoretical model assignment
func TestAlgorithmModel(t *testing.T) {
	if got := sortbench.Bubble.Model(); got != sortbench.Quadratic {
		t.Errorf("bubble model = %v, want Quadratic", got)
	}
	if got := sortbench.Quick.Model(); got != sortbench.NLogN {
		t.Errorf("quick model = %v, want NLogN", got)
	}
	if got := sortbench.Merge.Model(); got != sortbench.NLogN {
		t.Errorf("merge model = %v, want NLogN", got)
	}
}
