package sortbench

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Model identifies the growth curve a set of aggregated means is fit to.
type Model uint8

const (
	// Quadratic is a + b*n + c*n^2, the theoretical form for bubble sort.
	Quadratic Model = iota
	// NLogN is a*n*log(n) + b, the theoretical form for quick and merge
	// sort. The logarithm is natural; the base only rescales a.
	NLogN
)

func (m Model) String() string {
	switch m {
	case Quadratic:
		return "a + b*n + c*n^2"
	case NLogN:
		return "a*n*log(n) + b"
	}
	return fmt.Sprintf("model(%d)", uint8(m))
}

// NumCoefficients returns the number of coefficients the model fits.
func (m Model) NumCoefficients() int {
	if m == Quadratic {
		return 3
	}
	return 2
}

// basis returns the value of each fitted term at input length n, ordered as
// the coefficients appear in the model's String form. Both models are
// linear in their coefficients, so least squares over these terms recovers
// them exactly.
func (m Model) basis(n float64) []float64 {
	switch m {
	case Quadratic:
		return []float64{1, n, n * n}
	case NLogN:
		return []float64{n * math.Log(n), 1}
	}
	panic(fmt.Sprintf("sortbench: unknown model %d", uint8(m)))
}

// Model returns the fixed theoretical growth model for the algorithm. The
// assignment is a design input based on known complexity, never inferred
// from measured data.
func (a Algorithm) Model() Model {
	if a == Bubble {
		return Quadratic
	}
	return NLogN
}

// FitModel holds the best-fit coefficients of one algorithm's growth model.
// Coefficients are ordered as in the model's String form.
type FitModel struct {
	Algorithm    Algorithm
	Model        Model
	Coefficients []float64
}

// Predict evaluates the fitted model at input length n.
func (f FitModel) Predict(n float64) float64 {
	var y float64
	for i, term := range f.Model.basis(n) {
		y += f.Coefficients[i] * term
	}
	return y
}

// Fit regresses the aggregated mean comparison counts for alg onto its
// theoretical growth model by least squares. Entries in stats belonging to
// other algorithms are ignored, so the full output of AggregateAll can be
// passed directly. It returns a FitError when the system is degenerate:
// fewer distinct lengths than coefficients, lengths outside the model
// domain, or a singular or ill-conditioned regression matrix.
func Fit(alg Algorithm, stats []AggregateStat) (FitModel, error) {
	model := alg.Model()

	lengths := make([]float64, 0, len(stats))
	means := make([]float64, 0, len(stats))
	distinct := make(map[int]bool)
	for _, st := range stats {
		if st.Algorithm != alg {
			continue
		}
		if model == NLogN && st.Length < 1 {
			return FitModel{}, NewFitError(alg, model,
				fmt.Sprintf("length %d is outside the model domain", st.Length), nil)
		}
		lengths = append(lengths, float64(st.Length))
		means = append(means, st.Mean)
		distinct[st.Length] = true
	}
	if len(distinct) < model.NumCoefficients() {
		return FitModel{}, NewFitError(alg, model,
			fmt.Sprintf("need at least %d distinct lengths, have %d", model.NumCoefficients(), len(distinct)), nil)
	}

	coefs, err := leastSquares(model, lengths, means)
	if err != nil {
		return FitModel{}, NewFitError(alg, model, "regression did not converge", err)
	}
	return FitModel{Algorithm: alg, Model: model, Coefficients: coefs}, nil
}

// leastSquares solves min ||A·x - y|| over the model's basis terms via QR
// factorization and returns the coefficient vector x.
func leastSquares(model Model, lengths, means []float64) ([]float64, error) {
	rows, cols := len(lengths), model.NumCoefficients()
	a := mat.NewDense(rows, cols, nil)
	for i, n := range lengths {
		a.SetRow(i, model.basis(n))
	}
	y := mat.NewVecDense(rows, means)

	var qr mat.QR
	qr.Factorize(a)

	var x mat.VecDense
	if err := qr.SolveVecTo(&x, false, y); err != nil {
		return nil, err
	}

	coefs := make([]float64, cols)
	for i := range coefs {
		coefs[i] = x.AtVec(i)
	}
	return coefs, nil
}
