package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"rsquared/internal/data"
)

// Tolerance is the absolute threshold under which the decomposition identity
// is considered to hold.
// NOTE : calibrated for the magnitude of the demonstration dataset,
// not a general purpose comparison policy.
const Tolerance = 1e-10

// Regressor is a model that can be fitted on a series of observations
// and evaluated at arbitrary inputs.
type Regressor interface {
	Fit(x, y []float64) error
	Predict(x []float64) []float64
}

// Stats groups the sum of squares components of a fitted model.
type Stats struct {
	SSR float64 // variance of the predictions around the observed mean
	SSE float64 // residual variance between observations and predictions
	SST float64 // variance of the observations around their mean
}

// Sum returns SSE + SSR, the left hand side of the decomposition identity.
func (s Stats) Sum() float64 {
	return s.SSE + s.SSR
}

// Gap returns the absolute difference between SST and SSE + SSR.
func (s Stats) Gap() float64 {
	return math.Abs(s.SST - s.Sum())
}

// Decomposes checks the identity SST = SSE + SSR within the given tolerance.
func (s Stats) Decomposes(tol float64) bool {
	return s.Gap() < tol
}

// Evaluator owns one fitted regressor
// and derives the sum of squares components from it.
type Evaluator struct {
	model Regressor
}

// New fits the given regressor on the samples and returns the evaluator.
// Fitting errors of the underlying model are propagated as is.
func New(reg Regressor, samples data.Samples) (*Evaluator, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("empty samples")
	}
	x, y := samples.XY()
	if err := reg.Fit(x, y); err != nil {
		return nil, fmt.Errorf("could not fit model: %w", err)
	}
	return &Evaluator{model: reg}, nil
}

// Predict evaluates the fitted model at the given x values,
// returning one prediction per input in the same order.
func (e *Evaluator) Predict(x []float64) []float64 {
	return e.model.Predict(x)
}

// Evaluate computes the sum of squares components over the given samples.
// SSR, SSE and SST are each computed from first principles rather than
// derived from one another, so that a real discrepancy in the
// decomposition can show up.
func (e *Evaluator) Evaluate(samples data.Samples) Stats {
	x, y := samples.XY()
	yHat := e.model.Predict(x)
	yBar := stat.Mean(y, nil)

	return Stats{
		SSR: sumSquares(yHat, func(i int) float64 { return yHat[i] - yBar }),
		SSE: sumSquares(y, func(i int) float64 { return y[i] - yHat[i] }),
		SST: sumSquares(y, func(i int) float64 { return y[i] - yBar }),
	}
}

func sumSquares(vv []float64, diff func(i int) float64) float64 {
	var sum float64
	for i := range vv {
		d := diff(i)
		sum += d * d
	}
	return sum
}
