package svr

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Kernel identifies the kernel function used by the machine.
type Kernel string

const (
	RBF    Kernel = "rbf"
	Linear Kernel = "linear"
)

// Config carries the hyperparameters of the machine.
// Zero fields fall back to the usual libsvm defaults.
type Config struct {
	C       float64 // regularisation bound, defaults to 1
	Epsilon float64 // half-width of the insensitive tube, defaults to 0.1
	Gamma   float64 // rbf coefficient, defaults to 1/var(x)
	Kernel  Kernel  // defaults to RBF
	Tol     float64 // convergence threshold on the dual step size, defaults to 1e-6
	MaxIter int     // maximum number of full sweeps, defaults to 1000
}

// SVR is an epsilon support vector regression machine on a single predictor.
// The dual problem is solved with deterministic pairwise sweeps,
// so repeated fits on the same series produce identical models.
type SVR struct {
	cfg    Config
	gamma  float64
	x      []float64
	beta   []float64
	b      float64
	fitted bool
}

// New creates a machine with the given configuration,
// applying the defaults for any zero fields.
func New(cfg Config) *SVR {
	if cfg.C <= 0 {
		cfg.C = 1
	}
	if cfg.Epsilon <= 0 {
		cfg.Epsilon = 0.1
	}
	if cfg.Kernel == "" {
		cfg.Kernel = RBF
	}
	if cfg.Tol <= 0 {
		cfg.Tol = 1e-6
	}
	if cfg.MaxIter <= 0 {
		cfg.MaxIter = 1000
	}
	return &SVR{cfg: cfg}
}

// Fit trains the machine on the given series.
// The dual coefficients beta[i] = alpha[i] - alpha*[i] are optimised in pairs,
// which keeps their sum at zero throughout.
func (s *SVR) Fit(x, y []float64) error {
	if len(x) == 0 {
		return fmt.Errorf("empty series")
	}
	if len(x) != len(y) {
		return fmt.Errorf("series length mismatch: %d vs %d", len(x), len(y))
	}

	s.gamma = s.cfg.Gamma
	if s.cfg.Kernel == RBF && s.gamma <= 0 {
		v := stat.Variance(x, nil)
		if v == 0 || math.IsNaN(v) {
			return fmt.Errorf("zero variance in x: cannot infer gamma")
		}
		s.gamma = 1 / v
	}

	n := len(x)
	k := make([][]float64, n)
	for i := range k {
		k[i] = make([]float64, n)
		for j := range k[i] {
			k[i][j] = s.kernel(x[i], x[j])
		}
	}

	c := s.cfg.C
	eps := s.cfg.Epsilon

	beta := make([]float64, n)
	// f[i] tracks the decision value at x[i] without the bias term
	f := make([]float64, n)

	for iter := 0; iter < s.cfg.MaxIter; iter++ {
		var maxStep float64
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				eta := k[i][i] + k[j][j] - 2*k[i][j]
				if eta < 1e-12 {
					continue
				}
				g := (f[i] - y[i]) - (f[j] - y[j])
				lo := math.Max(-c-beta[i], beta[j]-c)
				hi := math.Min(c-beta[i], beta[j]+c)
				d := bestStep(g, eta, eps, beta[i], beta[j], lo, hi)
				if d == 0 {
					continue
				}
				beta[i] += d
				beta[j] -= d
				for m := 0; m < n; m++ {
					f[m] += d * (k[i][m] - k[j][m])
				}
				if a := math.Abs(d); a > maxStep {
					maxStep = a
				}
			}
		}
		if maxStep < s.cfg.Tol {
			break
		}
	}

	s.x = append([]float64(nil), x...)
	s.beta = beta
	s.b = bias(beta, f, y, c, eps)
	s.fitted = true
	return nil
}

// Predict evaluates the fitted machine at the given x values,
// returning one value per input in the same order.
func (s *SVR) Predict(x []float64) []float64 {
	yy := make([]float64, len(x))
	if !s.fitted {
		return yy
	}
	for i, v := range x {
		f := s.b
		for j, b := range s.beta {
			if b == 0 {
				continue
			}
			f += b * s.kernel(v, s.x[j])
		}
		yy[i] = f
	}
	return yy
}

func (s *SVR) kernel(a, b float64) float64 {
	switch s.cfg.Kernel {
	case Linear:
		return a * b
	default:
		d := a - b
		return math.Exp(-s.gamma * d * d)
	}
}

// bestStep finds the step d minimising the change of the dual objective
// when beta[i] moves by d and beta[j] by -d, keeping their sum constant.
// The objective along that direction is piecewise quadratic with breakpoints
// where either coefficient crosses zero, so the minimiser is a stationary
// point of one of the sign regions, a breakpoint, or a box bound.
func bestStep(g, eta, eps, bi, bj, lo, hi float64) float64 {
	if lo >= hi {
		return 0
	}
	obj := func(d float64) float64 {
		return g*d + 0.5*eta*d*d +
			eps*(math.Abs(bi+d)-math.Abs(bi)+math.Abs(bj-d)-math.Abs(bj))
	}
	candidates := []float64{lo, hi, -bi, bj}
	for _, si := range []float64{-1, 1} {
		for _, sj := range []float64{-1, 1} {
			candidates = append(candidates, -(g+eps*(si-sj))/eta)
		}
	}
	best := 0.0
	bestVal := 0.0
	for _, d := range candidates {
		if d < lo || d > hi {
			continue
		}
		if v := obj(d); v < bestVal-1e-12 {
			best = d
			bestVal = v
		}
	}
	return best
}

// bias recovers the intercept from the KKT conditions.
// Free support vectors pin it exactly, otherwise it sits in the middle of
// the interval allowed by the bound vectors.
func bias(beta, f, y []float64, c, eps float64) float64 {
	const margin = 1e-8

	var sum float64
	var cnt int
	for i := range beta {
		a := math.Abs(beta[i])
		if a > margin && a < c-margin {
			if beta[i] > 0 {
				sum += y[i] - f[i] - eps
			} else {
				sum += y[i] - f[i] + eps
			}
			cnt++
		}
	}
	if cnt > 0 {
		return sum / float64(cnt)
	}

	up := math.Inf(1)
	low := math.Inf(-1)
	for i := range beta {
		if beta[i] < c-margin {
			if v := y[i] - f[i] - eps; v > low {
				low = v
			}
		}
		if beta[i] > -c+margin {
			if v := y[i] - f[i] + eps; v < up {
				up = v
			}
		}
	}
	if math.IsInf(up, 1) || math.IsInf(low, -1) {
		return 0
	}
	return (low + up) / 2
}
