package math

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Polynomial is a least squares polynomial model
// y = c[0] + c[1]x + c[2]x^2 + c[3]x^3 + ...
// with the coefficients of the corresponding powers of x resolved during Fit.
// Degree 1 is the ordinary least squares baseline,
// for which the sum of squares decomposition identity holds.
type Polynomial struct {
	degree int
	coeff  []float64
}

// NewPolynomial creates a polynomial model of the given degree.
func NewPolynomial(degree int) *Polynomial {
	if degree < 1 {
		degree = 1
	}
	return &Polynomial{degree: degree}
}

// Fit fits the given series of x and y by solving the Vandermonde system
// with a QR decomposition.
func (p *Polynomial) Fit(x, y []float64) error {
	if len(x) == 0 {
		return fmt.Errorf("empty series")
	}
	if len(x) != len(y) {
		return fmt.Errorf("series length mismatch: %d vs %d", len(x), len(y))
	}
	if len(x) < p.degree+1 {
		return fmt.Errorf("not enough samples for degree %d: %d", p.degree, len(x))
	}

	a := vandermonde(x, p.degree)
	b := mat.NewDense(len(y), 1, y)
	c := mat.NewDense(p.degree+1, 1, nil)

	qr := new(mat.QR)
	qr.Factorize(a)

	if err := qr.SolveTo(c, false, b); err != nil {
		return fmt.Errorf("could not solve for coefficients: %w", err)
	}

	v := c.ColView(0)
	p.coeff = make([]float64, v.Len())
	for i := 0; i < v.Len(); i++ {
		p.coeff[i] = v.AtVec(i)
	}
	return nil
}

// Predict evaluates the fitted polynomial at the given x values,
// returning one value per input in the same order.
func (p *Polynomial) Predict(x []float64) []float64 {
	yy := make([]float64, len(x))
	for i, v := range x {
		f := 0.0
		for j := len(p.coeff) - 1; j >= 0; j-- {
			f = f*v + p.coeff[j]
		}
		yy[i] = f
	}
	return yy
}

// Coeff returns the fitted coefficients, lowest power first.
func (p *Polynomial) Coeff() []float64 {
	return p.coeff
}

func vandermonde(a []float64, degree int) *mat.Dense {
	x := mat.NewDense(len(a), degree+1, nil)
	for i := range a {
		for j, p := 0, 1.; j <= degree; j, p = j+1, p*a[i] {
			x.Set(i, j, p)
		}
	}
	return x
}
