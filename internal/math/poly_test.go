package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolynomial_Fit(t *testing.T) {

	type test struct {
		degree int
		x      []float64
		y      []float64
		coeff  []float64
	}

	tests := map[string]test{
		"fixture-line": {
			degree: 1,
			x:      []float64{-1, -1, 0, 0, 1, 1},
			y:      []float64{-1, 1, 1, 3, -1, -3},
			coeff:  []float64{0, -1},
		},
		"exact-line": {
			degree: 1,
			x:      []float64{0, 1, 2},
			y:      []float64{1, 3, 5},
			coeff:  []float64{1, 2},
		},
		"quadratic": {
			degree: 2,
			x:      []float64{-2, -1, 0, 1, 2},
			y:      []float64{4, 1, 0, 1, 4},
			coeff:  []float64{0, 0, 1},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := NewPolynomial(tt.degree)
			err := p.Fit(tt.x, tt.y)
			assert.NoError(t, err)
			coeff := p.Coeff()
			assert.Equal(t, len(tt.coeff), len(coeff))
			for i := range tt.coeff {
				assert.InDelta(t, tt.coeff[i], coeff[i], 1e-9)
			}
		})
	}

}

func TestPolynomial_Fit_Error(t *testing.T) {

	type test struct {
		degree int
		x      []float64
		y      []float64
	}

	tests := map[string]test{
		"empty": {
			degree: 1,
			x:      []float64{},
			y:      []float64{},
		},
		"mismatch": {
			degree: 1,
			x:      []float64{1, 2, 3},
			y:      []float64{1, 2},
		},
		"under-determined": {
			degree: 3,
			x:      []float64{1, 2},
			y:      []float64{1, 2},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := NewPolynomial(tt.degree).Fit(tt.x, tt.y)
			assert.Error(t, err)
		})
	}

}

func TestPolynomial_Predict(t *testing.T) {

	p := NewPolynomial(1)
	err := p.Fit([]float64{0, 1, 2}, []float64{1, 3, 5})
	assert.NoError(t, err)

	xx := []float64{-1, 0, 0.5, 3}
	yy := p.Predict(xx)

	assert.Equal(t, len(xx), len(yy))
	expected := []float64{-1, 1, 2, 7}
	for i := range expected {
		assert.InDelta(t, expected[i], yy[i], 1e-9)
	}

}
