package waveoptics

import (
	"fmt"
	"math"
	"math/cmplx"
)

type Real = float64

// Complex is the scalar amplitude type of the Jones algebra.
type Complex = complex128

// FromPolar builds r·e^{iφ}.
func FromPolar(r, phase Real) Complex {
	return cmplx.Rect(r, phase)
}

// Div is checked complex division: a zero-magnitude divisor is an error,
// not a silent NaN.
func Div(a, b Complex) (Complex, error) {
	if cmplx.Abs(b) < epsMagnitude {
		return 0, fmt.Errorf("complex division by zero-magnitude value: %w", ErrNumericInstability)
	}
	return a / b, nil
}

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func isFiniteC(c Complex) bool {
	return isFinite(real(c)) && isFinite(imag(c))
}
