package waveoptics

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// MuellerMatrix is the 4×4 real operator acting on Stokes vectors. It covers
// every element the Jones algebra covers plus depolarizing ones.
type MuellerMatrix struct {
	m *mat.Dense
}

func muellerFromRows(rows [4][4]Real) MuellerMatrix {
	data := make([]float64, 0, 16)
	for i := 0; i < 4; i++ {
		data = append(data, rows[i][:]...)
	}
	return MuellerMatrix{m: mat.NewDense(4, 4, data)}
}

func (m MuellerMatrix) At(i, j int) Real { return m.m.At(i, j) }

// Apply computes S' = M·S.
func (m MuellerMatrix) Apply(s StokesVector) StokesVector {
	in := mat.NewVecDense(4, []float64{s.S0, s.S1, s.S2, s.S3})
	var out mat.VecDense
	out.MulVec(m.m, in)
	return StokesVector{out.AtVec(0), out.AtVec(1), out.AtVec(2), out.AtVec(3)}
}

// Mul composes two operators (m applied after o).
func (m MuellerMatrix) Mul(o MuellerMatrix) MuellerMatrix {
	var out mat.Dense
	out.Mul(m.m, o.m)
	return MuellerMatrix{m: &out}
}

func MuellerIdentity() MuellerMatrix {
	return muellerFromRows([4][4]Real{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

// MuellerLinearPolarizer transmits the axis at theta (radians) and blocks the
// orthogonal component; unpolarized input comes out at half intensity.
func MuellerLinearPolarizer(theta Real) MuellerMatrix {
	c2 := math.Cos(2 * theta)
	s2 := math.Sin(2 * theta)
	h := 0.5
	return muellerFromRows([4][4]Real{
		{h, h * c2, h * s2, 0},
		{h * c2, h * c2 * c2, h * s2 * c2, 0},
		{h * s2, h * s2 * c2, h * s2 * s2, 0},
		{0, 0, 0, 0},
	})
}

// MuellerRetarder is the general retarder with retardation delta and fast
// axis at theta. Sign convention matches the Jones Waveplate factory, so
// FromJonesMatrix(Waveplate(δ,θ)) reproduces it.
func MuellerRetarder(delta, theta Real) MuellerMatrix {
	cd := math.Cos(delta)
	sd := math.Sin(delta)
	c2 := math.Cos(2 * theta)
	s2 := math.Sin(2 * theta)
	return muellerFromRows([4][4]Real{
		{1, 0, 0, 0},
		{0, c2*c2 + s2*s2*cd, c2 * s2 * (1 - cd), s2 * sd},
		{0, c2 * s2 * (1 - cd), s2*s2 + c2*c2*cd, -c2 * sd},
		{0, -s2 * sd, c2 * sd, cd},
	})
}

func MuellerQuarterWave(fastAxis Real) MuellerMatrix {
	return MuellerRetarder(math.Pi/2, fastAxis)
}

func MuellerHalfWave(fastAxis Real) MuellerMatrix {
	return MuellerRetarder(math.Pi, fastAxis)
}

// MuellerRotator rotates the polarization plane by theta (ψ → ψ+θ).
func MuellerRotator(theta Real) MuellerMatrix {
	c2 := math.Cos(2 * theta)
	s2 := math.Sin(2 * theta)
	return muellerFromRows([4][4]Real{
		{1, 0, 0, 0},
		{0, c2, -s2, 0},
		{0, s2, c2, 0},
		{0, 0, 0, 1},
	})
}

// MuellerAttenuator scales total intensity by the given transmittance without
// touching the polarization state.
func MuellerAttenuator(transmittance Real) MuellerMatrix {
	if transmittance < 0 {
		transmittance = 0
	}
	t := transmittance
	return muellerFromRows([4][4]Real{
		{t, 0, 0, 0},
		{0, t, 0, 0},
		{0, 0, t, 0},
		{0, 0, 0, t},
	})
}

// MuellerPartialPolarizer is a diattenuator: the axis at theta transmits
// fully, the orthogonal axis transmits 1−d.
func MuellerPartialPolarizer(d, theta Real) MuellerMatrix {
	if d < 0 {
		d = 0
	} else if d > 1 {
		d = 1
	}
	tPerp := 1 - d
	c2 := math.Cos(2 * theta)
	s2 := math.Sin(2 * theta)
	m00 := (1 + tPerp) / 2
	m01 := (1 - tPerp) / 2 * c2
	m02 := (1 - tPerp) / 2 * s2
	return muellerFromRows([4][4]Real{
		{m00, m01, m02, 0},
		{m01, m00*c2*c2 + tPerp*s2*s2, (m00 - tPerp) * s2 * c2, 0},
		{m02, (m00 - tPerp) * s2 * c2, m00*s2*s2 + tPerp*c2*c2, 0},
		{0, 0, 0, math.Sqrt(tPerp)},
	})
}

// MuellerDepolarizer reduces the degree of polarization by the given factor:
// 0 leaves the state alone, 1 fully depolarizes. No Jones equivalent exists.
func MuellerDepolarizer(depolarization Real) MuellerMatrix {
	if depolarization < 0 {
		depolarization = 0
	} else if depolarization > 1 {
		depolarization = 1
	}
	r := 1 - depolarization
	return muellerFromRows([4][4]Real{
		{1, 0, 0, 0},
		{0, r, 0, 0},
		{0, 0, r, 0},
		{0, 0, 0, r},
	})
}

// mulC4 is a plain 4×4 complex product; the Kronecker lift below is the only
// complex matrix work in the package, so it stays fixed-size.
func mulC4(a, b [4][4]Complex) [4][4]Complex {
	var out [4][4]Complex
	for i := 0; i < 4; i++ {
		for k := 0; k < 4; k++ {
			var sum Complex
			for n := 0; n < 4; n++ {
				sum += a[i][n] * b[n][k]
			}
			out[i][k] = sum
		}
	}
	return out
}

// FromJonesMatrix lifts a Jones operator to Mueller form via the Kronecker
// identity M = A (J ⊗ J*) A⁻¹, with A fixed by the S3 = 2·Im(Ex·Ey*)
// convention used throughout this package.
func FromJonesMatrix(j JonesMatrix) MuellerMatrix {
	a := [4][4]Complex{
		{1, 0, 0, 1},
		{1, 0, 0, -1},
		{0, 1, 1, 0},
		{0, complex(0, -1), complex(0, 1), 0},
	}
	// A·A† = 2I, so A⁻¹ = A†/2.
	var aInv [4][4]Complex
	for i := 0; i < 4; i++ {
		for k := 0; k < 4; k++ {
			aInv[i][k] = 0.5 * cmplx.Conj(a[k][i])
		}
	}

	je := [2][2]Complex{{j.A, j.B}, {j.C, j.D}}
	var kron [4][4]Complex
	for r1 := 0; r1 < 2; r1++ {
		for c1 := 0; c1 < 2; c1++ {
			for r2 := 0; r2 < 2; r2++ {
				for c2 := 0; c2 < 2; c2++ {
					kron[2*r1+r2][2*c1+c2] = je[r1][c1] * cmplx.Conj(je[r2][c2])
				}
			}
		}
	}

	full := mulC4(mulC4(a, kron), aInv)
	var rows [4][4]Real
	for i := 0; i < 4; i++ {
		for k := 0; k < 4; k++ {
			rows[i][k] = real(full[i][k])
		}
	}
	return muellerFromRows(rows)
}
