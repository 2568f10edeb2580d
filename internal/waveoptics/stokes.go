package waveoptics

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

// StokesVector is the real-valued polarization state: total intensity S0,
// H/V preference S1, ±45° preference S2 and circular preference S3. Unlike a
// Jones vector it can represent partially polarized and unpolarized light.
type StokesVector struct {
	S0, S1, S2, S3 Real
}

// StokesFromJones converts a fully polarized Jones state (DOP = 1):
// S0=|Ex|²+|Ey|², S1=|Ex|²−|Ey|², S2=2·Re(Ex·Ey*), S3=2·Im(Ex·Ey*).
func StokesFromJones(v JonesVector) StokesVector {
	ax := cmplx.Abs(v.Ex)
	ay := cmplx.Abs(v.Ey)
	cross := v.Ex * cmplx.Conj(v.Ey)
	return StokesVector{
		S0: ax*ax + ay*ay,
		S1: ax*ax - ay*ay,
		S2: 2 * real(cross),
		S3: 2 * imag(cross),
	}
}

// Unpolarized builds a fully depolarized state of the given intensity.
func Unpolarized(intensity Real) StokesVector {
	return StokesVector{S0: intensity}
}

// polarizedPower is sqrt(S1²+S2²+S3²).
func (s StokesVector) polarizedPower() Real {
	return floats.Norm([]float64{s.S1, s.S2, s.S3}, 2)
}

// DegreeOfPolarization is polarized power over total power, in [0,1] for any
// physical state.
func (s StokesVector) DegreeOfPolarization() Real {
	if s.S0 < epsMagnitude {
		return 0
	}
	return s.polarizedPower() / s.S0
}

// OrientationAngle is the polarization ellipse azimuth atan2(S2,S1)/2.
func (s StokesVector) OrientationAngle() Real {
	return 0.5 * math.Atan2(s.S2, s.S1)
}

// EllipticityAngle is the ellipse χ: 0 linear, ±π/4 circular.
func (s StokesVector) EllipticityAngle() Real {
	p := s.polarizedPower()
	if p < epsMagnitude {
		return 0
	}
	r := s.S3 / p
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return 0.5 * math.Asin(r)
}

// Add is incoherent superposition: Stokes parameters are additive.
func (s StokesVector) Add(o StokesVector) StokesVector {
	return StokesVector{s.S0 + o.S0, s.S1 + o.S1, s.S2 + o.S2, s.S3 + o.S3}
}

func (s StokesVector) Scale(f Real) StokesVector {
	return StokesVector{s.S0 * f, s.S1 * f, s.S2 * f, s.S3 * f}
}

// IsPhysical checks realizability: S0 ≥ sqrt(S1²+S2²+S3²), with a small
// tolerance for accumulated rounding.
func (s StokesVector) IsPhysical() bool {
	if s.S0 < 0 {
		return false
	}
	pp := s.polarizedPower()
	return pp*pp <= s.S0*s.S0*(1+physTolerance)
}

// Poincare returns the normalized sphere coordinates (S1,S2,S3)/S0.
func (s StokesVector) Poincare() (s1, s2, s3 Real) {
	if s.S0 < epsMagnitude {
		return 0, 0, 0
	}
	return s.S1 / s.S0, s.S2 / s.S0, s.S3 / s.S0
}

// PolarizedPart strips the unpolarized component, leaving a DOP-1 state with
// intensity DOP·S0.
func (s StokesVector) PolarizedPart() StokesVector {
	return StokesVector{S0: s.polarizedPower(), S1: s.S1, S2: s.S2, S3: s.S3}
}

// PolarizedJones reconstructs the Jones vector of the polarized component
// from the ellipse parameters, up to an unobservable global phase.
func (s StokesVector) PolarizedJones() JonesVector {
	p := s.PolarizedPart()
	if p.S0 < epsMagnitude {
		return JonesVector{}
	}
	amp := math.Sqrt(p.S0)
	psi := p.OrientationAngle()
	chi := p.EllipticityAngle()
	cPsi, sPsi := math.Cos(psi), math.Sin(psi)
	cChi, sChi := math.Cos(chi), math.Sin(chi)
	// Signs chosen so StokesFromJones (S3 = 2·Im(Ex·Ey*)) round-trips.
	return JonesVector{
		Ex: complex(amp*cPsi*cChi, amp*sPsi*sChi),
		Ey: complex(amp*sPsi*cChi, -amp*cPsi*sChi),
	}
}
