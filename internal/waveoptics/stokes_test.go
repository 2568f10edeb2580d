package waveoptics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestStokesFromJonesFullyPolarized(t *testing.T) {
	for _, angleDeg := range []Real{0, 30, 45, 90, 120} {
		s := StokesFromJones(NewLinearJones(angleDeg*math.Pi/180, 1))
		if math.Abs(s.DegreeOfPolarization()-1) > 1e-12 {
			t.Fatalf("%.0f°: Jones light must have DOP 1, got %.6f", angleDeg, s.DegreeOfPolarization())
		}
		if !s.IsPhysical() {
			t.Fatalf("%.0f°: unphysical Stokes vector %+v", angleDeg, s)
		}
	}

	h := StokesFromJones(NewLinearJones(0, 1))
	if !floats.EqualApprox([]float64{h.S0, h.S1, h.S2, h.S3}, []float64{1, 1, 0, 0}, 1e-12) {
		t.Fatalf("horizontal: %+v", h)
	}
	d := StokesFromJones(NewLinearJones(math.Pi/4, 1))
	if !floats.EqualApprox([]float64{d.S0, d.S1, d.S2, d.S3}, []float64{1, 0, 1, 0}, 1e-12) {
		t.Fatalf("diagonal: %+v", d)
	}
}

func TestIncoherentAdditionDepolarizes(t *testing.T) {
	h := StokesFromJones(NewLinearJones(0, 1))
	v := StokesFromJones(NewLinearJones(math.Pi/2, 1))
	sum := h.Add(v)
	if math.Abs(sum.S0-2) > 1e-12 {
		t.Fatalf("intensities must add, got %.6f", sum.S0)
	}
	if sum.DegreeOfPolarization() > 1e-12 {
		t.Fatalf("equal H+V should be unpolarized, DOP %.6f", sum.DegreeOfPolarization())
	}
	if !sum.IsPhysical() {
		t.Fatalf("unphysical sum %+v", sum)
	}
}

func TestUnpolarized(t *testing.T) {
	u := Unpolarized(2)
	if u.DegreeOfPolarization() != 0 {
		t.Fatalf("DOP of unpolarized light: %.6f", u.DegreeOfPolarization())
	}
	s1, s2, s3 := u.Poincare()
	if s1 != 0 || s2 != 0 || s3 != 0 {
		t.Fatalf("Poincare of unpolarized light: %v %v %v", s1, s2, s3)
	}
}

func TestIsPhysicalRejectsOverpolarized(t *testing.T) {
	bad := StokesVector{S0: 1, S1: 1, S2: 0.5, S3: 0}
	if bad.IsPhysical() {
		t.Fatalf("%+v should be unphysical", bad)
	}
	if (StokesVector{S0: -1}).IsPhysical() {
		t.Fatal("negative intensity should be unphysical")
	}
}

func TestEllipticityAndOrientation(t *testing.T) {
	circ := StokesFromJones(QuarterWavePlate(0).Apply(NewLinearJones(math.Pi/4, 1)))
	if math.Abs(math.Abs(circ.EllipticityAngle())-math.Pi/4) > 1e-9 {
		t.Fatalf("circular light ellipticity: %.6f", circ.EllipticityAngle())
	}

	lin := StokesFromJones(NewLinearJones(math.Pi/3, 1))
	if math.Abs(lin.OrientationAngle()-math.Pi/3) > 1e-12 {
		t.Fatalf("orientation: got %.6f want %.6f", lin.OrientationAngle(), math.Pi/3)
	}
	if math.Abs(lin.EllipticityAngle()) > 1e-12 {
		t.Fatalf("linear light ellipticity: %.6f", lin.EllipticityAngle())
	}
}

func TestPolarizedJonesRoundTrip(t *testing.T) {
	inputs := []JonesVector{
		NewLinearJones(0, 1),
		NewLinearJones(math.Pi/4, 0.7),
		QuarterWavePlate(0).Apply(NewLinearJones(math.Pi/4, 1)),
		Waveplate(math.Pi/3, math.Pi/5).Apply(NewLinearJones(math.Pi/7, 0.9)),
	}
	for i, in := range inputs {
		s := StokesFromJones(in)
		back := StokesFromJones(s.PolarizedJones())
		got := []float64{back.S0, back.S1, back.S2, back.S3}
		want := []float64{s.S0, s.S1, s.S2, s.S3}
		if !floats.EqualApprox(got, want, 1e-9) {
			t.Fatalf("case %d: round trip %v != %v", i, got, want)
		}
	}
}

func TestPolarizedPartSplitsPower(t *testing.T) {
	// half polarized light: polarized part carries DOP·S0
	mixed := StokesFromJones(NewLinearJones(0, 1)).Add(Unpolarized(1))
	p := mixed.PolarizedPart()
	if math.Abs(p.S0-1) > 1e-12 {
		t.Fatalf("polarized part power: %.6f", p.S0)
	}
	if math.Abs(p.DegreeOfPolarization()-1) > 1e-12 {
		t.Fatalf("polarized part must have DOP 1, got %.6f", p.DegreeOfPolarization())
	}
}
