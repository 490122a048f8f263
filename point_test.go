package ocl

import "testing"

func TestPointArithmetic(t *testing.T) {
	p := Pt(1, 2, 3)
	q := Pt(4, -2, 1)

	if got, want := p.Add(q), Pt(5, 0, 4); got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
	if got, want := p.Sub(q), Pt(-3, 4, 2); got != want {
		t.Errorf("Sub = %v, want %v", got, want)
	}
	if got, want := p.Mul(2), Pt(2, 4, 6); got != want {
		t.Errorf("Mul = %v, want %v", got, want)
	}
	if got, want := p.Dot(q), 3.0; got != want {
		t.Errorf("Dot = %v, want %v", got, want)
	}
}

func TestPointCross(t *testing.T) {
	x := Pt(1, 0, 0)
	y := Pt(0, 1, 0)
	if got, want := x.Cross(y), Pt(0, 0, 1); got != want {
		t.Errorf("x cross y = %v, want %v", got, want)
	}
	if got, want := y.Cross(x), Pt(0, 0, -1); got != want {
		t.Errorf("y cross x = %v, want %v", got, want)
	}
}

func TestPointDistances(t *testing.T) {
	p := Pt(0, 0, 0)
	q := Pt(3, 4, 12)

	if got := p.Distance(q); got != 13 {
		t.Errorf("Distance = %v, want 13", got)
	}
	if got := p.XYDistance(q); got != 5 {
		t.Errorf("XYDistance = %v, want 5", got)
	}
	// XYDistance ignores z entirely.
	if got := Pt(0, 0, 100).XYDistance(Pt(3, 4, -100)); got != 5 {
		t.Errorf("XYDistance with z offsets = %v, want 5", got)
	}
	if got := q.LengthSq(); got != 169 {
		t.Errorf("LengthSq = %v, want 169", got)
	}
}

func TestPointMidLerp(t *testing.T) {
	p := Pt(0, 0, 0)
	q := Pt(2, 4, 6)

	if got, want := p.Mid(q), Pt(1, 2, 3); got != want {
		t.Errorf("Mid = %v, want %v", got, want)
	}
	if got := p.Lerp(q, 0); got != p {
		t.Errorf("Lerp(0) = %v, want %v", got, p)
	}
	if got := p.Lerp(q, 1); got != q {
		t.Errorf("Lerp(1) = %v, want %v", got, q)
	}
	if got, want := p.Lerp(q, 0.25), Pt(0.5, 1, 1.5); got != want {
		t.Errorf("Lerp(0.25) = %v, want %v", got, want)
	}
}

func TestPointApprox(t *testing.T) {
	p := Pt(1, 1, 1)
	if !p.Approx(Pt(1+1e-12, 1, 1-1e-12), 1e-9) {
		t.Error("Approx rejected a point within tolerance")
	}
	if p.Approx(Pt(1.1, 1, 1), 1e-9) {
		t.Error("Approx accepted a point outside tolerance")
	}
}

func TestPointString(t *testing.T) {
	if got := Pt(1, -2.5, 0).String(); got != "(1, -2.5, 0)" {
		t.Errorf("String = %q", got)
	}
}
