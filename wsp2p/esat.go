package wsp2p

import "math"

//--------------------------------------
// 飽和水蒸気圧の計算 (forward / derivative / inverse)
//--------------------------------------

// EsatWaterHpa computes the saturated vapor pressure over liquid or
// supercooled water [hPa] from temperature T [℃].
//
//	ln(Es) = E0 + a*T/(b+T) + c*T/(d+T)
//
// The fit is characterized inside the coefficient domain (-40 to 100
// ℃ for the embedded set). Both poles T=-b and T=-d sit below
// absolute zero; evaluation exactly at a pole follows IEEE-754
// division semantics rather than returning an error.
func (f *Formulation) EsatWaterHpa(T float64) float64 {
	lnEs := f.coef.E0 + f.coef.A*T/(f.coef.B+T) + f.coef.C*T/(f.coef.D+T)
	return math.Max(math.Exp(lnEs), 0.0)
}

// DlnEsatDT computes the analytic derivative d(ln Es)/dT [1/℃].
//
//	d(ln Es)/dT = a*b/(b+T)^2 + c*d/(d+T)^2
func (f *Formulation) DlnEsatDT(T float64) float64 {
	termA := f.coef.A * f.coef.B / ((f.coef.B + T) * (f.coef.B + T))
	termC := f.coef.C * f.coef.D / ((f.coef.D + T) * (f.coef.D + T))
	return termA + termC
}

// TFromEWater recovers temperature [℃] from a saturation vapor
// pressure e [hPa] by solving the formulation in closed form.
//
// Clearing the two denominators of ln(Es) = E0 + a*T/(b+T) + c*T/(d+T)
// with y = ln(e) - E0 yields the quadratic
//
//	(y-(a+c))*T^2 + (y*(b+d)-(a*d+c*b))*T + y*b*d = 0
//
// evaluated with the numerically stable root q = -(B + sign(B)*sqrt(disc))/2,
// T = C/q, which selects the physical root (the second root is an
// artifact of clearing the denominators). The result is clamped to the
// coefficient domain. A pressure so far outside the calibrated range
// that the quadratic has no real root clamps to the nearest domain
// boundary. Non-finite or non-positive e returns NaN.
func (f *Formulation) TFromEWater(e float64) float64 {
	if math.IsNaN(e) || math.IsInf(e, 0) || e <= 0.0 {
		return math.NaN()
	}

	a := f.coef.A
	b := f.coef.B
	c := f.coef.C
	d := f.coef.D
	y := math.Log(e) - f.coef.E0

	A := y - (a + c)
	B := y*(b+d) - (a*d + c*b)
	C := y * b * d

	disc := B*B - 4.0*A*C
	if disc < 0.0 {
		// No real root: the pressure is far outside calibration.
		// Clamp to the nearest boundary of the domain.
		if e >= f.EsatWaterHpa(f.coef.DomainC.Max) {
			return f.coef.DomainC.Max
		}
		return f.coef.DomainC.Min
	}

	signB := 1.0
	if B < 0.0 {
		signB = -1.0
	}
	q := -0.5 * (B + signB*math.Sqrt(disc))

	return f.coef.ClipTemperature(C / q)
}

// EsatWaterHpaAll is the elementwise form of EsatWaterHpa.
func (f *Formulation) EsatWaterHpaAll(T []float64) []float64 {
	es := make([]float64, len(T))
	for i := 0; i < len(T); i++ {
		es[i] = f.EsatWaterHpa(T[i])
	}
	return es
}

// DlnEsatDTAll is the elementwise form of DlnEsatDT.
func (f *Formulation) DlnEsatDTAll(T []float64) []float64 {
	dln := make([]float64, len(T))
	for i := 0; i < len(T); i++ {
		dln[i] = f.DlnEsatDT(T[i])
	}
	return dln
}

// TFromEWaterAll is the elementwise form of TFromEWater.
func (f *Formulation) TFromEWaterAll(e []float64) []float64 {
	T := make([]float64, len(e))
	for i := 0; i < len(e); i++ {
		T[i] = f.TFromEWater(e[i])
	}
	return T
}
