package wsp2p

import "math"

//--------------------------------------
// 相対湿度、露点温度および比湿の計算
//--------------------------------------

// Ratio of the molar mass of water vapor to that of dry air.
const EPS = 0.621945

// RHPercent computes relative humidity [%] from temperature T [℃] and
// vapor pressure e [hPa], clipped to [0, 100]. A vanishing saturation
// pressure (possible only at extreme T) yields 0 rather than a
// division blow-up.
func (f *Formulation) RHPercent(T float64, e float64) float64 {
	es := f.EsatWaterHpa(T)
	if es <= 0.0 {
		return 0.0
	}
	return math.Min(math.Max(e/es*100.0, 0.0), 100.0)
}

// DewpointCFromTRH computes the dew point [℃] from ambient
// temperature T [℃] and relative humidity rh [%]. rh is clipped to
// [0, 100] before use; rh = 0 maps the vapor pressure to 0 hPa, for
// which the inverse returns NaN.
func (f *Formulation) DewpointCFromTRH(T float64, rh float64) float64 {
	rh = clipRH(rh)
	e := f.EsatWaterHpa(T) * (rh / 100.0)
	return f.TFromEWater(e)
}

// SpecificHumidityKgPerKg computes specific humidity [kg/kg of moist
// air] from temperature T [℃], relative humidity rh [%] and total
// pressure p [hPa].
//
//	q = EPS*e / (p - (1-EPS)*e)
//
// rh is clipped to [0, 100] and p floored at 1 hPa. A non-positive
// denominator (p <= (1-EPS)*e) yields 0, and the result is clipped to
// be non-negative.
func (f *Formulation) SpecificHumidityKgPerKg(T float64, rh float64, p float64) float64 {
	rh = clipRH(rh)
	p = math.Max(p, 1.0)
	e := f.EsatWaterHpa(T) * (rh / 100.0)
	denom := p - (1.0-EPS)*e
	if denom <= 0.0 {
		return 0.0
	}
	return math.Max(EPS*e/denom, 0.0)
}

// RHPercentAll is the elementwise form of RHPercent.
func (f *Formulation) RHPercentAll(T []float64, e []float64) []float64 {
	rh := make([]float64, len(T))
	for i := 0; i < len(T); i++ {
		rh[i] = f.RHPercent(T[i], e[i])
	}
	return rh
}

// DewpointCFromTRHAll is the elementwise form of DewpointCFromTRH.
func (f *Formulation) DewpointCFromTRHAll(T []float64, rh []float64) []float64 {
	dt := make([]float64, len(T))
	for i := 0; i < len(T); i++ {
		dt[i] = f.DewpointCFromTRH(T[i], rh[i])
	}
	return dt
}

// SpecificHumidityKgPerKgAll is the elementwise form of SpecificHumidityKgPerKg.
func (f *Formulation) SpecificHumidityKgPerKgAll(T []float64, rh []float64, p []float64) []float64 {
	q := make([]float64, len(T))
	for i := 0; i < len(T); i++ {
		q[i] = f.SpecificHumidityKgPerKg(T[i], rh[i], p[i])
	}
	return q
}

func clipRH(rh float64) float64 {
	return math.Min(math.Max(rh, 0.0), 100.0)
}
