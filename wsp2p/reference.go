package wsp2p

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//--------------------------------------
// 基準式との比較 (reference curves / benchmark)
//--------------------------------------

// MurphyKoopWaterHpa computes the saturation vapor pressure over
// liquid and supercooled water [hPa] with the Murphy & Koop (2005)
// parameterization, the reference curve for the supercooled regime
// (T < 0.01 ℃).
func MurphyKoopWaterHpa(Tc float64) float64 {
	Tk := DegCToKelvin(Tc)
	lnP := 54.842763 - 6763.22/Tk - 4.21*math.Log(Tk) + 0.000367*Tk +
		math.Tanh(0.0415*(Tk-218.8))*
			(53.878-1331.22/Tk-9.44523*math.Log(Tk)+0.014025*Tk)
	return PaToHpa(math.Exp(lnP))
}

// Critical point of water (IAPWS-95).
const (
	tCriticalK  = 647.096   // K
	pCriticalPa = 22.064e06 // Pa
)

// IAPWSAuxWaterHpa computes the saturation vapor pressure of water
// [hPa] with the auxiliary saturation-pressure equation of the
// IAPWS-95 formulation (Wagner & Pruss 2002, eq. 2.5), the reference
// curve for the warm regime (0.01 to 100 ℃).
func IAPWSAuxWaterHpa(Tc float64) float64 {
	Tk := DegCToKelvin(Tc)
	th := 1.0 - Tk/tCriticalK
	s := -7.85951783*th +
		1.84408259*math.Pow(th, 1.5) -
		11.7866497*th*th*th +
		22.6807411*math.Pow(th, 3.5) -
		15.9618719*th*th*th*th +
		1.80122502*math.Pow(th, 7.5)
	return PaToHpa(pCriticalPa * math.Exp(tCriticalK/Tk*s))
}

// BenchmarkStats summarizes the percent relative error of the
// formulation against a reference curve over a temperature grid.
type BenchmarkStats struct {
	RMSEPct   float64 // root mean square of relative error [%]
	MaxAbsPct float64 // largest absolute relative error [%]
	N         int     // grid points
}

// Benchmark evaluates the formulation against a reference curve over
// [tMin, tMax] with the given step [℃]. The grid must contain at
// least two points.
func (f *Formulation) Benchmark(ref func(float64) float64, tMin float64, tMax float64, step float64) (BenchmarkStats, error) {
	if step <= 0.0 {
		return BenchmarkStats{}, fmt.Errorf("benchmark: step must be positive, got %v", step)
	}
	if tMin >= tMax {
		return BenchmarkStats{}, fmt.Errorf("benchmark: tMin (%v) must be less than tMax (%v)", tMin, tMax)
	}
	if step > tMax-tMin {
		return BenchmarkStats{}, fmt.Errorf("benchmark: step (%v) exceeds the grid range [%v,%v]", step, tMin, tMax)
	}

	n := int((tMax-tMin)/step) + 1
	grid := floats.Span(make([]float64, n), tMin, tMin+float64(n-1)*step)

	sq := make([]float64, n)
	abs := make([]float64, n)
	for i, T := range grid {
		relPct := (f.EsatWaterHpa(T) - ref(T)) / ref(T) * 100.0
		sq[i] = relPct * relPct
		abs[i] = math.Abs(relPct)
	}
	return BenchmarkStats{
		RMSEPct:   math.Sqrt(stat.Mean(sq, nil)),
		MaxAbsPct: floats.Max(abs),
		N:         n,
	}, nil
}
