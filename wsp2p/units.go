package wsp2p

// 単位変換モジュール

// Pascals per hectopascal.
const HPA = 100.0

// DegCToKelvin converts ℃ to K.
func DegCToKelvin(Tc float64) float64 {
	return Tc + 273.15
}

// KelvinToDegC converts K to ℃.
func KelvinToDegC(Tk float64) float64 {
	return Tk - 273.15
}

// PaToHpa converts Pa to hPa.
func PaToHpa(p float64) float64 {
	return p / HPA
}

// HpaToPa converts hPa to Pa.
func HpaToPa(p float64) float64 {
	return p * HPA
}

// DegCToKelvinAll is the elementwise form of DegCToKelvin.
func DegCToKelvinAll(Tc []float64) []float64 {
	return mapAll(Tc, DegCToKelvin)
}

// KelvinToDegCAll is the elementwise form of KelvinToDegC.
func KelvinToDegCAll(Tk []float64) []float64 {
	return mapAll(Tk, KelvinToDegC)
}

// PaToHpaAll is the elementwise form of PaToHpa.
func PaToHpaAll(p []float64) []float64 {
	return mapAll(p, PaToHpa)
}

// HpaToPaAll is the elementwise form of HpaToPa.
func HpaToPaAll(p []float64) []float64 {
	return mapAll(p, HpaToPa)
}

func mapAll(xs []float64, fn func(float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i := 0; i < len(xs); i++ {
		out[i] = fn(xs[i])
	}
	return out
}
