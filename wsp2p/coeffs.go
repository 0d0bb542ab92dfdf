// Two-pole saturated vapor pressure formulation for water.
package wsp2p

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"

	"github.com/hhkbp2/go-logging"
)

// 係数ファイル (パッケージに埋め込み)
//
//go:embed coeffs.json
var coeffsJSON []byte

// Temperature domain of the fit [℃]
type Domain struct {
	Min float64
	Max float64
}

// Fitted constants of the two-pole formulation:
//
//	ln(Es) = E0 + a*T/(b+T) + c*T/(d+T)
//
// Es in hPa, T in ℃. Immutable after load.
type Coefficients struct {
	E0      float64
	A       float64
	B       float64
	C       float64
	D       float64
	DomainC Domain
}

type coeffsFile struct {
	E0 *float64 `json:"E0"`
	A  *float64 `json:"a"`
	B  *float64 `json:"b"`
	C  *float64 `json:"c"`
	D  *float64 `json:"d"`

	DomainC *struct {
		Min *float64 `json:"min"`
		Max *float64 `json:"max"`
	} `json:"domain_c"`
}

// ParseCoefficients decodes and validates a coefficient record.
//
// Args:
//
//	data: JSON document with keys E0, a, b, c, d and domain_c {min, max}
//
// Returns:
//
//	validated Coefficients, or a configuration error if a key is
//	missing, non-numeric, or the record violates an invariant
func ParseCoefficients(data []byte) (Coefficients, error) {
	var raw coeffsFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return Coefficients{}, fmt.Errorf("coeffs: malformed JSON: %w", err)
	}

	scalars := map[string]*float64{
		"E0": raw.E0, "a": raw.A, "b": raw.B, "c": raw.C, "d": raw.D,
	}
	for key, p := range scalars {
		if p == nil {
			return Coefficients{}, fmt.Errorf("coeffs: missing required key %q", key)
		}
	}
	if raw.DomainC == nil || raw.DomainC.Min == nil || raw.DomainC.Max == nil {
		return Coefficients{}, fmt.Errorf("coeffs: domain_c must declare min and max")
	}

	c := Coefficients{
		E0: *raw.E0,
		A:  *raw.A,
		B:  *raw.B,
		C:  *raw.C,
		D:  *raw.D,
		DomainC: Domain{
			Min: *raw.DomainC.Min,
			Max: *raw.DomainC.Max,
		},
	}
	if err := c.Validate(); err != nil {
		return Coefficients{}, err
	}
	return c, nil
}

// LoadCoefficients returns the coefficient set shipped with the package.
func LoadCoefficients() (Coefficients, error) {
	c, err := ParseCoefficients(coeffsJSON)
	if err != nil {
		return Coefficients{}, err
	}
	logger := logging.GetLogger("wsp2p")
	logger.Debugf("coefficients loaded: E0=%v a=%v b=%v c=%v d=%v domain=[%v,%v]",
		c.E0, c.A, c.B, c.C, c.D, c.DomainC.Min, c.DomainC.Max)
	return c, nil
}

// Validate checks the load-time invariants of the coefficient set.
// The poles of the formulation at T = -b and T = -d must lie strictly
// outside the validated temperature domain.
func (c Coefficients) Validate() error {
	for key, v := range map[string]float64{
		"E0": c.E0, "a": c.A, "b": c.B, "c": c.C, "d": c.D,
		"domain_c.min": c.DomainC.Min, "domain_c.max": c.DomainC.Max,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("coeffs: %s must be finite, got %v", key, v)
		}
	}
	if c.DomainC.Min >= c.DomainC.Max {
		return fmt.Errorf("coeffs: domain_c.min (%v) must be less than domain_c.max (%v)",
			c.DomainC.Min, c.DomainC.Max)
	}
	for key, pole := range map[string]float64{"b": -c.B, "d": -c.D} {
		if c.DomainC.Min <= pole && pole <= c.DomainC.Max {
			return fmt.Errorf("coeffs: pole T=-%s (%v ℃) lies inside domain_c [%v,%v]",
				key, pole, c.DomainC.Min, c.DomainC.Max)
		}
	}
	return nil
}

// ClipTemperature clamps a temperature [℃] to the validated domain.
func (c Coefficients) ClipTemperature(T float64) float64 {
	return math.Min(math.Max(T, c.DomainC.Min), c.DomainC.Max)
}

// Formulation is a stateless evaluator over one validated coefficient
// set. It is safe to share across goroutines: the coefficients are
// never mutated after construction.
type Formulation struct {
	coef Coefficients
}

// NewFormulation validates the coefficient set and builds an evaluator.
func NewFormulation(c Coefficients) (*Formulation, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Formulation{coef: c}, nil
}

// Default returns an evaluator over the embedded coefficient file.
// Panics only if the embedded file itself is corrupt.
func Default() *Formulation {
	c, err := LoadCoefficients()
	if err != nil {
		panic(err)
	}
	return &Formulation{coef: c}
}

// Coefficients returns a copy of the evaluator's coefficient set.
func (f *Formulation) Coefficients() Coefficients {
	return f.coef
}
