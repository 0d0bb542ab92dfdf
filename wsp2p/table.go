package wsp2p

import (
	"bytes"
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/floats"
)

// SatTable holds the saturation curve tabulated over a uniform
// temperature grid.
type SatTable struct {
	T     []float64 // 温度 [℃]
	Es    []float64 // 飽和水蒸気圧 [hPa]
	EsPa  []float64 // 飽和水蒸気圧 [Pa]
	DlnEs []float64 // d(ln Es)/dT [1/℃]
}

// BuildSatTable evaluates the formulation over [tMin, tMax] with the
// given step [℃].
func (f *Formulation) BuildSatTable(tMin float64, tMax float64, step float64) (*SatTable, error) {
	if step <= 0.0 {
		return nil, fmt.Errorf("table: step must be positive, got %v", step)
	}
	if tMin >= tMax {
		return nil, fmt.Errorf("table: tMin (%v) must be less than tMax (%v)", tMin, tMax)
	}
	if step > tMax-tMin {
		return nil, fmt.Errorf("table: step (%v) exceeds the grid range [%v,%v]", step, tMin, tMax)
	}

	n := int((tMax-tMin)/step) + 1
	grid := floats.Span(make([]float64, n), tMin, tMin+float64(n-1)*step)

	es := f.EsatWaterHpaAll(grid)
	return &SatTable{
		T:     grid,
		Es:    es,
		EsPa:  HpaToPaAll(es),
		DlnEs: f.DlnEsatDTAll(grid),
	}, nil
}

// CSV形式
func (tbl *SatTable) ToCSV(buf *bytes.Buffer) {
	buf.WriteString("T_c")
	buf.WriteString(",Es_hPa")
	buf.WriteString(",Es_Pa")
	buf.WriteString(",dlnEs_dT")
	buf.WriteString("\n")

	writeFloat := func(v float64) {
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	for i := 0; i < len(tbl.T); i++ {
		buf.WriteString(strconv.FormatFloat(tbl.T[i], 'f', -1, 64))
		writeFloat(tbl.Es[i])
		writeFloat(tbl.EsPa[i])
		writeFloat(tbl.DlnEs[i])
		buf.WriteString("\n")
	}
}
