package wsp2p

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 基準表との比較
// Notes:
//
//	期待値はIAPWS-95およびMurphy-Koop基準表から取得しました。
func Test_EsatWaterHpa_ReferenceTable(t *testing.T) {
	f := Default()

	cases := []struct {
		T  float64
		Es float64
	}{
		{-40.0, 0.18976374741735924},
		{-20.0, 1.2550003635784304},
		{-5.0, 4.217682579377076},
		{0.0, 6.112103132923173},
		{15.0, 17.05794023929115},
		{30.0, 42.469730025405646},
		{60.0, 199.46414287870633},
		{100.0, 1013.7393292898188},
	}
	for _, c := range cases {
		assert.InEpsilon(t, c.Es, f.EsatWaterHpa(c.T), 5e-4, "T=%v", c.T)
	}
}

// 沸点 (1気圧) 付近の確認
func Test_EsatWaterHpa_BoilingPoint(t *testing.T) {
	f := Default()
	assert.InEpsilon(t, 1013.25, f.EsatWaterHpa(100.0), 1e-3)
}

func Test_EsatWaterHpa_StrictlyIncreasing(t *testing.T) {
	f := Default()

	prev := f.EsatWaterHpa(-40.0)
	for T := -39.95; T <= 100.0; T += 0.05 {
		cur := f.EsatWaterHpa(T)
		if cur <= prev {
			t.Fatalf("Es(T) must be strictly increasing, violated near T=%v", T)
		}
		prev = cur
	}
}

// 氷点近傍で不連続がないこと
func Test_EsatWaterHpa_ContinuityNearFreezing(t *testing.T) {
	f := Default()

	for _, pivot := range []float64{-1e-4, 0.0, 0.01} {
		lo := f.EsatWaterHpa(pivot - 1e-6)
		mid := f.EsatWaterHpa(pivot)
		hi := f.EsatWaterHpa(pivot + 1e-6)
		span := math.Max(math.Max(lo, mid), hi) - math.Min(math.Min(lo, mid), hi)
		assert.Less(t, span, 1e-6, "continuity near T=%v", pivot)
	}
}

// 解析微分と中心差分の一致
func Test_DlnEsatDT_MatchesFiniteDifference(t *testing.T) {
	f := Default()

	const h = 1e-4
	for T := -35.0; T <= 95.0; T += 5.0 {
		numeric := (math.Log(f.EsatWaterHpa(T+h)) - math.Log(f.EsatWaterHpa(T-h))) / (2.0 * h)
		assert.InDelta(t, numeric, f.DlnEsatDT(T), 1e-8, "T=%v", T)
	}
}

// 順方向と逆方向の往復誤差
func Test_TFromEWater_RoundTrip(t *testing.T) {
	f := Default()

	for T := -40.0; T <= 100.0; T += 0.05 {
		back := f.TFromEWater(f.EsatWaterHpa(T))
		assert.InDelta(t, T, back, 1e-6, "T=%v", T)
	}
}

func Test_TFromEWater_KnownPressures(t *testing.T) {
	f := Default()

	cases := []struct {
		e float64
		T float64
	}{
		{0.5, -30.199977745169534},
		{6.112103132923173, 0.0},
		{50.0, 32.87425471625106},
	}
	for _, c := range cases {
		assert.InDelta(t, c.T, f.TFromEWater(c.e), 2e-6, "e=%v", c.e)
	}
}

func Test_TFromEWater_InvalidInputs(t *testing.T) {
	f := Default()

	for _, e := range []float64{0.0, -1.0, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.True(t, math.IsNaN(f.TFromEWater(e)), "e=%v", e)
	}
}

// 校正範囲外の圧力は近い側の定義域端に丸める
func Test_TFromEWater_ClampsToDomain(t *testing.T) {
	f := Default()

	// 定義域端の往復
	assert.InDelta(t, -40.0, f.TFromEWater(f.EsatWaterHpa(-40.0)), 1e-6)
	assert.InDelta(t, 100.0, f.TFromEWater(f.EsatWaterHpa(100.0)), 1e-6)

	// 実根はあるが範囲外
	assert.Equal(t, 100.0, f.TFromEWater(2000.0))
	assert.Equal(t, -40.0, f.TFromEWater(1e-9))

	// 判別式が負となるほど極端な入力
	assert.Equal(t, 100.0, f.TFromEWater(1e9))
}

func Test_EsatWaterHpaAll(t *testing.T) {
	f := Default()

	T := []float64{-40.0, 0.0, 100.0}
	es := f.EsatWaterHpaAll(T)
	assert.Len(t, es, 3)
	for i := range T {
		assert.Equal(t, f.EsatWaterHpa(T[i]), es[i])
	}

	back := f.TFromEWaterAll(es)
	for i := range T {
		assert.InDelta(t, T[i], back[i], 1e-6)
	}

	dln := f.DlnEsatDTAll(T)
	assert.Len(t, dln, 3)
	assert.Equal(t, f.DlnEsatDT(0.0), dln[1])
}
