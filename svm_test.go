package svm

import (
	"bytes"
	"math"
	"testing"

	"svm/types"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func params(alpha, beta, udc float64) types.RenderParameters {
	p := types.DefaultRenderParameters()
	p.Vector = types.VoltageVector{Alpha: alpha, Beta: beta}
	p.Udc = udc
	return p
}

// TestComputeZeroVector 零输入: 扇区1, 全部为零矢量时间
func TestComputeZeroVector(t *testing.T) {
	r := Compute(params(0, 0, 12))
	assert.Equal(t, types.Sector(1), r.Sector)
	assert.Zero(t, r.Decomposition.T1)
	assert.Zero(t, r.Decomposition.T2)
	assert.Equal(t, 1.0, r.Decomposition.T0)
	// 零矢量时间在 000/111 间平分, 每相均为 50%
	assert.Equal(t, types.PhaseDutyCycle{U: 50, V: 50, W: 50}, r.Duty)
	assert.Equal(t, "100", r.States[0].String())
	assert.Equal(t, "110", r.States[1].String())
}

// TestComputeAlongFirstBasis 沿 100 方向且幅值为 (2/3)·Udc
func TestComputeAlongFirstBasis(t *testing.T) {
	r := Compute(params(8, 0, 12))
	assert.Equal(t, types.Sector(1), r.Sector)
	assert.InDelta(t, 8.0, r.Decomposition.V1.X, 1e-12)
	assert.InDelta(t, 1.0, r.Decomposition.T1, 1e-9)
	assert.InDelta(t, 0.0, r.Decomposition.T2, 1e-9)
	assert.Equal(t, types.PhaseDutyCycle{U: 100, V: 0, W: 0}, r.Duty)
	assert.Equal(t, 0, r.Arc.Degrees)
	assert.InDelta(t, 8.0, r.Magnitude, 1e-12)
}

// TestComputeOverModulation 超出六边形不报错, T0 为负
func TestComputeOverModulation(t *testing.T) {
	for deg := 5.0; deg < 360; deg += 10 {
		rad := deg * math.Pi / 180
		r := Compute(params(9*math.Cos(rad), 9*math.Sin(rad), 12))
		assert.Less(t, r.Decomposition.T0, 0.0, "θ=%v", deg)
		assert.True(t, r.Decomposition.OverModulated())
	}

	r := Compute(params(10, 0, 12))
	assert.Greater(t, r.Duty.U, 100)

	p := params(10, 0, 12)
	p.OverModulation = types.Renormalize
	r = Compute(p)
	assert.InDelta(t, 1.0, r.Decomposition.T1, 1e-12)
	assert.Zero(t, r.Decomposition.T0)
	assert.Equal(t, types.PhaseDutyCycle{U: 100, V: 0, W: 0}, r.Duty)
}

func TestComputeInvalidInput(t *testing.T) {
	assert.NotPanics(t, func() {
		r := Compute(params(math.NaN(), 1, 12))
		assert.True(t, math.IsNaN(r.Decomposition.T0))
	})
	assert.NotPanics(t, func() {
		r := Compute(params(3, 1, 0))
		assert.True(t, r.Decomposition.Degenerate)
		assert.Equal(t, types.PhaseDutyCycle{U: 50, V: 50, W: 50}, r.Duty)
	})
}

func TestEvaluateLogs(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.WarnLevel)

	Evaluate(log, params(1, 1, 12))
	assert.Empty(t, buf.String())

	Evaluate(log, params(20, 0, 12))
	assert.Contains(t, buf.String(), "电压矢量超出六边形")

	buf.Reset()
	Evaluate(log, params(1, 1, 0))
	assert.Contains(t, buf.String(), "基矩阵接近奇异")
}

func TestBatch(t *testing.T) {
	list := []types.RenderParameters{params(0, 0, 12), params(-4, 0, 12), params(0, -4, 12)}
	results := Batch(zerolog.Nop(), list)
	require.Len(t, results, 3)
	assert.Equal(t, types.Sector(4), results[1].Sector)
	assert.Equal(t, types.Sector(5), results[2].Sector)
	for i, r := range results {
		assert.Equal(t, list[i], r.Params)
	}
}
