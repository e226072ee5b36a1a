package maths

import (
	"math"
	"math/rand"
	"testing"

	"svm/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestCramer2 与 gonum 通用求解结果对比
func TestCramer2(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 200; n++ {
		angle := rng.Float64() * TwoPi
		v1 := types.Vector{X: math.Cos(angle) * 8, Y: math.Sin(angle) * 8}
		v2 := types.Vector{X: math.Cos(angle+math.Pi/3) * 8, Y: math.Sin(angle+math.Pi/3) * 8}
		b := types.Vector{X: rng.NormFloat64() * 5, Y: rng.NormFloat64() * 5}

		t1, t2, det, ok := Cramer2(v1, v2, b, 1e-6)
		require.True(t, ok)
		assert.InDelta(t, v1.X*v2.Y-v1.Y*v2.X, det, 1e-9)

		var x mat.VecDense
		require.NoError(t, x.SolveVec(Basis2(v1, v2), mat.NewVecDense(2, []float64{b.X, b.Y})))
		assert.InDelta(t, x.AtVec(0), t1, 1e-9)
		assert.InDelta(t, x.AtVec(1), t2, 1e-9)
	}
}

func TestCramer2Singular(t *testing.T) {
	t1, t2, det, ok := Cramer2(types.Vector{X: 1}, types.Vector{X: 2}, types.Vector{X: 1, Y: 1}, 1e-6)
	assert.False(t, ok)
	assert.Zero(t, t1)
	assert.Zero(t, t2)
	assert.Less(t, math.Abs(det), 1e-6)
}

func TestNormalizeAngle(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeAngle(0))
	assert.InDelta(t, 1.5*math.Pi, NormalizeAngle(-math.Pi/2), 1e-12)
	assert.InDelta(t, math.Pi, NormalizeAngle(math.Pi), 1e-12)
	assert.InDelta(t, 90.0, Degrees(math.Pi/2), 1e-12)
	assert.InDelta(t, math.Pi, Radians(180), 1e-12)
}

func TestRoundHalfUp(t *testing.T) {
	cases := map[float64]int{
		0.5:   1,
		-0.5:  0,
		2.4:   2,
		-2.6:  -3,
		112.5: 113,
		50:    50,
	}
	for in, want := range cases {
		assert.Equal(t, want, RoundHalfUp(in), "RoundHalfUp(%v)", in)
	}
}

func TestRoundHalfUpSaturates(t *testing.T) {
	assert.Equal(t, math.MaxInt, RoundHalfUp(6.2e298))
	assert.Equal(t, math.MaxInt, RoundHalfUp(math.Inf(1)))
	assert.Equal(t, math.MinInt, RoundHalfUp(-6.2e298))
	assert.Equal(t, math.MinInt, RoundHalfUp(math.Inf(-1)))
	assert.Equal(t, 0, RoundHalfUp(math.NaN()))
	assert.Equal(t, 1<<40, RoundHalfUp(float64(1<<40)+0.2))
}
