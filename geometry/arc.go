package geometry

import (
	"math"

	"svm/maths"
	"svm/types"
)

// Arc 扇区起始基本矢量到电压矢量的夹角
type Arc struct {
	Start    float64 `json:"start"`    // 起始角(弧度)
	End      float64 `json:"end"`      // 终止角(弧度)
	Sweep    float64 `json:"sweep"`    // 逆时针夹角 [0, 2π)
	Mid      float64 `json:"mid"`      // 标注位置角
	Degrees  int     `json:"degrees"`  // 取整后的角度
	LargeArc bool    `json:"largeArc"` // 夹角大于 π
}

// SectorAngle 计算 v1 到 vector 的逆时针夹角
func SectorAngle(v1 types.Vector, vector types.VoltageVector) Arc {
	start := v1.Angle()
	end := math.Atan2(vector.Beta, vector.Alpha)
	sweep := maths.NormalizeAngle(end - start)
	return Arc{
		Start:    start,
		End:      end,
		Sweep:    sweep,
		Mid:      start + sweep/2,
		Degrees:  maths.RoundHalfUp(maths.Degrees(sweep)),
		LargeArc: sweep > math.Pi,
	}
}

// Point 以 radius 为半径的圆弧上角度 angle 处的点
func (a Arc) Point(angle, radius float64) types.Vector {
	return types.Vector{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
}

// Points 将圆弧离散为 n+1 个点
func (a Arc) Points(radius float64, n int) []types.Vector {
	if n < 1 {
		n = 1
	}
	points := make([]types.Vector, 0, n+1)
	for k := 0; k <= n; k++ {
		points = append(points, a.Point(a.Start+a.Sweep*float64(k)/float64(n), radius))
	}
	return points
}
