package maths

import "math"

// TwoPi 2π
const TwoPi = 2 * math.Pi

// NormalizeAngle 将 atan2 结果 (-π, π] 映射到 [0, 2π)
func NormalizeAngle(angle float64) float64 {
	if angle < 0 {
		angle += TwoPi
	}
	return angle
}

// Degrees 弧度转角度
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// Radians 角度转弧度
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// RoundHalfUp 四舍五入, .5 始终向正无穷取整
// 超出 int 范围时取 math.MaxInt/math.MinInt, NaN 返回 0
func RoundHalfUp(x float64) int {
	r := math.Floor(x + 0.5)
	switch {
	case math.IsNaN(r):
		return 0
	case r >= float64(math.MaxInt):
		return math.MaxInt
	case r <= float64(math.MinInt):
		return math.MinInt
	}
	return int(r)
}
