package geometry

import "math"

// MaxGridLines 单方向最多栅格线数量
const MaxGridLines = 1000

// GridLines 以 boxSize 为间距覆盖 [-extent, extent] 的栅格线位置
// boxSize<=0 或线数超过 MaxGridLines 时返回 nil
func GridLines(extent, boxSize float64) []float64 {
	if boxSize <= 0 || extent <= 0 {
		return nil
	}
	count := math.Ceil(extent / boxSize)
	if math.IsNaN(count) || count > MaxGridLines {
		return nil
	}
	n := int(count)
	lines := make([]float64, 0, 2*n+1)
	for i := -n; i <= n; i++ {
		lines = append(lines, float64(i)*boxSize)
	}
	return lines
}
