package geometry

import (
	"math"

	"svm/maths"
	"svm/types"
)

// Hexagon 外接圆半径为 radius 的六边形顶点, 顶点 i 位于 i·60°
func Hexagon(radius float64) (points [types.SectorCount]types.Vector) {
	step := 2 * math.Pi / types.SectorCount
	for i := range points {
		angle := float64(i) * step
		points[i] = types.Vector{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return points
}

// SectorWedge 扇区三角形: 原点与扇区两侧顶点
func SectorWedge(sector types.Sector, radius float64) [3]types.Vector {
	points := Hexagon(radius)
	return [3]types.Vector{{}, points[sector.Index()], points[sector.Next().Index()]}
}

// PhaseAxis 相轴
type PhaseAxis struct {
	Label string       `json:"label"`
	End   types.Vector `json:"end"`
}

// PhaseAxes U/V/W 相轴, 分别位于 0°/120°/240°
func PhaseAxes(radius float64) [types.PhaseCount]PhaseAxis {
	labels := [types.PhaseCount]string{"U", "V", "W"}
	var axes [types.PhaseCount]PhaseAxis
	for i, label := range labels {
		rad := maths.Radians(float64(i) * 120)
		axes[i] = PhaseAxis{
			Label: label,
			End:   types.Vector{X: radius * math.Cos(rad), Y: radius * math.Sin(rad)},
		}
	}
	return axes
}
