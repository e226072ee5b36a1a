package geometry

import (
	"math"

	"svm/types"
)

// outerToInner 六边形外接圆与内切圆半径之比 1/cos(30°)
var outerToInner = 1 / math.Cos(math.Pi/6)

// Scaling 物理量到像素的缩放结果
type Scaling struct {
	VoltsToPixels         float64 `json:"voltsToPixels"`
	InscribedRadiusPx     float64 `json:"inscribedRadiusPx"`
	CircumscribedRadiusPx float64 `json:"circumscribedRadiusPx"`
}

// InscribedRadius 六边形内切圆半径 Udc/√3 (V)
func InscribedRadius(udc float64) float64 { return udc / math.Sqrt(3) }

// CircumscribedRadius 六边形外接圆半径 (V), 等于基本矢量幅值
func CircumscribedRadius(udc float64) float64 { return InscribedRadius(udc) * outerToInner }

// Scale 使六边形外接圆恰好填满可用像素半径
func Scale(udc, availablePixelRadius float64) Scaling {
	voltsToPixels := availablePixelRadius / (udc * outerToInner / math.Sqrt(3))
	inscribed := InscribedRadius(udc) * voltsToPixels
	return Scaling{
		VoltsToPixels:         voltsToPixels,
		InscribedRadiusPx:     inscribed,
		CircumscribedRadiusPx: inscribed * outerToInner,
	}
}

// Frame 由视口尺寸与留白得到可用半径后计算缩放
func Frame(udc, width, height, padding float64) Scaling {
	usable := math.Min(width-padding*2, height-padding*2)
	return Scale(udc, usable/2)
}

// ToScreen 物理坐标转屏幕坐标, 屏幕 y 轴向下
func (s Scaling) ToScreen(v types.Vector, centerX, centerY float64) (x, y float64) {
	return centerX + v.X*s.VoltsToPixels, centerY - v.Y*s.VoltsToPixels
}
