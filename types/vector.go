package types

import "math"

// Vector 二维物理矢量(单位 V)
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add 矢量相加
func (v Vector) Add(o Vector) Vector { return Vector{X: v.X + o.X, Y: v.Y + o.Y} }

// Scale 矢量缩放
func (v Vector) Scale(k float64) Vector { return Vector{X: v.X * k, Y: v.Y * k} }

// Norm 模长
func (v Vector) Norm() float64 { return math.Hypot(v.X, v.Y) }

// Angle 相对 α 轴的角度(-π, π]
func (v Vector) Angle() float64 { return math.Atan2(v.Y, v.X) }

// VoltageVector αβ 静止坐标系下的电压矢量
type VoltageVector struct {
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta"`
}

// Vector 转换为普通二维矢量
func (v VoltageVector) Vector() Vector { return Vector{X: v.Alpha, Y: v.Beta} }

// Magnitude 电压矢量幅值
func (v VoltageVector) Magnitude() float64 { return math.Hypot(v.Alpha, v.Beta) }

// BasisVectorSet 六个有效开关状态对应的基本矢量, 下标 i 对应 i·60°
type BasisVectorSet [SectorCount]Vector
