package modulation

import (
	"math"

	"svm/types"
)

// Magnitude 基本矢量幅值 (2/3)·Udc
func Magnitude(udc float64) float64 { return 2.0 / 3.0 * udc }

// Basis 生成六个有效开关状态的物理基本矢量
// 第 i 个矢量角度为 i·60°, Udc 不做校验
func Basis(udc float64) (set types.BasisVectorSet) {
	magnitude := Magnitude(udc)
	for i := range set {
		angle := float64(i) * sectorWidth
		set[i] = types.Vector{
			X: magnitude * math.Cos(angle),
			Y: magnitude * math.Sin(angle),
		}
	}
	return set
}
