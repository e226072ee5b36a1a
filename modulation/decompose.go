package modulation

import (
	"svm/maths"
	"svm/types"
)

// SectorBasis 扇区两侧的基本矢量
func SectorBasis(sector types.Sector, basis types.BasisVectorSet) (v1, v2 types.Vector) {
	return basis[sector.Index()], basis[sector.Next().Index()]
}

// Decompose 求解 [α,β] = T1·v1 + T2·v2
// 基矩阵接近奇异时返回 Degenerate 结果, T1=T2=0
func Decompose(alpha, beta float64, sector types.Sector, basis types.BasisVectorSet) types.Decomposition {
	v1, v2 := SectorBasis(sector, basis)
	t1, t2, det, ok := maths.Cramer2(v1, v2, types.Vector{X: alpha, Y: beta}, types.DetTolerance)
	return types.Decomposition{
		T1:         t1,
		T2:         t2,
		T0:         1 - t1 - t2,
		V1:         v1,
		V2:         v2,
		Det:        det,
		Degenerate: !ok,
	}
}
