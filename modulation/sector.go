package modulation

import (
	"math"

	"svm/maths"
	"svm/types"
)

// sectorWidth 每个扇区 60°
const sectorWidth = math.Pi / 3

// boundarySnap 扇区商与整数的距离小于此值时视为恰在边界上
const boundarySnap = 1e-12

// Classify 扇区判断
// (0,0) 按 atan2(0,0)=0 归入扇区 1, 角度恰为 2π 时限制为扇区 6
// 恰在边界上的矢量归入逆时针方向的扇区, 例如 180° 属于扇区 4
func Classify(alpha, beta float64) types.Sector {
	angle := maths.NormalizeAngle(math.Atan2(beta, alpha))
	q := angle / sectorWidth
	if r := math.Round(q); math.Abs(q-r) < boundarySnap {
		q = r
	}
	sector := types.Sector(math.Floor(q)) + 1
	if sector > types.SectorCount {
		sector = types.SectorCount
	}
	return sector
}
