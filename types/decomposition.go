package types

// Decomposition 电压矢量在扇区两个基本矢量上的分解结果
// T1+T2+T0 = 1, Degenerate 时 T1=T2=0 且 Det 为奇异行列式
type Decomposition struct {
	T1         float64 `json:"t1"`
	T2         float64 `json:"t2"`
	T0         float64 `json:"t0"`
	V1         Vector  `json:"v1"`
	V2         Vector  `json:"v2"`
	Det        float64 `json:"det"`
	Degenerate bool    `json:"degenerate"`
}

// OverModulated 矢量超出六边形(零矢量时间为负)
func (d Decomposition) OverModulated() bool { return d.T0 < 0 }

// Reconstruct 由 T1·V1 + T2·V2 还原电压矢量
func (d Decomposition) Reconstruct() Vector {
	return d.V1.Scale(d.T1).Add(d.V2.Scale(d.T2))
}

// PhaseDutyFraction 各相占空比(取整前, 0..1)
type PhaseDutyFraction struct {
	U float64 `json:"u"`
	V float64 `json:"v"`
	W float64 `json:"w"`
}

// PhaseDutyCycle 各相占空比百分比
type PhaseDutyCycle struct {
	U int `json:"u"`
	V int `json:"v"`
	W int `json:"w"`
}
