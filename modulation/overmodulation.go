package modulation

import "svm/types"

// Limit 按策略处理过调制分解结果
// PassThrough 原样返回; Renormalize 在 T1+T2>1 时等比缩放使 T0=0
func Limit(d types.Decomposition, mode types.OverModulationMode) types.Decomposition {
	if mode != types.Renormalize || d.Degenerate {
		return d
	}
	sum := d.T1 + d.T2
	if sum <= 1 {
		return d
	}
	d.T1 /= sum
	d.T2 /= sum
	d.T0 = 0
	return d
}
