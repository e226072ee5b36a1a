package svm

import (
	"svm/geometry"
	"svm/modulation"
	"svm/types"

	"github.com/rs/zerolog"
)

// Result 一次 SVM 计算的全部输出
type Result struct {
	Params        types.RenderParameters  `json:"params"`
	Sector        types.Sector            `json:"sector"`
	Basis         types.BasisVectorSet    `json:"basis"`
	States        [2]types.SwitchState    `json:"states"`
	Decomposition types.Decomposition     `json:"decomposition"`
	Fraction      types.PhaseDutyFraction `json:"fraction"`
	Duty          types.PhaseDutyCycle    `json:"duty"`
	Magnitude     float64                 `json:"magnitude"`
	Arc           geometry.Arc            `json:"arc"`
}

// Compute 扇区判断 -> 基本矢量 -> 时间分解 -> 占空比
// 不校验输入, 不返回错误
func Compute(p types.RenderParameters) Result {
	alpha, beta := p.Vector.Alpha, p.Vector.Beta
	sector := modulation.Classify(alpha, beta)
	basis := modulation.Basis(p.Udc)
	d := modulation.Limit(modulation.Decompose(alpha, beta, sector, basis), p.OverModulation)
	fraction := modulation.Fractions(d.T1, d.T2, sector)
	b1, b2 := modulation.SwitchStates(sector)
	return Result{
		Params:        p,
		Sector:        sector,
		Basis:         basis,
		States:        [2]types.SwitchState{b1, b2},
		Decomposition: d,
		Fraction:      fraction,
		Duty:          modulation.Percent(fraction),
		Magnitude:     p.Vector.Magnitude(),
		Arc:           geometry.SectorAngle(d.V1, p.Vector),
	}
}

// Evaluate 计算并记录奇异与过调制情况
func Evaluate(log zerolog.Logger, p types.RenderParameters) Result {
	r := Compute(p)
	d := r.Decomposition
	switch {
	case d.Degenerate:
		log.Warn().
			Float64("det", d.Det).
			Stringer("sector", r.Sector).
			Msg("基矩阵接近奇异, 分解结果置零")
	case d.OverModulated():
		log.Warn().
			Float64("t0", d.T0).
			Float64("magnitude", r.Magnitude).
			Float64("limit", modulation.Magnitude(p.Udc)).
			Stringer("mode", p.OverModulation).
			Msg("电压矢量超出六边形")
	}
	log.Debug().
		Float64("alpha", p.Vector.Alpha).
		Float64("beta", p.Vector.Beta).
		Float64("udc", p.Udc).
		Stringer("sector", r.Sector).
		Float64("t1", d.T1).
		Float64("t2", d.T2).
		Float64("t0", d.T0).
		Int("u", r.Duty.U).
		Int("v", r.Duty.V).
		Int("w", r.Duty.W).
		Msg("SVM 计算完成")
	return r
}

// Batch 依次计算多组参数
func Batch(log zerolog.Logger, list []types.RenderParameters) []Result {
	results := make([]Result, 0, len(list))
	for _, p := range list {
		results = append(results, Evaluate(log, p))
	}
	return results
}
