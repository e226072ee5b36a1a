package modulation

import (
	"svm/maths"
	"svm/types"
)

// switchTable 扇区 -> 两个有效开关状态, 按 Sector.Index() 索引
var switchTable = [types.SectorCount][2]types.SwitchState{
	{{1, 0, 0}, {1, 1, 0}}, // 扇区1: 100, 110
	{{1, 1, 0}, {0, 1, 0}}, // 扇区2: 110, 010
	{{0, 1, 0}, {0, 1, 1}}, // 扇区3: 010, 011
	{{0, 1, 1}, {0, 0, 1}}, // 扇区4: 011, 001
	{{0, 0, 1}, {1, 0, 1}}, // 扇区5: 001, 101
	{{1, 0, 1}, {1, 0, 0}}, // 扇区6: 101, 100
}

// SwitchStates 扇区对应的两个有效开关状态
func SwitchStates(sector types.Sector) (b1, b2 types.SwitchState) {
	states := switchTable[sector.Index()]
	return states[0], states[1]
}

// VertexStates 六边形顶点 i(角度 i·60°) 对应的开关状态
func VertexStates() (states [types.SectorCount]types.SwitchState) {
	for i := range states {
		states[i] = switchTable[i][0]
	}
	return states
}

// Fractions 各相占空比(0..1, 未取整)
// 零矢量时间在 000/111 之间平均分配, T0<0 时不做修正
func Fractions(t1, t2 float64, sector types.Sector) types.PhaseDutyFraction {
	t0 := 1 - (t1 + t2)
	b1, b2 := SwitchStates(sector)
	var pwm [types.PhaseCount]float64
	for i := range pwm {
		pwm[i] = t1*float64(b1[i]) + t2*float64(b2[i]) + t0/2
	}
	return types.PhaseDutyFraction{U: pwm[0], V: pwm[1], W: pwm[2]}
}

// PhaseDuty 各相占空比百分比
func PhaseDuty(t1, t2 float64, sector types.Sector) types.PhaseDutyCycle {
	return Percent(Fractions(t1, t2, sector))
}

// Percent 占空比转百分比并四舍五入
func Percent(f types.PhaseDutyFraction) types.PhaseDutyCycle {
	return types.PhaseDutyCycle{
		U: maths.RoundHalfUp(f.U * 100),
		V: maths.RoundHalfUp(f.V * 100),
		W: maths.RoundHalfUp(f.W * 100),
	}
}
