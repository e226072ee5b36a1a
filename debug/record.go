package debug

import (
	"encoding/json"
	"io"
	"math"

	"svm"
	"svm/maths"
	"svm/types"
)

// Record 电压矢量旋转一周的占空比记录
type Record struct {
	Magnitude float64   `json:"magnitude"` // 矢量幅值
	Udc       float64   `json:"udc"`       // 母线电压
	Angle     []float64 `json:"angle"`     // 角度列(°)
	Sector    []int     `json:"sector"`    // 扇区列
	T1        []float64 `json:"t1"`        // 时间占比列
	T2        []float64 `json:"t2"`
	T0        []float64 `json:"t0"`
	U         []float64 `json:"u"` // 占空比列(%, 未取整)
	V         []float64 `json:"v"`
	W         []float64 `json:"w"`
}

// Sweep 在 [0, 2π) 上等间隔取 steps 个角度计算
func Sweep(magnitude float64, base types.RenderParameters, steps int) *Record {
	if steps < 1 {
		steps = 1
	}
	list := &Record{Magnitude: magnitude, Udc: base.Udc}
	for k := 0; k < steps; k++ {
		angle := maths.TwoPi * float64(k) / float64(steps)
		p := base
		p.Vector = types.VoltageVector{
			Alpha: magnitude * math.Cos(angle),
			Beta:  magnitude * math.Sin(angle),
		}
		list.Update(angle, svm.Compute(p))
	}
	return list
}

// Update 记录一次计算
func (list *Record) Update(angle float64, r svm.Result) {
	d := r.Decomposition
	list.Angle = append(list.Angle, maths.Degrees(angle))
	list.Sector = append(list.Sector, int(r.Sector))
	list.T1 = append(list.T1, d.T1)
	list.T2 = append(list.T2, d.T2)
	list.T0 = append(list.T0, d.T0)
	list.U = append(list.U, r.Fraction.U*100)
	list.V = append(list.V, r.Fraction.V*100)
	list.W = append(list.W, r.Fraction.W*100)
}

// Len 记录数量
func (list *Record) Len() int { return len(list.Angle) }

// Render 格式和输出内容
func (list *Record) Render(w io.Writer) error { return json.NewEncoder(w).Encode(list) }
