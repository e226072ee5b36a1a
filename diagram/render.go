package diagram

import (
	"fmt"
	"math"

	"svm"
	"svm/geometry"
	"svm/maths"
	"svm/modulation"
	"svm/types"

	"gonum.org/v1/plot/vg"
)

// 绘图线宽
const (
	widthGrid   = vg.Length(0.5)
	widthAxis   = vg.Length(2)
	widthThin   = vg.Length(1.5)
	widthBold   = vg.Length(3)
	widthPhase  = vg.Length(6)
	labelOffset = 0.12 // 顶点标签相对外接圆的外移比例
	arcRatio    = 0.15 // 夹角圆弧相对内切圆的半径比例
)

// Render 由计算结果生成 SVM 矢量图
func Render(r svm.Result) (*Draw, error) {
	p := r.Params
	inner := geometry.InscribedRadius(p.Udc)
	outer := geometry.CircumscribedRadius(p.Udc)
	extent := math.Max(math.Abs(outer)*(1+2*labelOffset), r.Magnitude*1.1)
	d := NewDraw("SVM", extent)

	steps := []func() error{
		func() error { return drawGrid(d, p.BoxSizeVolts) },
		func() error { return drawAxes(d) },
		func() error {
			if !p.ShowPhases {
				return nil
			}
			return drawPhases(d, inner)
		},
		func() error { return d.DrawCircle(inner, widthThin, ColorBlue) },
		func() error {
			if !p.ShowSVM {
				return nil
			}
			return drawSVM(d, r, inner, outer)
		},
		func() error { return drawVector(d, r) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func drawGrid(d *Draw, boxSize float64) error {
	for _, pos := range geometry.GridLines(d.Extent, boxSize) {
		if err := d.DrawLine(types.Vector{X: pos, Y: -d.Extent}, types.Vector{X: pos, Y: d.Extent}, widthGrid, ColorGrid); err != nil {
			return err
		}
		if err := d.DrawLine(types.Vector{X: -d.Extent, Y: pos}, types.Vector{X: d.Extent, Y: pos}, widthGrid, ColorGrid); err != nil {
			return err
		}
	}
	return nil
}

func drawAxes(d *Draw) error {
	e := d.Extent
	if err := d.DrawLine(types.Vector{X: -e}, types.Vector{X: e}, widthAxis, ColorBlack); err != nil {
		return err
	}
	if err := d.DrawLine(types.Vector{Y: -e}, types.Vector{Y: e}, widthAxis, ColorBlack); err != nil {
		return err
	}
	if err := d.DrawText(types.Vector{X: e * 0.92, Y: e * 0.04}, "α"); err != nil {
		return err
	}
	return d.DrawText(types.Vector{X: e * 0.04, Y: e * 0.92}, "β")
}

func drawPhases(d *Draw, radius float64) error {
	for _, axis := range geometry.PhaseAxes(radius) {
		if err := d.DrawLine(types.Vector{}, axis.End, widthPhase, ColorPhase); err != nil {
			return err
		}
		if err := d.DrawText(axis.End, axis.Label); err != nil {
			return err
		}
	}
	return nil
}

func drawSVM(d *Draw, r svm.Result, inner, outer float64) error {
	// 六边形与开关状态标注
	hex := geometry.Hexagon(outer)
	if err := d.DrawPolygon(hex[:], widthAxis, ColorBlack, nil); err != nil {
		return err
	}
	states := modulation.VertexStates()
	for i, pos := range geometry.Hexagon(outer * (1 + labelOffset)) {
		if err := d.DrawText(pos, states[i].String()); err != nil {
			return err
		}
	}
	// 零矢量位于原点
	if err := d.DrawText(types.Vector{}, types.StateZero.String()+"/"+types.StateOne.String()); err != nil {
		return err
	}
	// 当前扇区
	wedge := geometry.SectorWedge(r.Sector, outer)
	if err := d.DrawPolygon(wedge[:], 0, ColorWedge, ColorWedge); err != nil {
		return err
	}
	if err := d.DrawLine(wedge[0], wedge[1], widthBold, ColorBlack); err != nil {
		return err
	}
	if err := d.DrawLine(wedge[0], wedge[2], widthBold, ColorBlack); err != nil {
		return err
	}
	// 分解矢量 T1·v1, T2·v2
	dec := r.Decomposition
	p1 := dec.V1.Scale(dec.T1)
	p2 := p1.Add(dec.V2.Scale(dec.T2))
	if err := d.DrawLine(types.Vector{}, p1, widthBold, ColorGreen); err != nil {
		return err
	}
	if err := d.DrawLine(p1, p2, widthBold, ColorGreen); err != nil {
		return err
	}
	if err := d.DrawText(p1.Scale(0.5), percent(dec.T1)); err != nil {
		return err
	}
	if err := d.DrawText(p1.Add(p2).Scale(0.5), percent(dec.T2)); err != nil {
		return err
	}
	// 夹角圆弧
	arcRadius := math.Abs(inner) * arcRatio
	if err := d.DrawPolyline(r.Arc.Points(arcRadius, 32), widthAxis, ColorRed); err != nil {
		return err
	}
	if err := d.DrawText(r.Arc.Point(r.Arc.Mid, arcRadius*1.4), fmt.Sprintf("%d°", r.Arc.Degrees)); err != nil {
		return err
	}
	// 占空比
	lines := []string{
		fmt.Sprintf("PWM U: %d%%", r.Duty.U),
		fmt.Sprintf("PWM V: %d%%", r.Duty.V),
		fmt.Sprintf("PWM W: %d%%", r.Duty.W),
	}
	for i, text := range lines {
		pos := types.Vector{X: -d.Extent * 0.95, Y: d.Extent * (0.92 - 0.08*float64(i))}
		if err := d.DrawText(pos, text); err != nil {
			return err
		}
	}
	return nil
}

func drawVector(d *Draw, r svm.Result) error {
	v := r.Params.Vector.Vector()
	if err := d.DrawLine(types.Vector{}, v, widthAxis, ColorRed); err != nil {
		return err
	}
	if err := d.DrawPoint(v, vg.Points(3), ColorRed); err != nil {
		return err
	}
	if err := d.DrawText(v, fmt.Sprintf("(%g, %g)", v.X, v.Y)); err != nil {
		return err
	}
	return d.DrawText(v.Scale(0.5), fmt.Sprintf("%.2f V", r.Magnitude))
}

func percent(t float64) string { return fmt.Sprintf("%d%%", maths.RoundHalfUp(t*100)) }
