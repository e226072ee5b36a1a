package diagram

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"svm/types"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// 颜色定义
var (
	ColorBlack = color.NRGBA{A: 255}
	ColorGrid  = color.NRGBA{A: 60}
	ColorRed   = color.NRGBA{R: 255, A: 255}
	ColorBlue  = color.NRGBA{B: 255, A: 255}
	ColorGreen = color.NRGBA{G: 100, A: 255}
	ColorWedge = color.NRGBA{R: 128, G: 128, B: 128, A: 77}
	ColorPhase = color.NRGBA{A: 77}
)

// ContentTypes 支持的输出格式
var ContentTypes = map[string]string{
	"svg": "image/svg+xml",
	"png": "image/png",
	"pdf": "application/pdf",
}

// Draw 以伏特为坐标单位的绘图
type Draw struct {
	Plot   *plot.Plot
	Extent float64 // 坐标范围 [-Extent, Extent]
}

// NewDraw 创建绘图, 两轴范围对称
func NewDraw(title string, extent float64) *Draw {
	if !(extent > 0) || math.IsInf(extent, 0) {
		extent = 1
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "uα (V)"
	p.Y.Label.Text = "uβ (V)"
	p.X.Min, p.X.Max = -extent, extent
	p.Y.Min, p.Y.Max = -extent, extent
	return &Draw{Plot: p, Extent: extent}
}

func xys(points []types.Vector) plotter.XYs {
	data := make(plotter.XYs, len(points))
	for i, v := range points {
		data[i].X, data[i].Y = v.X, v.Y
	}
	return data
}

// DrawLine 绘制一条直线
func (d *Draw) DrawLine(start, end types.Vector, width vg.Length, c color.Color) error {
	return d.DrawPolyline([]types.Vector{start, end}, width, c)
}

// DrawPolyline 绘制折线（不闭合）
func (d *Draw) DrawPolyline(points []types.Vector, width vg.Length, c color.Color, dashes ...vg.Length) error {
	if len(points) < 2 {
		return nil
	}
	line, err := plotter.NewLine(xys(points))
	if err != nil {
		return err
	}
	line.LineStyle.Width = width
	line.LineStyle.Color = c
	line.LineStyle.Dashes = dashes
	d.Plot.Add(line)
	return nil
}

// DrawPolygon 绘制闭合多边形, fill 为 nil 时不填充
func (d *Draw) DrawPolygon(points []types.Vector, width vg.Length, stroke, fill color.Color) error {
	poly, err := plotter.NewPolygon(xys(points))
	if err != nil {
		return err
	}
	poly.LineStyle.Width = width
	poly.LineStyle.Color = stroke
	poly.Color = fill
	d.Plot.Add(poly)
	return nil
}

// DrawCircle 以原点为圆心绘制圆
func (d *Draw) DrawCircle(radius float64, width vg.Length, c color.Color) error {
	const segments = 120
	points := make([]types.Vector, 0, segments+1)
	for k := 0; k <= segments; k++ {
		angle := 2 * math.Pi * float64(k) / segments
		points = append(points, types.Vector{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return d.DrawPolyline(points, width, c)
}

// DrawPoint 绘制一个点
func (d *Draw) DrawPoint(pos types.Vector, radius vg.Length, c color.Color) error {
	scatter, err := plotter.NewScatter(xys([]types.Vector{pos}))
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = c
	scatter.GlyphStyle.Radius = radius
	d.Plot.Add(scatter)
	return nil
}

// DrawText 在指定位置绘制文字
func (d *Draw) DrawText(pos types.Vector, text string) error {
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    xys([]types.Vector{pos}),
		Labels: []string{text},
	})
	if err != nil {
		return err
	}
	d.Plot.Add(labels)
	return nil
}

// WriteTo 按格式(svg/png/pdf)输出, size 为正方形边长
func (d *Draw) WriteTo(w io.Writer, format string, size vg.Length) error {
	wt, err := d.Plot.WriterTo(size, size, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save 按扩展名格式写入文件, 格式不支持时不创建文件
func (d *Draw) Save(filename string, size vg.Length) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if _, ok := ContentTypes[format]; !ok {
		return fmt.Errorf("不支持的图片格式 %q", filepath.Ext(filename))
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := d.WriteTo(f, format, size); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
