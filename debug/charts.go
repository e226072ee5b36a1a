package debug

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/rs/zerolog"
)

// Charts 曲线绘制
type Charts struct {
	*Record
	Log zerolog.Logger
}

// newLine 统一的折线图配置
func newLine(title, subtitle, yName string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:        "角度(°)",
			SplitNumber: 12,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  yName,
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
	)
	return line
}

func lineData[T int | float64](values []T) []opts.LineData {
	items := make([]opts.LineData, len(values))
	for i, v := range values {
		items[i].Value = v
	}
	return items
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	subtitle := fmt.Sprintf("|u|=%gV, Udc=%gV", c.Magnitude, c.Udc)
	xAxis := make([]string, c.Len())
	for i, a := range c.Angle {
		xAxis[i] = strconv.FormatFloat(a, 'f', 1, 64)
	}
	// 占空比
	lineDuty := newLine("相占空比", subtitle, "%")
	lineDuty.SetXAxis(xAxis).
		AddSeries("U", lineData(c.U)).
		AddSeries("V", lineData(c.V)).
		AddSeries("W", lineData(c.W))
	// 时间占比
	lineTime := newLine("时间占比", subtitle, "T")
	lineTime.SetXAxis(xAxis).
		AddSeries("T1", lineData(c.T1)).
		AddSeries("T2", lineData(c.T2)).
		AddSeries("T0", lineData(c.T0))
	// 扇区
	lineSector := newLine("扇区", subtitle, "扇区")
	lineSector.SetXAxis(xAxis).
		AddSeries("扇区", lineData(c.Sector))
	// 构建界面
	page := components.NewPage()
	page.PageTitle = "SVM"
	page.AddCharts(
		lineDuty,
		lineTime,
		lineSector,
	)
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	if err := c.Render(w); err != nil {
		c.Error(err)
	}
}

func (c *Charts) Error(err error) { c.Log.Error().Err(err).Msg("图表渲染失败") }
