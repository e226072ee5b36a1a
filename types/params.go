package types

import "fmt"

// OverModulationMode 过调制处理策略
type OverModulationMode uint8

const (
	PassThrough OverModulationMode = iota // 不处理, T0 可为负
	Renormalize                           // T1/T2 等比缩放使 T0=0
)

func (m OverModulationMode) String() string {
	switch m {
	case PassThrough:
		return "passthrough"
	case Renormalize:
		return "renormalize"
	}
	return fmt.Sprintf("OverModulationMode(%d)", uint8(m))
}

// ParseOverModulationMode 解析策略名称
func ParseOverModulationMode(name string) (OverModulationMode, error) {
	switch name {
	case "", "passthrough":
		return PassThrough, nil
	case "renormalize":
		return Renormalize, nil
	}
	return PassThrough, fmt.Errorf("未知过调制策略: %q", name)
}

// MarshalText 文本编码
func (m OverModulationMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// RenderParameters 一次计算的全部输入, 按值传递不可变
type RenderParameters struct {
	Vector         VoltageVector      `json:"vector"`
	Udc            float64            `json:"udc"`
	BoxSizeVolts   float64            `json:"boxSizeVolts"`
	ShowPhases     bool               `json:"showPhases"`
	ShowSVM        bool               `json:"showSVM"`
	OverModulation OverModulationMode `json:"overModulation"`
}

// DefaultRenderParameters 默认参数
func DefaultRenderParameters() RenderParameters {
	return RenderParameters{
		Udc:          DefaultUdc,
		BoxSizeVolts: DefaultBoxSizeVolts,
		ShowPhases:   true,
	}
}

// UnmarshalText 文本解码
func (m *OverModulationMode) UnmarshalText(text []byte) (err error) {
	*m, err = ParseOverModulationMode(string(text))
	return err
}
