package types

// 扇区常量定义
const (
	SectorCount = 6 // 扇区数量
	PhaseCount  = 3 // 相数 U/V/W
)

// 默认参数常量定义
var (
	DetTolerance        = 1e-6 // 基矩阵奇异判定阈值
	DefaultUdc          = 12.0 // 默认直流母线电压
	DefaultBoxSizeVolts = 1.0  // 默认栅格宽度(V/格)
	DefaultPaddingPx    = 40.0 // 绘图区域留白(像素)
	MaxVolts            = 1e9  // 输入电压绝对值上限
)
