package load

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"svm/types"
)

// componentPattern 输入框允许的内容: 空, 负号, 小数点与数字
var componentPattern = regexp.MustCompile(`^-?\d*\.?\d*$`)

// Value 文本输入值
type Value struct {
	Value string // 原始值
	Line  int    // 行号, 0 表示非文件来源
}

// Accept 是否为允许输入的字符序列
func (value Value) Accept() bool { return componentPattern.MatchString(value.Value) }

// ParseComponent 解析 α/β 分量
// 不完整的数字(如 "-" 或 ".")视为 0, 非法字符返回错误
func (value Value) ParseComponent() (float64, error) {
	text := strings.TrimSpace(value.Value)
	if !componentPattern.MatchString(text) {
		return 0, value.errorf("非法数值 %q", value.Value)
	}
	val, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, nil
	}
	if err != nil || math.Abs(val) > types.MaxVolts {
		return 0, value.errorf("数值超出范围 ±%g: %q", types.MaxVolts, value.Value)
	}
	return val, nil
}

// ParseFloat 解析浮点数, 失败或 NaN/Inf 时返回默认值
func (value Value) ParseFloat(defaultValue float64) float64 {
	val, err := strconv.ParseFloat(strings.TrimSpace(value.Value), 64)
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		return defaultValue
	}
	return val
}

// ParsePositive 解析正数, 空值返回默认值
func (value Value) ParsePositive(defaultValue float64) (float64, error) {
	if strings.TrimSpace(value.Value) == "" {
		return defaultValue, nil
	}
	val, err := strconv.ParseFloat(strings.TrimSpace(value.Value), 64)
	if err != nil {
		return 0, value.errorf("无效数值 %q: %w", value.Value, err)
	}
	if !(val > 0) || math.IsInf(val, 0) {
		return 0, value.errorf("数值必须为正: %q", value.Value)
	}
	if val > types.MaxVolts {
		return 0, value.errorf("数值超出范围 %g: %q", types.MaxVolts, value.Value)
	}
	return val, nil
}

// ParseBool 解析布尔值
func (value Value) ParseBool(defaultValue bool) bool {
	if val, err := strconv.ParseBool(strings.TrimSpace(value.Value)); err == nil {
		return val
	}
	return defaultValue
}

// ParseInt 解析整数
func (value Value) ParseInt(defaultValue int) int {
	if val, err := strconv.Atoi(strings.TrimSpace(value.Value)); err == nil {
		return val
	}
	return defaultValue
}

func (value Value) errorf(format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	if value.Line > 0 {
		return fmt.Errorf("第 %d 行: %w", value.Line, err)
	}
	return err
}

// ParseComponent 解析单个 α/β 输入文本
func ParseComponent(text string) (float64, error) { return Value{Value: text}.ParseComponent() }
