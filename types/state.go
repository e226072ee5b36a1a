package types

import "fmt"

// SwitchState 三相开关状态 (U,V,W), 1 表示上桥臂导通
type SwitchState [PhaseCount]uint8

// 零矢量
var (
	StateZero = SwitchState{0, 0, 0} // 000
	StateOne  = SwitchState{1, 1, 1} // 111
)

// String 输出 "100" 形式
func (s SwitchState) String() string {
	b := make([]byte, PhaseCount)
	for i, v := range s {
		b[i] = '0' + v
	}
	return string(b)
}

// MarshalText 以 "100" 形式编码
func (s SwitchState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText 解析 "100" 形式
func (s *SwitchState) UnmarshalText(text []byte) error {
	if len(text) != PhaseCount {
		return fmt.Errorf("开关状态长度错误: %q", text)
	}
	for i, c := range text {
		if c != '0' && c != '1' {
			return fmt.Errorf("开关状态非法字符: %q", text)
		}
		s[i] = c - '0'
	}
	return nil
}
