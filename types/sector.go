package types

import "strconv"

// Sector 扇区编号 1..6, 1 从 0° 开始逆时针递增
type Sector int

// Valid 是否为合法扇区
func (s Sector) Valid() bool { return s >= 1 && s <= SectorCount }

// Index 0 起始的扇区下标, 非法扇区也会折回 0..5
func (s Sector) Index() int {
	return ((int(s)-1)%SectorCount + SectorCount) % SectorCount
}

// Next 逆时针下一个扇区
func (s Sector) Next() Sector { return Sector((s.Index()+1)%SectorCount + 1) }

func (s Sector) String() string { return "S" + strconv.Itoa(int(s)) }

// Sectors 全部扇区
func Sectors() [SectorCount]Sector { return [SectorCount]Sector{1, 2, 3, 4, 5, 6} }
