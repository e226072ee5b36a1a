// Package modulation 两电平三相逆变器空间矢量调制(SVM)计算.
//
// 输入 αβ 电压矢量与直流母线电压, 依次完成扇区判断, 基本矢量生成,
// 时间占比分解与各相占空比映射. 所有函数均为纯函数, 不返回错误,
// 奇异与过调制等边界情况通过结果字段体现.
package modulation
