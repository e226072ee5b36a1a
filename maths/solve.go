package maths

import (
	"math"

	"svm/types"

	"gonum.org/v1/gonum/mat"
)

// Basis2 以 v1, v2 为列向量构建 2x2 基矩阵
func Basis2(v1, v2 types.Vector) *mat.Dense {
	return mat.NewDense(2, 2, []float64{
		v1.X, v2.X,
		v1.Y, v2.Y,
	})
}

// Cramer2 克莱姆法则求解 b = t1·v1 + t2·v2
// |det| < tol 时不做除法, 返回 t1=t2=0 与 ok=false
func Cramer2(v1, v2, b types.Vector, tol float64) (t1, t2, det float64, ok bool) {
	det = mat.Det(Basis2(v1, v2))
	if math.Abs(det) < tol {
		return 0, 0, det, false
	}
	t1 = (b.X*v2.Y - b.Y*v2.X) / det
	t2 = (v1.X*b.Y - v1.Y*b.X) / det
	return t1, t2, det, true
}
