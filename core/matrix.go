package core

import "math"

// Matrix 平面仿射变换（用于文字摆放等二维场景，Z 保持不变）
//
//	| XX XY X0 |
//	| YX YY Y0 |
type Matrix struct {
	XX, XY, X0 float64
	YX, YY, Y0 float64
}

// Identity 单位矩阵
func Identity() Matrix {
	return Matrix{XX: 1, YY: 1}
}

// Translate 平移矩阵
func Translate(x, y float64) Matrix {
	return Matrix{XX: 1, YY: 1, X0: x, Y0: y}
}

// Rotate 绕原点旋转（弧度）
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{XX: cos, XY: -sin, YX: sin, YY: cos}
}

// Scale 缩放矩阵
func Scale(sx, sy float64) Matrix {
	return Matrix{XX: sx, YY: sy}
}

// Mul 矩阵复合，结果等价于先应用 m 再应用 n
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		XX: n.XX*m.XX + n.XY*m.YX,
		XY: n.XX*m.XY + n.XY*m.YY,
		X0: n.XX*m.X0 + n.XY*m.Y0 + n.X0,
		YX: n.YX*m.XX + n.YY*m.YX,
		YY: n.YX*m.XY + n.YY*m.YY,
		Y0: n.YX*m.X0 + n.YY*m.Y0 + n.Y0,
	}
}

// Apply 对点应用变换（XY 平面内）
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.XX*p.X + m.XY*p.Y + m.X0,
		Y: m.YX*p.X + m.YY*p.Y + m.Y0,
		Z: p.Z,
	}
}
