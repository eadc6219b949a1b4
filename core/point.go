package core

import "math"

// Point 代表三维空间中的一个点（也可当作向量使用）
type Point struct {
	X, Y, Z float64
}

// ZAxis 世界坐标系 +Z 轴，实体拉伸方向的默认值
var ZAxis = Point{Z: 1}

// NegZAxis 世界坐标系 -Z 轴，反向拉伸会翻转角度方向
var NegZAxis = Point{Z: -1}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross 向量叉积
func (p Point) Cross(q Point) Point {
	return Point{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

func (p Point) Length() float64 {
	return math.Sqrt(p.Dot(p))
}

func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize 返回同方向的单位向量，零向量原样返回
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return p
	}

	return p.Mul(1 / length)
}

// IsClose 各分量差值均不超过 epsilon 则认为相同
func (p Point) IsClose(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) <= epsilon &&
		math.Abs(p.Y-q.Y) <= epsilon &&
		math.Abs(p.Z-q.Z) <= epsilon
}

// Lerp 线性插值，t 取 [0,1]
func (p Point) Lerp(q Point, t float64) Point {
	return p.Add(q.Sub(p).Mul(t))
}

// BBox 代表包围盒
type BBox struct {
	Min, Max Point
}

// NewBBox 由任意一组点构造包围盒，空集返回零值
func NewBBox(points ...Point) BBox {
	if len(points) == 0 {
		return BBox{}
	}

	box := BBox{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box = box.ExtendPoint(p)
	}

	return box
}

func (b BBox) ExtendPoint(p Point) BBox {
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Min.Z = math.Min(b.Min.Z, p.Z)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
	b.Max.Z = math.Max(b.Max.Z, p.Z)

	return b
}

func (b BBox) Extend(other BBox) BBox {
	return b.ExtendPoint(other.Min).ExtendPoint(other.Max)
}

func (b BBox) Width() float64 {
	return b.Max.X - b.Min.X
}

func (b BBox) Height() float64 {
	return b.Max.Y - b.Min.Y
}
