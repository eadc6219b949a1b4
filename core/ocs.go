package core

import "math"

// OCS 对象坐标系，由实体的拉伸方向（法向量）确定
// 拉伸为默认 +Z 时对象坐标与世界坐标重合，转换直接返回原值
type OCS struct {
	identity   bool
	ux, uy, uz Point
}

// NewOCS 按 AutoCAD 任意轴算法由拉伸方向构造对象坐标系
// 零向量按默认 +Z 处理
func NewOCS(extrusion Point) OCS {
	if extrusion == (Point{}) || extrusion.IsClose(ZAxis, 1e-9) {
		return OCS{identity: true}
	}

	var (
		uz = extrusion.Normalize()
		ux Point
	)

	// 任意轴算法：法向量接近世界 Z 轴时用 Y 轴叉积，否则用 Z 轴
	if math.Abs(uz.X) < 1.0/64 && math.Abs(uz.Y) < 1.0/64 {
		ux = Point{Y: 1}.Cross(uz).Normalize()
	} else {
		ux = ZAxis.Cross(uz).Normalize()
	}

	return OCS{
		ux: ux,
		uy: uz.Cross(ux).Normalize(),
		uz: uz,
	}
}

// ToWCS 对象坐标转世界坐标
func (o OCS) ToWCS(p Point) Point {
	if o.identity {
		return p
	}

	return Point{
		X: p.X*o.ux.X + p.Y*o.uy.X + p.Z*o.uz.X,
		Y: p.X*o.ux.Y + p.Y*o.uy.Y + p.Z*o.uz.Y,
		Z: p.X*o.ux.Z + p.Y*o.uy.Z + p.Z*o.uz.Z,
	}
}

// FromWCS 世界坐标转对象坐标
func (o OCS) FromWCS(p Point) Point {
	if o.identity {
		return p
	}

	return Point{
		X: p.Dot(o.ux),
		Y: p.Dot(o.uy),
		Z: p.Dot(o.uz),
	}
}

// PointsToWCS 批量转换
func (o OCS) PointsToWCS(points []Point) []Point {
	if o.identity {
		return points
	}

	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = o.ToWCS(p)
	}

	return out
}
