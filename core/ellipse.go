package core

import "math"

// ConstructionEllipse 椭圆构造表示，圆/圆弧/椭圆统一到同一种采样结构
// 参数角相对长轴方向，绕拉伸方向逆时针
type ConstructionEllipse struct {
	Center     Point   // 世界坐标圆心
	MajorAxis  Point   // 长半轴向量（世界坐标）
	Ratio      float64 // 短轴与长轴之比
	StartParam float64 // 起始参数（弧度）
	EndParam   float64 // 终止参数（弧度）
	Extrusion  Point   // 法向量
}

// EllipseFromArc 由圆/圆弧构造椭圆表示
// center 为对象坐标圆心，startAngle/endAngle 为角度制
func EllipseFromArc(center Point, radius float64, extrusion Point, startAngle, endAngle float64) ConstructionEllipse {
	if extrusion == (Point{}) {
		extrusion = ZAxis
	}

	ocs := NewOCS(extrusion)

	return ConstructionEllipse{
		Center:     ocs.ToWCS(center),
		MajorAxis:  ocs.ToWCS(Point{X: radius}).Sub(ocs.ToWCS(Point{})),
		Ratio:      1,
		StartParam: Radians(startAngle),
		EndParam:   Radians(endAngle),
		Extrusion:  extrusion.Normalize(),
	}
}

// minorAxis 由法向量与长轴推导短半轴向量
func (e ConstructionEllipse) minorAxis() Point {
	return e.Extrusion.Normalize().Cross(e.MajorAxis).Mul(e.Ratio)
}

// Point 椭圆上参数 t 处的点
func (e ConstructionEllipse) Point(t float64) Point {
	var (
		minor    = e.minorAxis()
		sin, cos = math.Sincos(t)
	)

	return e.Center.Add(e.MajorAxis.Mul(cos)).Add(minor.Mul(sin))
}

// Vertices 按给定参数序列采样
func (e ConstructionEllipse) Vertices(params []float64) []Point {
	points := make([]Point, len(params))
	for i, t := range params {
		points[i] = e.Point(t)
	}

	return points
}

// ParamSpan 参数跨度，终止参数小于起始参数时按整圈补齐
// 起止相同视为零长度弧，采样退化为重合点而不是整圆
func (e ConstructionEllipse) ParamSpan() float64 {
	span := e.EndParam - e.StartParam
	if span < 0 {
		span += Tau
	}

	return span
}

// Flattening 按分辨率（整圆段数）采样，保证至少 4 个点
func (e ConstructionEllipse) Flattening(resolution int) []Point {
	if resolution < 1 {
		resolution = 1
	}

	segments := int(math.Round(e.ParamSpan() / Tau * float64(resolution)))
	num := max(4, segments+1)

	return e.Vertices(Linspace(e.StartParam, e.StartParam+e.ParamSpan(), num))
}
