package core

import "iter"

// PathCommand 路径命令类型
type PathCommand int

const (
	// CmdLineTo 直线段
	CmdLineTo PathCommand = iota + 1
	// CmdCurve4 三次贝塞尔曲线段（两个控制点+终点）
	CmdCurve4
)

// pathElement 一段路径：直线只用 End，曲线带两个控制点
type pathElement struct {
	Cmd   PathCommand
	Ctrl1 Point
	Ctrl2 Point
	End   Point
}

// Path 与后端无关的矢量路径：起点加有序命令序列
type Path struct {
	start    Point
	elements []pathElement
}

// NewPath 以起点构造路径
func NewPath(start Point) *Path {
	return &Path{start: start}
}

// Start 路径起点
func (p *Path) Start() Point {
	return p.start
}

// End 路径终点，无命令时为起点
func (p *Path) End() Point {
	if len(p.elements) == 0 {
		return p.start
	}

	return p.elements[len(p.elements)-1].End
}

// Len 命令条数
func (p *Path) Len() int {
	return len(p.elements)
}

// LineTo 追加直线段
func (p *Path) LineTo(end Point) {
	p.elements = append(p.elements, pathElement{Cmd: CmdLineTo, End: end})
}

// Curve4To 追加三次贝塞尔曲线段
func (p *Path) Curve4To(ctrl1, ctrl2, end Point) {
	p.elements = append(p.elements, pathElement{Cmd: CmdCurve4, Ctrl1: ctrl1, Ctrl2: ctrl2, End: end})
}

// Vertices 惰性遍历路径控制顶点（起点+每条命令的终点）
// 序列有限且可重复遍历
func (p *Path) Vertices() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if !yield(p.start) {
			return
		}
		for _, e := range p.elements {
			if !yield(e.End) {
				return
			}
		}
	}
}

// Flattening 按距离容差展平为顶点序列
// 直线段原样保留，曲线段自适应细分到中点偏差不超过 distance
func (p *Path) Flattening(distance float64) []Point {
	if distance <= 0 {
		distance = 0.01
	}

	var (
		points  = []Point{p.start}
		current = p.start
	)

	for _, e := range p.elements {
		switch e.Cmd {
		case CmdLineTo:
			points = append(points, e.End)
		case CmdCurve4:
			flattenCurve4(current, e.Ctrl1, e.Ctrl2, e.End, distance, 0, &points)
		default:
			panic("dxfdraw: 未知路径命令")
		}
		current = e.End
	}

	return points
}

func flattenCurve4(p0, p1, p2, p3 Point, distance float64, depth int, out *[]Point) {
	// 两个控制点到弦线的偏差都在容差内即认为足够平直
	if depth >= 16 || (chordDeviation(p0, p3, p1) <= distance && chordDeviation(p0, p3, p2) <= distance) {
		*out = append(*out, p3)
		return
	}

	// de Casteljau 二分
	var (
		p01  = p0.Lerp(p1, 0.5)
		p12  = p1.Lerp(p2, 0.5)
		p23  = p2.Lerp(p3, 0.5)
		p012 = p01.Lerp(p12, 0.5)
		p123 = p12.Lerp(p23, 0.5)
		pm   = p012.Lerp(p123, 0.5)
	)

	flattenCurve4(p0, p01, p012, pm, distance, depth+1, out)
	flattenCurve4(pm, p123, p23, p3, distance, depth+1, out)
}
