package entities

import (
	"math"

	"github.com/zooyer/dxfdraw/core"
)

// splineSubdivision 曲线边界细分系数：每条曲线边拆成的固定段数
const splineSubdivision = 10

// BoundaryEdge 填充边界上的一条边，坐标为边界平面内的二维对象坐标
type BoundaryEdge interface {
	Clone() BoundaryEdge
	// LineSegments 归一化为首尾相接的直线边
	LineSegments() []LineEdge
}

// LineEdge 直线边
type LineEdge struct {
	Start, End core.Point
}

func (e LineEdge) Clone() BoundaryEdge { return e }

func (e LineEdge) LineSegments() []LineEdge { return []LineEdge{e} }

// ArcEdge 圆弧边，角度制，CCW 为 false 时按顺时针解释
type ArcEdge struct {
	Center     core.Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	CCW        bool
}

func (e ArcEdge) Clone() BoundaryEdge { return e }

func (e ArcEdge) LineSegments() []LineEdge {
	var (
		start = core.Radians(e.StartAngle)
		end   = core.Radians(e.EndAngle)
	)

	if !e.CCW {
		start, end = end, start
	}
	if end <= start {
		end += core.Tau
	}

	points := make([]core.Point, 0, splineSubdivision+1)
	for _, t := range core.Linspace(start, end, splineSubdivision+1) {
		sin, cos := math.Sincos(t)
		points = append(points, e.Center.Add(core.Point{X: cos * e.Radius, Y: sin * e.Radius}))
	}

	return chainEdges(points)
}

// EllipseEdge 椭圆弧边，参数为弧度
type EllipseEdge struct {
	Center     core.Point
	MajorAxis  core.Point
	Ratio      float64
	StartParam float64
	EndParam   float64
	CCW        bool
}

func (e EllipseEdge) Clone() BoundaryEdge { return e }

func (e EllipseEdge) LineSegments() []LineEdge {
	ellipse := core.ConstructionEllipse{
		Center:     e.Center,
		MajorAxis:  e.MajorAxis,
		Ratio:      e.Ratio,
		StartParam: e.StartParam,
		EndParam:   e.EndParam,
		Extrusion:  core.ZAxis,
	}

	span := ellipse.ParamSpan()
	points := ellipse.Vertices(core.Linspace(e.StartParam, e.StartParam+span, splineSubdivision+1))
	if !e.CCW {
		for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
			points[i], points[j] = points[j], points[i]
		}
	}

	return chainEdges(points)
}

// SplineEdge 样条边界边
type SplineEdge struct {
	ControlPoints []core.Point
	Degree        int
}

func (e SplineEdge) Clone() BoundaryEdge {
	clone := e
	clone.ControlPoints = append([]core.Point(nil), e.ControlPoints...)

	return clone
}

func (e SplineEdge) LineSegments() []LineEdge {
	if len(e.ControlPoints) < 2 {
		return nil
	}

	return chainEdges(core.NewBSpline(e.ControlPoints, e.Degree).Approximate(splineSubdivision))
}

// PolylineEdge 多段线边界边（顶点带凸度）
type PolylineEdge struct {
	Points []LWVertex
	Closed bool
}

func (e PolylineEdge) Clone() BoundaryEdge {
	clone := e
	clone.Points = append([]LWVertex(nil), e.Points...)

	return clone
}

// LineSegments 凸度弧段按固定系数细分为直线
func (e PolylineEdge) LineSegments() []LineEdge {
	if len(e.Points) < 2 {
		return nil
	}

	var (
		edges = make([]LineEdge, 0, len(e.Points))
		count = len(e.Points) - 1
	)

	if e.Closed && len(e.Points) > 2 {
		count = len(e.Points)
	}

	for i := 0; i < count; i++ {
		var (
			v1 = e.Points[i]
			v2 = e.Points[(i+1)%len(e.Points)]
			p1 = core.Point{X: v1.X, Y: v1.Y}
			p2 = core.Point{X: v2.X, Y: v2.Y}
		)

		if v1.Bulge == 0 || p1 == p2 {
			edges = append(edges, LineEdge{Start: p1, End: p2})
			continue
		}

		center, start, end, radius := BulgeToArc(p1, p2, v1.Bulge)
		if end <= start {
			end += core.Tau
		}

		points := make([]core.Point, 0, splineSubdivision+1)
		for _, t := range core.Linspace(start, end, splineSubdivision+1) {
			sin, cos := math.Sincos(t)
			points = append(points, center.Add(core.Point{X: cos * radius, Y: sin * radius}))
		}
		if v1.Bulge < 0 {
			// 负凸度弧段方向与顶点顺序相反，翻转回来保持边界连续
			for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
				points[i], points[j] = points[j], points[i]
			}
		}

		edges = append(edges, chainEdges(points)...)
	}

	return edges
}

func chainEdges(points []core.Point) []LineEdge {
	if len(points) < 2 {
		return nil
	}

	edges := make([]LineEdge, 0, len(points)-1)
	for i := 0; i+1 < len(points); i++ {
		edges = append(edges, LineEdge{Start: points[i], End: points[i+1]})
	}

	return edges
}

// BoundaryPath 一个边界回路
type BoundaryPath struct {
	Edges []BoundaryEdge
}

// Clone 深拷贝，归一化永远不触碰源实体
func (p *BoundaryPath) Clone() *BoundaryPath {
	edges := make([]BoundaryEdge, len(p.Edges))
	for i, e := range p.Edges {
		edges[i] = e.Clone()
	}

	return &BoundaryPath{Edges: edges}
}

// LineEdges 归一化为仅含直线边的回路
func (p *BoundaryPath) LineEdges() []LineEdge {
	var edges []LineEdge
	for _, e := range p.Edges {
		edges = append(edges, e.LineSegments()...)
	}

	return edges
}

// Hatch 填充实体，边界坐标为对象坐标平面内的二维点
type Hatch struct {
	BaseEntity
	Paths     []*BoundaryPath
	Elevation float64 // 边界平面的固定高程
	Extrusion core.Point
}

func init() {
	Register("HATCH", func() Entity {
		return &Hatch{BaseEntity: BaseEntity{TypeName: "HATCH"}, Extrusion: core.ZAxis}
	})
}

func (h *Hatch) extrusion() core.Point { return extrusionOrDefault(h.Extrusion) }

// OCS 填充边界所在对象坐标系
func (h *Hatch) OCS() core.OCS {
	return core.NewOCS(h.extrusion())
}

// NormalizedPaths 深拷贝所有边界并归一化为直线边回路
func (h *Hatch) NormalizedPaths() [][]LineEdge {
	paths := make([][]LineEdge, 0, len(h.Paths))
	for _, p := range h.Paths {
		paths = append(paths, p.Clone().LineEdges())
	}

	return paths
}
