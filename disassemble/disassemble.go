// Package disassemble 把 DXF 实体拆解为纯几何图元（路径或网格），
// 供包围盒、碰撞检测等只关心顶点的场景使用
package disassemble

import (
	"iter"
	"math"

	"github.com/zooyer/dxfdraw/core"
	"github.com/zooyer/dxfdraw/entities"
)

const (
	// maxFlatteningDistance 路径展平为顶点时的默认弦高误差
	maxFlatteningDistance = 0.01

	circleSegments = 64  // 整圆采样段数
	splineSegments = 100 // 非三次样条采样段数
)

// Primitive 单个实体的几何图元：路径或网格，二者至多取其一
// 不支持的实体两者皆空，顶点序列为空
type Primitive struct {
	Entity entities.Entity
	Path   *core.Path
	Mesh   *core.MeshBuilder

	// MaxFlatteningDistance 路径展平误差，零值用默认值
	MaxFlatteningDistance float64
}

// Vertices 图元的顶点序列
// 路径按弦高误差展平；网格直接给出顶点；空图元不产出任何点
func (p Primitive) Vertices() iter.Seq[core.Point] {
	switch {
	case p.Path != nil:
		distance := p.MaxFlatteningDistance
		if distance <= 0 {
			distance = maxFlatteningDistance
		}
		return func(yield func(core.Point) bool) {
			for _, v := range p.Path.Flattening(distance) {
				if !yield(v) {
					return
				}
			}
		}
	case p.Mesh != nil:
		return func(yield func(core.Point) bool) {
			for _, v := range p.Mesh.Vertices {
				if !yield(v) {
					return
				}
			}
		}
	default:
		return func(func(core.Point) bool) {}
	}
}

// IsEmpty 实体无法拆解时为真
func (p Primitive) IsEmpty() bool {
	return p.Path == nil && p.Mesh == nil
}

// MakePrimitive 把单个实体拆解为几何图元，永不失败：
// 组合实体（块引用、标注）与不支持的实体返回空图元，
// 组合实体应先经 RecursiveDecompose 展开
func MakePrimitive(entity entities.Entity) Primitive {
	primitive := Primitive{Entity: entity}

	switch e := entity.(type) {
	case *entities.Point:
		primitive.Path = core.NewPath(e.WCSLocation())

	case *entities.Line:
		path := core.NewPath(e.Start)
		path.LineTo(e.End)
		primitive.Path = path

	case *entities.Circle:
		primitive.Path = ellipsePath(e.ConstructionTool())
	case *entities.Arc:
		primitive.Path = ellipsePath(e.ConstructionTool())
	case *entities.Ellipse:
		primitive.Path = ellipsePath(e.ConstructionTool())

	case *entities.Spline:
		primitive.Path = splinePath(e.ConstructionTool())

	case *entities.LWPolyline:
		primitive.Path = polylinePath(e.Points, e.Elevation, e.Closed, extrusion(e.Extrusion))

	case *entities.Polyline:
		if e.IsPolygonMesh() || e.IsPolyfaceMesh() {
			primitive.Mesh = e.MeshBuilder()
			break
		}
		if e.Mode == entities.Mode2D {
			points := make([]entities.LWVertex, len(e.Vertices))
			for i, v := range e.Vertices {
				points[i] = entities.LWVertex{X: v.Location.X, Y: v.Location.Y, Bulge: v.Bulge}
			}
			primitive.Path = polylinePath(points, e.Elevation, e.Closed, extrusion(e.Extrusion))
			break
		}
		// 三维多段线忽略凸度，顶点直接连线
		primitive.Path = vertexPath(polylinePoints(e), e.Closed)

	case *entities.Mesh:
		primitive.Mesh = e.MeshBuilder()

	case *entities.Solid:
		primitive.Path = quadPath(e.Points())
	case *entities.Trace:
		primitive.Path = quadPath(e.Points())
	case *entities.Face3D:
		primitive.Path = quadPath(e.Points())

	case *entities.Viewport:
		primitive.Path = vertexPath(e.Footprint(), false)
	}

	return primitive
}

// ellipsePath 圆/弧/椭圆按固定段数采样为折线路径，弧按比例取更少段数
func ellipsePath(ellipse core.ConstructionEllipse) *core.Path {
	var (
		span     = ellipse.ParamSpan()
		segments = int(float64(circleSegments) * span / core.Tau)
	)
	if segments < 2 {
		segments = 2
	}

	return vertexPath(ellipse.Vertices(core.Linspace(ellipse.StartParam, ellipse.StartParam+span, segments+1)), false)
}

// splinePath 三次样条且恰好 4 个控制点时走精确贝塞尔，其余采样
func splinePath(spline *core.BSpline) *core.Path {
	if spline.Degree == 3 && len(spline.ControlPoints) == 4 {
		cp := spline.ControlPoints
		path := core.NewPath(cp[0])
		path.Curve4To(cp[3], cp[1], cp[2])
		return path
	}

	return vertexPath(spline.Approximate(splineSegments), false)
}

func vertexPath(points []core.Point, closed bool) *core.Path {
	if len(points) == 0 {
		return nil
	}

	path := core.NewPath(points[0])
	for _, p := range points[1:] {
		path.LineTo(p)
	}

	if closed && len(points) > 2 && points[len(points)-1] != points[0] {
		path.LineTo(points[0])
	}

	return path
}

// quadPath 填充四边形闭合为 5 顶点路径，三角形保持开放
func quadPath(points []core.Point) *core.Path {
	return vertexPath(points, len(points) == 4)
}

// polylinePath 平面多段线按存储顶点与凸度建路径：
// 凸度为零的段直接连线，弧段按圆弧采样后转为世界坐标
func polylinePath(points []entities.LWVertex, elevation float64, closed bool, extrusion core.Point) *core.Path {
	if len(points) == 0 {
		return nil
	}

	ocs := core.NewOCS(extrusion)
	path := core.NewPath(ocs.ToWCS(core.Point{X: points[0].X, Y: points[0].Y, Z: elevation}))

	count := len(points) - 1
	if closed && len(points) > 2 {
		count = len(points)
	}

	for i := 0; i < count; i++ {
		var (
			v1 = points[i]
			v2 = points[(i+1)%len(points)]
			p1 = core.Point{X: v1.X, Y: v1.Y, Z: elevation}
			p2 = core.Point{X: v2.X, Y: v2.Y, Z: elevation}
		)

		if v1.Bulge == 0 || (v1.X == v2.X && v1.Y == v2.Y) {
			path.LineTo(ocs.ToWCS(p2))
			continue
		}

		for _, p := range bulgeArcPoints(p1, p2, v1.Bulge) {
			path.LineTo(ocs.ToWCS(core.Point{X: p.X, Y: p.Y, Z: elevation}))
		}
	}

	return path
}

// bulgeArcPoints 弧段在对象坐标内的采样点，不含起点，顺序从 p1 到 p2
func bulgeArcPoints(p1, p2 core.Point, bulge float64) []core.Point {
	center, start, end, radius := entities.BulgeToArc(p1, p2, bulge)

	span := core.NormalizeAngle(end - start)
	segments := int(float64(circleSegments) * span / core.Tau)
	if segments < 2 {
		segments = 2
	}

	points := make([]core.Point, 0, segments+1)
	for _, angle := range core.Linspace(start, start+span, segments+1) {
		points = append(points, core.Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		})
	}

	// 负凸度时 BulgeToArc 已交换起止角，翻转采样序恢复 p1 -> p2 方向
	if bulge < 0 {
		for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
			points[i], points[j] = points[j], points[i]
		}
	}

	return points[1:]
}

// polylinePoints 三维多段线顶点，凸度忽略
func polylinePoints(e *entities.Polyline) []core.Point {
	points := make([]core.Point, 0, len(e.Vertices))
	for _, v := range e.Vertices {
		points = append(points, v.Location)
	}

	return points
}

func extrusion(v core.Point) core.Point {
	if v == (core.Point{}) {
		return core.ZAxis
	}

	return v
}

// ToPrimitives 逐个拆解，顺序与输入一致
func ToPrimitives(list []entities.Entity) iter.Seq[Primitive] {
	return func(yield func(Primitive) bool) {
		for _, entity := range list {
			if !yield(MakePrimitive(entity)) {
				return
			}
		}
	}
}

// ToVertices 汇总全部实体的顶点，空图元自然跳过
func ToVertices(list []entities.Entity) iter.Seq[core.Point] {
	return func(yield func(core.Point) bool) {
		for primitive := range ToPrimitives(list) {
			for v := range primitive.Vertices() {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// RecursiveDecompose 递归展开组合实体，只产出可直接拆解的叶子实体
// 展开失败的子树整体跳过
func RecursiveDecompose(list []entities.Entity) iter.Seq[entities.Entity] {
	return func(yield func(entities.Entity) bool) {
		decompose(list, yield)
	}
}

func decompose(list []entities.Entity, yield func(entities.Entity) bool) bool {
	for _, entity := range list {
		if composite, ok := entity.(entities.Composite); ok {
			if insert, ok := entity.(*entities.Insert); ok {
				for _, attrib := range insert.Attributes {
					if !yield(attrib) {
						return false
					}
				}
			}

			children, err := composite.VirtualEntities()
			if err != nil {
				continue
			}
			if !decompose(children, yield) {
				return false
			}
			continue
		}

		if !yield(entity) {
			return false
		}
	}

	return true
}
