package entities

import (
	"math"

	"github.com/zooyer/dxfdraw/core"
)

// LWVertex 轻量多段线顶点，Bulge 表示到下一个顶点的弧段凸度
type LWVertex struct {
	X, Y  float64
	Bulge float64
}

// LWPolyline 轻量多段线，顶点为对象坐标
type LWPolyline struct {
	BaseEntity
	Points    []LWVertex
	Elevation float64
	Closed    bool
	Extrusion core.Point
}

func init() {
	Register("LWPOLYLINE", func() Entity {
		return &LWPolyline{BaseEntity: BaseEntity{TypeName: "LWPOLYLINE"}, Extrusion: core.ZAxis}
	})
	Register("POLYLINE", func() Entity {
		return &Polyline{BaseEntity: BaseEntity{TypeName: "POLYLINE"}, Extrusion: core.ZAxis}
	})
}

func (l *LWPolyline) extrusion() core.Point { return extrusionOrDefault(l.Extrusion) }

// WCSPoints 顶点的世界坐标（带高程）
func (l *LWPolyline) WCSPoints() []core.Point {
	var (
		ocs    = core.NewOCS(l.extrusion())
		points = make([]core.Point, len(l.Points))
	)

	for i, v := range l.Points {
		points[i] = ocs.ToWCS(core.Point{X: v.X, Y: v.Y, Z: l.Elevation})
	}

	return points
}

// VirtualEntities 展开为直线段与弧段（按顶点凸度）
func (l *LWPolyline) VirtualEntities() []Entity {
	return expandPolylineSegments(&l.BaseEntity, l.Points, l.Elevation, l.Closed, l.extrusion())
}

// PolylineMode 多段线形态
type PolylineMode int

const (
	// Mode2D 平面多段线
	Mode2D PolylineMode = iota
	// Mode3D 三维多段线
	Mode3D
	// ModePolygonMesh M×N 多边形网格
	ModePolygonMesh
	// ModePolyfaceMesh 多面网格（顶点表+面表）
	ModePolyfaceMesh
)

// PolylineVertex 重量级多段线顶点
type PolylineVertex struct {
	Location core.Point
	Bulge    float64
}

// Polyline 重量级多段线，可编码三维网格
type Polyline struct {
	BaseEntity
	Mode      PolylineMode
	Vertices  []PolylineVertex
	Closed    bool
	Elevation float64
	Extrusion core.Point

	// 网格形态字段
	MCount, NCount   int  // 多边形网格行列数
	MClosed, NClosed bool // 网格行列方向是否闭合
	Faces            [][]int
}

func (p *Polyline) extrusion() core.Point { return extrusionOrDefault(p.Extrusion) }

// IsPolygonMesh 是否为多边形网格
func (p *Polyline) IsPolygonMesh() bool { return p.Mode == ModePolygonMesh }

// IsPolyfaceMesh 是否为多面网格
func (p *Polyline) IsPolyfaceMesh() bool { return p.Mode == ModePolyfaceMesh }

// VirtualEntities 非网格形态展开为直线段与弧段
func (p *Polyline) VirtualEntities() []Entity {
	points := make([]LWVertex, len(p.Vertices))
	for i, v := range p.Vertices {
		points[i] = LWVertex{X: v.Location.X, Y: v.Location.Y, Bulge: v.Bulge}
	}

	if p.Mode == Mode3D {
		// 三维多段线忽略凸度，顶点直接连线
		entities := make([]Entity, 0, len(p.Vertices))
		for i := 0; i+1 < len(p.Vertices); i++ {
			entities = append(entities, &Line{
				BaseEntity: childBase(&p.BaseEntity, "LINE"),
				Start:      p.Vertices[i].Location,
				End:        p.Vertices[i+1].Location,
			})
		}
		if p.Closed && len(p.Vertices) > 2 {
			entities = append(entities, &Line{
				BaseEntity: childBase(&p.BaseEntity, "LINE"),
				Start:      p.Vertices[len(p.Vertices)-1].Location,
				End:        p.Vertices[0].Location,
			})
		}
		return entities
	}

	return expandPolylineSegments(&p.BaseEntity, points, p.Elevation, p.Closed, p.extrusion())
}

// MeshBuilder 网格形态转换为面/顶点结构
func (p *Polyline) MeshBuilder() *core.MeshBuilder {
	builder := core.NewMeshBuilder()
	for _, v := range p.Vertices {
		builder.AddVertex(v.Location)
	}

	switch p.Mode {
	case ModePolyfaceMesh:
		for _, face := range p.Faces {
			builder.AddIndexedFace(face...)
		}
	case ModePolygonMesh:
		var (
			m = p.MCount
			n = p.NCount
		)

		if m*n != len(p.Vertices) {
			return builder
		}

		rows, cols := m-1, n-1
		if p.MClosed {
			rows = m
		}
		if p.NClosed {
			cols = n
		}

		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				builder.AddIndexedFace(
					i*n+j,
					((i+1)%m)*n+j,
					((i+1)%m)*n+(j+1)%n,
					i*n+(j+1)%n,
				)
			}
		}
	}

	return builder
}

// childBase 虚拟子实体继承父实体的图层与样式
func childBase(parent *BaseEntity, typeName string) BaseEntity {
	base := *parent
	base.TypeName = typeName
	base.Handle = ""

	return base
}

// expandPolylineSegments 按顶点凸度展开为直线/圆弧虚拟实体
func expandPolylineSegments(parent *BaseEntity, points []LWVertex, elevation float64, closed bool, extrusion core.Point) []Entity {
	if len(points) < 2 {
		return nil
	}

	segments := make([]Entity, 0, len(points))

	count := len(points) - 1
	if closed && len(points) > 2 {
		count = len(points)
	}

	for i := 0; i < count; i++ {
		var (
			v1 = points[i]
			v2 = points[(i+1)%len(points)]
		)

		segments = append(segments, segmentEntity(parent, v1, v2, elevation, extrusion))
	}

	return segments
}

func segmentEntity(parent *BaseEntity, v1, v2 LWVertex, elevation float64, extrusion core.Point) Entity {
	var (
		ocs = core.NewOCS(extrusion)
		p1  = core.Point{X: v1.X, Y: v1.Y, Z: elevation}
		p2  = core.Point{X: v2.X, Y: v2.Y, Z: elevation}
	)

	if v1.Bulge == 0 || (v1.X == v2.X && v1.Y == v2.Y) {
		return &Line{
			BaseEntity: childBase(parent, "LINE"),
			Start:      ocs.ToWCS(p1),
			End:        ocs.ToWCS(p2),
		}
	}

	center, startAngle, endAngle, radius := BulgeToArc(p1, p2, v1.Bulge)
	arc := &Arc{
		BaseEntity: childBase(parent, "ARC"),
		Center:     core.Point{X: center.X, Y: center.Y, Z: elevation},
		Radius:     radius,
		StartAngle: core.Degrees(startAngle),
		EndAngle:   core.Degrees(endAngle),
		Extrusion:  extrusion,
	}

	return arc
}

// BulgeToArc 由弧段两端点与凸度求圆弧参数
// 返回对象坐标圆心、起止角（弧度，逆时针）与半径
func BulgeToArc(p1, p2 core.Point, bulge float64) (center core.Point, startAngle, endAngle, radius float64) {
	var (
		alpha = 4 * math.Atan(bulge)
		chord = p2.Sub(p1)
		dir   = math.Atan2(chord.Y, chord.X)
	)

	// 带符号半径：负凸度（顺时针弧）圆心落在另一侧
	signed := chord.Length() / (2 * math.Sin(alpha/2))
	angle := dir + (math.Pi/2 - alpha/2)

	center = core.Point{
		X: p1.X + signed*math.Cos(angle),
		Y: p1.Y + signed*math.Sin(angle),
		Z: p1.Z,
	}

	startAngle = core.NormalizeAngle(math.Atan2(p1.Y-center.Y, p1.X-center.X))
	endAngle = core.NormalizeAngle(math.Atan2(p2.Y-center.Y, p2.X-center.X))
	if bulge < 0 {
		startAngle, endAngle = endAngle, startAngle
	}

	return center, startAngle, endAngle, math.Abs(signed)
}
