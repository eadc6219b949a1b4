package entities

import "github.com/zooyer/dxfdraw/core"

// Solid 填充四边形/三角形，顶点为世界坐标
type Solid struct {
	BaseEntity
	Vtx    [4]core.Point
	Has4th bool
}

func init() {
	Register("SOLID", func() Entity { return &Solid{BaseEntity: BaseEntity{TypeName: "SOLID"}} })
	Register("TRACE", func() Entity { return &Trace{BaseEntity: BaseEntity{TypeName: "TRACE"}} })
	Register("3DFACE", func() Entity { return &Face3D{BaseEntity: BaseEntity{TypeName: "3DFACE"}} })
}

// Trace 与 Solid 等价，但顶点存储为对象坐标（带拉伸时需转世界坐标）
type Trace struct {
	BaseEntity
	Vtx       [4]core.Point
	Has4th    bool
	Extrusion core.Point
}

// Face3D 三维面，顶点为世界坐标，按边绘制而不填充
type Face3D struct {
	BaseEntity
	Vtx    [4]core.Point
	Has4th bool
}

// quadPoints 提取 3 或 4 个有效角点：
// 缺第 4 点或第 4 点与第 3 点重合时按三角形处理
func quadPoints(vtx [4]core.Point, has4th bool) []core.Point {
	if !has4th || vtx[3] == vtx[2] {
		return []core.Point{vtx[0], vtx[1], vtx[2]}
	}

	return []core.Point{vtx[0], vtx[1], vtx[2], vtx[3]}
}

func (s *Solid) Points() []core.Point { return quadPoints(s.Vtx, s.Has4th) }

func (f *Face3D) Points() []core.Point { return quadPoints(f.Vtx, f.Has4th) }

// Points Trace 带拉伸时先做对象坐标到世界坐标的转换
// Solid 直接存世界坐标，这个不对称是 DXF 规范遗留，必须保留
func (t *Trace) Points() []core.Point {
	points := quadPoints(t.Vtx, t.Has4th)
	if t.Extrusion != (core.Point{}) && !t.Extrusion.IsClose(core.ZAxis, 1e-9) {
		points = core.NewOCS(t.Extrusion).PointsToWCS(points)
	}

	return points
}
