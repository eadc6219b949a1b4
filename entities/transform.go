package entities

import (
	"fmt"
	"math"

	"github.com/zooyer/dxfdraw/core"
)

// TransformPoint 将局部坐标点经过 Insert 变换转换到父级/世界坐标
// 变换顺序：缩放 -> 旋转 -> 平移
func TransformPoint(p core.Point, ins *Insert) core.Point {
	rad := core.Radians(ins.Rotation)
	cos, sin := math.Cos(rad), math.Sin(rad)

	// 1. 缩放
	tx := p.X * ins.Scale.X
	ty := p.Y * ins.Scale.Y
	tz := p.Z * ins.Scale.Z

	// 2. 旋转
	rx := tx*cos - ty*sin
	ry := tx*sin + ty*cos

	// 3. 平移
	return core.Point{
		X: rx + ins.InsertionPoint.X,
		Y: ry + ins.InsertionPoint.Y,
		Z: tz + ins.InsertionPoint.Z,
	}
}

// transformDirection 只做缩放和旋转，不平移（用于方向向量）
func transformDirection(v core.Point, ins *Insert) core.Point {
	rad := core.Radians(ins.Rotation)
	cos, sin := math.Cos(rad), math.Sin(rad)

	tx := v.X * ins.Scale.X
	ty := v.Y * ins.Scale.Y

	return core.Point{
		X: tx*cos - ty*sin,
		Y: tx*sin + ty*cos,
		Z: v.Z * ins.Scale.Z,
	}
}

// CombineInserts 合并嵌套块的变换矩阵逻辑
func CombineInserts(parent, child *Insert) *Insert {
	// 1. 旋转叠加
	combinedRotation := parent.Rotation + child.Rotation

	// 2. 缩放叠加
	combinedScale := core.Point{
		X: parent.Scale.X * child.Scale.X,
		Y: parent.Scale.Y * child.Scale.Y,
		Z: parent.Scale.Z * child.Scale.Z,
	}

	// 3. 插入点叠加：子块的插入点需要经过父块的 缩放 -> 旋转 -> 平移 变换
	combinedInsertionPoint := TransformPoint(child.InsertionPoint, parent)

	return &Insert{
		BaseEntity:     child.BaseEntity,
		BlockName:      child.BlockName,
		Block:          child.Block,
		Rotation:       combinedRotation,
		Scale:          combinedScale,
		InsertionPoint: combinedInsertionPoint,
		Attributes:     child.Attributes,
		Extrusion:      child.Extrusion,
	}
}

// uniformScale 块引用是否为均匀无镜像缩放
func uniformScale(ins *Insert) bool {
	return ins.Scale.X == ins.Scale.Y && ins.Scale.X > 0
}

// TransformEntity 将块内实体按块引用变换为世界坐标下的虚拟实体
// 源实体不被修改；无法表达的变换返回 ErrUnsupportedTransform
func TransformEntity(entity Entity, ins *Insert) (Entity, error) {
	switch e := entity.(type) {
	case *Line:
		clone := *e
		clone.Start = TransformPoint(e.Start, ins)
		clone.End = TransformPoint(e.End, ins)
		return &clone, nil

	case *Ray:
		clone := *e
		clone.Start = TransformPoint(e.Start, ins)
		clone.UnitVector = transformDirection(e.UnitVector, ins).Normalize()
		return &clone, nil

	case *XLine:
		clone := *e
		clone.Start = TransformPoint(e.Start, ins)
		clone.UnitVector = transformDirection(e.UnitVector, ins).Normalize()
		return &clone, nil

	case *Point:
		clone := *e
		clone.Location = TransformPoint(e.Location, ins)
		return &clone, nil

	case *Circle:
		// 非默认拉伸的圆在块内极少见，角度方向不可靠，不做猜测
		if core.IsSpatial(e.extrusion()) || e.extrusion().IsClose(core.NegZAxis, 1e-9) {
			return nil, fmt.Errorf("%w: 非默认拉伸的圆 (handle=%q)", ErrUnsupportedTransform, e.Handle)
		}
		if uniformScale(ins) {
			clone := *e
			clone.Center = TransformPoint(e.Center, ins)
			clone.Radius = e.Radius * ins.Scale.X
			return &clone, nil
		}
		// 非均匀缩放把圆变成椭圆
		return &Ellipse{
			BaseEntity: childBase(&e.BaseEntity, "ELLIPSE"),
			Center:     TransformPoint(e.Center, ins),
			MajorAxis:  transformDirection(core.Point{X: e.Radius}, ins),
			Ratio:      ratioAfterScale(ins, 1),
			EndParam:   core.Tau,
			Extrusion:  core.ZAxis,
		}, nil

	case *Arc:
		if core.IsSpatial(e.extrusion()) || e.extrusion().IsClose(core.NegZAxis, 1e-9) {
			return nil, fmt.Errorf("%w: 非默认拉伸的圆弧 (handle=%q)", ErrUnsupportedTransform, e.Handle)
		}
		if uniformScale(ins) {
			clone := *e
			clone.Center = TransformPoint(e.Center, ins)
			clone.Radius = e.Radius * ins.Scale.X
			clone.StartAngle = e.StartAngle + ins.Rotation
			clone.EndAngle = e.EndAngle + ins.Rotation
			return &clone, nil
		}
		return nil, fmt.Errorf("%w: 非均匀缩放的圆弧 (handle=%q)", ErrUnsupportedTransform, e.Handle)

	case *Ellipse:
		if uniformScale(ins) {
			clone := *e
			clone.Center = TransformPoint(e.Center, ins)
			clone.MajorAxis = transformDirection(e.MajorAxis, ins)
			return &clone, nil
		}
		return nil, fmt.Errorf("%w: 非均匀缩放的椭圆 (handle=%q)", ErrUnsupportedTransform, e.Handle)

	case *Text:
		clone := *e
		clone.Location = TransformPoint(e.Location, ins)
		clone.Rotation = e.Rotation + ins.Rotation
		clone.Height = e.Height * math.Abs(ins.Scale.Y)
		return &clone, nil

	case *MText:
		clone := *e
		clone.Location = TransformPoint(e.Location, ins)
		clone.Rotation = e.Rotation + ins.Rotation
		clone.CharHeight = e.CharHeight * math.Abs(ins.Scale.Y)
		return &clone, nil

	case *Attrib:
		clone := *e
		clone.Location = TransformPoint(e.Location, ins)
		clone.Rotation = e.Rotation + ins.Rotation
		clone.Height = e.Height * math.Abs(ins.Scale.Y)
		return &clone, nil

	case *LWPolyline:
		clone := *e
		clone.Points = make([]LWVertex, len(e.Points))
		bulgeSign := 1.0
		if ins.Scale.X*ins.Scale.Y < 0 {
			// 镜像翻转弧段方向
			bulgeSign = -1
		}
		for i, v := range e.Points {
			p := TransformPoint(core.Point{X: v.X, Y: v.Y, Z: e.Elevation}, ins)
			clone.Points[i] = LWVertex{X: p.X, Y: p.Y, Bulge: v.Bulge * bulgeSign}
		}
		clone.Elevation = 0
		clone.Extrusion = core.ZAxis
		return &clone, nil

	case *Polyline:
		clone := *e
		clone.Vertices = make([]PolylineVertex, len(e.Vertices))
		for i, v := range e.Vertices {
			clone.Vertices[i] = PolylineVertex{Location: TransformPoint(v.Location, ins), Bulge: v.Bulge}
		}
		return &clone, nil

	case *Solid:
		clone := *e
		for i, p := range e.Vtx {
			clone.Vtx[i] = TransformPoint(p, ins)
		}
		return &clone, nil

	case *Trace:
		clone := *e
		points := e.Points() // 先转世界坐标再变换
		for i := range points {
			points[i] = TransformPoint(points[i], ins)
		}
		for i := range clone.Vtx {
			if i < len(points) {
				clone.Vtx[i] = points[i]
			} else {
				clone.Vtx[i] = points[len(points)-1]
			}
		}
		clone.Extrusion = core.Point{}
		return &clone, nil

	case *Face3D:
		clone := *e
		for i, p := range e.Vtx {
			clone.Vtx[i] = TransformPoint(p, ins)
		}
		return &clone, nil

	case *Spline:
		clone := *e
		clone.ControlPoints = make([]core.Point, len(e.ControlPoints))
		for i, p := range e.ControlPoints {
			clone.ControlPoints[i] = TransformPoint(p, ins)
		}
		return &clone, nil

	case *Insert:
		return CombineInserts(ins, e), nil

	default:
		return nil, fmt.Errorf("%w: 块内实体 %s", ErrUnsupportedTransform, entity.Type())
	}
}

// ratioAfterScale 非均匀缩放后的短长轴比
func ratioAfterScale(ins *Insert, ratio float64) float64 {
	var (
		major = math.Abs(ins.Scale.X)
		minor = math.Abs(ins.Scale.Y) * ratio
	)

	if major == 0 {
		return ratio
	}

	return minor / major
}
