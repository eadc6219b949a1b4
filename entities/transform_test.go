package entities

import (
	"errors"
	"math"
	"testing"

	"github.com/zooyer/dxfdraw/core"
)

func insertAt(x, y, rotation float64, scale core.Point) *Insert {
	return &Insert{
		BaseEntity:     BaseEntity{TypeName: "INSERT"},
		InsertionPoint: core.Point{X: x, Y: y},
		Rotation:       rotation,
		Scale:          scale,
	}
}

func TestTransformPoint(t *testing.T) {
	// 缩放 2 倍 -> 旋转 90 度 -> 平移 (10, 0)
	ins := insertAt(10, 0, 90, core.Point{X: 2, Y: 2, Z: 2})

	got := TransformPoint(core.Point{X: 1}, ins)
	if !got.IsClose(core.Point{X: 10, Y: 2}, 1e-9) {
		t.Errorf("变换结果不符: %+v", got)
	}

	// Z 只缩放平移，不参与旋转
	got = TransformPoint(core.Point{Z: 3}, ins)
	if !got.IsClose(core.Point{X: 10, Z: 6}, 1e-9) {
		t.Errorf("Z 分量处理不符: %+v", got)
	}
}

func TestCombineInserts(t *testing.T) {
	var (
		parent = insertAt(10, 0, 90, core.Point{X: 2, Y: 2, Z: 1})
		child  = insertAt(1, 0, 45, core.Point{X: 3, Y: 3, Z: 1})
	)

	combined := CombineInserts(parent, child)

	if combined.Rotation != 135 {
		t.Errorf("旋转叠加不符: %v", combined.Rotation)
	}
	if combined.Scale != (core.Point{X: 6, Y: 6, Z: 1}) {
		t.Errorf("缩放叠加不符: %+v", combined.Scale)
	}
	// 子插入点经过父级变换: (1,0) 缩放到 (2,0)，旋转 90 度到 (0,2)，平移到 (10,2)
	if !combined.InsertionPoint.IsClose(core.Point{X: 10, Y: 2}, 1e-9) {
		t.Errorf("插入点叠加不符: %+v", combined.InsertionPoint)
	}
}

func TestTransformEntity_Line(t *testing.T) {
	ins := insertAt(5, 5, 0, core.Point{X: 1, Y: 1, Z: 1})
	src := &Line{Start: core.Point{}, End: core.Point{X: 1}}

	out, err := TransformEntity(src, ins)
	if err != nil {
		t.Fatalf("直线变换失败: %v", err)
	}

	line := out.(*Line)
	if line.Start != (core.Point{X: 5, Y: 5}) || line.End != (core.Point{X: 6, Y: 5}) {
		t.Errorf("直线变换结果不符: %+v -> %+v", line.Start, line.End)
	}

	// 源实体不被修改
	if src.Start != (core.Point{}) {
		t.Errorf("源实体被意外修改: %+v", src.Start)
	}
}

func TestTransformEntity_CircleUniform(t *testing.T) {
	ins := insertAt(0, 0, 0, core.Point{X: 2, Y: 2, Z: 2})

	out, err := TransformEntity(&Circle{Center: core.Point{X: 1}, Radius: 3}, ins)
	if err != nil {
		t.Fatalf("圆变换失败: %v", err)
	}

	circle := out.(*Circle)
	if circle.Radius != 6 || circle.Center != (core.Point{X: 2}) {
		t.Errorf("均匀缩放圆不符: center=%+v radius=%v", circle.Center, circle.Radius)
	}
}

func TestTransformEntity_CircleNonUniform(t *testing.T) {
	ins := insertAt(0, 0, 0, core.Point{X: 2, Y: 1, Z: 1})

	out, err := TransformEntity(&Circle{Radius: 1}, ins)
	if err != nil {
		t.Fatalf("圆变换失败: %v", err)
	}

	// 非均匀缩放把圆变成椭圆
	ellipse, ok := out.(*Ellipse)
	if !ok {
		t.Fatalf("期望椭圆, 得到 %T", out)
	}
	if !ellipse.MajorAxis.IsClose(core.Point{X: 2}, 1e-9) {
		t.Errorf("长轴不符: %+v", ellipse.MajorAxis)
	}
	if math.Abs(ellipse.Ratio-0.5) > 1e-9 {
		t.Errorf("短长轴比不符: %v", ellipse.Ratio)
	}
}

func TestTransformEntity_ArcRejectsNegZ(t *testing.T) {
	ins := insertAt(0, 0, 0, core.Point{X: 1, Y: 1, Z: 1})

	_, err := TransformEntity(&Arc{Radius: 1, Extrusion: core.NegZAxis}, ins)
	if !errors.Is(err, ErrUnsupportedTransform) {
		t.Fatalf("-Z 拉伸圆弧应拒绝变换: %v", err)
	}
}

func TestTransformEntity_MirrorFlipsBulge(t *testing.T) {
	// X 方向镜像翻转弧段方向
	ins := insertAt(0, 0, 0, core.Point{X: -1, Y: 1, Z: 1})
	src := &LWPolyline{Points: []LWVertex{{X: 0, Bulge: 0.5}, {X: 1}}}

	out, err := TransformEntity(src, ins)
	if err != nil {
		t.Fatalf("多段线变换失败: %v", err)
	}

	poly := out.(*LWPolyline)
	if poly.Points[0].Bulge != -0.5 {
		t.Errorf("镜像后凸度应翻转: %v", poly.Points[0].Bulge)
	}
	if src.Points[0].Bulge != 0.5 {
		t.Errorf("源实体凸度被修改: %v", src.Points[0].Bulge)
	}
}

func TestInsert_VirtualEntities(t *testing.T) {
	block := &Block{
		Name: "B",
		Entities: []Entity{
			&Line{Start: core.Point{}, End: core.Point{X: 1}},
			&Circle{Center: core.Point{}, Radius: 1},
		},
	}

	ins := insertAt(10, 0, 0, core.Point{X: 1, Y: 1, Z: 1})
	ins.BlockName = "B"
	ins.Block = block

	children, err := ins.VirtualEntities()
	if err != nil {
		t.Fatalf("展开失败: %v", err)
	}
	if len(children) != 2 {
		t.Fatalf("子实体数不符: %d", len(children))
	}
}

func TestInsert_VirtualEntities_NoBlock(t *testing.T) {
	ins := insertAt(0, 0, 0, core.Point{X: 1, Y: 1, Z: 1})
	ins.BlockName = "MISSING"

	_, err := ins.VirtualEntities()
	if !errors.Is(err, ErrNoBlock) {
		t.Fatalf("未关联块应返回 ErrNoBlock: %v", err)
	}
}

func TestInsert_VirtualEntities_FailsAsWhole(t *testing.T) {
	// 任何一个子实体变换失败都视为整体展开失败
	block := &Block{
		Name: "B",
		Entities: []Entity{
			&Line{Start: core.Point{}, End: core.Point{X: 1}},
			&Arc{Radius: 1, Extrusion: core.NegZAxis},
		},
	}

	ins := insertAt(0, 0, 0, core.Point{X: 1, Y: 1, Z: 1})
	ins.Block = block

	children, err := ins.VirtualEntities()
	if !errors.Is(err, ErrUnsupportedTransform) {
		t.Fatalf("期望 ErrUnsupportedTransform: %v", err)
	}
	if children != nil {
		t.Errorf("失败时不应返回部分子实体: %v", children)
	}
}

func TestTransformEntity_NestedInsert(t *testing.T) {
	var (
		parent = insertAt(10, 0, 0, core.Point{X: 1, Y: 1, Z: 1})
		child  = insertAt(1, 1, 0, core.Point{X: 1, Y: 1, Z: 1})
	)

	out, err := TransformEntity(child, parent)
	if err != nil {
		t.Fatalf("嵌套块变换失败: %v", err)
	}

	combined := out.(*Insert)
	if !combined.InsertionPoint.IsClose(core.Point{X: 11, Y: 1}, 1e-9) {
		t.Errorf("嵌套插入点不符: %+v", combined.InsertionPoint)
	}
}
