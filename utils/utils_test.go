package utils

import (
	"math"
	"testing"

	"github.com/zooyer/dxfdraw/core"
	"github.com/zooyer/dxfdraw/entities"
)

func TestGetAttrs(t *testing.T) {
	ins := &entities.Insert{
		Attributes: []*entities.Attrib{
			{Tag: "序号", Text: "C-1"},
			{Tag: "楼号", Text: "3#"},
		},
	}

	attrs := GetAttrs(ins)
	if len(attrs) != 2 {
		t.Fatalf("属性数不符: %v", attrs)
	}
	if GetAttr(ins, "序号") != "C-1" {
		t.Errorf("属性值不符: %q", GetAttr(ins, "序号"))
	}
	if GetAttr(ins, "不存在") != "" {
		t.Error("不存在的属性应为空")
	}
}

func TestEntityBBox(t *testing.T) {
	box, ok := EntityBBox(&entities.Line{Start: core.Point{X: -1, Y: 2}, End: core.Point{X: 3, Y: -4}})
	if !ok {
		t.Fatal("直线应有包围盒")
	}
	if box.Min != (core.Point{X: -1, Y: -4}) || box.Max != (core.Point{X: 3, Y: 2}) {
		t.Errorf("包围盒不符: %+v", box)
	}

	// 无法拆解的实体没有包围盒
	if _, ok = EntityBBox(&entities.TagStorage{BaseEntity: entities.BaseEntity{TypeName: "WIPEOUT"}}); ok {
		t.Error("原始实体不应有包围盒")
	}
}

func TestEntityBBox_Insert(t *testing.T) {
	block := &entities.Block{
		Name: "B",
		Entities: []entities.Entity{
			&entities.Line{Start: core.Point{}, End: core.Point{X: 1, Y: 1}},
		},
	}

	ins := &entities.Insert{
		BaseEntity:     entities.BaseEntity{TypeName: "INSERT"},
		BlockName:      "B",
		Block:          block,
		InsertionPoint: core.Point{X: 10},
		Scale:          core.Point{X: 2, Y: 2, Z: 1},
	}

	box, ok := EntityBBox(ins)
	if !ok {
		t.Fatal("块引用应有包围盒")
	}
	if !box.Min.IsClose(core.Point{X: 10}, 1e-9) || !box.Max.IsClose(core.Point{X: 12, Y: 2}, 1e-9) {
		t.Errorf("块引用包围盒不符: %+v", box)
	}
}

func TestTransformBBox(t *testing.T) {
	local := core.BBox{Min: core.Point{}, Max: core.Point{X: 1, Y: 1}}
	ins := &entities.Insert{
		InsertionPoint: core.Point{X: 10},
		Rotation:       90,
		Scale:          core.Point{X: 2, Y: 2, Z: 1},
	}

	box := TransformBBox(local, ins)
	if !box.Min.IsClose(core.Point{X: 8}, 1e-9) || !box.Max.IsClose(core.Point{X: 10, Y: 2}, 1e-9) {
		t.Errorf("变换后包围盒不符: %+v", box)
	}
}

func TestMergeBoxes(t *testing.T) {
	boxes := []core.BBox{
		{Min: core.Point{}, Max: core.Point{X: 1, Y: 1}},
		{Min: core.Point{X: 1.5}, Max: core.Point{X: 2.5, Y: 1}},    // 与第一个相距 0.5
		{Min: core.Point{X: 100}, Max: core.Point{X: 101, Y: 101}},  // 远离
	}

	merged := MergeBoxes(boxes, 1)
	if len(merged) != 2 {
		t.Fatalf("合并结果不符: %d", len(merged))
	}
	if merged[0].Max.X != 2.5 {
		t.Errorf("合并范围不符: %+v", merged[0])
	}

	// 间隙过小则不合并
	if got := MergeBoxes(boxes, 0.1); len(got) != 3 {
		t.Errorf("不应合并: %d", len(got))
	}
}

func TestIsSeparateAndInBox(t *testing.T) {
	var (
		a = core.BBox{Min: core.Point{}, Max: core.Point{X: 1, Y: 1}}
		b = core.BBox{Min: core.Point{X: 3}, Max: core.Point{X: 4, Y: 1}}
	)

	if !IsSeparate(a, b, 1) {
		t.Error("间隙 1 时应分离")
	}
	if IsSeparate(a, b, 3) {
		t.Error("间隙 3 时应相邻")
	}

	if !InBox(a, core.Point{X: 0.5, Y: 0.5}) {
		t.Error("盒内点判定失败")
	}
	if InBox(a, core.Point{X: 2}) {
		t.Error("盒外点判定失败")
	}
}

func TestGetDimValue(t *testing.T) {
	dim := &entities.Dimension{
		ActualMeasurement: 1234.567,
		Style:             &entities.DimStyle{Precision: 1},
	}

	if got := GetDimValue(dim); math.Abs(got-1234.6) > 1e-9 {
		t.Errorf("精度取整不符: %v", got)
	}

	// 手动文字覆盖优先
	dim = &entities.Dimension{Text: `\A1;1530`}
	if got := GetDimValue(dim); got != 1530 {
		t.Errorf("文字覆盖取值不符: %v", got)
	}

	// 含 <> 占位符时仍按实测值
	dim = &entities.Dimension{ActualMeasurement: 800, Text: "<> mm"}
	if got := GetDimValue(dim); got != 800 {
		t.Errorf("占位符取值不符: %v", got)
	}
}
