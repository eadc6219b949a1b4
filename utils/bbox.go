package utils

import (
	"math"

	"github.com/zooyer/dxfdraw/core"
	"github.com/zooyer/dxfdraw/disassemble"
	"github.com/zooyer/dxfdraw/entities"
)

// EntityBBox 单个实体的世界坐标包围盒
// 组合实体（块引用、标注）递归展开后合并，无法拆解的实体返回 ok=false
func EntityBBox(entity entities.Entity) (box core.BBox, ok bool) {
	for leaf := range disassemble.RecursiveDecompose([]entities.Entity{entity}) {
		for v := range disassemble.MakePrimitive(leaf).Vertices() {
			if !ok {
				box, ok = core.NewBBox(v), true
				continue
			}
			box = box.ExtendPoint(v)
		}
	}

	return
}

// EntitiesBBox 一组实体的总包围盒
func EntitiesBBox(list []entities.Entity) (box core.BBox, ok bool) {
	for _, entity := range list {
		sub, valid := EntityBBox(entity)
		if !valid {
			continue
		}
		if !ok {
			box, ok = sub, true
			continue
		}
		box = box.Extend(sub)
	}

	return
}

// TransformBBox 执行矩阵变换：将局部坐标变换到插入点所在的世界坐标
func TransformBBox(local core.BBox, ins *entities.Insert) core.BBox {
	rad := core.Radians(ins.Rotation)
	cos, sin := math.Cos(rad), math.Sin(rad)

	corners := []core.Point{
		{X: local.Min.X, Y: local.Min.Y, Z: local.Min.Z},
		{X: local.Max.X, Y: local.Min.Y, Z: local.Min.Z},
		{X: local.Max.X, Y: local.Max.Y, Z: local.Min.Z},
		{X: local.Min.X, Y: local.Max.Y, Z: local.Min.Z},
		{X: local.Min.X, Y: local.Min.Y, Z: local.Max.Z},
		{X: local.Max.X, Y: local.Min.Y, Z: local.Max.Z},
		{X: local.Max.X, Y: local.Max.Y, Z: local.Max.Z},
		{X: local.Min.X, Y: local.Max.Y, Z: local.Max.Z},
	}

	wMinX, wMinY, wMinZ := math.MaxFloat64, math.MaxFloat64, math.MaxFloat64
	wMaxX, wMaxY, wMaxZ := -math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64

	for _, p := range corners {
		// 缩放
		tx, ty, tz := p.X*ins.Scale.X, p.Y*ins.Scale.Y, p.Z*ins.Scale.Z

		// XY 旋转（绕 Z 轴）
		rx := tx*cos - ty*sin
		ry := tx*sin + ty*cos

		// 平移
		wx, wy, wz := rx+ins.InsertionPoint.X, ry+ins.InsertionPoint.Y, tz+ins.InsertionPoint.Z

		wMinX = math.Min(wMinX, wx)
		wMinY = math.Min(wMinY, wy)
		wMinZ = math.Min(wMinZ, wz)
		wMaxX = math.Max(wMaxX, wx)
		wMaxY = math.Max(wMaxY, wy)
		wMaxZ = math.Max(wMaxZ, wz)
	}

	return core.BBox{
		Min: core.Point{X: wMinX, Y: wMinY, Z: wMinZ},
		Max: core.Point{X: wMaxX, Y: wMaxY, Z: wMaxZ},
	}
}

// MergeBoxes 合并重叠的矩形
func MergeBoxes(boxes []core.BBox, gap float64) []core.BBox {
	if len(boxes) < 2 {
		return boxes
	}

	for {
		changed := false
		var merged []core.BBox
		visited := make([]bool, len(boxes))
		for i := 0; i < len(boxes); i++ {
			if visited[i] {
				continue
			}
			curr := boxes[i]
			visited[i] = true
			for j := i + 1; j < len(boxes); j++ {
				if !visited[j] && !IsSeparate(curr, boxes[j], gap) {
					curr.Min.X = math.Min(curr.Min.X, boxes[j].Min.X)
					curr.Min.Y = math.Min(curr.Min.Y, boxes[j].Min.Y)
					curr.Max.X = math.Max(curr.Max.X, boxes[j].Max.X)
					curr.Max.Y = math.Max(curr.Max.Y, boxes[j].Max.Y)
					visited[j], changed = true, true
				}
			}
			merged = append(merged, curr)
		}
		boxes = merged
		if !changed {
			break
		}
	}

	return boxes
}

// IsSeparate 判断两个 BBox 是否完全分离
func IsSeparate(a, b core.BBox, gap float64) bool {
	return a.Max.X+gap < b.Min.X || a.Min.X-gap > b.Max.X ||
		a.Max.Y+gap < b.Min.Y || a.Min.Y-gap > b.Max.Y
}

func InBox(box core.BBox, point core.Point) bool {
	if point.X >= box.Min.X && point.X <= box.Max.X && point.Y >= box.Min.Y && point.Y <= box.Max.Y {
		return true
	}

	return false
}
