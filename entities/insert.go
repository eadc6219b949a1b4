package entities

import (
	"fmt"

	"github.com/zooyer/dxfdraw/core"
)

// Insert 块引用
type Insert struct {
	BaseEntity
	BlockName      string
	Block          *Block // 由 Drawing.ResolveReferences 关联，未关联时展开失败
	InsertionPoint core.Point
	Scale          core.Point
	Rotation       float64 // 角度制
	Attributes     []*Attrib
	Extrusion      core.Point
}

func init() {
	Register("INSERT", func() Entity {
		return &Insert{
			BaseEntity: BaseEntity{TypeName: "INSERT"},
			Scale:      core.Point{X: 1, Y: 1, Z: 1}, // 默认缩放为 1
			Extrusion:  core.ZAxis,
		}
	})
}

// VirtualEntities 将块内容按插入点、缩放、旋转变换到世界坐标
// 任何一个子实体变换失败都视为整体展开失败
func (i *Insert) VirtualEntities() ([]Entity, error) {
	if i.Block == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoBlock, i.BlockName)
	}

	children := make([]Entity, 0, len(i.Block.Entities))
	for _, e := range i.Block.Entities {
		child, err := TransformEntity(e, i)
		if err != nil {
			return nil, fmt.Errorf("块 %q 展开失败: %w", i.BlockName, err)
		}
		children = append(children, child)
	}

	return children, nil
}
