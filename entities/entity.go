package entities

import (
	"errors"

	"github.com/zooyer/dxfdraw/core"
)

var (
	// ErrNoBlock 块引用未关联块定义
	ErrNoBlock = errors.New("entities: insert has no block reference")
	// ErrUnsupportedTransform 实体不支持按块引用做坐标变换
	ErrUnsupportedTransform = errors.New("entities: unsupported transform")
)

// Entity 是一切几何实体的接口
type Entity interface {
	Type() string
	Layer() string
	Base() *BaseEntity
}

// Composite 组合实体：自身不直接绘制，按需展开为虚拟子实体
// 展开失败时整个子树放弃绘制
type Composite interface {
	Entity
	VirtualEntities() ([]Entity, error)
}

// BaseEntity 存放所有实体通用的属性（如 Layer, Color, Handle）
// Color/Linetype 为空表示随层，Transparency 为 nil 表示未显式设置
type BaseEntity struct {
	TypeName     string
	LayerName    string
	Handle       string
	Color        string
	Linetype     string
	Lineweight   float64
	Transparency *float64
	Invisible    bool
}

func (b *BaseEntity) Type() string { return b.TypeName }

func (b *BaseEntity) Layer() string { return b.LayerName }

func (b *BaseEntity) Base() *BaseEntity { return b }

// SetTransparency 显式设置透明度（0 不透明 - 1 全透明）
func (b *BaseEntity) SetTransparency(value float64) {
	b.Transparency = &value
}

// Block 块定义：一组按名字引用的实体
type Block struct {
	Name     string
	Entities []Entity
}

// DimStyle 标注样式
type DimStyle struct {
	Name      string
	Precision int     // 对应组码 271 DIMDEC，显示的小数位数
	ExLimit   float64 // 对应组码 44 DIMEXE，标注线超出延伸线的长度
	Scale     float64 // 对应组码 40 DIMSCALE，全局比例，影响所有标注特征
}

// extrusionOrDefault 零值拉伸按世界 +Z 处理
func extrusionOrDefault(extrusion core.Point) core.Point {
	if extrusion == (core.Point{}) {
		return core.ZAxis
	}

	return extrusion
}
