package entities

import (
	"strings"

	"github.com/zooyer/dxfdraw/core"
)

// Text 单行文字
type Text struct {
	BaseEntity
	Location  core.Point
	Content   string
	Height    float64 // 字高（cap height）
	Rotation  float64 // 角度制
	Extrusion core.Point
}

func init() {
	Register("TEXT", func() Entity {
		return &Text{BaseEntity: BaseEntity{TypeName: "TEXT"}, Extrusion: core.ZAxis}
	})
	Register("MTEXT", func() Entity {
		return &MText{BaseEntity: BaseEntity{TypeName: "MTEXT"}, LineSpacing: 1, Extrusion: core.ZAxis}
	})
}

func (t *Text) extrusion() core.Point { return extrusionOrDefault(t.Extrusion) }

// Lines 单行文字只有一行
func (t *Text) Lines() []string {
	return []string{t.Content}
}

// MText 多行文字，段落以 \P 分隔（DXF 约定），也接受普通换行
type MText struct {
	BaseEntity
	Location    core.Point
	Content     string
	CharHeight  float64
	LineSpacing float64 // 行距系数，基准行距为 5/3 字高
	Rotation    float64 // 角度制
	Extrusion   core.Point
}

func (m *MText) extrusion() core.Point { return extrusionOrDefault(m.Extrusion) }

// Lines 拆分为独立文字行
func (m *MText) Lines() []string {
	content := strings.ReplaceAll(m.Content, `\P`, "\n")
	if content == "" {
		return nil
	}

	return strings.Split(content, "\n")
}
