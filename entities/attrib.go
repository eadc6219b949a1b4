package entities

import "github.com/zooyer/dxfdraw/core"

// Attrib 块属性文字
type Attrib struct {
	BaseEntity
	Location  core.Point
	Tag       string // 属性标签，如 "序号"
	Text      string // 属性值
	Height    float64
	Rotation  float64
	Extrusion core.Point
}

func init() {
	Register("ATTRIB", func() Entity {
		return &Attrib{BaseEntity: BaseEntity{TypeName: "ATTRIB"}, Extrusion: core.ZAxis}
	})
}

func (a *Attrib) extrusion() core.Point { return extrusionOrDefault(a.Extrusion) }

func (a *Attrib) Lines() []string {
	return []string{a.Text}
}
