package entities

import "github.com/zooyer/dxfdraw/core"

// Point 点标记实体
type Point struct {
	BaseEntity
	Location  core.Point
	Extrusion core.Point
}

func init() {
	Register("POINT", func() Entity {
		return &Point{BaseEntity: BaseEntity{TypeName: "POINT"}, Extrusion: core.ZAxis}
	})
}

// WCSLocation 位置的世界坐标
func (p *Point) WCSLocation() core.Point {
	return core.NewOCS(extrusionOrDefault(p.Extrusion)).ToWCS(p.Location)
}
