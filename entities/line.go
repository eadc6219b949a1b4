package entities

import "github.com/zooyer/dxfdraw/core"

// Line 直线段，坐标为世界坐标
type Line struct {
	BaseEntity
	Start, End core.Point
}

func init() {
	Register("LINE", func() Entity { return &Line{BaseEntity: BaseEntity{TypeName: "LINE"}} })
	Register("RAY", func() Entity { return &Ray{BaseEntity: BaseEntity{TypeName: "RAY"}} })
	Register("XLINE", func() Entity { return &XLine{BaseEntity: BaseEntity{TypeName: "XLINE"}} })
}

// Ray 射线：起点+单位方向，单方向无限延伸
type Ray struct {
	BaseEntity
	Start      core.Point
	UnitVector core.Point
}

// XLine 构造线：过起点双向无限延伸
type XLine struct {
	BaseEntity
	Start      core.Point
	UnitVector core.Point
}
