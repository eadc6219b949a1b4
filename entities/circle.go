package entities

import (
	"math"

	"github.com/zooyer/dxfdraw/core"
)

// Circle 圆，圆心为对象坐标（拉伸非默认时）
type Circle struct {
	BaseEntity
	Center    core.Point
	Radius    float64
	Extrusion core.Point
}

func init() {
	Register("CIRCLE", func() Entity {
		return &Circle{BaseEntity: BaseEntity{TypeName: "CIRCLE"}, Extrusion: core.ZAxis}
	})
	Register("ARC", func() Entity {
		return &Arc{BaseEntity: BaseEntity{TypeName: "ARC"}, EndAngle: 360, Extrusion: core.ZAxis}
	})
	Register("ELLIPSE", func() Entity {
		return &Ellipse{
			BaseEntity: BaseEntity{TypeName: "ELLIPSE"},
			Ratio:      1,
			EndParam:   core.Tau,
			Extrusion:  core.ZAxis,
		}
	})
}

// Extrusion 为零值时视为 +Z
func (c *Circle) extrusion() core.Point { return extrusionOrDefault(c.Extrusion) }

// WCSCenter 圆心的世界坐标
func (c *Circle) WCSCenter() core.Point {
	return core.NewOCS(c.extrusion()).ToWCS(c.Center)
}

// ConstructionTool 统一成椭圆构造表示
func (c *Circle) ConstructionTool() core.ConstructionEllipse {
	return core.EllipseFromArc(c.Center, c.Radius, c.extrusion(), 0, 360)
}

// Arc 圆弧，角度为角度制，绕拉伸方向逆时针
type Arc struct {
	BaseEntity
	Center     core.Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Extrusion  core.Point
}

func (a *Arc) extrusion() core.Point { return extrusionOrDefault(a.Extrusion) }

func (a *Arc) WCSCenter() core.Point {
	return core.NewOCS(a.extrusion()).ToWCS(a.Center)
}

func (a *Arc) ConstructionTool() core.ConstructionEllipse {
	return core.EllipseFromArc(a.Center, a.Radius, a.extrusion(), a.StartAngle, a.EndAngle)
}

// Ellipse 椭圆，圆心与长轴为世界坐标，参数为弧度
type Ellipse struct {
	BaseEntity
	Center     core.Point
	MajorAxis  core.Point
	Ratio      float64 // 短长轴比 height/width
	StartParam float64
	EndParam   float64
	Extrusion  core.Point
}

func (e *Ellipse) extrusion() core.Point { return extrusionOrDefault(e.Extrusion) }

func (e *Ellipse) ConstructionTool() core.ConstructionEllipse {
	return core.ConstructionEllipse{
		Center:     e.Center,
		MajorAxis:  e.MajorAxis,
		Ratio:      e.Ratio,
		StartParam: e.StartParam,
		EndParam:   e.EndParam,
		Extrusion:  e.extrusion().Normalize(),
	}
}

// MajorAxisAngle 长轴在世界坐标下的角度，归一化到 [0, 2π)
func (e *Ellipse) MajorAxisAngle() float64 {
	return core.NormalizeAngle(math.Atan2(e.MajorAxis.Y, e.MajorAxis.X))
}
