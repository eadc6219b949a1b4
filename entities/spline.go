package entities

import "github.com/zooyer/dxfdraw/core"

// Spline B 样条实体，控制点为世界坐标
type Spline struct {
	BaseEntity
	ControlPoints []core.Point
	Degree        int
	Knots         []float64
}

func init() {
	Register("SPLINE", func() Entity {
		return &Spline{BaseEntity: BaseEntity{TypeName: "SPLINE"}, Degree: 3}
	})
}

// ConstructionTool 转为解析曲线，节点向量缺省按均匀钳制生成
func (s *Spline) ConstructionTool() *core.BSpline {
	spline := core.NewBSpline(s.ControlPoints, s.Degree)
	if len(s.Knots) == len(s.ControlPoints)+spline.Degree+1 {
		spline.Knots = s.Knots
	}

	return spline
}
