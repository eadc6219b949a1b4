package entities

import "github.com/zooyer/dxfdraw/core"

// Viewport 图纸空间视口
type Viewport struct {
	BaseEntity
	Center        core.Point
	Width, Height float64
	ViewDirection core.Point // 观察方向，零向量为退化视口
}

func init() {
	Register("VIEWPORT", func() Entity {
		return &Viewport{BaseEntity: BaseEntity{TypeName: "VIEWPORT"}, ViewDirection: core.ZAxis}
	})
}

// Footprint 视口的矩形轮廓（闭合，5 个顶点）
func (v *Viewport) Footprint() []core.Point {
	var (
		dx         = v.Width / 2
		dy         = v.Height / 2
		minX, minY = v.Center.X - dx, v.Center.Y - dy
		maxX, maxY = v.Center.X + dx, v.Center.Y + dy
	)

	return []core.Point{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
		{X: minX, Y: minY},
	}
}
