package draw

import "github.com/zooyer/dxfdraw/entities"

// 颜色使用 #RRGGBB 十六进制字符串
const (
	// DefaultColor 默认前景色
	DefaultColor = "#000000"
	// DefaultBackground 默认背景色
	DefaultBackground = "#ffffff"
	// ViewportColor 视口轮廓的固定标记色
	ViewportColor = "#aaaaaa"
)

// Properties 实体在当前绘制上下文中解析后的视觉属性
// 每个实体单独解析，兄弟实体之间不复用
type Properties struct {
	Color        string
	Layer        string
	Linetype     string
	Lineweight   float64
	Transparency float64 // 0 不透明 - 1 全透明
	IsVisible    bool
}

// RenderContext 属性继承上下文，由调用方持有
// PushState/PopState 在进入/离开块引用作用域时成对调用
// 同一个实例不允许并发用于多个遍历
type RenderContext interface {
	ResolveAll(entity entities.Entity) Properties
	IsVisible(entity entities.Entity) bool
	PushState(properties Properties)
	PopState()
	BackgroundColor() string
}
