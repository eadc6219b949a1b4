package draw

import (
	"strings"

	"github.com/zooyer/dxfdraw/entities"
)

// Layer 图层定义
type Layer struct {
	Name         string
	Color        string
	Linetype     string
	Lineweight   float64
	Transparency float64
	IsVisible    bool
}

// Context RenderContext 的默认实现：
// 图层表 + 块引用继承栈
type Context struct {
	layers     map[string]*Layer
	stack      []Properties
	background string
}

// NewContext 构造带默认状态的上下文
func NewContext() *Context {
	return &Context{
		layers: make(map[string]*Layer),
		stack: []Properties{{
			Color:     DefaultColor,
			Linetype:  "CONTINUOUS",
			IsVisible: true,
		}},
		background: DefaultBackground,
	}
}

// AddLayer 登记图层，名称不区分大小写
func (c *Context) AddLayer(layer Layer) {
	c.layers[strings.ToUpper(layer.Name)] = &layer
}

// SetBackground 设置背景色
func (c *Context) SetBackground(color string) {
	c.background = color
}

func (c *Context) BackgroundColor() string {
	return c.background
}

func (c *Context) current() Properties {
	return c.stack[len(c.stack)-1]
}

func (c *Context) layer(name string) *Layer {
	return c.layers[strings.ToUpper(name)]
}

// ResolveAll 解析实体的全部有效视觉属性
// 优先级：实体显式值 > 图层定义 > 当前继承状态
func (c *Context) ResolveAll(entity entities.Entity) Properties {
	var (
		base    = entity.Base()
		state   = c.current()
		layer   = c.layer(base.LayerName)
		resolve = Properties{
			Layer:     base.LayerName,
			IsVisible: c.IsVisible(entity),
		}
	)

	switch {
	case base.Color == "" || strings.EqualFold(base.Color, "BYLAYER"):
		if layer != nil && layer.Color != "" {
			resolve.Color = layer.Color
		} else {
			resolve.Color = state.Color
		}
	case strings.EqualFold(base.Color, "BYBLOCK"):
		resolve.Color = state.Color
	default:
		resolve.Color = base.Color
	}

	switch {
	case base.Linetype == "" || strings.EqualFold(base.Linetype, "BYLAYER"):
		if layer != nil && layer.Linetype != "" {
			resolve.Linetype = layer.Linetype
		} else {
			resolve.Linetype = state.Linetype
		}
	case strings.EqualFold(base.Linetype, "BYBLOCK"):
		resolve.Linetype = state.Linetype
	default:
		resolve.Linetype = base.Linetype
	}

	if base.Lineweight > 0 {
		resolve.Lineweight = base.Lineweight
	} else if layer != nil && layer.Lineweight > 0 {
		resolve.Lineweight = layer.Lineweight
	} else {
		resolve.Lineweight = state.Lineweight
	}

	if base.Transparency != nil {
		resolve.Transparency = *base.Transparency
	} else if layer != nil {
		resolve.Transparency = layer.Transparency
	} else {
		resolve.Transparency = state.Transparency
	}

	return resolve
}

// IsVisible 实体自身不可见或所在图层不可见则不绘制
func (c *Context) IsVisible(entity entities.Entity) bool {
	if entity.Base().Invisible {
		return false
	}

	if layer := c.layer(entity.Layer()); layer != nil && !layer.IsVisible {
		return false
	}

	return true
}

// PushState 进入块引用作用域
func (c *Context) PushState(properties Properties) {
	c.stack = append(c.stack, properties)
}

// PopState 离开块引用作用域，与 PushState 成对
func (c *Context) PopState() {
	if len(c.stack) > 1 {
		c.stack = c.stack[:len(c.stack)-1]
	}
}

// Depth 当前继承栈深度（含初始状态）
func (c *Context) Depth() int {
	return len(c.stack)
}
