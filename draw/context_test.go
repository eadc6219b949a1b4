package draw

import (
	"testing"

	"github.com/zooyer/dxfdraw/entities"
)

func TestContext_ResolveAll_Precedence(t *testing.T) {
	ctx := NewContext()
	ctx.AddLayer(Layer{Name: "PJ", Color: "#00ff00", Linetype: "DASHED", Lineweight: 0.5, IsVisible: true})

	// 实体显式值优先
	explicit := &entities.Line{BaseEntity: entities.BaseEntity{
		LayerName: "PJ", Color: "#123456", Linetype: "HIDDEN", Lineweight: 1.2,
	}}
	p := ctx.ResolveAll(explicit)
	if p.Color != "#123456" || p.Linetype != "HIDDEN" || p.Lineweight != 1.2 {
		t.Errorf("显式属性解析不符: %+v", p)
	}

	// 随层取图层定义
	byLayer := &entities.Line{BaseEntity: entities.BaseEntity{LayerName: "PJ"}}
	p = ctx.ResolveAll(byLayer)
	if p.Color != "#00ff00" || p.Linetype != "DASHED" || p.Lineweight != 0.5 {
		t.Errorf("随层属性解析不符: %+v", p)
	}

	// 图层不存在时回落到当前继承状态
	orphan := &entities.Line{BaseEntity: entities.BaseEntity{LayerName: "NOPE"}}
	p = ctx.ResolveAll(orphan)
	if p.Color != DefaultColor || p.Linetype != "CONTINUOUS" {
		t.Errorf("缺省状态解析不符: %+v", p)
	}
}

func TestContext_ResolveAll_ByBlock(t *testing.T) {
	ctx := NewContext()
	ctx.PushState(Properties{Color: "#ff0000", Linetype: "CENTER", IsVisible: true})

	e := &entities.Line{BaseEntity: entities.BaseEntity{Color: "BYBLOCK", Linetype: "BYBLOCK"}}
	p := ctx.ResolveAll(e)
	if p.Color != "#ff0000" || p.Linetype != "CENTER" {
		t.Errorf("BYBLOCK 应取继承状态: %+v", p)
	}

	ctx.PopState()
	p = ctx.ResolveAll(e)
	if p.Color != DefaultColor {
		t.Errorf("出栈后应回到初始状态: %+v", p)
	}
}

func TestContext_Transparency(t *testing.T) {
	ctx := NewContext()
	ctx.AddLayer(Layer{Name: "PJ", Transparency: 0.5, IsVisible: true})

	e := &entities.Line{BaseEntity: entities.BaseEntity{LayerName: "PJ"}}
	if p := ctx.ResolveAll(e); p.Transparency != 0.5 {
		t.Errorf("未显式设置时应取图层透明度: %v", p.Transparency)
	}

	e.SetTransparency(0)
	if p := ctx.ResolveAll(e); p.Transparency != 0 {
		t.Errorf("显式透明度应优先: %v", p.Transparency)
	}
}

func TestContext_IsVisible(t *testing.T) {
	ctx := NewContext()
	ctx.AddLayer(Layer{Name: "HIDDEN", IsVisible: false})
	ctx.AddLayer(Layer{Name: "SHOWN", IsVisible: true})

	if ctx.IsVisible(&entities.Line{BaseEntity: entities.BaseEntity{LayerName: "HIDDEN"}}) {
		t.Error("不可见图层上的实体应不可见")
	}
	if !ctx.IsVisible(&entities.Line{BaseEntity: entities.BaseEntity{LayerName: "SHOWN"}}) {
		t.Error("可见图层上的实体应可见")
	}
	if ctx.IsVisible(&entities.Line{BaseEntity: entities.BaseEntity{LayerName: "SHOWN", Invisible: true}}) {
		t.Error("实体自身不可见标志应优先")
	}
}

func TestContext_PushPopFloor(t *testing.T) {
	ctx := NewContext()

	// 多余的出栈不破坏初始状态
	ctx.PopState()
	ctx.PopState()
	if ctx.Depth() != 1 {
		t.Fatalf("初始状态被弹出: depth=%d", ctx.Depth())
	}

	ctx.PushState(Properties{Color: "#ff0000"})
	ctx.PushState(Properties{Color: "#00ff00"})
	ctx.PopState()
	if ctx.Depth() != 2 {
		t.Errorf("栈深度不符: %d", ctx.Depth())
	}
}

func TestContext_LayerNameCase(t *testing.T) {
	ctx := NewContext()
	ctx.AddLayer(Layer{Name: "Bz", Color: "#ff0000", IsVisible: true})

	e := &entities.Line{BaseEntity: entities.BaseEntity{LayerName: "BZ"}}
	if p := ctx.ResolveAll(e); p.Color != "#ff0000" {
		t.Errorf("图层名应不区分大小写: %+v", p)
	}
}
