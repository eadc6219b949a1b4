// Package dxfdraw 将 DXF 图形实体分解为与后端无关的绘图图元。
//
// 核心分为两条路径：
//   - draw.Frontend 递归遍历实体（含块引用、标注等组合实体的虚拟展开），
//     解析继承属性后向后端发出有序绘制调用；
//   - disassemble.MakePrimitive 把单个实体转换为路径或网格图元，
//     用于测量、采样和包围盒计算，不依赖任何渲染后端。
//
// 本库不负责 DXF 文件的读写，Drawing 只是内存中的实体容器。
package dxfdraw

import (
	"strings"

	"github.com/zooyer/dxfdraw/draw"
	"github.com/zooyer/dxfdraw/entities"
)

// Drawing 内存中的图形容器：块定义、标注样式与顶层实体
type Drawing struct {
	Blocks    map[string]*entities.Block
	Entities  []entities.Entity
	DimStyles map[string]*entities.DimStyle
}

// NewDrawing 构造空图形
func NewDrawing() *Drawing {
	return &Drawing{
		Blocks:    make(map[string]*entities.Block),
		Entities:  make([]entities.Entity, 0, 1024),
		DimStyles: make(map[string]*entities.DimStyle),
	}
}

// AddBlock 登记块定义，名称不区分大小写
func (d *Drawing) AddBlock(block *entities.Block) {
	d.Blocks[strings.ToUpper(block.Name)] = block
}

// AddDimStyle 登记标注样式
func (d *Drawing) AddDimStyle(style *entities.DimStyle) {
	d.DimStyles[strings.ToUpper(style.Name)] = style
}

// Add 追加顶层实体
func (d *Drawing) Add(list ...entities.Entity) {
	d.Entities = append(d.Entities, list...)
}

// ResolveReferences 按名称关联所有块引用与标注样式，
// 块内嵌套的引用一并处理；找不到定义的引用保持未关联，
// 展开时按可恢复失败处理而不是在这里报错
func (d *Drawing) ResolveReferences() {
	for _, e := range d.Entities {
		d.resolveEntity(e)
	}
	for _, block := range d.Blocks {
		for _, e := range block.Entities {
			d.resolveEntity(e)
		}
	}
}

func (d *Drawing) resolveEntity(e entities.Entity) {
	switch v := e.(type) {
	case *entities.Insert:
		if v.Block == nil {
			v.Block = d.Blocks[strings.ToUpper(v.BlockName)]
		}
	case *entities.Dimension:
		if v.Style == nil {
			v.Style = d.DimStyles[strings.ToUpper(v.StyleName)]
		}
		if v.Geometry != nil {
			for _, sub := range v.Geometry.Entities {
				d.resolveEntity(sub)
			}
		}
	}
}

// Render 以给定上下文与后端渲染全部顶层实体
func (d *Drawing) Render(ctx draw.RenderContext, out draw.Backend, finalize bool) {
	frontend := draw.NewFrontend(ctx, out)
	frontend.Draw(d.Entities, finalize)
}
