package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/zooyer/dxfdraw"
	"github.com/zooyer/dxfdraw/core"
	"github.com/zooyer/dxfdraw/disassemble"
	"github.com/zooyer/dxfdraw/draw"
	"github.com/zooyer/dxfdraw/entities"
	"github.com/zooyer/dxfdraw/utils"
	"github.com/zooyer/golib/xmath"
	"github.com/zooyer/golib/xos"
)

const (
	winW    = 1200 // 演示窗户宽度
	winH    = 1500 // 演示窗户高度
	epsilon = 1    // 浮点数对比精度误差(误差不超过则认为相同)
)

// buildDrawing 构造演示图形：窗户块 + 两个引用 + 宽高标注 + 散件
func buildDrawing() *dxfdraw.Drawing {
	doc := dxfdraw.NewDrawing()

	doc.AddDimStyle(&entities.DimStyle{Name: "STD", Precision: 0, ExLimit: 1.25, Scale: 100})

	// 窗户块：外框 + 十字分格
	frame := &entities.LWPolyline{
		BaseEntity: entities.BaseEntity{TypeName: "LWPOLYLINE", LayerName: "PJ"},
		Points: []entities.LWVertex{
			{X: 0, Y: 0}, {X: winW, Y: 0}, {X: winW, Y: winH}, {X: 0, Y: winH},
		},
		Closed: true,
	}
	doc.AddBlock(&entities.Block{
		Name: "WIN",
		Entities: []entities.Entity{
			frame,
			&entities.Line{
				BaseEntity: entities.BaseEntity{TypeName: "LINE", LayerName: "PJ"},
				Start:      core.Point{X: winW / 2}, End: core.Point{X: winW / 2, Y: winH},
			},
			&entities.Line{
				BaseEntity: entities.BaseEntity{TypeName: "LINE", LayerName: "PJ"},
				Start:      core.Point{Y: winH / 2}, End: core.Point{X: winW, Y: winH / 2},
			},
		},
	})

	// 两个窗户引用，第二个带属性文字
	doc.Add(&entities.Insert{
		BaseEntity:     entities.BaseEntity{TypeName: "INSERT", LayerName: "PJ"},
		BlockName:      "WIN",
		InsertionPoint: core.Point{X: 0, Y: 0},
		Scale:          core.Point{X: 1, Y: 1, Z: 1},
	})
	doc.Add(&entities.Insert{
		BaseEntity:     entities.BaseEntity{TypeName: "INSERT", LayerName: "PJ"},
		BlockName:      "WIN",
		InsertionPoint: core.Point{X: 2000, Y: 0},
		Scale:          core.Point{X: 1, Y: 1, Z: 1},
		Attributes: []*entities.Attrib{
			{
				BaseEntity: entities.BaseEntity{TypeName: "ATTRIB", LayerName: "SC"},
				Location:   core.Point{X: 2000, Y: -200},
				Tag:        "序号", Text: "C-2", Height: 100,
			},
			{
				BaseEntity: entities.BaseEntity{TypeName: "ATTRIB", LayerName: "SC"},
				Location:   core.Point{X: 2000, Y: -350},
				Tag:        "楼号", Text: "3#", Height: 100,
			},
		},
	})

	// 宽度标注（水平）与高度标注（垂直），挂到第一个窗户上
	doc.Add(&entities.Dimension{
		BaseEntity:        entities.BaseEntity{TypeName: "DIMENSION", LayerName: "BZ"},
		StyleName:         "STD",
		ActualMeasurement: winW,
		Angle:             0,
		DefPoint:          core.Point{Y: -300},
		TextMidPoint:      core.Point{X: winW / 2, Y: -250},
		MeasureStart:      core.Point{X: 0, Y: 0},
		MeasureEnd:        core.Point{X: winW, Y: 0},
	})
	doc.Add(&entities.Dimension{
		BaseEntity:        entities.BaseEntity{TypeName: "DIMENSION", LayerName: "BZ"},
		StyleName:         "STD",
		ActualMeasurement: winH,
		Angle:             90,
		DefPoint:          core.Point{X: -300},
		TextMidPoint:      core.Point{X: -250, Y: winH / 2},
		MeasureStart:      core.Point{X: 0, Y: 0},
		MeasureEnd:        core.Point{X: 0, Y: winH},
	})

	// 散件：圆、弧、样条、带弧段的多段线、填充
	doc.Add(
		&entities.Circle{
			BaseEntity: entities.BaseEntity{TypeName: "CIRCLE", LayerName: "PJ"},
			Center:     core.Point{X: 4000, Y: 750}, Radius: 300,
		},
		&entities.Arc{
			BaseEntity: entities.BaseEntity{TypeName: "ARC", LayerName: "PJ"},
			Center:     core.Point{X: 4000, Y: 750}, Radius: 450,
			StartAngle: 0, EndAngle: 180,
		},
		&entities.Spline{
			BaseEntity: entities.BaseEntity{TypeName: "SPLINE", LayerName: "PJ"},
			Degree:     3,
			ControlPoints: []core.Point{
				{X: 3500, Y: 0}, {X: 3800, Y: 400}, {X: 4200, Y: -400}, {X: 4500, Y: 0},
			},
		},
		&entities.LWPolyline{
			BaseEntity: entities.BaseEntity{TypeName: "LWPOLYLINE", LayerName: "PJ"},
			Points: []entities.LWVertex{
				{X: 5000, Y: 0}, {X: 5600, Y: 0, Bulge: 0.5}, {X: 5600, Y: 800},
			},
		},
		&entities.Hatch{
			BaseEntity: entities.BaseEntity{TypeName: "HATCH", LayerName: "PJ"},
			Paths: []*entities.BoundaryPath{
				{
					Edges: []entities.BoundaryEdge{
						entities.LineEdge{Start: core.Point{X: 6000, Y: 0}, End: core.Point{X: 6400, Y: 0}},
						entities.LineEdge{Start: core.Point{X: 6400, Y: 0}, End: core.Point{X: 6200, Y: 400}},
						entities.LineEdge{Start: core.Point{X: 6200, Y: 400}, End: core.Point{X: 6000, Y: 0}},
					},
				},
			},
		},
	)

	return doc
}

func renderBool(b bool) string {
	if b {
		return "✅"
	}

	return "❌"
}

func main() {
	defer xos.PauseExit()

	// 渲染期间的诊断信息直接打到终端
	draw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	doc := buildDrawing()
	doc.ResolveReferences()

	// 1. 渲染到录制后端，统计绘制调用
	ctx := draw.NewContext()
	ctx.AddLayer(draw.Layer{Name: "PJ", Color: "#00ff00", IsVisible: true})
	ctx.AddLayer(draw.Layer{Name: "BZ", Color: "#ff0000", IsVisible: true})
	ctx.AddLayer(draw.Layer{Name: "SC", Color: "#0000ff", IsVisible: true})

	rec := draw.NewRecorder(draw.FeatureSplines)
	doc.Render(ctx, rec, true)

	fmt.Printf("渲染完成: 共 %d 条调用\n", len(rec.Records))
	fmt.Println("    |-- 直线:", rec.Count(draw.RecordLine))
	fmt.Println("    |-- 圆弧:", rec.Count(draw.RecordArc))
	fmt.Println("    |-- 样条:", rec.Count(draw.RecordSpline))
	fmt.Println("    |-- 填充:", rec.Count(draw.RecordFilledPolygon))
	fmt.Println("    |-- 文字:", rec.Count(draw.RecordText))
	fmt.Println("    |-- 忽略:", rec.IgnoredTypes)

	// 2. 提取窗户散线包围盒并合并
	var boxes []core.BBox
	for _, entity := range doc.Entities {
		if ins, ok := entity.(*entities.Insert); ok && ins.BlockName == "WIN" {
			if box, ok := utils.EntityBBox(ins); ok {
				boxes = append(boxes, box)
			}
		}
	}
	boxes = utils.MergeBoxes(boxes, 20)
	sort.Slice(boxes, func(i, j int) bool { return boxes[i].Min.X < boxes[j].Min.X })

	// 3. 标注与窗户宽高交叉验证
	var dims []*entities.Dimension
	for _, entity := range doc.Entities {
		if dim, ok := entity.(*entities.Dimension); ok {
			dims = append(dims, dim)
		}
	}

	// 4. 选择报告输出位置，取消则用默认文件名
	filename, err := zenity.SelectFileSave(
		zenity.Title("保存识别报告"),
		zenity.Filename("report.csv"),
		zenity.ConfirmOverwrite(),
	)
	if err != nil || filename == "" {
		filename = "report.csv"
	}

	const header = "序号,宽度,高度,测量宽度,测量高度,校验\n"
	if err = os.WriteFile(filename, []byte(header), 0644); err != nil {
		panic(err)
	}
	fmt.Println("写入文件:", filename)

	for i, box := range boxes {
		var (
			width  = box.Width()
			height = box.Height()
			okW    bool
			okH    bool
		)

		for _, dim := range dims {
			value := utils.GetDimValue(dim)
			switch int(dim.Angle) {
			case 0, 180:
				okW = okW || xmath.Equal(value, width, epsilon)
			case 90, 270:
				okH = okH || xmath.Equal(value, height, epsilon)
			}
		}

		fmt.Printf("    [窗户%d] | %.0f x %.0f | 宽%s 高%s\n",
			i+1, width, height, renderBool(okW), renderBool(okH),
		)

		line := fmt.Sprintf("%d,%d,%d,%.0f,%.0f,%s\n",
			i+1, winW, winH, width, height, renderBool(okW && okH),
		)
		if err = xos.AppendFile(filename, []byte(line), 0644); err != nil {
			panic(err)
		}
	}

	// 5. 整图包围盒（含标注合成几何）
	if total, ok := utils.EntitiesBBox(doc.Entities); ok {
		fmt.Printf("整图范围: RECTANG %.2f,%.2f %.2f,%.2f\n",
			total.Min.X, total.Min.Y, total.Max.X, total.Max.Y)
	}

	// 6. 图元拆解概览
	var leafs int
	for range disassemble.RecursiveDecompose(doc.Entities) {
		leafs++
	}
	fmt.Printf("拆解完成: %d 个叶子实体, 忽略 %s\n",
		leafs, strings.Join(rec.IgnoredTypes, ","))
}
