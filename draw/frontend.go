package draw

import (
	"github.com/zooyer/dxfdraw/core"
	"github.com/zooyer/dxfdraw/entities"
)

// infiniteLineLength 射线/构造线按固定长度线段近似（图纸单位）
const infiniteLineLength = 25

const (
	defaultCircleResolution = 100 // 整圆近似段数，弧按比例取更少
	defaultSplineResolution = 100 // 样条近似段数
	defaultMaxNesting       = 64  // 组合实体递归深度上限，防止自引用块
)

// Frontend 绘图前端：把实体分解为绘图图元并解析实体属性
// 单线程、同步、深度优先，一次遍历独占一个 RenderContext
type Frontend struct {
	ctx RenderContext
	out Backend

	// visibilityFilter 可见性覆盖回调：返回 true 实体才进入流水线，
	// 并直接决定解析属性里的 IsVisible，与 DXF 自身的可见性无关
	visibilityFilter func(entities.Entity) bool

	circleResolution int
	splineResolution int
	maxNesting       int
}

// Option Frontend 构造选项
type Option func(*Frontend)

// WithVisibilityFilter 设置可见性覆盖回调
func WithVisibilityFilter(filter func(entities.Entity) bool) Option {
	return func(f *Frontend) { f.visibilityFilter = filter }
}

// WithCircleResolution 设置整圆近似段数，必须为正
func WithCircleResolution(segments int) Option {
	return func(f *Frontend) {
		if segments > 0 {
			f.circleResolution = segments
		}
	}
}

// WithSplineResolution 设置样条近似段数，必须为正
func WithSplineResolution(segments int) Option {
	return func(f *Frontend) {
		if segments > 0 {
			f.splineResolution = segments
		}
	}
}

// WithMaxNesting 设置组合实体递归深度上限
func WithMaxNesting(depth int) Option {
	return func(f *Frontend) {
		if depth > 0 {
			f.maxNesting = depth
		}
	}
}

// NewFrontend 构造绘图前端
func NewFrontend(ctx RenderContext, out Backend, opts ...Option) *Frontend {
	f := &Frontend{
		ctx:              ctx,
		out:              out,
		circleResolution: defaultCircleResolution,
		splineResolution: defaultSplineResolution,
		maxNesting:       defaultMaxNesting,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Draw 绘制全部顶层实体，随后输出背景色，finalize 为真时收尾一次
func (f *Frontend) Draw(list []entities.Entity, finalize bool) {
	f.DrawEntities(list)
	f.out.SetBackground(f.ctx.BackgroundColor())
	if finalize {
		f.out.Finalize()
	}
}

// DrawEntities 按输入顺序绘制顶层实体
// 原始未解释实体直接跳过；可见性过滤器存在时完全由它决定取舍
func (f *Frontend) DrawEntities(list []entities.Entity) {
	for _, entity := range list {
		if raw, ok := entity.(*entities.TagStorage); ok {
			logger().Info("忽略不支持的 DXF 实体", "type", raw.Type(), "handle", raw.Handle)
			f.out.IgnoredEntity(raw)
			continue
		}

		if f.visibilityFilter != nil {
			// 可见性只取决于过滤器结果
			if f.visibilityFilter(entity) {
				f.DrawEntity(entity, Ancestors{})
			}
		} else if f.ctx.IsVisible(entity) {
			// 可见性只取决于 DXF 属性与图层状态
			f.DrawEntity(entity, Ancestors{})
		}
	}
}

// DrawEntity 绘制单个实体，ancestors 为当前生效的祖先链
func (f *Frontend) DrawEntity(entity entities.Entity, ancestors Ancestors) {
	f.out.SetCurrentEntity(entity, ancestors)
	defer f.out.ClearCurrentEntity()

	switch e := entity.(type) {
	case *entities.Line, *entities.Ray, *entities.XLine:
		f.drawLineEntity(entity)
	case *entities.Text, *entities.MText, *entities.Attrib:
		f.drawTextEntity(entity)
	case *entities.Circle, *entities.Arc, *entities.Ellipse:
		f.drawEllipticArcEntity(entity)
	case *entities.Spline:
		f.drawSplineEntity(e)
	case *entities.Point:
		f.drawPointEntity(e)
	case *entities.Hatch:
		f.drawHatchEntity(e)
	case *entities.Mesh:
		f.drawMeshBuilder(e.MeshBuilder(), f.resolveProperties(e))
	case *entities.Solid, *entities.Trace, *entities.Face3D:
		f.drawSolidEntity(entity)
	case *entities.Polyline:
		f.drawPolylineEntity(e, ancestors)
	case *entities.LWPolyline:
		f.drawVirtualChildren(e, e.VirtualEntities(), ancestors)
	case *entities.Viewport:
		f.drawViewportEntity(e)
	case *entities.Insert:
		f.drawInsertEntity(e, ancestors)
	case entities.Composite:
		// 标注、表格等带匿名几何块的组合实体
		f.drawCompositeEntity(e, ancestors)
	default:
		f.out.IgnoredEntity(entity)
	}
}

// resolveProperties 解析属性，可见性过滤器优先于 DXF 可见性
func (f *Frontend) resolveProperties(entity entities.Entity) Properties {
	properties := f.ctx.ResolveAll(entity)
	if f.visibilityFilter != nil {
		properties.IsVisible = f.visibilityFilter(entity)
	}

	return properties
}

func (f *Frontend) drawLineEntity(entity entities.Entity) {
	properties := f.resolveProperties(entity)

	switch e := entity.(type) {
	case *entities.Line:
		f.out.DrawLine(e.Start, e.End, properties)
	case *entities.XLine:
		// 构造线投影到绘图平面，以起点为中心双向延伸固定长度
		delta := planeDirection(e.UnitVector).Mul(infiniteLineLength)
		f.out.DrawLine(e.Start.Sub(delta.Mul(0.5)), e.Start.Add(delta.Mul(0.5)), properties)
	case *entities.Ray:
		// 射线只向前延伸
		delta := planeDirection(e.UnitVector).Mul(infiniteLineLength)
		f.out.DrawLine(e.Start, e.Start.Add(delta), properties)
	default:
		panic("dxfdraw: 非直线类实体进入直线分支")
	}
}

// planeDirection 方向向量投影到 XY 平面并归一化
func planeDirection(v core.Point) core.Point {
	return core.Point{X: v.X, Y: v.Y}.Normalize()
}

func (f *Frontend) drawTextEntity(entity entities.Entity) {
	if core.IsSpatial(textExtrusion(entity)) {
		// 倾斜出平面的文字不支持
		return
	}

	properties := f.resolveProperties(entity)
	for _, chunk := range simplifiedTextChunks(entity) {
		f.out.DrawText(chunk.Line, chunk.Transform, properties, chunk.CapHeight)
	}
}

func textExtrusion(entity entities.Entity) core.Point {
	switch e := entity.(type) {
	case *entities.Text:
		return e.Extrusion
	case *entities.MText:
		return e.Extrusion
	case *entities.Attrib:
		return e.Extrusion
	default:
		panic("dxfdraw: 非文字实体进入文字分支")
	}
}

func (f *Frontend) drawEllipticArcEntity(entity entities.Entity) {
	properties := f.resolveProperties(entity)

	switch e := entity.(type) {
	case *entities.Circle:
		if core.IsSpatial(e.Extrusion) {
			f.drawEllipticArc3D(e.ConstructionTool(), properties)
			return
		}
		diameter := 2 * e.Radius
		f.out.DrawArc(e.WCSCenter(), diameter, diameter, 0, nil, properties)

	case *entities.Arc:
		if core.IsSpatial(e.Extrusion) {
			f.drawEllipticArc3D(e.ConstructionTool(), properties)
			return
		}
		var (
			diameter = 2 * e.Radius
			angles   = core.GetDrawAngles(core.Radians(e.StartAngle), core.Radians(e.EndAngle), e.Extrusion)
		)
		f.out.DrawArc(e.WCSCenter(), diameter, diameter, 0, &angles, properties)

	case *entities.Ellipse:
		if core.IsSpatial(e.Extrusion) {
			f.drawEllipticArc3D(e.ConstructionTool(), properties)
			return
		}
		var (
			width  = 2 * e.MajorAxis.Length()
			height = e.Ratio * width // Ratio == height / width
			angles = core.GetEllipseDrawAngles(e.StartParam, e.EndParam, e.Extrusion)
		)
		if e.StartParam == 0 && e.EndParam == core.Tau {
			f.out.DrawArc(e.Center, width, height, e.MajorAxisAngle(), nil, properties)
			return
		}
		f.out.DrawArc(e.Center, width, height, e.MajorAxisAngle(), &angles, properties)

	default:
		panic("dxfdraw: 非圆弧类实体进入圆弧分支")
	}
}

// drawEllipticArc3D 倾斜出平面的圆弧近似为三维折线
func (f *Frontend) drawEllipticArc3D(ellipse core.ConstructionEllipse, properties Properties) {
	points := ellipse.Flattening(f.circleResolution)

	f.out.StartPolyline()
	for i := 0; i+1 < len(points); i++ {
		f.out.DrawLine(points[i], points[i+1], properties)
	}
	f.out.EndPolyline()
}

func (f *Frontend) drawSplineEntity(e *entities.Spline) {
	var (
		properties = f.resolveProperties(e)
		spline     = e.ConstructionTool()
	)

	if f.out.Features().Has(FeatureSplines) {
		f.out.DrawSpline(spline, properties)
		return
	}

	points := spline.Approximate(f.splineResolution)

	f.out.StartPolyline()
	for i := 0; i+1 < len(points); i++ {
		f.out.DrawLine(points[i], points[i+1], properties)
	}
	f.out.EndPolyline()
}

func (f *Frontend) drawPointEntity(e *entities.Point) {
	f.out.DrawPoint(e.WCSLocation(), f.resolveProperties(e))
}

func (f *Frontend) drawSolidEntity(entity entities.Entity) {
	properties := f.resolveProperties(entity)

	switch e := entity.(type) {
	case *entities.Solid:
		f.out.DrawFilledPolygon(e.Points(), properties)
	case *entities.Trace:
		// Trace 语义上等同 Solid，但存对象坐标，Points 已转世界坐标
		f.out.DrawFilledPolygon(e.Points(), properties)
	case *entities.Face3D:
		// 三维面按边绘制，不填充
		points := e.Points()
		for i := 0; i+1 < len(points); i++ {
			f.out.DrawLine(points[i], points[i+1], properties)
		}
	default:
		panic("dxfdraw: 非面类实体进入面分支")
	}
}

func (f *Frontend) drawHatchEntity(e *entities.Hatch) {
	var (
		properties = f.resolveProperties(e)
		ocs        = e.OCS()
		elevation  = e.Elevation
	)

	// 边界深拷贝后归一化为直线边，源实体不被修改
	for _, edges := range e.NormalizedPaths() {
		var (
			vertices []core.Point
			last     *core.Point
		)

		for _, edge := range edges {
			v := ocs.ToWCS(core.Point{X: edge.Start.X, Y: edge.Start.Y, Z: elevation})
			if last != nil && !last.IsClose(v, 1e-9) {
				logger().Warn("填充边界不连续，插入桥接顶点",
					"handle", e.Handle, "from", *last, "to", v)
				vertices = append(vertices, *last)
			}
			vertices = append(vertices, v)

			end := ocs.ToWCS(core.Point{X: edge.End.X, Y: edge.End.Y, Z: elevation})
			last = &end
		}

		if len(vertices) == 0 {
			continue
		}
		if last.IsClose(vertices[0], 1e-9) {
			// 末顶点几乎回到起点时补上闭合点
			vertices = append(vertices, vertices[0])
		} else {
			vertices = append(vertices, *last)
		}

		f.out.DrawFilledPolygon(vertices, properties)
	}
}

func (f *Frontend) drawViewportEntity(e *entities.Viewport) {
	length := e.ViewDirection.Length()
	if length < 1e-12 {
		logger().Warn("视口观察方向为零向量，跳过", "handle", e.Handle)
		return
	}

	if !e.ViewDirection.Mul(1 / length).IsClose(core.ZAxis, 1e-9) {
		// 斜视口不支持
		logger().Warn("视口观察方向不垂直于绘图平面，跳过",
			"handle", e.Handle, "direction", e.ViewDirection)
		return
	}

	f.out.DrawFilledPolygon(e.Footprint(), Properties{
		Color:     ViewportColor,
		Layer:     e.Layer(),
		IsVisible: true,
	})
}

func (f *Frontend) drawMeshBuilder(builder *core.MeshBuilder, properties Properties) {
	for _, face := range builder.FacesAsVertices() {
		f.out.DrawFilledPolygon(face, properties)
	}
}

func (f *Frontend) drawPolylineEntity(e *entities.Polyline, ancestors Ancestors) {
	if e.IsPolygonMesh() || e.IsPolyfaceMesh() {
		f.drawMeshBuilder(e.MeshBuilder(), f.resolveProperties(e))
		return
	}

	f.drawVirtualChildren(e, e.VirtualEntities(), ancestors)
}

// drawVirtualChildren 多段线展开：自身入祖先链，逐个绘制虚拟子实体
func (f *Frontend) drawVirtualChildren(parent entities.Entity, children []entities.Entity, ancestors Ancestors) {
	if !f.checkNesting(parent, ancestors) {
		return
	}

	chain := ancestors.Push(parent)
	for _, child := range children {
		f.DrawEntity(child, chain)
	}
}

func (f *Frontend) drawInsertEntity(e *entities.Insert, ancestors Ancestors) {
	if !f.checkNesting(e, ancestors) {
		return
	}

	// 块引用的解析属性成为子实体的继承状态，
	// 无论展开成败，push 必须有对应的 pop
	f.ctx.PushState(f.resolveProperties(e))
	defer f.ctx.PopState()

	chain := ancestors.Push(e)

	// 属性文字先于块内容，按存储顺序
	for _, attrib := range e.Attributes {
		f.DrawEntity(attrib, chain)
	}

	children, err := e.VirtualEntities()
	if err != nil {
		// 展开失败放弃整个子树，不绘制残缺的块
		logger().Error("块引用展开失败",
			"handle", e.Handle, "block", e.BlockName, "err", err)
		return
	}

	for _, child := range children {
		f.DrawEntity(child, chain)
	}
}

// drawCompositeEntity 标注等带匿名几何的组合实体
func (f *Frontend) drawCompositeEntity(e entities.Composite, ancestors Ancestors) {
	if !f.checkNesting(e, ancestors) {
		return
	}

	children, err := e.VirtualEntities()
	if err != nil {
		logger().Error("组合实体展开失败",
			"type", e.Type(), "handle", e.Base().Handle, "err", err)
		return
	}

	for _, child := range children {
		// 匿名几何的子实体默认透明度按不透明处理
		if child.Base().Transparency == nil {
			child.Base().SetTransparency(0)
		}
	}

	chain := ancestors.Push(e)
	for _, child := range children {
		f.DrawEntity(child, chain)
	}
}

// checkNesting 深度上限守护：畸形的自引用块按可恢复失败跳过
func (f *Frontend) checkNesting(entity entities.Entity, ancestors Ancestors) bool {
	if len(ancestors) < f.maxNesting {
		return true
	}

	logger().Error("组合实体嵌套过深，放弃子树",
		"type", entity.Type(), "handle", entity.Base().Handle, "depth", len(ancestors))

	return false
}
