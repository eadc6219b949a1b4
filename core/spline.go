package core

// BSpline B 样条曲线的解析表示
// 节点向量缺省时按均匀钳制（clamped）节点生成
type BSpline struct {
	ControlPoints []Point
	Degree        int
	Knots         []float64
}

// NewBSpline 构造 B 样条，控制点不足时自动降阶
func NewBSpline(controlPoints []Point, degree int) *BSpline {
	if degree < 1 {
		degree = 3
	}
	if degree > len(controlPoints)-1 {
		degree = len(controlPoints) - 1
	}

	return &BSpline{
		ControlPoints: controlPoints,
		Degree:        degree,
		Knots:         uniformClampedKnots(len(controlPoints), degree),
	}
}

func uniformClampedKnots(count, degree int) []float64 {
	var (
		order = degree + 1
		knots = make([]float64, 0, count+order)
		inner = count - order
	)

	for i := 0; i < order; i++ {
		knots = append(knots, 0)
	}
	for i := 1; i <= inner; i++ {
		knots = append(knots, float64(i)/float64(inner+1))
	}
	for i := 0; i < order; i++ {
		knots = append(knots, 1)
	}

	return knots
}

// MaxT 参数定义域上界
func (s *BSpline) MaxT() float64 {
	if len(s.Knots) == 0 {
		return 1
	}

	return s.Knots[len(s.Knots)-1]
}

// Point 德布尔（de Boor）算法求 t 处的曲线点
func (s *BSpline) Point(t float64) Point {
	var (
		degree = s.Degree
		knots  = s.Knots
		n      = len(s.ControlPoints)
	)

	if n == 0 {
		return Point{}
	}
	if n == 1 || degree < 1 {
		return s.ControlPoints[0]
	}

	if t <= knots[0] {
		return s.ControlPoints[0]
	}
	if t >= knots[len(knots)-1] {
		return s.ControlPoints[n-1]
	}

	// 定位节点区间 k: knots[k] <= t < knots[k+1]
	k := degree
	for k < n-1 && knots[k+1] <= t {
		k++
	}

	points := make([]Point, degree+1)
	copy(points, s.ControlPoints[k-degree:k+1])

	for r := 1; r <= degree; r++ {
		for j := degree; j >= r; j-- {
			var (
				i     = k - degree + j
				denom = knots[i+degree-r+1] - knots[i]
				alpha = 0.0
			)

			if denom != 0 {
				alpha = (t - knots[i]) / denom
			}

			points[j] = points[j-1].Lerp(points[j], alpha)
		}
	}

	return points[degree]
}

// Approximate 均匀参数采样为 segments 段折线，返回 segments+1 个点
func (s *BSpline) Approximate(segments int) []Point {
	if segments < 1 {
		segments = 1
	}

	var (
		params = Linspace(s.Knots[0], s.MaxT(), segments+1)
		points = make([]Point, len(params))
	)

	for i, t := range params {
		points[i] = s.Point(t)
	}

	return points
}

// Flattening 按距离容差自适应细分
// 相邻采样点的中点偏离弦线超过 distance 时继续二分
func (s *BSpline) Flattening(distance float64) []Point {
	if distance <= 0 {
		distance = 0.01
	}

	var (
		t0     = s.Knots[0]
		t1     = s.MaxT()
		points = []Point{s.Point(t0)}
	)

	s.flatten(t0, t1, s.Point(t0), s.Point(t1), distance, 0, &points)

	return points
}

func (s *BSpline) flatten(t0, t1 float64, p0, p1 Point, distance float64, depth int, out *[]Point) {
	var (
		tm = (t0 + t1) / 2
		pm = s.Point(tm)
	)

	// 递归深度上限防止病态节点向量不收敛
	if depth < 16 && chordDeviation(p0, p1, pm) > distance {
		s.flatten(t0, tm, p0, pm, distance, depth+1, out)
		s.flatten(tm, t1, pm, p1, distance, depth+1, out)
		return
	}

	*out = append(*out, pm, p1)
}

// chordDeviation 中点到弦线的距离
func chordDeviation(p0, p1, mid Point) float64 {
	var (
		chord = p1.Sub(p0)
		v     = mid.Sub(p0)
	)

	length := chord.Length()
	if length == 0 {
		return v.Length()
	}

	return chord.Cross(v).Length() / length
}
