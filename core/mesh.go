package core

// MeshBuilder 网格结构：顶点表+面索引表
type MeshBuilder struct {
	Vertices []Point
	Faces    [][]int
}

// NewMeshBuilder 构造空网格
func NewMeshBuilder() *MeshBuilder {
	return &MeshBuilder{}
}

// AddVertex 追加顶点，返回索引
func (m *MeshBuilder) AddVertex(p Point) int {
	m.Vertices = append(m.Vertices, p)
	return len(m.Vertices) - 1
}

// AddFace 以顶点坐标追加一个面
func (m *MeshBuilder) AddFace(points ...Point) {
	face := make([]int, 0, len(points))
	for _, p := range points {
		face = append(face, m.AddVertex(p))
	}

	m.Faces = append(m.Faces, face)
}

// AddIndexedFace 以已有顶点索引追加一个面，越界索引被丢弃
func (m *MeshBuilder) AddIndexedFace(indices ...int) {
	face := make([]int, 0, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(m.Vertices) {
			face = append(face, i)
		}
	}

	if len(face) > 0 {
		m.Faces = append(m.Faces, face)
	}
}

// FacesAsVertices 将每个面展开为顶点坐标序列
func (m *MeshBuilder) FacesAsVertices() [][]Point {
	faces := make([][]Point, 0, len(m.Faces))
	for _, face := range m.Faces {
		points := make([]Point, 0, len(face))
		for _, i := range face {
			points = append(points, m.Vertices[i])
		}
		faces = append(faces, points)
	}

	return faces
}
