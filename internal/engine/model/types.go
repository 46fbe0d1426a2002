// Package model converts Wavefront OBJ geometry into indexed meshes ready for GPU upload.
package model

// Vertex represents a mesh vertex with position, normal, and texture coordinates.
// Two vertices are the same vertex exactly when all eight components compare
// equal. No tolerance is applied.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// DefaultNormal is substituted when a corner carries no normal index or the
// source file has no normals at all.
var DefaultNormal = [3]float32{0, 0, 1}

// Mesh holds deduplicated vertex data ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Release frees the vertex and index storage. The owner calls it when the GPU
// buffers built from this mesh are deleted; the mesh must not be used after.
func (m *Mesh) Release() {
	m.Vertices = nil
	m.Indices = nil
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Center returns the midpoint of the bounding box.
func (b Bounds) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// Size returns the extent of the bounding box along each axis.
func (b Bounds) Size() [3]float32 {
	return [3]float32{
		b.Max[0] - b.Min[0],
		b.Max[1] - b.Min[1],
		b.Max[2] - b.Min[2],
	}
}

// Attrib holds the flat attribute arrays of a decoded model file: positions
// and normals as xyz triples, texture coordinates as uv pairs. Normals and
// TexCoords may be empty when the source supplies none.
type Attrib struct {
	Positions []float32
	Normals   []float32
	TexCoords []float32
}

// Corner references one vertex-instance of a face by its indices into the
// flat attribute arrays. A negative Normal or TexCoord means the source
// supplied no such attribute for this corner.
type Corner struct {
	Position int
	Normal   int
	TexCoord int
}

// Face is one polygon of the source file, one Corner per vertex-instance.
type Face struct {
	Corners []Corner
}
