package model

import (
	"errors"
	"fmt"
)

// Mesh build errors.
var (
	ErrUnsupportedGeometry = errors.New("unsupported geometry: face is not a triangle")
	ErrIndexOutOfRange     = errors.New("attribute index out of range")
)

// Build converts triangulated face records into an indexed mesh, collapsing
// corners whose resolved attributes are identical into one shared vertex.
// Deduplication is global across the whole stream, vertices keep the order of
// their first appearance, and every three consecutive indices form one
// triangle. Faces must have exactly three corners; anything else is
// ErrUnsupportedGeometry.
func Build(attrib Attrib, faces []Face) (*Mesh, error) {
	vertices := make([]Vertex, 0, len(faces)*3)
	indices := make([]uint32, 0, len(faces)*3)
	seen := make(map[Vertex]uint32, len(faces)*3)

	// Track bounding box
	bounds := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}

	for fi := range faces {
		corners := faces[fi].Corners
		if len(corners) != 3 {
			return nil, fmt.Errorf("%w: face %d has %d corners", ErrUnsupportedGeometry, fi, len(corners))
		}
		for _, c := range corners {
			v, err := attrib.resolve(c)
			if err != nil {
				return nil, fmt.Errorf("face %d: %w", fi, err)
			}
			idx, ok := seen[v]
			if !ok {
				idx = uint32(len(vertices))
				seen[v] = idx
				vertices = append(vertices, v)
				updateBounds(&bounds, v.Position)
			}
			indices = append(indices, idx)
		}
	}

	if len(vertices) == 0 {
		bounds = Bounds{}
	}

	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Bounds:   bounds,
	}, nil
}

// resolve forms the concrete vertex for a corner, substituting DefaultNormal
// and a zero texcoord where the source has no attribute for it. Indices that
// fall outside their attribute array are ErrIndexOutOfRange.
func (a Attrib) resolve(c Corner) (Vertex, error) {
	var v Vertex

	pi := c.Position
	if pi < 0 || pi >= len(a.Positions)/3 {
		return Vertex{}, fmt.Errorf("%w: position %d of %d", ErrIndexOutOfRange, pi, len(a.Positions)/3)
	}
	v.Position = [3]float32{a.Positions[pi*3], a.Positions[pi*3+1], a.Positions[pi*3+2]}

	switch ni := c.Normal; {
	case len(a.Normals) == 0 || ni < 0:
		v.Normal = DefaultNormal
	case ni >= len(a.Normals)/3:
		return Vertex{}, fmt.Errorf("%w: normal %d of %d", ErrIndexOutOfRange, ni, len(a.Normals)/3)
	default:
		v.Normal = [3]float32{a.Normals[ni*3], a.Normals[ni*3+1], a.Normals[ni*3+2]}
	}

	switch ti := c.TexCoord; {
	case len(a.TexCoords) == 0 || ti < 0:
		v.TexCoord = [2]float32{0, 0}
	case ti >= len(a.TexCoords)/2:
		return Vertex{}, fmt.Errorf("%w: texcoord %d of %d", ErrIndexOutOfRange, ti, len(a.TexCoords)/2)
	default:
		v.TexCoord = [2]float32{a.TexCoords[ti*2], a.TexCoords[ti*2+1]}
	}

	return v, nil
}

func updateBounds(b *Bounds, p [3]float32) {
	if p[0] < b.Min[0] {
		b.Min[0] = p[0]
	}
	if p[1] < b.Min[1] {
		b.Min[1] = p[1]
	}
	if p[2] < b.Min[2] {
		b.Min[2] = p[2]
	}
	if p[0] > b.Max[0] {
		b.Max[0] = p[0]
	}
	if p[1] > b.Max[1] {
		b.Max[1] = p[1]
	}
	if p[2] > b.Max[2] {
		b.Max[2] = p[2]
	}
}
