package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/g3n/engine/loader/obj"
)

// ErrSourceRead wraps failures to open or parse a model source file.
var ErrSourceRead = errors.New("cannot read model source")

// LoadOBJ reads a Wavefront OBJ file and builds an indexed mesh from it.
// Faces with more than three corners are fan-triangulated when triangulate is
// true and rejected otherwise. All objects in the file merge into one mesh.
func LoadOBJ(path string, triangulate bool) (*Mesh, error) {
	dec, err := obj.Decode(path, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceRead, path, err)
	}
	return meshFromDecoder(dec, triangulate)
}

func meshFromDecoder(dec *obj.Decoder, triangulate bool) (*Mesh, error) {
	attrib := Attrib{
		Positions: dec.Vertices,
		Normals:   dec.Normals,
		TexCoords: dec.Uvs,
	}

	var faces []Face
	for oi := range dec.Objects {
		for _, f := range dec.Objects[oi].Faces {
			corners := make([]Corner, len(f.Vertices))
			for i, pi := range f.Vertices {
				corners[i] = Corner{
					Position: pi,
					Normal:   attribIndex(f.Normals, i),
					TexCoord: attribIndex(f.Uvs, i),
				}
			}
			switch {
			case len(corners) == 3:
				faces = append(faces, Face{Corners: corners})
			case len(corners) > 3 && triangulate:
				// Fan triangulation around the first corner.
				for i := 1; i < len(corners)-1; i++ {
					faces = append(faces, Face{Corners: []Corner{corners[0], corners[i], corners[i+1]}})
				}
			default:
				return nil, fmt.Errorf("%w: face with %d corners", ErrUnsupportedGeometry, len(corners))
			}
		}
	}

	return Build(attrib, faces)
}

// attribIndex returns the i-th index of a face attribute list, or -1 when the
// list is short or holds the decoder's missing-index marker (MaxUint32).
func attribIndex(indices []int, i int) int {
	if i >= len(indices) {
		return -1
	}
	idx := indices[i]
	if idx < 0 || uint32(idx) == math.MaxUint32 {
		return -1
	}
	return idx
}
