// Package scene uploads a mesh to the GPU and renders it with a fixed
// camera, a single directional light, and a slow turntable rotation.
package scene

import (
	"fmt"
	"unsafe"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/LumineWollah/Projet-OpenGL-2025/internal/engine/model"
	"github.com/LumineWollah/Projet-OpenGL-2025/internal/engine/scene/shaders"
	"github.com/LumineWollah/Projet-OpenGL-2025/internal/engine/shader"
	"github.com/LumineWollah/Projet-OpenGL-2025/internal/engine/texture"
	"github.com/LumineWollah/Projet-OpenGL-2025/internal/logger"
)

// Camera constants. The camera sits on the +Z axis looking at the mesh
// center, backed off far enough that the whole model fits in view.
const (
	fovDegrees      = 45.0
	nearPlane       = 0.1
	farPlane        = 100.0
	defaultDistance = 6.0
)

// Directional light pointing down and slightly along +X.
var lightDir = [3]float32{0.5, -1.0, 0.0}

// Scene holds the GPU resources for a single model.
type Scene struct {
	// Shader
	program uint32

	// Uniform locations
	locModel      int32
	locView       int32
	locProjection int32
	locLightDir   int32
	locTexture    int32

	// Mesh buffers
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	texture uint32

	// Camera framing derived from the mesh bounds
	center   mgl32.Vec3
	distance float32
}

// New uploads the mesh and texture to the GPU and prepares the shader
// program. If the texture cannot be loaded the scene falls back to a
// 1x1 white texture so the model still renders with plain lighting.
func New(mesh *model.Mesh, texturePath string) (*Scene, error) {
	program, err := shader.CompileProgram(shaders.ModelVertexShader, shaders.ModelFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("model shader: %w", err)
	}

	s := &Scene{
		program:       program,
		locModel:      shader.GetUniform(program, "uModel"),
		locView:       shader.GetUniform(program, "uView"),
		locProjection: shader.GetUniform(program, "uProjection"),
		locLightDir:   shader.GetUniform(program, "uLightDir"),
		locTexture:    shader.GetUniform(program, "uTexture"),
	}

	s.uploadMesh(mesh)
	s.loadTexture(texturePath)
	s.frameCamera(mesh.Bounds)

	return s, nil
}

func (s *Scene) uploadMesh(mesh *model.Mesh) {
	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return
	}

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	vertexSize := int(unsafe.Sizeof(model.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*vertexSize, unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &s.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, s.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	s.indexCount = int32(len(mesh.Indices))
	gl.BindVertexArray(0)
}

func (s *Scene) loadTexture(path string) {
	if path != "" {
		texID, err := texture.Load(path)
		if err == nil {
			s.texture = texID
			return
		}
		logger.Warn("Failed to load texture, using white fallback",
			zap.String("path", path),
			zap.Error(err))
	}
	s.texture = texture.White()
}

// frameCamera places the camera so the mesh fits in view regardless of
// its size. A 2-unit cube ends up 6 units away.
func (s *Scene) frameCamera(b model.Bounds) {
	c := b.Center()
	s.center = mgl32.Vec3{c[0], c[1], c[2]}

	size := b.Size()
	extent := math32.Max(size[0], math32.Max(size[1], size[2]))
	s.distance = 3 * extent
	if s.distance == 0 {
		s.distance = defaultDistance
	}
}

// Render draws the model rotated by angle radians around its vertical axis.
func (s *Scene) Render(aspect, angle float32) {
	if s.vao == 0 || s.indexCount == 0 {
		return
	}

	gl.UseProgram(s.program)

	// Spin the model around its own center
	modelMat := mgl32.Translate3D(s.center.X(), s.center.Y(), s.center.Z()).
		Mul4(mgl32.HomogRotate3DY(angle)).
		Mul4(mgl32.Translate3D(-s.center.X(), -s.center.Y(), -s.center.Z()))
	eye := s.center.Add(mgl32.Vec3{0, 0, s.distance})
	viewMat := mgl32.LookAtV(eye, s.center, mgl32.Vec3{0, 1, 0})
	projMat := mgl32.Perspective(mgl32.DegToRad(fovDegrees), aspect, nearPlane, farPlane)

	gl.UniformMatrix4fv(s.locModel, 1, false, &modelMat[0])
	gl.UniformMatrix4fv(s.locView, 1, false, &viewMat[0])
	gl.UniformMatrix4fv(s.locProjection, 1, false, &projMat[0])
	gl.Uniform3f(s.locLightDir, lightDir[0], lightDir[1], lightDir[2])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, s.texture)
	gl.Uniform1i(s.locTexture, 0)

	gl.BindVertexArray(s.vao)
	gl.DrawElements(gl.TRIANGLES, s.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy releases all GPU resources.
func (s *Scene) Destroy() {
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
		s.vao = 0
	}
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
		s.vbo = 0
	}
	if s.ebo != 0 {
		gl.DeleteBuffers(1, &s.ebo)
		s.ebo = 0
	}
	if s.texture != 0 {
		gl.DeleteTextures(1, &s.texture)
		s.texture = 0
	}
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
}
