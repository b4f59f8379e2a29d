package opengl

import (
	"fmt"

	"Fletch3D/internal/logger"
	"Fletch3D/internal/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Renderer owns the GL program and every mesh uploaded through it.
// All methods need the GL context current on the calling goroutine.
type Renderer struct {
	shader               *Shader
	meshes               []*Mesh
	currentShaderProgram uint32
	fallbackLight        *renderer.Light
}

func NewRenderer() *Renderer {
	return &Renderer{
		shader:        NewDefaultShader(),
		fallbackLight: renderer.CreateLight(),
	}
}

func (rend *Renderer) Init(width, height int32) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("opengl init: %w", err)
	}
	logger.Log.Info("OpenGL version", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	if renderer.Debug {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	gl.Viewport(0, 0, width, height)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	if err := rend.shader.Compile(); err != nil {
		return err
	}
	logger.Log.Info("OpenGL render initialized")
	return nil
}

// NewMesh uploads g and returns a handle that can be shared by any number
// of game objects
func (rend *Renderer) NewMesh(g *renderer.Geometry) *Mesh {
	mesh := &Mesh{renderer: rend, count: int32(len(g.Faces))}
	mesh.boundsCenter, mesh.boundsRadius = g.BoundingSphere()

	gl.GenVertexArrays(1, &mesh.vao)
	gl.BindVertexArray(mesh.vao)

	gl.GenBuffers(1, &mesh.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.InterleavedData)*4, gl.Ptr(g.InterleavedData), gl.STATIC_DRAW)

	gl.GenBuffers(1, &mesh.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mesh.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Faces)*4, gl.Ptr(g.Faces), gl.STATIC_DRAW)

	stride := int32(renderer.VertexStride * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(5*4))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	rend.meshes = append(rend.meshes, mesh)
	return mesh
}

// BeginFrame clears the target and binds the program
func (rend *Renderer) BeginFrame() {
	gl.ClearColor(renderer.ClearColorR, renderer.ClearColorG, renderer.ClearColorB, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	rend.use()
}

func (rend *Renderer) use() {
	if rend.currentShaderProgram != rend.shader.program {
		rend.shader.Use()
		rend.currentShaderProgram = rend.shader.program
	}
}

func (rend *Renderer) setFrameUniforms(ctx *renderer.Context) {
	u := rend.shader.uniforms
	light := ctx.Light
	if light == nil {
		light = rend.fallbackLight
	}

	u.SetMat4("viewProjection", ctx.ViewProjection)
	u.SetVec3("viewPos", ctx.CameraPosition)
	u.SetVec3("light.position", light.Position)
	u.SetVec3("light.color", light.Color)
	u.SetFloat("light.intensity", light.Intensity)
	u.SetFloat("light.ambientStrength", light.AmbientStrength)
}

func (rend *Renderer) setMaterialUniforms(material *renderer.Material) {
	if material == nil {
		material = renderer.DefaultMaterial
	}
	u := rend.shader.uniforms

	u.SetVec4("color", material.Color)
	u.SetFloat("ambient", material.Ambient)
	u.SetFloat("diffusivity", material.Diffusivity)
	u.SetFloat("specularity", material.Specularity)
	u.SetFloat("smoothness", material.Smoothness)
	u.SetBool("rings", material.Rings)
}

// UpdateViewport matches the GL viewport to the framebuffer size
func (rend *Renderer) UpdateViewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

func (rend *Renderer) Cleanup() {
	for _, mesh := range rend.meshes {
		mesh.delete()
	}
	rend.meshes = nil
	rend.shader.Delete()
	rend.currentShaderProgram = 0
}

// Mesh is an uploaded vertex array. It implements renderer.Renderable.
type Mesh struct {
	renderer      *Renderer
	vao, vbo, ebo uint32
	count         int32
	boundsCenter  mgl32.Vec3
	boundsRadius  float32
}

func (m *Mesh) Draw(ctx *renderer.Context, world mgl32.Mat4, material *renderer.Material) {
	if m.vao == 0 {
		return
	}
	if renderer.FrustumCullingEnabled {
		center, radius := WorldBounds(m.boundsCenter, m.boundsRadius, world)
		if !ctx.Frustum.IntersectsSphere(center, radius) {
			return
		}
	}

	rend := m.renderer
	rend.use()
	rend.setFrameUniforms(ctx)
	rend.setMaterialUniforms(material)
	rend.shader.uniforms.SetMat4("model", world)

	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (m *Mesh) delete() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	m.vao, m.vbo, m.ebo = 0, 0, 0
}

// WorldBounds moves a model-space bounding sphere into world space. The
// radius grows by the largest axis scale in world.
func WorldBounds(center mgl32.Vec3, radius float32, world mgl32.Mat4) (mgl32.Vec3, float32) {
	c := world.Mul4x1(center.Vec4(1)).Vec3()
	scale := world.Col(0).Vec3().Len()
	if s := world.Col(1).Vec3().Len(); s > scale {
		scale = s
	}
	if s := world.Col(2).Vec3().Len(); s > scale {
		scale = s
	}
	return c, radius * scale
}
