package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/spaghettifunk/solids/engine/core"
	"github.com/spaghettifunk/solids/engine/math"
	"github.com/spaghettifunk/solids/engine/renderer"
	"github.com/spaghettifunk/solids/engine/renderer/metadata"
)

// Backend draws through an OpenGL 3.3 core context. The context must be
// current on the calling OS thread for every method.
type Backend struct {
	swapBuffers func()

	program uint32
	vao     uint32
	vbo     uint32

	modelUniform       int32
	colorOnUniform     int32
	objectColorUniform int32

	width  uint32
	height uint32
}

var _ renderer.RendererBackend = (*Backend)(nil)

func New(swapBuffers func()) *Backend {
	return &Backend{swapBuffers: swapBuffers}
}

func (b *Backend) Initialize(appName string, appWidth, appHeight uint32) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl.Init error: %w", err)
	}
	core.LogInfo("%s: OpenGL %s, GLSL %s", appName,
		gl.GoStr(gl.GetString(gl.VERSION)),
		gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	program, err := buildProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return err
	}
	b.program = program
	b.modelUniform = gl.GetUniformLocation(program, gl.Str("model\x00"))
	b.colorOnUniform = gl.GetUniformLocation(program, gl.Str("obj_color_on\x00"))
	b.objectColorUniform = gl.GetUniformLocation(program, gl.Str("obj_color\x00"))

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.Enable(gl.DEPTH_TEST)
	return b.Resized(appWidth, appHeight)
}

func (b *Backend) Shutdown() error {
	b.DestroyGeometry()
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.program != 0 {
		gl.DeleteProgram(b.program)
		b.program = 0
	}
	return nil
}

func (b *Backend) Resized(width, height uint32) error {
	b.width = width
	b.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	return nil
}

func (b *Backend) BeginFrame(clearColor math.Vec4, deltaTime float64) error {
	gl.ClearColor(clearColor.X, clearColor.Y, clearColor.Z, clearColor.W)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(b.program)
	gl.BindVertexArray(b.vao)
	return nil
}

func (b *Backend) EndFrame(deltaTime float64) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("opengl error 0x%x during frame", code)
	}
	if b.swapBuffers != nil {
		b.swapBuffers()
	}
	return nil
}

func (b *Backend) CreateGeometry(layout *metadata.BufferLayout) error {
	if b.vao == 0 {
		return core.ErrNotInitialized
	}
	gl.BindVertexArray(b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, int(layout.TotalSize), nil, gl.STATIC_DRAW)
	for _, region := range layout.Regions {
		gl.BufferSubData(gl.ARRAY_BUFFER, int(region.Offset), int(region.Size()), gl.Ptr(region.Data))
	}
	gl.EnableVertexAttribArray(positionLocation)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("opengl error 0x%x while uploading %d bytes", code, layout.TotalSize)
	}
	return nil
}

func (b *Backend) DestroyGeometry() {
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
}

func (b *Backend) DrawGeometry(data *metadata.GeometryRenderData) error {
	g := data.Geometry
	if b.vbo == 0 || g == nil {
		return core.ErrNoGeometry
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.UniformMatrix4fv(b.modelUniform, 1, false, &data.Model.Data[0])
	gl.VertexAttribPointer(positionLocation, 4, gl.FLOAT, false, 0, gl.PtrOffset(int(g.PositionOffset)))

	if data.ColorMode == metadata.ColorModeVertex && g.HasColors {
		gl.Uniform1i(b.colorOnUniform, 0)
		gl.EnableVertexAttribArray(colorLocation)
		gl.VertexAttribPointer(colorLocation, 4, gl.FLOAT, false, 0, gl.PtrOffset(int(g.ColorOffset)))
	} else {
		// Without its own colours a geometry must not read another one's.
		gl.DisableVertexAttribArray(colorLocation)
		gl.Uniform1i(b.colorOnUniform, 1)
		gl.Uniform4f(b.objectColorUniform, data.Color.X, data.Color.Y, data.Color.Z, data.Color.W)
	}

	first, count := data.DrawRange()
	gl.DrawArrays(gl.TRIANGLES, int32(first), int32(count))
	return nil
}
