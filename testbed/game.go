package testbed

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/spaghettifunk/solids/engine"
	"github.com/spaghettifunk/solids/engine/config"
	"github.com/spaghettifunk/solids/engine/core"
	"github.com/spaghettifunk/solids/engine/geometry"
	"github.com/spaghettifunk/solids/engine/math"
	"github.com/spaghettifunk/solids/engine/renderer/metadata"
)

type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return "?"
}

var (
	cylinderPosition = math.NewVec3(0.5, 0, 0)
	cubePosition     = math.NewVec3(-0.5, 0, 0)
	objectScale      = math.NewVec3(0.25, 1, 0.25)
)

type TestGame struct {
	*engine.Game
}

type gameState struct {
	cfg    *config.Config
	rng    *rand.Rand
	jitter uint32
	// Euler angles in degrees, shared by both solids.
	theta [3]float32
	axis  Axis

	// Handles into the renderer's uploaded geometry.
	cubeID     uuid.UUID
	cylinderID uuid.UUID

	cubeTransform     *math.Transform
	cylinderTransform *math.Transform

	cylinderColor math.Vec4
	clearColor    math.Vec4

	handlers []handler
}

type handler struct {
	code core.EventCode
	id   uint64
}

func NewTestGame(cfg *config.Config, configPath string) (*TestGame, error) {
	if cfg == nil {
		return nil, errors.New("configuration is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	state := &gameState{
		cfg:               cfg,
		axis:              AxisZ,
		cubeTransform:     math.TransformFromPositionScale(cubePosition, objectScale),
		cylinderTransform: math.TransformFromPositionScale(cylinderPosition, objectScale),
	}
	state.applyScene(cfg.Scene)
	state.theta = cfg.Scene.InitialAngles

	seed := cfg.Scene.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	state.rng = rand.New(rand.NewSource(seed))

	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: engine.NewApplicationConfig(cfg, configPath),
			State:             state,
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown
	tg.FnOnConfigReload = tg.OnConfigReload

	return tg, nil
}

func (g *TestGame) Initialize() error {
	core.LogDebug("TestGame Initialize fn....")
	state := g.State.(*gameState)

	cube := geometry.GenerateCube()
	cylinder := geometry.GenerateCylinder(geometry.CylinderConfig{
		Segments: state.cfg.Scene.Segments,
		Radius:   state.cfg.Scene.Radius,
		Top:      state.cfg.Scene.Top,
		Bottom:   state.cfg.Scene.Bottom,
	})

	geometries, err := g.Renderer.UploadGeometry(cube, &cylinder.Mesh)
	if err != nil {
		return err
	}
	state.cubeID = geometries[0].ID
	state.cylinderID = geometries[1].ID

	state.applyRotation()
	for _, obj := range []struct {
		geometry  *metadata.Geometry
		transform *math.Transform
	}{
		{geometries[0], state.cubeTransform},
		{geometries[1], state.cylinderTransform},
	} {
		if !insideClipSpace(obj.geometry.Extents, obj.transform.GetLocal()) {
			core.LogWarn("%s (%s) does not fit the viewport at its initial orientation", obj.geometry.Name, obj.geometry.ID)
		}
	}

	g.registerEvents()
	core.LogInfo("selected axis: %s", state.axis)
	return nil
}

func (g *TestGame) registerEvents() {
	state := g.State.(*gameState)
	for _, code := range []core.EventCode{core.EVENT_CODE_KEY_PRESSED, core.EVENT_CODE_BUTTON_PRESSED} {
		id := core.EventRegister(code, g.gameOnInput)
		state.handlers = append(state.handlers, handler{code: code, id: id})
	}
}

// Update advances the animation. Holding space freezes it.
func (g *TestGame) Update(deltaTime float64) error {
	state := g.State.(*gameState)
	paused := core.InputIsKeyDown(core.KEY_SPACE)
	if paused != core.InputWasKeyDown(core.KEY_SPACE) {
		if paused {
			core.LogInfo("rotation paused at %v", state.theta)
		} else {
			core.LogInfo("rotation resumed")
		}
	}
	if paused {
		return nil
	}
	state.step()
	return nil
}

// step nudges every angle back by a random whole number of degrees in
// [0, jitter) and keeps the result within (-360, 360).
func (s *gameState) step() {
	for i := range s.theta {
		var k uint32
		if s.jitter > 0 {
			k = s.rng.Uint32n(s.jitter)
		}
		s.theta[i] = math.WrapDegrees(s.theta[i] - float32(k))
	}
}

func (g *TestGame) Render(packet *metadata.RenderPacket, deltaTime float64) error {
	state := g.State.(*gameState)
	cube := g.Renderer.Geometry(state.cubeID)
	cylinder := g.Renderer.Geometry(state.cylinderID)
	if cube == nil || cylinder == nil {
		return core.ErrNoGeometry
	}

	state.applyRotation()

	packet.ClearColor = state.clearColor
	packet.Geometries = append(packet.Geometries,
		&metadata.GeometryRenderData{
			Model:     state.cylinderTransform.GetLocal(),
			Geometry:  cylinder,
			ColorMode: metadata.ColorModeUniform,
			Color:     state.cylinderColor,
		},
		&metadata.GeometryRenderData{
			Model:     state.cubeTransform.GetLocal(),
			Geometry:  cube,
			ColorMode: metadata.ColorModeVertex,
		},
	)
	return nil
}

func (s *gameState) applyRotation() {
	rotation := math.NewVec3(s.theta[0], s.theta[1], s.theta[2])
	s.cylinderTransform.SetRotation(rotation)
	s.cubeTransform.SetRotation(rotation)
}

// insideClipSpace reports whether every corner of ext stays within the
// [-1, 1] clip cube once moved by model.
func insideClipSpace(ext math.Extents3D, model math.Mat4) bool {
	for i := 0; i < 8; i++ {
		corner := ext.Min
		if i&1 != 0 {
			corner.X = ext.Max.X
		}
		if i&2 != 0 {
			corner.Y = ext.Max.Y
		}
		if i&4 != 0 {
			corner.Z = ext.Max.Z
		}
		p := math.NewPoint(corner.X, corner.Y, corner.Z).Transform(model)
		if p.X < -1 || p.X > 1 || p.Y < -1 || p.Y > 1 || p.Z < -1 || p.Z > 1 {
			return false
		}
	}
	return true
}

func (g *TestGame) OnResize(width uint32, height uint32) error {
	core.LogDebug("TestGame OnResize: %d x %d", width, height)
	return nil
}

func (g *TestGame) Shutdown() error {
	state := g.State.(*gameState)
	for _, h := range state.handlers {
		core.EventUnregister(h.code, h.id)
	}
	state.handlers = nil
	return nil
}

// OnConfigReload applies the scene values that can change while running.
// Mesh parameters only take effect on the next start.
func (g *TestGame) OnConfigReload(cfg *config.Config) error {
	state := g.State.(*gameState)
	if state.cfg.GeometryChanged(cfg) {
		core.LogWarn("cylinder geometry changed in the configuration; restart to rebuild the meshes")
	}
	state.applyScene(cfg.Scene)
	state.cfg = cfg
	core.LogInfo("configuration reloaded (jitter %d)", state.jitter)
	return nil
}

func (s *gameState) applyScene(scene config.SceneConfig) {
	s.jitter = scene.Jitter
	s.cylinderColor = colorFromConfig(scene.CylinderColor)
	s.clearColor = colorFromConfig(scene.ClearColor)
}

func colorFromConfig(c [4]float32) math.Vec4 {
	return math.NewVec4(
		math.Clamp(c[0], 0, 1),
		math.Clamp(c[1], 0, 1),
		math.Clamp(c[2], 0, 1),
		math.Clamp(c[3], 0, 1),
	)
}

func (g *TestGame) gameOnInput(context core.EventContext) bool {
	state := g.State.(*gameState)

	var axis Axis
	switch data := context.Data.(type) {
	case *core.KeyEvent:
		switch data.KeyCode {
		case core.KEY_X:
			axis = AxisX
		case core.KEY_Y:
			axis = AxisY
		case core.KEY_Z:
			axis = AxisZ
		default:
			return false
		}
	case *core.MouseEvent:
		switch data.Button {
		case core.BUTTON_LEFT:
			axis = AxisX
		case core.BUTTON_MIDDLE:
			axis = AxisY
		case core.BUTTON_RIGHT:
			axis = AxisZ
		default:
			return false
		}
	default:
		return false
	}

	if axis != state.axis {
		state.axis = axis
		x, y := core.InputGetMousePosition()
		core.LogInfo("selected axis: %s (mouse at %d, %d)", axis, x, y)
	}
	return true
}
