package testbed

import (
	"errors"
	"testing"

	"github.com/spaghettifunk/solids/engine/config"
	"github.com/spaghettifunk/solids/engine/core"
	"github.com/spaghettifunk/solids/engine/math"
	"github.com/spaghettifunk/solids/engine/renderer"
	"github.com/spaghettifunk/solids/engine/renderer/metadata"
)

type uploadBackend struct {
	layout *metadata.BufferLayout
}

func (b *uploadBackend) Initialize(string, uint32, uint32) error { return nil }

func (b *uploadBackend) Shutdown() error { return nil }

func (b *uploadBackend) Resized(uint32, uint32) error { return nil }

func (b *uploadBackend) BeginFrame(math.Vec4, float64) error { return nil }

func (b *uploadBackend) EndFrame(float64) error { return nil }

func (b *uploadBackend) CreateGeometry(layout *metadata.BufferLayout) error {
	b.layout = layout
	return nil
}

func (b *uploadBackend) DestroyGeometry() {}

func (b *uploadBackend) DrawGeometry(*metadata.GeometryRenderData) error { return nil }

func newInitializedGame(t *testing.T, cfg *config.Config) (*TestGame, *uploadBackend) {
	t.Helper()
	if !core.EventSystemInitialize() {
		t.Fatal("event system already initialized")
	}
	t.Cleanup(func() { core.EventSystemShutdown() })

	g, err := NewTestGame(cfg, "")
	if err != nil {
		t.Fatal(err)
	}
	backend := &uploadBackend{}
	g.Renderer = renderer.New(backend)
	if err := g.Initialize(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { g.Shutdown() })
	return g, backend
}

func seededConfig() *config.Config {
	cfg := config.Default()
	cfg.Scene.Seed = 42
	return cfg
}

func TestNewTestGameRejectsBadConfig(t *testing.T) {
	if _, err := NewTestGame(nil, ""); err == nil {
		t.Error("nil config accepted")
	}
	cfg := config.Default()
	cfg.Scene.Segments = 2
	if _, err := NewTestGame(cfg, ""); err == nil {
		t.Error("two segments accepted")
	}
}

func TestInitializeUploadsBothSolids(t *testing.T) {
	g, backend := newInitializedGame(t, seededConfig())
	state := g.State.(*gameState)

	if backend.layout == nil {
		t.Fatal("nothing uploaded")
	}
	cube := g.Renderer.Geometry(state.cubeID)
	cylinder := g.Renderer.Geometry(state.cylinderID)
	if cube == nil || cylinder == nil {
		t.Fatal("uploaded geometry not found by id")
	}
	if cube.VertexCount != 36 {
		t.Errorf("cube vertices = %d, want 36", cube.VertexCount)
	}
	if cylinder.VertexCount != 64*12 {
		t.Errorf("cylinder vertices = %d, want %d", cylinder.VertexCount, 64*12)
	}
	if cube.PositionOffset != 0 || cube.ColorOffset != 576 || cylinder.PositionOffset != 1152 {
		t.Errorf("offsets = %d/%d/%d, want 0/576/1152",
			cube.PositionOffset, cube.ColorOffset, cylinder.PositionOffset)
	}
}

func TestStepJitter(t *testing.T) {
	cfg := seededConfig()
	g, err := NewTestGame(cfg, "")
	if err != nil {
		t.Fatal(err)
	}
	state := g.State.(*gameState)
	if state.theta != [3]float32{20, 20, 20} {
		t.Fatalf("initial angles = %v", state.theta)
	}

	for i := 0; i < 100; i++ {
		before := state.theta
		state.step()
		for axis := range state.theta {
			d := before[axis] - state.theta[axis]
			if d != 0 && d != 1 {
				t.Fatalf("step %d axis %d moved by %v", i, axis, d)
			}
		}
	}

	state.jitter = 0
	before := state.theta
	state.step()
	if state.theta != before {
		t.Errorf("zero jitter moved the angles: %v -> %v", before, state.theta)
	}
}

func TestStepIsDeterministicForSeed(t *testing.T) {
	a, _ := NewTestGame(seededConfig(), "")
	b, _ := NewTestGame(seededConfig(), "")
	sa := a.State.(*gameState)
	sb := b.State.(*gameState)
	for i := 0; i < 50; i++ {
		sa.step()
		sb.step()
	}
	if sa.theta != sb.theta {
		t.Errorf("same seed diverged: %v vs %v", sa.theta, sb.theta)
	}
}

func TestStepWraps(t *testing.T) {
	g, _ := NewTestGame(seededConfig(), "")
	state := g.State.(*gameState)
	state.theta = [3]float32{-359.5, -359.5, -359.5}
	state.jitter = 0
	for i := range state.theta {
		state.theta[i] = math.WrapDegrees(state.theta[i] - 1)
	}
	for _, th := range state.theta {
		if th != -0.5 {
			t.Errorf("wrapped angle = %v, want -0.5", th)
		}
	}
}

func TestRenderPacket(t *testing.T) {
	g, _ := newInitializedGame(t, seededConfig())
	packet := &metadata.RenderPacket{}
	if err := g.Render(packet, 0); err != nil {
		t.Fatal(err)
	}

	if !packet.ClearColor.Compare(math.NewVec4(1, 1, 1, 1), 0) {
		t.Errorf("clear colour = %v, want white", packet.ClearColor)
	}
	if len(packet.Geometries) != 2 {
		t.Fatalf("packet has %d geometries, want 2", len(packet.Geometries))
	}

	cyl, cube := packet.Geometries[0], packet.Geometries[1]
	if cyl.Geometry.Name != "cylinder" || cyl.ColorMode != metadata.ColorModeUniform {
		t.Errorf("first draw = %s mode %d, want uniform cylinder", cyl.Geometry.Name, cyl.ColorMode)
	}
	if !cyl.Color.Compare(math.NewVec4(0.8, 0, 0, 1), 1e-6) {
		t.Errorf("cylinder colour = %v", cyl.Color)
	}
	if cube.Geometry.Name != "cube" || cube.ColorMode != metadata.ColorModeVertex {
		t.Errorf("second draw = %s mode %d, want per-vertex cube", cube.Geometry.Name, cube.ColorMode)
	}

	// Translation lives in the last column.
	if x := cyl.Model.Data[12]; x < 0.4999 || x > 0.5001 {
		t.Errorf("cylinder x = %v, want 0.5", x)
	}
	if x := cube.Model.Data[12]; x < -0.5001 || x > -0.4999 {
		t.Errorf("cube x = %v, want -0.5", x)
	}

	want := math.NewMat4Translation(math.NewVec3(0.5, 0, 0)).
		Mul(math.NewMat4EulerXYZ(math.DegToRad(20), math.DegToRad(20), math.DegToRad(20))).
		Mul(math.NewMat4Scale(math.NewVec3(0.25, 1, 0.25)))
	if !cyl.Model.Compare(want, 1e-5) {
		t.Errorf("cylinder model = %v, want %v", cyl.Model.Data, want.Data)
	}
}

func TestAxisSelection(t *testing.T) {
	g, _ := newInitializedGame(t, seededConfig())
	state := g.State.(*gameState)
	if state.axis != AxisZ {
		t.Fatalf("default axis = %s, want Z", state.axis)
	}

	tests := []struct {
		ctx  core.EventContext
		want Axis
	}{
		{core.EventContext{Type: core.EVENT_CODE_KEY_PRESSED, Data: &core.KeyEvent{KeyCode: core.KEY_X}}, AxisX},
		{core.EventContext{Type: core.EVENT_CODE_KEY_PRESSED, Data: &core.KeyEvent{KeyCode: core.KEY_Y}}, AxisY},
		{core.EventContext{Type: core.EVENT_CODE_KEY_PRESSED, Data: &core.KeyEvent{KeyCode: core.KEY_SPACE}}, AxisY},
		{core.EventContext{Type: core.EVENT_CODE_BUTTON_PRESSED, Data: &core.MouseEvent{Button: core.BUTTON_RIGHT}}, AxisZ},
		{core.EventContext{Type: core.EVENT_CODE_BUTTON_PRESSED, Data: &core.MouseEvent{Button: core.BUTTON_LEFT}}, AxisX},
		{core.EventContext{Type: core.EVENT_CODE_BUTTON_PRESSED, Data: &core.MouseEvent{Button: core.BUTTON_MIDDLE}}, AxisY},
	}
	for i, tt := range tests {
		core.EventFire(tt.ctx)
		if state.axis != tt.want {
			t.Errorf("event %d: axis = %s, want %s", i, state.axis, tt.want)
		}
	}
}

func TestConfigReloadAppliesLiveValues(t *testing.T) {
	g, _ := newInitializedGame(t, seededConfig())
	state := g.State.(*gameState)

	cfg := seededConfig()
	cfg.Scene.Jitter = 5
	cfg.Scene.CylinderColor = [4]float32{0, 0, 1, 1}
	cfg.Scene.Segments = 8
	if err := g.OnConfigReload(cfg); err != nil {
		t.Fatal(err)
	}
	if state.jitter != 5 {
		t.Errorf("jitter = %d, want 5", state.jitter)
	}
	if !state.cylinderColor.Compare(math.NewVec4(0, 0, 1, 1), 0) {
		t.Errorf("cylinder colour = %v", state.cylinderColor)
	}
	if got := g.Renderer.Geometry(state.cylinderID).VertexCount; got != 64*12 {
		t.Errorf("geometry rebuilt on reload: %d vertices", got)
	}
}

func TestColorFromConfigClamps(t *testing.T) {
	got := colorFromConfig([4]float32{-0.5, 0.25, 2, 1})
	if !got.Compare(math.NewVec4(0, 0.25, 1, 1), 0) {
		t.Errorf("colorFromConfig() = %v", got)
	}
}

func TestRenderWithoutGeometry(t *testing.T) {
	g, err := NewTestGame(seededConfig(), "")
	if err != nil {
		t.Fatal(err)
	}
	g.Renderer = renderer.New(&uploadBackend{})
	if err := g.Render(&metadata.RenderPacket{}, 0); !errors.Is(err, core.ErrNoGeometry) {
		t.Errorf("Render() = %v, want ErrNoGeometry", err)
	}
}

func TestSpaceHoldsRotation(t *testing.T) {
	g, _ := newInitializedGame(t, seededConfig())
	if err := core.InputInitialize(); err != nil {
		t.Fatal(err)
	}
	defer core.InputShutdown()
	state := g.State.(*gameState)
	state.jitter = 1000

	core.InputProcessKey(core.KEY_SPACE, true)
	before := state.theta
	for i := 0; i < 10; i++ {
		g.Update(0)
		core.InputUpdate(0)
	}
	if state.theta != before {
		t.Errorf("angles moved while space was held: %v -> %v", before, state.theta)
	}

	core.InputProcessKey(core.KEY_SPACE, false)
	for i := 0; i < 10; i++ {
		g.Update(0)
		core.InputUpdate(0)
	}
	if state.theta == before {
		t.Error("angles did not move after space was released")
	}
}

func TestInsideClipSpace(t *testing.T) {
	unit := math.Extents3D{Min: math.NewVec3(-0.5, -0.5, -0.5), Max: math.NewVec3(0.5, 0.5, 0.5)}
	scale := math.NewVec3(0.25, 1, 0.25)
	tests := []struct {
		name     string
		position math.Vec3
		rotation math.Vec3
		want     bool
	}{
		{"default cylinder", math.NewVec3(0.5, 0, 0), math.NewVec3(20, 20, 20), true},
		{"default cube", math.NewVec3(-0.5, 0, 0), math.NewVec3(20, 20, 20), true},
		{"pushed off the edge", math.NewVec3(0.95, 0, 0), math.NewVec3(0, 0, 0), false},
		{"tipped onto its side", math.NewVec3(0.6, 0, 0), math.NewVec3(0, 0, 90), false},
	}
	for _, tt := range tests {
		model := math.TransformFromPositionRotationScale(tt.position, tt.rotation, scale).GetLocal()
		if got := insideClipSpace(unit, model); got != tt.want {
			t.Errorf("%s: insideClipSpace() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
