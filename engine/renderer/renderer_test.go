package renderer

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/spaghettifunk/solids/engine/core"
	"github.com/spaghettifunk/solids/engine/geometry"
	"github.com/spaghettifunk/solids/engine/math"
	"github.com/spaghettifunk/solids/engine/renderer/metadata"
)

type fakeBackend struct {
	calls    []string
	drawErr  error
	layout   *metadata.BufferLayout
	destroys int
}

func (f *fakeBackend) Initialize(string, uint32, uint32) error { return nil }

func (f *fakeBackend) Shutdown() error {
	f.calls = append(f.calls, "shutdown")
	return nil
}

func (f *fakeBackend) Resized(uint32, uint32) error { return nil }

func (f *fakeBackend) BeginFrame(math.Vec4, float64) error {
	f.calls = append(f.calls, "begin")
	return nil
}

func (f *fakeBackend) EndFrame(float64) error {
	f.calls = append(f.calls, "end")
	return nil
}

func (f *fakeBackend) CreateGeometry(layout *metadata.BufferLayout) error {
	f.layout = layout
	return nil
}

func (f *fakeBackend) DestroyGeometry() { f.destroys++ }

func (f *fakeBackend) DrawGeometry(data *metadata.GeometryRenderData) error {
	f.calls = append(f.calls, "draw:"+data.Geometry.Name)
	return f.drawErr
}

func TestDrawFrameOrder(t *testing.T) {
	fb := &fakeBackend{}
	r := New(fb)
	geometries, err := r.UploadGeometry(geometry.GenerateCube(), &geometry.GenerateCylinder(geometry.DefaultCylinderConfig()).Mesh)
	if err != nil {
		t.Fatal(err)
	}
	if len(geometries) != 2 || fb.layout == nil {
		t.Fatalf("expected two uploaded geometries, got %d", len(geometries))
	}

	packet := &metadata.RenderPacket{
		Geometries: []*metadata.GeometryRenderData{
			{Geometry: geometries[1]},
			{Geometry: geometries[0]},
		},
	}
	if err := r.DrawFrame(packet); err != nil {
		t.Fatal(err)
	}
	want := []string{"begin", "draw:cylinder", "draw:cube", "end"}
	if len(fb.calls) != len(want) {
		t.Fatalf("got calls %v", fb.calls)
	}
	for i := range want {
		if fb.calls[i] != want[i] {
			t.Errorf("call %d: got %s, want %s", i, fb.calls[i], want[i])
		}
	}

	if err := r.Shutdown(); err != nil {
		t.Fatal(err)
	}
	if fb.destroys != 1 {
		t.Errorf("expected geometry to be destroyed once, got %d", fb.destroys)
	}
}

func TestDrawFrameStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	fb := &fakeBackend{drawErr: boom}
	r := New(fb)
	geometries, err := r.UploadGeometry(geometry.GenerateCube())
	if err != nil {
		t.Fatal(err)
	}
	err = r.DrawFrame(&metadata.RenderPacket{Geometries: []*metadata.GeometryRenderData{{Geometry: geometries[0]}}})
	if !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
	for _, c := range fb.calls {
		if c == "end" {
			t.Error("frame must not end after a failed draw")
		}
	}
}

func TestDrawFrameRejectsMissingGeometry(t *testing.T) {
	fb := &fakeBackend{drawErr: core.ErrNoGeometry}
	r := New(fb)
	for _, data := range []*metadata.GeometryRenderData{{}, nil} {
		fb.calls = nil
		err := r.DrawFrame(&metadata.RenderPacket{Geometries: []*metadata.GeometryRenderData{data}})
		if !errors.Is(err, core.ErrNoGeometry) {
			t.Fatalf("got %v, want ErrNoGeometry", err)
		}
		for _, c := range fb.calls {
			if c != "begin" {
				t.Errorf("unexpected backend call %q", c)
			}
		}
	}
}

func TestGeometryLookupByID(t *testing.T) {
	r := New(&fakeBackend{})
	if r.Geometry(uuid.New()) != nil {
		t.Error("lookup before upload must return nil")
	}
	geometries, err := r.UploadGeometry(geometry.GenerateCube(), &geometry.GenerateCylinder(geometry.DefaultCylinderConfig()).Mesh)
	if err != nil {
		t.Fatal(err)
	}
	for _, g := range geometries {
		if got := r.Geometry(g.ID); got != g {
			t.Errorf("Geometry(%s) = %v, want %s", g.ID, got, g.Name)
		}
	}
	if err := r.Shutdown(); err != nil {
		t.Fatal(err)
	}
	if r.Geometry(geometries[0].ID) != nil {
		t.Error("lookup after shutdown must return nil")
	}
}
