package engine

import (
	"github.com/spaghettifunk/solids/engine/config"
	"github.com/spaghettifunk/solids/engine/renderer"
	"github.com/spaghettifunk/solids/engine/renderer/metadata"
)

type Game struct {
	ApplicationConfig *ApplicationConfig
	// Set by the engine before FnInitialize is called.
	Renderer         *renderer.Renderer
	State            interface{}
	FnInitialize     Initialize
	FnUpdate         Update
	FnRender         Render
	FnOnResize       OnResize
	FnShutdown       Shutdown
	FnOnConfigReload OnConfigReload
}

type Initialize func() error
type Update func(deltaTime float64) error
type Render func(packet *metadata.RenderPacket, deltaTime float64) error
type OnResize func(width uint32, height uint32) error
type Shutdown func() error
type OnConfigReload func(cfg *config.Config) error
