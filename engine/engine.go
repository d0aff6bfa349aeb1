package engine

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/spaghettifunk/solids/engine/config"
	"github.com/spaghettifunk/solids/engine/core"
	"github.com/spaghettifunk/solids/engine/platform"
	"github.com/spaghettifunk/solids/engine/renderer"
	"github.com/spaghettifunk/solids/engine/renderer/metadata"
	"github.com/spaghettifunk/solids/engine/renderer/opengl"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently booting up
	EngineStageBooting
	// Engine completed boot process and is ready to be initialized
	EngineStageBootComplete
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

// How often the window title is refreshed with the frame metrics.
const metricsRefreshSeconds = 1.0

type Engine struct {
	currentStage Stage
	gameInstance *Game
	isRunning    atomic.Bool
	isSuspended  bool
	platform     *platform.Platform
	renderer     *renderer.Renderer
	watcher      *config.Watcher
	width        uint32
	height       uint32
	clock        *core.Clock
	metrics      *core.Metrics
	lastTime     float64
}

func New(g *Game) (*Engine, error) {
	if g == nil || g.ApplicationConfig == nil {
		return nil, errors.New("game and application config are required")
	}
	p, err := platform.New()
	if err != nil {
		return nil, err
	}

	e := &Engine{
		currentStage: EngineStageBooting,
		gameInstance: g,
		platform:     p,
		renderer:     renderer.New(opengl.New(p.SwapBuffers)),
		width:        g.ApplicationConfig.StartWidth,
		height:       g.ApplicationConfig.StartHeight,
		clock:        core.NewClock(),
		metrics:      core.NewMetrics(),
	}
	core.SetLogLevel(g.ApplicationConfig.LogLevel)
	e.currentStage = EngineStageBootComplete
	return e, nil
}

func (e *Engine) Initialize() error {
	if e.currentStage != EngineStageBootComplete {
		return fmt.Errorf("engine cannot be initialized from stage %d", e.currentStage)
	}
	e.currentStage = EngineStageInitializing
	appConfig := e.gameInstance.ApplicationConfig

	// initialize input
	if err := core.InputInitialize(); err != nil {
		return err
	}

	// initialize events
	if !core.EventSystemInitialize() {
		return fmt.Errorf("failed to initialize the event system")
	}

	// register some events
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e.onEvent)
	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, e.onKey)
	core.EventRegister(core.EVENT_CODE_KEY_RELEASED, e.onKey)
	core.EventRegister(core.EVENT_CODE_RESIZED, e.onResized)
	core.EventRegister(core.EVENT_CODE_CONFIG_RELOADED, e.onConfigReloaded)

	if err := e.platform.Startup(appConfig.Name,
		appConfig.StartPosX,
		appConfig.StartPosY,
		appConfig.StartWidth,
		appConfig.StartHeight); err != nil {
		return err
	}
	e.width, e.height = e.platform.FramebufferSize()

	if err := e.renderer.Initialize(appConfig.Name, e.width, e.height); err != nil {
		return err
	}
	e.gameInstance.Renderer = e.renderer

	if err := e.gameInstance.FnInitialize(); err != nil {
		return fmt.Errorf("failed to initialize the game: %w", err)
	}
	if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
		return err
	}

	if appConfig.ConfigPath != "" {
		w, err := config.NewWatcher(appConfig.ConfigPath)
		if err != nil {
			// Live reload is a convenience; the demo runs without it.
			core.LogWarn("configuration reload disabled: %s", err)
		} else {
			e.watcher = w
		}
	}

	// Stop is honoured from here on, even before Run.
	e.isRunning.Store(true)
	e.currentStage = EngineStageInitialized
	return nil
}

func (e *Engine) Run() error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("engine cannot run from stage %d", e.currentStage)
	}
	e.currentStage = EngineStageRunning

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	var sinceTitle float64 = 0.0

	for e.isRunning.Load() {
		if !e.platform.PumpMessages() {
			e.isRunning.Store(false)
			break
		}
		e.pollConfig()

		if e.isSuspended {
			continue
		}

		// Update clock and get delta time.
		e.clock.Update()
		var currentTime float64 = e.clock.Elapsed()
		var delta float64 = (currentTime - e.lastTime)
		var frameStartTime float64 = e.platform.GetAbsoluteTime()

		if err := e.frame(delta); err != nil {
			core.LogError("%s, shutting down.", err)
			e.isRunning.Store(false)
			return err
		}

		var frameElapsedTime float64 = e.platform.GetAbsoluteTime() - frameStartTime
		e.metrics.Update(frameElapsedTime)
		sinceTitle += delta
		if sinceTitle >= metricsRefreshSeconds {
			sinceTitle = 0
			e.platform.SetTitle(fmt.Sprintf("%s - %.0f FPS (%.2f ms)",
				e.gameInstance.ApplicationConfig.Name, e.metrics.FPS(), e.metrics.FrameTime()))
		}

		// NOTE: Input update/state copying should always be handled
		// after any input should be recorded; I.E. before this line.
		// As a safety, input is the last thing to be updated before
		// this frame ends.
		core.InputUpdate(delta)

		// Update last time
		e.lastTime = currentTime
	}

	return nil
}

// frame runs one game update and draws the packet the game fills in.
func (e *Engine) frame(delta float64) error {
	if err := e.gameInstance.FnUpdate(delta); err != nil {
		return fmt.Errorf("game update failed: %w", err)
	}

	packet := &metadata.RenderPacket{DeltaTime: delta}
	if err := e.gameInstance.FnRender(packet, delta); err != nil {
		return fmt.Errorf("game render failed: %w", err)
	}
	if err := e.renderer.DrawFrame(packet); err != nil {
		return fmt.Errorf("draw frame failed: %w", err)
	}
	return nil
}

// pollConfig forwards a pending reload, if any, without blocking the loop.
func (e *Engine) pollConfig() {
	if e.watcher == nil {
		return
	}
	select {
	case cfg, ok := <-e.watcher.Updates():
		if !ok {
			e.watcher = nil
			return
		}
		core.EventFire(core.EventContext{
			Type: core.EVENT_CODE_CONFIG_RELOADED,
			Data: cfg,
		})
	default:
	}
}

// Stop asks the run loop to exit after the current frame. Safe to call from
// any goroutine.
func (e *Engine) Stop() {
	e.isRunning.Store(false)
}

// Shutdown releases everything Initialize acquired. It must run on the main
// thread, after Run has returned.
func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	e.isRunning.Store(false)

	var errs []error
	if e.watcher != nil {
		errs = append(errs, e.watcher.Close())
		e.watcher = nil
	}
	if e.gameInstance.FnShutdown != nil {
		errs = append(errs, e.gameInstance.FnShutdown())
	}
	errs = append(errs, e.renderer.Shutdown())
	errs = append(errs, core.EventSystemShutdown())
	errs = append(errs, core.InputShutdown())
	errs = append(errs, e.platform.Shutdown())

	e.currentStage = EngineStageUninitialized
	return errors.Join(errs...)
}

func (e *Engine) onEvent(context core.EventContext) bool {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.Stop()
		return true
	}
	return false
}

func (e *Engine) onKey(context core.EventContext) bool {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}

	if context.Type == core.EVENT_CODE_KEY_PRESSED {
		switch ke.KeyCode {
		case core.KEY_ESCAPE, core.KEY_Q:
			// NOTE: Technically firing an event to itself, but there may be other listeners.
			core.EventFire(core.EventContext{
				Type: core.EVENT_CODE_APPLICATION_QUIT,
			})
			// Block anything else from processing this.
			return true
		}
		core.LogDebug("'%c' key pressed in window.", rune(ke.KeyCode))
	} else {
		core.LogDebug("'%c' key released in window.", rune(ke.KeyCode))
	}
	return false
}

func (e *Engine) onResized(context core.EventContext) bool {
	se, ok := context.Data.(*core.SystemEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}

	width := se.WindowWidth
	height := se.WindowHeight

	// Check if different. If so, trigger a resize event.
	if width == e.width && height == e.height {
		return false
	}
	e.width = width
	e.height = height
	core.LogDebug("Window resize: %d, %d", width, height)

	// Handle minimization
	if width == 0 || height == 0 {
		core.LogInfo("Window minimized, suspending application.")
		e.isSuspended = true
		return true
	}
	if e.isSuspended {
		core.LogInfo("Window restored, resuming application.")
		e.isSuspended = false
	}
	if err := e.gameInstance.FnOnResize(width, height); err != nil {
		core.LogError(err.Error())
	}
	if err := e.renderer.OnResize(width, height); err != nil {
		core.LogError(err.Error())
	}
	return true
}

func (e *Engine) onConfigReloaded(context core.EventContext) bool {
	cfg, ok := context.Data.(*config.Config)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}
	core.SetLogLevel(cfg.LogLevel())
	if e.gameInstance.FnOnConfigReload != nil {
		if err := e.gameInstance.FnOnConfigReload(cfg); err != nil {
			core.LogError("failed to apply configuration: %s", err)
		}
	}
	return false
}
