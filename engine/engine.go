package engine

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/spaghettifunk/anima-ffp/engine/assets"
	"github.com/spaghettifunk/anima-ffp/engine/config"
	"github.com/spaghettifunk/anima-ffp/engine/core"
	"github.com/spaghettifunk/anima-ffp/engine/platform"
	"github.com/spaghettifunk/anima-ffp/engine/renderer"
	"github.com/spaghettifunk/anima-ffp/engine/renderer/metadata"
	"github.com/spaghettifunk/anima-ffp/engine/renderer/opengl"
	"github.com/spaghettifunk/anima-ffp/engine/renderer/opengl/gl21"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

var _ renderer.RendererBackend = (*opengl.OpenGLRenderer)(nil)

// metricsLogInterval is the number of frames between two metric reports.
const metricsLogInterval = 600

const (
	jobWorkers   = 2
	jobQueueSize = 32
)

type Engine struct {
	currentStage Stage
	gameInstance *Game
	config       *config.Config

	isRunning   atomic.Bool
	isSuspended bool

	bus          *core.EventBus
	input        *core.Input
	platform     *platform.Platform
	assetManager *assets.AssetManager
	jobs         *core.JobSystem
	renderer     *renderer.Renderer

	viewport *metadata.Viewport
	width    uint32
	height   uint32
	clock    *core.Clock
	metrics  *core.Metrics
	lastTime float64
}

func New(g *Game) (*Engine, error) {
	if g.Config == nil {
		g.Config = config.Default()
	}
	if err := g.Config.Validate(); err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	level, err := core.ParseLogLevel(g.Config.Application.LogLevel)
	if err != nil {
		return nil, err
	}
	core.SetLogLevel(level)

	bus := core.NewEventBus()
	input := core.NewInput(bus)
	app := g.Config.Application

	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		config:       g.Config,
		bus:          bus,
		input:        input,
		platform:     platform.New(input, bus),
		clock:        core.NewClock(),
		metrics:      core.NewMetrics(),
		width:        app.StartWidth,
		height:       app.StartHeight,
	}, nil
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing
	app := e.config.Application

	e.bus.Register(core.EVENT_CODE_APPLICATION_QUIT, e, e.onEvent)
	e.bus.Register(core.EVENT_CODE_KEY_PRESSED, e, e.onKey)
	e.bus.Register(core.EVENT_CODE_RESIZED, e, e.onResized)

	if err := e.platform.Startup(app.Name, app.StartPosX, app.StartPosY, app.StartWidth, app.StartHeight, e.config.Renderer.VSync); err != nil {
		return err
	}
	e.width, e.height = e.platform.FramebufferSize()

	functions, err := gl21.New()
	if err != nil {
		core.LogError(err.Error())
		return err
	}
	backend := opengl.New(functions, metadata.RendererBackendConfig{
		ApplicationName:      app.Name,
		ForceSoftwareBuffers: e.config.Renderer.ForceSoftwareBuffers,
		MaxLights:            e.config.Renderer.MaxLights,
		MaxTextureUnits:      e.config.Renderer.MaxTextureUnits,
	})
	e.renderer = renderer.New(backend)
	if err := e.renderer.Initialize(); err != nil {
		return err
	}

	am, err := assets.NewAssetManager(e.config.Assets.TextureDir, e.config.Assets.Watch)
	if err != nil {
		return err
	}
	e.assetManager = am

	jobs, err := core.NewJobSystem(jobWorkers, jobQueueSize)
	if err != nil {
		return err
	}
	e.jobs = jobs

	e.viewport = &metadata.Viewport{
		Width:            int(e.width),
		Height:           int(e.height),
		TargetHeight:     int(e.height),
		ClearEveryFrame:  e.config.Renderer.ClearEveryFrame,
		BackgroundColour: e.config.Renderer.BackgroundColour,
	}

	g := e.gameInstance
	g.Renderer = e.renderer
	g.Assets = e.assetManager
	g.Jobs = e.jobs
	g.Input = e.input
	g.Events = e.bus

	if err := g.FnInitialize(); err != nil {
		return err
	}
	if err := g.FnOnResize(e.width, e.height); err != nil {
		return err
	}
	e.currentStage = EngineStageInitialized
	return nil
}

// Stop asks the frame loop to end. It is safe to call from any goroutine.
func (e *Engine) Stop() {
	e.isRunning.Store(false)
}

// Run drives the frame loop on the calling goroutine, which must be the one
// that called Initialize, and shuts the engine down when the loop ends.
func (e *Engine) Run() error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("engine not initialized: %w", core.ErrNotFound)
	}
	e.currentStage = EngineStageRunning
	e.isRunning.Store(true)

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.ElapsedSeconds()

	var runErr error
	for e.isRunning.Load() {
		if !e.platform.PumpMessages() {
			e.isRunning.Store(false)
			break
		}
		e.reloadChangedAssets()
		e.jobs.Update()

		if e.isSuspended {
			time.Sleep(10 * time.Millisecond)
			continue
		}

		// Update clock and get delta time.
		e.clock.Update()
		currentTime := e.clock.ElapsedSeconds()
		delta := currentTime - e.lastTime
		frameStartTime := time.Now()

		if err := e.gameInstance.FnUpdate(delta); err != nil {
			core.LogError("game update failed, shutting down: %s", err.Error())
			runErr = err
			break
		}

		packet := &metadata.RenderPacket{
			DeltaTime: delta,
			Viewport:  e.viewport,
		}
		if err := e.gameInstance.FnRender(packet, delta); err != nil {
			core.LogError("game render failed, shutting down: %s", err.Error())
			runErr = err
			break
		}

		// individual renderables may fail, the frame itself still went out
		stats, _ := e.renderer.DrawFrame(packet)
		e.platform.SwapBuffers()

		e.metrics.Update(time.Since(frameStartTime).Seconds())
		e.metrics.RecordRender(stats.DrawCalls, stats.Vertices, stats.Primitives, stats.SkippedStates)
		if stats.Frame%metricsLogInterval == 0 {
			fps, frameTime := e.metrics.Frame()
			core.LogDebug("fps %.1f (%.2fms), %d draws, %d vertices, %d skipped state calls",
				fps, frameTime, stats.DrawCalls, stats.Vertices, stats.SkippedStates)
		}

		// NOTE: Input update/state copying should always be handled
		// after any input should be recorded; I.E. before this line.
		e.input.Update()
		e.lastTime = currentTime
	}

	if err := e.shutdown(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

func (e *Engine) shutdown() error {
	e.currentStage = EngineStageShuttingDown
	e.clock.Stop()

	// finish the workers first so no upload lands after the game released
	// its resources
	if e.jobs != nil {
		_ = e.jobs.Shutdown()
	}
	var err error
	if e.gameInstance.FnShutdown != nil {
		err = e.gameInstance.FnShutdown()
	}
	if e.assetManager != nil {
		if cerr := e.assetManager.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if e.renderer != nil {
		if rerr := e.renderer.Shutdown(); rerr != nil && err == nil {
			err = rerr
		}
	}
	if perr := e.platform.Shutdown(); perr != nil && err == nil {
		err = perr
	}
	e.bus.Shutdown()
	e.currentStage = EngineStageUninitialized
	return err
}

// reloadChangedAssets forwards every pending asset change to the listeners
// of EVENT_CODE_ASSET_RELOADED without blocking the frame.
func (e *Engine) reloadChangedAssets() {
	for {
		select {
		case name, ok := <-e.assetManager.Changes():
			if !ok {
				return
			}
			core.LogInfo("asset `%s` changed on disk", name)
			e.bus.Fire(core.EVENT_CODE_ASSET_RELOADED, e, name)
		default:
			return
		}
	}
}

// GetFramebufferSize returns the width and height (in this order)
// of the application framebuffer
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

func (e *Engine) onEvent(context core.EventContext) bool {
	if context.Code == core.EVENT_CODE_APPLICATION_QUIT {
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.Stop()
		return true
	}
	return false
}

func (e *Engine) onKey(context core.EventContext) bool {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Code)
		return false
	}
	if ke.KeyCode == core.KEY_ESCAPE {
		// NOTE: Technically firing an event to itself, but there may be other listeners.
		e.bus.Fire(core.EVENT_CODE_APPLICATION_QUIT, e, nil)
		// Block anything else from processing this.
		return true
	}
	return false
}

func (e *Engine) onResized(context core.EventContext) bool {
	re, ok := context.Data.(*core.ResizeEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Code)
		return false
	}
	width, height := re.Width, re.Height
	if width == e.width && height == e.height {
		return false
	}
	e.width, e.height = width, height
	core.LogDebug("Window resize: %d, %d", width, height)

	// Handle minimization
	if width == 0 || height == 0 {
		core.LogInfo("Window minimized, suspending application.")
		e.isSuspended = true
		return false
	}
	if e.isSuspended {
		core.LogInfo("Window restored, resuming application.")
		e.isSuspended = false
	}
	e.viewport.Width = int(width)
	e.viewport.Height = int(height)
	e.viewport.TargetHeight = int(height)
	if err := e.gameInstance.FnOnResize(width, height); err != nil {
		core.LogError(err.Error())
	}
	// other listeners may want the new size too
	return false
}
