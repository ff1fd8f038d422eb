package engine

import (
	"github.com/spaghettifunk/anima-ffp/engine/assets"
	"github.com/spaghettifunk/anima-ffp/engine/config"
	"github.com/spaghettifunk/anima-ffp/engine/core"
	"github.com/spaghettifunk/anima-ffp/engine/renderer"
	"github.com/spaghettifunk/anima-ffp/engine/renderer/metadata"
)

// Game is implemented by applications running on the engine. The engine
// fills in the subsystem fields before calling FnInitialize.
type Game struct {
	Config *config.Config
	State  interface{}

	Renderer *renderer.Renderer
	Assets   *assets.AssetManager
	Jobs     *core.JobSystem
	Input    *core.Input
	Events   *core.EventBus

	FnInitialize Initialize
	FnUpdate     Update
	FnRender     Render
	FnOnResize   OnResize
	FnShutdown   Shutdown
}

type Initialize func() error
type Update func(deltaTime float64) error
type Render func(packet *metadata.RenderPacket, deltaTime float64) error
type OnResize func(width uint32, height uint32) error
type Shutdown func() error
