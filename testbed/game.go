package testbed

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/anima-ffp/engine"
	"github.com/spaghettifunk/anima-ffp/engine/config"
	"github.com/spaghettifunk/anima-ffp/engine/core"
	"github.com/spaghettifunk/anima-ffp/engine/renderer/components"
	"github.com/spaghettifunk/anima-ffp/engine/renderer/metadata"
)

// crateTextureName is looked up in the texture directory; a checkerboard is
// used when it is missing.
const crateTextureName = "crate"

type TestGame struct {
	*engine.Game
}

type gameState struct {
	WorldCamera *components.Camera

	width  uint32
	height uint32

	cube          *metadata.Renderable
	cubeTransform *components.Transform
	lampPivot     *components.Transform
	lampTransform *components.Transform

	crate  *metadata.Texture
	envMap *metadata.Texture
	sun    *metadata.Light
	lamp   *metadata.Light
	lampOn bool
	fogOn  bool
}

func NewTestGame(cfg *config.Config) *TestGame {
	tg := &TestGame{
		Game: &engine.Game{
			Config: cfg,
			State:  &gameState{lampOn: true},
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown

	return tg
}

func (g *TestGame) Initialize() error {
	core.LogDebug("TestGame Initialize fn....")

	if g.Renderer == nil {
		return fmt.Errorf("the engine did not hand over a renderer: %w", core.ErrNotFound)
	}
	state := g.State.(*gameState)

	state.WorldCamera = components.NewCamera()
	state.WorldCamera.SetPosition(mgl32.Vec3{0, 2, 8})
	state.WorldCamera.Pitch(mgl32.DegToRad(-12))

	backend := g.Renderer.Backend()

	state.crate = &metadata.Texture{Name: crateTextureName, TextureType: metadata.TextureType2d, MipMaps: 1}
	if err := g.uploadCrate(); err != nil {
		return err
	}

	state.envMap = &metadata.Texture{Name: "environment", TextureType: metadata.TextureType2d, Width: 64, Height: 64, Format: metadata.PixelFormatRGBA8}
	if err := backend.TextureCreate(state.envMap, skyGradient(64, 64)); err != nil {
		return err
	}

	op, err := g.Renderer.CreateGeometry(metadata.GenerateCubeConfig(2, 2, 2, 1, 1, "test_cube"))
	if err != nil {
		return err
	}

	base := metadata.NewTextureUnitState(state.crate)
	base.MipFilter = metadata.FilterOptionsLinear
	base.Anisotropy = 4

	// shiny coat: 30% of the reflected sky over the lit crate
	reflection := metadata.NewTextureUnitState(state.envMap)
	reflection.CoordCalc = metadata.TexCoordCalcEnvironmentMapReflection
	reflection.ColourBlendMode.Operation = metadata.LayerBlendOperationBlendManual
	reflection.ColourBlendMode.BlendFactor = 0.3

	pass := metadata.NewPass()
	pass.Specular = mgl32.Vec4{0.6, 0.6, 0.6, 1}
	pass.Shininess = 32
	pass.TextureUnits = []*metadata.TextureUnitState{base, reflection}

	state.cube = &metadata.Renderable{
		Name:           "test_cube",
		WorldTransform: mgl32.Ident4(),
		Pass:           pass,
		Operation:      op,
	}

	state.sun = metadata.NewLight("sun", metadata.LightTypeDirectional)
	state.sun.DerivedDirection = mgl32.Vec3{-0.3, -1, -0.5}.Normalize()
	state.sun.Diffuse = mgl32.Vec4{0.9, 0.85, 0.7, 1}

	state.lamp = metadata.NewLight("lamp", metadata.LightTypePoint)
	state.lamp.Diffuse = mgl32.Vec4{0.2, 0.4, 1, 1}
	state.lamp.Specular = mgl32.Vec4{1, 1, 1, 1}
	state.lamp.AttenuationLinear = 0.1

	state.cubeTransform = components.NewTransform()
	// the lamp circles the cube on a pivot raised above it
	state.lampPivot = components.NewTransformFromPosition(mgl32.Vec3{0, 1, 0})
	state.lampTransform = components.NewTransformFromPosition(mgl32.Vec3{3, 0, 0})
	state.lampTransform.Parent = state.lampPivot

	g.Events.Register(core.EVENT_CODE_KEY_PRESSED, g, g.gameOnKey)
	g.Events.Register(core.EVENT_CODE_ASSET_RELOADED, g, g.gameOnAssetReloaded)

	return nil
}

var tempMoveSpeed float32 = 5.0

func (g *TestGame) Update(deltaTime float64) error {
	state := g.State.(*gameState)
	dt := float32(deltaTime)
	in := g.Input

	if in.IsKeyDown(core.KEY_A) || in.IsKeyDown(core.KEY_LEFT) {
		state.WorldCamera.Yaw(1.0 * dt)
	}
	if in.IsKeyDown(core.KEY_D) || in.IsKeyDown(core.KEY_RIGHT) {
		state.WorldCamera.Yaw(-1.0 * dt)
	}
	if in.IsKeyDown(core.KEY_UP) {
		state.WorldCamera.Pitch(1.0 * dt)
	}
	if in.IsKeyDown(core.KEY_DOWN) {
		state.WorldCamera.Pitch(-1.0 * dt)
	}
	if in.IsKeyDown(core.KEY_W) {
		state.WorldCamera.MoveForward(tempMoveSpeed * dt)
	}
	if in.IsKeyDown(core.KEY_S) {
		state.WorldCamera.MoveBackward(tempMoveSpeed * dt)
	}
	if in.IsKeyDown(core.KEY_Q) {
		state.WorldCamera.MoveDown(tempMoveSpeed * dt)
	}
	if in.IsKeyDown(core.KEY_E) {
		state.WorldCamera.MoveUp(tempMoveSpeed * dt)
	}
	if in.IsKeyDown(core.KEY_SPACE) {
		state.WorldCamera.Reset()
		state.WorldCamera.SetPosition(mgl32.Vec3{0, 2, 8})
	}

	// Perform a small rotation on the cube and orbit the lamp around it.
	state.cubeTransform.Rotate(mgl32.QuatRotate(0.5*dt, mgl32.Vec3{0, 1, 0}))
	state.cubeTransform.Rotate(mgl32.QuatRotate(0.15*dt, mgl32.Vec3{1, 0, 0}))
	state.cube.WorldTransform = state.cubeTransform.GetWorld()

	state.lampPivot.Rotate(mgl32.QuatRotate(0.8*dt, mgl32.Vec3{0, 1, 0}))
	state.lamp.DerivedPosition = state.lampTransform.GetWorldPosition()

	return nil
}

func (g *TestGame) Render(packet *metadata.RenderPacket, deltaTime float64) error {
	state := g.State.(*gameState)

	aspect := float32(1)
	if state.height > 0 {
		aspect = float32(state.width) / float32(state.height)
	}
	packet.ProjectionMatrix = mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, 1000)
	packet.ViewMatrix = state.WorldCamera.GetView()
	packet.AmbientLight = mgl32.Vec4{0.15, 0.15, 0.2, 1}

	packet.Lights = []*metadata.Light{state.sun}
	if state.lampOn {
		packet.Lights = append(packet.Lights, state.lamp)
	}
	packet.Renderables = []*metadata.Renderable{state.cube}
	return nil
}

func (g *TestGame) OnResize(width uint32, height uint32) error {
	state := g.State.(*gameState)
	state.width = width
	state.height = height
	return nil
}

func (g *TestGame) Shutdown() error {
	state := g.State.(*gameState)
	g.Events.Unregister(core.EVENT_CODE_KEY_PRESSED, g)
	g.Events.Unregister(core.EVENT_CODE_ASSET_RELOADED, g)

	backend := g.Renderer.Backend()
	if state.cube != nil {
		if err := g.Renderer.DestroyGeometry(state.cube.Operation); err != nil {
			core.LogWarn("failed to release cube buffers: %s", err.Error())
		}
	}
	for _, t := range []*metadata.Texture{state.crate, state.envMap} {
		if t != nil {
			backend.TextureDestroy(t)
		}
	}
	return nil
}

// uploadCrate loads the crate image, falling back to a checkerboard.
func (g *TestGame) uploadCrate() error {
	img, err := g.Assets.LoadImage(crateTextureName, &metadata.ImageParams{FlipY: true})
	if err != nil {
		core.LogWarn("no `%s` texture, using a checkerboard", crateTextureName)
		img = &metadata.Image{Name: crateTextureName, Width: 64, Height: 64, Format: metadata.PixelFormatRGBA8, Pixels: checkerboard(64, 64, 8)}
	}
	return g.uploadImage(g.State.(*gameState).crate, img)
}

func (g *TestGame) uploadImage(texture *metadata.Texture, img *metadata.Image) error {
	texture.Width, texture.Height, texture.Format = img.Width, img.Height, img.Format
	return g.Renderer.Backend().TextureCreate(texture, img.Pixels)
}

// gameOnAssetReloaded decodes the changed crate image on a worker and
// uploads it from the main loop once ready.
func (g *TestGame) gameOnAssetReloaded(context core.EventContext) bool {
	name, ok := context.Data.(string)
	if !ok || name != crateTextureName {
		return false
	}
	crate := g.State.(*gameState).crate
	err := g.Jobs.Submit(core.JobTask{
		Name: "reload " + name,
		Run: func() (interface{}, error) {
			return g.Assets.LoadImage(name, &metadata.ImageParams{FlipY: true})
		},
		OnComplete: func(result interface{}) {
			if err := g.uploadImage(crate, result.(*metadata.Image)); err != nil {
				core.LogError("failed to upload `%s`: %s", name, err.Error())
				return
			}
			core.LogInfo("texture `%s` reloaded (generation %d)", name, crate.Generation)
		},
	})
	if err != nil {
		core.LogWarn("texture `%s` not reloaded: %s", name, err.Error())
		return false
	}
	return true
}

func (g *TestGame) gameOnKey(context core.EventContext) bool {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		return false
	}
	state := g.State.(*gameState)
	switch ke.KeyCode {
	case core.KEY_L:
		state.lampOn = !state.lampOn
		core.LogDebug("lamp on: %t", state.lampOn)
		return true
	case core.KEY_F:
		state.fogOn = !state.fogOn
		if state.fogOn {
			g.Renderer.Backend().SetFog(metadata.FogModeLinear, mgl32.Vec4{0.1, 0.1, 0.15, 1}, 0, 5, 20)
		} else {
			g.Renderer.Backend().SetFog(metadata.FogModeNone, mgl32.Vec4{}, 0, 0, 0)
		}
		core.LogDebug("fog on: %t", state.fogOn)
		return true
	}
	return false
}

func checkerboard(width, height, cell int) []byte {
	pixels := make([]byte, 0, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := byte(70)
			if (x/cell+y/cell)%2 == 0 {
				v = 200
			}
			pixels = append(pixels, v, v*3/4, v/2, 255)
		}
	}
	return pixels
}

// skyGradient is a sphere map style sky: bright horizon, deep blue zenith.
func skyGradient(width, height int) []byte {
	pixels := make([]byte, 0, width*height*4)
	for y := 0; y < height; y++ {
		t := float64(y) / float64(height-1)
		r := byte(40 + 180*t)
		gr := byte(80 + 150*t)
		for x := 0; x < width; x++ {
			pixels = append(pixels, r, gr, 255, 255)
		}
	}
	return pixels
}
