package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/spaghettifunk/anima-ffp/engine/core"
	"github.com/spaghettifunk/anima-ffp/engine/renderer/metadata"
)

// Renderer turns render packets into backend calls. It remembers the lights
// it handed to the backend so every frame only pushes what changed.
type Renderer struct {
	backend RendererBackend

	lights   map[uuid.UUID]metadata.Light
	rejected map[uuid.UUID]struct{}

	viewMatrix       mgl32.Mat4
	projectionMatrix mgl32.Mat4
	viewSet          bool
	projectionSet    bool
}

func New(backend RendererBackend) *Renderer {
	return &Renderer{
		backend:  backend,
		lights:   make(map[uuid.UUID]metadata.Light),
		rejected: make(map[uuid.UUID]struct{}),
	}
}

func (r *Renderer) Initialize() error {
	if err := r.backend.Initialize(); err != nil {
		core.LogError(err.Error())
		return err
	}
	return nil
}

func (r *Renderer) Shutdown() error {
	return r.backend.Shutdown()
}

func (r *Renderer) Backend() RendererBackend {
	return r.backend
}

// DrawFrame renders the packet. A renderable that fails is logged and
// skipped; the frame still ends and the collected errors are returned.
func (r *Renderer) DrawFrame(packet *metadata.RenderPacket) (metadata.RenderStatistics, error) {
	if packet.Viewport == nil {
		err := fmt.Errorf("render packet without a viewport: %w", core.ErrNotFound)
		core.LogError(err.Error())
		return metadata.RenderStatistics{}, err
	}
	r.backend.SetViewport(packet.Viewport)
	if err := r.backend.BeginFrame(); err != nil {
		core.LogError(err.Error())
		return metadata.RenderStatistics{}, err
	}

	if !r.projectionSet || packet.ProjectionMatrix != r.projectionMatrix {
		r.backend.SetProjectionMatrix(packet.ProjectionMatrix)
		r.projectionMatrix = packet.ProjectionMatrix
		r.projectionSet = true
	}
	// the backend refreshes light positions whenever the view changes
	if !r.viewSet || packet.ViewMatrix != r.viewMatrix {
		r.backend.SetViewMatrix(packet.ViewMatrix)
		r.viewMatrix = packet.ViewMatrix
		r.viewSet = true
	}

	r.backend.SetAmbientLight(packet.AmbientLight)
	r.syncLights(packet.Lights)

	var errs []error
	for _, renderable := range packet.Renderables {
		if err := r.drawRenderable(renderable); err != nil {
			core.LogError("failed to draw `%s`: %s", renderable.Name, err.Error())
			errs = append(errs, err)
		}
	}

	if err := r.backend.EndFrame(); err != nil {
		core.LogError("RendererEndFrame failed: %s", err.Error())
		errs = append(errs, err)
	}
	return r.backend.Stats(), errors.Join(errs...)
}

func (r *Renderer) syncLights(lights []*metadata.Light) {
	seen := make(map[uuid.UUID]struct{}, len(lights))
	for _, light := range lights {
		seen[light.ID] = struct{}{}
		known, ok := r.lights[light.ID]
		if !ok {
			if _, skip := r.rejected[light.ID]; skip {
				continue
			}
			if err := r.backend.AddLight(light); err != nil {
				// out of slots: the light stays unlit until another one leaves
				core.LogWarn("light `%s` not added: %s", light.Name, err.Error())
				r.rejected[light.ID] = struct{}{}
				continue
			}
			r.lights[light.ID] = *light
			continue
		}
		if known == *light {
			continue
		}
		if err := r.backend.UpdateLight(light); err != nil {
			core.LogWarn("light `%s` not updated: %s", light.Name, err.Error())
			continue
		}
		r.lights[light.ID] = *light
	}

	removed := false
	for id, known := range r.lights {
		if _, ok := seen[id]; ok {
			continue
		}
		if err := r.backend.RemoveLight(&known); err != nil {
			core.LogWarn("light `%s` not removed: %s", known.Name, err.Error())
		}
		delete(r.lights, id)
		removed = true
	}
	// freed slots give rejected lights another chance next frame
	if removed {
		r.rejected = make(map[uuid.UUID]struct{})
	}
	for id := range r.rejected {
		if _, ok := seen[id]; !ok {
			delete(r.rejected, id)
		}
	}
}

func (r *Renderer) drawRenderable(renderable *metadata.Renderable) error {
	if renderable.Operation == nil {
		return fmt.Errorf("renderable `%s` has no render operation: %w", renderable.Name, core.ErrNotFound)
	}
	pass := renderable.Pass
	if pass == nil {
		pass = metadata.NewPass()
	}

	r.backend.SetWorldMatrix(renderable.WorldTransform)
	r.backend.SetSurfaceParams(pass.Ambient, pass.Diffuse, pass.Specular, pass.Emissive, pass.Shininess)
	r.backend.SetLightingEnabled(pass.Lighting)
	r.backend.SetSceneBlending(pass.SourceBlendFactor, pass.DestBlendFactor)
	r.backend.SetDepthCheck(pass.DepthCheck)
	r.backend.SetDepthWrite(pass.DepthWrite)
	r.backend.SetDepthFunction(pass.DepthFunction)
	r.backend.SetCullingMode(pass.Culling)

	units := len(pass.TextureUnits)
	if available := r.backend.NumTextureUnits(); units > available {
		core.LogWarn("`%s` uses %d texture units, only %d available", renderable.Name, units, available)
		units = available
	}
	for i := 0; i < units; i++ {
		if err := r.backend.SetTextureUnit(i, pass.TextureUnits[i]); err != nil {
			return err
		}
	}
	r.backend.DisableTextureUnitsFrom(units)

	return r.backend.Render(renderable.Operation)
}
