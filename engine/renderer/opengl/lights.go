package opengl

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/anima-ffp/engine/containers"
	"github.com/spaghettifunk/anima-ffp/engine/core"
	"github.com/spaghettifunk/anima-ffp/engine/renderer/metadata"
)

// LightTable maps scene lights to the driver's fixed light slots.
type LightTable struct {
	state *glState
	slots *containers.SlotArray[*metadata.Light]
}

func newLightTable(state *glState, maxLights int) *LightTable {
	return &LightTable{
		state: state,
		slots: containers.NewSlotArray[*metadata.Light](maxLights),
	}
}

func (t *LightTable) find(light *metadata.Light) (int, bool) {
	return t.slots.Find(func(l *metadata.Light) bool {
		return l.ID == light.ID
	})
}

// SlotOf returns the slot occupied by the light.
func (t *LightTable) SlotOf(light *metadata.Light) (int, bool) {
	return t.find(light)
}

func (t *LightTable) Count() int {
	return t.slots.Len()
}

func (t *LightTable) Capacity() int {
	return t.slots.Cap()
}

func (t *LightTable) AddLight(light *metadata.Light) error {
	index, ok := t.slots.Acquire(light)
	if !ok {
		err := fmt.Errorf("no free light slot for `%s` (max %d): %w", light.Name, t.slots.Cap(), core.ErrCapacityExceeded)
		core.LogError(err.Error())
		return err
	}
	t.setGLLight(index, light)
	return nil
}

func (t *LightTable) UpdateLight(light *metadata.Light) error {
	index, ok := t.find(light)
	if !ok {
		err := fmt.Errorf("light `%s` (%s) was never added: %w", light.Name, light.ID, core.ErrNotFound)
		core.LogError(err.Error())
		return err
	}
	t.slots.Set(index, light)
	t.setGLLight(index, light)
	return nil
}

func (t *LightTable) RemoveLight(light *metadata.Light) error {
	index, ok := t.find(light)
	if !ok {
		err := fmt.Errorf("light `%s` (%s) was never added: %w", light.Name, light.ID, core.ErrNotFound)
		core.LogError(err.Error())
		return err
	}
	t.slots.Release(index)
	t.state.set(LIGHT0+Enum(index), false)
	return nil
}

// Lights returns the occupants keyed by slot.
func (t *LightTable) Lights() map[int]*metadata.Light {
	out := make(map[int]*metadata.Light, t.slots.Len())
	t.slots.Each(func(index int, light *metadata.Light) {
		out[index] = light
	})
	return out
}

// ResetPositions pushes position and direction again for every occupied
// slot. It must run right after the view matrix is loaded so the driver
// transforms them into the new eye space.
func (t *LightTable) ResetPositions() {
	t.slots.Each(func(index int, light *metadata.Light) {
		t.setGLLightPosition(LIGHT0+Enum(index), light)
	})
}

func (t *LightTable) setGLLight(index int, light *metadata.Light) {
	gl := LIGHT0 + Enum(index)
	f := t.state.fns

	if !light.Visible {
		t.state.set(gl, false)
		return
	}

	if light.Type == metadata.LightTypeSpotlight {
		f.Lightf(gl, SPOT_CUTOFF, light.SpotOuterAngle)
	} else {
		f.Lightf(gl, SPOT_CUTOFF, 180)
	}

	f.Lightfv(gl, DIFFUSE, light.Diffuse[:])
	f.Lightfv(gl, SPECULAR, light.Specular[:])

	t.setGLLightPosition(gl, light)

	f.Lightf(gl, CONSTANT_ATTENUATION, light.AttenuationConstant)
	f.Lightf(gl, LINEAR_ATTENUATION, light.AttenuationLinear)
	f.Lightf(gl, QUADRATIC_ATTENUATION, light.AttenuationQuadratic)

	t.state.set(gl, true)
}

// Directional lights have no position, point lights no direction.
func (t *LightTable) setGLLightPosition(gl Enum, light *metadata.Light) {
	if light.Type != metadata.LightTypeDirectional {
		pos := light.DerivedPosition.Vec4(1)
		t.state.fns.Lightfv(gl, POSITION, pos[:])
	}
	if light.Type != metadata.LightTypePoint {
		dir := light.DerivedDirection.Vec4(0)
		t.state.fns.Lightfv(gl, SPOT_DIRECTION, dir[:])
	}
}

// SetAmbientLight sets the global ambient term of the light model.
func (t *LightTable) SetAmbientLight(colour mgl32.Vec4) {
	t.state.fns.LightModelfv(LIGHT_MODEL_AMBIENT, colour[:])
}

func (t *LightTable) SetLightingEnabled(enabled bool) {
	t.state.set(LIGHTING, enabled)
}
