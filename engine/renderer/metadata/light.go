package metadata

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type LightType uint8

const (
	LightTypePoint LightType = iota
	LightTypeDirectional
	LightTypeSpotlight
)

/**
 * @brief A scene light. The renderer identifies lights by ID; position and
 * direction are expected in world space and are transformed by the
 * modelview matrix when pushed to the driver.
 */
type Light struct {
	ID       uuid.UUID
	Name     string
	Type     LightType
	Diffuse  mgl32.Vec4
	Specular mgl32.Vec4
	/** @brief World space position, ignored for directional lights. */
	DerivedPosition mgl32.Vec3
	/** @brief World space direction, ignored for point lights. */
	DerivedDirection     mgl32.Vec3
	AttenuationRange     float32
	AttenuationConstant  float32
	AttenuationLinear    float32
	AttenuationQuadratic float32
	/** @brief Outer cone angle in degrees, spotlights only. */
	SpotOuterAngle float32
	/** @brief Invisible lights are switched off but keep their slot. */
	Visible bool
}

func NewLight(name string, lightType LightType) *Light {
	return &Light{
		ID:                  uuid.New(),
		Name:                name,
		Type:                lightType,
		Diffuse:             mgl32.Vec4{1, 1, 1, 1},
		Specular:            mgl32.Vec4{0, 0, 0, 1},
		DerivedDirection:    mgl32.Vec3{0, 0, 1},
		AttenuationRange:    100000,
		AttenuationConstant: 1,
		SpotOuterAngle:      40,
		Visible:             true,
	}
}
