package components

import (
	"github.com/go-gl/mathgl/mgl32"
)

/**
 * @brief A free-look camera producing the view matrix of a render packet.
 * Position and rotation are kept private so the view matrix is rebuilt
 * only when one of them changed.
 */
type Camera struct {
	position mgl32.Vec3
	/** @brief Euler angles in radians: pitch (X), yaw (Y) and roll (Z). */
	eulerRotation mgl32.Vec3
	isDirty       bool
	/** @brief Camera to world transform; the view matrix is its inverse. */
	world      mgl32.Mat4
	viewMatrix mgl32.Mat4
}

/** @brief The name of the default camera. */
const DEFAULT_CAMERA_NAME string = "default"

/** @brief Pitch limit, 89 degrees, keeps the camera away from gimbal lock. */
const pitchLimit float32 = 1.55334306

func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

func (c *Camera) Reset() {
	c.eulerRotation = mgl32.Vec3{}
	c.position = mgl32.Vec3{}
	c.isDirty = false
	c.world = mgl32.Ident4()
	c.viewMatrix = mgl32.Ident4()
}

func (c *Camera) GetPosition() mgl32.Vec3 {
	return c.position
}

func (c *Camera) SetPosition(position mgl32.Vec3) {
	c.position = position
	c.isDirty = true
}

func (c *Camera) GetEulerRotation() mgl32.Vec3 {
	return c.eulerRotation
}

func (c *Camera) SetEulerRotation(rotation mgl32.Vec3) {
	c.eulerRotation = rotation
	c.eulerRotation[0] = mgl32.Clamp(c.eulerRotation[0], -pitchLimit, pitchLimit)
	c.isDirty = true
}

func (c *Camera) rebuild() {
	if !c.isDirty {
		return
	}
	rotation := mgl32.HomogRotate3DY(c.eulerRotation.Y()).
		Mul4(mgl32.HomogRotate3DX(c.eulerRotation.X())).
		Mul4(mgl32.HomogRotate3DZ(c.eulerRotation.Z()))
	c.world = mgl32.Translate3D(c.position.X(), c.position.Y(), c.position.Z()).Mul4(rotation)
	c.viewMatrix = c.world.Inv()
	c.isDirty = false
}

func (c *Camera) GetView() mgl32.Mat4 {
	c.rebuild()
	return c.viewMatrix
}

func (c *Camera) Forward() mgl32.Vec3 {
	c.rebuild()
	return c.world.Col(2).Vec3().Mul(-1).Normalize()
}

func (c *Camera) Backward() mgl32.Vec3 {
	return c.Forward().Mul(-1)
}

func (c *Camera) Right() mgl32.Vec3 {
	c.rebuild()
	return c.world.Col(0).Vec3().Normalize()
}

func (c *Camera) Left() mgl32.Vec3 {
	return c.Right().Mul(-1)
}

func (c *Camera) move(direction mgl32.Vec3, amount float32) {
	c.position = c.position.Add(direction.Mul(amount))
	c.isDirty = true
}

func (c *Camera) MoveForward(amount float32) {
	c.move(c.Forward(), amount)
}

func (c *Camera) MoveBackward(amount float32) {
	c.move(c.Backward(), amount)
}

func (c *Camera) MoveLeft(amount float32) {
	c.move(c.Left(), amount)
}

func (c *Camera) MoveRight(amount float32) {
	c.move(c.Right(), amount)
}

func (c *Camera) MoveUp(amount float32) {
	c.move(mgl32.Vec3{0, 1, 0}, amount)
}

func (c *Camera) MoveDown(amount float32) {
	c.move(mgl32.Vec3{0, -1, 0}, amount)
}

func (c *Camera) Yaw(amount float32) {
	c.eulerRotation[1] += amount
	c.isDirty = true
}

func (c *Camera) Pitch(amount float32) {
	c.eulerRotation[0] = mgl32.Clamp(c.eulerRotation[0]+amount, -pitchLimit, pitchLimit)
	c.isDirty = true
}
