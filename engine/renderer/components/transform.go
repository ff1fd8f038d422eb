package components

import "github.com/go-gl/mathgl/mgl32"

// Transform is a position, rotation and scale with an optional parent. The
// local matrix is rebuilt lazily when one of them changes.
type Transform struct {
	position mgl32.Vec3
	rotation mgl32.Quat
	scale    mgl32.Vec3
	local    mgl32.Mat4
	isDirty  bool

	Parent *Transform
}

func NewTransform() *Transform {
	return NewTransformFromPositionRotationScale(mgl32.Vec3{}, mgl32.QuatIdent(), mgl32.Vec3{1, 1, 1})
}

func NewTransformFromPosition(position mgl32.Vec3) *Transform {
	return NewTransformFromPositionRotationScale(position, mgl32.QuatIdent(), mgl32.Vec3{1, 1, 1})
}

func NewTransformFromPositionRotationScale(position mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3) *Transform {
	t := &Transform{local: mgl32.Ident4()}
	t.SetPositionRotationScale(position, rotation, scale)
	return t
}

func (t *Transform) GetPosition() mgl32.Vec3 {
	return t.position
}

func (t *Transform) SetPosition(position mgl32.Vec3) {
	t.position = position
	t.isDirty = true
}

func (t *Transform) Translate(translation mgl32.Vec3) {
	t.position = t.position.Add(translation)
	t.isDirty = true
}

func (t *Transform) GetRotation() mgl32.Quat {
	return t.rotation
}

func (t *Transform) SetRotation(rotation mgl32.Quat) {
	t.rotation = rotation
	t.isDirty = true
}

// Rotate applies rotation after the current one, in local space.
func (t *Transform) Rotate(rotation mgl32.Quat) {
	t.rotation = t.rotation.Mul(rotation).Normalize()
	t.isDirty = true
}

func (t *Transform) SetScale(scale mgl32.Vec3) {
	t.scale = scale
	t.isDirty = true
}

func (t *Transform) SetPositionRotationScale(position mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3) {
	t.position = position
	t.rotation = rotation
	t.scale = scale
	t.isDirty = true
}

// GetLocal returns translation * rotation * scale.
func (t *Transform) GetLocal() mgl32.Mat4 {
	if t == nil {
		return mgl32.Ident4()
	}
	if t.isDirty {
		s := mgl32.Scale3D(t.scale.X(), t.scale.Y(), t.scale.Z())
		t.local = mgl32.Translate3D(t.position.X(), t.position.Y(), t.position.Z()).Mul4(t.rotation.Mat4()).Mul4(s)
		t.isDirty = false
	}
	return t.local
}

// GetWorld concatenates the local matrices up the parent chain.
func (t *Transform) GetWorld() mgl32.Mat4 {
	if t == nil {
		return mgl32.Ident4()
	}
	l := t.GetLocal()
	if t.Parent != nil {
		return t.Parent.GetWorld().Mul4(l)
	}
	return l
}

// GetWorldPosition is the origin of the transform in world space.
func (t *Transform) GetWorldPosition() mgl32.Vec3 {
	return t.GetWorld().Col(3).Vec3()
}
