// Package render3d provides building blocks for simple 3D scenes: meshes,
// objects, projections and shadow mapping.
//
// Transforms use the row-vector convention of package geom: an object is
// drawn with Model * View * Projection.
package render3d

import (
	"github.com/chewxy/math32"
	"github.com/db47h/glw"
	"github.com/db47h/glw/geom"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// PerspectiveMatrix describes a perspective projection.
type PerspectiveMatrix struct {
	// FovY is the vertical field of view, in radians.
	FovY   float32
	Aspect float32
	Near   float32
	Far    float32
}

// NewPerspective returns a perspective projection for a target of the given
// pixel size.
func NewPerspective(fovY float32, width, height int, near, far float32) (PerspectiveMatrix, error) {
	p := PerspectiveMatrix{FovY: fovY, Near: near, Far: far}
	if err := p.SetSize(width, height); err != nil {
		return p, err
	}
	return p, p.Validate()
}

// SetSize updates the aspect ratio for a target of the given pixel size.
func (p *PerspectiveMatrix) SetSize(width, height int) error {
	if width <= 0 {
		return glw.SizeError("width", width)
	}
	if height <= 0 {
		return glw.SizeError("height", height)
	}
	p.Aspect = float32(width) / float32(height)
	return nil
}

// Validate checks that p describes a usable projection.
func (p PerspectiveMatrix) Validate() error {
	switch {
	case p.FovY <= 0 || p.FovY >= math32.Pi:
		return errors.Errorf("render3d: field of view %g out of range (0, π)", p.FovY)
	case p.Aspect <= 0:
		return errors.Errorf("render3d: invalid aspect ratio %g", p.Aspect)
	case p.Near <= 0 || p.Far <= p.Near:
		return errors.Errorf("render3d: invalid depth range [%g, %g]", p.Near, p.Far)
	}
	return nil
}

// Matrix returns the projection matrix.
func (p PerspectiveMatrix) Matrix() geom.Matrix4[float32] {
	return geom.FromMgl4(mgl32.Perspective(p.FovY, p.Aspect, p.Near, p.Far))
}

// LookAt returns the view matrix of a camera at eye looking at center.
func LookAt(eye, center, up geom.Vector3F) geom.Matrix4[float32] {
	return geom.FromMgl4(mgl32.LookAtV(mgl32.Vec3(eye.Array()), mgl32.Vec3(center.Array()), mgl32.Vec3(up.Array())))
}

// Orthographic returns an orthographic projection of the given box.
func Orthographic(left, right, bottom, top, near, far float32) geom.Matrix4[float32] {
	return geom.FromMgl4(mgl32.Ortho(left, right, bottom, top, near, far))
}

// upFor returns an up vector that is not parallel to dir.
func upFor(dir geom.Vector3F) geom.Vector3F {
	n := dir.Normalize()
	if math32.Abs(n.Y) > 0.99 {
		return geom.Vec3[float32](0, 0, -1)
	}
	return geom.Vec3[float32](0, 1, 0)
}
