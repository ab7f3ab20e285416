// Package glw shadows OpenGL state in explicit per-context objects.
//
// A Context records what is bound to every binding point of one OpenGL
// context (textures per unit, buffers per target and index, framebuffers,
// vertex array, program) and which state façade (see package state) is
// current for each category. The registry is pure bookkeeping: it never calls
// into the driver. Packages state and shader issue the driver calls and keep
// the registry up to date, which lets them elide redundant calls.
//
// A Context is not safe for concurrent use; like the OpenGL context it
// mirrors, it belongs to a single thread.
package glw

import (
	"log/slog"

	"github.com/db47h/glw/gl"
	"github.com/pkg/errors"
)

// Unknown is recorded for a binding whose value the registry cannot know,
// such as the element array buffer after a vertex array change. It never
// equals a real object name, so the next bind always reaches the driver.
const Unknown = ^uint32(0)

var (
	// ErrInvalidSize is returned by setters given a width or height <= 0.
	ErrInvalidSize = errors.New("invalid size")
	// ErrDriver is wrapped by errors raised by the driver (glGetError).
	ErrDriver = errors.New("driver error")
)

// CompilePolicy selects how shader compile and link failures are handled.
type CompilePolicy int

const (
	// LogAndContinue logs the driver's info log and hands out a program
	// whose id may not be usable.
	LogAndContinue CompilePolicy = iota
	// FailFast returns the failure as an error.
	FailFast
)

func (p CompilePolicy) String() string {
	switch p {
	case LogAndContinue:
		return "log"
	case FailFast:
		return "fail"
	}
	return "unknown"
}

// ParseCompilePolicy is the inverse of CompilePolicy.String.
func ParseCompilePolicy(s string) (CompilePolicy, error) {
	switch s {
	case "log", "":
		return LogAndContinue, nil
	case "fail":
		return FailFast, nil
	}
	return 0, errors.Errorf("invalid compile policy %q", s)
}

// Config describes the context being wrapped.
type Config struct {
	Stereo         bool
	DoubleBuffered bool
	// Size of the default framebuffer.
	Width, Height int
	// Version is queried from the driver when left to zero.
	Version gl.Version
	// Logger defaults to slog.Default().
	Logger        *slog.Logger
	CompilePolicy CompilePolicy
}

// Limits holds the implementation limits the binding tables are sized to.
type Limits struct {
	TextureUnits             int
	UniformBuffers           int
	TransformFeedbackBuffers int
	AtomicCounterBuffers     int
	ShaderStorageBuffers     int
	// MaxTextureSize bounds the width and height of textures and offscreen
	// framebuffers.
	MaxTextureSize int
}

// CheckError returns an error wrapping ErrDriver if the driver has an error
// pending. op describes the failed operation.
func CheckError(d gl.Driver, op string) error {
	if code := d.GetError(); code != gl.GL_NO_ERROR {
		return errors.Wrapf(ErrDriver, "%s: %s", op, gl.ErrorString(code))
	}
	return nil
}

// SizeError returns an error wrapping ErrInvalidSize for the named dimension.
func SizeError(what string, v int) error {
	return errors.Wrapf(ErrInvalidSize, "%s %d", what, v)
}
