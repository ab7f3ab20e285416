package shader

import "github.com/pkg/errors"

// Scalar is the set of uniform component types the driver can upload.
type Scalar interface {
	int32 | uint32 | float32 | float64
}

// SetIndex uploads values as a single vector of len(values) components to the
// uniform at index i of p.
func SetIndex[T Scalar](p *Program, i int, values ...T) error {
	return SetIndexArray(p, i, len(values), values)
}

// SetIndexArray uploads values as an array of vectors of the given number of
// components to the uniform at index i of p.
func SetIndexArray[T Scalar](p *Program, i, components int, values []T) error {
	if i < 0 || i >= len(p.uniforms) {
		return errors.Errorf("shader: uniform index %d out of range [0, %d)", i, len(p.uniforms))
	}
	return upload(p, p.uniforms[i], components, values)
}

func checkComponents(components, n int) error {
	if components < 1 || components > 4 || n == 0 || n%components != 0 {
		return errors.Wrapf(ErrUnsupportedComponents, "%d values in vectors of %d", n, components)
	}
	return nil
}

func upload[T Scalar](p *Program, loc int32, components int, v []T) error {
	if p.closed {
		return ErrClosed
	}
	if err := checkComponents(components, len(v)); err != nil {
		return err
	}
	if loc < 0 {
		return nil
	}
	p.Use()
	d := p.ctx.GL()
	switch v := any(v).(type) {
	case []int32:
		d.Uniformiv(loc, components, v)
	case []uint32:
		d.Uniformuiv(loc, components, v)
	case []float32:
		d.Uniformfv(loc, components, v)
	case []float64:
		d.Uniformdv(loc, components, v)
	}
	return nil
}
