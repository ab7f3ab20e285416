// Package geom provides fixed-size numeric value types: vectors, matrices and
// axis aligned boxes, generic over the numeric component type.
//
// Matrices are stored row-major and follow the row-vector convention: a point
// p is transformed by p * M, and a chain of transforms is written in the order
// they apply (model * view * projection). Their memory layout can be handed
// to OpenGL as-is with transpose set to false.
package geom

//go:generate go run ../cmd/matgen -o matrix_gen.go

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Number is the set of component types usable in geom values.
type Number interface {
	constraints.Integer | constraints.Float
}

// ErrIndexOutOfRange is wrapped by the *IndexError values vectors and
// matrices panic with when indexed outside of their fixed dimensions.
var ErrIndexOutOfRange = errors.New("geom: index out of range")

// IndexError is raised (through panic) by out of range accesses. Its Unwrap
// method returns ErrIndexOutOfRange.
type IndexError struct {
	Type     string
	Row, Col int
}

func (e *IndexError) Error() string {
	if e.Col < 0 {
		return fmt.Sprintf("geom: index %d out of range for %s", e.Row, e.Type)
	}
	return fmt.Sprintf("geom: index (%d, %d) out of range for %s", e.Row, e.Col, e.Type)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

func checkIndex(typ string, i, n int) {
	if i < 0 || i >= n {
		panic(&IndexError{Type: typ, Row: i, Col: -1})
	}
}

func checkIndex2(typ string, r, c, rows, cols int) {
	if r < 0 || r >= rows || c < 0 || c >= cols {
		panic(&IndexError{Type: typ, Row: r, Col: c})
	}
}
