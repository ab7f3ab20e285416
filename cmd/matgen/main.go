// Command matgen generates the fixed-size matrix types of package geom.
//
// It writes one type per shape R×C with R, C in [2, 4]. Square shapes get
// Identity, Mul and Transform on top of the common accessors.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"
)

// Shape describes a generated matrix type.
type Shape struct {
	Rows, Cols int
}

func (s Shape) Name() string {
	if s.Rows == s.Cols {
		return fmt.Sprintf("Matrix%d", s.Rows)
	}
	return fmt.Sprintf("Matrix%dx%d", s.Rows, s.Cols)
}

func (s Shape) Transposed() Shape { return Shape{s.Cols, s.Rows} }
func (s Shape) Square() bool      { return s.Rows == s.Cols }
func (s Shape) Size() int         { return s.Rows * s.Cols }

const components = "XYZW"

var funcs = template.FuncMap{
	"seq": func(n int) []int {
		r := make([]int, n)
		for i := range r {
			r[i] = i
		}
		return r
	},
	"comp": func(i int) string { return components[i : i+1] },
	"colElems": func(rows int) string {
		e := make([]string, rows)
		for i := range e {
			e[i] = fmt.Sprintf("a.m[%d][j]", i)
		}
		return strings.Join(e, ", ")
	},
}

var tmpl = template.Must(template.New("matrix").Funcs(funcs).Parse(`// Code generated by matgen; DO NOT EDIT.

package geom
{{range .}}{{$n := .Name}}{{$t := .Transposed.Name}}
// {{$n}} is a {{.Rows}}×{{.Cols}} matrix stored row-major.
type {{$n}}[T Number] struct {
	m [{{.Rows}}][{{.Cols}}]T
}

// {{$n}}FromArray returns the {{$n}} whose rows are laid out consecutively in a.
func {{$n}}FromArray[T Number](a [{{.Size}}]T) {{$n}}[T] {
	var m {{$n}}[T]
	for i := range a {
		m.m[i/{{.Cols}}][i%{{.Cols}}] = a[i]
	}
	return m
}

// At returns the element at row, col. It panics with an *IndexError if either
// index is out of range.
func (a {{$n}}[T]) At(row, col int) T {
	checkIndex2("{{$n}}", row, col, {{.Rows}}, {{.Cols}})
	return a.m[row][col]
}

// Set sets the element at row, col.
func (a *{{$n}}[T]) Set(row, col int, v T) {
	checkIndex2("{{$n}}", row, col, {{.Rows}}, {{.Cols}})
	a.m[row][col] = v
}

// Row returns row i as a vector.
func (a {{$n}}[T]) Row(i int) Vector{{.Cols}}[T] {
	checkIndex("{{$n}} row", i, {{.Rows}})
	return vec{{.Cols}}From(a.m[i][:])
}

// SetRow scatters the components of v into row i.
func (a *{{$n}}[T]) SetRow(i int, v Vector{{.Cols}}[T]) {
	checkIndex("{{$n}} row", i, {{.Rows}})
	a.m[i] = v.Array()
}

// Col returns column j as a vector.
func (a {{$n}}[T]) Col(j int) Vector{{.Rows}}[T] {
	checkIndex("{{$n}} column", j, {{.Cols}})
	return Vector{{.Rows}}[T]{ {{- colElems .Rows -}} }
}

// SetCol scatters the components of v into column j.
func (a *{{$n}}[T]) SetCol(j int, v Vector{{.Rows}}[T]) {
	checkIndex("{{$n}} column", j, {{.Cols}})
{{- range seq .Rows}}
	a.m[{{.}}][j] = v.{{comp .}}
{{- end}}
}

// Transpose returns the transpose of a.
func (a {{$n}}[T]) Transpose() {{$t}}[T] {
	var t {{$t}}[T]
	for i := 0; i < {{.Rows}}; i++ {
		for j := 0; j < {{.Cols}}; j++ {
			t.m[j][i] = a.m[i][j]
		}
	}
	return t
}

// Add returns a + b.
func (a {{$n}}[T]) Add(b {{$n}}[T]) {{$n}}[T] {
	for i := range a.m {
		for j := range a.m[i] {
			a.m[i][j] += b.m[i][j]
		}
	}
	return a
}

// Scale returns a with every element multiplied by k.
func (a {{$n}}[T]) Scale(k T) {{$n}}[T] {
	for i := range a.m {
		for j := range a.m[i] {
			a.m[i][j] *= k
		}
	}
	return a
}

// Array returns the elements of a, row by row.
func (a {{$n}}[T]) Array() [{{.Size}}]T {
	var r [{{.Size}}]T
	for i := range a.m {
		copy(r[i*{{.Cols}}:], a.m[i][:])
	}
	return r
}

// Float32s returns the elements of a converted to float32, in upload order.
func (a {{$n}}[T]) Float32s() []float32 {
	r := make([]float32, 0, {{.Size}})
	for i := range a.m {
		for _, v := range a.m[i] {
			r = append(r, float32(v))
		}
	}
	return r
}

func (a {{$n}}[T]) String() string { return formatMatrix({{.Rows}}, {{.Cols}}, a.At) }
{{if .Square}}
// Identity{{.Rows}} returns the {{.Rows}}×{{.Rows}} identity matrix.
func Identity{{.Rows}}[T Number]() {{$n}}[T] {
	var m {{$n}}[T]
{{- range seq .Rows}}
	m.m[{{.}}][{{.}}] = 1
{{- end}}
	return m
}

// Mul returns the matrix product a * b.
func (a {{$n}}[T]) Mul(b {{$n}}[T]) {{$n}}[T] {
	var m {{$n}}[T]
	for i := 0; i < {{.Rows}}; i++ {
		for j := 0; j < {{.Rows}}; j++ {
			var s T
			for k := 0; k < {{.Rows}}; k++ {
				s += a.m[i][k] * b.m[k][j]
			}
			m.m[i][j] = s
		}
	}
	return m
}

// Transform returns the row vector v multiplied by a.
func (a {{$n}}[T]) Transform(v Vector{{.Rows}}[T]) Vector{{.Rows}}[T] {
	x := v.Array()
	var r [{{.Rows}}]T
	for j := 0; j < {{.Rows}}; j++ {
		for k := 0; k < {{.Rows}}; k++ {
			r[j] += x[k] * a.m[k][j]
		}
	}
	return vec{{.Rows}}From(r[:])
}
{{end}}{{end}}`))

func main() {
	var out string
	flag.StringVar(&out, "o", "matrix_gen.go", "output `filename`")
	flag.Parse()

	var shapes []Shape
	for r := 2; r <= 4; r++ {
		for c := 2; c <= 4; c++ {
			shapes = append(shapes, Shape{r, c})
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, shapes); err != nil {
		panic(err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		panic(err)
	}
	if err = os.WriteFile(out, src, 0644); err != nil {
		panic(err)
	}
}
