// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command soagen writes the per-arity part of a multiarray backend.
//
// Go has no variadic type parameters, so the type list of a multiarray is
// spelled out once per arity: the ChainK aliases that nest one node per
// element type, the MultiArrayK and NewK conveniences, and the positional
// accessors GetN and GetConstN. Each accessor unifies its argument against
// a chain with at least N+1 nodes, so an out-of-range position fails type
// inference instead of reaching a runtime check.
//
// Usage (from a backend package):
//
//	//go:generate go run code.hybscloud.com/soa/internal/soagen -backend host -o zz_generated.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"

	"code.hybscloud.com/soa"
)

// backend describes the parts of the generated code that differ between
// memory spaces.
type backend struct {
	Name     string // package name
	Space    string // memory space, for doc comments
	Fallible bool   // constructors take a *Device and return an error
}

var backends = map[string]backend{
	"host":   {Name: "host", Space: "host"},
	"device": {Name: "device", Space: "device", Fallible: true},
}

// arity is the template input for one chain length.
type arity struct {
	K       int
	Params  string // "T0, T1"
	Args    string // "T1, T2" (tail arguments of ChainK)
	Last    string // "T1"
	Nested  string // "node[T0, node[T1, R]]"
	Path    string // "tail.head"
	Ordinal string // "1 array" / "3 arrays"
}

func arities() []arity {
	out := make([]arity, soa.MaxArity)
	for k := 1; k <= soa.MaxArity; k++ {
		names := make([]string, k)
		for i := range names {
			names[i] = fmt.Sprintf("T%d", i)
		}
		nested := "R"
		for i := k - 1; i >= 0; i-- {
			nested = fmt.Sprintf("node[%s, %s]", names[i], nested)
		}
		ordinal := fmt.Sprintf("%d arrays", k)
		if k == 1 {
			ordinal = "1 array"
		}
		out[k-1] = arity{
			K:       k,
			Params:  strings.Join(names, ", "),
			Args:    strings.Join(names[1:], ", "),
			Last:    names[k-1],
			Nested:  nested,
			Path:    strings.Repeat("tail.", k-1) + "head",
			Ordinal: ordinal,
		}
	}
	return out
}

var tmpl = template.Must(template.New("soagen").Funcs(template.FuncMap{
	"dec": func(k int) int { return k - 1 },
}).Parse(source))

const source = `// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Code generated by soagen. DO NOT EDIT.

package {{.B.Name}}
{{range .A}}
{{- if eq .K 1}}
// Chain1 is the node chain for a one-element type list.
type Chain1[T0 any] = node[T0, End]
{{else}}
// Chain{{.K}} is the node chain for the type list ({{.Params}}).
type Chain{{.K}}[{{.Params}} any] = node[T0, Chain{{dec .K}}[{{.Args}}]]
{{end}}
{{- end}}
// MultiArray0 is the inert zero-array container.
type MultiArray0 = End
{{range .A}}
// MultiArray{{.K}} is a {{$.B.Space}} structure of {{.Ordinal}}.
type MultiArray{{.K}}[{{.Params}} any] = MultiArray[Chain{{.K}}[{{.Params}}]]
{{end}}
// New0 returns the zero-array container. It has no positions and no
// length.
func New0() MultiArray0 {
	return End{}
}
{{range .A}}
// New{{.K}} creates a MultiArray{{.K}} with n elements per array.
{{if $.B.Fallible}}func New{{.K}}[{{.Params}} any](dev *Device, n int) (*MultiArray{{.K}}[{{.Params}}], error) {
	return New[Chain{{.K}}[{{.Params}}]](dev, n)
}
{{else}}func New{{.K}}[{{.Params}} any](n int) *MultiArray{{.K}}[{{.Params}}] {
	return New[Chain{{.K}}[{{.Params}}]](n)
}
{{end}}
{{- end}}
{{- range .A}}
// Get{{dec .K}} returns the array at position {{dec .K}}. The array is bound to m:
// its own Resize returns soa.ErrBound, so resize m instead.
func Get{{dec .K}}[{{.Params}} any, R chain[R]](m *MultiArray[{{.Nested}}]) *Vector[{{.Last}}] {
	return m.chain.{{.Path}}
}

// GetConst{{dec .K}} returns a read-only view of the array at position {{dec .K}}.
func GetConst{{dec .K}}[{{.Params}} any, R chain[R]](c Const[{{.Nested}}]) ConstVector[{{.Last}}] {
	return c.m.chain.{{.Path}}.Const()
}
{{end}}`

// render returns the formatted source for b.
func render(b backend) ([]byte, error) {
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, struct {
		B backend
		A []arity
	}{b, arities()})
	if err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

func main() {
	name := flag.String("backend", "", "backend package: host or device")
	out := flag.String("o", "zz_generated.go", "output file")
	flag.Parse()

	b, ok := backends[*name]
	if !ok {
		fmt.Fprintf(os.Stderr, "soagen: unknown backend %q\n", *name)
		os.Exit(2)
	}
	src, err := render(b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "soagen: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "soagen: %v\n", err)
		os.Exit(1)
	}
}
