// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package host

import (
	"iter"
	"slices"

	"code.hybscloud.com/soa"
)

var (
	_ soa.Array[int]  = (*Vector[int])(nil)
	_ soa.Reader[int] = ConstVector[int]{}
)

// Vector is a resizable array in host memory.
//
// Elements are directly addressable through Data, so any slice algorithm
// (slices.Sort, a generator loop, ...) can run on a Vector obtained from a
// multiarray accessor.
type Vector[T any] struct {
	s     []T
	bound bool // owned by a MultiArray
}

// NewVector creates a Vector holding n zero-valued elements.
// Panics if n < 0.
func NewVector[T any](n int) *Vector[T] {
	if n < 0 {
		panic("host: negative length")
	}
	return &Vector[T]{s: make([]T, n)}
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return len(v.s)
}

// Cap returns the number of elements the Vector can hold without
// reallocating.
func (v *Vector[T]) Cap() int {
	return cap(v.s)
}

// Resize changes the number of elements to n.
//
// Growing appends zero values; shrinking truncates and clears the dropped
// elements so they no longer pin referenced objects. The first min(n, Len())
// elements are kept. Resize never runs out of host memory; its only error
// is [soa.ErrBound], for a Vector obtained from a MultiArray, whose length
// changes only through the MultiArray. Panics if n < 0.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic("host: negative length")
	}
	if v.bound {
		return soa.ErrBound
	}
	v.resize(n)
	return nil
}

func (v *Vector[T]) resize(n int) {
	old := len(v.s)
	switch {
	case n < old:
		clear(v.s[n:old])
		v.s = v.s[:n]
	case n > old:
		v.s = slices.Grow(v.s, n-old)[:n]
		clear(v.s[old:n])
	}
}

// Data returns the backing slice. It stays valid until the next Resize.
func (v *Vector[T]) Data() []T {
	return v.s
}

// At returns the i-th element.
func (v *Vector[T]) At(i int) T {
	return v.s[i]
}

// Set stores x as the i-th element.
func (v *Vector[T]) Set(i int, x T) {
	v.s[i] = x
}

// Fill stores x in every element.
func (v *Vector[T]) Fill(x T) {
	for i := range v.s {
		v.s[i] = x
	}
}

// All returns an iterator over index-value pairs.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return slices.All(v.s)
}

// CopyFrom copies min(len(src), Len()) elements from src and returns the
// number of elements copied.
func (v *Vector[T]) CopyFrom(src []T) int {
	return copy(v.s, src)
}

// CopyTo copies min(len(dst), Len()) elements into dst.
// The error is always nil.
func (v *Vector[T]) CopyTo(dst []T) (int, error) {
	return copy(dst, v.s), nil
}

// Clone returns a deep copy with its own storage. The copy is not bound to
// any MultiArray.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{s: slices.Clone(v.s)}
}

// Const returns a read-only view of v.
func (v *Vector[T]) Const() ConstVector[T] {
	return ConstVector[T]{v: v}
}

// ConstVector is a read-only view of a host Vector.
type ConstVector[T any] struct {
	v *Vector[T]
}

// Len returns the number of elements.
func (c ConstVector[T]) Len() int {
	return len(c.v.s)
}

// At returns the i-th element.
func (c ConstVector[T]) At(i int) T {
	return c.v.s[i]
}

// All returns an iterator over index-value pairs.
func (c ConstVector[T]) All() iter.Seq2[int, T] {
	return slices.All(c.v.s)
}

// CopyTo copies min(len(dst), Len()) elements into dst.
// The error is always nil.
func (c ConstVector[T]) CopyTo(dst []T) (int, error) {
	return copy(dst, c.v.s), nil
}
