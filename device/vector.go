// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package device

import (
	"slices"
	"unsafe"

	"code.hybscloud.com/soa"
)

var (
	_ soa.Array[int]  = (*Vector[int])(nil)
	_ soa.Reader[int] = ConstVector[int]{}
)

// Vector is a resizable array in device memory.
//
// Its elements are never handed to the host directly. Data enters with
// CopyFrom, leaves with CopyTo, and is transformed in place by Launch.
// On an asynchronous device these are queued on the stream; CopyTo waits
// for pending work before reading.
type Vector[T any] struct {
	dev   *Device
	buf   []T // len(buf) is the capacity
	n     int
	bytes uint64
	bound bool // owned by a MultiArray
}

// NewVector allocates a Vector of n zero-valued elements on dev.
// Returns ErrOutOfMemory if the allocation exceeds the device budget.
// Panics if n < 0.
func NewVector[T any](dev *Device, n int) (*Vector[T], error) {
	if n < 0 {
		panic("device: negative length")
	}
	v := &Vector[T]{dev: dev}
	if err := v.realloc(n); err != nil {
		return nil, err
	}
	v.n = n
	return v, nil
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return v.n
}

// Cap returns the number of elements the Vector can hold without
// reallocating.
func (v *Vector[T]) Cap() int {
	return len(v.buf)
}

// Device returns the device holding v.
func (v *Vector[T]) Device() *Device {
	return v.dev
}

// Resize changes the number of elements to n.
//
// Growing past Cap allocates a new buffer of exactly n elements and
// copies the surviving prefix on the device; the old buffer is released.
// New elements are zero values and the first min(n, Len()) elements are
// kept. Returns ErrOutOfMemory, leaving v unchanged, if the new buffer does
// not fit. A Vector obtained from a MultiArray returns [soa.ErrBound]; resize
// the MultiArray instead. Panics if n < 0.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic("device: negative length")
	}
	if v.bound {
		return soa.ErrBound
	}
	return v.resize(n)
}

func (v *Vector[T]) resize(n int) error {
	if v.dev.closed() {
		return ErrClosed
	}
	old := v.n
	switch {
	case n > len(v.buf):
		if err := v.realloc(n); err != nil {
			return err
		}
	case n < old:
		// Everything past Len stays zero, so regrowing needs no fill.
		buf := v.buf
		if err := v.dev.launch(func() { clear(buf[n:old]) }); err != nil {
			return err
		}
	}
	v.n = n
	return nil
}

// realloc moves v to a fresh buffer of n elements.
func (v *Vector[T]) realloc(n int) error {
	var zero T
	bytes, err := v.dev.reserve(n, uint64(unsafe.Sizeof(zero)))
	if err != nil {
		return err
	}
	next := make([]T, n)
	if prev, keep := v.buf, min(v.n, n); keep > 0 {
		if err := v.dev.launch(func() { copy(next, prev[:keep]) }); err != nil {
			v.dev.release(bytes)
			return err
		}
	}
	v.dev.release(v.bytes)
	v.buf, v.bytes = next, bytes
	return nil
}

// CopyFrom copies min(len(src), Len()) elements from host memory into v
// and returns the number of elements copied. src is staged before CopyFrom
// returns, so the caller may reuse it immediately.
func (v *Vector[T]) CopyFrom(src []T) (int, error) {
	k := min(len(src), v.n)
	staged, dst := slices.Clone(src[:k]), v.buf
	if err := v.dev.launch(func() { copy(dst, staged) }); err != nil {
		return 0, err
	}
	return k, nil
}

// CopyTo waits for pending device work, then copies min(len(dst), Len())
// elements into host memory.
func (v *Vector[T]) CopyTo(dst []T) (int, error) {
	if v.dev.closed() {
		return 0, ErrClosed
	}
	v.dev.Synchronize()
	return copy(dst, v.buf[:v.n]), nil
}

// Fill stores x in every element.
func (v *Vector[T]) Fill(x T) error {
	return v.Launch(func(data []T) {
		for i := range data {
			data[i] = x
		}
	})
}

// Launch runs kernel over the elements of v on the device, in order with
// every earlier command. kernel must not retain data past its return, and
// must not change the Vector through other methods.
//
// Example:
//
//	v.Launch(func(data []float32) { slices.Sort(data) })
func (v *Vector[T]) Launch(kernel func(data []T)) error {
	data := v.buf[:v.n]
	return v.dev.launch(func() { kernel(data) })
}

// Clone allocates a new Vector on the same device and copies v into it on
// the device. The clone is not bound to any MultiArray.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c, err := NewVector[T](v.dev, v.n)
	if err != nil {
		return nil, err
	}
	if v.n > 0 {
		src, dst := v.buf[:v.n], c.buf
		if err := v.dev.launch(func() { copy(dst, src) }); err != nil {
			c.free()
			return nil, err
		}
	}
	return c, nil
}

// Free releases the device memory of v and leaves it empty. A freed
// Vector may be resized again. Free does nothing on a Vector obtained from
// a MultiArray; free the MultiArray instead.
func (v *Vector[T]) Free() {
	if !v.bound {
		v.free()
	}
}

func (v *Vector[T]) free() {
	v.dev.release(v.bytes)
	v.buf, v.n, v.bytes = nil, 0, 0
}

// Const returns a read-only view of v.
func (v *Vector[T]) Const() ConstVector[T] {
	return ConstVector[T]{v: v}
}

// ConstVector is a read-only view of a device Vector.
type ConstVector[T any] struct {
	v *Vector[T]
}

// Len returns the number of elements.
func (c ConstVector[T]) Len() int {
	return c.v.n
}

// CopyTo waits for pending device work, then copies min(len(dst), Len())
// elements into host memory.
func (c ConstVector[T]) CopyTo(dst []T) (int, error) {
	return c.v.CopyTo(dst)
}
