// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package soa

// MaxArity is the maximum number of arrays a single container can bundle.
//
// Each backend defines exactly MaxArity chain aliases (Chain1 through
// Chain10) over an unexported node type, so a longer type list cannot be
// named and is rejected by the compiler.
const MaxArity = 10

// Array is the mutable access mode of a backing array.
//
// A backing array is a resizable buffer of one fixed element type living in
// one memory space. Containers never reach into it beyond this contract:
// they resize every array to the same length and read the length back.
//
// Resize grows by default-initializing the new elements and shrinks by
// truncating trailing elements. Any failure is returned as produced by the
// implementation; containers add no wrapping or recovery. An array owned by
// a container refuses a direct Resize with [ErrBound].
type Array[T any] interface {
	// Len returns the number of elements.
	Len() int

	// Resize changes the number of elements to n.
	Resize(n int) error
}

// Reader is the read-only access mode of a backing array.
//
// Read-only container views hand out Readers, so no mutation is possible
// through a reference obtained from them.
type Reader[T any] interface {
	// Len returns the number of elements.
	Len() int

	// CopyTo copies min(len(dst), Len()) elements into dst and returns the
	// number of elements copied. Device-backed readers wait for pending
	// device work before copying.
	CopyTo(dst []T) (int, error)
}

// Container is the whole-container surface shared by the host and device
// multiarrays.
//
// Between operations every array of a Container has the same length, which
// is what Len reports. Resize is the only way to change it.
//
// Example:
//
//	func grow(c soa.Container, by int) error {
//	    return c.Resize(c.Len() + by)
//	}
type Container interface {
	// Len returns the uniform length of every array.
	Len() int

	// Arity returns the number of arrays.
	Arity() int

	// Resize resizes every array to n elements.
	Resize(n int) error
}
