// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package device

import "code.hybscloud.com/soa"

var _ soa.Container = (*MultiArray[Chain1[int]])(nil)

// MultiArray is a structure of arrays in device memory.
//
// C is one of the Chain1..Chain10 aliases; the MultiArray1..MultiArray10
// aliases and New1..New10 constructors spell it out.
//
// A MultiArray must not be copied after first use (go vet reports copies):
// duplicating device memory is expensive and is only done by Clone.
type MultiArray[C chain[C]] struct {
	noCopy noCopy
	dev    *Device
	chain  C
	n      int
}

// New allocates a MultiArray on dev whose arrays all hold n zero-valued
// elements. If any array cannot be allocated, the ones already allocated
// are released and the error is returned as is. Panics if n < 0.
func New[C chain[C]](dev *Device, n int) (*MultiArray[C], error) {
	if n < 0 {
		panic("device: negative length")
	}
	var c C
	c, err := c.alloc(dev, n)
	if err != nil {
		return nil, err
	}
	return &MultiArray[C]{dev: dev, chain: c, n: n}, nil
}

// Len returns the uniform length of every array.
//
// Device nodes carry no length of their own; Len is the length of the last
// Resize that reached every array.
func (m *MultiArray[C]) Len() int {
	return m.n
}

// Arity returns the number of arrays.
func (m *MultiArray[C]) Arity() int {
	return m.chain.arity()
}

// Device returns the device holding the arrays.
func (m *MultiArray[C]) Device() *Device {
	return m.dev
}

// Resize resizes every array to n elements, head to tail.
//
// Resize is not transactional. If array k fails, arrays before k already
// hold n elements and arrays from k on keep the old length; the failure
// (typically ErrOutOfMemory) is returned unwrapped and Len is unchanged.
// Panics if n < 0.
func (m *MultiArray[C]) Resize(n int) error {
	if n < 0 {
		panic("device: negative length")
	}
	if err := m.chain.resize(n); err != nil {
		return err
	}
	m.n = n
	return nil
}

// Chain returns the node chain. Head and Tail walk it position by position.
func (m *MultiArray[C]) Chain() C {
	return m.chain
}

// Clone allocates a deep copy on the same device. The copy is made on the
// device stream.
func (m *MultiArray[C]) Clone() (*MultiArray[C], error) {
	c, err := m.chain.clone()
	if err != nil {
		return nil, err
	}
	return &MultiArray[C]{dev: m.dev, chain: c, n: m.n}, nil
}

// Free releases the device memory of every array, head to tail, and leaves
// the MultiArray empty.
func (m *MultiArray[C]) Free() {
	m.chain.free()
	m.n = 0
}

// Const returns a read-only view of m. Accessors on the view (GetConst0
// and friends) hand out ConstVectors only.
func (m *MultiArray[C]) Const() Const[C] {
	return Const[C]{m: m}
}

// Const is a read-only view of a device MultiArray.
type Const[C chain[C]] struct {
	m *MultiArray[C]
}

// Len returns the uniform length of every array.
func (c Const[C]) Len() int {
	return c.m.n
}

// Arity returns the number of arrays.
func (c Const[C]) Arity() int {
	return c.m.chain.arity()
}

// noCopy may be added to structs which must not be copied after first use.
// It is recognized by the copylocks checker of go vet.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
