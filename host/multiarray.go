// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package host

import "code.hybscloud.com/soa"

var _ soa.Container = (*MultiArray[Chain1[int]])(nil)

// MultiArray is a structure of arrays in host memory.
//
// C is one of the Chain1..Chain10 aliases; the MultiArray1..MultiArray10
// aliases and New1..New10 constructors spell it out. All arrays share one
// length, changed only through Resize.
//
// A MultiArray must not be copied after first use (go vet reports copies).
// Use Clone for an explicit deep copy.
type MultiArray[C chain[C]] struct {
	noCopy noCopy
	chain  C
}

// New creates a MultiArray whose arrays all hold n zero-valued elements.
// New[C](0) is the default, empty container. Panics if n < 0.
func New[C chain[C]](n int) *MultiArray[C] {
	if n < 0 {
		panic("host: negative length")
	}
	var c C
	return &MultiArray[C]{chain: c.alloc(n)}
}

// Len returns the uniform length of every array.
func (m *MultiArray[C]) Len() int {
	return m.chain.size()
}

// Arity returns the number of arrays.
func (m *MultiArray[C]) Arity() int {
	return m.chain.arity()
}

// Resize resizes every array to n elements, head to tail.
// Growing zero-initializes, shrinking keeps the first n elements.
// Host arrays cannot fail, so the error is always nil. Panics if n < 0.
func (m *MultiArray[C]) Resize(n int) error {
	if n < 0 {
		panic("host: negative length")
	}
	return m.chain.resize(n)
}

// Chain returns the node chain. Head and Tail walk it position by position.
func (m *MultiArray[C]) Chain() C {
	return m.chain
}

// Clone returns a deep copy: a new MultiArray of the same length whose
// arrays share no storage with m.
func (m *MultiArray[C]) Clone() *MultiArray[C] {
	return &MultiArray[C]{chain: m.chain.clone()}
}

// Const returns a read-only view of m. Accessors on the view (GetConst0
// and friends) hand out ConstVectors only.
func (m *MultiArray[C]) Const() Const[C] {
	return Const[C]{m: m}
}

// Const is a read-only view of a host MultiArray.
type Const[C chain[C]] struct {
	m *MultiArray[C]
}

// Len returns the uniform length of every array.
func (c Const[C]) Len() int {
	return c.m.chain.size()
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
