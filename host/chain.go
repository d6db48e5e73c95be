// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package host

// chain is the F-bounded constraint satisfied by every node chain and by
// the terminator End. Operations recurse head to tail; the recursion depth
// is fixed by the chain type.
type chain[C any] interface {
	alloc(n int) C
	clone() C
	resize(n int) error
	size() int
	arity() int
}

// End terminates every chain. It holds no storage and exposes no
// operations, and on its own it is the valid zero-array container.
type End struct{}

func (End) alloc(int) End { return End{} }
func (End) clone() End    { return End{} }

func (End) resize(int) error { return nil }

func (End) size() int  { return 0 }
func (End) arity() int { return 0 }

// node owns the array at one position and the remainder of the chain.
// Chains are named through the Chain1..Chain10 aliases.
type node[H any, T chain[T]] struct {
	head *Vector[H]
	tail T
}

// Head returns the array stored at this position.
func (c node[H, T]) Head() *Vector[H] {
	return c.head
}

// Tail returns the remainder of the chain.
func (c node[H, T]) Tail() T {
	return c.tail
}

func (c node[H, T]) alloc(n int) node[H, T] {
	head := NewVector[H](n)
	head.bound = true
	var t T
	return node[H, T]{head: head, tail: t.alloc(n)}
}

func (c node[H, T]) clone() node[H, T] {
	head := c.head.Clone()
	head.bound = true
	return node[H, T]{head: head, tail: c.tail.clone()}
}

func (c node[H, T]) resize(n int) error {
	c.head.resize(n)
	return c.tail.resize(n)
}

func (c node[H, T]) size() int {
	return c.head.Len()
}

func (c node[H, T]) arity() int {
	var t T
	return 1 + t.arity()
}

// Arity returns the number of arrays held by chain type C.
// Arity[End]() is 0.
func Arity[C chain[C]]() int {
	var c C
	return c.arity()
}
