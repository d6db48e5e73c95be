// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package device

// chain is the F-bounded constraint satisfied by every device node chain
// and by the terminator End.
//
// Unlike the host chain there is no per-node length: a MultiArray tracks
// its length itself.
type chain[C any] interface {
	alloc(dev *Device, n int) (C, error)
	clone() (C, error)
	resize(n int) error
	free()
	arity() int
}

// End terminates every chain. It holds no storage and exposes no
// operations, and on its own it is the valid zero-array container.
type End struct{}

func (End) alloc(*Device, int) (End, error) { return End{}, nil }
func (End) clone() (End, error)             { return End{}, nil }
func (End) resize(int) error                { return nil }
func (End) free()                           {}
func (End) arity() int                      { return 0 }

// node owns the device array at one position and the remainder of the
// chain. Chains are named through the Chain1..Chain10 aliases.
//
// The arrays are bound: their own Resize and Free refuse to act, so only
// the chain changes their length or releases them.
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

// alloc builds the chain head to tail. On failure the arrays allocated so
// far are released.
func (c node[H, T]) alloc(dev *Device, n int) (node[H, T], error) {
	head, err := NewVector[H](dev, n)
	if err != nil {
		return node[H, T]{}, err
	}
	head.bound = true
	var t T
	tail, err := t.alloc(dev, n)
	if err != nil {
		head.free()
		return node[H, T]{}, err
	}
	return node[H, T]{head: head, tail: tail}, nil
}

func (c node[H, T]) clone() (node[H, T], error) {
	head, err := c.head.Clone()
	if err != nil {
		return node[H, T]{}, err
	}
	head.bound = true
	tail, err := c.tail.clone()
	if err != nil {
		head.free()
		return node[H, T]{}, err
	}
	return node[H, T]{head: head, tail: tail}, nil
}

// resize stops at the first failing array. Arrays before it keep the new
// length.
func (c node[H, T]) resize(n int) error {
	if err := c.head.resize(n); err != nil {
		return err
	}
	return c.tail.resize(n)
}

func (c node[H, T]) free() {
	c.head.free()
	c.tail.free()
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
