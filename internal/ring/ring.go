// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ring provides the bounded command ring behind a device stream.
//
// Any number of host goroutines push commands; exactly one stream worker
// drains them in batches. Slots carry a sequence number, so producers
// claim a slot with one CAS on the tail and the worker needs no atomic
// position of its own.
package ring

import (
	"math/bits"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

// Ring is a bounded multi-producer single-consumer FIFO.
//
// Slot states, for a slot visited at position pos:
//
//	seq == pos        free, a producer may claim it
//	seq == pos+1      filled, the consumer may take it
//	seq == pos-size+1 still holds the previous lap (ring full)
type Ring[T any] struct {
	_     pad
	tail  atomix.Uint64 // Next position to claim
	_     pad
	head  uint64 // Next position to drain, owned by the consumer
	slots []slot[T]
	mask  uint64
}

type slot[T any] struct {
	seq atomix.Uint64
	val T
	_   [64 - 8]byte
}

// New creates a ring of at least capacity slots, rounded up to a power
// of 2. Panics if capacity < 2.
func New[T any](capacity int) *Ring[T] {
	if capacity < 2 {
		panic("ring: capacity must be >= 2")
	}
	n := uint64(1) << bits.Len(uint(capacity-1))
	r := &Ring[T]{slots: make([]slot[T], n), mask: n - 1}
	for i := range n {
		r.slots[i].seq.StoreRelaxed(i)
	}
	return r
}

// Push appends v. Safe for concurrent producers.
// Returns iox.ErrWouldBlock while the slot for the next position still
// holds an undrained command.
func (r *Ring[T]) Push(v T) error {
	sw := spin.Wait{}
	for {
		pos := r.tail.LoadAcquire()
		s := &r.slots[pos&r.mask]
		switch seq := s.seq.LoadAcquire(); {
		case seq < pos:
			return iox.ErrWouldBlock
		case seq == pos && r.tail.CompareAndSwapAcqRel(pos, pos+1):
			s.val = v
			s.seq.StoreRelease(pos + 1)
			return nil
		}
		// Lost the claim, or tail is stale.
		sw.Once()
	}
}

// Drain hands up to limit filled slots to fn in FIFO order and returns how
// many it took. Each slot is released before fn runs, so a slow fn does
// not hold ring space. Only one goroutine may drain.
func (r *Ring[T]) Drain(limit int, fn func(T)) int {
	var zero T
	n := 0
	for ; n < limit; n++ {
		s := &r.slots[r.head&r.mask]
		if s.seq.LoadAcquire() != r.head+1 {
			break
		}
		v := s.val
		s.val = zero
		s.seq.StoreRelease(r.head + r.mask + 1)
		r.head++
		fn(v)
	}
	return n
}

// Cap returns the number of slots.
func (r *Ring[T]) Cap() int {
	return len(r.slots)
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
