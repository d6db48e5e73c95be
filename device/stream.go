// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package device

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/soa"
	"code.hybscloud.com/soa/internal/ring"
	"code.hybscloud.com/spin"
)

// syncSpins is the number of pause rounds Synchronize spends before it
// falls back to sleeping backoff.
const syncSpins = 64

type command struct {
	fn func()
}

// stream executes device commands in submission order on one worker
// goroutine. Host goroutines submit through a bounded MPSC ring.
type stream struct {
	_         pad
	submitted atomix.Uint64
	_         pad
	completed atomix.Uint64
	_         pad
	stopping  atomix.Bool
	ring      *ring.Ring[command]
	done      chan struct{}
}

func newStream(depth int) *stream {
	s := &stream{
		ring: ring.New[command](depth),
		done: make(chan struct{}),
	}
	go s.run()
	return s
}

// submit queues fn, backing off while the ring is full.
func (s *stream) submit(fn func()) {
	cmd := command{fn: fn}
	s.submitted.AddAcqRel(1)
	backoff := iox.Backoff{}
	for soa.IsWouldBlock(s.ring.Push(cmd)) {
		backoff.Wait()
	}
}

// run drains the ring a full ring at a time until close is requested and
// every submitted command has run.
func (s *stream) run() {
	defer close(s.done)
	batch := s.ring.Cap()
	backoff := iox.Backoff{}
	for {
		if s.ring.Drain(batch, s.exec) > 0 {
			backoff.Reset()
			continue
		}
		if s.stopping.LoadAcquire() && !s.pending() {
			return
		}
		backoff.Wait()
	}
}

func (s *stream) exec(cmd command) {
	cmd.fn()
	s.completed.AddAcqRel(1)
}

func (s *stream) pending() bool {
	return s.completed.LoadAcquire() < s.submitted.LoadAcquire()
}

// synchronize waits for every command submitted before the call.
func (s *stream) synchronize() {
	target := s.submitted.LoadAcquire()

	sw := spin.Wait{}
	for range syncSpins {
		if s.completed.LoadAcquire() >= target {
			return
		}
		sw.Once()
	}

	backoff := iox.Backoff{}
	for s.completed.LoadAcquire() < target {
		backoff.Wait()
	}
}

// close drains the ring and stops the worker. The caller guarantees no
// submit is in progress or follows.
func (s *stream) close() {
	s.stopping.StoreRelease(true)
	<-s.done
}
