// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package device

import (
	"log/slog"
	"math"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/soa"
	"code.hybscloud.com/spin"
)

// gate layout: bit 0 is the closed flag, the rest counts launches in
// progress (in units of gateLaunch).
const (
	gateClosed uint64 = 1
	gateLaunch uint64 = 2
)

// Device is an accelerator memory space.
//
// Memory allocated on a Device is not addressable by the host: vectors
// move data in and out with copy commands and run algorithms on it with
// Launch. Commands execute in submission order, either inline or on the
// device stream (see [Builder.Async]).
//
// A Device is safe for concurrent use. Allocation accounting is lock-free.
type Device struct {
	_      pad
	used   atomix.Uint64 // Bytes currently allocated
	_      pad
	peak   atomix.Uint64 // High-water mark of used
	_      pad
	gate   atomix.Uint64
	limit  uint64 // 0 = unlimited
	name   string
	log    *slog.Logger
	stream *stream // nil = synchronous
}

// Name returns the device name.
func (d *Device) Name() string {
	return d.name
}

// Limit returns the memory budget in bytes (0 = unlimited).
func (d *Device) Limit() int64 {
	return int64(d.limit)
}

// Used returns the number of bytes currently allocated.
func (d *Device) Used() int64 {
	return int64(d.used.LoadAcquire())
}

// Peak returns the highest number of bytes allocated at any one time.
func (d *Device) Peak() int64 {
	return int64(d.peak.LoadAcquire())
}

// Async reports whether commands run on a stream worker.
func (d *Device) Async() bool {
	return d.stream != nil
}

// Synchronize blocks until every command submitted before the call has
// completed. On a synchronous device it returns immediately.
func (d *Device) Synchronize() {
	if d.stream != nil {
		d.stream.synchronize()
	}
}

// Poll reports whether the device is idle.
// Returns nil when every submitted command has completed, and
// [soa.ErrWouldBlock] while commands are still in flight.
func (d *Device) Poll() error {
	if d.stream != nil && d.stream.pending() {
		return soa.ErrWouldBlock
	}
	return nil
}

// Close marks the device closed, waits for every command accepted before
// that, and stops the stream worker. Later allocations and vector
// operations return ErrClosed. Close returns ErrClosed if the device is
// already closed.
func (d *Device) Close() error {
	sw := spin.Wait{}
	for {
		g := d.gate.LoadAcquire()
		if g&gateClosed != 0 {
			return ErrClosed
		}
		if d.gate.CompareAndSwapAcqRel(g, g|gateClosed) {
			break
		}
		sw.Once()
	}

	// Launches that entered before the flag was set are still submitting.
	backoff := iox.Backoff{}
	for d.gate.LoadAcquire() != gateClosed {
		backoff.Wait()
	}
	if d.stream != nil {
		d.stream.close()
	}
	d.log.Debug("device closed", "used", d.used.LoadAcquire())
	return nil
}

func (d *Device) closed() bool {
	return d.gate.LoadAcquire()&gateClosed != 0
}

// launch executes fn on the device, in order with every earlier command.
// Returns ErrClosed once Close has begun. A command launch accepts is
// always run before Close returns.
func (d *Device) launch(fn func()) error {
	g := d.gate.AddAcqRel(gateLaunch)
	defer d.gate.AddAcqRel(^(gateLaunch - 1))
	if g&gateClosed != 0 {
		return ErrClosed
	}
	if d.stream == nil {
		fn()
		return nil
	}
	d.stream.submit(fn)
	return nil
}

// reserve accounts for an allocation of count elements of size bytes.
func (d *Device) reserve(count int, size uint64) (uint64, error) {
	if d.closed() {
		return 0, ErrClosed
	}
	if size != 0 && uint64(count) > math.MaxUint64/size {
		d.log.Warn("device allocation failed", "count", count, "size", size)
		return 0, ErrOutOfMemory
	}
	bytes := uint64(count) * size

	sw := spin.Wait{}
	for {
		used := d.used.LoadAcquire()
		if d.limit != 0 && (bytes > d.limit || used > d.limit-bytes) {
			d.log.Warn("device allocation failed", "bytes", bytes, "used", used, "limit", d.limit)
			return 0, ErrOutOfMemory
		}
		if d.used.CompareAndSwapAcqRel(used, used+bytes) {
			d.raisePeak(used + bytes)
			d.log.Debug("device alloc", "bytes", bytes, "used", used+bytes)
			return bytes, nil
		}
		sw.Once()
	}
}

// release returns bytes to the budget.
func (d *Device) release(bytes uint64) {
	if bytes == 0 {
		return
	}
	used := d.used.AddAcqRel(^(bytes - 1))
	d.log.Debug("device free", "bytes", bytes, "used", used)
}

func (d *Device) raisePeak(used uint64) {
	sw := spin.Wait{}
	for {
		peak := d.peak.LoadAcquire()
		if used <= peak || d.peak.CompareAndSwapAcqRel(peak, used) {
			return
		}
		sw.Once()
	}
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
