// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package device

import "log/slog"

// Options configures a device memory space.
type Options struct {
	// Memory budget in bytes (0 = unlimited)
	limit uint64

	// Stream depth (0 = synchronous execution)
	depth int

	name   string
	logger *slog.Logger
}

// Builder creates devices with fluent configuration.
//
// Example:
//
//	// Synchronous device with a 1 GiB budget
//	dev := device.Configure(1 << 30).Build()
//
//	// Asynchronous stream with room for 256 queued commands
//	dev := device.Configure(1 << 30).Async(256).Name("gpu0").Build()
//	defer dev.Close()
type Builder struct {
	opts Options
}

// Configure creates a device builder with the given memory budget in bytes.
// A budget of 0 means unlimited.
//
// Panics if limit < 0.
func Configure(limit int64) *Builder {
	if limit < 0 {
		panic("device: memory limit must be >= 0")
	}
	return &Builder{opts: Options{limit: uint64(limit), name: "device"}}
}

// Name sets the device name used in log records.
func (b *Builder) Name(name string) *Builder {
	b.opts.name = name
	return b
}

// Async runs device commands on a dedicated stream worker instead of
// inline. depth bounds the number of queued commands and rounds up to the
// next power of 2; submitters back off while the stream is full.
//
// Panics if depth < 2.
func (b *Builder) Async(depth int) *Builder {
	if depth < 2 {
		panic("device: stream depth must be >= 2")
	}
	b.opts.depth = depth
	return b
}

// Logger sets the logger for allocation events. Records are emitted at
// Debug for allocations and releases and at Warn for failed allocations.
// The default discards everything.
func (b *Builder) Logger(logger *slog.Logger) *Builder {
	b.opts.logger = logger
	return b
}

// Build creates the device.
//
// An asynchronous device owns a worker goroutine; call Close to stop it.
func (b *Builder) Build() *Device {
	logger := b.opts.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	d := &Device{
		limit: b.opts.limit,
		name:  b.opts.name,
		log:   logger.With("device", b.opts.name),
	}
	if b.opts.depth > 0 {
		d.stream = newStream(b.opts.depth)
	}
	return d
}

// NewDevice creates a synchronous device with the given memory budget.
// Equivalent to Configure(limit).Build().
func NewDevice(limit int64) *Device {
	return Configure(limit).Build()
}
