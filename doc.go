// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package soa defines the contracts shared by structure-of-arrays
// containers.
//
// A structure of arrays stores one field per array instead of one record per
// slot. A container bundles up to [MaxArity] equal-length arrays, each with
// its own element type, and keeps their lengths uniform:
//
//	m := host.New3[float32, int, bool](10000) // three arrays of 10000
//	m.Resize(20000)                          // all three now hold 20000
//
// The element types form a compile-time type list. Positions are selected
// with generic accessors (Get0 through Get9) that fail to compile when the
// position is past the end of the list.
//
// # Backends
//
// The container is implemented once per memory space:
//
//   - [code.hybscloud.com/soa/host]: arrays in host memory, exposed as slices
//   - [code.hybscloud.com/soa/device]: arrays in a budgeted accelerator
//     memory space, moved with copy commands and transformed by kernels
//
// Both implement [Container]. Their read-only views hand out [Reader]
// values, and their vectors implement [Array].
//
// # Error Handling
//
// Host containers never fail to resize. Device containers return the
// backing array's error unwrapped, typically device.ErrOutOfMemory, so it
// may be compared with == or errors.Is.
//
// Device polling reports in-flight work with [ErrWouldBlock], a control flow
// signal rather than a failure:
//
//	err := dev.Poll()
//	if soa.IsWouldBlock(err) {
//	    // Commands still running - do other work or Synchronize
//	}
//
// # Copying
//
// Containers own their arrays and must not be copied; go vet reports
// copies. Clone makes an explicit deep copy.
//
// # Race Detection
//
// The device stream publishes commands through a lock-free ring ordered by
// acquire-release atomics. The race detector cannot observe that ordering,
// so stream tests are skipped under -race.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors and
// backoff, [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, and [code.hybscloud.com/spin] for CPU pause instructions.
package soa
