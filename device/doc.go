// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package device provides structures of arrays in accelerator memory.
//
// A [Device] is a memory space with a byte budget. Its memory is not
// addressable by the host: data moves in with CopyFrom, moves out with
// CopyTo, and is transformed in place by Launch. Commands execute in
// submission order, inline by default or on an asynchronous stream.
//
//	dev := device.Configure(1 << 30).Async(256).Name("gpu0").Build()
//	defer dev.Close()
//
//	m, err := device.New3[float32, int32, uint8](dev, 10000)
//	if err != nil {
//	    return err // device.ErrOutOfMemory
//	}
//	defer m.Free()
//
//	xs := device.Get0(m) // *device.Vector[float32]
//	xs.CopyFrom(input)
//	xs.Launch(func(data []float32) { slices.Sort(data) })
//
//	out := make([]float32, m.Len())
//	xs.CopyTo(out) // waits for the sort
//
// # Allocation Failures
//
// Allocations beyond the budget fail with [ErrOutOfMemory]. The error is
// returned unwrapped by every layer, so it may be compared with == as well
// as errors.Is.
//
// MultiArray.Resize is not transactional. The arrays are resized head to
// tail; when one fails, the arrays before it already hold the new length,
// the rest keep the old one, and Len is left unchanged.
//
// # Memory Lifetime
//
// Device memory is accounted until it is released with Free. A
// MultiArray must not be copied; go vet reports copies. Clone makes an
// explicit deep copy on the device.
//
// # Thread Safety
//
// A Device is safe for concurrent use. A MultiArray or Vector performs no
// locking of its own.
package device

//go:generate go run code.hybscloud.com/soa/internal/soagen -backend device -o zz_generated.go
