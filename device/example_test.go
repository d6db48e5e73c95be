// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package device_test

import (
	"fmt"
	"slices"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/soa"
	"code.hybscloud.com/soa/device"
)

// ExampleNew3 allocates a three-array container on a device and resizes it
// as a unit.
func ExampleNew3() {
	dev := device.NewDevice(1 << 20)

	m, err := device.New3[float32, int32, uint8](dev, 10)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer m.Free()
	fmt.Println("len:", m.Len(), "used:", dev.Used())

	m.Resize(20)
	fmt.Println(device.Get0(m).Len(), device.Get1(m).Len(), device.Get2(m).Len())

	// Output:
	// len: 10 used: 90
	// 20 20 20
}

// ExampleVector_Launch sorts one position on the device and reads it back.
func ExampleVector_Launch() {
	dev := device.Configure(0).Name("gpu0").Build()
	defer dev.Close()

	m, _ := device.New2[float32, int](dev, 5)
	defer m.Free()

	ids := device.Get1(m)
	ids.CopyFrom([]int{3, 1, 4, 0, 2})
	ids.Launch(func(data []int) { slices.Sort(data) })

	out := make([]int, m.Len())
	ids.CopyTo(out)
	fmt.Println(out)

	// Output:
	// [0 1 2 3 4]
}

// ExampleMultiArray_Resize shows a resize that runs out of device memory.
func ExampleMultiArray_Resize() {
	dev := device.NewDevice(64)

	m, _ := device.New2[int64, int64](dev, 2)
	defer m.Free()

	err := m.Resize(100)
	fmt.Println(err == device.ErrOutOfMemory, m.Len())

	// Output:
	// true 2
}

// ExampleDevice_Poll waits for a device without blocking in Synchronize,
// separating failures from the "still busy" signal.
func ExampleDevice_Poll() {
	dev := device.NewDevice(0)

	v, _ := device.NewVector[int](dev, 3)
	defer v.Free()
	v.Fill(7)

	backoff := iox.Backoff{}
	for {
		err := dev.Poll()
		if !soa.IsNonFailure(err) {
			fmt.Println("poll:", err)
			return
		}
		if !soa.IsSemantic(err) {
			break // idle
		}
		backoff.Wait()
	}

	out := make([]int, v.Len())
	v.CopyTo(out)
	fmt.Println(out)

	// Output:
	// [7 7 7]
}
