// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package device_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/soa/device"
)

// readBack copies the whole vector to host memory.
func readBack[T any](t *testing.T, v *device.Vector[T]) []T {
	t.Helper()
	out := make([]T, v.Len())
	n, err := v.CopyTo(out)
	if err != nil {
		t.Fatalf("CopyTo: %v", err)
	}
	if n != v.Len() {
		t.Fatalf("CopyTo: got %d elements, want %d", n, v.Len())
	}
	return out
}

func TestVectorNew(t *testing.T) {
	dev := device.NewDevice(0)
	v, err := device.NewVector[int32](dev, 4)
	if err != nil {
		t.Fatalf("NewVector: %v", err)
	}
	defer v.Free()

	if v.Len() != 4 || v.Cap() != 4 {
		t.Fatalf("Len/Cap: got %d/%d, want 4/4", v.Len(), v.Cap())
	}
	if v.Device() != dev {
		t.Fatal("Device: wrong device")
	}
	if got := readBack(t, v); !slices.Equal(got, []int32{0, 0, 0, 0}) {
		t.Fatalf("contents: got %v, want zeros", got)
	}
}

func TestVectorCopy(t *testing.T) {
	dev := device.NewDevice(0)
	v, _ := device.NewVector[int](dev, 3)
	defer v.Free()

	// Longer source is truncated to Len
	n, err := v.CopyFrom([]int{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("CopyFrom: %v", err)
	}
	if n != 3 {
		t.Fatalf("CopyFrom: got %d, want 3", n)
	}

	// Shorter destination receives a prefix
	dst := make([]int, 2)
	n, err = v.CopyTo(dst)
	if err != nil {
		t.Fatalf("CopyTo: %v", err)
	}
	if n != 2 || !slices.Equal(dst, []int{1, 2}) {
		t.Fatalf("CopyTo: got %d %v, want 2 [1 2]", n, dst)
	}
}

func TestVectorFillLaunch(t *testing.T) {
	dev := device.NewDevice(0)
	v, _ := device.NewVector[int](dev, 4)
	defer v.Free()

	if err := v.Fill(7); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if err := v.Launch(func(data []int) {
		for i := range data {
			data[i] += i
		}
	}); err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if got, want := readBack(t, v), []int{7, 8, 9, 10}; !slices.Equal(got, want) {
		t.Fatalf("contents: got %v, want %v", got, want)
	}

	if err := v.Launch(func(data []int) { slices.Reverse(data) }); err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if got, want := readBack(t, v), []int{10, 9, 8, 7}; !slices.Equal(got, want) {
		t.Fatalf("after reverse: got %v, want %v", got, want)
	}
}

func TestVectorResize(t *testing.T) {
	dev := device.NewDevice(0)
	v, _ := device.NewVector[int](dev, 3)
	defer v.Free()
	v.CopyFrom([]int{1, 2, 3})

	// Grow keeps the prefix and zero-fills
	if err := v.Resize(5); err != nil {
		t.Fatalf("Resize(5): %v", err)
	}
	if got, want := readBack(t, v), []int{1, 2, 3, 0, 0}; !slices.Equal(got, want) {
		t.Fatalf("after Resize(5): got %v, want %v", got, want)
	}

	// Shrink keeps capacity
	if err := v.Resize(2); err != nil {
		t.Fatalf("Resize(2): %v", err)
	}
	if v.Cap() != 5 {
		t.Fatalf("Cap after shrink: got %d, want 5", v.Cap())
	}
	if got, want := readBack(t, v), []int{1, 2}; !slices.Equal(got, want) {
		t.Fatalf("after Resize(2): got %v, want %v", got, want)
	}

	// Regrow within capacity must not resurrect old elements
	if err := v.Resize(4); err != nil {
		t.Fatalf("Resize(4): %v", err)
	}
	if got, want := readBack(t, v), []int{1, 2, 0, 0}; !slices.Equal(got, want) {
		t.Fatalf("after Resize(4): got %v, want %v", got, want)
	}

	if err := v.Resize(0); err != nil {
		t.Fatalf("Resize(0): %v", err)
	}
	if v.Len() != 0 {
		t.Fatalf("Len: got %d, want 0", v.Len())
	}
}

func TestVectorResizeOutOfMemory(t *testing.T) {
	dev := device.NewDevice(64)
	v, _ := device.NewVector[int64](dev, 4)
	defer v.Free()
	v.CopyFrom([]int64{1, 2, 3, 4})

	// Growing holds both buffers while the prefix is copied
	if err := v.Resize(5); err != device.ErrOutOfMemory {
		t.Fatalf("Resize(5): got %v, want ErrOutOfMemory", err)
	}
	if v.Len() != 4 {
		t.Fatalf("Len after failed Resize: got %d, want 4", v.Len())
	}
	if dev.Used() != 32 {
		t.Fatalf("Used after failed Resize: got %d, want 32", dev.Used())
	}
	if got, want := readBack(t, v), []int64{1, 2, 3, 4}; !slices.Equal(got, want) {
		t.Fatalf("contents after failed Resize: got %v, want %v", got, want)
	}
}

func TestVectorClone(t *testing.T) {
	dev := device.NewDevice(0)
	v, _ := device.NewVector[int64](dev, 3)
	defer v.Free()
	v.CopyFrom([]int64{1, 2, 3})

	c, err := v.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	defer c.Free()

	v.Fill(0)
	if got, want := readBack(t, c), []int64{1, 2, 3}; !slices.Equal(got, want) {
		t.Fatalf("clone after source Fill: got %v, want %v", got, want)
	}
	if dev.Used() != int64(2*3*8) {
		t.Fatalf("Used: got %d, want %d", dev.Used(), 2*3*8)
	}
}

func TestVectorConst(t *testing.T) {
	dev := device.NewDevice(0)
	v, _ := device.NewVector[string](dev, 2)
	defer v.Free()
	v.CopyFrom([]string{"a", "b"})

	c := v.Const()
	if c.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", c.Len())
	}
	dst := make([]string, 2)
	if _, err := c.CopyTo(dst); err != nil {
		t.Fatalf("CopyTo: %v", err)
	}
	if !slices.Equal(dst, []string{"a", "b"}) {
		t.Fatalf("CopyTo: got %v", dst)
	}
}

func TestVectorNegativeLength(t *testing.T) {
	dev := device.NewDevice(0)
	mustPanic(t, "NewVector(-1)", func() { device.NewVector[int](dev, -1) })

	v, _ := device.NewVector[int](dev, 1)
	mustPanic(t, "Resize(-1)", func() { v.Resize(-1) })
}

func TestVectorAsyncStaging(t *testing.T) {
	if device.RaceEnabled {
		t.Skip("skip: stream ring ordering is invisible to the race detector")
	}
	dev := device.Configure(0).Async(16).Build()
	defer dev.Close()

	v, _ := device.NewVector[int](dev, 3)
	defer v.Free()

	gate := make(chan struct{})
	v.Launch(func([]int) { <-gate })

	// The source is reused before the copy runs
	src := []int{1, 2, 3}
	v.CopyFrom(src)
	src[0], src[1], src[2] = 9, 9, 9
	close(gate)

	if got, want := readBack(t, v), []int{1, 2, 3}; !slices.Equal(got, want) {
		t.Fatalf("contents: got %v, want %v", got, want)
	}
}

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	f()
}
