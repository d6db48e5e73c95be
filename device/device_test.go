// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package device_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"code.hybscloud.com/soa"
	"code.hybscloud.com/soa/device"
)

// =============================================================================
// Accounting
// =============================================================================

func TestDeviceAccounting(t *testing.T) {
	dev := device.NewDevice(64)

	a, err := device.NewVector[int64](dev, 4)
	if err != nil {
		t.Fatalf("NewVector a: %v", err)
	}
	if dev.Used() != 32 {
		t.Fatalf("Used: got %d, want 32", dev.Used())
	}

	b, err := device.NewVector[int64](dev, 4)
	if err != nil {
		t.Fatalf("NewVector b: %v", err)
	}
	if dev.Used() != 64 {
		t.Fatalf("Used: got %d, want 64", dev.Used())
	}

	if _, err := device.NewVector[int64](dev, 1); err != device.ErrOutOfMemory {
		t.Fatalf("NewVector over budget: got %v, want ErrOutOfMemory", err)
	}
	if dev.Used() != 64 {
		t.Fatalf("Used after failed alloc: got %d, want 64", dev.Used())
	}

	a.Free()
	if dev.Used() != 32 {
		t.Fatalf("Used after Free: got %d, want 32", dev.Used())
	}
	b.Free()
	if dev.Used() != 0 {
		t.Fatalf("Used after Free: got %d, want 0", dev.Used())
	}
	if dev.Peak() != 64 {
		t.Fatalf("Peak: got %d, want 64", dev.Peak())
	}

	// Double free is a no-op
	a.Free()
	if dev.Used() != 0 {
		t.Fatalf("Used after double Free: got %d, want 0", dev.Used())
	}
}

func TestDeviceUnlimited(t *testing.T) {
	dev := device.NewDevice(0)
	if dev.Limit() != 0 {
		t.Fatalf("Limit: got %d, want 0", dev.Limit())
	}
	v, err := device.NewVector[byte](dev, 1<<20)
	if err != nil {
		t.Fatalf("NewVector: %v", err)
	}
	defer v.Free()
	if dev.Used() != 1<<20 {
		t.Fatalf("Used: got %d, want %d", dev.Used(), 1<<20)
	}
}

func TestDeviceOutOfMemoryIs(t *testing.T) {
	dev := device.NewDevice(8)
	_, err := device.NewVector[int64](dev, 2)
	if !errors.Is(err, device.ErrOutOfMemory) {
		t.Fatalf("errors.Is(ErrOutOfMemory): got %v", err)
	}
	if soa.IsWouldBlock(err) {
		t.Fatal("ErrOutOfMemory must not be classified as would-block")
	}
}

func TestDeviceNegativeLimit(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Configure(-1) should panic")
		}
	}()
	device.Configure(-1)
}

func TestDeviceSmallStreamDepth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Async(1) should panic")
		}
	}()
	device.Configure(0).Async(1)
}

// =============================================================================
// Lifecycle
// =============================================================================

func TestDeviceClose(t *testing.T) {
	dev := device.Configure(0).Name("gpu0").Build()
	if dev.Name() != "gpu0" {
		t.Fatalf("Name: got %q, want %q", dev.Name(), "gpu0")
	}

	v, err := device.NewVector[int](dev, 4)
	if err != nil {
		t.Fatalf("NewVector: %v", err)
	}

	if err := dev.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := dev.Close(); err != device.ErrClosed {
		t.Fatalf("second Close: got %v, want ErrClosed", err)
	}

	if _, err := device.NewVector[int](dev, 1); err != device.ErrClosed {
		t.Fatalf("NewVector after Close: got %v, want ErrClosed", err)
	}
	if _, err := v.CopyTo(make([]int, 4)); err != device.ErrClosed {
		t.Fatalf("CopyTo after Close: got %v, want ErrClosed", err)
	}
	if _, err := v.CopyFrom([]int{1}); err != device.ErrClosed {
		t.Fatalf("CopyFrom after Close: got %v, want ErrClosed", err)
	}
	if err := v.Fill(1); err != device.ErrClosed {
		t.Fatalf("Fill after Close: got %v, want ErrClosed", err)
	}
	if err := v.Resize(8); err != device.ErrClosed {
		t.Fatalf("Resize after Close: got %v, want ErrClosed", err)
	}

	// Memory can still be released
	v.Free()
	if dev.Used() != 0 {
		t.Fatalf("Used after Free: got %d, want 0", dev.Used())
	}
}

func TestDeviceLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	dev := device.Configure(16).Name("gpu1").Logger(logger).Build()

	v, err := device.NewVector[int64](dev, 2)
	if err != nil {
		t.Fatalf("NewVector: %v", err)
	}
	if _, err := device.NewVector[int64](dev, 1); err != device.ErrOutOfMemory {
		t.Fatalf("NewVector over budget: got %v, want ErrOutOfMemory", err)
	}
	v.Free()

	out := buf.String()
	for _, want := range []string{"device alloc", "device allocation failed", "device free", "device=gpu1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q:\n%s", want, out)
		}
	}
}

// =============================================================================
// Stream
// =============================================================================

func TestDevicePollSync(t *testing.T) {
	dev := device.NewDevice(0)
	if dev.Async() {
		t.Fatal("NewDevice should be synchronous")
	}
	if err := dev.Poll(); err != nil {
		t.Fatalf("Poll: got %v, want nil", err)
	}
	dev.Synchronize()
}

func TestDevicePollAsync(t *testing.T) {
	if device.RaceEnabled {
		t.Skip("skip: stream ring ordering is invisible to the race detector")
	}
	dev := device.Configure(0).Async(8).Build()
	defer dev.Close()

	v, err := device.NewVector[int](dev, 4)
	if err != nil {
		t.Fatalf("NewVector: %v", err)
	}
	defer v.Free()

	gate := make(chan struct{})
	if err := v.Launch(func([]int) { <-gate }); err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if err := dev.Poll(); !soa.IsWouldBlock(err) {
		t.Fatalf("Poll with blocked kernel: got %v, want ErrWouldBlock", err)
	}
	close(gate)
	dev.Synchronize()
	if err := dev.Poll(); err != nil {
		t.Fatalf("Poll after Synchronize: got %v, want nil", err)
	}
}

func TestDeviceAsyncOrdering(t *testing.T) {
	if device.RaceEnabled {
		t.Skip("skip: stream ring ordering is invisible to the race detector")
	}
	// A shallow stream forces submitters to back off
	dev := device.Configure(0).Async(2).Build()
	defer dev.Close()

	v, err := device.NewVector[int](dev, 1)
	if err != nil {
		t.Fatalf("NewVector: %v", err)
	}
	defer v.Free()

	const n = 1000
	for range n {
		v.Launch(func(data []int) { data[0]++ })
	}
	out := make([]int, 1)
	if _, err := v.CopyTo(out); err != nil {
		t.Fatalf("CopyTo: %v", err)
	}
	if out[0] != n {
		t.Fatalf("counter: got %d, want %d", out[0], n)
	}
}

func TestDeviceCloseDrainsStream(t *testing.T) {
	if device.RaceEnabled {
		t.Skip("skip: stream ring ordering is invisible to the race detector")
	}
	dev := device.Configure(0).Async(4).Build()

	v, err := device.NewVector[int](dev, 1)
	if err != nil {
		t.Fatalf("NewVector: %v", err)
	}
	var ran int
	for range 16 {
		v.Launch(func([]int) { ran++ })
	}
	if err := dev.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if ran != 16 {
		t.Fatalf("commands run before Close returned: got %d, want 16", ran)
	}
}

// TestDeviceCloseRacesLaunch closes while other goroutines keep launching.
// Every launch either reports ErrClosed or has run by the time Close
// returns, and the device stays synchronizable.
func TestDeviceCloseRacesLaunch(t *testing.T) {
	if device.RaceEnabled {
		t.Skip("skip: stream ring ordering is invisible to the race detector")
	}
	const launchers = 4

	for round := range 200 {
		dev := device.Configure(0).Async(4).Build()
		v, err := device.NewVector[int](dev, 1)
		if err != nil {
			t.Fatalf("NewVector: %v", err)
		}

		var ran int // written by the stream worker only
		accepted := make([]int, launchers)
		var started, done sync.WaitGroup
		started.Add(launchers)
		done.Add(launchers)
		for id := range launchers {
			go func() {
				defer done.Done()
				started.Done()
				for {
					err := v.Launch(func([]int) { ran++ })
					if err != nil {
						if err != device.ErrClosed {
							t.Errorf("round %d: Launch: %v", round, err)
						}
						return
					}
					accepted[id]++
				}
			}()
		}

		started.Wait()
		if err := dev.Close(); err != nil {
			t.Fatalf("round %d: Close: %v", round, err)
		}
		got := ran
		done.Wait()
		dev.Synchronize()

		total := 0
		for _, n := range accepted {
			total += n
		}
		if got != total {
			t.Fatalf("round %d: ran %d commands, accepted %d", round, got, total)
		}
		v.Free()
	}
}
