// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package soa

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot complete immediately.
//
// Returned by device.Device.Poll while the device stream still has
// commands in flight. It is a control flow signal, not a failure: the
// caller should do other work and poll again, or call Synchronize.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := dev.Poll()
//	    if err == nil {
//	        break
//	    }
//	    if !soa.IsWouldBlock(err) {
//	        return err
//	    }
//	    backoff.Wait()
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// ErrBound is returned by Resize on an array that belongs to a container.
//
// The arrays of a container share one length, so they are resized only
// through the container. Accessors such as host.Get0 hand out arrays in
// this state.
var ErrBound = errors.New("soa: array length is bound to its container")

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// A polling loop uses it to tell "still busy" from "idle" once
// [IsNonFailure] has ruled out a real failure.
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, or ErrMore.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
