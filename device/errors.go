// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package device

import "errors"

var (
	// ErrOutOfMemory indicates an allocation would exceed the device memory
	// limit. Nothing was allocated.
	//
	// Containers return it unwrapped, so callers may compare with ==.
	ErrOutOfMemory = errors.New("device: out of memory")

	// ErrClosed indicates the device has been closed.
	ErrClosed = errors.New("device: closed")
)
