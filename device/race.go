// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package device

// RaceEnabled is true when the race detector is active.
// Used by tests to skip asynchronous stream tests: the stream ring
// publishes commands with atomix orderings the detector cannot follow.
const RaceEnabled = true
