// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package host provides structures of arrays in host memory.
//
// A MultiArray bundles up to ten equal-length arrays of independent element
// types. The type list is fixed at compile time and positions are selected
// by compile-time accessors:
//
//	m := host.New3[float32, int, bool](10000)
//
//	xs := host.Get0(m)  // *host.Vector[float32]
//	ids := host.Get1(m) // *host.Vector[int]
//	ok := host.Get2(m)  // *host.Vector[bool]
//
//	m.Resize(20000) // every array now holds 20000 elements
//
// Get3(m) does not compile: the accessor cannot unify a three-node chain
// with a fourth position. There is no runtime bounds check on the position.
//
// Vectors expose their storage as a slice, so existing algorithms apply
// directly:
//
//	ids := host.Get1(m).Data()
//	for i := range ids {
//	    ids[i] = rand.Int()
//	}
//	slices.Sort(ids)
//
// # Read-only Access
//
// Const returns a view whose accessors hand out [ConstVector] values:
//
//	c := m.Const()
//	v := host.GetConst0(c) // host.ConstVector[float32]: Len, At, All, CopyTo
//
// # Copying
//
// A MultiArray must not be copied; go vet reports copies. Clone makes an
// explicit deep copy.
//
// # Thread Safety
//
// A MultiArray performs no locking. Concurrent Resize calls, or Resize
// concurrent with accessor use, on the same MultiArray are data races.
package host

//go:generate go run code.hybscloud.com/soa/internal/soagen -backend host -o zz_generated.go
