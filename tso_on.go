// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build (amd64 || 386 || s390x) && !race

package fence

// plainRelaxed: on total-store-order architectures a naturally aligned
// plain load or store of at most one machine word is already atomic and
// already as strong as a relaxed access, so Relaxed operations skip the
// runtime's atomic entry points. Disabled under the race detector, which
// must see every synchronizing access as an atomic operation.
const plainRelaxed = true
