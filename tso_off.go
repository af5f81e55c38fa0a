// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !(amd64 || 386 || s390x) || race

package fence

// plainRelaxed is off: weakly ordered architecture, or race-detector
// build where plain access to a synchronizing location would be reported
// (correctly, from the detector's point of view) as a data race.
const plainRelaxed = false
