// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

package fence_test

import "testing"

// skipRace runs everything on non-race builds; see skip_race_test.go.
func skipRace(testing.TB) {}
