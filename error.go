// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fence

import "errors"

// ErrUnsupportedPlatform reports that no backend strategy applies to a
// capability descriptor: neither standardized ordered primitives nor
// classic barrier instructions are available.
//
// A build never degrades past this error. A platform that cannot provide
// a correct fence mapping must fail loudly at build or selection time;
// a silently weaker mapping would surface as non-deterministic visibility
// bugs in the caller's algorithm instead.
var ErrUnsupportedPlatform = errors.New("fence: unsupported platform")
