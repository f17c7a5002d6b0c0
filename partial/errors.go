// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package partial

import (
	"fmt"
)

// MissingFieldError reports a partial object that cannot be built because a
// required field was neither set nor inferable.
type MissingFieldError struct {
	Object string
	Field  string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf(
		"building partial %s: %s is not set and cannot be inferred",
		e.Object, e.Field)
}
