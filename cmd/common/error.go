// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"fmt"
	"os"
)

// ExitIfError prints a fatal error message and exits with status 1 if err
// is non-nil. Library packages never call this themselves; only the
// cmd/ binaries do, matching the teacher's split between silent libraries
// and a reporting CLI layer.
func ExitIfError(prefix string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, err.Error())
		os.Exit(1)
	}
}
