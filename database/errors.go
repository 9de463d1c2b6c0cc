// (c) 2023, Onther Tech. All rights reserved.
// See the file LICENSE for licensing terms.

package database

import "errors"

// ErrNotFound is returned by Get when the requested key is absent from the
// store. Implementations must return this exact error so callers can layer
// stores without inspecting error strings.
var ErrNotFound = errors.New("not found")
