// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions for ring module.

package ring

import "github.com/momentics/hioload-ring/api"

// ErrInvalidCapacity indicates a non-positive capacity passed to New.
var ErrInvalidCapacity error = api.NewError(api.ErrCodeInvalidArgument, "ring capacity must be positive")
