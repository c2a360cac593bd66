// Package lifecycle holds shared timing constants for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start/stop hook (DB ping, server shutdown, publisher close).
const DefaultTimeout = 10 * time.Second
