// Package lifecycle holds shared start/stop conventions for managed components.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of managed
// components (HTTP server, database pool).
const DefaultTimeout = 10 * time.Second
