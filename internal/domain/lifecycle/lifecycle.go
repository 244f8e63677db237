// Package lifecycle holds shared timeouts for startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of a delivery or client.
const DefaultTimeout = 10 * time.Second
