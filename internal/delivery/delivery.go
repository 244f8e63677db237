// Package delivery defines the serving abstraction shared by the HTTP API and
// the worker. Servers are collected into the fx "deliveries" group and started
// together by the cmd entrypoints.
package delivery

import "context"

// Delivery is a long-running server. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
