// Package common contains shared constants and error kinds used across
// BeerKeeper components.
package common

// RequestIDHeaderName is the gRPC metadata key and HTTP header used to carry
// a caller supplied request id. The server generates one when it is absent.
const RequestIDHeaderName = "x-request-id"

// Health status values reported by Ping and /healthcheck.
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)
