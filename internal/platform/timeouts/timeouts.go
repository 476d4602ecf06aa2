// Package timeouts defines shared timeout constants used across services.
// Centralizing these values prevents drift between service boundaries and
// makes the durations discoverable.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing a gRPC peer.
const GRPCDial = 2 * time.Second

// GRPCRequest caps the time allowed for a single gRPC request between
// services.
const GRPCRequest = 2 * time.Second

// VendorRequest caps one HTTP round trip to an ad-platform API. Mutate
// batches can be slow on large requests, so this is deliberately generous.
const VendorRequest = 30 * time.Second

// Shutdown limits how long a server waits for in-flight requests during
// graceful shutdown.
const Shutdown = 5 * time.Second
