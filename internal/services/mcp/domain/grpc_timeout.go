package domain

import "time"

// grpcCallTimeout caps the time for a single gRPC call from an MCP tool handler.
const grpcCallTimeout = 5 * time.Second

// grpcApplyTimeout caps the time for apply runs, which fan out to vendor APIs.
const grpcApplyTimeout = 60 * time.Second
