// Package ads provides gRPC adapters for accounts, recommendations, copy
// generation, and apply runs.
//
// These adapters translate proto contracts into service-domain objects so
// callers stay decoupled from persistence and vendor API details.
package ads
