// Package meta is a minimal Meta Graph API client covering the ad set and
// creative updates the recommendation applier needs.
package meta
