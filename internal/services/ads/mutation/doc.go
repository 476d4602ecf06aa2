// Package mutation compiles approved recommendations into one Google Ads
// batch mutate request.
//
// Each recommendation family (text assets, keywords, targeting criteria,
// sitelinks) has its own builder. The orchestrator fans the builders out
// concurrently over a shared immutable Context, isolates per-builder
// failures, and flattens successful outputs into a single ordered operation
// list. The Service then submits that list in one mutate call whose
// atomicity is controlled by the partial-failure flag, and syncs per
// operation outcomes back onto recommendation statuses.
package mutation
