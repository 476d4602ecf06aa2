// Package googleads is a minimal REST client for the Google Ads API.
//
// It covers the three endpoints this service needs: GAQL search, batch
// mutate with partial-failure decoding, and keyword idea generation. Token
// acquisition is abstracted behind TokenSource so refresh-token and
// service-account flows are interchangeable.
package googleads
