// Package ads contains the recommendation and campaign-mutation service.
//
// The service stores proposed campaign changes (recommendations), generates
// draft copy through LLM providers, and compiles approved recommendations
// into vendor batch mutations for Google Ads and Meta.
package ads
