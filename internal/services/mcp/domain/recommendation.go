package domain

// AccountRegisterInput represents the MCP tool input for account registration.
type AccountRegisterInput struct {
	Name                  string `json:"name" jsonschema:"account display name"`
	GoogleCustomerID      string `json:"google_customer_id,omitempty" jsonschema:"Google Ads customer resource number"`
	GoogleLoginCustomerID string `json:"google_login_customer_id,omitempty" jsonschema:"optional manager account for MCC access"`
	GoogleRefreshToken    string `json:"google_refresh_token,omitempty" jsonschema:"OAuth refresh token; sealed at rest and never returned"`
	MetaAdAccountID       string `json:"meta_ad_account_id,omitempty" jsonschema:"Meta Marketing API ad account identifier"`
}

// AccountResult represents an account in MCP tool output. It never carries
// credential material.
type AccountResult struct {
	ID                    string `json:"id" jsonschema:"account identifier"`
	Name                  string `json:"name" jsonschema:"account display name"`
	GoogleCustomerID      string `json:"google_customer_id" jsonschema:"Google Ads customer resource number"`
	GoogleLoginCustomerID string `json:"google_login_customer_id,omitempty" jsonschema:"manager account for MCC access"`
	MetaAdAccountID       string `json:"meta_ad_account_id" jsonschema:"Meta ad account identifier"`
	CreatedAt             string `json:"created_at" jsonschema:"RFC3339 timestamp when the account was registered"`
	UpdatedAt             string `json:"updated_at" jsonschema:"RFC3339 timestamp when the account was last updated"`
}

// AccountListPayload represents the MCP resource payload for account listings.
type AccountListPayload struct {
	Accounts []AccountResult `json:"accounts"`
}

// RecommendationCreateInput represents the MCP tool input for drafting a
// recommendation.
type RecommendationCreateInput struct {
	AccountID  string            `json:"account_id" jsonschema:"account identifier"`
	CampaignID string            `json:"campaign_id,omitempty" jsonschema:"vendor campaign identifier"`
	AdGroupID  string            `json:"ad_group_id,omitempty" jsonschema:"vendor ad group or ad set identifier"`
	Channel    string            `json:"channel" jsonschema:"target channel (GOOGLE, META)"`
	Kind       string            `json:"kind" jsonschema:"change kind (HEADLINE, DESCRIPTION, KEYWORD, NEGATIVE_KEYWORD, SITELINK, AGE_RANGE, GENDER, LOCATION, PROXIMITY)"`
	Action     string            `json:"action,omitempty" jsonschema:"change action (ADD, REMOVE); defaults to ADD"`
	Value      string            `json:"value" jsonschema:"primary payload: text, keyword, or geo target identifier"`
	Attributes map[string]string `json:"attributes,omitempty" jsonschema:"kind-specific fields such as match_type, radius_km, pinned_field, or final_url"`
	Source     string            `json:"source,omitempty" jsonschema:"what produced the recommendation (llm, rules, manual); defaults to manual"`
}

// RecommendationResult represents a recommendation in MCP tool output.
type RecommendationResult struct {
	ID           string            `json:"id" jsonschema:"recommendation identifier"`
	AccountID    string            `json:"account_id" jsonschema:"account identifier"`
	CampaignID   string            `json:"campaign_id,omitempty" jsonschema:"vendor campaign identifier"`
	AdGroupID    string            `json:"ad_group_id,omitempty" jsonschema:"vendor ad group or ad set identifier"`
	Channel      string            `json:"channel" jsonschema:"target channel"`
	Kind         string            `json:"kind" jsonschema:"change kind"`
	Action       string            `json:"action" jsonschema:"change action"`
	Value        string            `json:"value" jsonschema:"primary payload"`
	Attributes   map[string]string `json:"attributes,omitempty" jsonschema:"kind-specific fields"`
	Status       string            `json:"status" jsonschema:"lifecycle status"`
	StatusReason string            `json:"status_reason,omitempty" jsonschema:"explanation for FAILED and REJECTED transitions"`
	Source       string            `json:"source" jsonschema:"what produced the recommendation"`
	CreatedAt    string            `json:"created_at" jsonschema:"RFC3339 timestamp when the recommendation was created"`
	UpdatedAt    string            `json:"updated_at" jsonschema:"RFC3339 timestamp when the recommendation was last updated"`
}

// RecommendationListInput represents the MCP tool input for listing
// recommendations.
type RecommendationListInput struct {
	AccountID string `json:"account_id" jsonschema:"account identifier"`
	Filter    string `json:"filter,omitempty" jsonschema:"AIP-160 filter over kind, channel, status, source, campaign_id, and ad_group_id"`
	PageSize  int    `json:"page_size,omitempty" jsonschema:"maximum recommendations per page"`
	PageToken string `json:"page_token,omitempty" jsonschema:"continuation token from a prior page"`
}

// RecommendationListResult represents the MCP tool output for listing
// recommendations.
type RecommendationListResult struct {
	Recommendations []RecommendationResult `json:"recommendations" jsonschema:"matching recommendations"`
	NextPageToken   string                 `json:"next_page_token,omitempty" jsonschema:"token for the next page"`
}

// RecommendationReviewInput represents the MCP tool input for approving or
// rejecting a recommendation.
type RecommendationReviewInput struct {
	RecommendationID string `json:"recommendation_id" jsonschema:"recommendation identifier"`
	Reason           string `json:"reason,omitempty" jsonschema:"rejection reason; required when rejecting"`
}

// CopyGenerateInput represents the MCP tool input for generating ad copy.
type CopyGenerateInput struct {
	AccountID        string `json:"account_id" jsonschema:"account identifier"`
	CampaignID       string `json:"campaign_id,omitempty" jsonschema:"vendor campaign identifier"`
	AdGroupID        string `json:"ad_group_id,omitempty" jsonschema:"vendor ad group identifier"`
	Brief            string `json:"brief" jsonschema:"what the copy should sell"`
	HeadlineCount    int    `json:"headline_count,omitempty" jsonschema:"number of headline drafts; defaults to 3"`
	DescriptionCount int    `json:"description_count,omitempty" jsonschema:"number of description drafts; defaults to 2"`
}

// CopyGenerateResult represents the MCP tool output for generated ad copy.
type CopyGenerateResult struct {
	Drafts []RecommendationResult `json:"drafts" jsonschema:"stored draft recommendations"`
}

// KeywordIdeasInput represents the MCP tool input for keyword idea generation.
type KeywordIdeasInput struct {
	AccountID          string   `json:"account_id" jsonschema:"account identifier"`
	SeedKeywords       []string `json:"seed_keywords,omitempty" jsonschema:"seed keywords to expand"`
	PageURL            string   `json:"page_url,omitempty" jsonschema:"landing page to mine for keywords"`
	LanguageConstant   string   `json:"language_constant,omitempty" jsonschema:"Google Ads language constant resource name"`
	GeoTargetConstants []string `json:"geo_target_constants,omitempty" jsonschema:"Google Ads geo target constant resource names"`
}

// KeywordIdeaEntry represents one keyword idea in MCP tool output.
type KeywordIdeaEntry struct {
	Text               string `json:"text" jsonschema:"keyword text"`
	AvgMonthlySearches int64  `json:"avg_monthly_searches" jsonschema:"average monthly search volume"`
	Competition        string `json:"competition" jsonschema:"competition level"`
}

// KeywordIdeasResult represents the MCP tool output for keyword ideas.
type KeywordIdeasResult struct {
	Ideas []KeywordIdeaEntry `json:"ideas" jsonschema:"generated keyword ideas"`
}

// ApplyInput represents the MCP tool input for applying recommendations.
type ApplyInput struct {
	AccountID         string   `json:"account_id" jsonschema:"account identifier"`
	RecommendationIDs []string `json:"recommendation_ids,omitempty" jsonschema:"recommendations to apply; empty applies every APPROVED one"`
	PartialFailure    bool     `json:"partial_failure,omitempty" jsonschema:"commit valid operations and report invalid ones independently"`
	ValidateOnly      bool     `json:"validate_only,omitempty" jsonschema:"run vendor-side validation without committing"`
}

// OperationOutcomeEntry reports what happened to one mutate operation.
type OperationOutcomeEntry struct {
	RecommendationID string `json:"recommendation_id" jsonschema:"recommendation identifier"`
	OperationIndex   int    `json:"operation_index" jsonschema:"index of the operation in the vendor batch"`
	ResourceName     string `json:"resource_name,omitempty" jsonschema:"created vendor resource name"`
	Succeeded        bool   `json:"succeeded" jsonschema:"whether the operation committed"`
	ErrorMessage     string `json:"error_message,omitempty" jsonschema:"vendor error for failed operations"`
}

// ApplyResult represents the MCP tool output for an apply run.
type ApplyResult struct {
	ApplyID      string                  `json:"apply_id" jsonschema:"apply run identifier"`
	Outcomes     []OperationOutcomeEntry `json:"outcomes" jsonschema:"per-operation outcomes"`
	AppliedCount int                     `json:"applied_count" jsonschema:"operations that committed"`
	FailedCount  int                     `json:"failed_count" jsonschema:"operations that failed"`
}

// ApplyResultsListInput represents the MCP tool input for listing apply audit
// rows.
type ApplyResultsListInput struct {
	AccountID string `json:"account_id" jsonschema:"account identifier"`
	PageSize  int    `json:"page_size,omitempty" jsonschema:"maximum rows per page"`
	PageToken string `json:"page_token,omitempty" jsonschema:"continuation token from a prior page"`
}

// ApplyResultEntry represents one audit row in MCP tool output.
type ApplyResultEntry struct {
	ID               string `json:"id" jsonschema:"audit row identifier"`
	ApplyID          string `json:"apply_id" jsonschema:"apply run identifier"`
	AccountID        string `json:"account_id" jsonschema:"account identifier"`
	RecommendationID string `json:"recommendation_id" jsonschema:"recommendation identifier"`
	OperationIndex   int    `json:"operation_index" jsonschema:"index of the operation in the vendor batch"`
	ResourceName     string `json:"resource_name,omitempty" jsonschema:"created vendor resource name"`
	Succeeded        bool   `json:"succeeded" jsonschema:"whether the operation committed"`
	ErrorMessage     string `json:"error_message,omitempty" jsonschema:"vendor error for failed operations"`
	PartialFailure   bool   `json:"partial_failure" jsonschema:"whether the run used partial failure"`
	ValidateOnly     bool   `json:"validate_only" jsonschema:"whether the run was validation only"`
	CreatedAt        string `json:"created_at" jsonschema:"RFC3339 timestamp when the row was written"`
}

// ApplyResultsListResult represents the MCP tool output for apply audit rows.
type ApplyResultsListResult struct {
	ApplyResults  []ApplyResultEntry `json:"apply_results" jsonschema:"audit rows, newest first"`
	NextPageToken string             `json:"next_page_token,omitempty" jsonschema:"token for the next page"`
}
