package googleads

// TextAsset is one headline or description on a responsive search ad.
type TextAsset struct {
	Text        string `json:"text,omitempty"`
	PinnedField string `json:"pinnedField,omitempty"`
}

// ResponsiveSearchAdInfo holds the text assets of a responsive search ad.
type ResponsiveSearchAdInfo struct {
	Headlines    []TextAsset `json:"headlines,omitempty"`
	Descriptions []TextAsset `json:"descriptions,omitempty"`
}

// Ad is the subset of the ad resource used for text updates.
type Ad struct {
	ResourceName       string                  `json:"resourceName,omitempty"`
	ResponsiveSearchAd *ResponsiveSearchAdInfo `json:"responsiveSearchAd,omitempty"`
}

// AdOperation updates an ad in place.
type AdOperation struct {
	Update     *Ad    `json:"update,omitempty"`
	UpdateMask string `json:"updateMask,omitempty"`
}

// KeywordInfo describes a keyword criterion.
type KeywordInfo struct {
	Text      string `json:"text,omitempty"`
	MatchType string `json:"matchType,omitempty"`
}

// AgeRangeInfo describes an age-range criterion.
type AgeRangeInfo struct {
	Type string `json:"type,omitempty"`
}

// GenderInfo describes a gender criterion.
type GenderInfo struct {
	Type string `json:"type,omitempty"`
}

// LocationInfo targets a geo target constant.
type LocationInfo struct {
	GeoTargetConstant string `json:"geoTargetConstant,omitempty"`
}

// GeoPoint positions a proximity target in micro-degrees.
type GeoPoint struct {
	LatitudeInMicroDegrees  int64 `json:"latitudeInMicroDegrees,omitempty"`
	LongitudeInMicroDegrees int64 `json:"longitudeInMicroDegrees,omitempty"`
}

// ProximityInfo targets a radius around a point.
type ProximityInfo struct {
	GeoPoint    *GeoPoint `json:"geoPoint,omitempty"`
	Radius      float64   `json:"radius,omitempty"`
	RadiusUnits string    `json:"radiusUnits,omitempty"`
}

// AdGroupCriterion is an ad-group-level targeting criterion.
type AdGroupCriterion struct {
	ResourceName string        `json:"resourceName,omitempty"`
	AdGroup      string        `json:"adGroup,omitempty"`
	Status       string        `json:"status,omitempty"`
	Negative     bool          `json:"negative,omitempty"`
	Keyword      *KeywordInfo  `json:"keyword,omitempty"`
	AgeRange     *AgeRangeInfo `json:"ageRange,omitempty"`
	Gender       *GenderInfo   `json:"gender,omitempty"`
}

// AdGroupCriterionOperation creates or removes an ad-group criterion.
type AdGroupCriterionOperation struct {
	Create *AdGroupCriterion `json:"create,omitempty"`
	Remove string            `json:"remove,omitempty"`
}

// CampaignCriterion is a campaign-level targeting criterion.
type CampaignCriterion struct {
	ResourceName string         `json:"resourceName,omitempty"`
	Campaign     string         `json:"campaign,omitempty"`
	Negative     bool           `json:"negative,omitempty"`
	Keyword      *KeywordInfo   `json:"keyword,omitempty"`
	Location     *LocationInfo  `json:"location,omitempty"`
	Proximity    *ProximityInfo `json:"proximity,omitempty"`
}

// CampaignCriterionOperation creates or removes a campaign criterion.
type CampaignCriterionOperation struct {
	Create *CampaignCriterion `json:"create,omitempty"`
	Remove string             `json:"remove,omitempty"`
}

// SitelinkAsset holds sitelink fields on an asset.
type SitelinkAsset struct {
	LinkText     string `json:"linkText,omitempty"`
	Description1 string `json:"description1,omitempty"`
	Description2 string `json:"description2,omitempty"`
}

// Asset is the subset of the asset resource used for sitelinks.
type Asset struct {
	ResourceName  string         `json:"resourceName,omitempty"`
	FinalUrls     []string       `json:"finalUrls,omitempty"`
	SitelinkAsset *SitelinkAsset `json:"sitelinkAsset,omitempty"`
}

// AssetOperation creates or removes an asset.
type AssetOperation struct {
	Create *Asset `json:"create,omitempty"`
	Remove string `json:"remove,omitempty"`
}

// CampaignAsset links an asset to a campaign for one field type.
type CampaignAsset struct {
	ResourceName string `json:"resourceName,omitempty"`
	Campaign     string `json:"campaign,omitempty"`
	Asset        string `json:"asset,omitempty"`
	FieldType    string `json:"fieldType,omitempty"`
}

// CampaignAssetOperation creates or removes a campaign-asset link.
type CampaignAssetOperation struct {
	Create *CampaignAsset `json:"create,omitempty"`
	Remove string         `json:"remove,omitempty"`
}

// MutateOperation wraps exactly one typed operation in a batch mutate
// request. Unset members are omitted from the wire payload.
type MutateOperation struct {
	AdOperation                *AdOperation                `json:"adOperation,omitempty"`
	AdGroupCriterionOperation  *AdGroupCriterionOperation  `json:"adGroupCriterionOperation,omitempty"`
	CampaignCriterionOperation *CampaignCriterionOperation `json:"campaignCriterionOperation,omitempty"`
	AssetOperation             *AssetOperation             `json:"assetOperation,omitempty"`
	CampaignAssetOperation     *CampaignAssetOperation     `json:"campaignAssetOperation,omitempty"`
}

// MutateOperationResponse reports the resource touched by one operation.
type MutateOperationResponse struct {
	AdResult                *MutateResult `json:"adResult,omitempty"`
	AdGroupCriterionResult  *MutateResult `json:"adGroupCriterionResult,omitempty"`
	CampaignCriterionResult *MutateResult `json:"campaignCriterionResult,omitempty"`
	AssetResult             *MutateResult `json:"assetResult,omitempty"`
	CampaignAssetResult     *MutateResult `json:"campaignAssetResult,omitempty"`
}

// MutateResult carries the resource name of a committed operation.
type MutateResult struct {
	ResourceName string `json:"resourceName,omitempty"`
}

// ResourceName returns the resource name of whichever result is set.
func (r MutateOperationResponse) ResourceName() string {
	for _, result := range []*MutateResult{
		r.AdResult,
		r.AdGroupCriterionResult,
		r.CampaignCriterionResult,
		r.AssetResult,
		r.CampaignAssetResult,
	} {
		if result != nil {
			return result.ResourceName
		}
	}
	return ""
}
