package googleads

import (
	"context"
	"fmt"
	"strings"
)

// SearchRow is one result row from a GAQL query. Only the attributes this
// service selects are modeled.
type SearchRow struct {
	AdGroupAd *AdGroupAdRow `json:"adGroupAd,omitempty"`
	AdGroup   *ResourceRow  `json:"adGroup,omitempty"`
	Campaign  *ResourceRow  `json:"campaign,omitempty"`
}

// AdGroupAdRow holds ad fields selected from the ad_group_ad view.
type AdGroupAdRow struct {
	ResourceName string `json:"resourceName,omitempty"`
	Ad           *Ad    `json:"ad,omitempty"`
}

// ResourceRow holds a bare resource reference.
type ResourceRow struct {
	ResourceName string `json:"resourceName,omitempty"`
	ID           string `json:"id,omitempty"`
}

type searchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
}

type searchResponse struct {
	Results       []SearchRow `json:"results"`
	NextPageToken string      `json:"nextPageToken"`
}

// Search runs a GAQL query and returns all result rows, following page
// tokens until the response is exhausted.
func (c *Client) Search(ctx context.Context, customerID, query string) ([]SearchRow, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, fmt.Errorf("customer id is required")
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}

	path := fmt.Sprintf("/customers/%s/googleAds:search", customerID)

	var rows []SearchRow
	pageToken := ""
	for {
		var page searchResponse
		if err := c.post(ctx, path, searchRequest{Query: query, PageToken: pageToken}, &page); err != nil {
			return nil, fmt.Errorf("search: %w", err)
		}
		rows = append(rows, page.Results...)
		pageToken = strings.TrimSpace(page.NextPageToken)
		if pageToken == "" {
			return rows, nil
		}
	}
}

// ResponsiveSearchAds returns the responsive search ads of one ad group,
// including their current headline and description assets.
func (c *Client) ResponsiveSearchAds(ctx context.Context, customerID, adGroupID string) ([]Ad, error) {
	adGroupID = strings.TrimSpace(adGroupID)
	if adGroupID == "" {
		return nil, fmt.Errorf("ad group id is required")
	}

	query := fmt.Sprintf(`
SELECT
  ad_group_ad.ad.resource_name,
  ad_group_ad.ad.responsive_search_ad.headlines,
  ad_group_ad.ad.responsive_search_ad.descriptions
FROM ad_group_ad
WHERE ad_group_ad.ad_group = 'customers/%s/adGroups/%s'
  AND ad_group_ad.ad.type = RESPONSIVE_SEARCH_AD
  AND ad_group_ad.status != REMOVED`, customerID, adGroupID)

	rows, err := c.Search(ctx, customerID, query)
	if err != nil {
		return nil, err
	}

	ads := make([]Ad, 0, len(rows))
	for _, row := range rows {
		if row.AdGroupAd == nil || row.AdGroupAd.Ad == nil {
			continue
		}
		ads = append(ads, *row.AdGroupAd.Ad)
	}
	return ads, nil
}
