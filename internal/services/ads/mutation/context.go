package mutation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adpilot/adpilot/internal/services/ads/googleads"
	"github.com/adpilot/adpilot/internal/services/ads/recommendation"
)

// Context is the read-only view shared by every builder during one batch
// build: the target customer, the recommendations to compile, and the
// existing ad inventory needed for merge decisions. It must not be mutated
// after construction because builders read it concurrently.
type Context struct {
	customerID      string
	recommendations []recommendation.Recommendation
	adsByAdGroup    map[string][]googleads.Ad
	tempIDs         *TempIDAllocator
}

// NewContext validates and assembles a build context.
// adsByAdGroup maps ad group IDs to their current responsive search ads.
func NewContext(customerID string, recs []recommendation.Recommendation, adsByAdGroup map[string][]googleads.Ad) (*Context, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, errors.New("customer id is required")
	}
	if len(recs) == 0 {
		return nil, errors.New("at least one recommendation is required")
	}
	for _, rec := range recs {
		if strings.TrimSpace(rec.ID) == "" {
			return nil, errors.New("recommendation id is required")
		}
		if rec.Channel != recommendation.ChannelGoogle {
			return nil, fmt.Errorf("recommendation %s targets channel %q, want %q", rec.ID, rec.Channel, recommendation.ChannelGoogle)
		}
	}

	copied := make([]recommendation.Recommendation, len(recs))
	copy(copied, recs)

	return &Context{
		customerID:      customerID,
		recommendations: copied,
		adsByAdGroup:    adsByAdGroup,
		tempIDs:         NewTempIDAllocator(),
	}, nil
}

// CustomerID returns the Google Ads customer this batch targets.
func (c *Context) CustomerID() string {
	return c.customerID
}

// Recommendations returns every recommendation in the batch.
func (c *Context) Recommendations() []recommendation.Recommendation {
	return c.recommendations
}

// ByKind returns the recommendations matching any of the given kinds,
// preserving batch order.
func (c *Context) ByKind(kinds ...recommendation.Kind) []recommendation.Recommendation {
	var matched []recommendation.Recommendation
	for _, rec := range c.recommendations {
		for _, kind := range kinds {
			if rec.Kind == kind {
				matched = append(matched, rec)
				break
			}
		}
	}
	return matched
}

// AdsForAdGroup returns the existing responsive search ads of one ad group.
func (c *Context) AdsForAdGroup(adGroupID string) []googleads.Ad {
	if c.adsByAdGroup == nil {
		return nil
	}
	return c.adsByAdGroup[adGroupID]
}

// TempIDs returns the batch-scoped temporary resource ID allocator.
func (c *Context) TempIDs() *TempIDAllocator {
	return c.tempIDs
}

// CampaignResource builds the campaign resource name for an ID.
func (c *Context) CampaignResource(campaignID string) string {
	return fmt.Sprintf("customers/%s/campaigns/%s", c.customerID, campaignID)
}

// AdGroupResource builds the ad group resource name for an ID.
func (c *Context) AdGroupResource(adGroupID string) string {
	return fmt.Sprintf("customers/%s/adGroups/%s", c.customerID, adGroupID)
}
