package meta

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// Creative describes the text fields of one ad creative.
type Creative struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name,omitempty"`
	Title        string `json:"title,omitempty"`
	Body         string `json:"body,omitempty"`
	LinkURL      string `json:"link_url,omitempty"`
	CallToAction string `json:"call_to_action_type,omitempty"`
}

// AdCreative fetches the creative attached to an ad.
func (c *Client) AdCreative(ctx context.Context, adID string) (Creative, error) {
	adID = strings.TrimSpace(adID)
	if adID == "" {
		return Creative{}, fmt.Errorf("ad id is required")
	}

	query := url.Values{}
	query.Set("fields", "creative{id,name,title,body,link_url,call_to_action_type}")

	var wire struct {
		Creative Creative `json:"creative"`
	}
	if err := c.get(ctx, "/"+adID, query, &wire); err != nil {
		return Creative{}, fmt.Errorf("fetch creative for ad %s: %w", adID, err)
	}
	return wire.Creative, nil
}

// CreateCreative registers a new creative under an ad account. Graph
// creatives are immutable, so a text change means a new creative swapped
// onto the ad. accountID is the numeric ad account ID without the act_
// prefix.
func (c *Client) CreateCreative(ctx context.Context, accountID string, creative Creative) (string, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return "", fmt.Errorf("account id is required")
	}

	form := url.Values{}
	if creative.Name != "" {
		form.Set("name", creative.Name)
	}
	form.Set("title", creative.Title)
	form.Set("body", creative.Body)
	if creative.LinkURL != "" {
		// object_story_spec carries the link for link ads.
		spec, err := json.Marshal(map[string]any{
			"link_data": map[string]any{
				"link":    creative.LinkURL,
				"name":    creative.Title,
				"message": creative.Body,
			},
		})
		if err != nil {
			return "", fmt.Errorf("marshal story spec: %w", err)
		}
		form.Set("object_story_spec", string(spec))
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := c.postForm(ctx, "/act_"+accountID+"/adcreatives", form, &result); err != nil {
		return "", fmt.Errorf("create creative: %w", err)
	}
	if result.ID == "" {
		return "", fmt.Errorf("create creative: response missing id")
	}
	return result.ID, nil
}

// SwapCreative points an ad at a different creative.
func (c *Client) SwapCreative(ctx context.Context, adID, creativeID string) error {
	adID = strings.TrimSpace(adID)
	if adID == "" {
		return fmt.Errorf("ad id is required")
	}
	creativeID = strings.TrimSpace(creativeID)
	if creativeID == "" {
		return fmt.Errorf("creative id is required")
	}

	spec, err := json.Marshal(map[string]string{"creative_id": creativeID})
	if err != nil {
		return fmt.Errorf("marshal creative reference: %w", err)
	}

	form := url.Values{}
	form.Set("creative", string(spec))

	var result struct {
		Success bool `json:"success"`
	}
	if err := c.postForm(ctx, "/"+adID, form, &result); err != nil {
		return fmt.Errorf("swap creative on ad %s: %w", adID, err)
	}
	if !result.Success {
		return fmt.Errorf("swap creative on ad %s: api reported failure", adID)
	}
	return nil
}
