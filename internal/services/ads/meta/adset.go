package meta

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// Targeting is the ad set targeting spec subset the applier manages.
type Targeting struct {
	AgeMin int `json:"age_min,omitempty"`
	AgeMax int `json:"age_max,omitempty"`
	// Genders uses the Graph API encoding: 1 male, 2 female. Empty targets
	// all genders.
	Genders      []int         `json:"genders,omitempty"`
	GeoLocations *GeoLocations `json:"geo_locations,omitempty"`
}

// GeoLocations narrows targeting geographically.
type GeoLocations struct {
	Countries       []string         `json:"countries,omitempty"`
	Cities          []City           `json:"cities,omitempty"`
	CustomLocations []CustomLocation `json:"custom_locations,omitempty"`
}

// City is a keyed city target.
type City struct {
	Key string `json:"key"`
}

// CustomLocation is a radius target around a point.
type CustomLocation struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Radius       float64 `json:"radius"`
	DistanceUnit string  `json:"distance_unit,omitempty"`
}

// AdSet is the subset of ad set fields the applier reads.
type AdSet struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Status    string     `json:"status"`
	Targeting *Targeting `json:"targeting"`
}

// AdSet fetches one ad set with its current targeting.
func (c *Client) AdSet(ctx context.Context, adSetID string) (AdSet, error) {
	adSetID = strings.TrimSpace(adSetID)
	if adSetID == "" {
		return AdSet{}, fmt.Errorf("ad set id is required")
	}

	query := url.Values{}
	query.Set("fields", "id,name,status,targeting")

	var adSet AdSet
	if err := c.get(ctx, "/"+adSetID, query, &adSet); err != nil {
		return AdSet{}, fmt.Errorf("fetch ad set %s: %w", adSetID, err)
	}
	return adSet, nil
}

// UpdateTargeting replaces an ad set's targeting spec. The Graph API takes
// the whole spec at once, so callers fetch, modify, and write back.
func (c *Client) UpdateTargeting(ctx context.Context, adSetID string, targeting Targeting) error {
	adSetID = strings.TrimSpace(adSetID)
	if adSetID == "" {
		return fmt.Errorf("ad set id is required")
	}

	spec, err := json.Marshal(targeting)
	if err != nil {
		return fmt.Errorf("marshal targeting: %w", err)
	}

	form := url.Values{}
	form.Set("targeting", string(spec))

	var result struct {
		Success bool `json:"success"`
	}
	if err := c.postForm(ctx, "/"+adSetID, form, &result); err != nil {
		return fmt.Errorf("update ad set %s targeting: %w", adSetID, err)
	}
	if !result.Success {
		return fmt.Errorf("update ad set %s targeting: api reported failure", adSetID)
	}
	return nil
}

// UpdateStatus pauses or activates an ad set. status is ACTIVE or PAUSED.
func (c *Client) UpdateStatus(ctx context.Context, adSetID, status string) error {
	adSetID = strings.TrimSpace(adSetID)
	if adSetID == "" {
		return fmt.Errorf("ad set id is required")
	}
	status = strings.ToUpper(strings.TrimSpace(status))
	if status != "ACTIVE" && status != "PAUSED" {
		return fmt.Errorf("unsupported ad set status %q", status)
	}

	form := url.Values{}
	form.Set("status", status)

	var result struct {
		Success bool `json:"success"`
	}
	if err := c.postForm(ctx, "/"+adSetID, form, &result); err != nil {
		return fmt.Errorf("update ad set %s status: %w", adSetID, err)
	}
	if !result.Success {
		return fmt.Errorf("update ad set %s status: api reported failure", adSetID)
	}
	return nil
}
