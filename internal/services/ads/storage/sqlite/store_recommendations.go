package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adpilot/adpilot/internal/services/ads/storage"
)

// PutRecommendation persists a recommendation record.
func (s *Store) PutRecommendation(ctx context.Context, record storage.RecommendationRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.ID) == "" {
		return fmt.Errorf("recommendation id is required")
	}
	if strings.TrimSpace(record.AccountID) == "" {
		return fmt.Errorf("account id is required")
	}
	if strings.TrimSpace(record.Channel) == "" {
		return fmt.Errorf("channel is required")
	}
	if strings.TrimSpace(record.Kind) == "" {
		return fmt.Errorf("kind is required")
	}
	if strings.TrimSpace(record.Status) == "" {
		return fmt.Errorf("status is required")
	}

	attributes, err := encodeAttributes(record.Attributes)
	if err != nil {
		return err
	}

	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO ads_recommendations (
	id, account_id, campaign_id, ad_group_id, channel, kind, action, value, attributes,
	status, status_reason, source, created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	account_id = excluded.account_id,
	campaign_id = excluded.campaign_id,
	ad_group_id = excluded.ad_group_id,
	channel = excluded.channel,
	kind = excluded.kind,
	action = excluded.action,
	value = excluded.value,
	attributes = excluded.attributes,
	status = excluded.status,
	status_reason = excluded.status_reason,
	source = excluded.source,
	updated_at = excluded.updated_at
`,
		record.ID,
		record.AccountID,
		record.CampaignID,
		record.AdGroupID,
		record.Channel,
		record.Kind,
		record.Action,
		record.Value,
		attributes,
		record.Status,
		record.StatusReason,
		record.Source,
		toMillis(record.CreatedAt),
		toMillis(record.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put recommendation: %w", err)
	}
	return nil
}

// GetRecommendation fetches a recommendation record by ID.
func (s *Store) GetRecommendation(ctx context.Context, recommendationID string) (storage.RecommendationRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.RecommendationRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.RecommendationRecord{}, fmt.Errorf("storage is not configured")
	}
	recommendationID = strings.TrimSpace(recommendationID)
	if recommendationID == "" {
		return storage.RecommendationRecord{}, fmt.Errorf("recommendation id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, account_id, campaign_id, ad_group_id, channel, kind, action, value, attributes,
	status, status_reason, source, created_at, updated_at
FROM ads_recommendations
WHERE id = ?
`, recommendationID)

	rec, err := scanRecommendationRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.RecommendationRecord{}, storage.ErrNotFound
		}
		return storage.RecommendationRecord{}, fmt.Errorf("get recommendation: %w", err)
	}
	return rec, nil
}

// ListRecommendations returns a page of recommendation records for one
// account. query.Where may carry a pre-translated filter fragment.
func (s *Store) ListRecommendations(ctx context.Context, query storage.RecommendationQuery) (storage.RecommendationPage, error) {
	if err := ctx.Err(); err != nil {
		return storage.RecommendationPage{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.RecommendationPage{}, fmt.Errorf("storage is not configured")
	}
	accountID := strings.TrimSpace(query.AccountID)
	if accountID == "" {
		return storage.RecommendationPage{}, fmt.Errorf("account id is required")
	}
	if query.PageSize <= 0 {
		return storage.RecommendationPage{}, fmt.Errorf("page size must be greater than zero")
	}

	where := "account_id = ?"
	params := []any{accountID}
	if strings.TrimSpace(query.Where) != "" {
		where += " AND " + query.Where
		params = append(params, query.Params...)
	}
	if strings.TrimSpace(query.PageToken) != "" {
		where += " AND id > ?"
		params = append(params, strings.TrimSpace(query.PageToken))
	}

	limit := query.PageSize + 1
	params = append(params, limit)

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, account_id, campaign_id, ad_group_id, channel, kind, action, value, attributes,
	status, status_reason, source, created_at, updated_at
FROM ads_recommendations
WHERE `+where+`
ORDER BY id
LIMIT ?
`, params...)
	if err != nil {
		return storage.RecommendationPage{}, fmt.Errorf("list recommendations: %w", err)
	}
	defer rows.Close()

	page := storage.RecommendationPage{Recommendations: make([]storage.RecommendationRecord, 0, query.PageSize)}
	for rows.Next() {
		rec, err := scanRecommendationRow(rows)
		if err != nil {
			return storage.RecommendationPage{}, fmt.Errorf("scan recommendation row: %w", err)
		}
		page.Recommendations = append(page.Recommendations, rec)
	}
	if err := rows.Err(); err != nil {
		return storage.RecommendationPage{}, fmt.Errorf("iterate recommendation rows: %w", err)
	}

	if len(page.Recommendations) > query.PageSize {
		page.NextPageToken = page.Recommendations[query.PageSize-1].ID
		page.Recommendations = page.Recommendations[:query.PageSize]
	}
	return page, nil
}

// UpdateRecommendationStatus moves one recommendation to a new status. The
// caller is responsible for lifecycle legality; the store only guards
// against lost updates by matching the expected current status when
// expectedStatus is non-empty.
func (s *Store) UpdateRecommendationStatus(ctx context.Context, recommendationID, expectedStatus, status, reason string, updatedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	recommendationID = strings.TrimSpace(recommendationID)
	if recommendationID == "" {
		return fmt.Errorf("recommendation id is required")
	}
	if strings.TrimSpace(status) == "" {
		return fmt.Errorf("status is required")
	}

	var (
		res sql.Result
		err error
	)
	if strings.TrimSpace(expectedStatus) == "" {
		res, err = s.sqlDB.ExecContext(ctx, `
UPDATE ads_recommendations
SET status = ?, status_reason = ?, updated_at = ?
WHERE id = ?
`, status, reason, toMillis(updatedAt), recommendationID)
	} else {
		res, err = s.sqlDB.ExecContext(ctx, `
UPDATE ads_recommendations
SET status = ?, status_reason = ?, updated_at = ?
WHERE id = ? AND status = ?
`, status, reason, toMillis(updatedAt), recommendationID, expectedStatus)
	}
	if err != nil {
		return fmt.Errorf("update recommendation status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update recommendation status rows affected: %w", err)
	}
	if affected == 0 {
		// Either the record is missing or its status moved under us.
		if _, getErr := s.GetRecommendation(ctx, recommendationID); getErr != nil {
			return getErr
		}
		return storage.ErrConflict
	}
	return nil
}

func scanRecommendationRow(row rowScanner) (storage.RecommendationRecord, error) {
	var (
		rec           storage.RecommendationRecord
		attributesRaw string
		createdAt     int64
		updatedAt     int64
	)
	if err := row.Scan(
		&rec.ID,
		&rec.AccountID,
		&rec.CampaignID,
		&rec.AdGroupID,
		&rec.Channel,
		&rec.Kind,
		&rec.Action,
		&rec.Value,
		&attributesRaw,
		&rec.Status,
		&rec.StatusReason,
		&rec.Source,
		&createdAt,
		&updatedAt,
	); err != nil {
		return storage.RecommendationRecord{}, err
	}

	attributes, err := decodeAttributes(attributesRaw)
	if err != nil {
		return storage.RecommendationRecord{}, err
	}
	rec.Attributes = attributes
	rec.CreatedAt = fromMillis(createdAt)
	rec.UpdatedAt = fromMillis(updatedAt)
	return rec, nil
}
