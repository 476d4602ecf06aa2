package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/adpilot/adpilot/internal/services/ads/storage"
)

// PutApplyResult persists one apply result audit row. Rows are append-only.
func (s *Store) PutApplyResult(ctx context.Context, record storage.ApplyResultRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.ID) == "" {
		return fmt.Errorf("apply result id is required")
	}
	if strings.TrimSpace(record.ApplyID) == "" {
		return fmt.Errorf("apply id is required")
	}
	if strings.TrimSpace(record.AccountID) == "" {
		return fmt.Errorf("account id is required")
	}
	if strings.TrimSpace(record.RecommendationID) == "" {
		return fmt.Errorf("recommendation id is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO ads_apply_results (
	id, apply_id, account_id, recommendation_id, operation_index, resource_name,
	succeeded, error_message, partial_failure, validate_only, created_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		record.ID,
		record.ApplyID,
		record.AccountID,
		record.RecommendationID,
		record.OperationIndex,
		record.ResourceName,
		record.Succeeded,
		record.ErrorMessage,
		record.PartialFailure,
		record.ValidateOnly,
		toMillis(record.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("put apply result: %w", err)
	}
	return nil
}

// ListApplyResults returns a page of apply results for one account, newest
// run first within ID order.
func (s *Store) ListApplyResults(ctx context.Context, accountID string, pageSize int, pageToken string) (storage.ApplyResultPage, error) {
	if err := ctx.Err(); err != nil {
		return storage.ApplyResultPage{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.ApplyResultPage{}, fmt.Errorf("storage is not configured")
	}
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return storage.ApplyResultPage{}, fmt.Errorf("account id is required")
	}
	if pageSize <= 0 {
		return storage.ApplyResultPage{}, fmt.Errorf("page size must be greater than zero")
	}

	limit := pageSize + 1
	var (
		rows *sql.Rows
		err  error
	)
	if strings.TrimSpace(pageToken) == "" {
		rows, err = s.sqlDB.QueryContext(ctx, `
SELECT id, apply_id, account_id, recommendation_id, operation_index, resource_name,
	succeeded, error_message, partial_failure, validate_only, created_at
FROM ads_apply_results
WHERE account_id = ?
ORDER BY id
LIMIT ?
`, accountID, limit)
	} else {
		rows, err = s.sqlDB.QueryContext(ctx, `
SELECT id, apply_id, account_id, recommendation_id, operation_index, resource_name,
	succeeded, error_message, partial_failure, validate_only, created_at
FROM ads_apply_results
WHERE account_id = ? AND id > ?
ORDER BY id
LIMIT ?
`, accountID, strings.TrimSpace(pageToken), limit)
	}
	if err != nil {
		return storage.ApplyResultPage{}, fmt.Errorf("list apply results: %w", err)
	}
	defer rows.Close()

	page := storage.ApplyResultPage{Results: make([]storage.ApplyResultRecord, 0, pageSize)}
	for rows.Next() {
		rec, err := scanApplyResultRow(rows)
		if err != nil {
			return storage.ApplyResultPage{}, fmt.Errorf("scan apply result row: %w", err)
		}
		page.Results = append(page.Results, rec)
	}
	if err := rows.Err(); err != nil {
		return storage.ApplyResultPage{}, fmt.Errorf("iterate apply result rows: %w", err)
	}

	if len(page.Results) > pageSize {
		page.NextPageToken = page.Results[pageSize-1].ID
		page.Results = page.Results[:pageSize]
	}
	return page, nil
}

func scanApplyResultRow(row rowScanner) (storage.ApplyResultRecord, error) {
	var (
		rec       storage.ApplyResultRecord
		createdAt int64
	)
	if err := row.Scan(
		&rec.ID,
		&rec.ApplyID,
		&rec.AccountID,
		&rec.RecommendationID,
		&rec.OperationIndex,
		&rec.ResourceName,
		&rec.Succeeded,
		&rec.ErrorMessage,
		&rec.PartialFailure,
		&rec.ValidateOnly,
		&createdAt,
	); err != nil {
		return storage.ApplyResultRecord{}, err
	}
	rec.CreatedAt = fromMillis(createdAt)
	return rec, nil
}
