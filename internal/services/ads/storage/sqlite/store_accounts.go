package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/adpilot/adpilot/internal/services/ads/storage"
)

// PutAccount persists an account record.
func (s *Store) PutAccount(ctx context.Context, record storage.AccountRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.ID) == "" {
		return fmt.Errorf("account id is required")
	}
	if strings.TrimSpace(record.Name) == "" {
		return fmt.Errorf("account name is required")
	}
	if strings.TrimSpace(record.GoogleCustomerID) == "" && strings.TrimSpace(record.MetaAdAccountID) == "" {
		return fmt.Errorf("at least one vendor account binding is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO ads_accounts (
	id, name, google_customer_id, google_login_customer_id, meta_ad_account_id, credential_ciphertext, created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	name = excluded.name,
	google_customer_id = excluded.google_customer_id,
	google_login_customer_id = excluded.google_login_customer_id,
	meta_ad_account_id = excluded.meta_ad_account_id,
	credential_ciphertext = excluded.credential_ciphertext,
	updated_at = excluded.updated_at
`,
		record.ID,
		record.Name,
		record.GoogleCustomerID,
		record.GoogleLoginCustomerID,
		record.MetaAdAccountID,
		record.CredentialCiphertext,
		toMillis(record.CreatedAt),
		toMillis(record.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put account: %w", err)
	}
	return nil
}

// GetAccount fetches an account record by ID.
func (s *Store) GetAccount(ctx context.Context, accountID string) (storage.AccountRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.AccountRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.AccountRecord{}, fmt.Errorf("storage is not configured")
	}
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return storage.AccountRecord{}, fmt.Errorf("account id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, name, google_customer_id, google_login_customer_id, meta_ad_account_id, credential_ciphertext, created_at, updated_at
FROM ads_accounts
WHERE id = ?
`, accountID)

	rec, err := scanAccountRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.AccountRecord{}, storage.ErrNotFound
		}
		return storage.AccountRecord{}, fmt.Errorf("get account: %w", err)
	}
	return rec, nil
}

// ListAccounts returns a page of account records ordered by ID.
func (s *Store) ListAccounts(ctx context.Context, pageSize int, pageToken string) (storage.AccountPage, error) {
	if err := ctx.Err(); err != nil {
		return storage.AccountPage{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.AccountPage{}, fmt.Errorf("storage is not configured")
	}
	if pageSize <= 0 {
		return storage.AccountPage{}, fmt.Errorf("page size must be greater than zero")
	}

	limit := pageSize + 1
	var (
		rows *sql.Rows
		err  error
	)
	if strings.TrimSpace(pageToken) == "" {
		rows, err = s.sqlDB.QueryContext(ctx, `
SELECT id, name, google_customer_id, google_login_customer_id, meta_ad_account_id, credential_ciphertext, created_at, updated_at
FROM ads_accounts
ORDER BY id
LIMIT ?
`, limit)
	} else {
		rows, err = s.sqlDB.QueryContext(ctx, `
SELECT id, name, google_customer_id, google_login_customer_id, meta_ad_account_id, credential_ciphertext, created_at, updated_at
FROM ads_accounts
WHERE id > ?
ORDER BY id
LIMIT ?
`, strings.TrimSpace(pageToken), limit)
	}
	if err != nil {
		return storage.AccountPage{}, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	page := storage.AccountPage{Accounts: make([]storage.AccountRecord, 0, pageSize)}
	for rows.Next() {
		rec, err := scanAccountRow(rows)
		if err != nil {
			return storage.AccountPage{}, fmt.Errorf("scan account row: %w", err)
		}
		page.Accounts = append(page.Accounts, rec)
	}
	if err := rows.Err(); err != nil {
		return storage.AccountPage{}, fmt.Errorf("iterate account rows: %w", err)
	}

	if len(page.Accounts) > pageSize {
		page.NextPageToken = page.Accounts[pageSize-1].ID
		page.Accounts = page.Accounts[:pageSize]
	}
	return page, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccountRow(row rowScanner) (storage.AccountRecord, error) {
	var (
		rec       storage.AccountRecord
		createdAt int64
		updatedAt int64
	)
	if err := row.Scan(
		&rec.ID,
		&rec.Name,
		&rec.GoogleCustomerID,
		&rec.GoogleLoginCustomerID,
		&rec.MetaAdAccountID,
		&rec.CredentialCiphertext,
		&createdAt,
		&updatedAt,
	); err != nil {
		return storage.AccountRecord{}, err
	}
	rec.CreatedAt = fromMillis(createdAt)
	rec.UpdatedAt = fromMillis(updatedAt)
	return rec, nil
}
